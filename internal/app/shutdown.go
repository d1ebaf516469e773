package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

func (a *App) startMetricsServer() {
	if a.httpServer == nil {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		err := a.httpServer.Start()
		if err != nil {
			a.logger.Error("http-server-error", zap.Error(err))
		}
	}()
}

// Close releases run resources; Run invokes it on completion.
func (a *App) Close() {
	a.healthChecker.SetReady(false)

	if a.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := a.httpServer.Shutdown(shutdownCtx)
		if err != nil {
			a.logger.Error("http-server-shutdown-error", zap.Error(err))
		}
	}

	err := a.journal.Close()
	if err != nil {
		a.logger.Error("journal-close-error", zap.Error(err))
	}

	a.marketCache.Close()
	a.wg.Wait()
}
