package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL journal.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-journal-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// newPostgresStorageWithDB wires an existing connection; used by tests.
func newPostgresStorageWithDB(db *sql.DB, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// RecordOrder inserts one journal entry.
func (p *PostgresStorage) RecordOrder(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO quote_orders (
			run_id, action, market_id, question, outcome,
			limit_prob, amount, bet_id, recorded_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := p.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Action,
		rec.MarketID,
		rec.Question,
		rec.Outcome,
		rec.LimitProb,
		rec.Amount,
		rec.BetID,
		rec.At,
	)
	if err != nil {
		return fmt.Errorf("insert order record: %w", err)
	}

	p.logger.Debug("order-record-stored",
		zap.String("run-id", rec.RunID),
		zap.String("action", rec.Action),
		zap.String("market-id", rec.MarketID))

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
