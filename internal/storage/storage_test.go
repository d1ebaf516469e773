package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsoleStorage_RecordOrder(t *testing.T) {
	s := NewConsoleStorage(zap.NewNop())
	defer s.Close()

	err := s.RecordOrder(context.Background(), &Record{
		RunID:     "run-1",
		Action:    ActionPlace,
		MarketID:  "mkt-1",
		Outcome:   "YES",
		LimitProb: 0.4,
		Amount:    100,
		At:        time.Now(),
	})
	require.NoError(t, err)
}

func TestPostgresStorage_RecordOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newPostgresStorageWithDB(db, zap.NewNop())

	rec := &Record{
		RunID:     "run-1",
		Action:    ActionPlace,
		MarketID:  "mkt-1",
		Question:  "Will it rain?",
		Outcome:   "NO",
		LimitProb: 0.6,
		Amount:    50,
		BetID:     "bet-9",
		At:        time.Now(),
	}

	mock.ExpectExec("INSERT INTO quote_orders").
		WithArgs(rec.RunID, rec.Action, rec.MarketID, rec.Question, rec.Outcome,
			rec.LimitProb, rec.Amount, rec.BetID, rec.At).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = s.RecordOrder(context.Background(), rec)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_RecordOrderError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := newPostgresStorageWithDB(db, zap.NewNop())

	mock.ExpectExec("INSERT INTO quote_orders").
		WillReturnError(context.DeadlineExceeded)

	err = s.RecordOrder(context.Background(), &Record{RunID: "run-1", Action: ActionCancel})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insert order record")
}
