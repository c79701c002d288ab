package postgres

import (
	"context"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashEntryRows(entries ...domain.CashLedgerEntry) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "sequence", "entry_type", "direction", "amount", "running_balance",
		"conversion_id", "actor_id", "note", "created_at",
	})
	for _, e := range entries {
		rows.AddRow(e.ID, e.Sequence, e.EntryType, e.Direction, e.Amount, e.RunningBalance,
			e.ConversionID, e.ActorID, e.Note, e.CreatedAt)
	}
	return rows
}

func TestCashLedgerRepo_AcquireAppendLock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(cashLedgerLockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.AcquireAppendLock(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashLedgerRepo_Latest_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM cash_ledger_entries ORDER BY sequence DESC LIMIT 1").
		WillReturnRows(cashEntryRows())

	got, err := repo.Latest(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCashLedgerRepo_InsertAndList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCashLedgerRepo(mock)
	e := domain.CashLedgerEntry{
		ID:             uuid.New(),
		Sequence:       1,
		EntryType:      domain.CashEntryManualDeposit,
		Direction:      domain.DirectionCredit,
		Amount:         decimal.NewFromInt(1000),
		RunningBalance: decimal.NewFromInt(1000),
		Note:           "opening balance",
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cash_ledger_entries").
		WithArgs(e.ID, e.Sequence, e.EntryType, e.Direction, e.Amount, e.RunningBalance,
			e.ConversionID, e.ActorID, e.Note, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT .+ FROM cash_ledger_entries WHERE sequence > \\$1 ORDER BY sequence LIMIT \\$2").
		WithArgs(int64(0), 100).
		WillReturnRows(cashEntryRows(e))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), tx, &e))

	entries, err := repo.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
