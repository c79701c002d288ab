package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor. Settlement credits, conversion
// approvals and cash ledger appends each run inside one of its
// transactions, so their FOR UPDATE row locks and the ledger advisory lock
// are held until Commit or Rollback.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor on the shared pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a transaction at the server default isolation level.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
