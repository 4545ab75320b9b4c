package repositories

import (
	"context"

	"walletledger/internal/models"
)

// LedgerSummary is the raw per-user aggregate computed by the store.
// Expenses is non-positive by construction.
type LedgerSummary struct {
	Balance  models.Money
	Income   models.Money
	Expenses models.Money
}

// TransactionRepository is the ledger store: a durable table of transaction
// rows with single-row insert, delete-by-id and per-user read/aggregate.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	// DeleteByID removes the row and returns the number of rows affected,
	// so the caller can distinguish "deleted" from "never existed".
	DeleteByID(ctx context.Context, id uint) (int64, error)
	SummaryByUser(ctx context.Context, userID string) (*LedgerSummary, error)
}
