package transaction

import (
	"walletledger/internal/models"
)

// CreateRequest carries the caller-supplied fields for a new transaction.
// Amount is a pointer so a missing amount can be told apart from an explicit
// zero, which is a valid record.
type CreateRequest struct {
	UserID   string        `json:"user_id"`
	Title    string        `json:"title"`
	Amount   *models.Money `json:"amount"`
	Category string        `json:"category"`
	// Date is optional; when absent the transaction is dated today.
	Date models.Date `json:"created_at"`
}

// Summary is the per-user aggregate over all active transactions.
// Expenses is reported as a non-positive number; Balance always equals
// Income + Expenses exactly.
type Summary struct {
	Balance  models.Money `json:"balance"`
	Income   models.Money `json:"income"`
	Expenses models.Money `json:"expenses"`
}
