// Package transaction implements the ledger's business operations:
// validated creates, per-user listing and summaries, and hard deletes.
package transaction

import (
	"context"
	"fmt"

	"walletledger/internal/models"
	"walletledger/internal/repositories"
)

// Service exposes the transaction ledger operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Transaction, error)
	List(ctx context.Context, userID string) ([]models.Transaction, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context, userID string) (*Summary, error)
}

type service struct {
	repo repositories.TransactionRepository
}

// NewService creates a transaction service on top of the ledger store.
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	return &service{repo: repo}
}

// Create validates the request and persists a new ledger row. On validation
// failure it returns a *ValidationError naming every bad field and writes
// nothing.
func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:    req.UserID,
		Title:     req.Title,
		Amount:    models.NewMoney(req.Amount.Decimal),
		Category:  req.Category,
		CreatedAt: req.Date,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func validate(req CreateRequest) error {
	var fields []string
	if req.UserID == "" {
		fields = append(fields, "user_id")
	}
	if req.Title == "" {
		fields = append(fields, "title")
	}
	if req.Amount == nil {
		fields = append(fields, "amount")
	}
	if req.Category == "" {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// List returns the user's transactions, most recent first. Unknown users get
// an empty slice, not an error.
func (s *service) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Delete removes a transaction by id. Ownership is intentionally not
// checked: any caller knowing an id may delete it, matching the API
// contract. Deleting a missing or already-deleted id is ErrTransactionNotFound.
func (s *service) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrTransactionNotFound, id)
	}
	return nil
}

// Summary aggregates the user's ledger with decimal arithmetic: income is
// the sum of non-negative amounts, expenses the sum of negative amounts
// (kept negative), balance their exact total. An empty ledger yields 0.00
// across the board.
func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	agg, err := s.repo.SummaryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Balance:  agg.Balance,
		Income:   agg.Income,
		Expenses: agg.Expenses,
	}, nil
}
