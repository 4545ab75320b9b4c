package repositories

import (
	"context"
	"fmt"

	"walletledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a GORM-backed ledger store.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) FindByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SummaryByUser pushes the aggregation into the store so the sums stay in
// decimal arithmetic end to end. Income counts amounts >= 0, expenses counts
// amounts < 0 and stays negative.
func (r *transactionRepository) SummaryByUser(ctx context.Context, userID string) (*LedgerSummary, error) {
	var balance, income, expenses decimal.Decimal

	row := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select(
			"COALESCE(SUM(amount), 0) AS balance",
			"COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0) AS income",
			"COALESCE(SUM(CASE WHEN amount < 0 THEN amount ELSE 0 END), 0) AS expenses",
		).
		Row()
	if err := row.Scan(&balance, &income, &expenses); err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &LedgerSummary{
		Balance:  models.NewMoney(balance),
		Income:   models.NewMoney(income),
		Expenses: models.NewMoney(expenses),
	}, nil
}
