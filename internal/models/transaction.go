package models

import (
	"gorm.io/gorm"
)

// Transaction is a single ledger entry owned by one user.
// Amount is a fixed-point decimal with 2 fractional digits: positive values
// are income, negative values are expenses. Rows are never updated in place;
// the only lifecycle is create followed by an optional hard delete.
type Transaction struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   string `gorm:"not null;index" json:"user_id"`
	Title    string `gorm:"not null" json:"title"`
	Amount   Money  `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category string `gorm:"not null" json:"category"`
	// CreatedAt is a calendar date, not a timestamp. GORM's autoCreateTime
	// is disabled so BeforeCreate controls the default.
	CreatedAt Date `gorm:"type:date;not null;<-:create" json:"created_at"`
}

// BeforeCreate defaults CreatedAt to today's date and normalizes the
// amount to exactly 2 decimal places before the row is written.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = Today()
	}
	t.Amount = NewMoney(t.Amount.Decimal)
	return nil
}
