package transaction

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger is an in-memory TransactionRepository mirroring the store's
// contract: auto-assigned ids, hard deletes, per-user filtering, decimal
// aggregation.
type fakeLedger struct {
	nextID  uint
	rows    map[uint]models.Transaction
	failAll bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{nextID: 1, rows: make(map[uint]models.Transaction)}
}

func (f *fakeLedger) Create(_ context.Context, tx *models.Transaction) error {
	if f.failAll {
		return fmt.Errorf("store unavailable")
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = models.Today()
	}
	tx.Amount = models.NewMoney(tx.Amount.Decimal)
	tx.ID = f.nextID
	f.nextID++
	f.rows[tx.ID] = *tx
	return nil
}

func (f *fakeLedger) FindByUser(_ context.Context, userID string) ([]models.Transaction, error) {
	if f.failAll {
		return nil, fmt.Errorf("store unavailable")
	}
	out := make([]models.Transaction, 0)
	for _, tx := range f.rows {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt.Time) {
			return out[i].CreatedAt.After(out[j].CreatedAt.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeLedger) DeleteByID(_ context.Context, id uint) (int64, error) {
	if f.failAll {
		return 0, fmt.Errorf("store unavailable")
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeLedger) SummaryByUser(_ context.Context, userID string) (*repositories.LedgerSummary, error) {
	if f.failAll {
		return nil, fmt.Errorf("store unavailable")
	}
	balance, income, expenses := decimal.Zero, decimal.Zero, decimal.Zero
	for _, tx := range f.rows {
		if tx.UserID != userID {
			continue
		}
		balance = balance.Add(tx.Amount.Decimal)
		if tx.Amount.IsNegative() {
			expenses = expenses.Add(tx.Amount.Decimal)
		} else {
			income = income.Add(tx.Amount.Decimal)
		}
	}
	return &repositories.LedgerSummary{
		Balance:  models.NewMoney(balance),
		Income:   models.NewMoney(income),
		Expenses: models.NewMoney(expenses),
	}, nil
}

func money(t *testing.T, s string) *models.Money {
	t.Helper()
	m, err := models.MoneyFromString(s)
	require.NoError(t, err)
	return &m
}

func TestService_CreateAndList(t *testing.T) {
	svc := NewService(newFakeLedger())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		UserID:   "u1",
		Title:    "Salary",
		Amount:   money(t, "3000.00"),
		Category: "income",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Salary", list[0].Title)
	assert.Equal(t, "income", list[0].Category)
	assert.Equal(t, "3000.00", list[0].Amount.StringFixed(2))
	assert.Equal(t, created.ID, list[0].ID)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateRequest
		wantFields []string
	}{
		{
			name:       "all fields missing",
			req:        CreateRequest{},
			wantFields: []string{"user_id", "title", "amount", "category"},
		},
		{
			name: "missing title",
			req: CreateRequest{
				UserID:   "u1",
				Amount:   &models.Money{},
				Category: "food",
			},
			wantFields: []string{"title"},
		},
		{
			name: "missing amount",
			req: CreateRequest{
				UserID:   "u1",
				Title:    "Groceries",
				Category: "food",
			},
			wantFields: []string{"amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newFakeLedger()
			svc := NewService(ledger)

			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantFields, ve.Fields)
			assert.Empty(t, ledger.rows, "no partial writes on validation failure")
		})
	}
}

func TestService_Create_ZeroAmountIsValid(t *testing.T) {
	svc := NewService(newFakeLedger())

	created, err := svc.Create(context.Background(), CreateRequest{
		UserID:   "u1",
		Title:    "Correction",
		Amount:   money(t, "0.00"),
		Category: "misc",
	})
	require.NoError(t, err)
	assert.True(t, created.Amount.IsZero())
}

func TestService_List_OrderedMostRecentFirst(t *testing.T) {
	svc := NewService(newFakeLedger())
	ctx := context.Background()

	dates := []string{"2024-01-10", "2024-03-05", "2024-02-20"}
	for i, d := range dates {
		var date models.Date
		require.NoError(t, date.UnmarshalJSON([]byte(`"`+d+`"`)))
		_, err := svc.Create(ctx, CreateRequest{
			UserID:   "u1",
			Title:    fmt.Sprintf("tx-%d", i),
			Amount:   money(t, "10.00"),
			Category: "misc",
			Date:     date,
		})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03-05", list[0].CreatedAt.String())
	assert.Equal(t, "2024-02-20", list[1].CreatedAt.String())
	assert.Equal(t, "2024-01-10", list[2].CreatedAt.String())
}

func TestService_List_UnknownUserIsEmpty(t *testing.T) {
	svc := NewService(newFakeLedger())

	list, err := svc.List(context.Background(), "unknown_user")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_Isolation(t *testing.T) {
	svc := NewService(newFakeLedger())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "alice", Title: "Salary", Amount: money(t, "1000.00"), Category: "income"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{UserID: "bob", Title: "Rent", Amount: money(t, "-500.00"), Category: "housing"})
	require.NoError(t, err)

	aliceList, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	assert.Equal(t, "alice", aliceList[0].UserID)

	bobSummary, err := svc.Summary(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "-500.00", bobSummary.Balance.StringFixed(2))
	assert.Equal(t, "0.00", bobSummary.Income.StringFixed(2))
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newFakeLedger())
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{UserID: "u1", Title: "Oops", Amount: money(t, "5.00"), Category: "misc"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	// Deleting an already-deleted id is NotFound, never a silent success.
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Delete_MissingID(t *testing.T) {
	svc := NewService(newFakeLedger())

	err := svc.Delete(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestService_Summary_Scenario(t *testing.T) {
	svc := NewService(newFakeLedger())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "u1", Title: "Salary", Amount: money(t, "3000.00"), Category: "income"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{UserID: "u1", Title: "Groceries", Amount: money(t, "-45.50"), Category: "food"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2954.50", summary.Balance.StringFixed(2))
	assert.Equal(t, "3000.00", summary.Income.StringFixed(2))
	assert.Equal(t, "-45.50", summary.Expenses.StringFixed(2))
}

func TestService_Summary_EmptyUserIsZero(t *testing.T) {
	svc := NewService(newFakeLedger())

	summary, err := svc.Summary(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "0.00", summary.Balance.StringFixed(2))
	assert.Equal(t, "0.00", summary.Income.StringFixed(2))
	assert.Equal(t, "0.00", summary.Expenses.StringFixed(2))
}

// Balance must equal income + expenses to the cent for arbitrary ledgers.
func TestService_Summary_BalanceIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ctx := context.Background()

	for set := 0; set < 100; set++ {
		svc := NewService(newFakeLedger())

		n := rng.Intn(50) + 1
		wantIncome, wantExpenses := decimal.Zero, decimal.Zero
		for i := 0; i < n; i++ {
			cents := int64(rng.Intn(2_000_001) - 1_000_000)
			amount := models.NewMoney(decimal.New(cents, -2))
			if amount.IsNegative() {
				wantExpenses = wantExpenses.Add(amount.Decimal)
			} else {
				wantIncome = wantIncome.Add(amount.Decimal)
			}

			_, err := svc.Create(ctx, CreateRequest{
				UserID:   "u1",
				Title:    fmt.Sprintf("tx-%d", i),
				Amount:   &amount,
				Category: "random",
			})
			require.NoError(t, err)
		}

		summary, err := svc.Summary(ctx, "u1")
		require.NoError(t, err)

		assert.True(t, summary.Income.Equal(wantIncome),
			"set %d: income %s != %s", set, summary.Income, wantIncome)
		assert.True(t, summary.Expenses.Equal(wantExpenses),
			"set %d: expenses %s != %s", set, summary.Expenses, wantExpenses)
		assert.True(t, summary.Balance.Equal(summary.Income.Decimal.Add(summary.Expenses.Decimal)),
			"set %d: balance %s != income %s + expenses %s",
			set, summary.Balance, summary.Income, summary.Expenses)
	}
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	ledger := newFakeLedger()
	ledger.failAll = true
	svc := NewService(ledger)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "u1", Title: "x", Amount: money(t, "1.00"), Category: "y"})
	assert.Error(t, err)

	_, err = svc.List(ctx, "u1")
	assert.Error(t, err)

	_, err = svc.Summary(ctx, "u1")
	assert.Error(t, err)

	assert.Error(t, svc.Delete(ctx, 1))
}
