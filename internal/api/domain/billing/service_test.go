package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerops/internal/api/domain/page"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func billingService(t *testing.T) (*BillingService, *MockBillingRepo, *MockTxBillingRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockBillingRepo(ctrl)
	tx := NewMockTxBillingRepo(ctrl)
	repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(TxBillingRepo) error) error { return fn(tx) }).AnyTimes()

	return NewBillingService(repo), repo, tx
}

func TestBillingService_SaveStatement(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	period := Period{
		AccountID: accountID,
		Key:       "2024-05-01",
		DateFrom:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("1520.75"),
	}

	t.Run("should store period with charges", func(t *testing.T) {
		service, _, tx := billingService(t)
		st := Statement{
			Period:   period,
			Expenses: []Expense{{AccountID: accountID, ID: 1, PeriodKey: period.Key, Amount: decimal.NewFromInt(100)}},
			Taxes:    []Tax{{AccountID: accountID, ID: 2, PeriodKey: period.Key, Amount: decimal.NewFromInt(21)}},
		}

		gomock.InOrder(
			tx.EXPECT().UpsertPeriod(ctx, period).Return(nil),
			tx.EXPECT().UpsertExpenses(ctx, st.Expenses).Return(nil),
			tx.EXPECT().UpsertTaxes(ctx, st.Taxes).Return(nil),
		)

		require.NoError(t, service.SaveStatement(ctx, st))
	})

	t.Run("should skip empty charge lists", func(t *testing.T) {
		service, _, tx := billingService(t)
		tx.EXPECT().UpsertPeriod(ctx, period).Return(nil)

		require.NoError(t, service.SaveStatement(ctx, Statement{Period: period}))
	})

	t.Run("should abort on period failure", func(t *testing.T) {
		service, _, tx := billingService(t)
		tx.EXPECT().UpsertPeriod(ctx, period).Return(errors.New("database error"))

		err := service.SaveStatement(ctx, Statement{Period: period, Taxes: []Tax{{ID: 1}}})

		assert.EqualError(t, err, "upsert period 2024-05-01: database error")
	})
}

func TestBillingService_Expenses(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	p := page.Default()

	t.Run("should list expenses of a period", func(t *testing.T) {
		service, repo, _ := billingService(t)
		expenses := []Expense{{ID: 1, PeriodKey: "2024-05-01"}}
		repo.EXPECT().ListExpenses(ctx, accountID, "2024-05-01", p).Return(expenses, 1, nil)

		result, err := service.Expenses(ctx, accountID, "2024-05-01", p)

		require.NoError(t, err)
		assert.Equal(t, page.NewResult(expenses, 1, p), result)
	})

	t.Run("should reject malformed period key", func(t *testing.T) {
		service, _, _ := billingService(t)

		_, err := service.Expenses(ctx, accountID, "May", p)

		assert.ErrorIs(t, err, ErrInvalidPeriodKey)
	})
}

func TestBillingService_Taxes(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	p := page.Page{Limit: 10, Offset: 10}

	service, repo, _ := billingService(t)
	repo.EXPECT().ListTaxes(ctx, accountID, "2024-04-01", p).Return(nil, 10, nil)

	result, err := service.Taxes(ctx, accountID, "2024-04-01", p)

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 10, result.Offset)
}
