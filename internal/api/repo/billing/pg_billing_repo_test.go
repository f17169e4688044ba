package billing_repo

import (
	"context"
	"slices"
	"testing"
	"time"

	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/page"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestUpsertPeriod(t *testing.T) {
	r, mock := newMockRepo(t)
	p := billing.Period{
		AccountID:    uuid.New(),
		Key:          "2024-05-01",
		DateFrom:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DateTo:       time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.RequireFromString("1520.75"),
		UnpaidAmount: decimal.Zero,
		Status:       "CLOSED",
	}

	mock.ExpectExec(`INSERT INTO billing_periods \(account_id,key,date_from,date_to,expiration_date,amount,unpaid_amount,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) ON CONFLICT \(account_id, key\) DO UPDATE SET date_from = EXCLUDED.date_from`).
		WithArgs(p.AccountID, p.Key, p.DateFrom, p.DateTo, p.ExpirationDate, p.Amount, p.UnpaidAmount, p.Status).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.UpsertPeriod(context.Background(), p))
}

func TestUpsertTaxes_Empty(t *testing.T) {
	r, mock := newMockRepo(t)

	require.NoError(t, r.UpsertTaxes(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpenses(t *testing.T) {
	r, mock := newMockRepo(t)
	accountID := uuid.New()
	now := time.Now()
	orderID := int64(2000001)

	columns := slices.Concat(expenseColumns, []string{"created_at", "updated_at", "total"})
	mock.ExpectQuery(`SELECT .* FROM expenses WHERE account_id = \$1 AND period_key = \$2 ORDER BY date DESC, id DESC LIMIT 50 OFFSET 0`).
		WithArgs(accountID, "2024-05-01").
		WillReturnRows(mock.NewRows(columns).
			AddRow(accountID, int64(1), "2024-05-01", "CV", "Cargo por venta", decimal.RequireFromString("120.50"), now, &orderID, now, now, 1))

	expenses, total, err := r.ListExpenses(context.Background(), accountID, "2024-05-01", page.Default())

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, expenses, 1)
	assert.Equal(t, &orderID, expenses[0].OrderID)
}

func TestListPeriods_QueryError(t *testing.T) {
	r, mock := newMockRepo(t)
	accountID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM billing_periods WHERE account_id = \$1 ORDER BY date_from DESC LIMIT 50 OFFSET 0`).
		WithArgs(accountID).
		WillReturnError(assert.AnError)

	_, _, err := r.ListPeriods(context.Background(), accountID, page.Default())

	assert.ErrorIs(t, err, assert.AnError)
}
