package order_repo

import (
	"context"
	"slices"
	"testing"
	"time"

	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/page"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgOrderRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()
	accountID := uuid.New()
	created := time.Now()
	shipmentID := int64(4000)

	o := order.Order{
		AccountID:     accountID,
		ID:            2000001,
		Status:        order.StatusPaid,
		TotalAmount:   decimal.NewFromInt(3000),
		PaidAmount:    decimal.NewFromInt(3000),
		CurrencyID:    "ARS",
		BuyerID:       7,
		BuyerNickname: "BUYER",
		ShipmentID:    &shipmentID,
		DateCreated:   created,
	}

	mock.ExpectExec(`INSERT INTO orders \(account_id,id,status,.*\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9,\$10,\$11,\$12\) ON CONFLICT \(account_id, id\) DO UPDATE SET status = EXCLUDED.status`).
		WithArgs(accountID, int64(2000001), "paid", o.TotalAmount, o.PaidAmount, "ARS", int64(7), "BUYER", &shipmentID, created, o.DateClosed, o.LastUpdated).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.UpsertOrders(ctx, []order.Order{o}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgOrderRepo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()
	accountID := uuid.New()
	now := time.Now()

	columns := slices.Concat(orderColumns, []string{"created_at", "updated_at", "total"})
	mock.ExpectQuery(`SELECT .* FROM orders WHERE account_id = \$1 ORDER BY date_created DESC, id DESC LIMIT 50 OFFSET 0`).
		WithArgs(accountID).
		WillReturnRows(mock.NewRows(columns).
			AddRow(accountID, int64(1), "paid", decimal.NewFromInt(10), decimal.NewFromInt(10), "ARS", int64(7), "B", nil, now, nil, nil, now, now, 2).
			AddRow(accountID, int64(2), "cancelled", decimal.NewFromInt(5), decimal.Zero, "ARS", int64(8), "C", nil, now, nil, nil, now, now, 2))

	orders, total, err := repo.ListOrders(ctx, accountID, page.Default())

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, orders, 2)
	assert.Nil(t, orders[0].ShipmentID)
	assert.Equal(t, order.StatusCancelled, orders[1].Status)
}
