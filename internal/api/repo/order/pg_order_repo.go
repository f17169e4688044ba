package order_repo

import (
	"context"
	"fmt"
	"slices"

	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/page"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var orderColumns = []string{
	"account_id", "id", "status", "total_amount", "paid_amount", "currency_id", "buyer_id",
	"buyer_nickname", "shipment_id", "date_created", "date_closed", "last_updated",
}

var listExtraColumns = []string{"created_at", "updated_at", "count(*) OVER() AS total"}

// PgOrderRepo stores marketplace orders keyed by (account_id, id).
type PgOrderRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgOrderRepo(pg *postgres.Postgres) order.OrderRepo {
	return &PgOrderRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgOrderRepo) UpsertOrders(ctx context.Context, orders []order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	insert := r.builder.Insert("orders").Columns(orderColumns...)
	for _, o := range orders {
		insert = insert.Values(o.AccountID, o.ID, o.Status, o.TotalAmount, o.PaidAmount, o.CurrencyID, o.BuyerID,
			o.BuyerNickname, o.ShipmentID, o.DateCreated, o.DateClosed, o.LastUpdated)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, orderColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert orders query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert orders: %w", err)
	}
	return nil
}

func (r *PgOrderRepo) ListOrders(ctx context.Context, accountID uuid.UUID, p page.Page) ([]order.Order, int, error) {
	query, args, err := r.builder.Select(slices.Concat(orderColumns, listExtraColumns)...).
		From("orders").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("date_created DESC", "id DESC").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []order.Order
		total  int
	)
	for rows.Next() {
		var o order.Order
		err := rows.Scan(&o.AccountID, &o.ID, &o.Status, &o.TotalAmount, &o.PaidAmount, &o.CurrencyID, &o.BuyerID,
			&o.BuyerNickname, &o.ShipmentID, &o.DateCreated, &o.DateClosed, &o.LastUpdated,
			&o.CreatedAt, &o.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, total, nil
}
