package item_repo

import (
	"context"
	"fmt"
	"slices"

	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/page"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var itemColumns = []string{
	"account_id", "id", "title", "price", "currency_id", "available_quantity", "sold_quantity",
	"status", "permalink", "thumbnail", "listing_type", "last_updated",
}

var listExtraColumns = []string{"created_at", "updated_at", "count(*) OVER() AS total"}

type PgItemRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgItemRepo(pg *postgres.Postgres) item.ItemRepo {
	return &PgItemRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgItemRepo) UpsertItems(ctx context.Context, items []item.Item) error {
	if len(items) == 0 {
		return nil
	}

	insert := r.builder.Insert("items").Columns(itemColumns...)
	for _, it := range items {
		insert = insert.Values(it.AccountID, it.ID, it.Title, it.Price, it.CurrencyID, it.AvailableQuantity,
			it.SoldQuantity, it.Status, it.Permalink, it.Thumbnail, it.ListingType, it.LastUpdated)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, itemColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert items query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert items: %w", err)
	}
	return nil
}

func (r *PgItemRepo) ListItems(ctx context.Context, accountID uuid.UUID, p page.Page) ([]item.Item, int, error) {
	query, args, err := r.builder.Select(slices.Concat(itemColumns, listExtraColumns)...).
		From("items").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("last_updated DESC NULLS LAST", "id").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var (
		items []item.Item
		total int
	)
	for rows.Next() {
		var it item.Item
		err := rows.Scan(&it.AccountID, &it.ID, &it.Title, &it.Price, &it.CurrencyID, &it.AvailableQuantity,
			&it.SoldQuantity, &it.Status, &it.Permalink, &it.Thumbnail, &it.ListingType, &it.LastUpdated,
			&it.CreatedAt, &it.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate item rows: %w", err)
	}
	return items, total, nil
}
