package billing_repo

import (
	"context"
	"fmt"
	"slices"

	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/page"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	periodColumns = []string{
		"account_id", "key", "date_from", "date_to", "expiration_date", "amount", "unpaid_amount", "status",
	}
	expenseColumns = []string{
		"account_id", "id", "period_key", "type", "description", "amount", "date", "order_id",
	}
	taxColumns = []string{
		"account_id", "id", "period_key", "type", "description", "amount", "date",
	}
	listExtraColumns = []string{"created_at", "updated_at", "count(*) OVER() AS total"}
)

type PgBillingRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgBillingRepo(pg *postgres.Postgres) billing.BillingRepo {
	return &PgBillingRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgBillingRepo) InTransaction(ctx context.Context, fn func(repo billing.TxBillingRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		return fn(&repo{db: tx, builder: r.pg.Builder})
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) UpsertPeriod(ctx context.Context, p billing.Period) error {
	query, args, err := r.builder.Insert("billing_periods").
		Columns(periodColumns...).
		Values(p.AccountID, p.Key, p.DateFrom, p.DateTo, p.ExpirationDate, p.Amount, p.UnpaidAmount, p.Status).
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "key"}, periodColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert period query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert period: %w", err)
	}
	return nil
}

func (r *repo) UpsertExpenses(ctx context.Context, expenses []billing.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	insert := r.builder.Insert("expenses").Columns(expenseColumns...)
	for _, e := range expenses {
		insert = insert.Values(e.AccountID, e.ID, e.PeriodKey, e.Type, e.Description, e.Amount, e.Date, e.OrderID)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, expenseColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert expenses query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert expenses: %w", err)
	}
	return nil
}

func (r *repo) UpsertTaxes(ctx context.Context, taxes []billing.Tax) error {
	if len(taxes) == 0 {
		return nil
	}

	insert := r.builder.Insert("taxes").Columns(taxColumns...)
	for _, t := range taxes {
		insert = insert.Values(t.AccountID, t.ID, t.PeriodKey, t.Type, t.Description, t.Amount, t.Date)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, taxColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert taxes query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert taxes: %w", err)
	}
	return nil
}

func (r *repo) ListPeriods(ctx context.Context, accountID uuid.UUID, p page.Page) ([]billing.Period, int, error) {
	sel := r.builder.Select(slices.Concat(periodColumns, listExtraColumns)...).
		From("billing_periods").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("date_from DESC")

	return list(ctx, r.db, sel, p, func(rows pgx.Rows, total *int) (billing.Period, error) {
		var bp billing.Period
		err := rows.Scan(&bp.AccountID, &bp.Key, &bp.DateFrom, &bp.DateTo, &bp.ExpirationDate, &bp.Amount,
			&bp.UnpaidAmount, &bp.Status, &bp.CreatedAt, &bp.UpdatedAt, total)
		return bp, err
	})
}

func (r *repo) ListExpenses(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) ([]billing.Expense, int, error) {
	sel := r.builder.Select(slices.Concat(expenseColumns, listExtraColumns)...).
		From("expenses").
		Where(squirrel.Eq{"account_id": accountID, "period_key": periodKey}).
		OrderBy("date DESC", "id DESC")

	return list(ctx, r.db, sel, p, func(rows pgx.Rows, total *int) (billing.Expense, error) {
		var e billing.Expense
		err := rows.Scan(&e.AccountID, &e.ID, &e.PeriodKey, &e.Type, &e.Description, &e.Amount, &e.Date, &e.OrderID,
			&e.CreatedAt, &e.UpdatedAt, total)
		return e, err
	})
}

func (r *repo) ListTaxes(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) ([]billing.Tax, int, error) {
	sel := r.builder.Select(slices.Concat(taxColumns, listExtraColumns)...).
		From("taxes").
		Where(squirrel.Eq{"account_id": accountID, "period_key": periodKey}).
		OrderBy("date DESC", "id DESC")

	return list(ctx, r.db, sel, p, func(rows pgx.Rows, total *int) (billing.Tax, error) {
		var t billing.Tax
		err := rows.Scan(&t.AccountID, &t.ID, &t.PeriodKey, &t.Type, &t.Description, &t.Amount, &t.Date,
			&t.CreatedAt, &t.UpdatedAt, total)
		return t, err
	})
}

func list[T any](
	ctx context.Context,
	db postgres.Executor,
	sel squirrel.SelectBuilder,
	p page.Page,
	scan func(rows pgx.Rows, total *int) (T, error),
) ([]T, int, error) {
	query, args, err := sel.Limit(uint64(p.Limit)).Offset(uint64(p.Offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var (
		out   []T
		total int
	)
	for rows.Next() {
		v, err := scan(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}
	return out, total, nil
}
