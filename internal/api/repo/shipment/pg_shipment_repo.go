package shipment_repo

import (
	"context"
	"fmt"
	"slices"

	"sellerops/internal/api/domain/shipment"
	"sellerops/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var shipmentColumns = []string{
	"account_id", "id", "order_id", "status", "substatus", "logistic_type",
	"expected_date", "handling_limit", "delivery_limit", "date_created", "last_updated",
}

type PgShipmentRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgShipmentRepo(pg *postgres.Postgres) shipment.ShipmentRepo {
	return &PgShipmentRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgShipmentRepo) UpsertShipments(ctx context.Context, shipments []shipment.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	insert := r.builder.Insert("shipments").Columns(shipmentColumns...)
	for _, s := range shipments {
		insert = insert.Values(s.AccountID, s.ID, s.OrderID, s.Status, s.Substatus, s.LogisticType,
			s.ExpectedDate, s.HandlingLimit, s.DeliveryLimit, s.DateCreated, s.LastUpdated)
	}

	query, args, err := insert.
		Suffix(postgres.OnConflictUpdate([]string{"account_id", "id"}, shipmentColumns[2:]...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert shipments query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert shipments: %w", err)
	}
	return nil
}

func (r *PgShipmentRepo) ListByStatus(ctx context.Context, accountID uuid.UUID, statuses []string) ([]shipment.Shipment, error) {
	query, args, err := r.builder.Select(slices.Concat(shipmentColumns, []string{"created_at", "updated_at"})...).
		From("shipments").
		Where(squirrel.Eq{"account_id": accountID, "status": statuses}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list shipments query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []shipment.Shipment
	for rows.Next() {
		var s shipment.Shipment
		err := rows.Scan(&s.AccountID, &s.ID, &s.OrderID, &s.Status, &s.Substatus, &s.LogisticType,
			&s.ExpectedDate, &s.HandlingLimit, &s.DeliveryLimit, &s.DateCreated, &s.LastUpdated,
			&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan shipment row: %w", err)
		}
		shipments = append(shipments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shipment rows: %w", err)
	}
	return shipments, nil
}
