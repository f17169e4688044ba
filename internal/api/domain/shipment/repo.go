package shipment

import (
	"context"

	"sellerops/internal/api/domain/settings"

	"github.com/google/uuid"
)

//go:generate mockgen -source repo.go -destination mock_repo.go -package shipment

type ShipmentRepo interface {
	UpsertShipments(ctx context.Context, shipments []Shipment) error
	ListByStatus(ctx context.Context, accountID uuid.UUID, statuses []string) ([]Shipment, error)
}

type SettingsReader interface {
	Get(ctx context.Context, accountID uuid.UUID) (settings.Settings, error)
}
