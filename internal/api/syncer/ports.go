package syncer

import (
	"context"
	"time"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"

	"github.com/google/uuid"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package syncer

// Marketplace is the read side of the marketplace API the sync pulls from.
type Marketplace interface {
	SearchItemIDs(ctx context.Context, accessToken string, sellerID int64, offset, limit int) ([]string, marketplace.Paging, error)
	GetItems(ctx context.Context, accessToken string, ids []string) ([]marketplace.Item, error)
	GetItem(ctx context.Context, accessToken, itemID string) (marketplace.Item, error)
	SearchOrders(ctx context.Context, accessToken string, sellerID int64, since time.Time, offset, limit int) ([]marketplace.Order, marketplace.Paging, error)
	GetOrder(ctx context.Context, accessToken string, orderID int64) (marketplace.Order, error)
	GetShipment(ctx context.Context, accessToken string, shipmentID int64) (marketplace.Shipment, error)
	GetShipmentSLA(ctx context.Context, accessToken string, shipmentID int64) (marketplace.SLA, error)
	SearchQuestions(ctx context.Context, accessToken string, sellerID int64, offset, limit int) ([]marketplace.Question, int, error)
	GetQuestion(ctx context.Context, accessToken string, questionID int64) (marketplace.Question, error)
	BillingPeriods(ctx context.Context, accessToken string, offset, limit int) ([]marketplace.BillingPeriod, int, error)
	BillingDetails(ctx context.Context, accessToken, periodKey string, offset, limit int) ([]marketplace.BillingDetail, int, error)
}

type AccountReader interface {
	Get(ctx context.Context, id uuid.UUID) (account.Account, error)
}

type TokenSource interface {
	AccessToken(ctx context.Context, accountID uuid.UUID) (string, error)
}

type ItemStore interface {
	Save(ctx context.Context, items ...item.Item) error
}

type OrderStore interface {
	Save(ctx context.Context, orders ...order.Order) error
}

type ShipmentStore interface {
	Save(ctx context.Context, shipments ...shipment.Shipment) error
}

type QuestionStore interface {
	Save(ctx context.Context, questions ...question.Question) error
}

type BillingStore interface {
	SaveStatement(ctx context.Context, st billing.Statement) error
}

// SyncTracker records completed syncs and selects the accounts due for the next one.
type SyncTracker interface {
	MarkSynced(ctx context.Context, accountID uuid.UUID, at time.Time) error
	DueForSync(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// AccountSyncer runs a full sync of one account.
type AccountSyncer interface {
	SyncAccount(ctx context.Context, accountID uuid.UUID, trigger Trigger) (Report, error)
}
