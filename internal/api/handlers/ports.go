package handlers

import (
	"context"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/page"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/settings"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/fakedata"

	"github.com/google/uuid"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package handlers

type AuthorizeURLer interface {
	AuthCodeURL(state string) string
}

type SessionIssuer interface {
	Issue(accountID uuid.UUID, marketplaceUserID int64) (auth.Session, error)
}

type AccountService interface {
	Connect(ctx context.Context, code string) (account.Account, error)
	Get(ctx context.Context, id uuid.UUID) (account.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingsService interface {
	Get(ctx context.Context, accountID uuid.UUID) (settings.Settings, error)
	Update(ctx context.Context, accountID uuid.UUID, update settings.Update) (settings.Settings, error)
	Reset(ctx context.Context, accountID uuid.UUID) (settings.Settings, error)
}

type ShipmentService interface {
	Pending(ctx context.Context, accountID uuid.UUID, urgency shipment.Urgency) ([]shipment.PendingShipment, error)
	Stats(ctx context.Context, accountID uuid.UUID) (shipment.Stats, error)
}

type ItemLister interface {
	List(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[item.Item], error)
}

type OrderLister interface {
	List(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[order.Order], error)
}

type QuestionLister interface {
	List(ctx context.Context, accountID uuid.UUID, q question.Query, p page.Page) (page.Result[question.Question], error)
}

type BillingReader interface {
	Periods(ctx context.Context, accountID uuid.UUID, p page.Page) (page.Result[billing.Period], error)
	Expenses(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) (page.Result[billing.Expense], error)
	Taxes(ctx context.Context, accountID uuid.UUID, periodKey string, p page.Page) (page.Result[billing.Tax], error)
}

type Populator interface {
	Populate(ctx context.Context, accountID uuid.UUID, opts fakedata.Options) (fakedata.Summary, error)
}
