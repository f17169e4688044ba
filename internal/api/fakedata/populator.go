package fakedata

import (
	"context"
	"log/slog"
	"time"

	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"

	"github.com/google/uuid"
)

//go:generate mockgen -source populator.go -destination mock_populator.go -package fakedata

type Store interface {
	SaveItems(ctx context.Context, items ...item.Item) error
	SaveOrders(ctx context.Context, orders ...order.Order) error
	SaveShipments(ctx context.Context, shipments ...shipment.Shipment) error
	SaveQuestions(ctx context.Context, questions ...question.Question) error
	SaveStatement(ctx context.Context, st billing.Statement) error
}

type Summary struct {
	Items     int    `json:"items"`
	Orders    int    `json:"orders"`
	Shipments int    `json:"shipments"`
	Questions int    `json:"questions"`
	Expenses  int    `json:"expenses"`
	Taxes     int    `json:"taxes"`
	PeriodKey string `json:"period_key"`
}

type Populator struct {
	store Store
	now   func() time.Time
}

func NewPopulator(store Store) *Populator {
	return &Populator{store: store, now: time.Now}
}

// Populate generates a dataset and upserts it for the account. Re-running with the
// same seed overwrites the same rows.
func (p *Populator) Populate(ctx context.Context, accountID uuid.UUID, opts Options) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}

	ds := Generate(accountID, p.now(), opts)

	if err := p.store.SaveItems(ctx, ds.Items...); err != nil {
		return Summary{}, err
	}
	if err := p.store.SaveOrders(ctx, ds.Orders...); err != nil {
		return Summary{}, err
	}
	if err := p.store.SaveShipments(ctx, ds.Shipments...); err != nil {
		return Summary{}, err
	}
	if err := p.store.SaveQuestions(ctx, ds.Questions...); err != nil {
		return Summary{}, err
	}
	if err := p.store.SaveStatement(ctx, ds.Statement); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Items:     len(ds.Items),
		Orders:    len(ds.Orders),
		Shipments: len(ds.Shipments),
		Questions: len(ds.Questions),
		Expenses:  len(ds.Statement.Expenses),
		Taxes:     len(ds.Statement.Taxes),
		PeriodKey: ds.Statement.Period.Key,
	}
	slog.InfoContext(ctx, "Test data populated",
		slog.String("account_id", accountID.String()),
		slog.Int("items", sum.Items),
		slog.Int("orders", sum.Orders),
		slog.Int("shipments", sum.Shipments))
	return sum, nil
}

// Services adapts the domain services to Store.
type Services struct {
	Items     *item.ItemService
	Orders    *order.OrderService
	Shipments *shipment.ShipmentService
	Questions *question.QuestionService
	Billing   *billing.BillingService
}

func (s Services) SaveItems(ctx context.Context, items ...item.Item) error {
	return s.Items.Save(ctx, items...)
}

func (s Services) SaveOrders(ctx context.Context, orders ...order.Order) error {
	return s.Orders.Save(ctx, orders...)
}

func (s Services) SaveShipments(ctx context.Context, shipments ...shipment.Shipment) error {
	return s.Shipments.Save(ctx, shipments...)
}

func (s Services) SaveQuestions(ctx context.Context, questions ...question.Question) error {
	return s.Questions.Save(ctx, questions...)
}

func (s Services) SaveStatement(ctx context.Context, st billing.Statement) error {
	return s.Billing.SaveStatement(ctx, st)
}
