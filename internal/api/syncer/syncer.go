// Package syncer pulls seller data from the marketplace into the local store,
// either for a whole account or one resource at a time.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"
	"sellerops/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Trigger labels what started an account sync.
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

const (
	defaultPageSize       = 50
	defaultBillingPeriods = 3
	defaultOrdersSince    = 30 * 24 * time.Hour

	// The search endpoints refuse offsets past this without scan mode.
	maxSearchOffset = 1000
)

type Config struct {
	// OrdersSince is the lookback window for the order search.
	OrdersSince time.Duration
	PageSize    int
	// BillingPeriods is how many of the latest billing periods are refreshed.
	BillingPeriods int
}

func (c Config) withDefaults() Config {
	if c.OrdersSince <= 0 {
		c.OrdersSince = defaultOrdersSince
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.BillingPeriods <= 0 {
		c.BillingPeriods = defaultBillingPeriods
	}
	return c
}

type Deps struct {
	Marketplace Marketplace
	Accounts    AccountReader
	Tokens      TokenSource
	Items       ItemStore
	Orders      OrderStore
	Shipments   ShipmentStore
	Questions   QuestionStore
	Billing     BillingStore
	Tracker     SyncTracker
}

// Report counts what one account sync stored.
type Report struct {
	AccountID      uuid.UUID `json:"account_id"`
	Trigger        Trigger   `json:"trigger"`
	Items          int       `json:"items"`
	Orders         int       `json:"orders"`
	Shipments      int       `json:"shipments"`
	Questions      int       `json:"questions"`
	BillingPeriods int       `json:"billing_periods"`
	Expenses       int       `json:"expenses"`
	Taxes          int       `json:"taxes"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

type Syncer struct {
	api       Marketplace
	accounts  AccountReader
	tokens    TokenSource
	items     ItemStore
	orders    OrderStore
	shipments ShipmentStore
	questions QuestionStore
	billing   BillingStore
	tracker   SyncTracker
	cfg       Config
	now       func() time.Time

	// one running sync per account; concurrent triggers share its result
	group singleflight.Group
}

func New(deps Deps, cfg Config) *Syncer {
	return &Syncer{
		api:       deps.Marketplace,
		accounts:  deps.Accounts,
		tokens:    deps.Tokens,
		items:     deps.Items,
		orders:    deps.Orders,
		shipments: deps.Shipments,
		questions: deps.Questions,
		billing:   deps.Billing,
		tracker:   deps.Tracker,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}

// SyncAccount refreshes every resource of the account. A failing resource does not
// stop the others; their errors are joined. last_synced_at only moves on full success.
func (s *Syncer) SyncAccount(ctx context.Context, accountID uuid.UUID, trigger Trigger) (Report, error) {
	v, err, _ := s.group.Do(accountID.String(), func() (any, error) {
		return s.syncAccount(ctx, accountID, trigger)
	})
	rep, _ := v.(Report)
	return rep, err
}

type syncStep struct {
	name string
	run  func(ctx context.Context, acc account.Account, token string, rep *Report) error
}

func (s *Syncer) syncAccount(ctx context.Context, accountID uuid.UUID, trigger Trigger) (rep Report, err error) {
	rep = Report{AccountID: accountID, Trigger: trigger, StartedAt: s.now()}
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.SyncJobDuration.WithLabelValues(string(trigger), status).Observe(s.now().Sub(rep.StartedAt).Seconds())
	}()

	acc, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return rep, err
	}
	token, err := s.tokens.AccessToken(ctx, accountID)
	if err != nil {
		return rep, fmt.Errorf("access token: %w", err)
	}

	steps := []syncStep{
		{"items", s.syncItems},
		{"orders", s.syncOrders},
		{"questions", s.syncQuestions},
		{"billing", s.syncBilling},
	}

	var errs []error
	for _, step := range steps {
		if err := step.run(ctx, acc, token, &rep); err != nil {
			errs = append(errs, fmt.Errorf("sync %s: %w", step.name, err))
			// the remaining steps would fail the same way
			if errors.Is(err, marketplace.ErrUnauthorized) || ctx.Err() != nil {
				break
			}
		}
	}
	rep.FinishedAt = s.now()

	if err := errors.Join(errs...); err != nil {
		return rep, err
	}
	if err := s.tracker.MarkSynced(ctx, accountID, rep.FinishedAt); err != nil {
		return rep, err
	}

	slog.InfoContext(ctx, "Account synced",
		slog.String("account_id", accountID.String()),
		slog.String("trigger", string(trigger)),
		slog.Int("items", rep.Items),
		slog.Int("orders", rep.Orders),
		slog.Int("shipments", rep.Shipments),
		slog.Int("questions", rep.Questions),
		slog.Int("billing_periods", rep.BillingPeriods),
		slog.Duration("duration", rep.FinishedAt.Sub(rep.StartedAt)))
	return rep, nil
}

func (s *Syncer) syncItems(ctx context.Context, acc account.Account, token string, rep *Report) error {
	for offset := 0; offset < maxSearchOffset; {
		ids, paging, err := s.api.SearchItemIDs(ctx, token, acc.MarketplaceUserID, offset, s.cfg.PageSize)
		if err != nil {
			return fmt.Errorf("search items at offset %d: %w", offset, err)
		}
		if len(ids) == 0 {
			return nil
		}

		for batch := range slices.Chunk(ids, marketplace.MultigetLimit) {
			found, err := s.api.GetItems(ctx, token, batch)
			if err != nil {
				return fmt.Errorf("get items: %w", err)
			}
			items := make([]item.Item, 0, len(found))
			for _, it := range found {
				items = append(items, toItem(acc.ID, it))
			}
			if err := s.items.Save(ctx, items...); err != nil {
				return err
			}
			rep.Items += len(items)
			metrics.SyncRecordsUpserted.WithLabelValues("items").Add(float64(len(items)))
		}

		offset += len(ids)
		if offset >= paging.Total {
			return nil
		}
	}
	return nil
}

// syncOrders stores the orders of the lookback window and then the shipments they reference.
func (s *Syncer) syncOrders(ctx context.Context, acc account.Account, token string, rep *Report) error {
	since := s.now().Add(-s.cfg.OrdersSince)

	var shipmentIDs []int64
	for offset := 0; offset < maxSearchOffset; {
		results, paging, err := s.api.SearchOrders(ctx, token, acc.MarketplaceUserID, since, offset, s.cfg.PageSize)
		if err != nil {
			return fmt.Errorf("search orders at offset %d: %w", offset, err)
		}
		if len(results) == 0 {
			break
		}

		orders := make([]order.Order, 0, len(results))
		for _, o := range results {
			orders = append(orders, toOrder(acc.ID, o))
			if o.Shipping.ID != 0 {
				shipmentIDs = append(shipmentIDs, o.Shipping.ID)
			}
		}
		if err := s.orders.Save(ctx, orders...); err != nil {
			return err
		}
		rep.Orders += len(orders)
		metrics.SyncRecordsUpserted.WithLabelValues("orders").Add(float64(len(orders)))

		offset += len(results)
		if offset >= paging.Total {
			break
		}
	}

	slices.Sort(shipmentIDs)
	shipmentIDs = slices.Compact(shipmentIDs)

	var (
		shipments []shipment.Shipment
		errs      []error
	)
	for _, id := range shipmentIDs {
		sh, err := s.fetchShipment(ctx, acc.ID, token, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("shipment %d: %w", id, err))
			if errors.Is(err, marketplace.ErrUnauthorized) || ctx.Err() != nil {
				break
			}
			continue
		}
		shipments = append(shipments, sh)
	}
	if len(shipments) > 0 {
		if err := s.shipments.Save(ctx, shipments...); err != nil {
			errs = append(errs, err)
		} else {
			rep.Shipments += len(shipments)
			metrics.SyncRecordsUpserted.WithLabelValues("shipments").Add(float64(len(shipments)))
		}
	}
	return errors.Join(errs...)
}

// fetchShipment loads a shipment with its SLA. Shipments without an SLA keep the
// handling limit as their deadline.
func (s *Syncer) fetchShipment(ctx context.Context, accountID uuid.UUID, token string, shipmentID int64) (shipment.Shipment, error) {
	sh, err := s.api.GetShipment(ctx, token, shipmentID)
	if err != nil {
		return shipment.Shipment{}, err
	}

	var slaPtr *marketplace.SLA
	sla, err := s.api.GetShipmentSLA(ctx, token, shipmentID)
	switch {
	case err == nil:
		slaPtr = &sla
	case errors.Is(err, marketplace.ErrNotFound):
	default:
		return shipment.Shipment{}, fmt.Errorf("get sla: %w", err)
	}
	return toShipment(accountID, sh, slaPtr), nil
}

func (s *Syncer) syncQuestions(ctx context.Context, acc account.Account, token string, rep *Report) error {
	for offset := 0; offset < maxSearchOffset; {
		results, total, err := s.api.SearchQuestions(ctx, token, acc.MarketplaceUserID, offset, s.cfg.PageSize)
		if err != nil {
			return fmt.Errorf("search questions at offset %d: %w", offset, err)
		}
		if len(results) == 0 {
			return nil
		}

		questions := make([]question.Question, 0, len(results))
		for _, q := range results {
			questions = append(questions, toQuestion(acc.ID, q))
		}
		if err := s.questions.Save(ctx, questions...); err != nil {
			return err
		}
		rep.Questions += len(questions)
		metrics.SyncRecordsUpserted.WithLabelValues("questions").Add(float64(len(questions)))

		offset += len(results)
		if offset >= total {
			return nil
		}
	}
	return nil
}

func (s *Syncer) syncBilling(ctx context.Context, acc account.Account, token string, rep *Report) error {
	periods, _, err := s.api.BillingPeriods(ctx, token, 0, s.cfg.BillingPeriods)
	if err != nil {
		return fmt.Errorf("billing periods: %w", err)
	}

	for _, p := range periods {
		var details []marketplace.BillingDetail
		for offset := 0; ; {
			page, total, err := s.api.BillingDetails(ctx, token, p.Key, offset, s.cfg.PageSize)
			if err != nil {
				return fmt.Errorf("billing details of %s: %w", p.Key, err)
			}
			details = append(details, page...)
			offset += len(page)
			if len(page) == 0 || offset >= total {
				break
			}
		}

		st := toStatement(toPeriod(acc.ID, p), details)
		if err := s.billing.SaveStatement(ctx, st); err != nil {
			return err
		}
		rep.BillingPeriods++
		rep.Expenses += len(st.Expenses)
		rep.Taxes += len(st.Taxes)
		metrics.SyncRecordsUpserted.WithLabelValues("billing_periods").Inc()
		metrics.SyncRecordsUpserted.WithLabelValues("expenses").Add(float64(len(st.Expenses)))
		metrics.SyncRecordsUpserted.WithLabelValues("taxes").Add(float64(len(st.Taxes)))
	}
	return nil
}
