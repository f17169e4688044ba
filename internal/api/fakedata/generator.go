// Package fakedata fills an account with generated marketplace data for demos
// and local development.
package fakedata

import (
	"fmt"
	"time"

	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"
	"sellerops/pkg/pointers"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultItems     = 20
	defaultOrders    = 30
	defaultQuestions = 15
	maxBatch         = 500

	currencyID = "ARS"
)

// Options sizes a generated batch. Zero counts take the defaults. A non-zero Seed
// reproduces the same data for the same now; zero picks a random seed.
type Options struct {
	Seed      uint64 `json:"seed"`
	Items     int    `json:"items"`
	Orders    int    `json:"orders"`
	Questions int    `json:"questions"`
}

func (o Options) withDefaults() Options {
	if o.Items <= 0 {
		o.Items = defaultItems
	}
	if o.Orders <= 0 {
		o.Orders = defaultOrders
	}
	if o.Questions <= 0 {
		o.Questions = defaultQuestions
	}
	return o
}

func (o Options) Validate() error {
	if o.Items > maxBatch || o.Orders > maxBatch || o.Questions > maxBatch {
		return fmt.Errorf("%w: at most %d records per kind", ErrInvalidOptions, maxBatch)
	}
	return nil
}

type Dataset struct {
	Items     []item.Item
	Orders    []order.Order
	Shipments []shipment.Shipment
	Questions []question.Question
	Statement billing.Statement
}

// deadlineOffsets spread the generated shipments over every urgency bucket.
// A nil entry is a shipment without any deadline.
var deadlineOffsets = []*time.Duration{
	pointers.Ptr(-5 * time.Hour),
	pointers.Ptr(-30 * time.Minute),
	pointers.Ptr(90 * time.Minute),
	pointers.Ptr(6 * time.Hour),
	pointers.Ptr(28 * time.Hour),
	pointers.Ptr(3 * 24 * time.Hour),
	nil,
}

var shipmentStatuses = []string{
	shipment.StatusReadyToShip, shipment.StatusReadyToShip, shipment.StatusHandling,
	shipment.StatusPending, shipment.StatusShipped, shipment.StatusDelivered,
}

var listingTypes = []string{"gold_special", "gold_pro", "free"}

// Generate builds a dataset for accountID around now.
func Generate(accountID uuid.UUID, now time.Time, opts Options) Dataset {
	opts = opts.withDefaults()
	f := gofakeit.New(opts.Seed)
	now = now.Truncate(time.Second)

	g := generator{f: f, accountID: accountID, now: now}
	ds := Dataset{Items: g.items(opts.Items)}
	ds.Orders, ds.Shipments = g.orders(opts.Orders, ds.Items)
	ds.Questions = g.questions(opts.Questions, ds.Items)
	ds.Statement = g.statement(ds.Orders)
	return ds
}

type generator struct {
	f         *gofakeit.Faker
	accountID uuid.UUID
	now       time.Time
}

func (g generator) items(n int) []item.Item {
	base := g.f.Number(100_000_000, 899_999_999)
	items := make([]item.Item, n)
	for i := range items {
		id := fmt.Sprintf("MLA%d", base+i)
		updated := g.now.Add(-time.Duration(g.f.Number(1, 30*24)) * time.Hour)
		status := item.StatusActive
		if g.f.Number(1, 10) == 1 {
			status = item.StatusPaused
		}
		items[i] = item.Item{
			AccountID:         g.accountID,
			ID:                id,
			Title:             g.f.ProductName(),
			Price:             decimal.NewFromFloat(g.f.Price(500, 250_000)).Round(2),
			CurrencyID:        currencyID,
			AvailableQuantity: g.f.Number(0, 200),
			SoldQuantity:      g.f.Number(0, 1500),
			Status:            status,
			Permalink:         "https://articulo.mercadolibre.com.ar/" + id,
			ListingType:       listingTypes[g.f.Number(0, len(listingTypes)-1)],
			LastUpdated:       &updated,
		}
	}
	return items
}

func (g generator) orders(n int, items []item.Item) ([]order.Order, []shipment.Shipment) {
	baseOrder := int64(g.f.Number(2_000_000, 2_900_000)) * 1000
	baseShipment := int64(g.f.Number(40_000, 49_000)) * 1000

	orders := make([]order.Order, n)
	shipments := make([]shipment.Shipment, 0, n)
	for i := range orders {
		it := items[i%len(items)]
		qty := int64(g.f.Number(1, 3))
		total := it.Price.Mul(decimal.NewFromInt(qty))
		created := g.now.Add(-time.Duration(g.f.Number(1, 72)) * time.Hour)

		o := order.Order{
			AccountID:     g.accountID,
			ID:            baseOrder + int64(i),
			Status:        order.StatusPaid,
			TotalAmount:   total,
			PaidAmount:    total,
			CurrencyID:    currencyID,
			BuyerID:       int64(g.f.Number(10_000_000, 99_999_999)),
			BuyerNickname: g.f.Username(),
			DateCreated:   created,
			DateClosed:    pointers.Ptr(created.Add(time.Minute)),
			LastUpdated:   pointers.Ptr(created.Add(time.Minute)),
		}
		if i%10 == 9 {
			o.Status = order.StatusCancelled
			orders[i] = o
			continue
		}

		sh := g.shipment(baseShipment+int64(i), o.ID, i, created)
		o.ShipmentID = pointers.Ptr(sh.ID)
		orders[i] = o
		shipments = append(shipments, sh)
	}
	return orders, shipments
}

func (g generator) shipment(id, orderID int64, i int, created time.Time) shipment.Shipment {
	sh := shipment.Shipment{
		AccountID:    g.accountID,
		ID:           id,
		OrderID:      orderID,
		Status:       shipmentStatuses[i%len(shipmentStatuses)],
		LogisticType: "cross_docking",
		DateCreated:  &created,
		LastUpdated:  &created,
	}
	if off := deadlineOffsets[i%len(deadlineOffsets)]; off != nil {
		deadline := g.now.Add(*off)
		// alternate between an SLA date and a bare handling limit
		if i%2 == 0 {
			sh.ExpectedDate = &deadline
		} else {
			sh.HandlingLimit = &deadline
		}
		sh.DeliveryLimit = pointers.Ptr(deadline.Add(time.Duration(g.f.Number(-48, 96)) * time.Hour))
	}
	return sh
}

func (g generator) questions(n int, items []item.Item) []question.Question {
	base := int64(g.f.Number(10_000_000, 19_000_000)) * 1000
	questions := make([]question.Question, n)
	for i := range questions {
		created := g.now.Add(-time.Duration(g.f.Number(10, 7*24*60)) * time.Minute)
		q := question.Question{
			AccountID:   g.accountID,
			ID:          base + int64(i),
			ItemID:      items[i%len(items)].ID,
			Text:        g.f.Question(),
			Status:      question.StatusUnanswered,
			FromID:      int64(g.f.Number(10_000_000, 99_999_999)),
			DateCreated: created,
		}
		if g.f.Bool() {
			q.Status = question.StatusAnswered
			q.AnswerText = pointers.Ptr(g.f.Sentence(8))
			q.AnswerDate = pointers.Ptr(created.Add(time.Duration(g.f.Number(5, 600)) * time.Minute))
		}
		questions[i] = q
	}
	return questions
}

// statement bills the previous calendar month: a sale fee per order plus taxes.
func (g generator) statement(orders []order.Order) billing.Statement {
	from := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	to := from.AddDate(0, 1, -1)
	period := billing.Period{
		AccountID:      g.accountID,
		Key:            from.Format(time.DateOnly),
		DateFrom:       from,
		DateTo:         to,
		ExpirationDate: pointers.Ptr(to.AddDate(0, 0, 10)),
		Status:         "CLOSED",
	}

	st := billing.Statement{Period: period}
	base := int64(g.f.Number(900_000, 999_000)) * 1000
	var total decimal.Decimal
	for i, o := range orders {
		fee := o.TotalAmount.Mul(decimal.RequireFromString("0.13")).Round(2)
		st.Expenses = append(st.Expenses, billing.Expense{
			AccountID:   g.accountID,
			ID:          base + int64(i),
			PeriodKey:   period.Key,
			Type:        "CV",
			Description: "Cargo por venta",
			Amount:      fee,
			Date:        from.Add(time.Duration(g.f.Number(0, 27*24)) * time.Hour),
			OrderID:     pointers.Ptr(o.ID),
		})
		total = total.Add(fee)
	}
	taxes := []struct{ kind, description string }{
		{marketplace.DetailTypeTax, "IVA sobre cargos"},
		{marketplace.DetailTypePerception, "Percepcion IIBB"},
	}
	for i, tax := range taxes {
		amount := total.Mul(decimal.RequireFromString("0.03")).Round(2)
		st.Taxes = append(st.Taxes, billing.Tax{
			AccountID:   g.accountID,
			ID:          base + int64(len(orders)+i),
			PeriodKey:   period.Key,
			Type:        tax.kind,
			Description: tax.description,
			Amount:      amount,
			Date:        to,
		})
		total = total.Add(amount)
	}

	st.Period.Amount = total
	st.Period.UnpaidAmount = decimal.Zero
	return st
}
