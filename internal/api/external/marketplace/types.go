package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Time accepts the marketplace's mix of RFC3339 timestamps, date-only strings and null.
type Time struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.000-0700", "2006-01-02T15:04:05Z0700", time.DateOnly}

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("marketplace time: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("marketplace time: unsupported format %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Ptr returns nil for the zero value.
func (t Time) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	SiteID   string `json:"site_id"`
}

type Item struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	CurrencyID        string          `json:"currency_id"`
	AvailableQuantity int             `json:"available_quantity"`
	SoldQuantity      int             `json:"sold_quantity"`
	Status            string          `json:"status"`
	Permalink         string          `json:"permalink"`
	Thumbnail         string          `json:"thumbnail"`
	ListingTypeID     string          `json:"listing_type_id"`
	DateCreated       Time            `json:"date_created"`
	LastUpdated       Time            `json:"last_updated"`
}

type itemSearch struct {
	Results []string `json:"results"`
	Paging  Paging   `json:"paging"`
}

type multigetEntry struct {
	Code int  `json:"code"`
	Body Item `json:"body"`
}

type Order struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	DateCreated Time            `json:"date_created"`
	DateClosed  Time            `json:"date_closed"`
	LastUpdated Time            `json:"last_updated"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	CurrencyID  string          `json:"currency_id"`
	Buyer       struct {
		ID       int64  `json:"id"`
		Nickname string `json:"nickname"`
	} `json:"buyer"`
	Shipping struct {
		ID int64 `json:"id"`
	} `json:"shipping"`
}

type orderSearch struct {
	Results []Order `json:"results"`
	Paging  Paging  `json:"paging"`
}

type dateField struct {
	Date Time `json:"date"`
}

type Shipment struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	Status      string `json:"status"`
	Substatus   string `json:"substatus"`
	DateCreated Time   `json:"date_created"`
	LastUpdated Time   `json:"last_updated"`
	Logistic    struct {
		Type string `json:"type"`
	} `json:"logistic"`
	LeadTime struct {
		EstimatedHandlingLimit dateField `json:"estimated_handling_limit"`
		EstimatedDeliveryLimit dateField `json:"estimated_delivery_limit"`
		EstimatedDeliveryTime  dateField `json:"estimated_delivery_time"`
	} `json:"lead_time"`
}

// SLA is the dispatch commitment for a shipment: ExpectedDate is the deadline
// for handing the package to the carrier.
type SLA struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	ExpectedDate Time   `json:"expected_date"`
	LastUpdated  Time   `json:"last_updated"`
}

type Question struct {
	ID          int64  `json:"id"`
	ItemID      string `json:"item_id"`
	SellerID    int64  `json:"seller_id"`
	Status      string `json:"status"`
	Text        string `json:"text"`
	DateCreated Time   `json:"date_created"`
	From        struct {
		ID int64 `json:"id"`
	} `json:"from"`
	Answer *struct {
		Text        string `json:"text"`
		Status      string `json:"status"`
		DateCreated Time   `json:"date_created"`
	} `json:"answer"`
}

type questionSearch struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total"`
}

type BillingPeriod struct {
	Key            string          `json:"key"`
	Amount         decimal.Decimal `json:"amount"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount"`
	PeriodStatus   string          `json:"period_status"`
	ExpirationDate Time            `json:"expiration_date"`
	Period         struct {
		DateFrom Time `json:"date_from"`
		DateTo   Time `json:"date_to"`
	} `json:"period"`
}

type billingPeriodSearch struct {
	Results []BillingPeriod `json:"results"`
	Total   int             `json:"total"`
}

// Billing detail types the sync maps to taxes; everything else is an expense.
const (
	DetailTypeTax        = "TAX"
	DetailTypePerception = "PERCEPTION"
)

type BillingDetail struct {
	ChargeInfo struct {
		DetailID          int64           `json:"detail_id"`
		DetailType        string          `json:"detail_type"`
		DetailSubType     string          `json:"detail_sub_type"`
		TransactionDetail string          `json:"transaction_detail"`
		DetailAmount      decimal.Decimal `json:"detail_amount"`
		CreationDateTime  Time            `json:"creation_date_time"`
	} `json:"charge_info"`
	SalesInfo []struct {
		OrderID int64 `json:"order_id"`
	} `json:"sales_info"`
}

func (d BillingDetail) IsTax() bool {
	return d.ChargeInfo.DetailType == DetailTypeTax || d.ChargeInfo.DetailType == DetailTypePerception
}

type billingDetailSearch struct {
	Results []BillingDetail `json:"results"`
	Total   int             `json:"total"`
}
