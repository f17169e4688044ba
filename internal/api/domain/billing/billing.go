package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is one monthly invoice of marketplace charges, keyed by its start date.
type Period struct {
	AccountID      uuid.UUID       `json:"-"`
	Key            string          `json:"key"`
	DateFrom       time.Time       `json:"date_from"`
	DateTo         time.Time       `json:"date_to"`
	ExpirationDate *time.Time      `json:"expiration_date"`
	Amount         decimal.Decimal `json:"amount"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at,omitzero"`
	UpdatedAt      time.Time       `json:"updated_at,omitzero"`
}

type Expense struct {
	AccountID   uuid.UUID       `json:"-"`
	ID          int64           `json:"id"`
	PeriodKey   string          `json:"period_key"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	OrderID     *int64          `json:"order_id"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at,omitzero"`
}

type Tax struct {
	AccountID   uuid.UUID       `json:"-"`
	ID          int64           `json:"id"`
	PeriodKey   string          `json:"period_key"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at,omitzero"`
}

// Statement is a period with the charges synced for it.
type Statement struct {
	Period   Period
	Expenses []Expense
	Taxes    []Tax
}
