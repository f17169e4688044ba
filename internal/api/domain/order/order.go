package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusConfirmed       = "confirmed"
	StatusPaymentRequired = "payment_required"
	StatusPaid            = "paid"
	StatusCancelled       = "cancelled"
)

type Order struct {
	AccountID     uuid.UUID       `json:"-"`
	ID            int64           `json:"id"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	CurrencyID    string          `json:"currency_id"`
	BuyerID       int64           `json:"buyer_id"`
	BuyerNickname string          `json:"buyer_nickname"`
	ShipmentID    *int64          `json:"shipment_id"`
	DateCreated   time.Time       `json:"date_created"`
	DateClosed    *time.Time      `json:"date_closed"`
	LastUpdated   *time.Time      `json:"last_updated"`
	CreatedAt     time.Time       `json:"created_at,omitzero"`
	UpdatedAt     time.Time       `json:"updated_at,omitzero"`
}
