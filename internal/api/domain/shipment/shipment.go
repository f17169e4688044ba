package shipment

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending      = "pending"
	StatusHandling     = "handling"
	StatusReadyToShip  = "ready_to_ship"
	StatusShipped      = "shipped"
	StatusDelivered    = "delivered"
	StatusNotDelivered = "not_delivered"
	StatusCancelled    = "cancelled"
)

// PendingStatuses are the states in which the seller still has to dispatch.
var PendingStatuses = []string{StatusPending, StatusHandling, StatusReadyToShip}

type Shipment struct {
	AccountID     uuid.UUID  `json:"-"`
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	Status        string     `json:"status"`
	Substatus     string     `json:"substatus"`
	LogisticType  string     `json:"logistic_type"`
	ExpectedDate  *time.Time `json:"expected_date"`
	HandlingLimit *time.Time `json:"handling_limit"`
	DeliveryLimit *time.Time `json:"delivery_limit"`
	DateCreated   *time.Time `json:"date_created"`
	LastUpdated   *time.Time `json:"last_updated"`
	CreatedAt     time.Time  `json:"created_at,omitzero"`
	UpdatedAt     time.Time  `json:"updated_at,omitzero"`
}

// Deadline is the dispatch commitment: the SLA expected date when the marketplace
// gave one, the handling limit otherwise.
func (s Shipment) Deadline() *time.Time {
	if s.ExpectedDate != nil {
		return s.ExpectedDate
	}
	return s.HandlingLimit
}

func (s Shipment) IsPending() bool {
	return slices.Contains(PendingStatuses, s.Status)
}
