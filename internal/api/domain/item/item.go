package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive      = "active"
	StatusPaused      = "paused"
	StatusClosed      = "closed"
	StatusUnderReview = "under_review"
)

type Item struct {
	AccountID         uuid.UUID       `json:"-"`
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	CurrencyID        string          `json:"currency_id"`
	AvailableQuantity int             `json:"available_quantity"`
	SoldQuantity      int             `json:"sold_quantity"`
	Status            string          `json:"status"`
	Permalink         string          `json:"permalink"`
	Thumbnail         string          `json:"thumbnail"`
	ListingType       string          `json:"listing_type"`
	LastUpdated       *time.Time      `json:"last_updated"`
	CreatedAt         time.Time       `json:"created_at,omitzero"`
	UpdatedAt         time.Time       `json:"updated_at,omitzero"`
}
