package question

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnanswered       = "UNANSWERED"
	StatusAnswered         = "ANSWERED"
	StatusClosedUnanswered = "CLOSED_UNANSWERED"
	StatusUnderReview      = "UNDER_REVIEW"
	StatusBanned           = "BANNED"
	StatusDeleted          = "DELETED"
	StatusDisabled         = "DISABLED"
)

var statuses = []string{
	StatusUnanswered, StatusAnswered, StatusClosedUnanswered,
	StatusUnderReview, StatusBanned, StatusDeleted, StatusDisabled,
}

type Question struct {
	AccountID   uuid.UUID  `json:"-"`
	ID          int64      `json:"id"`
	ItemID      string     `json:"item_id"`
	Text        string     `json:"text"`
	Status      string     `json:"status"`
	AnswerText  *string    `json:"answer_text"`
	AnswerDate  *time.Time `json:"answer_date"`
	FromID      int64      `json:"from_id"`
	DateCreated time.Time  `json:"date_created"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
}

// Query filters the question list. Empty Status means any.
type Query struct {
	Status string
}

func (q Query) Validate() error {
	if q.Status != "" && !slices.Contains(statuses, q.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidQuery, q.Status)
	}
	return nil
}
