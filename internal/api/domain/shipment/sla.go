package shipment

import (
	"fmt"
	"time"
)

type Urgency string

const (
	UrgencyUnknown     Urgency = "unknown"
	UrgencyOverdue     Urgency = "overdue"
	UrgencyDueToday    Urgency = "due_today"
	UrgencyDueTomorrow Urgency = "due_tomorrow"
	UrgencyUpcoming    Urgency = "upcoming"
)

// Urgencies in display order.
var Urgencies = []Urgency{UrgencyOverdue, UrgencyDueToday, UrgencyDueTomorrow, UrgencyUpcoming, UrgencyUnknown}

func ParseUrgency(s string) (Urgency, error) {
	for _, u := range Urgencies {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUrgency, s)
}

type SLA struct {
	Urgency  Urgency    `json:"urgency"`
	Deadline *time.Time `json:"deadline"`
	// MinutesLeft is negative once the deadline has passed.
	MinutesLeft    *int64 `json:"minutes_left"`
	Urgent         bool   `json:"urgent"`
	DeliveryAtRisk bool   `json:"delivery_at_risk"`
}

// Classify computes the SLA of s at now. Calendar days are those of loc, the
// seller's timezone; urgentWindow is how close a deadline must be to count as urgent.
func Classify(now time.Time, s Shipment, loc *time.Location, urgentWindow time.Duration) SLA {
	sla := SLA{Urgency: UrgencyUnknown}

	if s.DeliveryLimit != nil && s.DeliveryLimit.Before(now) && s.Status != StatusDelivered {
		sla.DeliveryAtRisk = true
	}

	deadline := s.Deadline()
	if deadline == nil {
		return sla
	}

	left := deadline.Sub(now)
	minutes := int64(left / time.Minute)
	sla.Deadline = deadline
	sla.MinutesLeft = &minutes

	localNow := now.In(loc)
	localDeadline := deadline.In(loc)

	switch {
	case now.After(*deadline):
		sla.Urgency = UrgencyOverdue
	case sameDay(localNow, localDeadline):
		sla.Urgency = UrgencyDueToday
	case sameDay(localNow.AddDate(0, 0, 1), localDeadline):
		sla.Urgency = UrgencyDueTomorrow
	default:
		sla.Urgency = UrgencyUpcoming
	}

	sla.Urgent = sla.Urgency != UrgencyOverdue && left <= urgentWindow
	return sla
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type PendingShipment struct {
	Shipment
	SLA SLA `json:"sla"`
}

type Stats struct {
	Total          int             `json:"total"`
	ByUrgency      map[Urgency]int `json:"by_urgency"`
	Urgent         int             `json:"urgent"`
	DeliveryAtRisk int             `json:"delivery_at_risk"`
	// NextDeadline is the earliest deadline that has not passed yet.
	NextDeadline *time.Time `json:"next_deadline"`
	Timezone     string     `json:"timezone"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

// Summarize folds classified shipments into Stats in a single pass.
func Summarize(now time.Time, pending []PendingShipment) Stats {
	stats := Stats{
		Total:       len(pending),
		ByUrgency:   make(map[Urgency]int, len(Urgencies)),
		Timezone:    now.Location().String(),
		GeneratedAt: now,
	}
	for _, u := range Urgencies {
		stats.ByUrgency[u] = 0
	}

	for _, p := range pending {
		stats.ByUrgency[p.SLA.Urgency]++
		if p.SLA.Urgent {
			stats.Urgent++
		}
		if p.SLA.DeliveryAtRisk {
			stats.DeliveryAtRisk++
		}
		if d := p.SLA.Deadline; d != nil && !now.After(*d) {
			if stats.NextDeadline == nil || d.Before(*stats.NextDeadline) {
				stats.NextDeadline = d
			}
		}
	}
	return stats
}
