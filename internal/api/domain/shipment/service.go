package shipment

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type ShipmentService struct {
	repo     ShipmentRepo
	settings SettingsReader
	now      func() time.Time
}

func NewShipmentService(repo ShipmentRepo, settings SettingsReader) *ShipmentService {
	return &ShipmentService{repo: repo, settings: settings, now: time.Now}
}

func (s *ShipmentService) Save(ctx context.Context, shipments ...Shipment) error {
	if len(shipments) == 0 {
		return nil
	}
	if err := s.repo.UpsertShipments(ctx, shipments); err != nil {
		return fmt.Errorf("upsert shipments: %w", err)
	}
	return nil
}

// Pending lists shipments awaiting dispatch, soonest deadline first and shipments
// without a deadline last. A non-empty urgency keeps only that category.
func (s *ShipmentService) Pending(ctx context.Context, accountID uuid.UUID, urgency Urgency) ([]PendingShipment, error) {
	if urgency != "" {
		if _, err := ParseUrgency(string(urgency)); err != nil {
			return nil, err
		}
	}

	pending, _, err := s.classifyPending(ctx, accountID, s.now())
	if err != nil {
		return nil, err
	}

	if urgency != "" {
		pending = slices.DeleteFunc(pending, func(p PendingShipment) bool {
			return p.SLA.Urgency != urgency
		})
	}
	return pending, nil
}

func (s *ShipmentService) Stats(ctx context.Context, accountID uuid.UUID) (Stats, error) {
	now := s.now()
	pending, loc, err := s.classifyPending(ctx, accountID, now)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(now.In(loc), pending), nil
}

func (s *ShipmentService) classifyPending(ctx context.Context, accountID uuid.UUID, now time.Time) ([]PendingShipment, *time.Location, error) {
	st, err := s.settings.Get(ctx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("get settings: %w", err)
	}

	shipments, err := s.repo.ListByStatus(ctx, accountID, PendingStatuses)
	if err != nil {
		return nil, nil, fmt.Errorf("list pending shipments: %w", err)
	}

	loc := st.Location()
	window := st.UrgentWindow()

	pending := make([]PendingShipment, 0, len(shipments))
	for _, sh := range shipments {
		pending = append(pending, PendingShipment{Shipment: sh, SLA: Classify(now, sh, loc, window)})
	}

	slices.SortStableFunc(pending, compareByDeadline)
	return pending, loc, nil
}

func compareByDeadline(a, b PendingShipment) int {
	da, db := a.SLA.Deadline, b.SLA.Deadline
	switch {
	case da == nil && db == nil:
		return cmp.Compare(a.ID, b.ID)
	case da == nil:
		return 1
	case db == nil:
		return -1
	}
	if c := da.Compare(*db); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
