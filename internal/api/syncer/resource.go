package syncer

import (
	"context"
	"fmt"

	"sellerops/pkg/metrics"

	"github.com/google/uuid"
)

// SyncItem refreshes a single listing.
func (s *Syncer) SyncItem(ctx context.Context, accountID uuid.UUID, itemID string) error {
	token, err := s.tokens.AccessToken(ctx, accountID)
	if err != nil {
		return fmt.Errorf("access token: %w", err)
	}

	it, err := s.api.GetItem(ctx, token, itemID)
	if err != nil {
		return fmt.Errorf("get item %s: %w", itemID, err)
	}
	if err := s.items.Save(ctx, toItem(accountID, it)); err != nil {
		return err
	}
	metrics.SyncRecordsUpserted.WithLabelValues("items").Inc()
	return nil
}

// SyncOrder refreshes an order and, when it ships, its shipment.
func (s *Syncer) SyncOrder(ctx context.Context, accountID uuid.UUID, orderID int64) error {
	token, err := s.tokens.AccessToken(ctx, accountID)
	if err != nil {
		return fmt.Errorf("access token: %w", err)
	}

	o, err := s.api.GetOrder(ctx, token, orderID)
	if err != nil {
		return fmt.Errorf("get order %d: %w", orderID, err)
	}
	if err := s.orders.Save(ctx, toOrder(accountID, o)); err != nil {
		return err
	}
	metrics.SyncRecordsUpserted.WithLabelValues("orders").Inc()

	if o.Shipping.ID == 0 {
		return nil
	}
	return s.syncShipment(ctx, accountID, token, o.Shipping.ID)
}

func (s *Syncer) SyncShipment(ctx context.Context, accountID uuid.UUID, shipmentID int64) error {
	token, err := s.tokens.AccessToken(ctx, accountID)
	if err != nil {
		return fmt.Errorf("access token: %w", err)
	}
	return s.syncShipment(ctx, accountID, token, shipmentID)
}

func (s *Syncer) syncShipment(ctx context.Context, accountID uuid.UUID, token string, shipmentID int64) error {
	sh, err := s.fetchShipment(ctx, accountID, token, shipmentID)
	if err != nil {
		return fmt.Errorf("get shipment %d: %w", shipmentID, err)
	}
	if err := s.shipments.Save(ctx, sh); err != nil {
		return err
	}
	metrics.SyncRecordsUpserted.WithLabelValues("shipments").Inc()
	return nil
}

func (s *Syncer) SyncQuestion(ctx context.Context, accountID uuid.UUID, questionID int64) error {
	token, err := s.tokens.AccessToken(ctx, accountID)
	if err != nil {
		return fmt.Errorf("access token: %w", err)
	}

	q, err := s.api.GetQuestion(ctx, token, questionID)
	if err != nil {
		return fmt.Errorf("get question %d: %w", questionID, err)
	}
	if err := s.questions.Save(ctx, toQuestion(accountID, q)); err != nil {
		return err
	}
	metrics.SyncRecordsUpserted.WithLabelValues("questions").Inc()
	return nil
}
