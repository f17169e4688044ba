// Package consumers applies marketplace notifications, taken either from the
// webhook request or from the queue, to the local store.
package consumers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/external/marketplace"
	"sellerops/internal/shared/messaging"
	"sellerops/internal/shared/webhook"

	"github.com/google/uuid"
)

//go:generate mockgen -source notification.go -destination mock_notification.go -package consumers

// Refresher re-reads one resource from the marketplace and stores it.
type Refresher interface {
	SyncItem(ctx context.Context, accountID uuid.UUID, itemID string) error
	SyncOrder(ctx context.Context, accountID uuid.UUID, orderID int64) error
	SyncShipment(ctx context.Context, accountID uuid.UUID, shipmentID int64) error
	SyncQuestion(ctx context.Context, accountID uuid.UUID, questionID int64) error
}

type AccountResolver interface {
	ByMarketplaceUser(ctx context.Context, userID int64) (account.Account, error)
}

// Dispatcher routes a notification by topic to the matching refresher.
type Dispatcher struct {
	accounts  AccountResolver
	refresher Refresher
}

func NewDispatcher(accounts AccountResolver, refresher Refresher) *Dispatcher {
	return &Dispatcher{accounts: accounts, refresher: refresher}
}

// Dispatch acknowledges notifications it cannot act on (unknown seller, unknown
// topic, deleted resource) and returns errors only for retryable failures.
func (d *Dispatcher) Dispatch(ctx context.Context, n webhook.Notification) error {
	acc, err := d.accounts.ByMarketplaceUser(ctx, n.UserID)
	if errors.Is(err, account.ErrNotFound) {
		slog.InfoContext(ctx, "Notification for unknown seller ignored",
			slog.Int64("user_id", n.UserID),
			slog.String("topic", n.Topic))
		return nil
	}
	if err != nil {
		return err
	}

	resourceID, err := n.ResourceID()
	if err != nil {
		return messaging.Permanent(err)
	}

	switch n.Topic {
	case webhook.TopicItems:
		err = d.refresher.SyncItem(ctx, acc.ID, resourceID)
	case webhook.TopicOrders, webhook.TopicOrdersV2:
		err = withNumericID(resourceID, func(id int64) error { return d.refresher.SyncOrder(ctx, acc.ID, id) })
	case webhook.TopicShipments:
		err = withNumericID(resourceID, func(id int64) error { return d.refresher.SyncShipment(ctx, acc.ID, id) })
	case webhook.TopicQuestions:
		err = withNumericID(resourceID, func(id int64) error { return d.refresher.SyncQuestion(ctx, acc.ID, id) })
	default:
		slog.InfoContext(ctx, "Notification topic not handled",
			slog.String("topic", n.Topic),
			slog.String("resource", n.Resource))
		return nil
	}

	switch {
	case err == nil:
		slog.InfoContext(ctx, "Notification applied",
			slog.String("account_id", acc.ID.String()),
			slog.String("topic", n.Topic),
			slog.String("resource", n.Resource))
		return nil
	case errors.Is(err, marketplace.ErrNotFound):
		slog.InfoContext(ctx, "Notified resource no longer exists",
			slog.String("topic", n.Topic),
			slog.String("resource", n.Resource))
		return nil
	case errors.Is(err, account.ErrReauthorizationRequired), errors.Is(err, marketplace.ErrForbidden):
		return messaging.Permanent(err)
	default:
		return fmt.Errorf("apply %s notification: %w", n.Topic, err)
	}
}

func withNumericID(raw string, fn func(id int64) error) error {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return messaging.Permanent(fmt.Errorf("%w: resource id %q is not numeric", webhook.ErrInvalidNotification, raw))
	}
	return fn(id)
}

// NotificationController consumes queued notifications.
type NotificationController struct {
	dispatcher webhook.Dispatcher
}

func NewNotificationController(d webhook.Dispatcher) *NotificationController {
	return &NotificationController{dispatcher: d}
}

// HandleMessage decodes the envelope and dispatches it. Undecodable messages are
// permanent failures and go straight to the dead letter queue.
func (c *NotificationController) HandleMessage(ctx context.Context, key, value []byte) error {
	env, n, err := webhook.Decode(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to decode notification",
			slog.String("key", string(key)),
			slog.Any("error", err))
		return messaging.Permanent(err)
	}

	slog.DebugContext(ctx, "Processing notification",
		slog.String("event_id", env.EventID),
		slog.String("type", env.Type))

	return c.dispatcher.Dispatch(ctx, n)
}
