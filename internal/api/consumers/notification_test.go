package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/external/marketplace"
	"sellerops/internal/shared/messaging"
	"sellerops/internal/shared/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	acc := account.Account{ID: uuid.New(), MarketplaceUserID: 123456}

	tests := []struct {
		name      string
		n         webhook.Notification
		setup     func(r *MockRefresher)
		wantErr   error
		permanent bool
	}{
		{
			name: "items topic refreshes the item",
			n:    webhook.Notification{Topic: webhook.TopicItems, Resource: "/items/MLA123", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncItem(ctx, acc.ID, "MLA123").Return(nil)
			},
		},
		{
			name: "orders_v2 topic refreshes the order",
			n:    webhook.Notification{Topic: webhook.TopicOrdersV2, Resource: "/orders/2000001", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncOrder(ctx, acc.ID, int64(2000001)).Return(nil)
			},
		},
		{
			name: "shipments topic refreshes the shipment",
			n:    webhook.Notification{Topic: webhook.TopicShipments, Resource: "/shipments/4100", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncShipment(ctx, acc.ID, int64(4100)).Return(nil)
			},
		},
		{
			name: "questions topic refreshes the question",
			n:    webhook.Notification{Topic: webhook.TopicQuestions, Resource: "/questions/77", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncQuestion(ctx, acc.ID, int64(77)).Return(nil)
			},
		},
		{
			name:  "unknown topic is acknowledged",
			n:     webhook.Notification{Topic: "payments", Resource: "/collections/1", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {},
		},
		{
			name: "deleted resource is acknowledged",
			n:    webhook.Notification{Topic: webhook.TopicItems, Resource: "/items/MLA404", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncItem(ctx, acc.ID, "MLA404").Return(marketplace.ErrNotFound)
			},
		},
		{
			name:      "non numeric order id is permanent",
			n:         webhook.Notification{Topic: webhook.TopicOrders, Resource: "/orders/abc", UserID: acc.MarketplaceUserID},
			setup:     func(r *MockRefresher) {},
			wantErr:   webhook.ErrInvalidNotification,
			permanent: true,
		},
		{
			name: "revoked authorization is permanent",
			n:    webhook.Notification{Topic: webhook.TopicShipments, Resource: "/shipments/1", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncShipment(ctx, acc.ID, int64(1)).Return(account.ErrReauthorizationRequired)
			},
			wantErr:   account.ErrReauthorizationRequired,
			permanent: true,
		},
		{
			name: "marketplace outage is retryable",
			n:    webhook.Notification{Topic: webhook.TopicQuestions, Resource: "/questions/9", UserID: acc.MarketplaceUserID},
			setup: func(r *MockRefresher) {
				r.EXPECT().SyncQuestion(ctx, acc.ID, int64(9)).Return(marketplace.ErrServiceUnavailable)
			},
			wantErr: marketplace.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := NewMockAccountResolver(ctrl)
			refresher := NewMockRefresher(ctrl)
			accounts.EXPECT().ByMarketplaceUser(ctx, acc.MarketplaceUserID).Return(acc, nil)
			tt.setup(refresher)

			err := NewDispatcher(accounts, refresher).Dispatch(ctx, tt.n)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.permanent, errors.Is(err, messaging.ErrPermanent))
		})
	}
}

func TestDispatcher_UnknownSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountResolver(ctrl)
	accounts.EXPECT().ByMarketplaceUser(gomock.Any(), int64(999)).Return(account.Account{}, account.ErrNotFound)

	err := NewDispatcher(accounts, NewMockRefresher(ctrl)).Dispatch(context.Background(),
		webhook.Notification{Topic: webhook.TopicItems, Resource: "/items/MLA1", UserID: 999})

	assert.NoError(t, err)
}

type dispatchFunc func(ctx context.Context, n webhook.Notification) error

func (f dispatchFunc) Dispatch(ctx context.Context, n webhook.Notification) error { return f(ctx, n) }

func TestNotificationController_HandleMessage(t *testing.T) {
	n := webhook.Notification{ID: "evt-1", Topic: webhook.TopicOrders, Resource: "/orders/1", UserID: 42}
	env, err := n.Envelope()
	require.NoError(t, err)
	value, err := json.Marshal(env)
	require.NoError(t, err)

	t.Run("should dispatch the decoded notification", func(t *testing.T) {
		var got webhook.Notification
		c := NewNotificationController(dispatchFunc(func(_ context.Context, n webhook.Notification) error {
			got = n
			return nil
		}))

		require.NoError(t, c.HandleMessage(context.Background(), []byte("42"), value))
		assert.Equal(t, "/orders/1", got.Resource)
		assert.Equal(t, "evt-1", got.ID)
	})

	t.Run("should reject garbage as permanent", func(t *testing.T) {
		c := NewNotificationController(dispatchFunc(func(context.Context, webhook.Notification) error {
			t.Fatal("dispatcher must not be called")
			return nil
		}))

		err := c.HandleMessage(context.Background(), nil, []byte("not json"))

		assert.ErrorIs(t, err, messaging.ErrPermanent)
	})
}
