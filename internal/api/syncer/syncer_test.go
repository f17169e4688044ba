package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "APP_USR-token"

type fixture struct {
	syncer    *Syncer
	api       *MockMarketplace
	accounts  *MockAccountReader
	tokens    *MockTokenSource
	items     *MockItemStore
	orders    *MockOrderStore
	shipments *MockShipmentStore
	questions *MockQuestionStore
	billing   *MockBillingStore
	tracker   *MockSyncTracker
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		api:       NewMockMarketplace(ctrl),
		accounts:  NewMockAccountReader(ctrl),
		tokens:    NewMockTokenSource(ctrl),
		items:     NewMockItemStore(ctrl),
		orders:    NewMockOrderStore(ctrl),
		shipments: NewMockShipmentStore(ctrl),
		questions: NewMockQuestionStore(ctrl),
		billing:   NewMockBillingStore(ctrl),
		tracker:   NewMockSyncTracker(ctrl),
	}
	f.syncer = New(Deps{
		Marketplace: f.api,
		Accounts:    f.accounts,
		Tokens:      f.tokens,
		Items:       f.items,
		Orders:      f.orders,
		Shipments:   f.shipments,
		Questions:   f.questions,
		Billing:     f.billing,
		Tracker:     f.tracker,
	}, Config{OrdersSince: 24 * time.Hour, PageSize: 50, BillingPeriods: 1})
	f.syncer.now = func() time.Time { return now }
	return f
}

func (f *fixture) expectAccount(acc account.Account) {
	f.accounts.EXPECT().Get(gomock.Any(), acc.ID).Return(acc, nil)
	f.tokens.EXPECT().AccessToken(gomock.Any(), acc.ID).Return(testToken, nil)
}

func TestSyncer_SyncAccount(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	acc := account.Account{ID: uuid.New(), MarketplaceUserID: 123456}

	t.Run("should store every resource and mark the account synced", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectAccount(acc)

		// items
		f.api.EXPECT().SearchItemIDs(gomock.Any(), testToken, acc.MarketplaceUserID, 0, 50).
			Return([]string{"MLA1", "MLA2"}, marketplace.Paging{Total: 2}, nil)
		f.api.EXPECT().GetItems(gomock.Any(), testToken, []string{"MLA1", "MLA2"}).
			Return([]marketplace.Item{
				{ID: "MLA1", Title: "Mate", Price: decimal.NewFromInt(1500), Status: item.StatusActive},
				{ID: "MLA2", Title: "Termo", Price: decimal.NewFromInt(9000), Status: item.StatusPaused},
			}, nil)
		f.items.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items ...item.Item) error {
				require.Len(t, items, 2)
				assert.Equal(t, acc.ID, items[0].AccountID)
				assert.Equal(t, "Termo", items[1].Title)
				return nil
			})

		// orders and their shipments
		o := marketplace.Order{ID: 2000001, Status: order.StatusPaid, TotalAmount: decimal.NewFromInt(1500)}
		o.Shipping.ID = 4100
		f.api.EXPECT().SearchOrders(gomock.Any(), testToken, acc.MarketplaceUserID, now.Add(-24*time.Hour), 0, 50).
			Return([]marketplace.Order{o}, marketplace.Paging{Total: 1}, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, orders ...order.Order) error {
				require.Len(t, orders, 1)
				require.NotNil(t, orders[0].ShipmentID)
				assert.Equal(t, int64(4100), *orders[0].ShipmentID)
				return nil
			})

		handlingLimit := now.Add(6 * time.Hour)
		sh := marketplace.Shipment{ID: 4100, OrderID: o.ID, Status: shipment.StatusReadyToShip}
		sh.LeadTime.EstimatedHandlingLimit.Date = marketplace.Time{Time: handlingLimit}
		f.api.EXPECT().GetShipment(gomock.Any(), testToken, int64(4100)).Return(sh, nil)
		f.api.EXPECT().GetShipmentSLA(gomock.Any(), testToken, int64(4100)).Return(marketplace.SLA{}, marketplace.ErrNotFound)
		f.shipments.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, shipments ...shipment.Shipment) error {
				require.Len(t, shipments, 1)
				assert.Nil(t, shipments[0].ExpectedDate)
				require.NotNil(t, shipments[0].HandlingLimit)
				assert.True(t, handlingLimit.Equal(*shipments[0].HandlingLimit))
				return nil
			})

		// questions
		f.api.EXPECT().SearchQuestions(gomock.Any(), testToken, acc.MarketplaceUserID, 0, 50).
			Return([]marketplace.Question{{ID: 77, ItemID: "MLA1", Status: question.StatusUnanswered}}, 1, nil)
		f.questions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		// billing
		bp := marketplace.BillingPeriod{Key: "2024-05-01", Amount: decimal.NewFromInt(121)}
		f.api.EXPECT().BillingPeriods(gomock.Any(), testToken, 0, 1).Return([]marketplace.BillingPeriod{bp}, 12, nil)
		f.api.EXPECT().BillingDetails(gomock.Any(), testToken, "2024-05-01", 0, 50).
			Return([]marketplace.BillingDetail{billingDetail(1, "CV", 0), billingDetail(2, marketplace.DetailTypeTax, 0)}, 2, nil)
		f.billing.EXPECT().SaveStatement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st billing.Statement) error {
				assert.Equal(t, "2024-05-01", st.Period.Key)
				assert.Len(t, st.Expenses, 1)
				assert.Len(t, st.Taxes, 1)
				return nil
			})

		f.tracker.EXPECT().MarkSynced(gomock.Any(), acc.ID, now).Return(nil)

		rep, err := f.syncer.SyncAccount(context.Background(), acc.ID, TriggerManual)

		require.NoError(t, err)
		assert.Equal(t, Report{
			AccountID:      acc.ID,
			Trigger:        TriggerManual,
			Items:          2,
			Orders:         1,
			Shipments:      1,
			Questions:      1,
			BillingPeriods: 1,
			Expenses:       1,
			Taxes:          1,
			StartedAt:      now,
			FinishedAt:     now,
		}, rep)
	})

	t.Run("should keep going after a failing resource and not mark synced", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectAccount(acc)

		f.api.EXPECT().SearchItemIDs(gomock.Any(), testToken, acc.MarketplaceUserID, 0, 50).
			Return(nil, marketplace.Paging{}, marketplace.ErrServiceUnavailable)
		f.api.EXPECT().SearchOrders(gomock.Any(), testToken, acc.MarketplaceUserID, gomock.Any(), 0, 50).
			Return(nil, marketplace.Paging{}, nil)
		f.api.EXPECT().SearchQuestions(gomock.Any(), testToken, acc.MarketplaceUserID, 0, 50).Return(nil, 0, nil)
		f.api.EXPECT().BillingPeriods(gomock.Any(), testToken, 0, 1).Return(nil, 0, nil)

		_, err := f.syncer.SyncAccount(context.Background(), acc.ID, TriggerScheduled)

		require.Error(t, err)
		assert.ErrorIs(t, err, marketplace.ErrServiceUnavailable)
		assert.Contains(t, err.Error(), "sync items")
	})

	t.Run("should stop at the first unauthorized response", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectAccount(acc)

		f.api.EXPECT().SearchItemIDs(gomock.Any(), testToken, acc.MarketplaceUserID, 0, 50).
			Return(nil, marketplace.Paging{}, marketplace.ErrUnauthorized)

		_, err := f.syncer.SyncAccount(context.Background(), acc.ID, TriggerScheduled)

		assert.ErrorIs(t, err, marketplace.ErrUnauthorized)
	})

	t.Run("should fail without a usable token", func(t *testing.T) {
		f := newFixture(t, now)
		f.accounts.EXPECT().Get(gomock.Any(), acc.ID).Return(acc, nil)
		f.tokens.EXPECT().AccessToken(gomock.Any(), acc.ID).Return("", account.ErrReauthorizationRequired)

		_, err := f.syncer.SyncAccount(context.Background(), acc.ID, TriggerManual)

		assert.ErrorIs(t, err, account.ErrReauthorizationRequired)
	})

	t.Run("should return unknown account", func(t *testing.T) {
		f := newFixture(t, now)
		f.accounts.EXPECT().Get(gomock.Any(), acc.ID).Return(account.Account{}, account.ErrNotFound)

		_, err := f.syncer.SyncAccount(context.Background(), acc.ID, TriggerManual)

		assert.ErrorIs(t, err, account.ErrNotFound)
	})
}

func TestSyncer_SyncItems_Paginates(t *testing.T) {
	now := time.Now()
	acc := account.Account{ID: uuid.New(), MarketplaceUserID: 1}
	f := newFixture(t, now)

	ids := make([]string, 25)
	for i := range ids {
		ids[i] = "MLA" + string(rune('A'+i))
	}

	gomock.InOrder(
		f.api.EXPECT().SearchItemIDs(gomock.Any(), testToken, int64(1), 0, 50).
			Return(ids, marketplace.Paging{Total: 26}, nil),
		f.api.EXPECT().GetItems(gomock.Any(), testToken, ids[:20]).Return(make([]marketplace.Item, 20), nil),
		f.api.EXPECT().GetItems(gomock.Any(), testToken, ids[20:]).Return(make([]marketplace.Item, 5), nil),
		f.api.EXPECT().SearchItemIDs(gomock.Any(), testToken, int64(1), 25, 50).
			Return([]string{"MLAZ"}, marketplace.Paging{Total: 26}, nil),
		f.api.EXPECT().GetItems(gomock.Any(), testToken, []string{"MLAZ"}).Return(make([]marketplace.Item, 1), nil),
	)
	f.items.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var rep Report
	err := f.syncer.syncItems(context.Background(), acc, testToken, &rep)

	require.NoError(t, err)
	assert.Equal(t, 26, rep.Items)
}

func TestSyncer_SyncOrder(t *testing.T) {
	accountID := uuid.New()
	expected := time.Date(2024, 6, 11, 15, 0, 0, 0, time.UTC)

	t.Run("should refresh the order and its shipment", func(t *testing.T) {
		f := newFixture(t, time.Now())
		f.tokens.EXPECT().AccessToken(gomock.Any(), accountID).Return(testToken, nil)

		o := marketplace.Order{ID: 10, Status: order.StatusPaid}
		o.Shipping.ID = 20
		f.api.EXPECT().GetOrder(gomock.Any(), testToken, int64(10)).Return(o, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.api.EXPECT().GetShipment(gomock.Any(), testToken, int64(20)).
			Return(marketplace.Shipment{ID: 20, Status: shipment.StatusHandling}, nil)
		f.api.EXPECT().GetShipmentSLA(gomock.Any(), testToken, int64(20)).
			Return(marketplace.SLA{ExpectedDate: marketplace.Time{Time: expected}}, nil)
		f.shipments.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, shipments ...shipment.Shipment) error {
				require.Len(t, shipments, 1)
				require.NotNil(t, shipments[0].ExpectedDate)
				assert.True(t, expected.Equal(*shipments[0].ExpectedDate))
				return nil
			})

		require.NoError(t, f.syncer.SyncOrder(context.Background(), accountID, 10))
	})

	t.Run("should skip orders without shipping", func(t *testing.T) {
		f := newFixture(t, time.Now())
		f.tokens.EXPECT().AccessToken(gomock.Any(), accountID).Return(testToken, nil)
		f.api.EXPECT().GetOrder(gomock.Any(), testToken, int64(11)).Return(marketplace.Order{ID: 11}, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.syncer.SyncOrder(context.Background(), accountID, 11))
	})

	t.Run("should surface sla failures other than not found", func(t *testing.T) {
		f := newFixture(t, time.Now())
		f.tokens.EXPECT().AccessToken(gomock.Any(), accountID).Return(testToken, nil)
		f.api.EXPECT().GetShipment(gomock.Any(), testToken, int64(20)).Return(marketplace.Shipment{ID: 20}, nil)
		f.api.EXPECT().GetShipmentSLA(gomock.Any(), testToken, int64(20)).Return(marketplace.SLA{}, marketplace.ErrRateLimited)

		err := f.syncer.SyncShipment(context.Background(), accountID, 20)

		assert.ErrorIs(t, err, marketplace.ErrRateLimited)
	})
}

func TestSyncer_SyncItem_NotFound(t *testing.T) {
	accountID := uuid.New()
	f := newFixture(t, time.Now())
	f.tokens.EXPECT().AccessToken(gomock.Any(), accountID).Return(testToken, nil)
	f.api.EXPECT().GetItem(gomock.Any(), testToken, "MLA404").Return(marketplace.Item{}, marketplace.ErrNotFound)

	err := f.syncer.SyncItem(context.Background(), accountID, "MLA404")

	assert.True(t, errors.Is(err, marketplace.ErrNotFound))
}

func TestSyncer_SyncQuestion(t *testing.T) {
	accountID := uuid.New()
	f := newFixture(t, time.Now())
	f.tokens.EXPECT().AccessToken(gomock.Any(), accountID).Return(testToken, nil)

	q := marketplace.Question{ID: 5, ItemID: "MLA1", Text: "Tenes stock?", Status: question.StatusAnswered}
	q.Answer = &struct {
		Text        string           `json:"text"`
		Status      string           `json:"status"`
		DateCreated marketplace.Time `json:"date_created"`
	}{Text: "Si", Status: "ACTIVE"}
	f.api.EXPECT().GetQuestion(gomock.Any(), testToken, int64(5)).Return(q, nil)
	f.questions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, questions ...question.Question) error {
			require.Len(t, questions, 1)
			require.NotNil(t, questions[0].AnswerText)
			assert.Equal(t, "Si", *questions[0].AnswerText)
			assert.Nil(t, questions[0].AnswerDate)
			return nil
		})

	require.NoError(t, f.syncer.SyncQuestion(context.Background(), accountID, 5))
}

func billingDetail(id int64, detailType string, orderID int64) marketplace.BillingDetail {
	var d marketplace.BillingDetail
	d.ChargeInfo.DetailID = id
	d.ChargeInfo.DetailType = detailType
	d.ChargeInfo.DetailSubType = "CV"
	d.ChargeInfo.DetailAmount = decimal.NewFromInt(10)
	if orderID != 0 {
		d.SalesInfo = append(d.SalesInfo, struct {
			OrderID int64 `json:"order_id"`
		}{OrderID: orderID})
	}
	return d
}

func TestToStatement(t *testing.T) {
	period := billing.Period{AccountID: uuid.New(), Key: "2024-05-01"}
	details := []marketplace.BillingDetail{
		billingDetail(1, "CHARGE", 2000001),
		billingDetail(2, marketplace.DetailTypeTax, 0),
		billingDetail(3, marketplace.DetailTypePerception, 0),
		billingDetail(4, "BONUS", 0),
	}

	st := toStatement(period, details)

	require.Len(t, st.Expenses, 2)
	require.Len(t, st.Taxes, 2)
	require.NotNil(t, st.Expenses[0].OrderID)
	assert.Equal(t, int64(2000001), *st.Expenses[0].OrderID)
	assert.Nil(t, st.Expenses[1].OrderID)
	assert.Equal(t, period.AccountID, st.Taxes[1].AccountID)
	assert.Equal(t, "2024-05-01", st.Taxes[1].PeriodKey)
}
