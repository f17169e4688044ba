package fakedata

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerops/internal/api/domain/billing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPopulator_Populate(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	opts := Options{Seed: 9, Items: 4, Orders: 5, Questions: 2}

	t.Run("should store the generated dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)

		gomock.InOrder(
			store.EXPECT().SaveItems(ctx, gomock.Any()).Return(nil),
			store.EXPECT().SaveOrders(ctx, gomock.Any()).Return(nil),
			store.EXPECT().SaveShipments(ctx, gomock.Any()).Return(nil),
			store.EXPECT().SaveQuestions(ctx, gomock.Any()).Return(nil),
			store.EXPECT().SaveStatement(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, st billing.Statement) error {
					assert.Equal(t, accountID, st.Period.AccountID)
					return nil
				}),
		)

		p := NewPopulator(store)
		p.now = func() time.Time { return testNow }

		sum, err := p.Populate(ctx, accountID, opts)

		require.NoError(t, err)
		assert.Equal(t, Summary{
			Items:     4,
			Orders:    5,
			Shipments: 5,
			Questions: 2,
			Expenses:  5,
			Taxes:     2,
			PeriodKey: "2024-05-01",
		}, sum)
	})

	t.Run("should stop on the first failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := NewMockStore(ctrl)
		store.EXPECT().SaveItems(ctx, gomock.Any()).Return(errors.New("database error"))

		_, err := NewPopulator(store).Populate(ctx, accountID, opts)

		assert.EqualError(t, err, "database error")
	})

	t.Run("should reject oversized batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := NewPopulator(NewMockStore(ctrl)).Populate(ctx, accountID, Options{Items: maxBatch + 1})

		assert.ErrorIs(t, err, ErrInvalidOptions)
	})
}
