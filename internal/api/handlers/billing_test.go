package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/page"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBillingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockBillingReader(ctrl)
	h := NewBillingHandler(reader)
	srv := newTestServer(t, func(r gin.IRoutes) {
		r.GET("/billing/periods", h.Periods)
		r.GET("/billing/periods/:key/expenses", h.Expenses)
		r.GET("/billing/periods/:key/taxes", h.Taxes)
	})
	p := page.Default()

	t.Run("periods", func(t *testing.T) {
		reader.EXPECT().Periods(gomock.Any(), srv.accountID, p).Return(page.NewResult([]billing.Period{
			{Key: "2024-05-01", Amount: decimal.RequireFromString("1520.75")},
		}, 1, p), nil)

		w := srv.do(t, http.MethodGet, "/billing/periods", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[page.Result[billing.Period]](t, w)
		assert.Equal(t, "2024-05-01", got.Items[0].Key)
		assert.True(t, got.Items[0].Amount.Equal(decimal.RequireFromString("1520.75")))
	})

	t.Run("expenses of a period", func(t *testing.T) {
		reader.EXPECT().Expenses(gomock.Any(), srv.accountID, "2024-05-01", p).
			Return(page.NewResult([]billing.Expense{{ID: 1, Type: "CV"}}, 1, p), nil)

		w := srv.do(t, http.MethodGet, "/billing/periods/2024-05-01/expenses", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CV", decodeBody[page.Result[billing.Expense]](t, w).Items[0].Type)
	})

	t.Run("taxes of a period", func(t *testing.T) {
		reader.EXPECT().Taxes(gomock.Any(), srv.accountID, "2024-05-01", p).
			Return(page.NewResult[billing.Tax](nil, 0, p), nil)

		w := srv.do(t, http.MethodGet, "/billing/periods/2024-05-01/taxes", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody[page.Result[billing.Tax]](t, w).Items)
	})

	t.Run("malformed period key is a 400", func(t *testing.T) {
		reader.EXPECT().Taxes(gomock.Any(), srv.accountID, "may", p).
			Return(page.Result[billing.Tax]{}, fmt.Errorf("%w: %q", billing.ErrInvalidPeriodKey, "may"))

		w := srv.do(t, http.MethodGet, "/billing/periods/may/taxes", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
