package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/page"
	"sellerops/internal/api/domain/question"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := NewMockItemLister(ctrl)
	orders := NewMockOrderLister(ctrl)
	questions := NewMockQuestionLister(ctrl)
	h := NewCatalogHandler(items, orders, questions)
	srv := newTestServer(t, func(r gin.IRoutes) {
		r.GET("/items", h.Items)
		r.GET("/orders", h.Orders)
		r.GET("/questions", h.Questions)
	})

	t.Run("items use the default page", func(t *testing.T) {
		p := page.Default()
		items.EXPECT().List(gomock.Any(), srv.accountID, p).Return(page.NewResult([]item.Item{
			{ID: "MLA1", Title: "Mate", Price: decimal.RequireFromString("1500.50")},
		}, 1, p), nil)

		w := srv.do(t, http.MethodGet, "/items", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[page.Result[item.Item]](t, w)
		assert.Equal(t, 1, got.Total)
		assert.Equal(t, page.DefaultLimit, got.Limit)
		assert.Equal(t, "MLA1", got.Items[0].ID)
	})

	t.Run("orders honour limit and offset", func(t *testing.T) {
		p := page.Page{Limit: 10, Offset: 20}
		orders.EXPECT().List(gomock.Any(), srv.accountID, p).Return(page.NewResult[order.Order](nil, 25, p), nil)

		w := srv.do(t, http.MethodGet, "/orders?limit=10&offset=20", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[],"total":25,"limit":10,"offset":20}`, w.Body.String())
	})

	t.Run("limit above the maximum is a 400", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, fmt.Sprintf("/orders?limit=%d", page.MaxLimit+1), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric offset is a 400", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/items?offset=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("questions pass the status filter", func(t *testing.T) {
		p := page.Default()
		questions.EXPECT().
			List(gomock.Any(), srv.accountID, question.Query{Status: "unanswered"}, p).
			Return(page.NewResult([]question.Question{{ID: 7, Status: question.StatusUnanswered}}, 1, p), nil)

		w := srv.do(t, http.MethodGet, "/questions?status=unanswered", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), decodeBody[page.Result[question.Question]](t, w).Items[0].ID)
	})

	t.Run("unknown question status is a 400", func(t *testing.T) {
		questions.EXPECT().List(gomock.Any(), srv.accountID, question.Query{Status: "maybe"}, gomock.Any()).
			Return(page.Result[question.Question]{}, fmt.Errorf("%w: unknown status", question.ErrInvalidQuery))

		w := srv.do(t, http.MethodGet, "/questions?status=maybe", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		items.EXPECT().List(gomock.Any(), srv.accountID, gomock.Any()).
			Return(page.Result[item.Item]{}, errors.New("database error"))

		w := srv.do(t, http.MethodGet, "/items", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
