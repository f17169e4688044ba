package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/domain/question"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the synced listings, orders and buyer questions.
type CatalogHandler struct {
	items     ItemLister
	orders    OrderLister
	questions QuestionLister
}

func NewCatalogHandler(items ItemLister, orders OrderLister, questions QuestionLister) *CatalogHandler {
	return &CatalogHandler{items: items, orders: orders, questions: questions}
}

// GET /items
func (h *CatalogHandler) Items(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.items.List(c.Request.Context(), auth.AccountID(c), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /orders
func (h *CatalogHandler) Orders(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.orders.List(c.Request.Context(), auth.AccountID(c), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /questions?status=
func (h *CatalogHandler) Questions(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	q := question.Query{Status: c.Query("status")}
	res, err := h.questions.List(c.Request.Context(), auth.AccountID(c), q, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
