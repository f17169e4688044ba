package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billing BillingReader
}

func NewBillingHandler(b BillingReader) *BillingHandler {
	return &BillingHandler{billing: b}
}

// GET /billing/periods
func (h *BillingHandler) Periods(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.billing.Periods(c.Request.Context(), auth.AccountID(c), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /billing/periods/:key/expenses
func (h *BillingHandler) Expenses(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.billing.Expenses(c.Request.Context(), auth.AccountID(c), c.Param("key"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /billing/periods/:key/taxes
func (h *BillingHandler) Taxes(c *gin.Context) {
	p, err := bindPage(c)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := h.billing.Taxes(c.Request.Context(), auth.AccountID(c), c.Param("key"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
