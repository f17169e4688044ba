package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts AccountService
}

func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// GET /accounts/me
func (h *AccountHandler) Me(c *gin.Context) {
	acc, err := h.accounts.Get(c.Request.Context(), auth.AccountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// Delete removes the account and everything synced for it.
// DELETE /accounts/me
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), auth.AccountID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
