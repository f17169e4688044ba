package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/domain/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service SettingsService
}

func NewSettingsHandler(s SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context(), auth.AccountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var update settings.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), auth.AccountID(c), update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	s, err := h.service.Reset(c.Request.Context(), auth.AccountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
