package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/syncer"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncer syncer.AccountSyncer
}

func NewSyncHandler(s syncer.AccountSyncer) *SyncHandler {
	return &SyncHandler{syncer: s}
}

// Sync runs a full sync of the session account and waits for it.
// A partial failure still returns what was stored alongside the error.
// POST /sync
func (h *SyncHandler) Sync(c *gin.Context) {
	report, err := h.syncer.SyncAccount(c.Request.Context(), auth.AccountID(c), syncer.TriggerManual)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"message": err.Error(), "report": report})
		return
	}
	c.JSON(http.StatusOK, report)
}
