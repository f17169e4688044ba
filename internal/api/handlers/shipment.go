package handlers

import (
	"net/http"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/domain/shipment"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	service ShipmentService
}

func NewShipmentHandler(s ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: s}
}

type pendingResponse struct {
	Items []shipment.PendingShipment `json:"items"`
	Total int                        `json:"total"`
}

// Pending lists pending shipments, optionally narrowed to one urgency.
// GET /shipments/pending?urgency=
func (h *ShipmentHandler) Pending(c *gin.Context) {
	urgency := shipment.Urgency(c.Query("urgency"))

	pending, err := h.service.Pending(c.Request.Context(), auth.AccountID(c), urgency)
	if err != nil {
		writeError(c, err)
		return
	}
	if pending == nil {
		pending = []shipment.PendingShipment{}
	}
	c.JSON(http.StatusOK, pendingResponse{Items: pending, Total: len(pending)})
}

// GET /shipments/pending/stats
func (h *ShipmentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), auth.AccountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
