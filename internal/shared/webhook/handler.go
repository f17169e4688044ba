package webhook

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor Processor
}

func NewHandler(p Processor) *Handler {
	return &Handler{processor: p}
}

// Notification accepts a marketplace webhook. 202 means accepted for processing.
func (h *Handler) Notification(c *gin.Context) {
	var n Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "resource, topic and user_id are required"})
		return
	}
	if err := n.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.processor.ProcessNotification(c.Request.Context(), n); err != nil {
		if errors.Is(err, ErrInvalidNotification) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		slog.ErrorContext(c.Request.Context(), "Failed to process notification",
			slog.String("topic", n.Topic),
			slog.String("resource", n.Resource),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to process notification"})
		return
	}

	c.Status(http.StatusAccepted)
}

// Routes mounts the webhook endpoint on r.
func (h *Handler) Routes(r gin.IRouter) {
	r.POST("/webhooks/notifications", h.Notification)
}
