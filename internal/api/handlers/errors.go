package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/page"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/settings"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"
	"sellerops/internal/api/fakedata"

	"github.com/gin-gonic/gin"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, account.ErrNotFound), errors.Is(err, settings.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, page.ErrInvalid),
		errors.Is(err, question.ErrInvalidQuery),
		errors.Is(err, shipment.ErrInvalidUrgency),
		errors.Is(err, billing.ErrInvalidPeriodKey),
		errors.Is(err, fakedata.ErrInvalidOptions),
		errors.Is(err, account.ErrAccountMismatch),
		errors.Is(err, marketplace.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, settings.ErrInvalidSettings):
		return http.StatusUnprocessableEntity
	case errors.Is(err, account.ErrReauthorizationRequired), errors.Is(err, marketplace.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, marketplace.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, marketplace.ErrServiceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "Request failed", slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
