package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sellerops/internal/api/domain/settings"
	"sellerops/pkg/pointers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockSettingsService(ctrl)
	h := NewSettingsHandler(service)
	srv := newTestServer(t, func(r gin.IRoutes) {
		r.GET("/settings", h.Get)
		r.PUT("/settings", h.Update)
		r.POST("/settings/reset", h.Reset)
	})
	defaults := settings.Defaults(srv.accountID)

	t.Run("get returns stored settings", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), srv.accountID).Return(defaults, nil)

		w := srv.do(t, http.MethodGet, "/settings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[settings.Settings](t, w)
		assert.Equal(t, settings.DefaultTimezone, got.Timezone)
		assert.Equal(t, settings.DefaultUrgentWindowHours, got.UrgentWindowHours)
	})

	t.Run("put applies a partial update", func(t *testing.T) {
		updated := defaults
		updated.UrgentWindowHours = 12
		service.EXPECT().
			Update(gomock.Any(), srv.accountID, settings.Update{UrgentWindowHours: pointers.Ptr(12)}).
			Return(updated, nil)

		w := srv.do(t, http.MethodPut, "/settings", map[string]any{"urgent_window_hours": 12})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 12, decodeBody[settings.Settings](t, w).UrgentWindowHours)
	})

	t.Run("put rejects invalid values with 422", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), srv.accountID, gomock.Any()).
			Return(settings.Settings{}, fmt.Errorf("%w: unknown timezone %q", settings.ErrInvalidSettings, "Mars/Base"))

		w := srv.do(t, http.MethodPut, "/settings", map[string]any{"timezone": "Mars/Base"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, message(t, w), "unknown timezone")
	})

	t.Run("put rejects malformed json", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/settings", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		service.EXPECT().Reset(gomock.Any(), srv.accountID).Return(defaults, nil)

		w := srv.do(t, http.MethodPost, "/settings/reset", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, settings.DefaultSyncIntervalMinutes, decodeBody[settings.Settings](t, w).SyncIntervalMinutes)
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), srv.accountID).Return(settings.Settings{}, errors.New("database error"))

		w := srv.do(t, http.MethodGet, "/settings", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "database error", message(t, w))
	})
}
