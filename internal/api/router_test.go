package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sellerops/internal/api/auth"
	"sellerops/internal/api/handlers"
	"sellerops/internal/api/syncer"
	"sellerops/internal/shared/webhook"
	"sellerops/pkg/health"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, withTestData bool) (*gin.Engine, *auth.Sessions) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	sessions := auth.NewSessions(auth.SessionConfig{Secret: "secret", TTL: time.Hour, Issuer: "sellerops"})
	accounts := handlers.NewMockAccountService(ctrl)

	r := &Router{
		auth: handlers.NewAuthHandler(handlers.NewMockAuthorizeURLer(ctrl), auth.NewMemoryStateStore(),
			accounts, handlers.NewMockSessionIssuer(ctrl), "http://localhost:5173"),
		account:  handlers.NewAccountHandler(accounts),
		settings: handlers.NewSettingsHandler(handlers.NewMockSettingsService(ctrl)),
		shipment: handlers.NewShipmentHandler(handlers.NewMockShipmentService(ctrl)),
		catalog: handlers.NewCatalogHandler(handlers.NewMockItemLister(ctrl), handlers.NewMockOrderLister(ctrl),
			handlers.NewMockQuestionLister(ctrl)),
		billing:        handlers.NewBillingHandler(handlers.NewMockBillingReader(ctrl)),
		sync:           handlers.NewSyncHandler(syncer.NewMockAccountSyncer(ctrl)),
		webhook:        webhook.NewHandler(webhook.NewSyncProcessor(nil)),
		sessions:       sessions,
		healthRegistry: health.NewRegistry(),
	}
	if withTestData {
		r.testData = handlers.NewTestDataHandler(handlers.NewMockPopulator(ctrl))
	}

	engine := NewGinEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.SetUp(engine)
	return engine, sessions
}

func serve(engine *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, bytes.NewReader(body)))
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	engine, _ := newTestRouter(t, false)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health/ready", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, http.MethodPost, "/webhooks/notifications", []byte(`{}`)).Code)
}

func TestRouter_PrivateRoutesNeedSession(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/accounts/me"},
		{http.MethodDelete, "/accounts/me"},
		{http.MethodGet, "/settings"},
		{http.MethodPut, "/settings"},
		{http.MethodPost, "/settings/reset"},
		{http.MethodGet, "/shipments/pending"},
		{http.MethodGet, "/shipments/pending/stats"},
		{http.MethodGet, "/items"},
		{http.MethodGet, "/orders"},
		{http.MethodGet, "/questions"},
		{http.MethodGet, "/billing/periods"},
		{http.MethodGet, "/billing/periods/2024-05-01/expenses"},
		{http.MethodGet, "/billing/periods/2024-05-01/taxes"},
		{http.MethodPost, "/sync"},
		{http.MethodPost, "/test-data/populate"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(engine, rt.method, rt.path, nil).Code)
		})
	}
}

func TestRouter_TestDataDisabled(t *testing.T) {
	engine, sessions := newTestRouter(t, false)
	session, err := sessions.Issue(uuid.New(), 1)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/test-data/populate", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
