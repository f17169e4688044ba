package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"sellerops/internal/api/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine    *gin.Engine
	accountID uuid.UUID
	token     string
}

// newTestServer mounts routes behind a real session middleware and signs
// a token for a fresh account.
func newTestServer(t *testing.T, mount func(r gin.IRoutes)) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessions(auth.SessionConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "sellerops"})
	accountID := uuid.New()
	session, err := sessions.Issue(accountID, 42)
	require.NoError(t, err)

	engine := gin.New()
	mount(engine.Group("/", auth.RequireSession(sessions)))

	return testServer{engine: engine, accountID: accountID, token: session.Token}
}

func (s testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+s.token)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]any](t, w)["message"].(string)
}

