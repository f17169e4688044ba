package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonUnmarshal(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

func newTestOAuth(tokenURL string) *OAuth {
	return NewOAuth(OAuthConfig{
		ClientID:     "app-1",
		ClientSecret: "secret",
		AuthURL:      "https://auth.example.com/authorization",
		TokenURL:     tokenURL,
		RedirectURL:  "http://localhost:3000/auth/callback",
	}, nil)
}

func TestOAuth_AuthCodeURL(t *testing.T) {
	u, err := url.Parse(newTestOAuth("http://unused").AuthCodeURL("state-1"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "auth.example.com", u.Host)
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "app-1", q.Get("client_id"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "http://localhost:3000/auth/callback", q.Get("redirect_uri"))
}

func TestOAuth_Exchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "TG-code", r.PostForm.Get("code"))
		assert.Equal(t, "app-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"APP_USR-access","token_type":"Bearer","expires_in":21600,"scope":"offline_access read write","user_id":123456,"refresh_token":"TG-refresh"}`))
	}))
	defer server.Close()

	tok, err := newTestOAuth(server.URL).Exchange(context.Background(), "TG-code")

	require.NoError(t, err)
	assert.Equal(t, "APP_USR-access", tok.AccessToken)
	assert.Equal(t, "TG-refresh", tok.RefreshToken)
	assert.Equal(t, int64(123456), tok.UserID)
	assert.Equal(t, "offline_access read write", tok.Scope)
	assert.False(t, tok.ExpiresAt.IsZero())
}

func TestOAuth_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "TG-old", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"APP_USR-new","token_type":"Bearer","expires_in":21600,"user_id":"123456","refresh_token":"TG-new"}`))
	}))
	defer server.Close()

	tok, err := newTestOAuth(server.URL).Refresh(context.Background(), "TG-old")

	require.NoError(t, err)
	assert.Equal(t, "APP_USR-new", tok.AccessToken)
	assert.Equal(t, "TG-new", tok.RefreshToken)
	assert.Equal(t, int64(123456), tok.UserID)
}

func TestOAuth_InvalidGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","message":"Error validating grant"}`))
	}))
	defer server.Close()

	_, err := newTestOAuth(server.URL).Refresh(context.Background(), "TG-revoked")

	assert.ErrorIs(t, err, ErrUnauthorized)
}
