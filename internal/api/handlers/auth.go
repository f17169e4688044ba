package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"sellerops/internal/api/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	oauth        AuthorizeURLer
	states       auth.StateStore
	accounts     AccountService
	sessions     SessionIssuer
	dashboardURL string
}

func NewAuthHandler(
	oauth AuthorizeURLer,
	states auth.StateStore,
	accounts AccountService,
	sessions SessionIssuer,
	dashboardURL string,
) *AuthHandler {
	return &AuthHandler{
		oauth:        oauth,
		states:       states,
		accounts:     accounts,
		sessions:     sessions,
		dashboardURL: dashboardURL,
	}
}

// Login redirects the browser to the marketplace consent page.
// GET /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := auth.NewState()
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.states.Save(c.Request.Context(), state, auth.StateTTL); err != nil {
		writeError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

type callbackParams struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

// Callback finishes the OAuth flow and hands a session token to the dashboard.
// GET /auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	var params callbackParams
	_ = c.ShouldBindQuery(&params)

	if params.Error != "" {
		h.redirect(c, url.Values{"error": {params.Error}})
		return
	}
	if params.Code == "" || params.State == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code or state"})
		return
	}

	ctx := c.Request.Context()
	if err := h.states.Consume(ctx, params.State); err != nil {
		if errors.Is(err, auth.ErrInvalidState) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	acc, err := h.accounts.Connect(ctx, params.Code)
	if err != nil {
		slog.WarnContext(ctx, "OAuth connect failed", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	session, err := h.sessions.Issue(acc.ID, acc.MarketplaceUserID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.redirect(c, url.Values{
		"token":      {session.Token},
		"expires_at": {session.ExpiresAt.UTC().Format(time.RFC3339)},
	})
}

func (h *AuthHandler) redirect(c *gin.Context, params url.Values) {
	target, err := url.Parse(h.dashboardURL)
	if err != nil {
		writeError(c, err)
		return
	}
	q := target.Query()
	for k, v := range params {
		q[k] = v
	}
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}
