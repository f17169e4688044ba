package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sellerops/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	accountIDKey = "account_id"
	bearerPrefix = "Bearer "
)

// RequireSession rejects requests without a valid bearer session token and
// stores the session's account id in the gin context.
func RequireSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		accountID, err := sessions.Validate(token)
		if err != nil {
			msg := "invalid session"
			if errors.Is(err, ErrExpiredSession) {
				msg = "session expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(accountIDKey, accountID)
		ctx := logger.WithAttrs(c.Request.Context(), slog.String("account_id", accountID.String()))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AccountID returns the account set by RequireSession.
func AccountID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(accountIDKey)
	accountID, _ := id.(uuid.UUID)
	return accountID
}
