package web

import (
	"net/http"
	"strings"
	"time"

	"lotline-auction-service/internal/domain/shared"
	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// context keys for the authenticated identity
const (
	userKey  = "currentUser"
	tokenKey = "sessionToken"
)

// RequestLogger logs each request with method, path, status and timing
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	requestLogger := logger.With().Str("component", "http").Logger()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		requestLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}

// RequireAuth resolves the Bearer session token to a user and aborts
// unauthenticated requests. Handlers behind it read the identity with
// currentUser and receive it explicitly, never from ambient state.
func RequireAuth(accounts inbound.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, shared.ErrSessionNotFound, "authentication required")
			c.Abort()
			return
		}

		user, err := accounts.CurrentUser(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, err, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// OptionalAuth resolves the session when one is presented without
// requiring it, for routes that render differently for visitors
func OptionalAuth(accounts inbound.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := accounts.CurrentUser(c.Request.Context(), token); err == nil {
				c.Set(userKey, user)
				c.Set(tokenKey, token)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// currentUser returns the user stored by the auth middleware
func currentUser(c *gin.Context) (*shared.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*shared.User)
	return user, ok
}

// sessionToken returns the raw token stored by the auth middleware
func sessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
