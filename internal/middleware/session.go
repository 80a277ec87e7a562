package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/logger"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

// LoginPath is where unauthenticated callers are sent.
const LoginPath = "/admin/login"

// DefaultSessionCookie names the cookie carrying the session token when none is configured.
const DefaultSessionCookie = "admin_session"

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireSession rejects requests without a signed-in admin session before the
// handler runs. The resolved session id is stored under logger.SessionIDKey.
func RequireSession(auth sessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			abortUnauthenticated(c, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required"))
			return
		}

		sessionID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if appErrors.FromError(err).Status == appErrors.ErrUnauthorized.Status {
				abortUnauthenticated(c, err)
				return
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(logger.SessionIDKey, sessionID)
		c.Next()
	}
}

// OptionalSession attaches the session id when the token is valid but never blocks.
func OptionalSession(auth sessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := SessionToken(c, cookieName); token != "" {
			if sessionID, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(logger.SessionIDKey, sessionID)
			}
		}
		c.Next()
	}
}

// SessionToken reads the bearer token, falling back to the session cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

// SessionID returns the session id stored by the session guard.
func SessionID(c *gin.Context) string {
	return c.GetString(logger.SessionIDKey)
}

func abortUnauthenticated(c *gin.Context, err error) {
	response.Error(c, err, map[string]interface{}{"redirect": LoginPath})
	c.Abort()
}
