package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workspace-chat/pkg/response"
)

const sessionCookie = "session_token"

// Auth requires a valid session token. API requests get a 401 JSON reply;
// page requests are redirected to the sign-in page, matching how the
// protected admin pages behave in the browser.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.reject(c)
			return
		}

		sc, err := decodeSessionToken(token, m.sessionSecret)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			m.reject(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// Session resolves the scope when a token is present but does not require
// one. Handlers decide per operation whether a Google token is needed.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.extractToken(c); token != "" {
			if sc, err := decodeSessionToken(token, m.sessionSecret); err == nil {
				SetScope(c, sc)
			}
		}
		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func (m Middleware) reject(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	c.Redirect(http.StatusFound, m.signInPath)
	c.Abort()
}
