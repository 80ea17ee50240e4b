package middleware

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/model"
)

const scopeKey = "scope"

// SetScope stores the request scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the request scope, or a zero scope when the request is
// unauthenticated.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
