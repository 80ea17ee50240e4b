package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	week := rg.Group("/calendar")
	{
		week.GET("/week", h.GetWeek)
		week.DELETE("/week/cache", h.InvalidateWeek)
	}
}
