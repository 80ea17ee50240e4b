package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	ws := rg.Group("/workspace")
	{
		ws.GET("/drive", h.Drive)
		ws.GET("/tasks", h.Tasks)
		ws.GET("/calendar", h.Calendar)
		ws.GET("/youtube", h.YouTube)
		ws.GET("/email", h.Email)
	}
}
