package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "workspace-chat/internal/calendar/delivery/http"
	chatHTTP "workspace-chat/internal/chat/delivery/http"
	"workspace-chat/internal/model"
	workspaceHTTP "workspace-chat/internal/workspace/delivery/http"
	"workspace-chat/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain route. The chat endpoint accepts
// anonymous sessions, the Workspace experiments and the admin surface
// require a signed session token, and the free-tier proxy stands alone
// under /api/ai.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	// Chat works without a session; handlers require a Google token only
	// for the Workspace commands.
	chatGroup := api.Group("", srv.mw.Session())
	chatHTTP.RegisterRoutes(chatGroup, srv.chatHandler)
	srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")

	authed := api.Group("", srv.mw.Auth())
	if srv.calendarHandler != nil {
		calendarHTTP.RegisterRoutes(authed, srv.calendarHandler)
		srv.l.Infof(ctx, "Calendar routes registered under /api/v1/calendar")
	}
	if srv.workspaceHandler != nil {
		workspaceHTTP.RegisterRoutes(authed, srv.workspaceHandler)
		srv.l.Infof(ctx, "Workspace routes registered under /api/v1/workspace")
	}

	if srv.proxyHandler != nil {
		srv.gin.POST("/api/ai/providers/free", srv.proxyHandler.Forward)
		srv.l.Infof(ctx, "Free-tier proxy registered at POST /api/ai/providers/free")
	}

	// Admin surface: pages redirect to sign-in, API calls get 401.
	srv.gin.Group("/admin", srv.mw.Auth()).GET("", srv.adminHome)
	srv.gin.Group("/api/admin", srv.mw.Auth()).GET("/session", srv.adminSession)
}

// adminHome is a placeholder page behind the session gate.
func (srv HTTPServer) adminHome(c *gin.Context) {
	c.String(http.StatusOK, "admin")
}

// adminSession echoes the authenticated session for the admin UI.
func (srv HTTPServer) adminSession(c *gin.Context) {
	response.OK(c, gin.H{"authenticated": true})
}
