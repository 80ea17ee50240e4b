package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calendarHTTP "workspace-chat/internal/calendar/delivery/http"
	chatHTTP "workspace-chat/internal/chat/delivery/http"
	"workspace-chat/internal/middleware"
	"workspace-chat/internal/proxy"
	workspaceHTTP "workspace-chat/internal/workspace/delivery/http"
	"workspace-chat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domains
	chatHandler      chatHTTP.Handler
	calendarHandler  calendarHTTP.Handler
	workspaceHandler workspaceHTTP.Handler
	proxyHandler     proxy.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChatHandler      chatHTTP.Handler
	CalendarHandler  calendarHTTP.Handler
	WorkspaceHandler workspaceHTTP.Handler
	ProxyHandler     proxy.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		chatHandler:      cfg.ChatHandler,
		calendarHandler:  cfg.CalendarHandler,
		workspaceHandler: cfg.WorkspaceHandler,
		proxyHandler:     cfg.ProxyHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
