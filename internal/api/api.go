package api

import (
	"fmt"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/schedoosh/schedoosh/internal/api/auth"
	"github.com/schedoosh/schedoosh/internal/api/handler"
	"github.com/schedoosh/schedoosh/internal/config"
	"github.com/schedoosh/schedoosh/internal/database"
)

// Server is the Schedoosh HTTP API server.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	auth      *auth.Handler
	db        *database.Client
}

// New creates a new API server.
func New(cfg *config.Config, db *database.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		auth:      auth.New(db, cfg.Auth),
		db:        db,
	}, nil
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	h := handler.New(s.db)

	api := s.ginEngine.Group("/api")
	api.POST("/auth/register", s.auth.Register)
	api.POST("/auth/login", s.auth.Login)

	protected := api.Group("/")
	protected.Use(s.auth.RequireAuth())

	protected.GET("/me", h.Me)
	protected.PATCH("/me", h.UpdateScore)

	protected.POST("/groups", h.CreateGroup)
	protected.GET("/groups", h.ListMyGroups)
	protected.GET("/groups/:id", h.GetGroup)
	protected.POST("/groups/:id/join", h.JoinGroup)
	protected.POST("/groups/:id/leave", h.LeaveGroup)
	protected.POST("/groups/:id/invite", h.InviteToGroup)

	protected.GET("/events", h.ListMyEvents)
	protected.POST("/events", h.CreateEvent)
	protected.DELETE("/events/:id", h.DeleteEvent)
	protected.GET("/events/group/:id", h.ListGroupEvents)
}

// Run mounts the routes and starts the listener. It blocks until the
// listener fails or the process is stopped.
func (s *Server) Run() error {
	s.setupRoutes()
	return s.ginEngine.Run(s.cfg.Listen)
}
