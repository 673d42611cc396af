package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/api"
	"github.com/Zaky-dc/shifaa-inventory/internal/config"
	"github.com/Zaky-dc/shifaa-inventory/internal/logger"
	"github.com/Zaky-dc/shifaa-inventory/internal/repository"
	"github.com/Zaky-dc/shifaa-inventory/internal/session"
	"github.com/Zaky-dc/shifaa-inventory/internal/store"
)

// Server assembles the store, the working session and the HTTP router.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
	log    *zap.Logger
}

// NewServer creates the server from configuration. The session
// persists locally into SQLite unless a backend URL points it at a
// remote instance.
func NewServer(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.New(filepath.Join(dataDir, "shifaa.db"))
	if err != nil {
		return nil, err
	}

	var repo session.Repository
	if cfg.Backend.URL != "" {
		log.Info("using remote snapshot backend", zap.String("url", cfg.Backend.URL))
		repo = repository.NewRemote(cfg.Backend.URL)
	} else {
		repo = repository.NewLocal(st)
	}

	sess := session.New(repo, logger.Named(log, "session"))
	handler := api.NewHandler(st, sess, filepath.Join(dataDir, "exports"), logger.Named(log, "api"))

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    handler,
		log:    log,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":    "Shifaa Inventory",
			"status": "ok",
		})
	})
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the underlying store.
func (s *Server) Close() error {
	return s.store.Close()
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
