// Package api serves the game over HTTP.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/KirkDiggler/castaway/internal/services/game"
	"github.com/gin-gonic/gin"
)

const headerSitePassword = "x-site-password"

// Config holds the configuration for the server
type Config struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// SitePassword gates game creation; empty disables it
	SitePassword string

	// Game service
	GameService game.Service
}

// Server wires the routes to the game service
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	gameService  game.Service
	sitePassword string
}

// New creates a new server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if gin.Mode() != gin.TestMode {
		router.Use(gin.Logger())
	}

	s := &Server{
		router:       router,
		gameService:  cfg.GameService,
		sitePassword: cfg.SitePassword,
	}
	s.routes()

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.Health)
	s.router.POST("/auth", s.Auth)

	g := s.router.Group("/game")
	g.POST("/start", s.requireSitePassword(), s.StartGame)
	g.POST("/:gameId/scene", s.AdvanceScene)
	g.GET("/:gameId", s.GetGame)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving in the background
func (s *Server) Start() error {
	if s.httpServer.Addr == "" {
		return ErrEmptyAddr
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	log.Printf("Castaway is now listening on %s. Press CTRL-C to exit.", s.httpServer.Addr)
	return nil
}

// Stop waits for in-flight requests to finish until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Health reports liveness
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
