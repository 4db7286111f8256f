package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/config"
)

// Server wraps the HTTP server around the configured gin engine.
type Server struct {
	http *http.Server
}

// New creates a server serving the given engine on the configured address.
func New(cfg *config.Config, engine *gin.Engine) *Server {
	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}
}

// Start blocks serving requests until the server is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
