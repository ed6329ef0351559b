package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hexquantity/internal/config"
	"hexquantity/internal/logger"
	"hexquantity/pkg/hexquantity"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     logger.AppLogger
}

// NewServer creates a new instance of the REST API server.
func NewServer(decoder hexquantity.Decoder, appLogger logger.AppLogger, cfg *config.ServerConfig) (*Server, error) {
	if decoder == nil {
		return nil, errors.New("decoder cannot be nil for Server")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(decoder, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Port,
			Handler:           NewRouter(h),
			ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
			IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
			ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		},
		logger: appLogger,
	}, nil
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// NewRouter creates a new ServeMux and registers all API handlers.
func NewRouter(h *HTTPHandler) *http.ServeMux {
	smux := http.NewServeMux()

	smux.HandleFunc("/decode", h.HandleDecode)
	smux.HandleFunc("/decode/batch", h.HandleDecodeBatch)
	smux.HandleFunc("/stats", h.HandleStats)

	h.logger.Info("Registered endpoints",
		"routes", []string{"POST /decode", "POST /decode/batch", "GET /stats"},
	)
	return smux
}
