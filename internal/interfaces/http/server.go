package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/swiftticket/swiftticket/internal/shared/goroutine"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// Server runs the ops router on its own listener.
type Server struct {
	srv    *http.Server
	logger logger.Interface
}

func NewServer(addr string, router *Router, log logger.Interface) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           router.GetEngine(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: log,
	}
}

// Start serves in the background. A listener failure is logged; the bot
// keeps running without health checks.
func (s *Server) Start() {
	goroutine.SafeGo(s.logger, "ops-server", func() {
		s.logger.Infow("ops server starting", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorw("ops server stopped", "error", err)
		}
	})
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
