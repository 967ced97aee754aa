// SPDX-License-Identifier: MIT

// Package server exposes the vectorizers over HTTP. Every request fits a fresh
// vectorizer, so handlers share no mutable state.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/tfidf/internal/logger"
	"github.com/katalvlaran/tfidf/vectorize"
)

// Config holds listener settings and request limits. A limit <= 0 is off.
//   - MaxBodyBytes caps the request body before it is decoded.
//   - MaxCells caps documents × distinct tokens, the size of every dense
//     matrix a request builds; /v1/similarity also caps documents².
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxDocuments    int
	MaxBodyBytes    int64
	MaxCells        int
	// EmptyDocuments applies when a request does not name a policy.
	EmptyDocuments vectorize.EmptyDocumentPolicy
}

// Server answers vectorizer requests over HTTP. Handlers are safe for
// concurrent use: each request fits its own vectorizer.
type Server struct {
	cfg    Config
	log    logger.Logger
	router *gin.Engine
}

// New builds the router. A nil log falls back to the package default.
func New(cfg Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.GetDefault()
	}
	s := &Server{cfg: cfg, log: log}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(log))
	registerRoutes(router, s)
	s.router = router

	return s
}

// Handler returns the HTTP handler, for embedding or httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("starting HTTP server", "address", "http://"+ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	s.log.Debug("received shutdown signal, initiating graceful shutdown")

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server shutdown completed")

	return nil
}
