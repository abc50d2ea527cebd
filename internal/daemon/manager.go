// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ShutdownHook is a function that performs cleanup during graceful shutdown.
// Hooks are executed in reverse registration order (LIFO).
type ShutdownHook func(ctx context.Context) error

// ServerConfig bounds the HTTP server.
type ServerConfig struct {
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns the timeouts used by the daemon.
func DefaultServerConfig(listenAddr string) ServerConfig {
	return ServerConfig{
		ListenAddr:      listenAddr,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Manager runs the HTTP server and the shutdown hooks.
type Manager struct {
	cfg     ServerConfig
	handler http.Handler
	logger  zerolog.Logger

	mu       sync.Mutex
	server   *http.Server
	addr     net.Addr
	hooks    []namedHook
	started  bool
	stopping bool
}

type namedHook struct {
	name string
	hook ShutdownHook
}

// NewManager creates a manager serving handler.
func NewManager(cfg ServerConfig, handler http.Handler, logger zerolog.Logger) (*Manager, error) {
	if handler == nil {
		return nil, ErrMissingHandler
	}
	return &Manager{
		cfg:     cfg,
		handler: handler,
		logger:  logger.With().Str("component", "manager").Logger(),
	}, nil
}

// Addr returns the bound address once Start has listened.
func (m *Manager) Addr() net.Addr {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addr
}

// Start listens, serves and blocks until ctx is cancelled or the server
// fails. Either way it shuts down before returning.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrManagerStarted
	}
	m.started = true
	m.mu.Unlock()

	ln, err := net.Listen("tcp", m.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", m.cfg.ListenAddr, err)
	}

	srv := &http.Server{
		Handler:           m.handler,
		ReadTimeout:       m.cfg.ReadTimeout,
		ReadHeaderTimeout: m.cfg.ReadTimeout / 2,
		WriteTimeout:      m.cfg.WriteTimeout,
		IdleTimeout:       m.cfg.IdleTimeout,
	}
	m.mu.Lock()
	m.server = srv
	m.addr = ln.Addr()
	m.mu.Unlock()

	m.logger.Info().
		Str("addr", ln.Addr().String()).
		Dur("shutdown_timeout", m.cfg.ShutdownTimeout).
		Msg("HTTP server listening")

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error().
				Err(err).
				Str("event", "http.server.failed").
				Msg("HTTP server failed")
			errChan <- fmt.Errorf("HTTP server: %w", err)
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if !ok {
			err = errors.New("HTTP server stopped unexpectedly")
		}
		m.logger.Error().Err(err).Msg("Server error, initiating shutdown")
		if shutdownErr := m.Shutdown(ctx); shutdownErr != nil {
			return fmt.Errorf("server error and shutdown failure: %w", errors.Join(err, shutdownErr))
		}
		return err
	case <-ctx.Done():
		m.logger.Info().Msg("Shutdown signal received")
		return m.Shutdown(ctx)
	}
}

// Shutdown stops the server and runs hooks. It is idempotent.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	if m.stopping {
		m.mu.Unlock()
		return nil
	}
	if !m.started {
		m.mu.Unlock()
		return ErrManagerNotStarted
	}
	m.stopping = true
	srv := m.server
	hooks := append([]namedHook(nil), m.hooks...)
	m.mu.Unlock()

	m.logger.Info().Msg("Shutting down daemon manager")

	// Bounded and independent of caller cancellation.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		}
	}

	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		hookStart := time.Now()
		if err := h.hook(shutdownCtx); err != nil {
			m.logger.Error().
				Err(err).
				Str("hook", h.name).
				Dur("duration", time.Since(hookStart)).
				Msg("Shutdown hook failed")
			errs = append(errs, fmt.Errorf("hook %s: %w", h.name, err))
			continue
		}
		m.logger.Debug().
			Str("hook", h.name).
			Dur("duration", time.Since(hookStart)).
			Msg("Shutdown hook completed")
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(errs...))
	}
	m.logger.Info().Msg("Daemon manager stopped cleanly")
	return nil
}

// RegisterShutdownHook registers a cleanup function to be called during shutdown.
// Hooks are executed in reverse registration order (LIFO).
func (m *Manager) RegisterShutdownHook(name string, hook ShutdownHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, namedHook{name: name, hook: hook})
}
