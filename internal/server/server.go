// Package server hosts the local execution proxy. It accepts the same
// payload the TUI builds, injects the API credentials server-side, and
// relays the upstream result so clients never hold the secrets.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"codedeck/internal/config"
	"codedeck/internal/errors"
	"codedeck/internal/log"
	"codedeck/internal/run"
	"codedeck/pkg/types"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Server is the execution proxy. Configuration may be swapped at
// runtime by the config watcher, so reads go through the mutex.
type Server struct {
	mu         sync.RWMutex
	cfg        *config.Config
	configPath string
	router     chi.Router
	hc         *http.Client
}

// Option configures a Server.
type Option func(*Server)

// WithHTTPClient replaces the client used to reach the upstream
// execution service, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Server) {
		s.hc = hc
	}
}

// WithConfigPath enables hot reloading of the given config file while
// the server runs.
func WithConfigPath(path string) Option {
	return func(s *Server) {
		s.configPath = path
	}
}

// New creates a proxy server over the given configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg: cfg,
		hc:  &http.Client{Timeout: time.Duration(cfg.Execute.TimeoutSeconds) * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.Post("/api/execute", s.handleExecute)
	r.Get("/healthz", s.handleHealth)
	s.router = r

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve runs the proxy until the context is cancelled, then shuts down
// gracefully. When a config path is set, edits to it are picked up
// without a restart.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.RLock()
	addr := s.cfg.Server.Addr
	s.mu.RUnlock()

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("execution proxy listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if s.configPath != "" {
		g.Go(func() error {
			return s.watchConfig(gctx)
		})
	}

	return g.Wait()
}

// watchConfig reloads the config file whenever it changes. A reload
// that fails validation keeps the previous configuration.
func (s *Server) watchConfig(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating config watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(s.configPath); err != nil {
		return errors.Wrapf(err, "watching %s", s.configPath)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := config.LoadConfigFile(s.configPath)
			if err != nil {
				log.WithError(err).Error("config reload failed, keeping previous configuration")
				continue
			}
			s.mu.Lock()
			s.cfg = cfg
			s.mu.Unlock()
			log.Info("configuration reloaded from %s", s.configPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("config watcher error")
		}
	}
}

// credentials resolves the execution API credential pair. The
// environment wins over the config file and is consulted on every
// request, so rotated secrets take effect immediately.
func (s *Server) credentials() (string, string) {
	id := os.Getenv(config.EnvClientID)
	secret := os.Getenv(config.EnvClientSecret)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "" {
		id = s.cfg.Execute.ClientID
	}
	if secret == "" {
		secret = s.cfg.Execute.ClientSecret
	}
	return id, secret
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req types.ExecutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, secret := s.credentials()
	if id == "" || secret == "" {
		log.Error("execution request rejected: credentials are not configured")
		writeError(w, http.StatusInternalServerError, "execution credentials are not configured")
		return
	}

	s.mu.RLock()
	endpoint := s.cfg.Execute.Endpoint
	s.mu.RUnlock()

	client := run.NewClient(endpoint, id, secret, run.WithHTTPClient(s.hc))
	// The upstream body is passed through untouched so clients see
	// every field the execution service returns.
	raw, err := client.ExecuteRaw(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("upstream execution failed")
		writeError(w, http.StatusInternalServerError, "execution service unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(raw); err != nil {
		log.WithError(err).Error("writing execution result")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
