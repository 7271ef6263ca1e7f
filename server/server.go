// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves the room scene to the browser renderer over
// HTTP, and ticks it once per animation frame over a WebSocket.
// Each WebSocket session advances its own copy of the scene.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cogentcore.org/roomview/base/iox/jsonx"
	"cogentcore.org/roomview/base/iox/yamlx"
	"cogentcore.org/roomview/compass"
	"cogentcore.org/roomview/config"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/scene"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server serves one scene template to any number of frame sessions.
type Server struct {

	// Metrics are the server metrics.
	Metrics *Metrics

	// fsys is the filesystem textures are read from;
	// nil uses the configured texture directory.
	fsys fs.FS

	// mu protects cfg and template, which are swapped on reload.
	mu       sync.RWMutex
	cfg      config.Server
	template *scene.Scene

	// sessMu protects sessions.
	sessMu   sync.Mutex
	sessions map[uuid.UUID]*Session

	upgrader websocket.Upgrader
}

// New returns a new server for the given config, building its scene with
// textures from fsys (nil for the configured texture directory).
func New(cfg *config.Config, fsys fs.FS) (*Server, error) {
	s := &Server{Metrics: NewMetrics(), fsys: fsys, sessions: map[uuid.UUID]*Session{}}
	if err := s.Reload(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload builds a new scene template from the given config and swaps it
// in. Open sessions keep the scene they started with. On error the
// current template is kept.
func (s *Server) Reload(cfg *config.Config) error {
	sc, err := scene.Build(cfg.Scene, s.fsys)
	if err != nil {
		s.Metrics.reloads.WithLabelValues("error").Inc()
		return fmt.Errorf("server: building scene: %w", err)
	}
	s.mu.Lock()
	s.cfg = cfg.Server
	s.template = sc
	s.mu.Unlock()
	s.Metrics.reloads.WithLabelValues("ok").Inc()
	return nil
}

// Scene returns the current scene template. It must not be modified.
func (s *Server) Scene() *scene.Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

// Config returns the current server options.
func (s *Server) Config() config.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Handler returns the HTTP handler of all server endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern, name string, h http.HandlerFunc) {
		mux.Handle(pattern, s.Metrics.Instrument(name, h))
	}
	handle("GET /scene", "scene", s.handleScene)
	handle("GET /scene.yaml", "scene.yaml", s.handleSceneYAML)
	handle("GET /bearing", "bearing", s.handleBearing)
	handle("GET /ws", "ws", s.handleWS)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	metrics := s.Metrics.Handler()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		// MetricsPath is read per request so that a reload can move it.
		if mp := s.Config().MetricsPath; mp != "" && r.URL.Path == mp {
			metrics.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
	return mux
}

// Run listens on the configured address and serves until the
// context is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config().Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on the given listener until the context is done,
// then shuts down gracefully, closing all frame sessions.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	slog.Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	timeout := time.Duration(s.Config().ShutdownTimeout * float32(time.Second))
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.closeSessions()
	err := srv.Shutdown(sctx)
	if serr := <-errc; !errors.Is(serr, http.ErrServerClosed) {
		err = errors.Join(err, serr)
	}
	slog.Info("server stopped", "addr", ln.Addr().String())
	return err
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	b, err := jsonx.WriteBytes(s.Scene())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (s *Server) handleSceneYAML(w http.ResponseWriter, r *http.Request) {
	b, err := yamlx.WriteBytes(s.Scene())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(b)
}

func (s *Server) handleBearing(w http.ResponseWriter, r *http.Request) {
	x, err := parseCoord(r, "x")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	z, err := parseCoord(r, "z")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	jsonx.Write(compass.Bearing(x, z), w)
}

// parseCoord returns the finite float32 value of the given query parameter.
func parseCoord(r *http.Request, name string) (float32, error) {
	q := r.URL.Query().Get(name)
	if q == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	v, err := strconv.ParseFloat(q, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	f := float32(v)
	if !math32.IsFinite(f) {
		return 0, fmt.Errorf("invalid %s: %q is not finite", name, q)
	}
	return f, nil
}
