// Package server hosts a content directory over HTTP so that the browser can
// be pointed at it with an http:// source. It is a static file host with no
// browser logic: only GET/HEAD of files under data/ and a health check.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/logging"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // content store root, the directory holding data/
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves a content store directory.
type Server struct {
	cfg        Config
	log        *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for cfg.Dir.
func New(cfg Config, logger *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: logging.OrNop(logger)}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Only the data directory is published.
	data := http.StripPrefix("/"+content.DataDir+"/", http.FileServer(noListing{http.Dir(s.cfg.Dir + "/" + content.DataDir)}))
	r.Get("/"+content.DataDir+"/*", noCache(data).ServeHTTP)
	r.Head("/"+content.DataDir+"/*", noCache(data).ServeHTTP)

	return r
}

// requestLogger logs one line per request through zap.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// noCache keeps clients from holding on to content between sessions.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// noListing hides directory indexes.
type noListing struct{ fs http.FileSystem }

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("serving content store", zap.String("addr", s.Addr()), zap.String("dir", s.cfg.Dir))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
