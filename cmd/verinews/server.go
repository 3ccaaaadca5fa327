// cmd/verinews/server.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server ties the HTTP surface to the verification pipeline
type Server struct {
	cfg      *Config
	verifier *Verifier
	ai       *AIVerifier
	cache    *Cache
	metrics  *MetricsRegistry
	errors   *ErrorBuffer
	http     *http.Server
}

// NewServer builds the HTTP server and its router
func NewServer(cfg *Config, verifier *Verifier, ai *AIVerifier, cache *Cache, metrics *MetricsRegistry, errors *ErrorBuffer) *Server {
	s := &Server{
		cfg:      cfg,
		verifier: verifier,
		ai:       ai,
		cache:    cache,
		metrics:  metrics,
		errors:   errors,
	}

	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)
	router.Use(s.corsMiddleware)

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/news/verify", s.handleVerify).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/news/search", s.handleSearch).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/news/article/{id}", s.handleArticle).Methods(http.MethodGet)
	router.HandleFunc("/api/translate", s.handleTranslate).Methods(http.MethodPost, http.MethodOptions)

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving; blocks until the listener stops
func (s *Server) Start() error {
	Logger().Info("Server listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// loggingMiddleware logs each request with its duration
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		Logger().Debug("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// corsMiddleware applies the configured origin allow-list
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}
	return false
}

// handleRoot is a plain-text liveness probe
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s v%s is running", AppName, AppVersion)
}
