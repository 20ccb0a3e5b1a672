// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      store.Store
	engine     *analysis.Engine
	fetchOpts  *fetch.Options
	limiter    *ratelimit.Limiter
	cancelBg   context.CancelFunc
}

// New creates a new server instance. Collaborators that are not configured
// are left nil; analysis degrades to empty results for those concerns.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	bgCtx, cancel := context.WithCancel(context.Background())

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		st = pg
	} else {
		mem := store.NewMemoryStore()
		mem.StartRetentionSweep(bgCtx, cfg.SweepInterval, cfg.Retention)
		st = mem
	}

	var checker grammar.Checker
	if cfg.LanguageToolURL != "" {
		lt, err := grammar.NewLanguageToolChecker(cfg.LanguageToolURL, &grammar.Options{Language: cfg.Language})
		if err != nil {
			cancel()
			st.Close()
			return nil, fmt.Errorf("failed to create grammar checker: %w", err)
		}
		checker = lt
	}

	var suggester llm.Suggester
	if cfg.GeminiAPIKey != "" {
		gs, err := llm.NewGeminiSuggester(ctx, cfg.GeminiAPIKey)
		if err != nil {
			cancel()
			st.Close()
			return nil, fmt.Errorf("failed to create content suggester: %w", err)
		}
		suggester = gs
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser

	s := newServer(cfg, st, checker, suggester, fetchOpts)
	s.cancelBg = cancel
	return s, nil
}

// newServer wires the router and middleware around the given collaborators.
// Split from New so tests can inject fakes.
func newServer(cfg *config.Config, st store.Store, checker grammar.Checker, suggester llm.Suggester, fetchOpts *fetch.Options) *Server {
	s := &Server{
		store: st,
		engine: &analysis.Engine{
			Grammar:   checker,
			ATS:       ats.NewAnalyzer(),
			Suggester: suggester,
		},
		fetchOpts: fetchOpts,
		limiter:   ratelimit.NewLimiter(ratelimit.Config{Limit: cfg.RateLimit, Window: time.Minute}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /resumes", s.handleUploadResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("GET /resumes/{id}/analyses", s.handleListAnalyses)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /analyze/grammar", s.handleGrammarCheck)
	mux.HandleFunc("POST /analyze/ats", s.handleATSCheck)
	mux.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.withRateLimit(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls out to slow collaborators
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.close()
	log.Println("Server stopped")
	return nil
}

// close releases the store and collaborators.
func (s *Server) close() {
	if s.cancelBg != nil {
		s.cancelBg()
	}
	s.limiter.Stop()
	if err := s.engine.Close(); err != nil {
		log.Printf("Error closing analysis engine: %v", err)
	}
	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit throttles the analysis endpoints per client IP. Uploads and
// reads are cheap and stay unlimited.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/analyze") {
			next.ServeHTTP(w, r)
			return
		}

		info := s.limiter.Allow(clientIP(r))
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !info.Allowed {
			retryAfter := int(info.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientIP extracts the client address for rate limiting.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
