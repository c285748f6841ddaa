// Package server provides the HTTP REST API for the CareerWise assistant.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/careerwise/careerwise/internal/analysis"
	"github.com/careerwise/careerwise/internal/interview"
	"github.com/careerwise/careerwise/internal/llm"
	"github.com/careerwise/careerwise/internal/scoring"
)

// Config holds server configuration.
type Config struct {
	Port   int
	APIKey string // Gemini API key; empty runs the server without LLM features
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	llmClient  llm.Client
	analyzer   *analysis.Analyzer
	scorer     *scoring.Scorer
	sessions   *interview.SessionStore
	validate   *validator.Validate
}

// New creates a server instance. When cfg.APIKey is empty the LLM-backed
// endpoints run in their deterministic fallback modes; scoring is always
// available.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		scorer:   scoring.NewScorer(nil),
		sessions: interview.NewSessionStore(),
		validate: validator.New(),
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
	}
	s.analyzer = analysis.NewAnalyzer(s.llmClient, s.scorer)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /skills", s.handleSkills)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("POST /ingest/url", s.handleIngestURL)
	mux.HandleFunc("POST /analyze/resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /analyze/match", s.handleAnalyzeMatch)
	mux.HandleFunc("POST /interview/questions", s.handleQuestions)
	mux.HandleFunc("POST /interview/critique", s.handleCritique)
	mux.HandleFunc("POST /interview/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /interview/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /interview/sessions/{id}/answers", s.handleSubmitAnswer)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
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

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the routing stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleHealth responds with service status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"llm_available": s.llmClient != nil,
	})
}

// withCORS adds CORS headers for the browser UI.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response with the given status.
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
