// Package server provides the HTTP editing and export API for the CV
// generator. It is the form surface: every endpoint binds user input to the
// document update protocol, and the preview endpoint re-derives the visual
// document from the live value on every request.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"cv-generator/internal/cv"
	"cv-generator/internal/export"
	"cv-generator/internal/llm"
	"cv-generator/internal/rendering"
	"cv-generator/internal/translation"
)

//go:embed static/index.html
var staticFS embed.FS

// Config holds server configuration.
type Config struct {
	Port       int
	APIKey     string
	Model      string
	ChromePath string
}

// Server represents the HTTP server.
type Server struct {
	httpServer   *http.Server
	store        *cv.Store
	renderer     *rendering.Renderer
	orchestrator *export.Orchestrator
	validate     *validator.Validate
	llmClient    llm.Client
}

// New creates a new server instance. An empty API key leaves translation
// unconfigured; English exports still work.
func New(cfg Config) (*Server, error) {
	renderer, err := rendering.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var client llm.Client
	var translator export.Translator
	if cfg.APIKey != "" {
		client, err = llm.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create translation client: %w", err)
		}
		translator = translation.New(client)
	}

	orchestrator := export.NewOrchestrator(translator, renderer, export.NewChromeRasterizer(cfg.ChromePath))

	s := newServer(cfg.Port, cv.NewStore(cv.DefaultDocument()), renderer, orchestrator)
	s.llmClient = client
	return s, nil
}

// newServer wires the router around already-built dependencies.
func newServer(port int, store *cv.Store, renderer *rendering.Renderer, orchestrator *export.Orchestrator) *Server {
	s := &Server{
		store:        store,
		renderer:     renderer,
		orchestrator: orchestrator,
		validate:     validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	// Document endpoints
	mux.HandleFunc("GET /cv", s.handleGetDocument)
	mux.HandleFunc("PUT /cv", s.handleReplaceDocument)
	mux.HandleFunc("PUT /cv/scalar", s.handleSetScalar)
	mux.HandleFunc("POST /cv/photo", s.handleUploadPhoto)
	mux.HandleFunc("DELETE /cv/photo", s.handleRemovePhoto)
	mux.HandleFunc("POST /cv/{collection}", s.handleAppendItem)
	mux.HandleFunc("PUT /cv/{collection}/{index}/{field}", s.handleSetItemField)
	mux.HandleFunc("DELETE /cv/{collection}/{id}", s.handleRemoveItem)

	// Preview and export endpoints
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /languages", s.handleLanguages)
	mux.HandleFunc("POST /export", s.handleExport)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withCORS(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // exports hold the connection
	}
	return s
}

// Start runs the server until an interrupt or termination signal arrives.
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
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing translation client: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
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
