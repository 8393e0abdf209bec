// Package sqltutor provides a question-answering service over a SQL
// manual. It indexes the manual as overlapping chunks, retrieves the
// most relevant chunks per question, asks an Ollama model, and renders
// markdown answers as HTML.
//
// Environment variables:
//   - PORT: HTTP listen port (default 8502)
//   - SQLTUTOR_MANUAL: path to the SQL manual document
//   - SQLTUTOR_DB: SQLite path for the chunk index
//   - OPEN_WEB_API_GENERATE_URL: Ollama/Open WebUI generate endpoint
//   - OPEN_WEB_API_TOKEN: token for the generate endpoint
package sqltutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	ollama "github.com/eslider/go-ollama"
	"github.com/rs/zerolog"
)

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Answer string `json:"answer"`
}

// Server exposes the tutor over HTTP: POST /query takes {"query": ...}
// and answers {"answer": ...}.
type Server struct {
	config Config
	tutor  *Tutor
	store  *Store
	log    zerolog.Logger

	httpServer *http.Server
	serveWait  sync.WaitGroup
}

// NewServer creates the HTTP front end for the tutor service with the
// given configuration. Call Run() to start serving.
func NewServer(config Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Server{config: config}, nil
}

// Run starts the service: opens the chunk store, indexes the manual,
// and serves HTTP. This blocks until Stop() is called, the context is
// canceled, or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	// Set up logging
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.Stamp
	})).With().Timestamp().Logger()

	if !s.config.Debug {
		log = log.Level(zerolog.InfoLevel)
	}
	s.log = log

	store, err := OpenStore(s.config.Database)
	if err != nil {
		return err
	}
	s.store = store

	count, err := IngestManual(ctx, store, s.config.ManualPath)
	if err != nil {
		return err
	}
	s.log.Info().
		Int("chunks", count).
		Str("manual", s.config.ManualPath).
		Msg("Manual indexed")

	gen := NewOllamaGenerator(&ollama.DSN{
		URL:   s.config.GenerateURL,
		Token: s.config.Token,
	}, s.config.Model)
	s.tutor = NewTutor(store, gen, log)

	s.httpServer = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	s.serveWait.Add(1)
	go func() {
		defer s.serveWait.Done()
		if serveErr := s.httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	s.log.Info().
		Str("addr", s.config.Addr).
		Str("model", s.config.Model).
		Msg("SQL tutor is running")

	select {
	case <-ctx.Done():
		return nil
	case serveErr := <-errCh:
		return fmt.Errorf("sqltutor: serve failed: %w", serveErr)
	}
}

// Stop gracefully stops the server and closes the chunk store.
func (s *Server) Stop() error {
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("sqltutor: shutdown failed: %w", err)
		}
	}
	s.serveWait.Wait()

	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Router returns the http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/query", s.cors(s.handleQuery))
	return mux
}

// cors allows any origin, so browser extensions can call the service
// directly.
func (s *Server) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	answer := s.tutor.Answer(r.Context(), req.Query)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(queryResponse{Answer: answer}); err != nil {
		s.log.Error().Err(err).Msg("Failed to write response")
	}
}
