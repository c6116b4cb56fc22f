// Package api exposes the verification pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/verifysense/verifysense/internal/model"
)

// Verifier runs one verification request; satisfied by pipeline.Pipeline
type Verifier interface {
	Verify(ctx context.Context, req model.VerifyRequest) ([]model.VerificationResult, error)
}

// Server serves the verification API
type Server struct {
	verifier Verifier
}

// NewServer creates an API server around the verifier
func NewServer(verifier Verifier) *Server {
	return &Server{verifier: verifier}
}

// Routes builds the handler tree with logging and CORS applied
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/verify", s.handleVerify)
	return withLogging(withCORS(mux))
}

type verifyResponse struct {
	Status    string                     `json:"status"`
	RequestID string                     `json:"request_id"`
	Results   []model.VerificationResult `json:"results"`
}

type errorResponse struct {
	Status    string          `json:"status"`
	RequestID string          `json:"request_id,omitempty"`
	ErrorKind model.ErrorKind `json:"error_kind"`
	Message   string          `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "VerifySense API is running",
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req model.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Status:    "error",
			RequestID: requestID,
			ErrorKind: model.KindInternal,
			Message:   "invalid request body",
		})
		return
	}

	results, err := s.verifier.Verify(r.Context(), req)
	if err != nil {
		kind := model.ClassifyError(err)
		writeJSON(w, statusFor(kind), errorResponse{
			Status:    "error",
			RequestID: requestID,
			ErrorKind: kind,
			Message:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Status:    "success",
		RequestID: requestID,
		Results:   results,
	})
}

// statusFor maps error kinds to HTTP status codes. Collaborator failures that
// prevent producing a score are client-visible 4xx per the original API;
// anything unclassified is a 500.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindNoClaims, model.KindExtraction, model.KindOCR:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

// withLogging logs each request with its duration
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// withCORS lets browser frontends call the API
func withCORS(next http.Handler) http.Handler {
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

// ListenAndServe runs the API with graceful shutdown when ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, cfg model.ServerConfig) error {
	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("VerifySense API listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
