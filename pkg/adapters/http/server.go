package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/operations"
)

// Operations is the operations layer as seen by the HTTP adapter.
type Operations interface {
	CreatePage(ctx context.Context, in operations.CreatePageInput) domain.OperationResult
	UpdatePage(ctx context.Context, in operations.UpdatePageInput) domain.OperationResult
}

// PageLister reads the page registry.
type PageLister interface {
	All() []domain.PageRegistryEntry
	Lookup(title string) []string
}

// Server serves the page operations as a JSON API.
type Server struct {
	Ops    Operations
	Pages  PageLister
	Logger *slog.Logger
}

// updateBody is the PATCH body; the page id comes from the path.
type updateBody struct {
	Data    string `json:"data"`
	Heading string `json:"heading,omitempty"`
}

// NewHandler creates the HTTP handler. When gatherer is non-nil, /metrics serves it.
func NewHandler(ops Operations, pages PageLister, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Ops: ops, Pages: pages, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/pages", s.ListPages)
	r.Post("/pages", s.CreatePage)
	r.Patch("/pages/{pageID}", s.UpdatePage)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreatePage handles POST /pages.
func (s *Server) CreatePage(w http.ResponseWriter, r *http.Request) {
	var body operations.CreatePageInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("CreatePage: Invalid request body", "error", err)
		return
	}
	s.writeResult(w, s.Ops.CreatePage(r.Context(), body))
}

// UpdatePage handles PATCH /pages/{pageID}.
func (s *Server) UpdatePage(w http.ResponseWriter, r *http.Request) {
	var body updateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("UpdatePage: Invalid request body", "error", err)
		return
	}
	in := operations.UpdatePageInput{
		PageID:  chi.URLParam(r, "pageID"),
		Data:    body.Data,
		Heading: body.Heading,
	}
	s.writeResult(w, s.Ops.UpdatePage(r.Context(), in))
}

// ListPages handles GET /pages, optionally filtered by ?title=.
func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	entries := s.Pages.All()
	if title := r.URL.Query().Get("title"); title != "" {
		filtered := []domain.PageRegistryEntry{}
		for _, id := range s.Pages.Lookup(title) {
			filtered = append(filtered, domain.PageRegistryEntry{Title: title, ID: id})
		}
		entries = filtered
	}
	s.writeJSON(w, http.StatusOK, entries)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeResult(w http.ResponseWriter, res domain.OperationResult) {
	s.writeJSON(w, statusFor(res), res)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

// statusFor maps an operation result to the HTTP status returned to the caller.
func statusFor(res domain.OperationResult) int {
	switch {
	case res.StatusCode != 0:
		return res.StatusCode
	case res.Kind == domain.FailureValidation:
		return http.StatusBadRequest
	case res.Kind == domain.FailureCancelled:
		return http.StatusServiceUnavailable
	case res.OK():
		return http.StatusOK
	default:
		return http.StatusBadGateway
	}
}
