package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/internal/logging"
	"github.com/aretw0/dectab/pkg/domain"
	"github.com/aretw0/dectab/pkg/ports"
	"github.com/aretw0/dectab/pkg/recognizer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxBodySize caps request bodies before they reach the recognizer.
const DefaultMaxBodySize int64 = 1 << 20

// Server serves recognition and the table store over HTTP.
type Server struct {
	Recognizer ports.TableRecognizer
	Store      ports.TableStore

	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	maxBodySize int64
	validate    bool
	now         func() time.Time
	newID       func() string
}

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger sets the logger used by the handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithMaxBodySize limits request bodies in bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// WithRequestValidation toggles validation of requests against the OpenAPI document.
// It is on by default.
func WithRequestValidation(enabled bool) Option {
	return func(s *Server) {
		s.validate = enabled
	}
}

// NewHandler creates the HTTP handler. A nil store disables the /tables routes.
func NewHandler(rec ports.TableRecognizer, store ports.TableStore, opts ...Option) (http.Handler, error) {
	s := &Server{
		Recognizer:  rec,
		Store:       store,
		maxBodySize: DefaultMaxBodySize,
		validate:    true,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.limitBody)

	if s.validate {
		doc, err := LoadSpec(context.Background())
		if err != nil {
			return nil, err
		}
		mw, err := validateRequests(doc, s.logger)
		if err != nil {
			return nil, err
		}
		r.Use(mw)
	}

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/recognize", s.Recognize)
	if s.Store != nil {
		r.Route("/tables", func(r chi.Router) {
			r.Get("/", s.ListTables)
			r.Post("/", s.CreateTable)
			r.Get("/{id}", s.GetTable)
			r.Delete("/{id}", s.DeleteTable)
		})
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
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

func (s *Server) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>dectab API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// recognizeRequest is the JSON form of a recognition request.
type recognizeRequest struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Recognize handles the POST /recognize request.
func (s *Server) Recognize(w http.ResponseWriter, r *http.Request) {
	body, err := readRecognizeRequest(r)
	if err != nil {
		s.logger.Warn("Recognize: Invalid request body", "error", err)
		writeError(w, bodyStatus(err), "request", err)
		return
	}

	dt, err := s.Recognizer.Recognize(r.Context(), body.Text)
	if err != nil {
		s.writeRecognitionError(w, "Recognize", err)
		return
	}
	writeJSON(w, http.StatusOK, dt)
}

// CreateTable handles the POST /tables request.
func (s *Server) CreateTable(w http.ResponseWriter, r *http.Request) {
	body, err := readRecognizeRequest(r)
	if err != nil {
		s.logger.Warn("CreateTable: Invalid request body", "error", err)
		writeError(w, bodyStatus(err), "request", err)
		return
	}

	dt, err := s.Recognizer.Recognize(r.Context(), body.Text)
	if err != nil {
		s.writeRecognitionError(w, "CreateTable", err)
		return
	}

	st := &domain.StoredTable{
		ID:        body.ID,
		Source:    body.Text,
		Table:     dt,
		CreatedAt: s.now().UTC(),
	}
	if st.ID == "" {
		st.ID = s.newID()
	}
	if err := s.Store.Save(r.Context(), st); err != nil {
		s.logger.Error("CreateTable: Save failed", "error", err, "id", st.ID)
		writeError(w, http.StatusInternalServerError, "store", err)
		return
	}
	s.logger.Info("Table stored", "id", st.ID, "rules", len(dt.Rules))
	w.Header().Set("Location", "/tables/"+st.ID)
	writeJSON(w, http.StatusCreated, st)
}

// ListTables handles the GET /tables request.
func (s *Server) ListTables(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.logger.Error("ListTables failed", "error", err)
		writeError(w, http.StatusInternalServerError, "store", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, ids)
}

// GetTable handles the GET /tables/{id} request.
func (s *Server) GetTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, err := s.Store.Load(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, "GetTable", id, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// DeleteTable handles the DELETE /tables/{id} request.
func (s *Server) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeStoreError(w, "DeleteTable", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "dectab-http",
		"version": strings.TrimSpace(dectab.Version),
	})
}

func readRecognizeRequest(r *http.Request) (*recognizeRequest, error) {
	mediaType := "text/plain"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("content type: %w", err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		var body recognizeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &body, nil
	case "text/plain":
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		return &recognizeRequest{Text: string(data)}, nil
	default:
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}
}

func bodyStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func (s *Server) writeRecognitionError(w http.ResponseWriter, op string, err error) {
	status, kind := recognitionStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(op+" failed", "error", err)
	} else {
		s.logger.Warn(op+": Table rejected", "error", err, "kind", kind)
	}
	writeError(w, status, kind, err)
}

// recognitionStatus maps recognition failures onto HTTP statuses.
func recognitionStatus(err error) (int, string) {
	var (
		canvasErr *recognizer.CanvasError
		planeErr  *recognizer.PlaneError
		recErr    *recognizer.RecognizerError
	)
	switch {
	case errors.Is(err, dectab.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge, "input"
	case errors.Is(err, dectab.ErrEmptyInput), errors.Is(err, dectab.ErrInvalidUTF8):
		return http.StatusBadRequest, "input"
	case errors.As(err, &canvasErr):
		return http.StatusUnprocessableEntity, "canvas"
	case errors.As(err, &planeErr):
		return http.StatusUnprocessableEntity, "plane"
	case errors.As(err, &recErr):
		return http.StatusUnprocessableEntity, "recognizer"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "canceled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, domain.ErrTableNotFound) {
		writeError(w, http.StatusNotFound, "store", err)
		return
	}
	s.logger.Error(op+" failed", "error", err, "id", id)
	writeError(w, http.StatusInternalServerError, "store", err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}
