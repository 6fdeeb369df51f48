package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/service"
)

// Version reported by the health endpoint.
const Version = "2.0.0"

// Limits describes the rate-limit and TTL settings surfaced by the
// performance endpoint.
type Limits struct {
	ResultTTL   time.Duration
	MaxRequests int
	Window      time.Duration
}

// Server is the public HTTP surface of the API.
type Server struct {
	service      *service.MapaAstral
	resultCache  interfaces.Cache
	geocodeCache interfaces.Cache
	limiter      interfaces.RateLimiter
	limits       Limits
	logger       *zap.Logger
	validate     *validator.Validate
	server       *http.Server
}

// NewServer creates the HTTP server. The caches and limiter are the same
// instances the service uses; the server only reads their sizes and resets
// them on the administrative endpoints.
func NewServer(
	svc *service.MapaAstral,
	resultCache, geocodeCache interfaces.Cache,
	limiter interfaces.RateLimiter,
	limits Limits,
	logger *zap.Logger,
) *Server {
	return &Server{
		service:      svc,
		resultCache:  resultCache,
		geocodeCache: geocodeCache,
		limiter:      limiter,
		limits:       limits,
		logger:       logger,
		validate:     validator.New(),
	}
}

// Start starts the HTTP server on the given address
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.createRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// createRouter creates and configures the HTTP router
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/mapa-astral", s.handleMapaAstral).Methods("POST")

	router.HandleFunc("/", s.handleRoot).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/performance", s.handlePerformance).Methods("GET")
	router.HandleFunc("/cache/clear", s.handleCacheClear).Methods("POST")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// parseRequest parses JSON request body
func (s *Server) parseRequest(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	defer func() { _ = r.Body.Close() }()

	return json.Unmarshal(body, v)
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Success: false, Error: message}); err != nil {
		s.logger.Error("Failed to write error response", zap.Error(err))
	}
}
