package httpserver

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"mapa-astral-api/internal/models"
	"mapa-astral-api/internal/service"
)

// handleMapaAstral handles natal chart requests
func (s *Server) handleMapaAstral(w http.ResponseWriter, r *http.Request) {
	var req models.MapaAstralRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Requisição inválida", http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.writeErrorResponse(w,
			"Campos obrigatórios: nome, data_nascimento, hora_nascimento, cidade, estado (2 letras)",
			http.StatusBadRequest)
		return
	}

	incluirGrafico := true
	if raw := r.URL.Query().Get("incluir_grafico"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeErrorResponse(w, "Parâmetro incluir_grafico inválido", http.StatusBadRequest)
			return
		}
		incluirGrafico = parsed
	}

	response, err := s.service.Gerar(r.Context(), &req, incluirGrafico, clientID(r))
	if err != nil {
		s.writeErrorResponse(w, err.Error(), statusForError(err))
		return
	}

	s.writeResponse(w, response)
}

// statusForError maps the service error taxonomy onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, service.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientID derives the rate-limit identity from the network peer. Missing
// or unparseable addresses share the "unknown" bucket.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}
	return host
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, healthResponse{
		Status:      "online",
		Versao:      Version,
		Pais:        "Brasil",
		FormatoData: "DD/MM/YYYY",
	})
}

// handlePerformance reports cache and rate-limit statistics
func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, performanceResponse{
		CacheStats: cacheStats{
			AstrologicalCacheEntries: s.resultCache.Len(),
			GeonamesCacheEntries:     s.geocodeCache.Len(),
			CacheTTLSeconds:          int64(s.limits.ResultTTL.Seconds()),
		},
		RateLimiting: rateLimitStats{
			ActiveClients:     s.limiter.ActiveClients(),
			RequestsPerWindow: s.limits.MaxRequests,
			WindowSeconds:     int64(s.limits.Window.Seconds()),
		},
		PerformanceFeatures: performanceFeatures{
			CachingEnabled:      true,
			RateLimitingEnabled: true,
			GeocodePersistence:  true,
		},
		Timestamp: time.Now().Unix(),
	})
}

// handleCacheClear resets both caches (admin endpoint)
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.resultCache.Clear()
	s.geocodeCache.Clear()

	s.logger.Info("Caches cleared")

	s.writeResponse(w, clearCacheResponse{
		Message:   "Caches limpos com sucesso",
		Timestamp: time.Now().Unix(),
	})
}

// handleRoot serves the Portuguese usage page
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(rootPage)); err != nil {
		s.logger.Error("Failed to write root page", zap.Error(err))
	}
}

const rootPage = `<html>
    <head>
        <title>API Mapa Astral Brasileiro</title>
    </head>
    <body>
        <h1>🌙 API Mapa Astral Brasileiro</h1>
        <p>Bem-vindo à API de mapa astral para o público brasileiro!</p>
        <h2>📝 Como usar:</h2>
        <p><strong>Endpoint:</strong> POST /mapa-astral</p>
        <p><strong>Formato de data:</strong> DD/MM/YYYY</p>
        <h3>Exemplo de requisição:</h3>
        <pre>
{
    "nome": "João Silva",
    "data_nascimento": "15/05/1990",
    "hora_nascimento": "18:30",
    "cidade": "São Paulo",
    "estado": "SP"
}
        </pre>
    </body>
</html>
`
