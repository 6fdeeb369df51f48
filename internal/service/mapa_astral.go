package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mapa-astral-api/internal/astro"
	"mapa-astral-api/internal/chart"
	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/metrics"
	"mapa-astral-api/internal/models"
)

// birthLayout is the only accepted input format: DD/MM/YYYY HH:MM.
const birthLayout = "02/01/2006 15:04"

// MapaAstral orchestrates a natal chart request: rate limit, result cache,
// geocoding, engine invocation, optional chart rendering, response
// assembly and cache population.
type MapaAstral struct {
	limiter     interfaces.RateLimiter
	resultCache interfaces.Cache
	keyBuilder  interfaces.KeyBuilder
	geocoder    interfaces.Geocoder
	engine      interfaces.AstrologyEngine
	renderer    interfaces.ChartRenderer
	resultTTL   time.Duration
	logger      *zap.Logger
}

// NewMapaAstral wires the orchestrator with explicitly owned collaborators.
func NewMapaAstral(
	limiter interfaces.RateLimiter,
	resultCache interfaces.Cache,
	keyBuilder interfaces.KeyBuilder,
	geocoder interfaces.Geocoder,
	engine interfaces.AstrologyEngine,
	renderer interfaces.ChartRenderer,
	resultTTL time.Duration,
	logger *zap.Logger,
) *MapaAstral {
	return &MapaAstral{
		limiter:     limiter,
		resultCache: resultCache,
		keyBuilder:  keyBuilder,
		geocoder:    geocoder,
		engine:      engine,
		renderer:    renderer,
		resultTTL:   resultTTL,
		logger:      logger,
	}
}

// ParseBirthDateTime parses the Brazilian birth date and time strings.
func ParseBirthDateTime(dataNascimento, horaNascimento string) (time.Time, error) {
	return time.Parse(birthLayout, dataNascimento+" "+horaNascimento)
}

// Gerar runs the full request sequence. clientID is an opaque client
// identity used only for rate limiting.
func (s *MapaAstral) Gerar(ctx context.Context, req *models.MapaAstralRequest, incluirGrafico bool, clientID string) (*models.MapaAstralResponse, error) {
	start := time.Now()

	// Fail fast before any work; denials cache nothing.
	if !s.limiter.Allow(clientID) {
		metrics.RecordRequest("throttled")
		return nil, ErrRateLimited
	}

	key, err := s.keyBuilder.ResultKey(req, incluirGrafico)
	if err != nil {
		metrics.RecordRequest("invalid_input")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if response, ok := s.cachedResponse(key); ok {
		metrics.RecordCacheHit("result")
		metrics.RecordRequest("ok")
		metrics.RequestDuration.WithLabelValues("hit").Observe(time.Since(start).Seconds())
		return response, nil
	}
	metrics.RecordCacheMiss("result")

	coordenadas, err := s.geocoder.Resolve(ctx, req.Cidade, req.Estado)
	if err != nil || coordenadas == nil {
		if err != nil {
			s.logger.Warn("Geocode resolution failed", zap.Error(err))
		}
		metrics.RecordRequest("not_found")
		return nil, fmt.Errorf("%w: %s, %s. Verifique a grafia",
			ErrLocationNotFound, req.Cidade, req.Estado)
	}

	nascimento, err := ParseBirthDateTime(req.DataNascimento, req.HoraNascimento)
	if err != nil {
		metrics.RecordRequest("invalid_input")
		return nil, fmt.Errorf("%w: use DD/MM/YYYY para data e HH:MM para hora (%v)",
			ErrInvalidInput, err)
	}

	subject, err := s.engine.Calculate(ctx, req.Nome, nascimento, coordenadas.Lat, coordenadas.Lng, coordenadas.TimezoneID)
	if err != nil {
		metrics.RecordRequest("computation_error")
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	response := s.assemble(req, subject, coordenadas)

	if incluirGrafico {
		svg := s.renderChart(ctx, subject)
		png := chart.SVGToPNGDataURI(svg)
		response.GraficoSVG = &svg
		response.GraficoPNG = &png
	}

	s.storeResponse(key, response)

	metrics.RecordRequest("ok")
	metrics.RequestDuration.WithLabelValues("miss").Observe(time.Since(start).Seconds())
	return response, nil
}

// cachedResponse returns a previously assembled payload for the key. A
// corrupt entry is evicted and treated as a miss.
func (s *MapaAstral) cachedResponse(key string) (*models.MapaAstralResponse, bool) {
	entry, found := s.resultCache.Get(key)
	if !found {
		return nil, false
	}

	var response models.MapaAstralResponse
	if err := json.Unmarshal(entry.Data, &response); err != nil {
		s.logger.Warn("Failed to unmarshal cached response", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError("result", "decode")
		s.resultCache.Delete(key)
		return nil, false
	}

	return &response, true
}

// storeResponse caches the assembled payload; marshal failures only cost
// the cache entry, never the request.
func (s *MapaAstral) storeResponse(key string, response *models.MapaAstralResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal response for caching", zap.Error(err))
		metrics.RecordCacheError("result", "encode")
		return
	}
	s.resultCache.Set(key, data, s.resultTTL)
}

// renderChart asks the external renderer for the natal SVG, falling back to
// a minimal synthesized chart so rendering never fails the request.
func (s *MapaAstral) renderChart(ctx context.Context, subject *astro.Subject) string {
	svg, err := s.renderer.RenderSVG(ctx, subject)
	if err != nil {
		s.logger.Warn("Chart rendering failed, using fallback", zap.Error(err))
		return chart.FallbackSVG(subject)
	}
	return svg
}

// assemble maps the engine subject onto the response payload. Planets and
// houses are fixed fields filled explicitly.
func (s *MapaAstral) assemble(req *models.MapaAstralRequest, subject *astro.Subject, coordenadas *models.GeocodeResult) *models.MapaAstralResponse {
	// cases.Caser carries transformer state, so one per call, never shared
	titler := cases.Title(language.BrazilianPortuguese)
	return &models.MapaAstralResponse{
		Nome:       titler.String(req.Nome),
		SignoSolar: subject.Sun.Sign,
		SignoLunar: subject.Moon.Sign,
		Ascendente: subject.FirstHouse.Sign,
		PlanetaPosicoes: models.PlanetaPosicoes{
			Sol:      planetPosition(subject.Sun),
			Lua:      planetPosition(subject.Moon),
			Mercurio: planetPosition(subject.Mercury),
			Venus:    planetPosition(subject.Venus),
			Marte:    planetPosition(subject.Mars),
			Jupiter:  planetPosition(subject.Jupiter),
			Saturno:  planetPosition(subject.Saturn),
		},
		CasasAstrologicas: models.CasasAstrologicas{
			Casa1:  subject.FirstHouse.Sign,
			Casa2:  subject.SecondHouse.Sign,
			Casa3:  subject.ThirdHouse.Sign,
			Casa4:  subject.FourthHouse.Sign,
			Casa5:  subject.FifthHouse.Sign,
			Casa6:  subject.SixthHouse.Sign,
			Casa7:  subject.SeventhHouse.Sign,
			Casa8:  subject.EighthHouse.Sign,
			Casa9:  subject.NinthHouse.Sign,
			Casa10: subject.TenthHouse.Sign,
			Casa11: subject.EleventhHouse.Sign,
			Casa12: subject.TwelfthHouse.Sign,
		},
		Elementos:       astro.CalcularElementos(subject.Sun.Sign),
		CidadeCalculada: coordenadas.CidadeEncontrada,
	}
}

func planetPosition(p astro.Planet) models.PlanetPosition {
	return models.PlanetPosition{Signo: p.Sign, Casa: p.House, Grau: p.Degree}
}
