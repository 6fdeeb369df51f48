package chart

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mapa-astral-api/internal/astro"
)

// Renderer calls an external chart rendering service. Rendering is best
// effort: callers fall back to FallbackSVG when RenderSVG fails.
type Renderer struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewRenderer creates a renderer client for the given service URL.
func NewRenderer(baseURL string, timeout time.Duration, logger *zap.Logger) *Renderer {
	return &Renderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type renderRequest struct {
	ChartType string         `json:"chart_type"`
	Subject   *astro.Subject `json:"subject"`
}

type renderResponse struct {
	SVG string `json:"svg"`
}

// RenderSVG renders the natal chart for a subject.
func (r *Renderer) RenderSVG(ctx context.Context, subject *astro.Subject) (string, error) {
	body, err := json.Marshal(renderRequest{ChartType: "natal", Subject: subject})
	if err != nil {
		return "", fmt.Errorf("failed to marshal render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("render request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.logger.Warn("Chart renderer returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data))
		return "", fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	var rendered renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&rendered); err != nil {
		return "", fmt.Errorf("failed to decode render response: %w", err)
	}
	if rendered.SVG == "" {
		return "", fmt.Errorf("renderer returned empty SVG")
	}

	return rendered.SVG, nil
}

// FallbackSVG synthesizes a minimal chart when the renderer is unavailable:
// a circle with the subject's name, sun, moon and ascendant.
func FallbackSVG(subject *astro.Subject) string {
	return fmt.Sprintf(`<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">
  <circle cx="200" cy="200" r="150" fill="none" stroke="black" stroke-width="2"/>
  <text x="200" y="100" text-anchor="middle" font-family="Arial" font-size="16">Mapa Astral de %s</text>
  <text x="200" y="130" text-anchor="middle" font-family="Arial" font-size="12">Sol: %s %.1f°</text>
  <text x="200" y="150" text-anchor="middle" font-family="Arial" font-size="12">Lua: %s %.1f°</text>
  <text x="200" y="170" text-anchor="middle" font-family="Arial" font-size="12">Ascendente: %s</text>
</svg>`,
		subject.Name,
		subject.Sun.Sign, subject.Sun.Degree,
		subject.Moon.Sign, subject.Moon.Degree,
		subject.FirstHouse.Sign)
}

// SVGToPNGDataURI encodes the SVG as a base64 data URI. A real PNG pipeline
// lives in the rendering service; this mirrors its interim behavior.
func SVGToPNGDataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
