package astro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// calculateRequest is the payload sent to the astrology engine service.
type calculateRequest struct {
	Name       string  `json:"name"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Day        int     `json:"day"`
	Hour       int     `json:"hour"`
	Minute     int     `json:"minute"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	TzStr      string  `json:"tz_str"`
	Nation     string  `json:"nation"`
	HouseStyle string  `json:"house_style,omitempty"`
}

// Engine calls an external astrology engine service over HTTP. The ephemeris
// computation is not performed in this repository.
type Engine struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewEngine creates an engine client for the given service URL.
func NewEngine(baseURL string, timeout time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Calculate posts the birth data to the engine and decodes the resulting
// subject. Any transport or decode failure surfaces as an error; the caller
// maps it to an internal computation error.
func (e *Engine) Calculate(ctx context.Context, nome string, nascimento time.Time, lat, lng float64, timezoneID string) (*Subject, error) {
	payload := calculateRequest{
		Name:   nome,
		Year:   nascimento.Year(),
		Month:  int(nascimento.Month()),
		Day:    nascimento.Day(),
		Hour:   nascimento.Hour(),
		Minute: nascimento.Minute(),
		Lat:    lat,
		Lng:    lng,
		TzStr:  timezoneID,
		Nation: "BR",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/subject", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		e.logger.Error("Astrology engine returned error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data))
		return nil, fmt.Errorf("engine returned status %d", resp.StatusCode)
	}

	var subject Subject
	if err := json.NewDecoder(resp.Body).Decode(&subject); err != nil {
		return nil, fmt.Errorf("failed to decode engine response: %w", err)
	}

	return &subject, nil
}
