package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrMissingUsername is returned when the GeoNames account identifier was
// not configured. Reported at the first lookup, never a startup crash, so
// health checks stay answerable.
var ErrMissingUsername = errors.New("GEONAMES_USERNAME não configurado")

// Location is a raw GeoNames search hit.
type Location struct {
	Name string
	Lat  float64
	Lng  float64
}

// searchResponse mirrors the GeoNames searchJSON payload. Coordinates
// arrive as strings.
type searchResponse struct {
	Geonames []struct {
		Name string `json:"name"`
		Lat  string `json:"lat"`
		Lng  string `json:"lng"`
	} `json:"geonames"`
}

// Client queries the GeoNames searchJSON endpoint for Brazilian cities.
type Client struct {
	baseURL  string
	username string
	timeout  time.Duration
	client   *http.Client
	logger   *zap.Logger
}

// NewClient creates a GeoNames client. An empty username is tolerated here
// and rejected on the first Search call.
func NewClient(baseURL, username string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Search looks up a city within a state, returning the first match or nil
// when GeoNames knows no such place. The call is bounded by the configured
// timeout.
func (c *Client) Search(ctx context.Context, cidade, estado string) (*Location, error) {
	if c.username == "" {
		return nil, ErrMissingUsername
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", cidade)
	params.Set("adminCode1", estado)
	params.Set("country", "BR")
	params.Set("maxRows", "1")
	params.Set("lang", "pt")
	params.Set("username", c.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geonames request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geonames request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geonames returned status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geonames response: %w", err)
	}

	if len(decoded.Geonames) == 0 {
		return nil, nil
	}

	hit := decoded.Geonames[0]
	lat, err := strconv.ParseFloat(hit.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", hit.Lat, err)
	}
	lng, err := strconv.ParseFloat(hit.Lng, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", hit.Lng, err)
	}

	return &Location{Name: hit.Name, Lat: lat, Lng: lng}, nil
}
