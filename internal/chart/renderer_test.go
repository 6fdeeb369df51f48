package chart

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"mapa-astral-api/internal/astro"
)

func testSubject() *astro.Subject {
	return &astro.Subject{
		Name:       "Maria Santos",
		Sun:        astro.Planet{Sign: "Peixes", House: "Quarta Casa", Degree: 12.3},
		Moon:       astro.Planet{Sign: "Virgem", House: "Décima Casa", Degree: 28.9},
		FirstHouse: astro.House{Sign: "Sagitário"},
	}
}

func TestRenderSVG(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/render", r.URL.Path)

		var payload renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "natal", payload.ChartType)
		assert.Equal(t, "Maria Santos", payload.Subject.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(renderResponse{SVG: "<svg>chart</svg>"})
	}))
	defer ts.Close()

	renderer := NewRenderer(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	svg, err := renderer.RenderSVG(context.Background(), testSubject())
	require.NoError(t, err)
	assert.Equal(t, "<svg>chart</svg>", svg)
}

func TestRenderSVG_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}))
	defer ts.Close()

	renderer := NewRenderer(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := renderer.RenderSVG(context.Background(), testSubject())
	assert.Error(t, err)
}

func TestRenderSVG_EmptySVG(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(renderResponse{})
	}))
	defer ts.Close()

	renderer := NewRenderer(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := renderer.RenderSVG(context.Background(), testSubject())
	assert.Error(t, err)
}

func TestFallbackSVG(t *testing.T) {
	svg := FallbackSVG(testSubject())

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Mapa Astral de Maria Santos")
	assert.Contains(t, svg, "Sol: Peixes 12.3°")
	assert.Contains(t, svg, "Lua: Virgem 28.9°")
	assert.Contains(t, svg, "Ascendente: Sagitário")
}

func TestSVGToPNGDataURI(t *testing.T) {
	uri := SVGToPNGDataURI("<svg/>")

	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(decoded))
}
