package astro

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEngineCalculate(t *testing.T) {
	birth := time.Date(1990, 5, 15, 18, 30, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/subject", r.URL.Path)

		var payload calculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "João Silva", payload.Name)
		assert.Equal(t, 1990, payload.Year)
		assert.Equal(t, 5, payload.Month)
		assert.Equal(t, 15, payload.Day)
		assert.Equal(t, 18, payload.Hour)
		assert.Equal(t, 30, payload.Minute)
		assert.Equal(t, "America/Sao_Paulo", payload.TzStr)
		assert.Equal(t, "BR", payload.Nation)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Subject{
			Name: payload.Name,
			Sun:  Planet{Sign: "Touro", House: "Sétima Casa", Degree: 24.6},
			Moon: Planet{Sign: "Leão", House: "Décima Casa", Degree: 3.2},
		})
	}))
	defer ts.Close()

	engine := NewEngine(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	subject, err := engine.Calculate(context.Background(), "João Silva", birth, -23.5475, -46.63611, "America/Sao_Paulo")
	require.NoError(t, err)

	assert.Equal(t, "Touro", subject.Sun.Sign)
	assert.Equal(t, "Leão", subject.Moon.Sign)
	assert.InDelta(t, 24.6, subject.Sun.Degree, 0.001)
}

func TestEngineCalculate_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ephemeris unavailable", http.StatusInternalServerError)
	}))
	defer ts.Close()

	engine := NewEngine(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := engine.Calculate(context.Background(), "João", time.Now(), 0, 0, "America/Sao_Paulo")
	assert.Error(t, err)
}

func TestEngineCalculate_Unreachable(t *testing.T) {
	engine := NewEngine("http://127.0.0.1:1", time.Second, zaptest.NewLogger(t))
	_, err := engine.Calculate(context.Background(), "João", time.Now(), 0, 0, "America/Sao_Paulo")
	assert.Error(t, err)
}

func TestEngineCalculate_InvalidResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	engine := NewEngine(ts.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := engine.Calculate(context.Background(), "João", time.Now(), 0, 0, "America/Sao_Paulo")
	assert.Error(t, err)
}
