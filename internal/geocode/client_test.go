package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "São Paulo", query.Get("q"))
		assert.Equal(t, "SP", query.Get("adminCode1"))
		assert.Equal(t, "BR", query.Get("country"))
		assert.Equal(t, "1", query.Get("maxRows"))
		assert.Equal(t, "pt", query.Get("lang"))
		assert.Equal(t, "demo", query.Get("username"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"geonames":[{"name":"São Paulo","lat":"-23.5475","lng":"-46.63611"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo", 5*time.Second, zap.NewNop())

	location, err := client.Search(context.Background(), "São Paulo", "SP")

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "São Paulo", location.Name)
	assert.InDelta(t, -23.5475, location.Lat, 0.0001)
	assert.InDelta(t, -46.63611, location.Lng, 0.0001)
}

func TestClient_Search_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"geonames":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo", 5*time.Second, zap.NewNop())

	location, err := client.Search(context.Background(), "Cidade Inexistente", "SP")

	assert.NoError(t, err)
	assert.Nil(t, location)
}

func TestClient_Search_MissingUsername(t *testing.T) {
	client := NewClient("http://api.geonames.org/searchJSON", "", 5*time.Second, zap.NewNop())

	location, err := client.Search(context.Background(), "São Paulo", "SP")

	assert.ErrorIs(t, err, ErrMissingUsername)
	assert.Nil(t, location)
}

func TestClient_Search_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"geonames":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo", 20*time.Millisecond, zap.NewNop())

	location, err := client.Search(context.Background(), "São Paulo", "SP")

	assert.Error(t, err)
	assert.Nil(t, location)
}

func TestClient_Search_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo", 5*time.Second, zap.NewNop())

	location, err := client.Search(context.Background(), "São Paulo", "SP")

	assert.Error(t, err)
	assert.Nil(t, location)
}
