package interfaces

import (
	"context"

	"mapa-astral-api/internal/models"
)

//go:generate mockgen -package=mock -source=geocoder.go -destination=mock/geocoder.go

// Geocoder resolves a Brazilian city/state pair into coordinates and a
// timezone. A nil result with a nil error means the location was not found
// or the external lookup failed; lookup failures are never cached.
type Geocoder interface {
	Resolve(ctx context.Context, cidade, estado string) (*models.GeocodeResult, error)
}
