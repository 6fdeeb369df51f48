package interfaces

import (
	"context"
	"time"

	"mapa-astral-api/internal/astro"
)

//go:generate mockgen -package=mock -source=astro.go -destination=mock/astro.go

// AstrologyEngine computes a natal chart subject from birth data and
// resolved coordinates. The ephemeris itself is an external collaborator.
type AstrologyEngine interface {
	Calculate(ctx context.Context, nome string, nascimento time.Time, lat, lng float64, timezoneID string) (*astro.Subject, error)
}

// ChartRenderer renders a natal chart SVG for a computed subject.
// Callers must tolerate failure and fall back to a minimal chart.
type ChartRenderer interface {
	RenderSVG(ctx context.Context, subject *astro.Subject) (string, error)
}
