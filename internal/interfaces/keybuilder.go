package interfaces

import "mapa-astral-api/internal/models"

//go:generate mockgen -package=mock -source=keybuilder.go -destination=mock/keybuilder.go

// KeyBuilder derives deterministic, opaque cache keys from request fields.
type KeyBuilder interface {
	ResultKey(req *models.MapaAstralRequest, incluirGrafico bool) (string, error)
	GeocodeKey(cidade, estado string) string
}
