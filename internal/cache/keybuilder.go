package cache

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/models"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// KeyBuilderImpl derives md5 cache keys from canonical string
// concatenations of the semantically relevant request fields. Keys are
// opaque and never parsed back.
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// ResultKey builds the key for a computed natal chart. The chart flag is
// part of the key, so entries computed with and without charts never shadow
// each other.
func (kb *KeyBuilderImpl) ResultKey(req *models.MapaAstralRequest, incluirGrafico bool) (string, error) {
	if req == nil {
		return "", errors.New("request cannot be nil")
	}
	if req.Nome == "" || req.DataNascimento == "" || req.HoraNascimento == "" || req.Cidade == "" || req.Estado == "" {
		return "", errors.New("request fields cannot be empty")
	}

	canonical := fmt.Sprintf("%s_%s_%s_%s_%s_%t",
		req.Nome,
		req.DataNascimento,
		req.HoraNascimento,
		req.Cidade,
		req.Estado,
		incluirGrafico,
	)

	return fmt.Sprintf("%x", md5.Sum([]byte(canonical))), nil
}

// GeocodeKey builds the key for a city/state lookup. City is lowercased and
// state uppercased so logically identical lookups share one key.
func (kb *KeyBuilderImpl) GeocodeKey(cidade, estado string) string {
	canonical := fmt.Sprintf("%s_%s", strings.ToLower(cidade), strings.ToUpper(estado))
	return fmt.Sprintf("%x", md5.Sum([]byte(canonical)))
}
