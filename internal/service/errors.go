package service

import "errors"

// Sentinel errors for the four user-visible failure classes. Renderer and
// cache-persistence failures are absorbed internally and never reach here.
var (
	// ErrRateLimited: sliding window exhausted, client must back off
	ErrRateLimited = errors.New("muitas requisições, aguarde antes de tentar novamente")

	// ErrLocationNotFound: geocoding found nothing or the lookup failed
	ErrLocationNotFound = errors.New("cidade não encontrada")

	// ErrInvalidInput: birth date/time does not match DD/MM/YYYY HH:MM
	ErrInvalidInput = errors.New("formato de data/hora inválido")

	// ErrComputation: the astrology engine failed
	ErrComputation = errors.New("erro ao calcular mapa astral")
)
