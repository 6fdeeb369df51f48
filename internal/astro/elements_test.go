package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mapa-astral-api/internal/models"
)

func TestCalcularElementos(t *testing.T) {
	tests := []struct {
		signo    string
		expected models.Elementos
	}{
		{"Áries", models.Elementos{Elemento: "Fogo", Qualidade: "Cardinal"}},
		{"Touro", models.Elementos{Elemento: "Terra", Qualidade: "Fixo"}},
		{"Gêmeos", models.Elementos{Elemento: "Ar", Qualidade: "Mutável"}},
		{"Câncer", models.Elementos{Elemento: "Água", Qualidade: "Cardinal"}},
		{"Leão", models.Elementos{Elemento: "Fogo", Qualidade: "Fixo"}},
		{"Virgem", models.Elementos{Elemento: "Terra", Qualidade: "Mutável"}},
		{"Libra", models.Elementos{Elemento: "Ar", Qualidade: "Cardinal"}},
		{"Escorpião", models.Elementos{Elemento: "Água", Qualidade: "Fixo"}},
		{"Sagitário", models.Elementos{Elemento: "Fogo", Qualidade: "Mutável"}},
		{"Capricórnio", models.Elementos{Elemento: "Terra", Qualidade: "Cardinal"}},
		{"Aquário", models.Elementos{Elemento: "Ar", Qualidade: "Fixo"}},
		{"Peixes", models.Elementos{Elemento: "Água", Qualidade: "Mutável"}},
	}

	for _, tc := range tests {
		t.Run(tc.signo, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalcularElementos(tc.signo))
		})
	}
}

func TestCalcularElementos_UnknownSign(t *testing.T) {
	expected := models.Elementos{Elemento: ElementoDesconhecido, Qualidade: QualidadeDesconhecida}

	assert.Equal(t, expected, CalcularElementos("Ophiuchus"))
	assert.Equal(t, expected, CalcularElementos(""))
	// Lookup is exact: a sign missing its accent is unknown
	assert.Equal(t, expected, CalcularElementos("Aries"))
}
