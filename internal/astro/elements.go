package astro

import "mapa-astral-api/internal/models"

// Sentinel classification for signs the table does not know.
const (
	ElementoDesconhecido  = "Desconhecido"
	QualidadeDesconhecida = "Desconhecida"
)

// elementos maps each zodiac sign (Portuguese) to its element and quality.
var elementos = map[string]models.Elementos{
	"Áries":       {Elemento: "Fogo", Qualidade: "Cardinal"},
	"Touro":       {Elemento: "Terra", Qualidade: "Fixo"},
	"Gêmeos":      {Elemento: "Ar", Qualidade: "Mutável"},
	"Câncer":      {Elemento: "Água", Qualidade: "Cardinal"},
	"Leão":        {Elemento: "Fogo", Qualidade: "Fixo"},
	"Virgem":      {Elemento: "Terra", Qualidade: "Mutável"},
	"Libra":       {Elemento: "Ar", Qualidade: "Cardinal"},
	"Escorpião":   {Elemento: "Água", Qualidade: "Fixo"},
	"Sagitário":   {Elemento: "Fogo", Qualidade: "Mutável"},
	"Capricórnio": {Elemento: "Terra", Qualidade: "Cardinal"},
	"Aquário":     {Elemento: "Ar", Qualidade: "Fixo"},
	"Peixes":      {Elemento: "Água", Qualidade: "Mutável"},
}

// CalcularElementos classifies a sun sign. Unknown signs map to the
// Desconhecido sentinel, never an error.
func CalcularElementos(signoSolar string) models.Elementos {
	if e, ok := elementos[signoSolar]; ok {
		return e
	}
	return models.Elementos{Elemento: ElementoDesconhecido, Qualidade: QualidadeDesconhecida}
}
