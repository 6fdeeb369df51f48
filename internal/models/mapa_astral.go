package models

// MapaAstralRequest is the birth-data payload accepted by POST /mapa-astral.
// Dates use the Brazilian DD/MM/YYYY format, times use HH:MM.
type MapaAstralRequest struct {
	Nome           string `json:"nome" validate:"required"`
	DataNascimento string `json:"data_nascimento" validate:"required"` // DD/MM/YYYY
	HoraNascimento string `json:"hora_nascimento" validate:"required"` // HH:MM
	Cidade         string `json:"cidade" validate:"required"`
	Estado         string `json:"estado" validate:"required,len=2"`
}

// PlanetPosition holds the placement of a single planet.
type PlanetPosition struct {
	Signo string  `json:"signo"`
	Casa  string  `json:"casa"`
	Grau  float64 `json:"grau"`
}

// PlanetaPosicoes enumerates every planet the API reports. The set is fixed;
// positions are filled from the engine result in an explicit mapping step.
type PlanetaPosicoes struct {
	Sol      PlanetPosition `json:"sol"`
	Lua      PlanetPosition `json:"lua"`
	Mercurio PlanetPosition `json:"mercurio"`
	Venus    PlanetPosition `json:"venus"`
	Marte    PlanetPosition `json:"marte"`
	Jupiter  PlanetPosition `json:"jupiter"`
	Saturno  PlanetPosition `json:"saturno"`
}

// CasasAstrologicas holds the sign on each of the twelve house cusps.
type CasasAstrologicas struct {
	Casa1  string `json:"casa1"`
	Casa2  string `json:"casa2"`
	Casa3  string `json:"casa3"`
	Casa4  string `json:"casa4"`
	Casa5  string `json:"casa5"`
	Casa6  string `json:"casa6"`
	Casa7  string `json:"casa7"`
	Casa8  string `json:"casa8"`
	Casa9  string `json:"casa9"`
	Casa10 string `json:"casa10"`
	Casa11 string `json:"casa11"`
	Casa12 string `json:"casa12"`
}

// Elementos classifies the sun sign into element and quality.
type Elementos struct {
	Elemento  string `json:"elemento"`
	Qualidade string `json:"qualidade"`
}

// MapaAstralResponse is the full natal chart payload returned to the client.
type MapaAstralResponse struct {
	Nome              string            `json:"nome"`
	SignoSolar        string            `json:"signo_solar"`
	SignoLunar        string            `json:"signo_lunar"`
	Ascendente        string            `json:"ascendente"`
	PlanetaPosicoes   PlanetaPosicoes   `json:"planeta_posicoes"`
	CasasAstrologicas CasasAstrologicas `json:"casas_astrologicas"`
	Elementos         Elementos         `json:"elementos"`
	CidadeCalculada   string            `json:"cidade_calculada"`
	GraficoSVG        *string           `json:"grafico_svg"`
	GraficoPNG        *string           `json:"grafico_png"`
}

// GeocodeResult is the resolved location for a city/state pair. Immutable
// once produced; cached by key in the geocode cache.
type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	TimezoneID       string  `json:"timezone_id"`
	CidadeEncontrada string  `json:"cidade_encontrada"`
}
