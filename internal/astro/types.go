package astro

// Planet is a single planet placement as reported by the astrology engine.
type Planet struct {
	Sign   string  `json:"sign"`
	House  string  `json:"house"`
	Degree float64 `json:"degree"`
}

// House is a single house cusp.
type House struct {
	Sign string `json:"sign"`
}

// Subject is the computed natal chart for one person. The planet and house
// sets are fixed; every field is populated by the engine response.
type Subject struct {
	Name string `json:"name"`

	Sun     Planet `json:"sun"`
	Moon    Planet `json:"moon"`
	Mercury Planet `json:"mercury"`
	Venus   Planet `json:"venus"`
	Mars    Planet `json:"mars"`
	Jupiter Planet `json:"jupiter"`
	Saturn  Planet `json:"saturn"`

	FirstHouse    House `json:"first_house"`
	SecondHouse   House `json:"second_house"`
	ThirdHouse    House `json:"third_house"`
	FourthHouse   House `json:"fourth_house"`
	FifthHouse    House `json:"fifth_house"`
	SixthHouse    House `json:"sixth_house"`
	SeventhHouse  House `json:"seventh_house"`
	EighthHouse   House `json:"eighth_house"`
	NinthHouse    House `json:"ninth_house"`
	TenthHouse    House `json:"tenth_house"`
	EleventhHouse House `json:"eleventh_house"`
	TwelfthHouse  House `json:"twelfth_house"`
}
