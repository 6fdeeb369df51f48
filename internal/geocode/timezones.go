package geocode

import "strings"

// DefaultTimezone covers every state without an explicit entry below.
const DefaultTimezone = "America/Sao_Paulo"

// stateTimezones lists the Brazilian states whose timezone differs from the
// São Paulo default, plus the northeastern states pinned to their IANA zones.
var stateTimezones = map[string]string{
	"AC": "America/Rio_Branco",
	"AM": "America/Manaus",
	"RR": "America/Boa_Vista",
	"RO": "America/Porto_Velho",
	"MT": "America/Cuiaba",
	"MS": "America/Campo_Grande",
	"AL": "America/Maceio",
	"BA": "America/Bahia",
	"CE": "America/Fortaleza",
	"MA": "America/Fortaleza",
	"PB": "America/Fortaleza",
	"PE": "America/Recife",
	"PI": "America/Fortaleza",
	"RN": "America/Fortaleza",
	"SE": "America/Maceio",
}

// TimezoneForState returns the IANA timezone for a state code. Unlisted or
// unknown states fall back to the default.
func TimezoneForState(estado string) string {
	if tz, ok := stateTimezones[strings.ToUpper(estado)]; ok {
		return tz
	}
	return DefaultTimezone
}
