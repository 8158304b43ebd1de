package model

// ContinentOther is returned for teams absent from the mapping.
const ContinentOther = "Other"

// continentByTeam maps national teams to their confederation's
// continent, including superseded entities that appear in the
// historical dataset. Read-only; never mutated at runtime.
var continentByTeam = map[string]string{
	// South America
	"Brazil":    "South America",
	"Argentina": "South America",
	"Uruguay":   "South America",
	"Colombia":  "South America",
	"Chile":     "South America",
	"Paraguay":  "South America",
	"Peru":      "South America",
	"Ecuador":   "South America",
	"Bolivia":   "South America",
	"Venezuela": "South America",

	// Europe
	"Germany":          "Europe",
	"West Germany":     "Europe",
	"East Germany":     "Europe",
	"France":           "Europe",
	"Italy":            "Europe",
	"Spain":            "Europe",
	"England":          "Europe",
	"Netherlands":      "Europe",
	"Portugal":         "Europe",
	"Belgium":          "Europe",
	"Croatia":          "Europe",
	"Poland":           "Europe",
	"Sweden":           "Europe",
	"Switzerland":      "Europe",
	"Austria":          "Europe",
	"Hungary":          "Europe",
	"Czechoslovakia":   "Europe",
	"Yugoslavia":       "Europe",
	"Soviet Union":     "Europe",
	"Russia":           "Europe",
	"Ukraine":          "Europe",
	"Romania":          "Europe",
	"Bulgaria":         "Europe",
	"Greece":           "Europe",
	"Denmark":          "Europe",
	"Norway":           "Europe",
	"Ireland":          "Europe",
	"Northern Ireland": "Europe",
	"Scotland":         "Europe",
	"Wales":            "Europe",
	"Turkey":           "Europe",
	"Serbia":           "Europe",

	// Africa
	"Cameroon":     "Africa",
	"Nigeria":      "Africa",
	"Senegal":      "Africa",
	"Ghana":        "Africa",
	"Morocco":      "Africa",
	"Algeria":      "Africa",
	"Egypt":        "Africa",
	"South Africa": "Africa",
	"Tunisia":      "Africa",
	"Ivory Coast":  "Africa",
	"Zaire":        "Africa",

	// Asia (AFC, so Australia lands here)
	"South Korea":          "Asia",
	"Japan":                "Asia",
	"Saudi Arabia":         "Asia",
	"Iran":                 "Asia",
	"China":                "Asia",
	"North Korea":          "Asia",
	"Australia":            "Asia",
	"Qatar":                "Asia",
	"Iraq":                 "Asia",
	"Kuwait":               "Asia",
	"United Arab Emirates": "Asia",
	"Indonesia":            "Asia",
	"Dutch East Indies":    "Asia",

	// North/Central America & Caribbean
	"Mexico":              "North America",
	"USA":                 "North America",
	"Costa Rica":          "North America",
	"Honduras":            "North America",
	"Jamaica":             "North America",
	"Canada":              "North America",
	"Cuba":                "North America",
	"El Salvador":         "North America",
	"Haiti":               "North America",
	"Trinidad and Tobago": "North America",
	"Panama":              "North America",

	// Oceania
	"New Zealand": "Oceania",
}

// ContinentOf returns the continent a team belongs to, or
// ContinentOther for teams outside the mapping.
func ContinentOf(team string) string {
	if c, ok := continentByTeam[team]; ok {
		return c
	}
	return ContinentOther
}
