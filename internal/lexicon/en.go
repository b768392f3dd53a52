package lexicon

import (
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

// English is the default lexicon. Italian port spellings that commonly
// appear in English-language ferry queries ("genova", "roma") are aliased
// here as well.
var English = &Lexicon{
	Tag: "en",

	PortAliases: map[string]domain.PortCode{
		"tunis":         domain.PortTunis,
		"la goulette":   domain.PortTunis,
		"goulette":      domain.PortTunis,
		"marseille":     domain.PortMarseille,
		"marseilles":    domain.PortMarseille,
		"genoa":         domain.PortGenoa,
		"genova":        domain.PortGenoa,
		"civitavecchia": domain.PortCivitavecchia,
		"rome":          domain.PortCivitavecchia,
		"roma":          domain.PortCivitavecchia,
		"palermo":       domain.PortPalermo,
		"trapani":       domain.PortTrapani,
		"salerno":       domain.PortSalerno,
		"zarzis":        domain.PortZarzis,
		"sfax":          domain.PortSfax,
	},

	FromMarkers: []string{
		"from",
		"departing from",
		"departing",
		"leaving from",
		"leaving",
	},
	ToMarkers: []string{
		"to",
		"towards",
		"toward",
		"arriving in",
		"arriving at",
	},
	ReturnMarkers: []string{
		"returning on",
		"returning",
		"return on",
		"return",
		"coming back on",
		"coming back",
		"back on",
	},

	RelativeDays: map[string]int{
		"today":                  0,
		"tonight":                0,
		"tomorrow":               1,
		"day after tomorrow":     2,
		"the day after tomorrow": 2,
		"next week":              7,
	},
	Weekdays: map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	},
	Months: map[string]time.Month{
		"january": time.January, "jan": time.January,
		"february": time.February, "feb": time.February,
		"march": time.March, "mar": time.March,
		"april": time.April, "apr": time.April,
		"may":  time.May,
		"june": time.June, "jun": time.June,
		"july": time.July, "jul": time.July,
		"august": time.August, "aug": time.August,
		"september": time.September, "sep": time.September,
		"october": time.October, "oct": time.October,
		"november": time.November, "nov": time.November,
		"december": time.December, "dec": time.December,
	},
	OrdinalSuffixes: []string{"st", "nd", "rd", "th"},
	DateLinkWords:   []string{"of", "the"},

	NumberWords: map[string]int{
		"a": 1, "an": 1,
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	},

	AdultWords:  []string{"adult", "adults"},
	ChildWords:  []string{"child", "children", "kid", "kids"},
	InfantWords: []string{"infant", "infants", "baby", "babies"},
	GenericWords: []string{
		"people", "person", "persons", "passenger", "passengers",
		"traveler", "travelers", "traveller", "travellers",
	},

	RoundTripPhrases: []string{
		"round trip", "roundtrip", "return trip", "return ticket", "two way",
	},
	OneWayPhrases: []string{
		"one way", "single ticket", "single trip",
	},
	VehicleWords: []string{
		"car", "vehicle", "motorcycle", "motorbike",
		"camper", "campervan", "van", "caravan", "bicycle",
	},
}
