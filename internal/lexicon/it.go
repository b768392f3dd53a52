package lexicon

import (
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

// Italian covers transcriptions such as "andata e ritorno da Tunisi a
// Palermo domani". Weekday names are stored accent-folded ("lunedi").
var Italian = &Lexicon{
	Tag: "it",

	PortAliases: map[string]domain.PortCode{
		"tunisi":        domain.PortTunis,
		"tunis":         domain.PortTunis,
		"la goulette":   domain.PortTunis,
		"marsiglia":     domain.PortMarseille,
		"marseille":     domain.PortMarseille,
		"genova":        domain.PortGenoa,
		"civitavecchia": domain.PortCivitavecchia,
		"roma":          domain.PortCivitavecchia,
		"palermo":       domain.PortPalermo,
		"trapani":       domain.PortTrapani,
		"salerno":       domain.PortSalerno,
		"zarzis":        domain.PortZarzis,
		"sfax":          domain.PortSfax,
	},

	FromMarkers: []string{
		"da",
		"in partenza da",
	},
	ToMarkers: []string{
		"a",
		"per",
		"verso",
	},
	ReturnMarkers: []string{
		"ritorno il",
		"ritorno",
		"con ritorno",
	},

	RelativeDays: map[string]int{
		"oggi":                  0,
		"stasera":               0,
		"domani":                1,
		"dopodomani":            2,
		"la prossima settimana": 7,
		"la settimana prossima": 7,
		"settimana prossima":    7,
	},
	Weekdays: map[string]time.Weekday{
		"domenica":  time.Sunday,
		"lunedi":    time.Monday,
		"martedi":   time.Tuesday,
		"mercoledi": time.Wednesday,
		"giovedi":   time.Thursday,
		"venerdi":   time.Friday,
		"sabato":    time.Saturday,
	},
	Months: map[string]time.Month{
		"gennaio":   time.January,
		"febbraio":  time.February,
		"marzo":     time.March,
		"aprile":    time.April,
		"maggio":    time.May,
		"giugno":    time.June,
		"luglio":    time.July,
		"agosto":    time.August,
		"settembre": time.September,
		"ottobre":   time.October,
		"novembre":  time.November,
		"dicembre":  time.December,
	},
	OrdinalSuffixes: nil,
	DateLinkWords:   nil,

	NumberWords: map[string]int{
		"un": 1, "uno": 1, "una": 1, "due": 2, "tre": 3, "quattro": 4,
		"cinque": 5, "sei": 6, "sette": 7, "otto": 8, "nove": 9, "dieci": 10,
	},

	AdultWords:  []string{"adulto", "adulti"},
	ChildWords:  []string{"bambino", "bambini", "bambina", "bambine"},
	InfantWords: []string{"neonato", "neonati"},
	GenericWords: []string{
		"persona", "persone", "passeggero", "passeggeri",
	},

	RoundTripPhrases: []string{"andata e ritorno", "andata ritorno"},
	OneWayPhrases:    []string{"solo andata", "sola andata"},
	VehicleWords: []string{
		"auto", "macchina", "veicolo", "moto", "camper",
		"furgone", "bici", "bicicletta",
	},
}
