package lexicon

import (
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

// French covers transcriptions such as "aller-retour de Tunis à Marseille
// le 20 juillet". Entries are stored accent-folded ("genes" for Gênes,
// "apres demain" for après-demain) to match the Normalize form.
var French = &Lexicon{
	Tag: "fr",

	PortAliases: map[string]domain.PortCode{
		"tunis":         domain.PortTunis,
		"la goulette":   domain.PortTunis,
		"goulette":      domain.PortTunis,
		"marseille":     domain.PortMarseille,
		"genes":         domain.PortGenoa,
		"genova":        domain.PortGenoa,
		"civitavecchia": domain.PortCivitavecchia,
		"rome":          domain.PortCivitavecchia,
		"roma":          domain.PortCivitavecchia,
		"palerme":       domain.PortPalermo,
		"palermo":       domain.PortPalermo,
		"trapani":       domain.PortTrapani,
		"salerne":       domain.PortSalerno,
		"salerno":       domain.PortSalerno,
		"zarzis":        domain.PortZarzis,
		"sfax":          domain.PortSfax,
	},

	FromMarkers: []string{
		"de",
		"depuis",
		"au depart de",
		"en partance de",
	},
	ToMarkers: []string{
		"a",
		"vers",
		"pour",
		"a destination de",
	},
	ReturnMarkers: []string{
		"retour le",
		"retour",
		"avec retour",
		"revenant",
	},

	RelativeDays: map[string]int{
		"aujourd'hui":          0,
		"ce soir":              0,
		"demain":               1,
		"apres demain":         2,
		"la semaine prochaine": 7,
		"semaine prochaine":    7,
	},
	Weekdays: map[string]time.Weekday{
		"dimanche": time.Sunday,
		"lundi":    time.Monday,
		"mardi":    time.Tuesday,
		"mercredi": time.Wednesday,
		"jeudi":    time.Thursday,
		"vendredi": time.Friday,
		"samedi":   time.Saturday,
	},
	Months: map[string]time.Month{
		"janvier":   time.January,
		"fevrier":   time.February,
		"mars":      time.March,
		"avril":     time.April,
		"mai":       time.May,
		"juin":      time.June,
		"juillet":   time.July,
		"aout":      time.August,
		"septembre": time.September,
		"octobre":   time.October,
		"novembre":  time.November,
		"decembre":  time.December,
	},
	OrdinalSuffixes: []string{"er"},
	DateLinkWords:   nil,

	NumberWords: map[string]int{
		"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4,
		"cinq": 5, "six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10,
	},

	AdultWords:  []string{"adulte", "adultes"},
	ChildWords:  []string{"enfant", "enfants"},
	InfantWords: []string{"bebe", "bebes"},
	GenericWords: []string{
		"personne", "personnes", "passager", "passagers",
		"voyageur", "voyageurs",
	},

	RoundTripPhrases: []string{"aller retour", "aller et retour"},
	OneWayPhrases:    []string{"aller simple"},
	VehicleWords: []string{
		"voiture", "vehicule", "moto", "camping car", "fourgon", "velo",
	},
}
