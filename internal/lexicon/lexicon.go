// Package lexicon provides the per-locale vocabulary consulted by the query
// parser: port aliases, date keywords, passenger-role words, number words
// and trip-type phrases. Each locale is a declarative table consulted
// uniformly by the resolvers, so adding a locale is a data addition rather
// than a code change. All table entries are stored in the normal form
// produced by Normalize.
package lexicon

import (
	"sort"
	"strings"
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

// DefaultLocale is the lexicon used whenever a requested locale has no
// table of its own.
const DefaultLocale = "en"

// Lexicon holds the vocabulary of one locale. Fields are data-only; the
// parser compiles them into matchers at construction time. A Lexicon is
// never mutated after package initialization.
type Lexicon struct {
	// Tag is the base language tag ("en", "fr", ...).
	Tag string

	// PortAliases maps every known place spelling to its canonical port
	// code. Aliases may span multiple words ("la goulette").
	PortAliases map[string]domain.PortCode

	// FromMarkers and ToMarkers are the directional prepositions that tie
	// a following place mention to the departure or arrival side.
	FromMarkers []string
	ToMarkers   []string

	// ReturnMarkers flag the next date expression as the return date.
	ReturnMarkers []string

	// RelativeDays maps relative-date phrases to a day offset from the
	// reference instant ("tomorrow" -> 1).
	RelativeDays map[string]int

	// Weekdays maps weekday names to their calendar weekday.
	Weekdays map[string]time.Weekday

	// Months maps month names, including common abbreviations, to their
	// calendar month.
	Months map[string]time.Month

	// OrdinalSuffixes are day-number suffixes tolerated in absolute dates
	// ("20th", "1er"). May be empty.
	OrdinalSuffixes []string

	// DateLinkWords are filler words tolerated between the day and month
	// of an absolute date ("20th of july"). May be empty.
	DateLinkWords []string

	// NumberWords maps spelled-out quantities to their value.
	NumberWords map[string]int

	// Passenger-role vocabularies. GenericWords ("people", "passengers")
	// count as adults only when no explicit role word appears anywhere in
	// the query.
	AdultWords   []string
	ChildWords   []string
	InfantWords  []string
	GenericWords []string

	// Trip-type and vehicle phrases, matched as whole words.
	RoundTripPhrases []string
	OneWayPhrases    []string
	VehicleWords     []string
}

var locales = map[string]*Lexicon{
	"en": English,
	"fr": French,
	"it": Italian,
}

// NormalizeTag reduces a BCP 47-style tag to its base language:
// "fr-FR" and "FR_ca" both become "fr".
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// ForLocale returns the lexicon for the given tag, falling back to the
// default lexicon when the tag is empty or unknown. It never returns nil
// and never fails; an unrecognized locale silently resolves to the
// default vocabulary.
func ForLocale(tag string) *Lexicon {
	if lex, ok := locales[NormalizeTag(tag)]; ok {
		return lex
	}
	return locales[DefaultLocale]
}

// IsSupported reports whether the tag resolves to a registered lexicon
// without falling back to the default.
func IsSupported(tag string) bool {
	_, ok := locales[NormalizeTag(tag)]
	return ok
}

// SupportedLocales returns the registered locale tags in sorted order.
func SupportedLocales() []string {
	tags := make([]string, 0, len(locales))
	for tag := range locales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// All returns every registered lexicon, ordered by tag.
func All() []*Lexicon {
	out := make([]*Lexicon, 0, len(locales))
	for _, tag := range SupportedLocales() {
		out = append(out, locales[tag])
	}
	return out
}
