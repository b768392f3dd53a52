package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/ferry-search/voice-search-service/internal/domain"
	"github.com/ferry-search/voice-search-service/internal/lexicon"
)

// markerKind classifies the patterns of the marker automaton.
type markerKind int

const (
	markerFrom markerKind = iota
	markerTo
	markerReturn
	// markerShadow entries are trip-type phrases included only so that
	// leftmost-longest matching claims them before a marker word they
	// contain ("retour" inside "aller retour" must not register as a
	// return marker).
	markerShadow
)

// flagKind classifies the patterns of the flag automaton.
type flagKind int

const (
	flagRoundTrip flagKind = iota
	flagOneWay
	flagVehicle
)

// dateKeyword is the resolved meaning of one date-word pattern: either a
// weekday name or a fixed day offset from the reference instant.
type dateKeyword struct {
	weekday   time.Weekday
	isWeekday bool
	offset    int
}

// Capture-group indices of the absolute-date pattern. The month-first
// branch fills groups 1 and 2, the day-first branch groups 3 and 4.
const (
	absGroupMonthFirstMonth = 1
	absGroupMonthFirstDay   = 2
	absGroupDayFirstDay     = 3
	absGroupDayFirstMonth   = 4
)

// matcherSet holds the matchers compiled from one locale's lexicon. It is
// built once at parser construction and read-only afterwards, so a single
// set serves concurrent parses without coordination.
type matcherSet struct {
	lex *lexicon.Lexicon

	ports     ahocorasick.AhoCorasick
	portCodes []domain.PortCode

	dateWords    ahocorasick.AhoCorasick
	dateKeywords []dateKeyword

	markers     ahocorasick.AhoCorasick
	markerKinds []markerKind

	flags     ahocorasick.AhoCorasick
	flagKinds []flagKind

	absoluteDates *regexp.Regexp

	adultCount   *regexp.Regexp
	childCount   *regexp.Regexp
	infantCount  *regexp.Regexp
	genericCount *regexp.Regexp
	roleWords    *regexp.Regexp
}

func newMatcherSet(lex *lexicon.Lexicon) *matcherSet {
	ms := &matcherSet{lex: lex}

	aliases := sortedKeys(lex.PortAliases)
	ms.portCodes = make([]domain.PortCode, len(aliases))
	for i, alias := range aliases {
		ms.portCodes[i] = lex.PortAliases[alias]
	}
	ms.ports = newAutomaton(aliases)

	var dateWords []string
	for _, phrase := range sortedKeys(lex.RelativeDays) {
		dateWords = append(dateWords, phrase)
		ms.dateKeywords = append(ms.dateKeywords, dateKeyword{offset: lex.RelativeDays[phrase]})
	}
	for _, name := range sortedKeys(lex.Weekdays) {
		dateWords = append(dateWords, name)
		ms.dateKeywords = append(ms.dateKeywords, dateKeyword{isWeekday: true, weekday: lex.Weekdays[name]})
	}
	ms.dateWords = newAutomaton(dateWords)

	var markerPatterns []string
	addMarkers := func(kind markerKind, patterns []string) {
		for _, p := range patterns {
			markerPatterns = append(markerPatterns, p)
			ms.markerKinds = append(ms.markerKinds, kind)
		}
	}
	addMarkers(markerFrom, lex.FromMarkers)
	addMarkers(markerTo, lex.ToMarkers)
	addMarkers(markerReturn, lex.ReturnMarkers)
	addMarkers(markerShadow, lex.RoundTripPhrases)
	addMarkers(markerShadow, lex.OneWayPhrases)
	ms.markers = newAutomaton(markerPatterns)

	var flagPatterns []string
	addFlags := func(kind flagKind, patterns []string) {
		for _, p := range patterns {
			flagPatterns = append(flagPatterns, p)
			ms.flagKinds = append(ms.flagKinds, kind)
		}
	}
	addFlags(flagRoundTrip, lex.RoundTripPhrases)
	addFlags(flagOneWay, lex.OneWayPhrases)
	addFlags(flagVehicle, lex.VehicleWords)
	ms.flags = newAutomaton(flagPatterns)

	ms.absoluteDates = compileAbsoluteDates(lex)

	numberAlt := numberAlternation(lex)
	ms.adultCount = compileCount(numberAlt, lex.AdultWords)
	ms.childCount = compileCount(numberAlt, lex.ChildWords)
	ms.infantCount = compileCount(numberAlt, lex.InfantWords)
	ms.genericCount = compileCount(numberAlt, lex.GenericWords)
	ms.roleWords = compileRoleWords(lex)

	return ms
}

func newAutomaton(patterns []string) ahocorasick.AhoCorasick {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false, // input is already normalized
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	return builder.Build(patterns)
}

// compileAbsoluteDates builds the "<month> <day>" / "<day> <month>"
// pattern from the locale's month table, tolerating ordinal suffixes
// ("july 20th", "1er juillet") and link words ("20th of july").
func compileAbsoluteDates(lex *lexicon.Lexicon) *regexp.Regexp {
	monthAlt := alternation(sortedKeys(lex.Months))

	day := `([0-9]{1,2})`
	suffix := ""
	if len(lex.OrdinalSuffixes) > 0 {
		suffix = `(?:` + alternation(lex.OrdinalSuffixes) + `)?`
	}
	link := ""
	if len(lex.DateLinkWords) > 0 {
		link = `(?:(?:` + alternation(lex.DateLinkWords) + `)\s+)?`
	}

	monthFirst := `(` + monthAlt + `)\s+` + link + day + suffix
	dayFirst := day + suffix + `\s+` + link + `(` + monthAlt + `)`
	return regexp.MustCompile(`\b(?:` + monthFirst + `|` + dayFirst + `)\b`)
}

func numberAlternation(lex *lexicon.Lexicon) string {
	return `[0-9]{1,2}|` + alternation(sortedKeys(lex.NumberWords))
}

// compileCount matches a digit or number word directly followed by one of
// the role words, capturing the quantity token.
func compileCount(numberAlt string, roleWords []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + numberAlt + `)\s+(?:` + alternation(roleWords) + `)\b`)
}

// compileRoleWords matches any explicit passenger-role word, with or
// without an attached quantity.
func compileRoleWords(lex *lexicon.Lexicon) *regexp.Regexp {
	var all []string
	all = append(all, lex.AdultWords...)
	all = append(all, lex.ChildWords...)
	all = append(all, lex.InfantWords...)
	return regexp.MustCompile(`\b(?:` + alternation(all) + `)\b`)
}

// alternation renders words as a regexp alternation ordered longest first,
// so no word is shadowed by one of its own prefixes.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
