// Package parser turns free-text travel queries, typically voice
// transcriptions, into structured search queries. The pipeline runs four
// independent resolvers (ports, dates, passengers, trip flags) over the
// same normalized text, assembles the result and scores it. Parsing is a
// pure function of (text, locale, now): no I/O, no shared mutable state,
// no error paths.
package parser

//go:generate mockgen -source=parser.go -destination=mock_parser.go -package=parser

import (
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
	"github.com/ferry-search/voice-search-service/internal/infrastructure/timeutil"
	"github.com/ferry-search/voice-search-service/internal/lexicon"
)

// QueryParser turns one free-text travel query into a structured search
// query. Parse never fails: empty, malformed or unrecognizable input
// yields the all-defaults result with confidence zero. Implementations
// must be safe for concurrent use.
type QueryParser interface {
	// Parse parses text against the vocabulary of the given locale. An
	// empty or unknown locale resolves to the configured default.
	Parse(text, locale string) domain.ParsedSearchQuery

	// EffectiveLocale reports the registered locale tag Parse would use
	// for the given tag, after normalization and default fallback.
	EffectiveLocale(locale string) string
}

// Config holds the parser tunables.
type Config struct {
	// DefaultLocale is used when Parse receives an empty or unknown
	// locale tag.
	DefaultLocale string

	// Location anchors relative dates ("tomorrow") to a calendar.
	Location *time.Location

	// Weights is the confidence weight table.
	Weights ConfidenceWeights
}

// DefaultConfig returns the standard parser configuration: English
// vocabulary fallback, UTC calendar, default confidence weights.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: lexicon.DefaultLocale,
		Location:      time.UTC,
		Weights:       DefaultConfidenceWeights(),
	}
}

type parser struct {
	cfg      Config
	clock    timeutil.Clock
	matchers map[string]*matcherSet
}

var _ QueryParser = (*parser)(nil)

// New builds a QueryParser with matchers compiled up front for every
// registered locale, so Parse itself allocates no matcher state. A nil
// clock falls back to the system clock.
func New(clock timeutil.Clock, cfg Config) QueryParser {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = lexicon.DefaultLocale
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Weights == (ConfidenceWeights{}) {
		cfg.Weights = DefaultConfidenceWeights()
	}

	matchers := make(map[string]*matcherSet)
	for _, lex := range lexicon.All() {
		matchers[lex.Tag] = newMatcherSet(lex)
	}

	return &parser{cfg: cfg, clock: clock, matchers: matchers}
}

// Parse normalizes the text, runs the resolvers and assembles the result.
// The reference instant is sampled exactly once per call, so "today" and
// "tomorrow" within one query anchor to the same now.
func (p *parser) Parse(text, locale string) domain.ParsedSearchQuery {
	query := domain.NewParsedSearchQuery(text)

	normalized := lexicon.Normalize(text)
	if normalized == "" {
		return query
	}

	ms := p.matcherFor(locale)
	now := p.clock.Now().In(p.cfg.Location)

	departure, arrival := ms.resolvePorts(normalized)
	dates := ms.resolveDates(normalized, now)
	counts := ms.resolvePassengers(normalized)
	flags := ms.resolveFlags(normalized)

	query.DeparturePort = departure
	query.ArrivalPort = arrival
	query.DepartureDate = dates.departureDate
	query.ReturnDate = dates.returnDate
	query.IsRoundTrip = (flags.roundTrip || dates.roundTripHint) && !flags.oneWay
	query.Adults = counts.adults
	query.Children = counts.children
	query.Infants = counts.infants
	query.HasVehicle = flags.vehicle
	query.Confidence = p.cfg.Weights.Score(query)
	return query
}

// EffectiveLocale always returns a registered tag, so matcherFor can
// index the matcher map without a presence check.
func (p *parser) EffectiveLocale(locale string) string {
	if tag := lexicon.NormalizeTag(locale); lexicon.IsSupported(tag) {
		return tag
	}
	if tag := lexicon.NormalizeTag(p.cfg.DefaultLocale); lexicon.IsSupported(tag) {
		return tag
	}
	return lexicon.DefaultLocale
}

func (p *parser) matcherFor(locale string) *matcherSet {
	return p.matchers[p.EffectiveLocale(locale)]
}
