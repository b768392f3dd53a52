// Package mock provides test doubles for the voice search service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, canned results, call counting).
package mock

import (
	"sync"
	"time"

	"github.com/ferry-search/voice-search-service/internal/domain"
	"github.com/ferry-search/voice-search-service/internal/parser"
)

// Parser is a configurable mock implementation of parser.QueryParser.
// It supports canned results keyed by input text, configurable delays,
// and call counting for concurrency tests.
type Parser struct {
	queries   map[string]domain.ParsedSearchQuery
	fallback  *domain.ParsedSearchQuery
	locale    string
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewParser creates a new mock parser. Unconfigured inputs echo the
// all-defaults query for their text; the effective locale reports "en".
func NewParser() *Parser {
	return &Parser{
		queries: make(map[string]domain.ParsedSearchQuery),
		locale:  "en",
	}
}

// WithQuery configures the result returned for every input text.
func (p *Parser) WithQuery(q domain.ParsedSearchQuery) *Parser {
	p.fallback = &q
	return p
}

// WithQueryFor configures the result returned for one specific input text.
func (p *Parser) WithQueryFor(text string, q domain.ParsedSearchQuery) *Parser {
	p.queries[text] = q
	return p
}

// WithEffectiveLocale configures the locale tag EffectiveLocale reports.
func (p *Parser) WithEffectiveLocale(locale string) *Parser {
	p.locale = locale
	return p
}

// WithDelay configures the parser to wait the given duration before
// responding. This is useful for widening the overlap window in
// concurrency tests.
func (p *Parser) WithDelay(d time.Duration) *Parser {
	p.delay = d
	return p
}

// Parse implements parser.QueryParser.Parse.
func (p *Parser) Parse(text, locale string) domain.ParsedSearchQuery {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	if q, ok := p.queries[text]; ok {
		return q
	}
	if p.fallback != nil {
		return *p.fallback
	}
	return domain.NewParsedSearchQuery(text)
}

// EffectiveLocale implements parser.QueryParser.EffectiveLocale.
func (p *Parser) EffectiveLocale(locale string) string {
	return p.locale
}

// CallCount returns the number of times Parse was called.
// This is useful for verifying handler interactions.
func (p *Parser) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Parser) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Parser implements parser.QueryParser at compile time.
var _ parser.QueryParser = (*Parser)(nil)

// SampleQuery returns a fully populated parsed query for testing.
// All fields carry realistic values for a Tunis to Marseille round trip.
func SampleQuery(rawText string) domain.ParsedSearchQuery {
	departure := domain.PortTunis
	arrival := domain.PortMarseille
	departureDate := "2025-07-20"
	returnDate := "2025-07-27"

	return domain.ParsedSearchQuery{
		DeparturePort: &departure,
		ArrivalPort:   &arrival,
		DepartureDate: &departureDate,
		ReturnDate:    &returnDate,
		IsRoundTrip:   true,
		Adults:        2,
		Children:      1,
		Infants:       0,
		HasVehicle:    true,
		Confidence:    100,
		RawText:       rawText,
	}
}
