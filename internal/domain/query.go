// Package domain contains the core entities of the voice search parser.
// These types are locale-agnostic and form the contract between the parsing
// pipeline and any layer that consumes its results.
package domain

// PortCode is the canonical lowercase identifier of a ferry port.
// Free-text place mentions resolve to a PortCode through the locale
// lexicon's alias tables; the code itself never varies by locale.
type PortCode string

// Canonical port codes of the served route network.
const (
	PortTunis         PortCode = "tunis"
	PortMarseille     PortCode = "marseille"
	PortGenoa         PortCode = "genoa"
	PortCivitavecchia PortCode = "civitavecchia"
	PortPalermo       PortCode = "palermo"
	PortTrapani       PortCode = "trapani"
	PortSalerno       PortCode = "salerno"
	PortZarzis        PortCode = "zarzis"
	PortSfax          PortCode = "sfax"
)

// DefaultAdults is the single-traveler assumption applied when a query
// carries no passenger information at all.
const DefaultAdults = 1

// ParsedSearchQuery is the structured result of parsing one free-text
// travel query. It is produced fresh per parse call and never mutated
// afterwards. Unresolved fields are nil so that a JSON rendering carries
// explicit nulls and a UI layer can show placeholders deterministically.
type ParsedSearchQuery struct {
	// DeparturePort is the resolved origin port, or nil if no origin
	// mention was recognized.
	DeparturePort *PortCode `json:"departurePort"`

	// ArrivalPort is the resolved destination port, or nil. It is
	// independent of DeparturePort; the parser does not require the two
	// to differ.
	ArrivalPort *PortCode `json:"arrivalPort"`

	// DepartureDate is the outbound date in YYYY-MM-DD form, or nil.
	DepartureDate *string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD form, or nil. It may
	// be set even when IsRoundTrip is false if a second date was found.
	ReturnDate *string `json:"returnDate"`

	// IsRoundTrip reports whether the query describes a two-way journey,
	// either via an explicit keyword or inferred from two date mentions.
	IsRoundTrip bool `json:"isRoundTrip"`

	// Adults is the number of adult passengers (default 1).
	Adults int `json:"adults"`

	// Children is the number of child passengers (default 0).
	Children int `json:"children"`

	// Infants is the number of infant passengers (default 0).
	Infants int `json:"infants"`

	// HasVehicle reports whether a vehicle keyword was detected.
	HasVehicle bool `json:"hasVehicle"`

	// Confidence is a heuristic 0-100 score of how much structured
	// information was extracted. 0 means nothing was recognized.
	Confidence int `json:"confidence"`

	// RawText is the verbatim input string, preserved unmodified.
	RawText string `json:"rawText"`
}

// NewParsedSearchQuery returns the all-defaults result for the given raw
// input: no ports, no dates, one adult, confidence zero. Parsing an empty
// or unrecognizable string yields exactly this value.
func NewParsedSearchQuery(rawText string) ParsedSearchQuery {
	return ParsedSearchQuery{
		Adults:  DefaultAdults,
		RawText: rawText,
	}
}

// TotalPassengers returns the combined adult, child and infant count.
func (q ParsedSearchQuery) TotalPassengers() int {
	return q.Adults + q.Children + q.Infants
}

// HasAnyPort reports whether at least one endpoint of the journey resolved.
func (q ParsedSearchQuery) HasAnyPort() bool {
	return q.DeparturePort != nil || q.ArrivalPort != nil
}

// HasAnyDate reports whether at least one travel date resolved.
func (q ParsedSearchQuery) HasAnyDate() bool {
	return q.DepartureDate != nil || q.ReturnDate != nil
}

// HasExplicitPassengers reports whether the passenger counts differ from
// the single-adult default, i.e. the query carried passenger detail.
func (q ParsedSearchQuery) HasExplicitPassengers() bool {
	return q.Adults != DefaultAdults || q.Children != 0 || q.Infants != 0
}
