// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerParseResponse represents the parse API response for swagger documentation.
// @Description Structured search query parsed from free text
type SwaggerParseResponse struct {
	// Query is the structured search query
	Query SwaggerParsedQuery `json:"query"`

	// Summary is a human-readable description of the parsed query
	Summary string `json:"summary" example:"TUNIS → MARSEILLE, 3 passengers"`

	// Metadata contains information about the parse execution
	Metadata SwaggerParseMetadata `json:"metadata"`
}

// SwaggerParsedQuery represents a structured search query.
// @Description Search parameters extracted from the query text
type SwaggerParsedQuery struct {
	// DeparturePort is the canonical code of the departure port, or null
	DeparturePort *string `json:"departure_port" example:"tunis"`

	// ArrivalPort is the canonical code of the arrival port, or null
	ArrivalPort *string `json:"arrival_port" example:"marseille"`

	// DepartureDate is the outbound date in YYYY-MM-DD format, or null
	DepartureDate *string `json:"departure_date" example:"2025-07-20"`

	// ReturnDate is the return date in YYYY-MM-DD format, or null
	ReturnDate *string `json:"return_date" example:"2025-07-27"`

	// IsRoundTrip indicates whether the query asks for a round trip
	IsRoundTrip bool `json:"is_round_trip" example:"true"`

	// Adults is the number of adult passengers (defaults to 1)
	Adults int `json:"adults" example:"2"`

	// Children is the number of child passengers
	Children int `json:"children" example:"1"`

	// Infants is the number of infant passengers
	Infants int `json:"infants" example:"0"`

	// HasVehicle indicates whether a vehicle accompanies the passengers
	HasVehicle bool `json:"has_vehicle" example:"true"`

	// Confidence scores how much of the query was understood (0-100)
	Confidence int `json:"confidence" example:"100"`

	// RawText is the original query text, unmodified
	RawText string `json:"raw_text" example:"Round trip from Tunis to Marseille on July 20 returning July 27 for 2 adults and 1 child with car"`
}

// SwaggerParseMetadata contains metadata about the parse execution.
// @Description Metadata about the parse execution
type SwaggerParseMetadata struct {
	// Locale is the vocabulary used, after default fallback
	Locale string `json:"locale" example:"en"`

	// ReferenceDate is the calendar day relative dates were anchored to
	ReferenceDate string `json:"reference_date" example:"2025-06-15"`

	// ParseTimeMs is the parse duration in milliseconds
	ParseTimeMs int64 `json:"parse_time_ms" example:"0"`
}

// SwaggerLocaleInfo describes one supported locale.
// @Description A registered locale and the size of its place vocabulary
type SwaggerLocaleInfo struct {
	// Tag is the base language tag
	Tag string `json:"tag" example:"en"`

	// PortAliases is the number of place spellings the locale resolves
	PortAliases int `json:"port_aliases" example:"15"`
}

// SwaggerLocalesResponse lists the supported locales.
// @Description Locales the parser has vocabulary for
type SwaggerLocalesResponse struct {
	// Locales are the supported locales
	Locales []SwaggerLocaleInfo `json:"locales"`

	// DefaultLocale is the tag used when a request names none
	DefaultLocale string `json:"default_locale" example:"en"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
