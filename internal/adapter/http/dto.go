package http

import (
	"github.com/ferry-search/voice-search-service/internal/domain"
)

// ParseResponseDTO is the data transfer object for parse responses.
// It matches the expected API output format with snake_case fields.
type ParseResponseDTO struct {
	Query    ParsedQueryDTO   `json:"query"`
	Summary  string           `json:"summary"`
	Metadata ParseMetadataDTO `json:"metadata"`
}

// ParsedQueryDTO represents the structured query in the response.
// Nullable fields are emitted as JSON null when the parser found nothing.
type ParsedQueryDTO struct {
	DeparturePort *string `json:"departure_port"`
	ArrivalPort   *string `json:"arrival_port"`
	DepartureDate *string `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
	IsRoundTrip   bool    `json:"is_round_trip"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Infants       int     `json:"infants"`
	HasVehicle    bool    `json:"has_vehicle"`
	Confidence    int     `json:"confidence"`
	RawText       string  `json:"raw_text"`
}

// ParseMetadataDTO contains metadata about the parse execution.
type ParseMetadataDTO struct {
	// Locale is the vocabulary actually used, after default fallback.
	Locale string `json:"locale"`

	// ReferenceDate is the calendar day relative dates were anchored to,
	// in YYYY-MM-DD format.
	ReferenceDate string `json:"reference_date"`

	// ParseTimeMs is the server-side parse duration in milliseconds.
	ParseTimeMs int64 `json:"parse_time_ms"`
}

// LocaleInfoDTO describes one registered locale.
type LocaleInfoDTO struct {
	// Tag is the base language tag.
	Tag string `json:"tag"`

	// PortAliases is the number of place spellings the locale can resolve.
	PortAliases int `json:"port_aliases"`
}

// LocalesResponseDTO lists the locales the parser has vocabulary for.
type LocalesResponseDTO struct {
	Locales       []LocaleInfoDTO `json:"locales"`
	DefaultLocale string          `json:"default_locale"`
}

// ToParsedQueryDTO converts a domain ParsedSearchQuery to a ParsedQueryDTO.
func ToParsedQueryDTO(q *domain.ParsedSearchQuery) ParsedQueryDTO {
	return ParsedQueryDTO{
		DeparturePort: portString(q.DeparturePort),
		ArrivalPort:   portString(q.ArrivalPort),
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		IsRoundTrip:   q.IsRoundTrip,
		Adults:        q.Adults,
		Children:      q.Children,
		Infants:       q.Infants,
		HasVehicle:    q.HasVehicle,
		Confidence:    q.Confidence,
		RawText:       q.RawText,
	}
}

// ToParseResponseDTO assembles the full parse response from the domain
// query and the execution metadata.
func ToParseResponseDTO(q *domain.ParsedSearchQuery, locale, referenceDate string, parseTimeMs int64) *ParseResponseDTO {
	return &ParseResponseDTO{
		Query:   ToParsedQueryDTO(q),
		Summary: q.Summary(),
		Metadata: ParseMetadataDTO{
			Locale:        locale,
			ReferenceDate: referenceDate,
			ParseTimeMs:   parseTimeMs,
		},
	}
}

func portString(code *domain.PortCode) *string {
	if code == nil {
		return nil
	}
	s := string(*code)
	return &s
}
