// Package http provides the HTTP handler layer for the search query API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ferry-search/voice-search-service/internal/adapter/http/response"
	"github.com/ferry-search/voice-search-service/internal/infrastructure/timeutil"
	"github.com/ferry-search/voice-search-service/internal/lexicon"
	"github.com/ferry-search/voice-search-service/internal/parser"
)

// QueryHandler handles HTTP requests for query parsing endpoints.
type QueryHandler struct {
	parser       parser.QueryParser
	clock        timeutil.Clock
	location     *time.Location
	maxTextChars int
}

// NewQueryHandler creates a new QueryHandler. The clock and location must
// match the ones the parser was built with, so the reported reference
// date is the one the parser anchored to.
func NewQueryHandler(p parser.QueryParser, clock timeutil.Clock, location *time.Location, maxTextChars int) *QueryHandler {
	return &QueryHandler{
		parser:       p,
		clock:        clock,
		location:     location,
		maxTextChars: maxTextChars,
	}
}

// ParseQuery handles POST /api/v1/search/parse
//
// @Summary Parse a travel search query
// @Description Parse free-text travel queries into structured ferry search parameters
// @Tags search
// @Accept json
// @Produce json
// @Param request body ParseQueryRequest true "Query text and optional locale"
// @Success 200 {object} ParseResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/search/parse [post]
func (h *QueryHandler) ParseQuery(c echo.Context) error {
	var req ParseQueryRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Validate request
	if err := req.Validate(h.maxTextChars); err != nil {
		return h.handleValidationError(c, err)
	}

	// Parse, timing just the parser call
	start := time.Now()
	query := h.parser.Parse(req.Text, req.Locale)
	parseTime := time.Since(start)

	dto := ToParseResponseDTO(
		&query,
		h.parser.EffectiveLocale(req.Locale),
		h.referenceDate(),
		parseTime.Milliseconds(),
	)

	return response.ParseResult(c, dto)
}

// Locales handles GET /api/v1/search/locales
//
// @Summary List supported locales
// @Description List the locale tags the parser has vocabulary for
// @Tags search
// @Produce json
// @Success 200 {object} LocalesResponseDTO
// @Router /api/v1/search/locales [get]
func (h *QueryHandler) Locales(c echo.Context) error {
	all := lexicon.All()
	infos := make([]LocaleInfoDTO, 0, len(all))
	for _, lex := range all {
		infos = append(infos, LocaleInfoDTO{
			Tag:         lex.Tag,
			PortAliases: len(lex.PortAliases),
		})
	}

	return response.ParseResult(c, &LocalesResponseDTO{
		Locales:       infos,
		DefaultLocale: h.parser.EffectiveLocale(""),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *QueryHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *QueryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// referenceDate reports the calendar day the parser anchors relative
// dates to, computed from the same clock and location.
func (h *QueryHandler) referenceDate() string {
	return timeutil.FormatDate(timeutil.StartOfDay(h.clock.Now().In(h.location)))
}
