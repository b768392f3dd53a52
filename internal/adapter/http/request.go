// Package http provides the HTTP handler layer for the search query API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"unicode/utf8"
)

// ParseQueryRequest represents the request body for query parsing.
type ParseQueryRequest struct {
	// Text is the free-text travel query to parse (e.g. a voice
	// transcription). Empty text is accepted and parses to an empty query.
	Text string `json:"text"`

	// Locale is an optional BCP 47-style language tag ("en", "fr-FR").
	// Unknown or empty locales fall back to the configured default.
	Locale string `json:"locale,omitempty"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the parse request and returns any validation errors.
// The parser itself never rejects input, so validation is deliberately
// thin: only byte-level problems (oversize text, broken encoding) are
// turned away. An unknown locale is not an error; it falls back to the
// default vocabulary.
func (r *ParseQueryRequest) Validate(maxTextChars int) error {
	errs := &ValidationErrors{}

	r.validateText(errs, maxTextChars)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *ParseQueryRequest) validateText(errs *ValidationErrors, maxTextChars int) {
	if !utf8.ValidString(r.Text) {
		errs.Add("text", "text must be valid UTF-8")
		return
	}

	// Character cap is counted in runes so multi-byte scripts are not
	// penalized.
	if n := utf8.RuneCountInString(r.Text); n > maxTextChars {
		errs.Add("text", fmt.Sprintf("text must not exceed %d characters, got %d", maxTextChars, n))
	}
}
