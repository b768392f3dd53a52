package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseQueryRequest_Validate tests request validation.
func TestParseQueryRequest_Validate(t *testing.T) {
	const maxChars = 500

	tests := []struct {
		name          string
		text          string
		locale        string
		expectedError bool
		errorField    string
	}{
		// Valid requests
		{name: "simple query", text: "ferry from Tunis to Marseille", locale: "en"},
		{name: "empty text", text: ""},
		{name: "whitespace only text", text: "   \t  "},
		{name: "text at character limit", text: strings.Repeat("a", maxChars)},
		{name: "one under the limit", text: strings.Repeat("a", maxChars-1)},
		{name: "multi-byte text counted in runes", text: strings.Repeat("é", maxChars)},
		{name: "mixed script text", text: "traversée Tunis → Marseille ✓"},
		{name: "empty locale", text: "ferry to Genoa"},
		{name: "unknown locale is not rejected", text: "ferry to Genoa", locale: "klingon"},
		{name: "region subtag locale", text: "traversata per Palermo", locale: "it-IT"},

		// Invalid requests
		{
			name:          "one over the limit",
			text:          strings.Repeat("a", maxChars+1),
			expectedError: true,
			errorField:    "text",
		},
		{
			name:          "far over the limit",
			text:          strings.Repeat("word ", 400),
			expectedError: true,
			errorField:    "text",
		},
		{
			name:          "invalid utf-8",
			text:          string([]byte{0xff, 0xfe, 0xfd}),
			expectedError: true,
			errorField:    "text",
		},
		{
			name:          "truncated utf-8 sequence",
			text:          "caf" + string([]byte{0xc3}),
			expectedError: true,
			errorField:    "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ParseQueryRequest{Text: tt.text, Locale: tt.locale}

			err := req.Validate(maxChars)

			if tt.expectedError {
				require.Error(t, err)
				verrs, ok := err.(*ValidationErrors)
				require.True(t, ok, "expected *ValidationErrors, got %T", err)
				assert.Contains(t, verrs.ToMap(), tt.errorField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestParseQueryRequest_Validate_ErrorMessage checks the over-limit message
// reports both the cap and the actual length.
func TestParseQueryRequest_Validate_ErrorMessage(t *testing.T) {
	req := &ParseQueryRequest{Text: strings.Repeat("x", 612)}

	err := req.Validate(500)
	require.Error(t, err)

	verrs, ok := err.(*ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "text must not exceed 500 characters, got 612", verrs.ToMap()["text"])
}

// TestParseQueryRequest_Validate_RuneCounting verifies the cap applies to
// characters rather than bytes.
func TestParseQueryRequest_Validate_RuneCounting(t *testing.T) {
	// 10 runes, 20 bytes
	text := strings.Repeat("é", 10)
	require.Equal(t, 20, len(text))

	req := &ParseQueryRequest{Text: text}
	assert.NoError(t, req.Validate(10), "10 runes should pass a 10-character cap")

	req = &ParseQueryRequest{Text: text + "é"}
	assert.Error(t, req.Validate(10), "11 runes should fail a 10-character cap")
}

// TestValidationErrors tests the error accumulator.
func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())

	errs.Add("text", "too long")
	errs.Add("locale", "malformed")

	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.Errors, 2)
	assert.Equal(t, "text", errs.Errors[0].Field)
	assert.Equal(t, "too long", errs.Errors[0].Message)

	m := errs.ToMap()
	assert.Equal(t, map[string]string{
		"text":   "too long",
		"locale": "malformed",
	}, m)
}

// TestValidationErrorsError tests the Error() method.
func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("field1", "error1")
	errs.Add("field2", "error2")

	errorMsg := errs.Error()
	require.NotEmpty(t, errorMsg)
	// Error() returns the first error's message
	assert.Equal(t, "error1", errorMsg)

	// Test empty errors
	emptyErrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", emptyErrs.Error())
}
