package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsedSearchQuery_Summary(t *testing.T) {
	tests := []struct {
		name  string
		query ParsedSearchQuery
		want  string
	}{
		{
			name:  "no ports yields empty summary",
			query: NewParsedSearchQuery("book me a ferry"),
			want:  "No search parameters detected",
		},
		{
			name: "both ports",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortTunis),
				ArrivalPort:   portPtr(PortMarseille),
				Adults:        1,
			},
			want: "TUNIS → MARSEILLE",
		},
		{
			name: "departure only",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortGenoa),
				Adults:        1,
			},
			want: "From GENOA",
		},
		{
			name: "arrival only",
			query: ParsedSearchQuery{
				ArrivalPort: portPtr(PortCivitavecchia),
				Adults:      1,
			},
			want: "To CIVITAVECCHIA",
		},
		{
			name: "round trip without return date shows marker",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortTunis),
				ArrivalPort:   portPtr(PortMarseille),
				IsRoundTrip:   true,
				Adults:        1,
			},
			want: "TUNIS → MARSEILLE (Round trip)",
		},
		{
			name: "round trip with return date omits marker",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortTunis),
				ArrivalPort:   portPtr(PortMarseille),
				IsRoundTrip:   true,
				DepartureDate: strPtr("2025-07-20"),
				ReturnDate:    strPtr("2025-07-27"),
				Adults:        1,
			},
			want: "TUNIS → MARSEILLE",
		},
		{
			name: "multiple passengers appended",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortTunis),
				ArrivalPort:   portPtr(PortMarseille),
				Adults:        2,
				Children:      1,
			},
			want: "TUNIS → MARSEILLE, 3 passengers",
		},
		{
			name: "single passenger not appended",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortPalermo),
				Adults:        1,
			},
			want: "From PALERMO",
		},
		{
			name: "round trip marker and passengers combine",
			query: ParsedSearchQuery{
				DeparturePort: portPtr(PortTunis),
				IsRoundTrip:   true,
				Adults:        2,
			},
			want: "From TUNIS (Round trip), 2 passengers",
		},
		{
			name: "round trip marker on arrival-only summary",
			query: ParsedSearchQuery{
				ArrivalPort: portPtr(PortMarseille),
				IsRoundTrip: true,
				Adults:      1,
			},
			want: "To MARSEILLE (Round trip)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Summary())
		})
	}
}
