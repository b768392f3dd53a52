package domain

import (
	"fmt"
	"strings"
)

// SummaryEmpty is returned when neither endpoint of the journey resolved.
const SummaryEmpty = "No search parameters detected"

// Summary renders a short human-readable description of the query, suitable
// for echoing back what was understood ("TUNIS → MARSEILLE (Round trip), 3
// passengers"). Port codes are upper-cased for display. The round-trip
// marker appears only when the trip is round trip and no return date was
// captured; a present return date already conveys the round trip on its
// own. The passenger suffix appears only beyond the single-traveler
// default.
func (q ParsedSearchQuery) Summary() string {
	if !q.HasAnyPort() {
		return SummaryEmpty
	}

	var b strings.Builder
	switch {
	case q.DeparturePort != nil && q.ArrivalPort != nil:
		b.WriteString(displayPort(*q.DeparturePort))
		b.WriteString(" → ")
		b.WriteString(displayPort(*q.ArrivalPort))
	case q.DeparturePort != nil:
		b.WriteString("From ")
		b.WriteString(displayPort(*q.DeparturePort))
	default:
		b.WriteString("To ")
		b.WriteString(displayPort(*q.ArrivalPort))
	}

	if q.IsRoundTrip && q.ReturnDate == nil {
		b.WriteString(" (Round trip)")
	}

	if total := q.TotalPassengers(); total > 1 {
		b.WriteString(fmt.Sprintf(", %d passengers", total))
	}

	return b.String()
}

func displayPort(code PortCode) string {
	return strings.ToUpper(string(code))
}
