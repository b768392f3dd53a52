package parser

import (
	"github.com/ferry-search/voice-search-service/internal/domain"
)

// ConfidenceWeights is the tunable weight table behind the confidence
// score: each resolved signal contributes its weight, the sum is clamped
// to [0,100]. Adding signals to a query never lowers its score.
type ConfidenceWeights struct {
	DeparturePort int
	ArrivalPort   int
	RoundTrip     int
	Date          int
	Passengers    int
	Vehicle       int
}

// DefaultConfidenceWeights returns the standard weight table. The two
// ports carry the bulk of the score since they decide whether a search
// can run at all; the remaining signals contribute evenly.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		DeparturePort: 30,
		ArrivalPort:   30,
		RoundTrip:     10,
		Date:          10,
		Passengers:    10,
		Vehicle:       10,
	}
}

// Score computes the confidence of an assembled query. Passenger counts
// contribute only when they differ from the single-adult default.
func (w ConfidenceWeights) Score(q domain.ParsedSearchQuery) int {
	score := 0
	if q.DeparturePort != nil {
		score += w.DeparturePort
	}
	if q.ArrivalPort != nil {
		score += w.ArrivalPort
	}
	if q.IsRoundTrip {
		score += w.RoundTrip
	}
	if q.HasAnyDate() {
		score += w.Date
	}
	if q.HasExplicitPassengers() {
		score += w.Passengers
	}
	if q.HasVehicle {
		score += w.Vehicle
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
