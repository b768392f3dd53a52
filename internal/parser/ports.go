package parser

import (
	"github.com/ferry-search/voice-search-service/internal/domain"
)

// portMention is one recognized place reference in normalized text.
// Alias overlaps are already settled by the automaton: the longest
// leftmost alias wins, so "la goulette" never surfaces as "goulette".
type portMention struct {
	start int
	end   int
	code  domain.PortCode
}

// directionMarker is one from/to preposition occurrence.
type directionMarker struct {
	end  int
	kind markerKind
}

// resolvePorts assigns place mentions to the departure and arrival side.
// Each mention is tied to the nearest directional marker preceding it, so
// "to Marseille from Tunis" resolves the same way as "from Tunis to
// Marseille". When the markers bind nothing, exactly two distinct ports
// assign in textual order; any other bare constellation stays unresolved.
func (ms *matcherSet) resolvePorts(text string) (departure, arrival *domain.PortCode) {
	mentions := ms.portMentions(text)
	if len(mentions) == 0 {
		return nil, nil
	}

	markers := ms.directionMarkers(text)
	for _, m := range mentions {
		kind, ok := nearestMarkerBefore(markers, m.start)
		if !ok {
			continue
		}
		code := m.code
		switch {
		case kind == markerFrom && departure == nil:
			departure = &code
		case kind == markerTo && arrival == nil:
			arrival = &code
		}
	}

	if departure == nil && arrival == nil {
		departure, arrival = bareTwoPortAssignment(mentions)
	}
	return departure, arrival
}

func (ms *matcherSet) portMentions(text string) []portMention {
	matches := ms.ports.FindAll(text)
	mentions := make([]portMention, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, portMention{
			start: m.Start(),
			end:   m.End(),
			code:  ms.portCodes[m.Pattern()],
		})
	}
	return mentions
}

func (ms *matcherSet) directionMarkers(text string) []directionMarker {
	var markers []directionMarker
	for _, m := range ms.markers.FindAll(text) {
		kind := ms.markerKinds[m.Pattern()]
		if kind != markerFrom && kind != markerTo {
			continue
		}
		markers = append(markers, directionMarker{end: m.End(), kind: kind})
	}
	return markers
}

// nearestMarkerBefore returns the kind of the closest marker ending at or
// before pos. Markers arrive in text order.
func nearestMarkerBefore(markers []directionMarker, pos int) (markerKind, bool) {
	for i := len(markers) - 1; i >= 0; i-- {
		if markers[i].end <= pos {
			return markers[i].kind, true
		}
	}
	return 0, false
}

// bareTwoPortAssignment is the fallback for marker-less queries such as
// "Tunis Marseille tomorrow": exactly two distinct ports resolve as
// departure then arrival, in order of first occurrence.
func bareTwoPortAssignment(mentions []portMention) (*domain.PortCode, *domain.PortCode) {
	var order []domain.PortCode
	seen := make(map[domain.PortCode]bool, 2)
	for _, m := range mentions {
		if !seen[m.code] {
			seen[m.code] = true
			order = append(order, m.code)
		}
	}
	if len(order) != 2 {
		return nil, nil
	}
	return &order[0], &order[1]
}
