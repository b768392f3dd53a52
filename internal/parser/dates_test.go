package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ferry-search/voice-search-service/internal/lexicon"
)

func TestMatcherSet_ResolveDates(t *testing.T) {
	ms := newMatcherSet(lexicon.English)

	tests := []struct {
		name          string
		text          string
		wantDeparture *string
		wantReturn    *string
		wantHint      bool
	}{
		{
			name:          "today",
			text:          "ferry today",
			wantDeparture: sp("2025-06-15"),
		},
		{
			name:          "tomorrow",
			text:          "ferry tomorrow",
			wantDeparture: sp("2025-06-16"),
		},
		{
			name:          "day after tomorrow claims its inner tomorrow",
			text:          "ferry day after tomorrow",
			wantDeparture: sp("2025-06-17"),
		},
		{
			name:          "next week",
			text:          "ferry next week",
			wantDeparture: sp("2025-06-22"),
		},
		{
			name:          "weekday resolves strictly after now",
			text:          "ferry on monday",
			wantDeparture: sp("2025-06-16"),
		},
		{
			name:          "weekday of the reference day advances a week",
			text:          "ferry on sunday",
			wantDeparture: sp("2025-06-22"),
		},
		{
			name:          "saturday later the same week",
			text:          "ferry on saturday",
			wantDeparture: sp("2025-06-21"),
		},
		{
			name:          "absolute month first",
			text:          "ferry on july 20",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name:          "absolute day first",
			text:          "ferry on 20 july",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name:          "ordinal suffix",
			text:          "ferry on july 20th",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name:          "day with of link word",
			text:          "ferry on the 20th of july",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name:          "month abbreviation",
			text:          "ferry on jul 20",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name: "day out of range is not a date",
			text: "ferry on july 45",
		},
		{
			name: "day zero is not a date",
			text: "ferry on 0 july",
		},
		{
			name: "bare month name is not a date",
			text: "somewhere in july",
		},
		{
			name:          "two dates set departure and return with hint",
			text:          "from july 15 to july 22",
			wantDeparture: sp("2025-07-15"),
			wantReturn:    sp("2025-07-22"),
			wantHint:      true,
		},
		{
			name:          "returning marker binds the following date",
			text:          "july 20 returning july 27",
			wantDeparture: sp("2025-07-20"),
			wantReturn:    sp("2025-07-27"),
			wantHint:      true,
		},
		{
			name:       "returning alone sets only the return date",
			text:       "returning july 27",
			wantReturn: sp("2025-07-27"),
			wantHint:   true,
		},
		{
			name:          "scrambled order respects the binding",
			text:          "returning july 27 departing july 20",
			wantDeparture: sp("2025-07-20"),
			wantReturn:    sp("2025-07-27"),
			wantHint:      true,
		},
		{
			name:          "explicit binding beats positional second date",
			text:          "july 20 july 22 returning july 27",
			wantDeparture: sp("2025-07-20"),
			wantReturn:    sp("2025-07-27"),
			wantHint:      true,
		},
		{
			name:          "weekday next to an absolute date is one mention",
			text:          "monday july 21",
			wantDeparture: sp("2025-07-21"),
		},
		{
			name:          "relative and return marker combine",
			text:          "tomorrow coming back on friday",
			wantDeparture: sp("2025-06-16"),
			wantReturn:    sp("2025-06-20"),
			wantHint:      true,
		},
		{
			name: "no temporal expressions",
			text: "from tunis to marseille",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ms.resolveDates(tt.text, referenceNow)
			assert.Equal(t, tt.wantDeparture, got.departureDate)
			assert.Equal(t, tt.wantReturn, got.returnDate)
			assert.Equal(t, tt.wantHint, got.roundTripHint)
		})
	}
}

func TestMatcherSet_ResolveDates_French(t *testing.T) {
	ms := newMatcherSet(lexicon.French)

	tests := []struct {
		name          string
		text          string
		wantDeparture *string
		wantReturn    *string
		wantHint      bool
	}{
		{
			name:          "demain",
			text:          "ferry demain",
			wantDeparture: sp("2025-06-16"),
		},
		{
			name:          "apres demain claims its inner demain",
			text:          "ferry apres demain",
			wantDeparture: sp("2025-06-17"),
		},
		{
			name:          "day first date",
			text:          "le 20 juillet",
			wantDeparture: sp("2025-07-20"),
		},
		{
			name:          "first of july with ordinal",
			text:          "le 1er juillet",
			wantDeparture: sp("2025-07-01"),
		},
		{
			name:          "retour binds the return date",
			text:          "depart le 20 juillet retour le 27 juillet",
			wantDeparture: sp("2025-07-20"),
			wantReturn:    sp("2025-07-27"),
			wantHint:      true,
		},
		{
			name:          "retour inside aller retour does not bind",
			text:          "aller retour le 20 juillet",
			wantDeparture: sp("2025-07-20"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ms.resolveDates(tt.text, referenceNow)
			assert.Equal(t, tt.wantDeparture, got.departureDate)
			assert.Equal(t, tt.wantReturn, got.returnDate)
			assert.Equal(t, tt.wantHint, got.roundTripHint)
		})
	}
}

func TestNextWeekday(t *testing.T) {
	// referenceNow is Sunday 2025-06-15.
	tests := []struct {
		name   string
		target time.Weekday
		want   string
	}{
		{name: "next day", target: time.Monday, want: "2025-06-16"},
		{name: "mid week", target: time.Wednesday, want: "2025-06-18"},
		{name: "end of week", target: time.Saturday, want: "2025-06-21"},
		{name: "same weekday advances seven days", target: time.Sunday, want: "2025-06-22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextWeekday(referenceNow, tt.target)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}
