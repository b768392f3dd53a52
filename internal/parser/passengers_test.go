package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferry-search/voice-search-service/internal/lexicon"
)

func TestMatcherSet_ResolvePassengers(t *testing.T) {
	ms := newMatcherSet(lexicon.English)

	tests := []struct {
		name         string
		text         string
		wantAdults   int
		wantChildren int
		wantInfants  int
	}{
		{
			name:       "no passenger info defaults to one adult",
			text:       "ferry from tunis to marseille",
			wantAdults: 1,
		},
		{
			name:         "digit counts per role",
			text:         "3 adults and 2 children",
			wantAdults:   3,
			wantChildren: 2,
		},
		{
			name:        "word numbers",
			text:        "two adults and one infant",
			wantAdults:  2,
			wantInfants: 1,
		},
		{
			name:         "children only keeps the adult default",
			text:         "ferry with 2 children",
			wantAdults:   1,
			wantChildren: 2,
		},
		{
			name:        "article counts as one",
			text:        "an adult and a baby",
			wantAdults:  1,
			wantInfants: 1,
		},
		{
			name:         "kids count as children",
			text:         "2 kids",
			wantAdults:   1,
			wantChildren: 2,
		},
		{
			name:       "generic people set adults",
			text:       "ferry for 5 people",
			wantAdults: 5,
		},
		{
			name:       "generic passengers set adults",
			text:       "four passengers to marseille",
			wantAdults: 4,
		},
		{
			name:         "generic ignored when a role word is present",
			text:         "4 people including 2 children",
			wantAdults:   1,
			wantChildren: 2,
		},
		{
			name:       "first pairing wins per role",
			text:       "2 adults no wait 3 adults",
			wantAdults: 2,
		},
		{
			name:       "role word without a number contributes nothing",
			text:       "ferry with children",
			wantAdults: 1,
		},
		{
			name:       "number without a role contributes nothing",
			text:       "ferry at 10",
			wantAdults: 1,
		},
		{
			name:       "three digit numbers are not counts",
			text:       "120 adults",
			wantAdults: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ms.resolvePassengers(tt.text)
			assert.Equal(t, tt.wantAdults, got.adults, "adults")
			assert.Equal(t, tt.wantChildren, got.children, "children")
			assert.Equal(t, tt.wantInfants, got.infants, "infants")
		})
	}
}

func TestMatcherSet_ResolvePassengers_Locales(t *testing.T) {
	tests := []struct {
		name         string
		lex          *lexicon.Lexicon
		text         string
		wantAdults   int
		wantChildren int
		wantInfants  int
	}{
		{
			name:         "french word numbers and roles",
			lex:          lexicon.French,
			text:         "deux adultes et un enfant",
			wantAdults:   2,
			wantChildren: 1,
		},
		{
			name:        "french infant",
			lex:         lexicon.French,
			text:        "1 bebe",
			wantAdults:  1,
			wantInfants: 1,
		},
		{
			name:       "french generic",
			lex:        lexicon.French,
			text:       "trois personnes",
			wantAdults: 3,
		},
		{
			name:         "italian roles",
			lex:          lexicon.Italian,
			text:         "due adulti e tre bambini",
			wantAdults:   2,
			wantChildren: 3,
		},
		{
			name:       "italian generic",
			lex:        lexicon.Italian,
			text:       "quattro persone",
			wantAdults: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newMatcherSet(tt.lex).resolvePassengers(tt.text)
			assert.Equal(t, tt.wantAdults, got.adults, "adults")
			assert.Equal(t, tt.wantChildren, got.children, "children")
			assert.Equal(t, tt.wantInfants, got.infants, "infants")
		})
	}
}
