package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "plain tag", tag: "en", want: "en"},
		{name: "upper case", tag: "FR", want: "fr"},
		{name: "region suffix dash", tag: "fr-FR", want: "fr"},
		{name: "region suffix underscore", tag: "en_US", want: "en"},
		{name: "surrounding whitespace", tag: "  it  ", want: "it"},
		{name: "empty", tag: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.tag))
		})
	}
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want *Lexicon
	}{
		{name: "english", tag: "en", want: English},
		{name: "french", tag: "fr", want: French},
		{name: "italian", tag: "it", want: Italian},
		{name: "french with region", tag: "fr-FR", want: French},
		{name: "upper case", tag: "IT", want: Italian},
		{name: "unknown falls back to english", tag: "de", want: English},
		{name: "empty falls back to english", tag: "", want: English},
		{name: "garbage falls back to english", tag: "???", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForLocale(tt.tag)
			require.NotNil(t, got)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestSupportedLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "fr", "it"}, SupportedLocales())
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("fr-FR"))
	assert.True(t, IsSupported("IT"))
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported(""))
}

func TestAll_OrderedByTag(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.Equal(t, "en", all[0].Tag)
	assert.Equal(t, "fr", all[1].Tag)
	assert.Equal(t, "it", all[2].Tag)
}

// Every table entry must already be in normal form, otherwise lookups
// against normalized text can never match it.
func TestLexiconEntries_AreNormalForm(t *testing.T) {
	for _, lex := range All() {
		t.Run(lex.Tag, func(t *testing.T) {
			for _, entry := range allEntries(lex) {
				assert.Equal(t, Normalize(entry), entry, "entry %q is not normal form", entry)
				assert.NotEmpty(t, entry)
			}
		})
	}
}

func TestPortAliases_ResolveToCanonicalCodes(t *testing.T) {
	canonical := map[domain.PortCode]bool{
		domain.PortTunis:         true,
		domain.PortMarseille:     true,
		domain.PortGenoa:         true,
		domain.PortCivitavecchia: true,
		domain.PortPalermo:       true,
		domain.PortTrapani:       true,
		domain.PortSalerno:       true,
		domain.PortZarzis:        true,
		domain.PortSfax:          true,
	}

	for _, lex := range All() {
		t.Run(lex.Tag, func(t *testing.T) {
			covered := map[domain.PortCode]bool{}
			for alias, code := range lex.PortAliases {
				assert.True(t, canonical[code], "alias %q maps to unknown code %q", alias, code)
				covered[code] = true
			}
			// Each locale must be able to name at least the core network.
			for _, code := range []domain.PortCode{
				domain.PortTunis, domain.PortMarseille, domain.PortGenoa,
				domain.PortCivitavecchia, domain.PortPalermo, domain.PortTrapani,
			} {
				assert.True(t, covered[code], "no alias for %q in %q", code, lex.Tag)
			}
		})
	}
}

func TestLexicons_HaveCompleteDateTables(t *testing.T) {
	for _, lex := range All() {
		t.Run(lex.Tag, func(t *testing.T) {
			assert.Len(t, lex.Weekdays, 7)
			assert.Len(t, lex.Months, 12, "every calendar month must be nameable")

			seen := map[int]bool{}
			for _, m := range lex.Months {
				seen[int(m)] = true
			}
			assert.Len(t, seen, 12)

			assert.Contains(t, lex.RelativeDays, lex.tomorrowWord())
		})
	}
}

// tomorrowWord is a test helper keyed off the locale tag.
func (l *Lexicon) tomorrowWord() string {
	switch l.Tag {
	case "fr":
		return "demain"
	case "it":
		return "domani"
	default:
		return "tomorrow"
	}
}

func allEntries(lex *Lexicon) []string {
	var out []string
	for alias := range lex.PortAliases {
		out = append(out, alias)
	}
	out = append(out, lex.FromMarkers...)
	out = append(out, lex.ToMarkers...)
	out = append(out, lex.ReturnMarkers...)
	for phrase := range lex.RelativeDays {
		out = append(out, phrase)
	}
	for day := range lex.Weekdays {
		out = append(out, day)
	}
	for month := range lex.Months {
		out = append(out, month)
	}
	out = append(out, lex.OrdinalSuffixes...)
	out = append(out, lex.DateLinkWords...)
	for word := range lex.NumberWords {
		out = append(out, word)
	}
	out = append(out, lex.AdultWords...)
	out = append(out, lex.ChildWords...)
	out = append(out, lex.InfantWords...)
	out = append(out, lex.GenericWords...)
	out = append(out, lex.RoundTripPhrases...)
	out = append(out, lex.OneWayPhrases...)
	out = append(out, lex.VehicleWords...)
	return out
}
