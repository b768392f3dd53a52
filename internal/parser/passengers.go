package parser

import (
	"regexp"
	"strconv"

	"github.com/ferry-search/voice-search-service/internal/domain"
)

// passengerCounts is the Quantity Resolver output.
type passengerCounts struct {
	adults   int
	children int
	infants  int
}

// resolvePassengers extracts per-role passenger counts. The first
// number-plus-role pairing wins for each role, roles contribute
// independently, and a generic "N people" sets the adult count only when
// no explicit role word appears anywhere in the text. Roles without any
// pairing keep the single-adult default.
func (ms *matcherSet) resolvePassengers(text string) passengerCounts {
	counts := passengerCounts{adults: domain.DefaultAdults}

	if n, ok := ms.firstCount(ms.adultCount, text); ok {
		counts.adults = n
	}
	if n, ok := ms.firstCount(ms.childCount, text); ok {
		counts.children = n
	}
	if n, ok := ms.firstCount(ms.infantCount, text); ok {
		counts.infants = n
	}

	if !ms.roleWords.MatchString(text) {
		if n, ok := ms.firstCount(ms.genericCount, text); ok {
			counts.adults = n
		}
	}
	return counts
}

func (ms *matcherSet) firstCount(re *regexp.Regexp, text string) (int, bool) {
	groups := re.FindStringSubmatch(text)
	if groups == nil {
		return 0, false
	}
	return ms.parseNumber(groups[1])
}

// parseNumber turns a quantity token into its value, accepting digits and
// the locale's spelled-out numbers.
func (ms *matcherSet) parseNumber(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	n, ok := ms.lex.NumberWords[token]
	return n, ok
}
