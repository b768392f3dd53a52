package parser

import (
	"sort"
	"strconv"
	"time"

	"github.com/ferry-search/voice-search-service/internal/infrastructure/timeutil"
)

// dateMention is one resolved temporal expression in normalized text.
type dateMention struct {
	start     int
	end       int
	date      time.Time
	isWeekday bool
	isReturn  bool
}

// dateResolution is the Date Resolver output. Dates are ISO calendar
// strings; the round-trip hint fires when two independent expressions or
// an explicit return marker were found.
type dateResolution struct {
	departureDate *string
	returnDate    *string
	roundTripHint bool
}

// resolveDates collects every temporal expression, anchors it to the
// reference instant and assigns the departure and return dates. A return
// marker binds the next expression after it; explicit bindings win over
// position. Without a marker the first mention is the departure and the
// second, if any, the return.
func (ms *matcherSet) resolveDates(text string, now time.Time) dateResolution {
	now = timeutil.StartOfDay(now)
	mentions := ms.keywordMentions(text, now)
	mentions = append(mentions, ms.absoluteMentions(text, now)...)
	if len(mentions) == 0 {
		return dateResolution{}
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].start < mentions[j].start })
	mentions = dropShadowedWeekdays(mentions)
	ms.bindReturnMarkers(text, mentions)

	var departure, ret *time.Time
	bound := 0
	for i := range mentions {
		if mentions[i].isReturn {
			bound++
			if ret == nil {
				ret = &mentions[i].date
			}
		}
	}
	for i := range mentions {
		if mentions[i].isReturn {
			continue
		}
		if departure == nil {
			departure = &mentions[i].date
		} else if ret == nil {
			ret = &mentions[i].date
		}
	}

	res := dateResolution{roundTripHint: len(mentions) >= 2 || bound > 0}
	if departure != nil {
		res.departureDate = isoDatePtr(*departure)
	}
	if ret != nil {
		res.returnDate = isoDatePtr(*ret)
	}
	return res
}

// keywordMentions resolves relative-day phrases and bare weekday names.
func (ms *matcherSet) keywordMentions(text string, now time.Time) []dateMention {
	var mentions []dateMention
	for _, m := range ms.dateWords.FindAll(text) {
		kw := ms.dateKeywords[m.Pattern()]
		mention := dateMention{start: m.Start(), end: m.End()}
		if kw.isWeekday {
			mention.isWeekday = true
			mention.date = nextWeekday(now, kw.weekday)
		} else {
			mention.date = now.AddDate(0, 0, kw.offset)
		}
		mentions = append(mentions, mention)
	}
	return mentions
}

// absoluteMentions resolves "<month> <day>" and "<day> <month>" forms to
// that day in the reference year. Out-of-range day numbers are ignored as
// non-dates rather than reported as errors.
func (ms *matcherSet) absoluteMentions(text string, now time.Time) []dateMention {
	var mentions []dateMention
	for _, idx := range ms.absoluteDates.FindAllStringSubmatchIndex(text, -1) {
		monthTok := groupText(text, idx, absGroupMonthFirstMonth)
		dayTok := groupText(text, idx, absGroupMonthFirstDay)
		if monthTok == "" {
			monthTok = groupText(text, idx, absGroupDayFirstMonth)
			dayTok = groupText(text, idx, absGroupDayFirstDay)
		}

		month, ok := ms.lex.Months[monthTok]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(dayTok)
		if err != nil || day < 1 || day > 31 {
			continue
		}

		mentions = append(mentions, dateMention{
			start: idx[0],
			end:   idx[1],
			date:  time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location()),
		})
	}
	return mentions
}

// nextWeekday returns the next occurrence of target strictly after now: a
// weekday named on its own day resolves a full week ahead, never today.
func nextWeekday(now time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(now.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return now.AddDate(0, 0, delta)
}

// dropShadowedWeekdays removes a weekday mention sitting directly next to
// another date expression: "monday july 21" names one date, not two.
// Mentions must already be sorted by position.
func dropShadowedWeekdays(mentions []dateMention) []dateMention {
	if len(mentions) < 2 {
		return mentions
	}
	keep := make([]dateMention, 0, len(mentions))
	for i, m := range mentions {
		if m.isWeekday {
			if i > 0 && !mentions[i-1].isWeekday && mentions[i-1].end+1 == m.start {
				continue
			}
			if i < len(mentions)-1 && !mentions[i+1].isWeekday && m.end+1 == mentions[i+1].start {
				continue
			}
		}
		keep = append(keep, m)
	}
	return keep
}

// bindReturnMarkers flags, for each return marker, the first still
// unbound mention after it.
func (ms *matcherSet) bindReturnMarkers(text string, mentions []dateMention) {
	for _, m := range ms.markers.FindAll(text) {
		if ms.markerKinds[m.Pattern()] != markerReturn {
			continue
		}
		for i := range mentions {
			if mentions[i].start >= m.End() && !mentions[i].isReturn {
				mentions[i].isReturn = true
				break
			}
		}
	}
}

func groupText(text string, idx []int, group int) string {
	lo, hi := idx[2*group], idx[2*group+1]
	if lo < 0 {
		return ""
	}
	return text[lo:hi]
}

func isoDatePtr(t time.Time) *string {
	s := timeutil.FormatDate(t)
	return &s
}
