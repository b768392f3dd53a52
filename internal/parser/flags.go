package parser

// tripFlags is the Trip/Vehicle Flags Resolver output. roundTrip and
// oneWay are reported separately; their precedence is settled during
// assembly, where an explicit one-way keyword overrides everything else.
type tripFlags struct {
	roundTrip bool
	oneWay    bool
	vehicle   bool
}

// resolveFlags detects trip-type and vehicle keywords as whole words.
func (ms *matcherSet) resolveFlags(text string) tripFlags {
	var f tripFlags
	for _, m := range ms.flags.FindAll(text) {
		switch ms.flagKinds[m.Pattern()] {
		case flagRoundTrip:
			f.roundTrip = true
		case flagOneWay:
			f.oneWay = true
		case flagVehicle:
			f.vehicle = true
		}
	}
	return f
}
