package walkguide

import (
	"fmt"

	"github.com/swdee/go-walkguide/spatial"
)

// Rule is a single entry of the decision rule table.  Rules are evaluated in
// order against the primary threat and the first one to match decides the
// Instruction and WarningLevel
type Rule struct {
	// Name identifies the rule in decision details
	Name string
	// Match reports whether the rule applies to the threat
	Match func(t Threat) bool
	// Instruction and Warning are the outcome of the rule
	Instruction Instruction
	Warning     WarningLevel
	// Reason is an optional explanation recorded in decision details
	Reason string
	// message renders the decision message for the threat
	message func(t Threat, lang Language) string
}

// match returns a rule guard for an exact distance and relation, and for the
// given position when pos is non zero
func match(dist spatial.Distance, pos spatial.Position,
	rels ...spatial.Relation) func(t Threat) bool {

	return func(t Threat) bool {

		if t.Distance != dist {
			return false
		}

		if pos != 0 && t.Position != pos {
			return false
		}

		for _, r := range rels {
			if t.Relation == r {
				return true
			}
		}

		return false
	}
}

// format returns a message renderer choosing the template for the language
// and filling it from the threat with the given argument function
func format(pick func(m messageSet) string,
	args func(t Threat, lang Language) []any) func(t Threat, lang Language) string {

	return func(t Threat, lang Language) string {

		tmpl := pick(messages[lang])

		if args == nil {
			return tmpl
		}

		return fmt.Sprintf(tmpl, args(t, lang)...)
	}
}

// classArg renders the threat object class
func classArg(t Threat, lang Language) []any {
	return []any{lang.className(t.Object.Class)}
}

// posClassArg renders the threat position and object class
func posClassArg(t Threat, lang Language) []any {
	return []any{lang.positionName(t.Position), lang.className(t.Object.Class)}
}

// notableArg renders the threat position, object class and distance
func notableArg(t Threat, lang Language) []any {
	return []any{lang.positionName(t.Position), lang.className(t.Object.Class),
		lang.distanceName(t.Distance)}
}

// newRules builds the ordered decision rule table
func newRules(p Params) []Rule {

	notable := p.NotableScore

	return []Rule{
		{
			Name:        "near-inside-center",
			Match:       match(spatial.Near, spatial.Center, spatial.Inside),
			Instruction: Stop,
			Warning:     WarningCritical,
			message:     format(func(m messageSet) string { return m.stopAhead }, classArg),
		},
		{
			Name:        "near-inside-left",
			Match:       match(spatial.Near, spatial.Left, spatial.Inside),
			Instruction: VeerRight,
			Warning:     WarningHigh,
			message:     format(func(m messageSet) string { return m.veerRight }, classArg),
		},
		{
			Name:        "near-inside-right",
			Match:       match(spatial.Near, spatial.Right, spatial.Inside),
			Instruction: VeerLeft,
			Warning:     WarningHigh,
			message:     format(func(m messageSet) string { return m.veerLeft }, classArg),
		},
		{
			Name:        "near-inside",
			Match:       match(spatial.Near, 0, spatial.Inside),
			Instruction: SlowDown,
			Warning:     WarningHigh,
			message:     format(func(m messageSet) string { return m.slowNear }, classArg),
		},
		{
			Name:        "near-edge",
			Match:       match(spatial.Near, 0, spatial.Edge, spatial.NearOutside),
			Instruction: Caution,
			Warning:     WarningMedium,
			message:     format(func(m messageSet) string { return m.edgeNear }, posClassArg),
		},
		{
			Name:        "mid-inside",
			Match:       match(spatial.Mid, 0, spatial.Inside),
			Instruction: SlowDown,
			Warning:     WarningMedium,
			message:     format(func(m messageSet) string { return m.slowMid }, posClassArg),
		},
		{
			Name:        "mid-edge",
			Match:       match(spatial.Mid, 0, spatial.Edge, spatial.NearOutside),
			Instruction: Caution,
			Warning:     WarningLow,
			message:     format(func(m messageSet) string { return m.edgeMid }, posClassArg),
		},
		{
			Name: "notable-score",
			Match: func(t Threat) bool {
				return t.Score > notable
			},
			Instruction: Caution,
			Warning:     WarningMedium,
			message:     format(func(m messageSet) string { return m.notable }, notableArg),
		},
		{
			Name: "fallback",
			Match: func(t Threat) bool {
				return true
			},
			Instruction: ProceedStraight,
			Warning:     WarningLow,
			Reason:      "low level threats detected, proceed with general caution",
			message:     format(func(m messageSet) string { return m.lowThreat }, nil),
		},
	}
}
