package walkguide

import (
	"fmt"

	"github.com/swdee/go-walkguide/parser"
	"github.com/swdee/go-walkguide/spatial"
)

// Instruction is the navigation action advised to the user
type Instruction int

const (
	ProceedStraight Instruction = iota + 1
	TurnLeft
	TurnRight
	VeerLeft
	VeerRight
	SlowDown
	Stop
	Caution
	SearchingPath
)

func (i Instruction) String() string {
	switch i {
	case ProceedStraight:
		return "PROCEED_STRAIGHT"
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	case VeerLeft:
		return "VEER_LEFT"
	case VeerRight:
		return "VEER_RIGHT"
	case SlowDown:
		return "SLOW_DOWN"
	case Stop:
		return "STOP"
	case Caution:
		return "CAUTION"
	case SearchingPath:
		return "SEARCHING_PATH"
	default:
		return fmt.Sprintf("Instruction(%d)", int(i))
	}
}

// MarshalText implements encoding.TextMarshaler
func (i Instruction) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// WarningLevel is the urgency attached to an Instruction
type WarningLevel int

const (
	WarningNone WarningLevel = iota + 1
	WarningLow
	WarningMedium
	WarningHigh
	WarningCritical
)

func (w WarningLevel) String() string {
	switch w {
	case WarningNone:
		return "NONE"
	case WarningLow:
		return "LOW"
	case WarningMedium:
		return "MEDIUM"
	case WarningHigh:
		return "HIGH"
	case WarningCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("WarningLevel(%d)", int(w))
	}
}

// MarshalText implements encoding.TextMarshaler
func (w WarningLevel) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Threat is a scored obstacle or human that may block the user's path
type Threat struct {
	// Object is the parsed detection the threat was scored from
	Object parser.Object
	// Relation of the object to the walk area
	Relation spatial.Relation
	// Position is the horizontal zone the object centroid lies in
	Position spatial.Position
	// Distance is the estimated distance category of the object
	Distance spatial.Distance
	// OnPrimaryPath is set when the object is on the walk area directly ahead
	OnPrimaryPath bool
	// Score is the threat score, higher is more dangerous
	Score int
}

// Details carries diagnostic information explaining a Decision
type Details struct {
	// Reason is a short explanation of why the decision was made
	Reason string
	// WalkAreaFound reports whether a walk area was detected, only set by
	// the walk area gate
	WalkAreaFound bool
	// WalkAreaArea is the pixel area of the walk area, only set by the walk
	// area gate
	WalkAreaArea int
	// Threat is the primary threat the decision was based on
	Threat *Threat
	// Rule is the name of the rule table entry that matched
	Rule string
}

// Decision is the navigation advice for a single frame
type Decision struct {
	Instruction Instruction
	Warning     WarningLevel
	// Message is the human readable advice
	Message string
	// Details is nil when there is nothing further to report
	Details *Details
}

func (d Decision) String() string {
	return fmt.Sprintf("Decision(instruction=%q, warning=%q, message=%q)",
		d.Instruction, d.Warning, d.Message)
}
