package spatial

import "fmt"

// Relation classifies how an object sits relative to the walk area
type Relation int

const (
	// Inside means the object lies within the walk area
	Inside Relation = iota + 1
	// Edge means the object partially overlaps the walk area
	Edge
	// NearOutside means the object is outside but close to the walk area
	NearOutside
	// Outside means the object is away from the walk area
	Outside
)

func (r Relation) String() string {
	switch r {
	case Inside:
		return "INSIDE"
	case Edge:
		return "EDGE"
	case NearOutside:
		return "NEAR_OUTSIDE"
	case Outside:
		return "OUTSIDE"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler
func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Position is the horizontal zone of the frame an object occupies
type Position int

const (
	Left Position = iota + 1
	Center
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "LEFT"
	case Center:
		return "CENTER"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Distance is a coarse estimate of how far an object is from the camera
type Distance int

const (
	Near Distance = iota + 1
	Mid
	Far
)

func (d Distance) String() string {
	switch d {
	case Near:
		return "NEAR"
	case Mid:
		return "MID"
	case Far:
		return "FAR"
	default:
		return fmt.Sprintf("Distance(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Distance) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
