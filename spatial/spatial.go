// Package spatial classifies the geometry of parsed objects relative to the
// frame and to the walkable ground region.
package spatial

import (
	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
)

// Params defines the thresholds used by the Analyzer
type Params struct {
	// CenterBandMin and CenterBandMax bound the central horizontal zone of the
	// frame as fractions of the frame width
	CenterBandMin float64
	CenterBandMax float64
	// InsideRatio is the minimum fraction of an object's pixels that must lie
	// on the walk area for the object to be classed as Inside
	InsideRatio float64
	// NearMargin is the distance in pixels around an object's bounds searched
	// for walk area pixels when the object does not overlap the walk area
	NearMargin int
	// NearRatio and MidRatio are the minimum bottom edge positions, as a
	// fraction of frame height, for an object off the primary path to be Near
	// or Mid distance
	NearRatio float64
	MidRatio  float64
	// PathNearRatio and PathMidRatio are the same thresholds applied to
	// objects on the primary path
	PathNearRatio float64
	PathMidRatio  float64
}

// DefaultParams returns an instance of Params configured with default values
// for a forward facing camera at chest height:
// - Center band: 40% to 60% of frame width
// - Inside ratio: 0.8
// - Near margin: 20 pixels
// - Off path distance: Near from 85%, Mid from 65% of frame height
// - On path distance: Near from 80%, Mid from 60% of frame height
func DefaultParams() Params {
	return Params{
		CenterBandMin: 0.4,
		CenterBandMax: 0.6,
		InsideRatio:   0.8,
		NearMargin:    20,
		NearRatio:     0.85,
		MidRatio:      0.65,
		PathNearRatio: 0.80,
		PathMidRatio:  0.60,
	}
}

// Analyzer performs the spatial classification of objects.  It holds no
// mutable state and is safe for concurrent use
type Analyzer struct {
	// Params are the classification thresholds
	Params Params
}

// NewAnalyzer returns an Analyzer using the given parameters
func NewAnalyzer(p Params) *Analyzer {
	return &Analyzer{
		Params: p,
	}
}

// WalkArea is the walkable ground region of a frame
type WalkArea struct {
	// Mask is the occupancy grid of the walk area
	Mask *mask.Mask
	// Area is the number of occupied pixels in Mask
	Area int
	// Centroid is the mean pixel coordinate of Mask
	Centroid parser.Point
}

// MainWalkArea returns the walk area of the frame.  When several walk area
// objects were detected their masks are merged into one region.  Nil is
// returned when no walk area with a mask is present
func (a *Analyzer) MainWalkArea(objs []parser.Object) *WalkArea {

	var walk []parser.Object

	for _, obj := range objs {
		if obj.Class == parser.ClassWalkArea && obj.HasMask() {
			walk = append(walk, obj)
		}
	}

	switch len(walk) {
	case 0:
		return nil

	case 1:
		return &WalkArea{
			Mask:     walk[0].Mask,
			Area:     walk[0].Area,
			Centroid: walk[0].Centroid,
		}
	}

	merged := walk[0].Mask.Clone()

	for _, obj := range walk[1:] {
		merged.Union(obj.Mask)
	}

	return &WalkArea{
		Mask:     merged,
		Area:     merged.Count(),
		Centroid: parser.Centroid(merged),
	}
}

// Relation classifies the object against the walk area mask
func (a *Analyzer) Relation(obj parser.Object, walk *mask.Mask) Relation {

	if walk == nil || !obj.HasMask() {
		return Outside
	}

	overlap := obj.Mask.OverlapIn(walk, obj.Bounds)
	ratio := float64(overlap) / float64(obj.Area)

	if ratio >= a.Params.InsideRatio {
		return Inside
	}

	if overlap > 0 {
		return Edge
	}

	grown := obj.Bounds.Inset(-a.Params.NearMargin)

	if walk.CountIn(grown) > 0 {
		return NearOutside
	}

	return Outside
}

// Position classifies the horizontal zone of the given centroid x coordinate
func (a *Analyzer) Position(centroidX float64, frameWidth int) Position {

	w := float64(frameWidth)

	if centroidX < w*a.Params.CenterBandMin {
		return Left
	}

	if centroidX > w*a.Params.CenterBandMax {
		return Right
	}

	return Center
}

// Distance estimates how far the object is from the bottom edge of its
// bounds.  Objects on the primary path use closer thresholds so they are
// reported as nearer sooner
func (a *Analyzer) Distance(obj parser.Object, frameHeight int,
	onPrimaryPath bool) Distance {

	nearRatio, midRatio := a.Params.NearRatio, a.Params.MidRatio

	if onPrimaryPath {
		nearRatio, midRatio = a.Params.PathNearRatio, a.Params.PathMidRatio
	}

	bottom := float64(obj.Bounds.Max.Y) / float64(frameHeight)

	switch {
	case bottom >= nearRatio:
		return Near
	case bottom >= midRatio:
		return Mid
	default:
		return Far
	}
}
