package walkguide

import (
	"cmp"
	"image"
	"slices"

	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
	"github.com/swdee/go-walkguide/spatial"
)

// SpatialAnalyzer provides the geometry classification the Engine scores
// threats with
type SpatialAnalyzer interface {
	MainWalkArea(objs []parser.Object) *spatial.WalkArea
	Relation(obj parser.Object, walk *mask.Mask) spatial.Relation
	Position(centroidX float64, frameWidth int) spatial.Position
	Distance(obj parser.Object, frameHeight int, onPrimaryPath bool) spatial.Distance
}

// Params defines the decision thresholds of the Engine
type Params struct {
	// MinWalkAreaRatio is the minimum walk area size as a fraction of the
	// frame area, below it the user is told to stop
	MinWalkAreaRatio float64
	// ThreatThreshold is the score an object must exceed to be a threat
	ThreatThreshold int
	// ClearPathAreaRatio is the walk area size, as a fraction of the frame
	// area, it must exceed for the path to be considered clear
	ClearPathAreaRatio float64
	// ClearPathStripRatio is the fraction of the central vertical strip of
	// the frame that must be walkable for the path to be considered clear
	ClearPathStripRatio float64
	// NotableScore is the score above which a threat not matched by a
	// specific rule still warrants a medium warning
	NotableScore int
	// Language of the decision messages
	Language Language
}

// DefaultParams returns an instance of Params configured with default values:
// - Minimum walk area: 5% of frame
// - Threat threshold: score > 15
// - Clear path: walk area > 20% of frame with > 40% of central strip walkable
// - Notable score: > 40
// - Language: English
func DefaultParams() Params {
	return Params{
		MinWalkAreaRatio:    0.05,
		ThreatThreshold:     15,
		ClearPathAreaRatio:  0.20,
		ClearPathStripRatio: 0.4,
		NotableScore:        40,
		Language:            English,
	}
}

// Engine produces navigation decisions from parsed frame objects.  It holds
// no per frame state and is safe for concurrent use
type Engine struct {
	params   Params
	analyzer SpatialAnalyzer
	rules    []Rule
}

// New returns an Engine using the given parameters and spatial analyzer.  If
// analyzer is nil a spatial.Analyzer with default parameters is used
func New(p Params, analyzer SpatialAnalyzer) *Engine {

	if analyzer == nil {
		analyzer = spatial.NewAnalyzer(spatial.DefaultParams())
	}

	if _, ok := messages[p.Language]; !ok {
		p.Language = English
	}

	return &Engine{
		params:   p,
		analyzer: analyzer,
		rules:    newRules(p),
	}
}

var defaultEngine = New(DefaultParams(), nil)

// Decide returns the navigation decision for a frame using the default
// Engine
func Decide(objs []parser.Object, width, height int) Decision {
	return defaultEngine.Decide(objs, width, height)
}

// Params returns the parameters the Engine was created with
func (e *Engine) Params() Params {
	return e.params
}

// Rules returns a copy of the ordered rule table applied to the primary
// threat
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Decide returns the navigation decision for the objects of a single frame
func (e *Engine) Decide(objs []parser.Object, width, height int) Decision {

	if width <= 0 || height <= 0 {
		return e.gateDecision(nil, "invalid frame size")
	}

	walk := e.analyzer.MainWalkArea(objs)
	minArea := float64(width*height) * e.params.MinWalkAreaRatio

	if walk == nil || float64(walk.Area) < minArea {
		return e.gateDecision(walk, "no viable walk area or walk area too small")
	}

	threats := e.Threats(objs, walk, width, height)

	if len(threats) == 0 {
		return e.clearDecision(walk, width, height)
	}

	return e.threatDecision(threats[0])
}

// gateDecision returns the critical stop decision for a frame without a
// usable walk area
func (e *Engine) gateDecision(walk *spatial.WalkArea, reason string) Decision {

	details := &Details{Reason: reason}

	if walk != nil {
		details.WalkAreaFound = true
		details.WalkAreaArea = walk.Area
	}

	return Decision{
		Instruction: Stop,
		Warning:     WarningCritical,
		Message:     messages[e.params.Language].noWalkArea,
		Details:     details,
	}
}

// Threats scores every obstacle and human against the walk area and returns
// the threats above the threshold ordered by descending score.  Threats with
// equal score keep their detection order
func (e *Engine) Threats(objs []parser.Object, walk *spatial.WalkArea,
	width, height int) []Threat {

	var threats []Threat

	for _, obj := range objs {

		if obj.Class != parser.ClassObstacle && obj.Class != parser.ClassHuman {
			continue
		}

		if !obj.HasMask() {
			continue
		}

		t := e.score(obj, walk, width, height)

		if t.Score > e.params.ThreatThreshold {
			threats = append(threats, t)
		}
	}

	slices.SortStableFunc(threats, func(a, b Threat) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return threats
}

// score classifies a single object and computes its threat score
func (e *Engine) score(obj parser.Object, walk *spatial.WalkArea,
	width, height int) Threat {

	var walkMask *mask.Mask

	if walk != nil {
		walkMask = walk.Mask
	}

	t := Threat{
		Object:   obj,
		Relation: e.analyzer.Relation(obj, walkMask),
		Position: e.analyzer.Position(obj.Centroid.X, width),
	}

	t.OnPrimaryPath = (t.Relation == spatial.Inside || t.Relation == spatial.Edge) &&
		t.Position == spatial.Center
	t.Distance = e.analyzer.Distance(obj, height, t.OnPrimaryPath)
	t.Score = ThreatScore(t)

	return t
}

// ThreatScore sums the score contributions of the threat's relation,
// distance, position and object class
func ThreatScore(t Threat) int {

	score := 0

	switch t.Relation {
	case spatial.Inside:
		score += 50
	case spatial.Edge:
		score += 30
	case spatial.NearOutside:
		score += 10
	}

	switch t.Distance {
	case spatial.Near:
		score += 40
	case spatial.Mid:
		score += 20
	}

	if t.Position == spatial.Center {
		score += 25
	} else if t.OnPrimaryPath {
		score += 15
	}

	if t.Object.Class == parser.ClassHuman {
		score += 10
	}

	return score
}

// clearDecision returns the decision for a frame with a walk area and no
// threats
func (e *Engine) clearDecision(walk *spatial.WalkArea, width, height int) Decision {

	msgs := messages[e.params.Language]
	frameArea := float64(width * height)

	if walk.Centroid.Y > float64(height)/2 &&
		float64(walk.Area) > frameArea*e.params.ClearPathAreaRatio &&
		centralStripRatio(walk.Mask, width, height) > e.params.ClearPathStripRatio {

		return Decision{
			Instruction: ProceedStraight,
			Warning:     WarningNone,
			Message:     msgs.clearPath,
		}
	}

	return Decision{
		Instruction: Caution,
		Warning:     WarningLow,
		Message:     msgs.noMajorThreat,
		Details: &Details{
			Reason: "clear of major threats, general caution advised",
		},
	}
}

// centralStripRatio returns the walkable fraction of the vertical strip
// spanning the middle third of the frame width
func centralStripRatio(walk *mask.Mask, width, height int) float64 {

	strip := image.Rect(width/3, 0, 2*width/3, height)
	size := strip.Dx() * strip.Dy()

	if size <= 0 {
		return 0
	}

	return float64(walk.CountIn(strip)) / float64(size)
}

// threatDecision applies the rule table to the primary threat
func (e *Engine) threatDecision(primary Threat) Decision {

	for _, r := range e.rules {

		if !r.Match(primary) {
			continue
		}

		return Decision{
			Instruction: r.Instruction,
			Warning:     r.Warning,
			Message:     r.message(primary, e.params.Language),
			Details: &Details{
				Reason: r.Reason,
				Threat: &primary,
				Rule:   r.Name,
			},
		}
	}

	// the rule table ends with a catch all so this is unreachable
	return Decision{
		Instruction: ProceedStraight,
		Warning:     WarningLow,
		Message:     messages[e.params.Language].lowThreat,
		Details:     &Details{Threat: &primary},
	}
}
