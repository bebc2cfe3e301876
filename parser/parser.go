// Package parser turns raw instance segmentation detections into validated
// object records carrying the geometry the decision engine relies on.
package parser

import (
	"errors"
	"fmt"

	"github.com/swdee/go-walkguide/mask"
	"gonum.org/v1/gonum/stat"
)

// DefaultConfidence is the default minimum probability a detection needs to
// be kept
const DefaultConfidence = 0.5

var (
	// ErrFrameSize is returned when the frame dimensions are not positive
	ErrFrameSize = errors.New("invalid frame size")
	// ErrMaskSize is returned when a detection mask does not match the frame
	ErrMaskSize = errors.New("mask does not match frame size")
	// ErrUnknownClass is returned when a detection class can not be resolved
	// to a name
	ErrUnknownClass = errors.New("unknown class")
)

// Parser converts detections into Objects
type Parser struct {
	labels []string
	idGen  *IDGenerator
}

// NewParser returns a Parser resolving class names with the given labels.
// When labels is nil DefaultLabels are used
func NewParser(labels []string) *Parser {

	if labels == nil {
		labels = DefaultLabels
	}

	return &Parser{
		labels: labels,
		idGen:  NewIDGenerator(),
	}
}

// Parse parses detections using DefaultLabels
func Parse(dets []Detection, width, height int,
	threshold float32) ([]Object, error) {
	return NewParser(nil).Parse(dets, width, height, threshold)
}

// Parse filters the detections by confidence threshold and returns the
// remaining ones as Objects in their original order
func (p *Parser) Parse(dets []Detection, width, height int,
	threshold float32) ([]Object, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}

	objs := make([]Object, 0, len(dets))

	for i, det := range dets {

		if det.Probability < threshold {
			continue
		}

		obj, err := p.parseOne(det, width, height)

		if err != nil {
			return nil, fmt.Errorf("detection %d: %w", i, err)
		}

		objs = append(objs, obj)
	}

	return objs, nil
}

// parseOne validates a single detection and derives its geometry
func (p *Parser) parseOne(det Detection, width, height int) (Object, error) {

	name, err := p.className(det)

	if err != nil {
		return Object{}, err
	}

	obj := Object{
		ID:         p.idGen.GetNext(),
		Class:      name,
		ClassID:    det.ClassID,
		Confidence: det.Probability,
		Box:        det.Box,
		Mask:       det.Mask,
		Centroid:   det.Box.Center(),
		Bounds:     det.Box.Rect(),
	}

	if det.Mask == nil {
		return obj, nil
	}

	if det.Mask.Width() != width || det.Mask.Height() != height {
		return Object{}, fmt.Errorf("%w: mask %dx%d, frame %dx%d", ErrMaskSize,
			det.Mask.Width(), det.Mask.Height(), width, height)
	}

	obj.Area = det.Mask.Count()

	if obj.Area == 0 {
		return obj, nil
	}

	obj.Centroid = Centroid(det.Mask)
	obj.Bounds = det.Mask.Bounds()

	return obj, nil
}

// className resolves the class name of the detection
func (p *Parser) className(det Detection) (string, error) {

	if det.ClassName != "" {
		return det.ClassName, nil
	}

	if det.ClassID < 0 || det.ClassID >= len(p.labels) {
		return "", fmt.Errorf("%w: class id %d", ErrUnknownClass, det.ClassID)
	}

	return p.labels[det.ClassID], nil
}

// Centroid returns the mean coordinate of the occupied mask pixels, computed
// as the weighted mean of the column and row projections
func Centroid(m *mask.Mask) Point {

	cols, rows := m.Projections()

	return Point{
		X: stat.Mean(indices(len(cols)), cols),
		Y: stat.Mean(indices(len(rows)), rows),
	}
}

// indices returns the slice 0..n-1 as float64 values
func indices(n int) []float64 {

	idx := make([]float64, n)

	for i := range idx {
		idx[i] = float64(i)
	}

	return idx
}

// SplitSegMask converts a combined instance segment mask, where a pixel value
// of k marks the k-th detection and 0 is background, into one Mask per
// detection.  When pool is not nil the masks are taken from it
func SplitSegMask(segMask []uint8, width, height, count int,
	pool *mask.Pool) ([]*mask.Mask, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}

	if len(segMask) != width*height {
		return nil, fmt.Errorf("%w: segment buffer %d, frame %dx%d",
			ErrMaskSize, len(segMask), width, height)
	}

	masks := make([]*mask.Mask, count)

	for i := range masks {
		if pool != nil {
			masks[i] = pool.Get(width, height)
		} else {
			masks[i] = mask.New(width, height)
		}
	}

	for idx, v := range segMask {

		if v == 0 || int(v) > count {
			continue
		}

		masks[v-1].Pix()[idx] = 1
	}

	return masks, nil
}
