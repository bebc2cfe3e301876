package parser

import (
	"image"

	"github.com/swdee/go-walkguide/mask"
)

// Object class names the decision engine understands
const (
	ClassWalkArea = "walk_area"
	ClassObstacle = "obstacle"
	ClassHuman    = "human"
)

// BoxRect are the dimensions of the bounding box of a detected object
type BoxRect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Rect returns the bounding box as an image.Rectangle
func (b BoxRect) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Center returns the center point of the bounding box
func (b BoxRect) Center() Point {
	return Point{
		X: float64(b.Left+b.Right) / 2,
		Y: float64(b.Top+b.Bottom) / 2,
	}
}

// Point is a location in pixel space
type Point struct {
	X float64
	Y float64
}

// Detection defines the attributes of a single raw object detection as
// produced by an instance segmentation model
type Detection struct {
	// ClassID is the line number in the labels file the Model was trained on
	// defining the Class of the detected object
	ClassID int
	// ClassName is the label of the object.  When empty it is resolved from
	// ClassID using the Parser labels
	ClassName string
	// Box are the bounding box dimensions of the object location
	Box BoxRect
	// Probability is the confidence score of the object detected
	Probability float32
	// Mask is the segmentation mask of the object, it may be nil
	Mask *mask.Mask
}

// Object is a validated detection record with its derived geometry.  It is
// not modified after being returned by the Parser
type Object struct {
	// ID is a unique ID assigned to the parsed object
	ID int64
	// Class is the class name of the object
	Class string
	// ClassID is the model class index of the object
	ClassID int
	// Confidence is the detection probability in the range [0,1]
	Confidence float32
	// Box is the bounding box reported by the detector
	Box BoxRect
	// Mask is the segmentation mask, nil when the detector provided none
	Mask *mask.Mask
	// Area is the number of occupied pixels in Mask
	Area int
	// Centroid is the mean pixel coordinate of the mask, or the center of the
	// bounding box when there is no mask
	Centroid Point
	// Bounds is the tight rectangle around the mask pixels, or the bounding
	// box when there is no mask
	Bounds image.Rectangle
}

// HasMask reports whether the object carries a usable segmentation mask
func (o Object) HasMask() bool {
	return o.Mask != nil && o.Area > 0
}
