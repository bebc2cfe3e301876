package render

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings for threat labels
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
	}
}

// BannerFont returns font settings for the decision banner
func BannerFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.6,
		Color:     Black,
		Thickness: 2,
		LineType:  gocv.LineAA,
		LeftPad:   8,
		RightPad:  8,
		TopPad:    8,
		BottomPad: 10,
	}
}
