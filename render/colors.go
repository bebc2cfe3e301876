package render

import (
	"image/color"

	"github.com/swdee/go-walkguide"
	"github.com/swdee/go-walkguide/parser"
)

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// WalkAreaColor is used to paint the walk area overlay
	WalkAreaColor = color.RGBA{R: 72, G: 249, B: 10, A: 255} // #48F90A

	// classColors are the outline colors for each object class
	classColors = map[string]color.RGBA{
		parser.ClassObstacle: {R: 255, G: 112, B: 31, A: 255}, // #FF701F
		parser.ClassHuman:    {R: 0, G: 194, B: 255, A: 255},  // #00C2FF
	}

	// otherClassColor is used for classes not in classColors
	otherClassColor = color.RGBA{R: 203, G: 56, B: 255, A: 255} // #CB38FF

	// warningColors are the decision banner colors for each warning level
	warningColors = map[walkguide.WarningLevel]color.RGBA{
		walkguide.WarningNone:     {R: 26, G: 147, B: 52, A: 255},  // #1A9334
		walkguide.WarningLow:      {R: 207, G: 210, B: 49, A: 255}, // #CFD231
		walkguide.WarningMedium:   {R: 255, G: 178, B: 29, A: 255}, // #FFB21D
		walkguide.WarningHigh:     {R: 255, G: 112, B: 31, A: 255}, // #FF701F
		walkguide.WarningCritical: {R: 255, G: 56, B: 56, A: 255},  // #FF3838
	}
)

// ClassColor returns the outline color used for an object class
func ClassColor(class string) color.RGBA {

	if clr, ok := classColors[class]; ok {
		return clr
	}

	return otherClassColor
}

// WarningColor returns the banner color used for a warning level
func WarningColor(level walkguide.WarningLevel) color.RGBA {

	if clr, ok := warningColors[level]; ok {
		return clr
	}

	return White
}
