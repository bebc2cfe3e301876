package render

import (
	"fmt"
	"image"

	"github.com/swdee/go-walkguide"
	"gocv.io/x/gocv"
)

// ThreatLabel returns the label text drawn above a threat
func ThreatLabel(t walkguide.Threat) string {
	return fmt.Sprintf("%s %d %s %s", t.Object.Class, t.Score, t.Relation, t.Distance)
}

// Threats renders the bounding boxes of the scored threats.  The primary
// threat, being the first in the slice, is drawn with double line thickness
func Threats(img *gocv.Mat, threats []walkguide.Threat, font Font,
	lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(threats))

	for i, t := range threats {

		useClr := ClassColor(t.Object.Class)
		thickness := lineThickness

		if i == 0 {
			thickness *= 2
		}

		rect := t.Object.Bounds
		gocv.Rectangle(img, rect, useClr, thickness)

		text := ThreatLabel(t)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// left align the label with the box
		labelPosition := image.Pt(rect.Min.X+font.LeftPad, rect.Min.Y-font.BottomPad)

		bRect := image.Rect(rect.Min.X,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			rect.Min.X+textSize.X+font.LeftPad+font.RightPad, rect.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on the
	// image and don't get overlapped by other boxes
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
