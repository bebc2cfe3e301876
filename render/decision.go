package render

import (
	"fmt"
	"image"

	"github.com/swdee/go-walkguide"
	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
	"gocv.io/x/gocv"
)

// Scene holds everything rendered for a single frame
type Scene struct {
	// Objects are the parsed objects of the frame
	Objects []parser.Object
	// WalkArea is the walk area mask, it may be nil
	WalkArea *mask.Mask
	// Threats are the scored threats, primary threat first
	Threats []walkguide.Threat
	// Decision is the navigation decision of the frame
	Decision walkguide.Decision
}

// Headline returns the first banner line for a decision
func Headline(d walkguide.Decision) string {
	return fmt.Sprintf("%s [%s]", d.Instruction, d.Warning)
}

// Decision renders a banner across the top of the image colored by the
// warning level, showing the instruction and message.  When caption is nil
// the message is drawn with the Hershey font, which only supports ASCII
func Decision(img *gocv.Mat, d walkguide.Decision, font Font,
	caption *Caption) error {

	headline := Headline(d)
	headSize := gocv.GetTextSize(headline, font.Face, font.Scale, font.Thickness)

	lineHeight := headSize.Y

	if caption != nil {
		lineHeight = caption.LineHeight()
	}

	bannerHeight := font.TopPad + headSize.Y + font.BottomPad + lineHeight + font.BottomPad

	gocv.Rectangle(img, image.Rect(0, 0, img.Cols(), bannerHeight),
		WarningColor(d.Warning), -1)

	headPos := image.Pt(font.LeftPad, font.TopPad+headSize.Y)
	gocv.PutTextWithParams(img, headline, headPos, font.Face, font.Scale,
		font.Color, font.Thickness, font.LineType, false)

	msgY := headPos.Y + font.BottomPad + lineHeight

	if caption != nil {
		return caption.Draw(img, d.Message, font.LeftPad, msgY, White)
	}

	gocv.PutTextWithParams(img, d.Message, image.Pt(font.LeftPad, msgY),
		font.Face, font.Scale*0.8, font.Color, 1, font.LineType, false)

	return nil
}

// Draw renders the whole scene on to the image
func Draw(img *gocv.Mat, s Scene, caption *Caption) error {

	WalkArea(img, s.WalkArea, 0.4)

	if err := Outlines(img, s.Objects, 50, 1); err != nil {
		return err
	}

	Threats(img, s.Threats, DefaultFont(), 2)

	return Decision(img, s.Decision, BannerFont(), caption)
}

// PaintSceneToFile paints the scene on a black image of the given size and
// saves it to file
func PaintSceneToFile(filename string, width, height int, s Scene,
	caption *Caption) error {

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width,
		gocv.MatTypeCV8UC3)
	defer img.Close()

	if err := Draw(&img, s, caption); err != nil {
		return err
	}

	if gocv.IMWrite(filename, img) {
		return nil
	}

	return fmt.Errorf("failed to write to file %s", filename)
}
