package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
	"gocv.io/x/gocv"
)

// MaskToMat returns a single channel Mat sharing a copy of the mask pixels,
// the caller must Close it
func MaskToMat(m *mask.Mask) (gocv.Mat, error) {

	mat, err := gocv.NewMatFromBytes(m.Height(), m.Width(), gocv.MatTypeCV8U,
		m.Clone().Pix())

	if err != nil {
		return gocv.NewMat(), fmt.Errorf("error creating mask Mat: %w", err)
	}

	return mat, nil
}

// WalkArea renders the walk area mask as a transparent overlay on top of the
// whole image
func WalkArea(img *gocv.Mat, m *mask.Mask, alpha float32) {
	Overlay(img, m, WalkAreaColor, alpha)
}

// Overlay blends clr into every pixel of the image occupied in the mask
func Overlay(img *gocv.Mat, m *mask.Mask, clr color.RGBA, alpha float32) {

	if m == nil {
		return
	}

	width := img.Cols()
	height := img.Rows()

	if width != m.Width() || height != m.Height() {
		return
	}

	pix := m.Pix()

	// it is too slow to manipulate pixel by pixel using GoCV due to slowness
	// over CGO.  So we copy the bytes from the source image and manipulate
	// the bytes directly before copying back to a Mat
	imgData := img.ToBytes()

	for j := 0; j < height; j++ {
		for k := 0; k < width; k++ {

			if pix[j*width+k] == 0 {
				continue
			}

			pixelPos := j*width*3 + k*3

			b, g, r := imgData[pixelPos+0], imgData[pixelPos+1], imgData[pixelPos+2]

			// BGR ordering of the Mat
			imgData[pixelPos+0] = uint8(float32(b)*(1-alpha) + float32(clr.B)*alpha)
			imgData[pixelPos+1] = uint8(float32(g)*(1-alpha) + float32(clr.G)*alpha)
			imgData[pixelPos+2] = uint8(float32(r)*(1-alpha) + float32(clr.R)*alpha)
		}
	}

	tmpImg, _ := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, imgData)
	defer tmpImg.Close()
	tmpImg.CopyTo(img)
}

// Outlines draws the mask contour of each object, objects without a mask get
// their bounding box drawn instead.  Contours smaller than minArea are
// treated as noise and skipped
func Outlines(img *gocv.Mat, objs []parser.Object, minArea float64,
	lineThickness int) error {

	for _, obj := range objs {

		clr := ClassColor(obj.Class)

		if !obj.HasMask() {
			gocv.Rectangle(img, obj.Bounds, clr, lineThickness)
			continue
		}

		if err := outline(img, obj.Mask, clr, minArea, lineThickness); err != nil {
			return fmt.Errorf("object %d: %w", obj.ID, err)
		}
	}

	return nil
}

// outline draws the external contours of a single mask
func outline(img *gocv.Mat, m *mask.Mask, clr color.RGBA, minArea float64,
	lineThickness int) error {

	maskMat, err := MaskToMat(m)

	if err != nil {
		return err
	}

	defer maskMat.Close()

	contours := gocv.FindContours(maskMat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		// filter out small contours picked up from aliasing/noise in binary mask
		if gocv.ContourArea(contour) < minArea {
			continue
		}

		approx := gocv.ApproxPolyDP(contour, 3, true)

		ptsVec := gocv.NewPointsVector()
		ptsVec.Append(approx)

		gocv.Polylines(img, ptsVec, true, clr, lineThickness)

		approx.Close()
		ptsVec.Close()
	}

	return nil
}

// boxLabel defines where a label should be rendered on the source image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}
