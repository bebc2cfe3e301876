package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Caption renders text with a TrueType font.  Unlike the Hershey fonts used
// by GoCV it supports any glyph the font provides, such as Chinese
// characters
type Caption struct {
	face font.Face
}

// NewCaption loads the TrueType font file at the given point size.  When
// fontFile is empty the bundled Go Regular font is used, which only covers
// Latin scripts
func NewCaption(fontFile string, size float64) (*Caption, error) {

	fontBytes := goregular.TTF

	if fontFile != "" {
		var err error
		fontBytes, err = os.ReadFile(fontFile)

		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &Caption{face: face}, nil
}

// Close releases the font face
func (c *Caption) Close() error {
	return c.face.Close()
}

// Measure returns the width in pixels of the rendered text
func (c *Caption) Measure(text string) int {
	return font.MeasureString(c.face, text).Ceil()
}

// LineHeight returns the height in pixels of a line of text
func (c *Caption) LineHeight() int {
	m := c.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Image returns a transparent image of the given size with text drawn with
// its baseline starting at x,y
func (c *Caption) Image(width, height int, text string, x, y int,
	clr color.RGBA) *image.RGBA {

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	return rgba
}

// Draw writes text on to the image with its baseline starting at x,y
func (c *Caption) Draw(img *gocv.Mat, text string, x, y int,
	clr color.RGBA) error {

	rgba := c.Image(img.Cols(), img.Rows(), text, x, y, clr)

	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(),
		gocv.MatTypeCV8UC4, rgba.Pix)

	if err != nil || imgRGBA.Empty() {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	textImg := gocv.NewMat()
	defer textImg.Close()

	gocv.CvtColor(imgRGBA, &textImg, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, textImg, 1.0, 0, img)

	return nil
}
