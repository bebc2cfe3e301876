// Package mask provides the binary occupancy grid used to describe where an
// object is located within a camera frame.
package mask

import (
	"fmt"
	"image"
)

// Mask is a binary occupancy grid sized to the frame dimensions.  Each pixel
// is stored as a single byte in row major order where any non-zero value
// means the pixel is occupied
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// New returns an empty Mask of the given frame dimensions
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// FromBytes wraps an existing row major byte buffer as a Mask without
// copying it
func FromBytes(width, height int, pix []uint8) (*Mask, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", width, height)
	}

	if len(pix) != width*height {
		return nil, fmt.Errorf("mask buffer length %d does not match %dx%d",
			len(pix), width, height)
	}

	return &Mask{width: width, height: height, pix: pix}, nil
}

// FromRects returns a Mask with every pixel inside the given rectangles set
func FromRects(width, height int, rects ...image.Rectangle) *Mask {
	m := New(width, height)

	for _, r := range rects {
		m.Fill(r)
	}

	return m
}

// Width of the mask in pixels
func (m *Mask) Width() int {
	return m.width
}

// Height of the mask in pixels
func (m *Mask) Height() int {
	return m.height
}

// Rect returns the full frame rectangle covered by the mask
func (m *Mask) Rect() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Pix returns the underlying pixel buffer
func (m *Mask) Pix() []uint8 {
	return m.pix
}

// At reports whether the pixel at x,y is occupied.  Coordinates outside the
// mask are never occupied
func (m *Mask) At(x, y int) bool {

	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}

	return m.pix[y*m.width+x] != 0
}

// Set marks the pixel at x,y as occupied or free
func (m *Mask) Set(x, y int, v bool) {

	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}

	if v {
		m.pix[y*m.width+x] = 1
	} else {
		m.pix[y*m.width+x] = 0
	}
}

// Fill sets every pixel in rectangle r, clipped to the mask
func (m *Mask) Fill(r image.Rectangle) {

	r = r.Intersect(m.Rect())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.pix[y*m.width : (y+1)*m.width]

		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 1
		}
	}
}

// Reset clears all pixels
func (m *Mask) Reset() {
	for i := range m.pix {
		m.pix[i] = 0
	}
}

// Count returns the number of occupied pixels
func (m *Mask) Count() int {

	n := 0

	for _, v := range m.pix {
		if v != 0 {
			n++
		}
	}

	return n
}

// CountIn returns the number of occupied pixels inside rectangle r, clipped
// to the mask
func (m *Mask) CountIn(r image.Rectangle) int {

	r = r.Intersect(m.Rect())
	n := 0

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.pix[y*m.width : (y+1)*m.width]

		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x] != 0 {
				n++
			}
		}
	}

	return n
}

// Bounds returns the smallest rectangle containing every occupied pixel.  An
// empty mask returns the zero rectangle
func (m *Mask) Bounds() image.Rectangle {

	minX, minY := m.width, m.height
	maxX, maxY := -1, -1

	for y := 0; y < m.height; y++ {
		row := m.pix[y*m.width : (y+1)*m.width]

		for x, v := range row {
			if v == 0 {
				continue
			}

			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		return image.Rectangle{}
	}

	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Overlap returns the number of pixels occupied in both masks.  Masks of
// different dimensions are compared over their common area
func (m *Mask) Overlap(o *Mask) int {

	r := m.Rect().Intersect(o.Rect())
	n := 0

	for y := r.Min.Y; y < r.Max.Y; y++ {
		a := m.pix[y*m.width:]
		b := o.pix[y*o.width:]

		for x := r.Min.X; x < r.Max.X; x++ {
			if a[x] != 0 && b[x] != 0 {
				n++
			}
		}
	}

	return n
}

// OverlapIn returns the number of pixels occupied in both masks restricted to
// rectangle r
func (m *Mask) OverlapIn(o *Mask, r image.Rectangle) int {

	r = r.Intersect(m.Rect()).Intersect(o.Rect())
	n := 0

	for y := r.Min.Y; y < r.Max.Y; y++ {
		a := m.pix[y*m.width:]
		b := o.pix[y*o.width:]

		for x := r.Min.X; x < r.Max.X; x++ {
			if a[x] != 0 && b[x] != 0 {
				n++
			}
		}
	}

	return n
}

// Union sets every pixel that is occupied in o
func (m *Mask) Union(o *Mask) {

	r := m.Rect().Intersect(o.Rect())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		a := m.pix[y*m.width:]
		b := o.pix[y*o.width:]

		for x := r.Min.X; x < r.Max.X; x++ {
			if b[x] != 0 {
				a[x] = 1
			}
		}
	}
}

// Clone returns a deep copy of the mask
func (m *Mask) Clone() *Mask {
	c := &Mask{
		width:  m.width,
		height: m.height,
		pix:    make([]uint8, len(m.pix)),
	}

	copy(c.pix, m.pix)

	return c
}

// Projections returns the number of occupied pixels in each column and in
// each row of the mask
func (m *Mask) Projections() (cols, rows []float64) {

	cols = make([]float64, m.width)
	rows = make([]float64, m.height)

	for y := 0; y < m.height; y++ {
		row := m.pix[y*m.width : (y+1)*m.width]

		for x, v := range row {
			if v != 0 {
				cols[x]++
				rows[y]++
			}
		}
	}

	return cols, rows
}
