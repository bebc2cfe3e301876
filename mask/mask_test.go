package mask

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRects(t *testing.T) {

	tests := []struct {
		name   string
		rects  []image.Rectangle
		count  int
		bounds image.Rectangle
	}{
		{"empty", nil, 0, image.Rectangle{}},
		{"single", []image.Rectangle{image.Rect(300, 400, 340, 460)}, 40 * 60,
			image.Rect(300, 400, 340, 460)},
		{"clipped", []image.Rectangle{image.Rect(620, 470, 700, 500)}, 20 * 10,
			image.Rect(620, 470, 640, 480)},
		{"overlapping", []image.Rectangle{image.Rect(0, 0, 10, 10),
			image.Rect(5, 5, 15, 15)}, 175, image.Rect(0, 0, 15, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := FromRects(640, 480, tc.rects...)
			assert.Equal(t, tc.count, m.Count())
			assert.Equal(t, tc.bounds, m.Bounds())
		})
	}
}

func TestFromBytes(t *testing.T) {

	_, err := FromBytes(4, 4, make([]uint8, 15))
	assert.Error(t, err)

	_, err = FromBytes(0, 4, nil)
	assert.Error(t, err)

	pix := make([]uint8, 16)
	pix[5] = 3

	m, err := FromBytes(4, 4, pix)
	require.NoError(t, err)
	assert.True(t, m.At(1, 1))
	assert.False(t, m.At(0, 0))
	assert.False(t, m.At(-1, 9))
}

func TestSetAndCountIn(t *testing.T) {

	m := New(10, 10)
	m.Set(2, 3, true)
	m.Set(7, 7, true)
	m.Set(20, 20, true)

	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 1, m.CountIn(image.Rect(0, 0, 5, 5)))
	assert.Equal(t, 2, m.CountIn(image.Rect(-5, -5, 50, 50)))

	m.Set(2, 3, false)
	assert.Equal(t, 1, m.Count())
}

func TestOverlapAndUnion(t *testing.T) {

	a := FromRects(100, 100, image.Rect(0, 0, 50, 50))
	b := FromRects(100, 100, image.Rect(25, 25, 75, 75))

	assert.Equal(t, 625, a.Overlap(b))
	assert.Equal(t, 625, b.Overlap(a))
	assert.Equal(t, 100, a.OverlapIn(b, image.Rect(40, 40, 60, 60)))

	c := a.Clone()
	c.Union(b)

	assert.Equal(t, 2500+2500-625, c.Count())
	assert.Equal(t, 2500, a.Count(), "clone must not share storage")
}

func TestProjections(t *testing.T) {

	m := FromRects(8, 6, image.Rect(2, 1, 4, 4))
	cols, rows := m.Projections()

	assert.Equal(t, []float64{0, 0, 3, 3, 0, 0, 0, 0}, cols)
	assert.Equal(t, []float64{0, 2, 2, 2, 0, 0}, rows)
}

func TestPool(t *testing.T) {

	p := NewPool()

	m := p.Get(64, 48)
	require.Equal(t, 64, m.Width())
	require.Equal(t, 48, m.Height())

	m.Fill(image.Rect(0, 0, 64, 48))
	p.Put(m)

	// recycled masks are always handed out cleared
	m2 := p.Get(64, 48)
	assert.Equal(t, 0, m2.Count())

	other := p.Get(32, 32)
	assert.Equal(t, 32, other.Width())

	assert.Panics(t, func() { p.Get(0, 10) })

	p.Put(nil)
}
