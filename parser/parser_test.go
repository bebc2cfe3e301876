package parser

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-walkguide/mask"
)

const (
	frameW = 640
	frameH = 480
)

func TestParseConfidenceFilter(t *testing.T) {

	dets := []Detection{
		{ClassID: 0, Probability: 0.9, Mask: mask.FromRects(frameW, frameH, image.Rect(0, 240, 640, 480))},
		{ClassID: 1, Probability: 0.3, Mask: mask.FromRects(frameW, frameH, image.Rect(300, 400, 340, 460))},
		{ClassID: 2, Probability: 0.5, Mask: mask.FromRects(frameW, frameH, image.Rect(400, 380, 450, 450))},
	}

	objs, err := Parse(dets, frameW, frameH, DefaultConfidence)
	require.NoError(t, err)
	require.Len(t, objs, 2)

	assert.Equal(t, ClassWalkArea, objs[0].Class)
	assert.Equal(t, ClassHuman, objs[1].Class)
	assert.Less(t, objs[0].ID, objs[1].ID)
}

func TestParseGeometry(t *testing.T) {

	dets := []Detection{
		{
			ClassName:   ClassObstacle,
			Probability: 0.8,
			Box:         BoxRect{Left: 300, Top: 400, Right: 340, Bottom: 460},
			Mask:        mask.FromRects(frameW, frameH, image.Rect(300, 400, 340, 460)),
		},
	}

	objs, err := Parse(dets, frameW, frameH, DefaultConfidence)
	require.NoError(t, err)
	require.Len(t, objs, 1)

	obj := objs[0]
	assert.Equal(t, 40*60, obj.Area)
	assert.InDelta(t, 319.5, obj.Centroid.X, 1e-9)
	assert.InDelta(t, 429.5, obj.Centroid.Y, 1e-9)
	assert.Equal(t, image.Rect(300, 400, 340, 460), obj.Bounds)
	assert.True(t, obj.HasMask())
}

func TestParseWithoutMask(t *testing.T) {

	dets := []Detection{
		{ClassID: 1, Probability: 0.7, Box: BoxRect{Left: 10, Top: 20, Right: 30, Bottom: 60}},
		{ClassID: 1, Probability: 0.7, Box: BoxRect{Left: 10, Top: 20, Right: 30, Bottom: 60},
			Mask: mask.New(frameW, frameH)},
	}

	objs, err := Parse(dets, frameW, frameH, DefaultConfidence)
	require.NoError(t, err)
	require.Len(t, objs, 2)

	for _, obj := range objs {
		assert.Equal(t, 0, obj.Area)
		assert.False(t, obj.HasMask())
		assert.Equal(t, Point{X: 20, Y: 40}, obj.Centroid)
		assert.Equal(t, image.Rect(10, 20, 30, 60), obj.Bounds)
	}
}

func TestParseErrors(t *testing.T) {

	_, err := Parse(nil, 0, 480, DefaultConfidence)
	assert.ErrorIs(t, err, ErrFrameSize)

	_, err = Parse([]Detection{{ClassID: 9, Probability: 1}}, frameW, frameH, DefaultConfidence)
	assert.ErrorIs(t, err, ErrUnknownClass)

	_, err = Parse([]Detection{{ClassID: 0, Probability: 1, Mask: mask.New(320, 240)}},
		frameW, frameH, DefaultConfidence)
	assert.ErrorIs(t, err, ErrMaskSize)
}

func TestParserCustomLabels(t *testing.T) {

	p := NewParser([]string{"background", ClassHuman})

	objs, err := p.Parse([]Detection{{ClassID: 1, Probability: 0.9}}, frameW, frameH, 0)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, ClassHuman, objs[0].Class)
}

func TestLoadLabels(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")
	err := os.WriteFile(file, []byte("walk_area\n obstacle \n\nhuman\n"), 0o644)
	require.NoError(t, err)

	labels, err := LoadLabels(file)
	require.NoError(t, err)
	assert.Equal(t, []string{ClassWalkArea, ClassObstacle, ClassHuman}, labels)

	_, err = LoadLabels(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSplitSegMask(t *testing.T) {

	w, h := 8, 4
	seg := make([]uint8, w*h)
	seg[0] = 1
	seg[1] = 1
	seg[9] = 2
	seg[31] = 7 // out of range id is ignored

	pool := mask.NewPool()

	masks, err := SplitSegMask(seg, w, h, 2, pool)
	require.NoError(t, err)
	require.Len(t, masks, 2)

	assert.Equal(t, 2, masks[0].Count())
	assert.Equal(t, 1, masks[1].Count())
	assert.True(t, masks[1].At(1, 1))

	_, err = SplitSegMask(seg[:5], w, h, 2, nil)
	assert.ErrorIs(t, err, ErrMaskSize)
}

func TestIDGenerator(t *testing.T) {

	gen := NewIDGenerator()

	assert.Equal(t, int64(1), gen.GetNext())
	assert.Equal(t, int64(2), gen.GetNext())
}
