package spatial

import (
	"math"

	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
)

// MaskIoU returns the Intersection over Union of two masks
func MaskIoU(a, b *mask.Mask) float64 {

	if a == nil || b == nil {
		return 0
	}

	intersection := a.Overlap(b)
	union := a.Count() + b.Count() - intersection

	if union <= 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// BoxIoU works out the Intersection over Union (IoU) value of two bounding
// boxes using inclusive pixel coordinates
func BoxIoU(a, b parser.BoxRect) float64 {

	w := math.Max(0, math.Min(float64(a.Right), float64(b.Right))-math.Max(float64(a.Left), float64(b.Left))+1)
	h := math.Max(0, math.Min(float64(a.Bottom), float64(b.Bottom))-math.Max(float64(a.Top), float64(b.Top))+1)
	intersection := w * h

	// calculate the area of both rectangles with added 1 for inclusive pixel
	// calculation
	area0 := float64(a.Right-a.Left+1) * float64(a.Bottom-a.Top+1)
	area1 := float64(b.Right-b.Left+1) * float64(b.Bottom-b.Top+1)

	union := area0 + area1 - intersection

	if union <= 0 {
		return 0
	}

	return intersection / union
}
