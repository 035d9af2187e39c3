package model

import "math"

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Smaller Y edge; the top row in image coordinates
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from an [x1, y1, x2, y2] corner
// pair. Swapped corners are normalized.
func NewBBoxFromCorners(x1, y1, x2, y2 float64) BBox {
	return BBox{
		X:      math.Min(x1, x2),
		Y:      math.Min(y1, y2),
		Width:  math.Abs(x2 - x1),
		Height: math.Abs(y2 - y1),
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the lower Y edge
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the upper Y edge
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Bottom(), other.Bottom())
	right := math.Min(b.Right(), other.Right())
	top := math.Min(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IoU returns the intersection over union of two boxes, between 0 and 1.
// Empty boxes never overlap anything.
func (b BBox) IoU(other BBox) float64 {
	if b.IsEmpty() || other.IsEmpty() {
		return 0
	}

	// Areas come from the edges on both sides: identical boxes give exactly 1.
	w := math.Min(b.Right(), other.Right()) - math.Max(b.Left(), other.Left())
	h := math.Min(b.Top(), other.Top()) - math.Max(b.Bottom(), other.Bottom())
	if w <= 0 || h <= 0 {
		return 0
	}

	inter := w * h
	union := b.edgeArea() + other.edgeArea() - inter
	if union <= 0 {
		return 0
	}
	return math.Min(1, inter/union)
}

func (b BBox) edgeArea() float64 {
	return (b.Right() - b.Left()) * (b.Top() - b.Bottom())
}
