// Package geom provides the axis-aligned geometry shared by the world,
// the player and the camera.
package geom

// Vec represents a 2D point or displacement in world space
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect creates a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Move returns a copy of r shifted by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// SetLeft moves the rect so its left edge is at x. Size is kept.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so its right edge is at x. Size is kept.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so its top edge is at y. Size is kept.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so its bottom edge is at y. Size is kept.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// Intersects reports whether r and other overlap. Rectangles that only
// share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// StepToward moves v one unit toward zero without crossing it.
func StepToward(v float64) float64 {
	switch {
	case v >= 1:
		return v - 1
	case v <= -1:
		return v + 1
	default:
		return 0
	}
}
