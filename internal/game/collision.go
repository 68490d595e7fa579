package game

import (
	"math"

	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/world/entity"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

// Collide returns the first obstacle that overlaps r, or nil.
func Collide(r geom.Rect, obstacles level.ObstacleSet) *entity.Entity {
	for _, o := range obstacles {
		if r.Intersects(o.Rect) {
			return o
		}
	}
	return nil
}

// Resolve shrinks the displacement (dx, dy) of r until it no longer overlaps
// any obstacle. The vertical axis is backed off first, one unit per step,
// then the horizontal axis against the already reduced vertical move. When
// an axis is blocked, the sub-unit gap the whole steps leave is closed so r
// ends flush against the obstacle.
//
// onContact, if set, is called with the obstacle hit by every rejected
// trial, so a single call can report the same obstacle several times.
func Resolve(r geom.Rect, dx, dy float64, obstacles level.ObstacleSet, onContact func(*entity.Entity)) (float64, float64) {
	hit := func(trial geom.Rect) *entity.Entity {
		o := Collide(trial, obstacles)
		if o != nil && onContact != nil {
			onContact(o)
		}
		return o
	}

	wantY := dy
	var blocker *entity.Entity
	for dy != 0 {
		o := hit(r.Move(0, dy))
		if o == nil {
			break
		}
		blocker = o
		dy = geom.StepToward(dy)
	}
	if blocker != nil {
		d := flushMove(r.Y, r.H, blocker.Rect.Top(), blocker.Rect.Bottom(), wantY)
		if closer(d, dy, wantY) && Collide(r.Move(0, d), obstacles) == nil {
			dy = d
		}
	}

	wantX := dx
	blocker = nil
	for dx != 0 {
		o := hit(r.Move(dx, dy))
		if o == nil {
			break
		}
		blocker = o
		dx = geom.StepToward(dx)
	}
	if blocker != nil {
		d := flushMove(r.X, r.W, blocker.Rect.Left(), blocker.Rect.Right(), wantX)
		if closer(d, dx, wantX) && Collide(r.Move(d, dy), obstacles) == nil {
			dx = d
		}
	}
	return dx, dy
}

// flushMove returns the move along one axis that puts the span starting at
// pos against the obstacle span [lo, hi), approaching in the direction of
// want.
func flushMove(pos, size, lo, hi, want float64) float64 {
	if want > 0 {
		return (lo - size) - pos
	}
	return hi - pos
}

// closer reports whether d goes further than got without passing want.
func closer(d, got, want float64) bool {
	return d*want > 0 && math.Abs(d) > math.Abs(got) && math.Abs(d) <= math.Abs(want)
}
