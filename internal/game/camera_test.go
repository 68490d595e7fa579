package game

import (
	"testing"

	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render"
)

func newTestCamera(strategies ...config.CameraStrategy) *Camera {
	cfg := config.Default()
	if len(strategies) > 0 {
		cfg.Camera.Strategies = strategies
	}
	return NewCamera(cfg)
}

func TestNewCameraBox(t *testing.T) {
	c := newTestCamera()

	expected := geom.NewRect(200, 100, 1520, 880)
	if c.Box != expected {
		t.Errorf("Expected box %+v, got %+v", expected, c.Box)
	}
	if c.Offset != (geom.Vec{}) {
		t.Errorf("Expected zero offset, got %+v", c.Offset)
	}
}

func TestFollowBoxInside(t *testing.T) {
	c := newTestCamera(config.CameraBox)
	before := c.Box

	c.Update(geom.NewRect(500, 500, 66, 92), render.Keys())

	if c.Box != before {
		t.Errorf("Expected box unchanged, got %+v", c.Box)
	}
	if c.Offset != (geom.Vec{}) {
		t.Errorf("Expected zero offset, got %+v", c.Offset)
	}
}

func TestFollowBoxCrossing(t *testing.T) {
	tests := []struct {
		name   string
		target geom.Rect
		box    geom.Vec
		offset geom.Vec
	}{
		{"right", geom.NewRect(1700, 500, 100, 50), geom.Vec{X: 280, Y: 100}, geom.Vec{X: 80, Y: 0}},
		{"left", geom.NewRect(150, 500, 66, 92), geom.Vec{X: 150, Y: 100}, geom.Vec{X: -50, Y: 0}},
		{"top", geom.NewRect(500, 40, 66, 92), geom.Vec{X: 200, Y: 40}, geom.Vec{X: 0, Y: -60}},
		{"bottom", geom.NewRect(500, 950, 66, 92), geom.Vec{X: 200, Y: 162}, geom.Vec{X: 0, Y: 62}},
		{"corner", geom.NewRect(100, 20, 66, 92), geom.Vec{X: 100, Y: 20}, geom.Vec{X: -100, Y: -80}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCamera(config.CameraBox)
			c.Update(tc.target, render.Keys())

			if c.Box.X != tc.box.X || c.Box.Y != tc.box.Y {
				t.Errorf("Expected box at %+v, got (%v, %v)", tc.box, c.Box.X, c.Box.Y)
			}
			if c.Box.W != 1520 || c.Box.H != 880 {
				t.Errorf("Expected box size kept, got %vx%v", c.Box.W, c.Box.H)
			}
			if c.Offset != tc.offset {
				t.Errorf("Expected offset %+v, got %+v", tc.offset, c.Offset)
			}
		})
	}
}

func TestFollowBoxHysteresis(t *testing.T) {
	c := newTestCamera(config.CameraBox)

	c.Update(geom.NewRect(1700, 500, 100, 50), render.Keys())
	pushed := c.Box

	// Moving back inside leaves the box where it was pushed.
	c.Update(geom.NewRect(1000, 500, 100, 50), render.Keys())
	if c.Box != pushed {
		t.Errorf("Expected box to stay at %+v, got %+v", pushed, c.Box)
	}
}

func TestCenterOn(t *testing.T) {
	c := newTestCamera(config.CameraCenter)

	c.Update(geom.CenteredRect(960, 540, 66, 92), render.Keys())
	if c.Offset != (geom.Vec{}) {
		t.Errorf("Expected zero offset, got %+v", c.Offset)
	}

	c.Update(geom.CenteredRect(1000, 600, 66, 92), render.Keys())
	if c.Offset != (geom.Vec{X: 40, Y: 60}) {
		t.Errorf("Expected offset (40, 60), got %+v", c.Offset)
	}
}

func TestPan(t *testing.T) {
	c := newTestCamera(config.CameraKeyboard)
	target := geom.NewRect(500, 500, 66, 92)

	c.Update(target, render.Keys(render.KeyD, render.KeyS))
	if c.Box.X != 205 || c.Box.Y != 105 {
		t.Errorf("Expected box at (205, 105), got (%v, %v)", c.Box.X, c.Box.Y)
	}
	if c.Offset != (geom.Vec{X: 5, Y: 5}) {
		t.Errorf("Expected offset (5, 5), got %+v", c.Offset)
	}

	c.Update(target, render.Keys(render.KeyA, render.KeyD, render.KeyW))
	if c.Box.X != 205 || c.Box.Y != 100 {
		t.Errorf("Expected box at (205, 100), got (%v, %v)", c.Box.X, c.Box.Y)
	}

	// Arrow keys never pan.
	c.Update(target, render.Keys(render.KeyRight, render.KeyDown))
	if c.Box.X != 205 || c.Box.Y != 100 {
		t.Errorf("Expected arrow keys to leave the box, got (%v, %v)", c.Box.X, c.Box.Y)
	}
}

func TestLastStrategyWins(t *testing.T) {
	target := geom.NewRect(1700, 500, 100, 50)

	boxLast := newTestCamera(config.CameraCenter, config.CameraBox)
	boxLast.Update(target, render.Keys())
	if boxLast.Offset != (geom.Vec{X: 80, Y: 0}) {
		t.Errorf("Expected the box offset, got %+v", boxLast.Offset)
	}

	centerLast := newTestCamera(config.CameraBox, config.CameraCenter)
	centerLast.Update(target, render.Keys())
	if centerLast.Offset != (geom.Vec{X: 1750 - 960, Y: 525 - 540}) {
		t.Errorf("Expected the center offset, got %+v", centerLast.Offset)
	}
	// The box is still pushed even though its offset was overwritten.
	if centerLast.Box.X != 280 {
		t.Errorf("Expected box pushed to 280, got %v", centerLast.Box.X)
	}
}

func TestDefaultStrategiesEndWithKeyboard(t *testing.T) {
	c := newTestCamera()
	target := geom.NewRect(1700, 500, 100, 50)

	c.Update(target, render.Keys(render.KeyD))

	// center, then box pushes to 280, then D pans to 285.
	if c.Box.X != 285 {
		t.Errorf("Expected box at 285, got %v", c.Box.X)
	}
	if c.Offset != (geom.Vec{X: 85, Y: 0}) {
		t.Errorf("Expected offset (85, 0), got %+v", c.Offset)
	}
}

func TestToScreen(t *testing.T) {
	c := newTestCamera()
	c.Offset = geom.Vec{X: 10, Y: -20}

	got := c.ToScreen(geom.NewRect(100, 100, 70, 70))
	if got != (geom.Vec{X: 90, Y: 120}) {
		t.Errorf("Expected (90, 120), got %+v", got)
	}
}
