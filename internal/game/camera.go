package game

import (
	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render"
)

// Camera tracks the world-to-screen offset. The camera box keeps its
// position between frames and only moves when pushed by the target or
// panned by the keyboard.
type Camera struct {
	Offset     geom.Vec  // Subtracted from world positions when drawing
	Box        geom.Rect // Dead zone the target can move in freely
	Margins    config.Margins
	PanSpeed   float64
	HalfW      float64 // Half the screen size
	HalfH      float64
	Strategies []config.CameraStrategy
}

// NewCamera creates a camera whose box sits at the configured margins.
func NewCamera(cfg config.Config) *Camera {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	m := cfg.Camera.Margins

	strategies := make([]config.CameraStrategy, len(cfg.Camera.Strategies))
	copy(strategies, cfg.Camera.Strategies)

	return &Camera{
		Box:        geom.NewRect(m.Left, m.Top, w-(m.Left+m.Right), h-(m.Top+m.Bottom)),
		Margins:    m,
		PanSpeed:   cfg.Camera.PanSpeed,
		HalfW:      w / 2,
		HalfH:      h / 2,
		Strategies: strategies,
	}
}

// Update runs every configured strategy in order. Each one overwrites the
// offset, so the last strategy decides what is drawn. panKeys is the
// target's key snapshot from the previous frame.
func (c *Camera) Update(target geom.Rect, panKeys render.KeyState) {
	for _, s := range c.Strategies {
		switch s {
		case config.CameraCenter:
			c.CenterOn(target)
		case config.CameraBox:
			c.FollowBox(target)
		case config.CameraKeyboard:
			c.Pan(panKeys)
		}
	}
}

// CenterOn keeps target in the middle of the screen.
func (c *Camera) CenterOn(target geom.Rect) {
	center := target.Center()
	c.Offset = geom.Vec{X: center.X - c.HalfW, Y: center.Y - c.HalfH}
}

// FollowBox pushes each box edge the target crosses, then derives the
// offset from the box.
func (c *Camera) FollowBox(target geom.Rect) {
	if target.Left() < c.Box.Left() {
		c.Box.SetLeft(target.Left())
	}
	if target.Right() > c.Box.Right() {
		c.Box.SetRight(target.Right())
	}
	if target.Top() < c.Box.Top() {
		c.Box.SetTop(target.Top())
	}
	if target.Bottom() > c.Box.Bottom() {
		c.Box.SetBottom(target.Bottom())
	}
	c.offsetFromBox()
}

// Pan shifts the box by PanSpeed for each held W/A/S/D key, then derives
// the offset from the box.
func (c *Camera) Pan(keys render.KeyState) {
	if keys.Pressed(render.KeyA) {
		c.Box.X -= c.PanSpeed
	}
	if keys.Pressed(render.KeyD) {
		c.Box.X += c.PanSpeed
	}
	if keys.Pressed(render.KeyW) {
		c.Box.Y -= c.PanSpeed
	}
	if keys.Pressed(render.KeyS) {
		c.Box.Y += c.PanSpeed
	}
	c.offsetFromBox()
}

func (c *Camera) offsetFromBox() {
	c.Offset = geom.Vec{X: c.Box.Left() - c.Margins.Left, Y: c.Box.Top() - c.Margins.Top}
}

// ToScreen returns where the top-left corner of r is drawn.
func (c *Camera) ToScreen(r geom.Rect) geom.Vec {
	return r.TopLeft().Sub(c.Offset)
}
