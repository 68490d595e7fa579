package game

import (
	"math"

	"github.com/charmbracelet/log"

	"chosenoffset.com/abacwrsed/internal/assets"
	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render"
	"chosenoffset.com/abacwrsed/internal/world/entity"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

// Player is the sprite moved by the arrow keys.
type Player struct {
	Rect  geom.Rect
	Image render.Image // Image shown this frame

	StandImage render.Image // Default idle image
	IdleImage  render.Image // Shown when not moving; swapped by barriers
	SadImage   render.Image
	JumpImage  render.Image
	WalkFrames []render.Image

	AnimationIndex int
	FacingLeft     bool
	AnimateWalk    bool

	Speed float64

	// Jump tuning is carried but not applied; movement has no gravity.
	JumpSpeed     float64
	VerticalSpeed float64
	Gravity       float64
	MinJumpSpeed  float64

	// PrevKeys is the key snapshot from the last Update.
	PrevKeys render.KeyState

	// OncePerFrame limits each obstacle to one effect per Update.
	OncePerFrame bool
	touched      map[*entity.Entity]bool

	EffectsApplied int // Non-empty effects applied so far
}

// NewPlayer creates a player centered on the configured spawn point.
func NewPlayer(cfg config.PlayerConfig, contact config.ContactConfig, sprites assets.PlayerSprites) *Player {
	w, h := sprites.Stand.Size()
	return &Player{
		Rect:         geom.CenteredRect(cfg.StartX, cfg.StartY, float64(w), float64(h)),
		Image:        sprites.Stand,
		StandImage:   sprites.Stand,
		IdleImage:    sprites.Stand,
		SadImage:     sprites.Sad,
		JumpImage:    sprites.Jump,
		WalkFrames:   sprites.Walk,
		AnimateWalk:  cfg.AnimateWalk,
		Speed:        cfg.Speed,
		JumpSpeed:    cfg.JumpSpeed,
		Gravity:      cfg.Gravity,
		MinJumpSpeed: cfg.MinJumpSpeed,
		OncePerFrame: contact.OncePerFrame,
	}
}

// Velocity returns the displacement requested by keys before collision.
// Opposing keys cancel; diagonal moves are scaled by 1/sqrt(2) so they are
// no faster than straight ones.
func Velocity(keys render.KeyState, speed float64) (dx, dy float64) {
	dx = keys.Axis(render.KeyRight, render.KeyLeft) * speed
	dy = keys.Axis(render.KeyDown, render.KeyUp) * speed
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}
	return dx, dy
}

// Update moves the player for one frame.
func (p *Player) Update(keys render.KeyState, obstacles level.ObstacleSet) {
	p.touched = nil

	dx, dy := Velocity(keys, p.Speed)

	if p.AnimateWalk && (dx != 0 || dy != 0) {
		if dx < 0 {
			p.FacingLeft = true
		} else if dx > 0 {
			p.FacingLeft = false
		}
		p.walkAnimation()
	}
	if dx == 0 && dy == 0 {
		p.Image = p.IdleImage
	}

	p.PrevKeys = keys
	p.Move(dx, dy, obstacles)
}

// Move displaces the player by the collision-resolved (dx, dy).
func (p *Player) Move(dx, dy float64, obstacles level.ObstacleSet) {
	dx, dy = Resolve(p.Rect, dx, dy, obstacles, p.contact)
	p.Rect = p.Rect.Move(dx, dy)
}

func (p *Player) contact(o *entity.Entity) {
	if o.Effect == entity.EffectNone {
		return
	}
	if p.OncePerFrame {
		if p.touched[o] {
			return
		}
		if p.touched == nil {
			p.touched = make(map[*entity.Entity]bool)
		}
		p.touched[o] = true
	}
	p.ApplyEffect(o.Effect)
}

// ApplyEffect applies a barrier's contact effect to the player.
func (p *Player) ApplyEffect(e entity.Effect) {
	switch e {
	case entity.EffectSetIdleSad:
		p.IdleImage = p.SadImage
	case entity.EffectSetIdleHappy:
		p.IdleImage = p.StandImage
	default:
		return
	}
	p.EffectsApplied++
	log.Debug("contact effect", "effect", e)
}

// Flipped reports whether the current image is drawn mirrored.
func (p *Player) Flipped() bool {
	return p.AnimateWalk && p.FacingLeft && p.Image != p.IdleImage
}

func (p *Player) walkAnimation() {
	if len(p.WalkFrames) == 0 {
		return
	}
	p.Image = p.WalkFrames[p.AnimationIndex]
	p.AnimationIndex = (p.AnimationIndex + 1) % len(p.WalkFrames)
}
