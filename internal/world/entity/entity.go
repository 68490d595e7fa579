// Package entity defines the static sprites the level is built from: the
// closed set of obstacle kinds, their per-kind data and the contact effects
// barriers apply to the player.
package entity

import (
	"fmt"

	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render"
)

// Kind identifies an obstacle variant.
type Kind int

const (
	KindWallH                Kind = iota // Horizontal wall segment
	KindWallV                            // Vertical wall segment
	KindWallHJunctionDown                // Horizontal wall with a junction going down
	KindWallVEndJunctionUp               // End cap of a vertical wall
	KindBarrier                          // Plain room-blocking barrier
	KindSadBarrier                       // Barrier that makes the player sad
	KindHappyBarrier                     // Barrier that cheers the player up
	numKinds
)

// Effect is what touching an obstacle does to the player.
type Effect int

const (
	EffectNone         Effect = iota
	EffectSetIdleSad          // Swap the player's idle image for the sad one
	EffectSetIdleHappy        // Restore the player's default idle image
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectSetIdleSad:
		return "sad"
	case EffectSetIdleHappy:
		return "happy"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// KindInfo is the per-kind data table entry.
type KindInfo struct {
	Name   string
	Effect Effect
	asset  func(config.AssetsConfig) string
}

var kinds = [numKinds]KindInfo{
	KindWallH:              {Name: "wall_h", asset: func(a config.AssetsConfig) string { return a.WallH }},
	KindWallV:              {Name: "wall_v", asset: func(a config.AssetsConfig) string { return a.WallV }},
	KindWallHJunctionDown:  {Name: "wall_h_junction", asset: func(a config.AssetsConfig) string { return a.WallHJunction }},
	KindWallVEndJunctionUp: {Name: "wall_v_end_junction", asset: func(a config.AssetsConfig) string { return a.WallVEndJunction }},
	KindBarrier:            {Name: "barrier", asset: func(a config.AssetsConfig) string { return a.Barrier }},
	KindSadBarrier:         {Name: "sad_barrier", Effect: EffectSetIdleSad, asset: func(a config.AssetsConfig) string { return a.SadBarrier }},
	KindHappyBarrier:       {Name: "happy_barrier", Effect: EffectSetIdleHappy, asset: func(a config.AssetsConfig) string { return a.HappyBarrier }},
}

// Info returns the data table entry for k.
func (k Kind) Info() KindInfo {
	if k < 0 || k >= numKinds {
		return KindInfo{Name: fmt.Sprintf("kind(%d)", int(k))}
	}
	return kinds[k]
}

func (k Kind) String() string {
	return k.Info().Name
}

// Asset returns the image file name for k.
func (k Kind) Asset(names config.AssetsConfig) string {
	info := k.Info()
	if info.asset == nil {
		return ""
	}
	return info.asset(names)
}

// Kinds returns every obstacle kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Entity is a static image with an axis-aligned bounding rectangle.
// Entities are never modified after creation.
type Entity struct {
	Kind   Kind
	Image  render.Image
	Rect   geom.Rect
	Effect Effect
}

// New creates an entity of kind k whose rect has the image's size and is
// centered on (cx, cy).
func New(k Kind, img render.Image, cx, cy float64) *Entity {
	w, h := img.Size()
	return &Entity{
		Kind:   k,
		Image:  img,
		Rect:   geom.CenteredRect(cx, cy, float64(w), float64(h)),
		Effect: k.Info().Effect,
	}
}
