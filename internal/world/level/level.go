// Package level builds the obstacle set from the hand-placed tile layout.
package level

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/abacwrsed/internal/assets"
	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/world/entity"
)

// Tile layout constants, in pixels.
const (
	TileSize      = 70   // Grid pitch
	RowWidth      = 2000 // Top and bottom rows cover x in [0, RowWidth)
	TopRowY       = 100
	BottomRowY    = 1035
	CorridorCount = 5
	CorridorPitch = 490 // Distance between vertical walls
	CorridorTopY  = 170 // First vertical segment
	MiddleRowY    = 660 // Room floors and barrier clusters
	EndCapY       = 730
)

// Placement puts one obstacle of a kind centered on (X, Y).
type Placement struct {
	Kind entity.Kind
	X, Y float64
}

// ObstacleSet is the ordered, immutable list of level obstacles.
type ObstacleSet []*entity.Entity

// Layout returns the tile placements of the level, in draw order. Each
// (kind, position) appears once.
func Layout() []Placement {
	var out []Placement
	seen := make(map[Placement]bool)
	add := func(k entity.Kind, x, y int) {
		p := Placement{Kind: k, X: float64(x), Y: float64(y)}
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for x := 0; x < RowWidth; x += TileSize {
		add(entity.KindWallH, x, TopRowY)
		add(entity.KindWallH, x, BottomRowY)
	}

	for c := 0; c < CorridorCount; c++ {
		cx := c * CorridorPitch
		for y := CorridorTopY; y < MiddleRowY; y += TileSize {
			add(entity.KindWallV, cx, y)
			add(entity.KindWallVEndJunctionUp, cx, EndCapY)
			add(entity.KindWallHJunctionDown, cx, TopRowY)
		}
		for i := 0; i < 3; i++ {
			add(entity.KindWallH, (i-1)*TileSize+cx, MiddleRowY)
		}
		// Blocks access to the second room.
		for i := 0; i < 4; i++ {
			add(entity.KindBarrier, i*TileSize+630, MiddleRowY)
		}
	}

	// The third room is closed off by the mood barriers.
	mood := []entity.Kind{entity.KindSadBarrier, entity.KindBarrier, entity.KindBarrier, entity.KindHappyBarrier}
	for i, k := range mood {
		add(k, i*TileSize+1120, MiddleRowY)
	}

	return out
}

// Build creates one entity per placement. Each entity loads its own copy of
// its image; a missing file aborts the build.
func Build(placements []Placement, store *assets.Store, names config.AssetsConfig) (ObstacleSet, error) {
	set := make(ObstacleSet, 0, len(placements))
	for _, p := range placements {
		name := p.Kind.Asset(names)
		if name == "" {
			return nil, fmt.Errorf("no asset for obstacle kind %s", p.Kind)
		}
		img, err := store.Image(name)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s at (%v, %v): %w", p.Kind, p.X, p.Y, err)
		}
		set = append(set, entity.New(p.Kind, img, p.X, p.Y))
	}
	log.Info("built obstacle set", "obstacles", len(set))
	return set, nil
}

// Counts returns how many placements of each kind the layout holds.
func Counts(placements []Placement) map[entity.Kind]int {
	counts := make(map[entity.Kind]int)
	for _, p := range placements {
		counts[p.Kind]++
	}
	return counts
}
