package game

import (
	"testing"

	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render/headless"
	"chosenoffset.com/abacwrsed/internal/world/entity"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

// obstacles builds plain walls from rects.
func obstacles(rects ...geom.Rect) level.ObstacleSet {
	set := make(level.ObstacleSet, len(rects))
	for i, r := range rects {
		set[i] = &entity.Entity{Kind: entity.KindWallH, Image: headless.NewImage(int(r.W), int(r.H)), Rect: r}
	}
	return set
}

func TestResolveFreeSpace(t *testing.T) {
	player := geom.NewRect(100, 100, 20, 20)
	walls := obstacles(geom.NewRect(300, 300, 70, 70), geom.NewRect(0, 0, 70, 70))

	moves := []struct{ dx, dy float64 }{
		{8, 0}, {-8, 0}, {0, 8}, {0, -8},
		{5.656854, 5.656854}, {-5.656854, 5.656854},
		{3, -7}, {0.5, 0},
	}

	for _, m := range moves {
		dx, dy := Resolve(player, m.dx, m.dy, walls, nil)
		if dx != m.dx || dy != m.dy {
			t.Errorf("Resolve(%v, %v) = (%v, %v), expected unchanged", m.dx, m.dy, dx, dy)
		}
	}
}

func TestResolveZeroIsNoOp(t *testing.T) {
	player := geom.NewRect(0, 0, 10, 10)
	walls := obstacles(geom.NewRect(10, 0, 10, 10))

	calls := 0
	dx, dy := Resolve(player, 0, 0, walls, func(*entity.Entity) { calls++ })
	if dx != 0 || dy != 0 {
		t.Errorf("Expected (0, 0), got (%v, %v)", dx, dy)
	}
	if calls != 0 {
		t.Errorf("Expected no contacts, got %d", calls)
	}
}

func TestResolveFlushObstacle(t *testing.T) {
	player := geom.NewRect(100, 100, 20, 20)

	tests := []struct {
		name   string
		wall   geom.Rect
		dx, dy float64
		wantDX float64
		wantDY float64
	}{
		{"right", geom.NewRect(120, 100, 70, 70), 8, 0, 0, 0},
		{"left", geom.NewRect(30, 100, 70, 70), -8, 0, 0, 0},
		{"below", geom.NewRect(100, 120, 70, 70), 0, 8, 0, 0},
		{"above", geom.NewRect(100, 30, 70, 70), 0, -8, 0, 0},
		{"right while moving down", geom.NewRect(120, 0, 70, 300), 5.5, 5.5, 0, 5.5},
		{"below while moving left", geom.NewRect(0, 120, 300, 70), -5.5, 5.5, -5.5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := Resolve(player, tc.dx, tc.dy, obstacles(tc.wall), nil)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tc.wantDX, tc.wantDY, dx, dy)
			}
		})
	}
}

func TestResolvePartialMove(t *testing.T) {
	player := geom.NewRect(0, 0, 20, 20)
	walls := obstacles(geom.NewRect(25, 0, 70, 70))

	dx, dy := Resolve(player, 8, 0, walls, nil)
	if dx != 5 || dy != 0 {
		t.Errorf("Expected (5, 0), got (%v, %v)", dx, dy)
	}
	if player.Move(dx, dy).Intersects(walls[0].Rect) {
		t.Error("Resolved move overlaps the wall")
	}
}

func TestResolveFiresContactPerStep(t *testing.T) {
	player := geom.NewRect(0, 0, 20, 20)
	walls := obstacles(geom.NewRect(20, 0, 70, 70))

	var hits []*entity.Entity
	Resolve(player, 8, 0, walls, func(o *entity.Entity) { hits = append(hits, o) })

	// One rejected trial for each of dx = 8, 7, ..., 1.
	if len(hits) != 8 {
		t.Fatalf("Expected 8 contacts, got %d", len(hits))
	}
	for _, h := range hits {
		if h != walls[0] {
			t.Error("Expected every contact to report the wall")
		}
	}
}

func TestCollideReturnsFirstHit(t *testing.T) {
	walls := obstacles(geom.NewRect(0, 0, 10, 10), geom.NewRect(5, 5, 10, 10))

	if got := Collide(geom.NewRect(6, 6, 2, 2), walls); got != walls[0] {
		t.Error("Expected the first overlapping obstacle")
	}
	if got := Collide(geom.NewRect(50, 50, 2, 2), walls); got != nil {
		t.Error("Expected no obstacle")
	}
}

func TestResolveClosesSubUnitGap(t *testing.T) {
	tests := []struct {
		name   string
		player geom.Rect
		wall   geom.Rect
		dx, dy float64
		wantDX float64
		wantDY float64
	}{
		{"right", geom.NewRect(79.5, 100, 20, 20), geom.NewRect(100, 0, 70, 300), 8, 0, 0.5, 0},
		{"left", geom.NewRect(100.25, 100, 20, 20), geom.NewRect(30, 0, 70, 300), -8, 0, -0.25, 0},
		{"down", geom.NewRect(100, 79.75, 20, 20), geom.NewRect(0, 100, 300, 70), 0, 8, 0, 0.25},
		{"up", geom.NewRect(100, 100.5, 20, 20), geom.NewRect(0, 30, 300, 70), 0, -8, 0, -0.5},
		{"fractional request", geom.NewRect(0, 100, 20, 20), geom.NewRect(25, 0, 70, 300), 5.657, 0, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			walls := obstacles(tc.wall)
			dx, dy := Resolve(tc.player, tc.dx, tc.dy, walls, nil)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tc.wantDX, tc.wantDY, dx, dy)
			}
			if tc.player.Move(dx, dy).Intersects(walls[0].Rect) {
				t.Error("Resolved move overlaps the wall")
			}
		})
	}
}

func TestResolveGapCloseKeepsContactCount(t *testing.T) {
	player := geom.NewRect(79.5, 100, 20, 20)
	walls := obstacles(geom.NewRect(100, 0, 70, 300))

	calls := 0
	Resolve(player, 8, 0, walls, func(*entity.Entity) { calls++ })

	// dx = 8 .. 1 are rejected; closing the gap reports nothing more.
	if calls != 8 {
		t.Errorf("Expected 8 contacts, got %d", calls)
	}
}

func TestResolveGapCloseRespectsOtherObstacles(t *testing.T) {
	// A second wall sits inside the gap left by the first one.
	player := geom.NewRect(79.5, 100, 20, 20)
	walls := obstacles(geom.NewRect(100, 0, 70, 300), geom.NewRect(99.75, 110, 70, 5))

	dx, _ := Resolve(player, 8, 0, walls, nil)
	if player.Move(dx, 0).Intersects(walls[1].Rect) {
		t.Errorf("Resolved move %v overlaps the second wall", dx)
	}
}
