package game

import (
	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/render"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

// Game holds all game state and logic.
type Game struct {
	Config    config.Config
	Renderer  render.Renderer
	InputMgr  render.InputManager
	Player    *Player
	Obstacles level.ObstacleSet
	Camera    *Camera

	Frame int // Updates run so far
}

// Update handles game logic updates.
func (g *Game) Update() error {
	keys := render.Snapshot(g.InputMgr)

	// The camera pans with last frame's keys.
	panKeys := g.Player.PrevKeys

	g.Player.Update(keys, g.Obstacles)
	g.Camera.Update(g.Player.Rect, panKeys)

	g.Frame++
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}
