package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/abacwrsed/internal/assets"
	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/world/level"
)

// New loads every asset, builds the level and returns a game ready to run.
// Any missing asset is an error.
func New(cfg config.Config, b Backend) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := assets.NewStore(b.Loader, cfg.Assets.Dir)
	log.Info("loading assets", "dir", cfg.Assets.Dir)

	sprites, err := assets.LoadPlayerSprites(store, cfg.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to load player sprites: %w", err)
	}

	obstacles, err := level.Build(level.Layout(), store, cfg.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	player := NewPlayer(cfg.Player, cfg.Contact, sprites)
	if o := Collide(player.Rect, obstacles); o != nil {
		log.Warn("player spawns inside an obstacle", "kind", o.Kind, "x", cfg.Player.StartX, "y", cfg.Player.StartY)
	}

	g := &Game{
		Config:    cfg,
		Renderer:  b.Renderer,
		InputMgr:  b.Input,
		Player:    player,
		Obstacles: obstacles,
		Camera:    NewCamera(cfg),
	}

	log.Info("game loaded", "obstacles", len(obstacles), "camera", cfg.Camera.Strategies)
	return g, nil
}
