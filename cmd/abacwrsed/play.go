package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/abacwrsed/internal/game"
	ebitenrender "chosenoffset.com/abacwrsed/internal/render/ebiten"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

Every image named in the config must exist in the asset directory; run
genplaceholders to create a complete set.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var fontData []byte
	if cfg.HUD.Font != "" {
		fontData, err = os.ReadFile(cfg.HUD.Font)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer(fontData, cfg.HUD.FontSize)
	if err != nil {
		return err
	}
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, game.Backend{
		Renderer: renderer,
		Input:    ebitenrender.NewInputManager(),
		Loader:   ebitenrender.NewResourceLoader(),
	})
	if err != nil {
		return err
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Window.TPS)

	log.Info("starting game", "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "tps", cfg.Window.TPS)
	return engine.RunGame(g)
}
