package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/abacwrsed/internal/game"
	"chosenoffset.com/abacwrsed/internal/render"
	"chosenoffset.com/abacwrsed/internal/render/headless"
)

var (
	flagFrames int
	flagKeys   []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game loop without a window",
	Long: `Load the level and run the game loop headless with a fixed set of keys
held, then print where the player and camera ended up. Images are read
from the asset directory only for their size.

Key names: up, down, left, right, w, a, s, d.

Examples:
  abacwrsed simulate --frames 120 --keys right
  abacwrsed simulate --frames 30 --keys up,left,d`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of updates to run")
	simulateCmd.Flags().StringSliceVar(&flagKeys, "keys", nil, "Keys held for the whole run")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFrames < 0 {
		return fmt.Errorf("invalid frame count: %d", flagFrames)
	}

	input := &headless.Input{}
	for _, name := range flagKeys {
		k, err := render.ParseKey(name)
		if err != nil {
			return err
		}
		input.Press(k)
	}

	g, err := game.New(cfg, game.Backend{
		Renderer: headless.NewRenderer(),
		Input:    input,
		Loader:   headless.FileLoader{},
	})
	if err != nil {
		return err
	}

	for i := 0; i < flagFrames; i++ {
		if err := g.Update(); err != nil {
			return err
		}
	}

	p := g.Player
	mood := "stand"
	if p.IdleImage == p.SadImage {
		mood = "sad"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:  %d\n", g.Frame)
	fmt.Fprintf(out, "player:  x=%.2f y=%.2f (%.0fx%.0f)\n", p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	fmt.Fprintf(out, "idle:    %s\n", mood)
	fmt.Fprintf(out, "effects: %d\n", p.EffectsApplied)
	fmt.Fprintf(out, "camera:  offset=(%.2f, %.2f) box=(%.2f, %.2f)\n", g.Camera.Offset.X, g.Camera.Offset.Y, g.Camera.Box.X, g.Camera.Box.Y)
	return nil
}
