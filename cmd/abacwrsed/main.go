// abacwrsed is a small 2D platformer: walk a character around a walled
// level, bump into barriers and watch the camera follow.
//
// Usage:
//
//	abacwrsed                    - Play (same as "abacwrsed play")
//	abacwrsed play               - Open the game window
//	abacwrsed simulate           - Run the game loop without a window
//	abacwrsed layout             - Show the level's obstacle placements
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ./abacwrsed.yaml if present)
//	--assets <dir>   - Override the asset directory
//	-v, --verbose    - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/abacwrsed/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagAssets  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "abacwrsed",
	Short: "Abacwrsed - a 2D platforming game",
	Long: `Abacwrsed is a minimal 2D platformer.

Controls:
  Arrow keys - Move
  W/A/S/D    - Pan the camera

Examples:
  abacwrsed
  abacwrsed --config ./my-level.yaml
  abacwrsed simulate --frames 120 --keys right,down
  abacwrsed layout`,
	SilenceUsage:     true,
	PersistentPreRun: setupLogger,
	RunE:             runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides the config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(layoutCmd)
}

func setupLogger(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "abacwrsed",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

// loadConfig loads the config named by the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	return cfg, nil
}
