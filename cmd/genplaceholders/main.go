// genplaceholders writes stand-in art for every image abacwrsed loads.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/abacwrsed/internal/config"
	"chosenoffset.com/abacwrsed/internal/placeholders"
)

var (
	flagConfig string
	flagOut    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "genplaceholders",
	Short: "Generate placeholder graphics",
	Long: `Draw a placeholder for every image named in the config and save them
as PNG files. Existing files are overwritten.

Examples:
  genplaceholders
  genplaceholders --out ./assets
  genplaceholders --config ./abacwrsed.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default: the config's asset directory)")
}

func run(cmd *cobra.Command, args []string) error {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "genplaceholders",
	}))

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := flagOut
	if out == "" {
		out = cfg.Assets.Dir
	}
	if err := placeholders.GenerateAndSave(out, cfg.Assets); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Placeholder graphics written to %s\n", out)
	return nil
}
