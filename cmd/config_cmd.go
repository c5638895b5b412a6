package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jangbogo/internal/cli"
	"jangbogo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	catalogPath, outputDir := resolvePaths(cfg)

	fmt.Println("  [General]")
	fmt.Printf("    Catalog path: %s\n", catalogPath)
	fmt.Printf("    Output dir:   %s\n", outputDir)
	fmt.Printf("    Wrap width:   %d\n", cfg.General.WrapWidth)
	fmt.Println()

	fmt.Println("  [Missions]")
	for _, m := range config.Missions(cfg) {
		fmt.Printf("    %s: %s\n", m.Label, cli.FormatWon(m.Budget))
	}
	if len(cfg.Missions) == 0 {
		fmt.Println("    (built-in defaults)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}
