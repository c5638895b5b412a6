// Package cmd implements the jangbogo CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"jangbogo/internal/config"
	"jangbogo/internal/tui"
	"jangbogo/internal/tui/theme"
)

var (
	flagCatalog string
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "jangbogo",
	Short: "예산 장보기 미션: a classroom budget-shopping exercise",
	Long: "jangbogo runs a three-screen budgeting exercise: pick a mission\n" +
		"(budget tier), shop from a CSV product catalog, write a justification,\n" +
		"and export the result as a PNG submission.",
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Product catalog CSV path (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "Submission output directory (default from config)")
}

// resolvePaths applies flag overrides on top of config values.
func resolvePaths(cfg config.Config) (catalogPath, outputDir string) {
	catalogPath = cfg.General.CatalogPath
	if flagCatalog != "" {
		catalogPath = flagCatalog
	}
	outputDir = cfg.General.OutputDir
	if flagOutput != "" {
		outputDir = flagOutput
	}
	return catalogPath, outputDir
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	catalogPath, outputDir := resolvePaths(cfg)

	app := tui.NewApp(config.Missions(cfg), catalogPath, outputDir, cfg.General.WrapWidth)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
