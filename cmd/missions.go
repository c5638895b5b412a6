package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jangbogo/internal/cli"
	"jangbogo/internal/config"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the configured missions",
	RunE:  runMissions,
}

func init() {
	rootCmd.AddCommand(missionsCmd)
}

func runMissions(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	missions := config.Missions(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle("미션 목록"))
	fmt.Println()

	rows := make([][]string, 0, len(missions))
	for _, m := range missions {
		rows = append(rows, []string{m.Label, cli.FormatWon(m.Budget)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"미션", "예산"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Edit %s to change missions.\n", config.Path())
	return nil
}
