package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jangbogo/internal/config"
	"jangbogo/internal/session"
	"jangbogo/internal/submission"
)

var (
	flagMission    string
	flagItems      []string
	flagReason     string
	flagReasonFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a submission PNG without the TUI",
	Long: "Render a submission sheet from the command line. Items are given as\n" +
		"name=price pairs and may repeat:\n\n" +
		"  jangbogo export --mission \"절약형 장보기 (예산 10,000원)\" \\\n" +
		"      --item 사과=1500 --item 우유=2500 --reason \"필요한 것만 샀습니다\"",
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&flagMission, "mission", "m", "", "Mission label (must match a configured mission)")
	exportCmd.Flags().StringArrayVarP(&flagItems, "item", "i", nil, "Cart item as name=price (repeatable)")
	exportCmd.Flags().StringVarP(&flagReason, "reason", "r", "", "Justification text")
	exportCmd.Flags().StringVar(&flagReasonFile, "reason-file", "", "Read justification from a file")
	_ = exportCmd.MarkFlagRequired("mission")
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	_, outputDir := resolvePaths(cfg)

	mission, err := findMission(config.Missions(cfg), flagMission)
	if err != nil {
		return err
	}

	reason, err := resolveReason()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("justification is empty: pass --reason or --reason-file")
	}

	cart, err := parseItems(flagItems)
	if err != nil {
		return err
	}
	if len(cart) == 0 {
		return fmt.Errorf("cart is empty: pass at least one --item name=price")
	}

	path, err := submission.Export(mission.Label, mission.Budget, cart, reason,
		cfg.General.WrapWidth, outputDir)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

func findMission(missions []session.Mission, label string) (session.Mission, error) {
	for _, m := range missions {
		if m.Label == label {
			return m, nil
		}
	}

	labels := make([]string, len(missions))
	for i, m := range missions {
		labels[i] = "  " + m.Label
	}
	return session.Mission{}, fmt.Errorf("unknown mission %q; configured missions:\n%s",
		label, strings.Join(labels, "\n"))
}

func resolveReason() (string, error) {
	if flagReasonFile != "" {
		data, err := os.ReadFile(flagReasonFile)
		if err != nil {
			return "", fmt.Errorf("reading reason file: %w", err)
		}
		return string(data), nil
	}
	return flagReason, nil
}

// parseItems converts name=price pairs into cart items. Unlike catalog rows,
// a malformed price here is an input error, not a silent zero.
func parseItems(specs []string) ([]session.CartItem, error) {
	items := make([]session.CartItem, 0, len(specs))
	for _, spec := range specs {
		name, priceStr, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad --item %q, want name=price", spec)
		}
		price, err := strconv.ParseInt(strings.ReplaceAll(priceStr, ",", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad price in --item %q: %w", spec, err)
		}
		items = append(items, session.CartItem{Name: name, Price: price})
	}
	return items, nil
}
