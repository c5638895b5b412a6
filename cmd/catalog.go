package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"jangbogo/internal/catalog"
	"jangbogo/internal/cli"
	"jangbogo/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalogPath, _ := resolvePaths(cfg)

	products, err := catalog.Load(catalogPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("\n  '%s' 파일을 찾을 수 없습니다.\n", catalogPath)
			fmt.Println("  앱과 같은 폴더에 products.csv를 넣어 주세요.")
			return nil
		}
		// Missing required column and parse failures are fatal.
		return err
	}

	if len(products) == 0 {
		fmt.Println("\n  상품이 없습니다.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("상품 목록"))
	fmt.Println()

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		img := p.ImageURL
		if img == "" {
			img = "(이미지 없음)"
		}
		rows = append(rows, []string{p.Name, cli.FormatWon(p.Price), img})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"품명", "가격", "이미지"},
		Rows:    rows,
	}))
	return nil
}
