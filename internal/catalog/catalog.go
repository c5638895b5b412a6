// Package catalog loads the product list teachers provide as a CSV file.
//
// The file is expected to carry Korean or English headers: 품명/name and
// 가격/price are required, 이미지url/이미지URL/image_url is optional. The file
// is re-read on every use: teachers edit it between classes and the tool
// should pick changes up without a restart.
package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Product is one purchasable item from the catalog file. Row order in the
// file is preserved.
type Product struct {
	Name     string
	Price    int64  // whole won; unparseable prices load as 0
	ImageURL string // empty when the file has no image column or cell
}

// MissingColumnError reports a required column that is present under neither
// of its accepted spellings.
type MissingColumnError struct {
	Korean  string
	English string
	Label   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("catalog needs a '%s' or '%s' column (%s)", e.Korean, e.English, e.Label)
}

// columns holds resolved header indexes. image is -1 when absent.
type columns struct {
	name  int
	price int
	image int
}

// resolveColumns maps the header row to column indexes, accepting either
// spelling per field. The image column is optional.
func resolveColumns(header []string) (columns, error) {
	cols := columns{name: -1, price: -1, image: -1}

	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "품명", "name":
			if cols.name < 0 {
				cols.name = i
			}
		case "가격", "price":
			if cols.price < 0 {
				cols.price = i
			}
		case "이미지url", "이미지URL", "image_url":
			if cols.image < 0 {
				cols.image = i
			}
		}
	}

	if cols.name < 0 {
		return cols, &MissingColumnError{Korean: "품명", English: "name", Label: "품명(상품명)"}
	}
	if cols.price < 0 {
		return cols, &MissingColumnError{Korean: "가격", English: "price", Label: "가격"}
	}
	return cols, nil
}

// Load reads the catalog CSV at path and returns products in file order.
//
// A missing file surfaces as the open error (callers match with
// errors.Is(err, fs.ErrNotExist) and show a notice). A missing required
// column surfaces as *MissingColumnError. Bad price cells are not errors:
// the row loads with price 0.
func Load(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	// Files saved by spreadsheet tools often start with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(records)-1)
	for _, row := range records[1:] {
		p := Product{
			Name:  cell(row, cols.name),
			Price: parsePrice(cell(row, cols.price)),
		}
		if cols.image >= 0 {
			p.ImageURL = cell(row, cols.image)
		}
		products = append(products, p)
	}

	return products, nil
}

// cell returns row[i] or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parsePrice converts a price cell to whole won. Unparseable values load
// as 0 rather than failing the row.
func parsePrice(s string) int64 {
	if s == "" {
		return 0
	}
	// Accept comma-grouped values like "1,500".
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(v)
}
