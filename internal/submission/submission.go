// Package submission renders the final result sheet (mission, purchases,
// and the student's justification) into a PNG the teacher can collect.
package submission

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"jangbogo/internal/cli"
	"jangbogo/internal/session"
)

// Canvas layout constants. Height scales with the number of text lines.
const (
	canvasWidth = 800
	margin      = 40
	lineHeight  = 30

	// DefaultWrapWidth is the justification wrap column in runes.
	DefaultWrapWidth = 30
)

// BuildLines produces the display lines of the submission sheet, top to
// bottom. It is pure; rasterization and file output happen separately.
func BuildLines(mission string, budget int64, cart []session.CartItem, reason string, wrapWidth int) []string {
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	lines := []string{
		"미션: " + mission,
		"예산: " + cli.FormatWon(budget),
		"",
		"▶ 구매한 물품",
	}

	if len(cart) > 0 {
		for _, it := range cart {
			lines = append(lines, fmt.Sprintf("- %s (%s)", it.Name, cli.FormatWon(it.Price)))
		}
	} else {
		lines = append(lines, "- (구매한 물품 없음)")
	}

	lines = append(lines, "", "▶ 구매 이유")

	for _, para := range strings.Split(reason, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrap(para, wrapWidth)...)
	}

	return lines
}

// wrap word-wraps a paragraph at width runes. Words longer than the width
// are hard-split so nothing is lost.
func wrap(para string, width int) []string {
	var out []string
	var line []rune

	flush := func() {
		if len(line) > 0 {
			out = append(out, string(line))
			line = line[:0]
		}
	}

	for _, word := range strings.Fields(para) {
		w := []rune(word)

		for len(w) > width {
			flush()
			out = append(out, string(w[:width]))
			w = w[width:]
		}

		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= width:
			line = append(line, ' ')
			line = append(line, w...)
		default:
			flush()
			line = append(line, w...)
		}
	}
	flush()

	return out
}

// Render rasterizes the lines onto a white canvas with black text using the
// basic bitmap face. The canvas height follows the line count.
func Render(lines []string) *image.RGBA {
	height := margin*2 + lineHeight*(len(lines)+3)

	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	y := margin
	for _, line := range lines {
		d.Dot = fixed.P(margin, y+basicfont.Face7x13.Ascent)
		d.DrawString(line)
		y += lineHeight
	}

	return img
}

// Save writes the image as a timestamped PNG under dir, creating the
// directory if needed, and returns the file path. Two submissions within
// the same second collide; the spec accepts that.
func Save(img *image.RGBA, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating submission dir: %w", err)
	}

	name := fmt.Sprintf("submission_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating submission file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding submission png: %w", err)
	}

	return path, nil
}

// Export builds, renders, and saves a submission in one call.
func Export(mission string, budget int64, cart []session.CartItem, reason string, wrapWidth int, dir string) (string, error) {
	lines := BuildLines(mission, budget, cart, reason, wrapWidth)
	return Save(Render(lines), dir)
}
