package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// WriteText prints the grid one row per line using the palette glyphs. With
// colored set, each run of equal tiles is wrapped in the palette's 24-bit
// color.
func WriteText(w io.Writer, grid *world.Grid, palette *gamedata.Palette, colored bool) error {
	bw := bufio.NewWriter(w)

	for y := 0; y < grid.Height(); y++ {
		runStart := 0
		for x := 1; x <= grid.Width(); x++ {
			if x < grid.Width() && grid.Tile(world.Position{X: x, Y: y}) == grid.Tile(world.Position{X: runStart, Y: y}) {
				continue
			}
			tile := grid.Tile(world.Position{X: runStart, Y: y})
			if _, err := bw.WriteString(paint(palette, tile, x-runStart, colored)); err != nil {
				return err
			}
			runStart = x
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func paint(palette *gamedata.Palette, tile world.Tile, n int, colored bool) string {
	glyph := palette.Glyph(tile)
	run := make([]rune, n)
	for i := range run {
		run[i] = glyph
	}
	text := string(run)

	def, ok := palette.Def(tile)
	if !colored || !ok {
		return text
	}
	text = color.HEX(def.Color).Sprint(text)
	if def.Bold {
		text = color.OpBold.Sprint(text)
	}
	return text
}
