package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Renderer handles drawing dungeons to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the dungeon in the top-left corner and a status line on the
// last screen row. Anything past the screen edge is clipped.
func (r *Renderer) Render(dungeon *world.Dungeon, status string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	if dungeon != nil {
		for y := 0; y < dungeon.Height() && y < screenH-1; y++ {
			for x := 0; x < dungeon.Width() && x < screenW; x++ {
				tile := dungeon.GetTile(x, y)
				r.screen.SetContent(x, y, r.palette.Glyph(tile), r.palette.Style(tile))
			}
		}
	}

	r.RenderMessage(status, screenH-1)
	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
