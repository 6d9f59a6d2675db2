package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// TileDef describes how one tile kind is drawn.
type TileDef struct {
	ID    string `json:"id"`    // Tile name, e.g. "locked_door"
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex foreground color
	Bold  bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d TileDef) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(d.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Palette maps the tile vocabulary to glyphs and colors.
type Palette struct {
	defs map[world.Tile]TileDef
}

// NewPalette builds a palette from tile definitions. Every id must name a
// known tile and every color must parse.
func NewPalette(defs []TileDef) (*Palette, error) {
	byName := make(map[string]world.Tile, len(world.Tiles))
	for _, t := range world.Tiles {
		byName[t.Name()] = t
	}

	p := &Palette{defs: make(map[world.Tile]TileDef, len(defs))}
	for _, def := range defs {
		tile, ok := byName[def.ID]
		if !ok {
			return nil, fmt.Errorf("unknown tile id %q", def.ID)
		}
		hex, err := NormalizeHex(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", def.ID, err)
		}
		def.Color = hex
		p.defs[tile] = def
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded tiles.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewPalette(file.Tiles)
}

// MustLoadPalette loads the embedded palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Def returns the definition for t and whether one exists.
func (p *Palette) Def(t world.Tile) (TileDef, bool) {
	def, ok := p.defs[t]
	return def, ok
}

// Glyph returns the display rune for t, falling back to the tile's own rune.
func (p *Palette) Glyph(t world.Tile) rune {
	if def, ok := p.defs[t]; ok {
		return def.GlyphRune()
	}
	return t.Rune()
}

// Color returns the "#RRGGBB" color for t, or "" if none is defined.
func (p *Palette) Color(t world.Tile) string {
	return p.defs[t].Color
}

// Style returns the tcell style for t.
func (p *Palette) Style(t world.Tile) tcell.Style {
	def, ok := p.defs[t]
	if !ok {
		return tcell.StyleDefault
	}
	style := tcell.StyleDefault
	if c, err := ParseHexColor(def.Color); err == nil {
		style = style.Foreground(c)
	}
	return style.Bold(def.Bold)
}
