package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonforge/internal/world"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette failed: %v", err)
	}

	for _, tile := range world.Tiles {
		def, ok := p.Def(tile)
		if !ok {
			t.Errorf("No palette entry for %s", tile.Name())
			continue
		}
		if def.GlyphRune() == '?' {
			t.Errorf("Tile %s has no usable glyph", tile.Name())
		}
	}

	if got := p.Glyph(world.TilePlayer); got != '@' {
		t.Errorf("Player glyph = %q, want '@'", got)
	}
	if got := p.Glyph(world.TileNothing); got != ' ' {
		t.Errorf("Nothing glyph = %q, want ' '", got)
	}
}

func TestNewPaletteErrors(t *testing.T) {
	if _, err := NewPalette([]TileDef{{ID: "lava", Glyph: "~", Color: "#FF0000"}}); err == nil {
		t.Error("Expected an error for an unknown tile id")
	}
	if _, err := NewPalette([]TileDef{{ID: "wall", Glyph: "#", Color: "#GG0000"}}); err == nil {
		t.Error("Expected an error for a bad color")
	}
}

func TestPaletteFallsBackToTileRune(t *testing.T) {
	p, err := NewPalette([]TileDef{{ID: "wall", Glyph: "X", Color: "abc"}})
	if err != nil {
		t.Fatalf("NewPalette failed: %v", err)
	}

	if got := p.Glyph(world.TileWall); got != 'X' {
		t.Errorf("Wall glyph = %q, want 'X'", got)
	}
	if got := p.Color(world.TileWall); got != "#AABBCC" {
		t.Errorf("Wall color = %q, want #AABBCC", got)
	}
	if got := p.Glyph(world.TileFloor); got != world.TileFloor.Rune() {
		t.Errorf("Floor glyph = %q, want %q", got, world.TileFloor.Rune())
	}
	if got := p.Color(world.TileFloor); got != "" {
		t.Errorf("Floor color = %q, want empty", got)
	}
	if got := p.Style(world.TileFloor); got != tcell.StyleDefault {
		t.Error("Undefined tile should use the default style")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"custom.json": {Data: []byte(`{"tiles":[{"id":"floor","glyph":"_","color":"#101010"}]}`)},
		"broken.json": {Data: []byte(`{"tiles":`)},
	}

	file, err := LoadFS[TilesFile](fsys, "custom.json")
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if len(file.Tiles) != 1 || file.Tiles[0].ID != "floor" {
		t.Errorf("Tiles = %+v", file.Tiles)
	}

	if _, err := LoadFS[TilesFile](fsys, "broken.json"); err == nil {
		t.Error("Expected a parse error")
	}
	if _, err := LoadFS[TilesFile](fsys, "missing.json"); err == nil {
		t.Error("Expected a read error")
	}
}

func TestGlyphRune(t *testing.T) {
	tests := []struct {
		glyph string
		want  rune
	}{
		{"#", '#'},
		{"·", '·'},
		{"@x", '@'},
		{"", '?'},
	}

	for _, tt := range tests {
		if got := (TileDef{Glyph: tt.glyph}).GlyphRune(); got != tt.want {
			t.Errorf("GlyphRune(%q) = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewHexColor(0xFF0000), false},
		{"00ff00", tcell.NewHexColor(0x00FF00), false},
		{"#fff", tcell.NewHexColor(0xFFFFFF), false},
		{"#12", tcell.ColorDefault, true},
		{"#ZZZZZZ", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := map[string]string{
		"#d7af00": "#D7AF00",
		"8a8a8a":  "#8A8A8A",
		"#abc":    "#AABBCC",
	}
	for input, want := range tests {
		got, err := NormalizeHex(input)
		if err != nil {
			t.Errorf("NormalizeHex(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", input, got, want)
		}
	}
}
