package world

import (
	"fmt"
	"strings"
)

// MinDimension is the smallest accepted grid width or height.
const MinDimension = 5

// Grid is a fixed-size tile buffer stored row by row.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid filled with walls. Both dimensions must be odd so
// rooms and corridors line up on odd coordinates.
func NewGrid(width, height int) (*Grid, error) {
	if width%2 == 0 || height%2 == 0 || width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d, need odd sizes of at least %d",
			ErrInvalidDimensions, width, height, MinDimension)
	}

	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	g.Fill(TileWall)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Area returns the number of cells.
func (g *Grid) Area() int {
	return len(g.tiles)
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Tile returns the tile at p. Out of bounds reads return TileWall.
func (g *Grid) Tile(p Position) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.tiles[g.index(p)]
}

// Set writes a tile. Out of bounds writes are ignored.
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[g.index(p)] = t
}

// Fill overwrites every cell with t.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Find returns the positions of every cell holding t in row-major order.
func (g *Grid) Find(t Tile) []Position {
	var found []Position
	for i, tile := range g.tiles {
		if tile == t {
			found = append(found, g.position(i))
		}
	}
	return found
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// OpenNeighbors counts the open cardinal neighbours of p.
func (g *Grid) OpenNeighbors(p Position) int {
	n := 0
	for _, d := range Cardinals {
		if g.Tile(p.Add(d)).IsOpen() {
			n++
		}
	}
	return n
}

// String renders the grid one text line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.tiles[y*g.width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

func (g *Grid) position(i int) Position {
	return Position{i % g.width, i / g.width}
}
