package world

// RemoveDeadEnds repeatedly fills in open interior tiles that have exactly
// one open neighbour until none are left, and returns how many were filled.
// Tiles only ever go from open to wall, so the loop settles; it is also
// capped at one pass per cell.
func RemoveDeadEnds(g *Grid) int {
	filled := 0
	for pass := 0; pass <= g.Area(); pass++ {
		done := true

		for y := 1; y < g.Height()-1; y++ {
			for x := 1; x < g.Width()-1; x++ {
				pos := Position{x, y}
				if !g.Tile(pos).IsOpen() {
					continue
				}

				// If it only has one exit, it's a dead end.
				if g.OpenNeighbors(pos) != 1 {
					continue
				}

				g.Set(pos, TileWall)
				filled++
				done = false
			}
		}

		if done {
			break
		}
	}
	return filled
}

// TrimWalls turns every wall buried among other walls or void into void, so
// only walls bordering something open remain. Neighbours past the edge are
// clamped back onto the grid. It returns the number of tiles trimmed.
func TrimWalls(g *Grid) int {
	trimmed := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			pos := Position{x, y}
			if isBuriedWall(g, pos) {
				g.Set(pos, TileNothing)
				trimmed++
			}
		}
	}
	return trimmed
}

func isBuriedWall(g *Grid, pos Position) bool {
	if g.Tile(pos) != TileWall {
		return false
	}
	for _, dir := range Surrounding {
		t := g.Tile(pos.Add(dir).Clamp(g.Width(), g.Height()))
		if t != TileWall && t != TileNothing {
			return false
		}
	}
	return true
}

func (b *builder) pruneDeadEnds() error {
	b.deadEndsFilled = RemoveDeadEnds(b.grid)
	return nil
}

func (b *builder) trimWalls() error {
	b.wallsTrimmed = TrimWalls(b.grid)
	return nil
}
