package world

// carveMazes fills every solid odd cell left after room placement with a
// maze. Each maze is its own region.
func (b *builder) carveMazes() error {
	for y := 1; y < b.grid.Height(); y += 2 {
		for x := 1; x < b.grid.Width(); x += 2 {
			pos := Position{x, y}
			if b.grid.Tile(pos) != TileWall {
				continue
			}
			b.growMaze(pos)
		}
	}
	return nil
}

// growMaze carves a maze from start using the growing tree algorithm,
// always extending the most recently added cell.
func (b *builder) growMaze(start Position) {
	b.startRegion()
	b.carve(start)

	cells := []Position{start}
	var lastDir Direction
	hasLast := false
	carvable := make([]Direction, 0, len(Cardinals))

	for len(cells) > 0 {
		cell := cells[len(cells)-1]

		// See which adjacent cells are open.
		carvable = carvable[:0]
		for _, dir := range Cardinals {
			if b.canCarve(cell, dir) {
				carvable = append(carvable, dir)
			}
		}

		if len(carvable) == 0 {
			// Dead branch: back up and forget the heading.
			cells = cells[:len(cells)-1]
			hasLast = false
			continue
		}

		var dir Direction
		if hasLast && containsDirection(carvable, lastDir) && b.src.Intn(100) < b.opts.WindingPercent {
			dir = lastDir
		} else {
			dir = carvable[b.src.Intn(len(carvable))]
		}

		b.carve(cell.Add(dir))
		b.carve(cell.Step(dir, 2))

		cells = append(cells, cell.Step(dir, 2))
		lastDir = dir
		hasLast = true
	}
}

// canCarve reports whether a corridor can be opened from pos two cells in
// direction dir: the cell three steps away must be on the grid and the
// destination must still be solid.
func (b *builder) canCarve(pos Position, dir Direction) bool {
	if !b.grid.InBounds(pos.Step(dir, 3)) {
		return false
	}
	return b.grid.Tile(pos.Step(dir, 2)) == TileWall
}

func containsDirection(dirs []Direction, d Direction) bool {
	for _, dir := range dirs {
		if dir == d {
			return true
		}
	}
	return false
}
