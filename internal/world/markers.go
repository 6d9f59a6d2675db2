package world

import "fmt"

// placeExit turns the first wall next to a floor tile into the locked exit,
// scanning from the bottom-right corner backwards so the door lands on the
// far edge of the map.
func (b *builder) placeExit() error {
	w, h := b.grid.Width(), b.grid.Height()
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			pos := Position{x, y}
			if b.grid.Tile(pos) != TileWall {
				continue
			}
			for _, dir := range Cardinals {
				if b.grid.Tile(pos.Add(dir).Clamp(w, h)) == TileFloor {
					b.grid.Set(pos, TileLockedDoor)
					b.exit = pos
					return nil
				}
			}
		}
	}
	return fmt.Errorf("%w: no wall borders a floor tile for the exit", ErrInvariantViolation)
}

// placeStart marks the first floor tile in the upper-left central quarter
// as the player's start, falling back to the first floor tile anywhere.
func (b *builder) placeStart() error {
	w, h := b.grid.Width(), b.grid.Height()
	for y := h / 4; y < h/2; y++ {
		for x := w / 4; x < w/2; x++ {
			if b.markStart(Position{x, y}) {
				return nil
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.markStart(Position{x, y}) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: no floor tile left for the start", ErrInvariantViolation)
}

func (b *builder) markStart(pos Position) bool {
	if b.grid.Tile(pos) != TileFloor {
		return false
	}
	b.grid.Set(pos, TilePlayer)
	b.start = pos
	return true
}
