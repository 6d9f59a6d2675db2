package world

// Position is a cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Direction is a unit step between neighbouring cells.
type Direction struct {
	DX, DY int
}

var (
	East  = Direction{1, 0}
	South = Direction{0, 1}
	West  = Direction{-1, 0}
	North = Direction{0, -1}
)

// Cardinals holds the four cardinal directions. The order is part of the
// generator's random draw sequence and must not change.
var Cardinals = [4]Direction{East, South, West, North}

// Surrounding holds all eight neighbouring directions.
var Surrounding = [8]Direction{
	East, South, West, North,
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Add returns the position one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{p.X + d.DX, p.Y + d.DY}
}

// Step returns the position n steps in direction d.
func (p Position) Step(d Direction, n int) Position {
	return Position{p.X + d.DX*n, p.Y + d.DY*n}
}

// Adjacent reports whether q is a cardinal neighbour of p.
func (p Position) Adjacent(q Position) bool {
	for _, d := range Cardinals {
		if p.Add(d) == q {
			return true
		}
	}
	return false
}

// Clamp pulls the position inside a width x height area.
func (p Position) Clamp(width, height int) Position {
	return Position{clamp(p.X, 0, width-1), clamp(p.Y, 0, height-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
