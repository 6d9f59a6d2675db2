package world

// Room represents a rectangular room in the dungeon.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Origin returns the top-left corner.
func (r Room) Origin() Position {
	return Position{r.X, r.Y}
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps returns true if the rooms intersect or touch. Rooms need at least
// one wall between them to be considered apart.
func (r Room) Overlaps(other Room) bool {
	return min(r.X+r.Width, other.X+other.Width) >= max(r.X, other.X) &&
		min(r.Y+r.Height, other.Y+other.Height) >= max(r.Y, other.Y)
}
