// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents solid rock. Every cell starts as a wall.
	TileWall Tile = '#'
	// TileFloor represents a carved, walkable tile.
	TileFloor Tile = '.'
	// TileLockedDoor marks the dungeon exit.
	TileLockedDoor Tile = '+'
	// TileUnlockedDoor represents an open door.
	TileUnlockedDoor Tile = '\''
	// TileNothing is void left behind when buried walls are trimmed.
	TileNothing Tile = ' '
	// TilePlayer marks the starting position.
	TilePlayer Tile = '@'
)

// Tiles lists the whole vocabulary in a stable order.
var Tiles = []Tile{TileWall, TileFloor, TileLockedDoor, TileUnlockedDoor, TileNothing, TilePlayer}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t {
	case TileFloor, TileUnlockedDoor, TileLockedDoor, TilePlayer:
		return true
	}
	return false
}

// IsOpen returns true for anything that is not wall or void.
func (t Tile) IsOpen() bool {
	return t != TileWall && t != TileNothing
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Name returns the tile's identifier as used by the tile palette.
func (t Tile) Name() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileLockedDoor:
		return "locked_door"
	case TileUnlockedDoor:
		return "unlocked_door"
	case TileNothing:
		return "nothing"
	case TilePlayer:
		return "player"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return t.Name()
}
