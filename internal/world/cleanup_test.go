package world

import (
	"strings"
	"testing"
)

func TestRemoveDeadEnds(t *testing.T) {
	g := gridFromRows(t,
		"#########",
		"#...#####",
		"#.#.....#",
		"#...###.#",
		"#########",
	)

	filled := RemoveDeadEnds(g)

	want := strings.Join([]string{
		"#########",
		"#...#####",
		"#.#.#####",
		"#...#####",
		"#########",
	}, "\n") + "\n"
	if got := g.String(); got != want {
		t.Errorf("After RemoveDeadEnds:\n%s\nwant:\n%s", got, want)
	}
	if filled != 5 {
		t.Errorf("Filled %d tiles, want 5", filled)
	}

	if again := RemoveDeadEnds(g); again != 0 {
		t.Errorf("Second pass filled %d tiles, want 0", again)
	}
}

func TestRemoveDeadEndsCollapsesTree(t *testing.T) {
	g := gridFromRows(t,
		"#######",
		"#.....#",
		"#.###.#",
		"#.#####",
		"#######",
	)

	RemoveDeadEnds(g)

	// A corridor with no loop shrinks to a single isolated tile.
	if got := g.Count(TileFloor); got != 1 {
		t.Errorf("Floor tiles left = %d, want 1\n%s", got, g.String())
	}
}

func TestTrimWalls(t *testing.T) {
	g := gridFromRows(t,
		"#########",
		"#.#######",
		"#.#######",
		"#.......#",
		"#########",
	)

	trimmed := TrimWalls(g)

	want := strings.Join([]string{
		"###      ",
		"#.#      ",
		"#.#######",
		"#.......#",
		"#########",
	}, "\n") + "\n"
	if got := g.String(); got != want {
		t.Errorf("After TrimWalls:\n%s\nwant:\n%s", got, want)
	}
	if trimmed != 12 {
		t.Errorf("Trimmed %d tiles, want 12", trimmed)
	}
}

func TestTrimWallsIdempotent(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		d := mustGenerate(t, 31, 21, seed)

		once := d.Grid.Clone()
		if n := TrimWalls(once); n != 0 {
			t.Errorf("seed %d: generated map still had %d buried walls", seed, n)
		}
		twice := once.Clone()
		TrimWalls(twice)
		if !once.Equal(twice) {
			t.Errorf("seed %d: second trim changed the grid", seed)
		}
	}
}

func TestTrimWallsKeepsOpenTiles(t *testing.T) {
	d := mustGenerate(t, 25, 25, 11)
	before := countOpen(d.Grid)

	g := d.Grid.Clone()
	TrimWalls(g)

	if after := countOpen(g); after != before {
		t.Errorf("Open tiles changed from %d to %d", before, after)
	}
}
