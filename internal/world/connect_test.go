package world

import (
	"errors"
	"testing"
)

func TestFindConnectors(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	b := newBuilder(g, DefaultOptions(), &zeroSource{})

	// Two single-cell regions with one wall between them, and a third
	// region that only touches the second through a corner.
	b.startRegion()
	b.carve(Position{1, 1})
	b.startRegion()
	b.carve(Position{3, 1})
	b.startRegion()
	b.carve(Position{5, 3})

	connectors := b.findConnectors()
	if len(connectors) != 1 {
		t.Fatalf("Found %d connectors, want 1: %+v", len(connectors), connectors)
	}
	c := connectors[0]
	if c.pos != (Position{2, 1}) {
		t.Errorf("Connector at %v, want (2,1)", c.pos)
	}
	if len(c.regions) != 2 || c.regions[0] != 0 || c.regions[1] != 1 {
		t.Errorf("Connector regions = %v, want [0 1]", c.regions)
	}
}

func TestConnectRegionsJoinsEverything(t *testing.T) {
	g, err := NewGrid(9, 5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	b := newBuilder(g, DefaultOptions(), NewSource(5))

	// A row of isolated cells, each its own region.
	for x := 1; x < 9; x += 2 {
		b.startRegion()
		b.carve(Position{x, 1})
		b.carve(Position{x, 2})
		b.carve(Position{x, 3})
	}

	if err := b.connectRegions(); err != nil {
		t.Fatalf("connectRegions failed: %v", err)
	}

	for x := 2; x < 8; x += 2 {
		opened := 0
		for y := 1; y <= 3; y++ {
			if g.Tile(Position{x, y}) == TileFloor {
				opened++
			}
		}
		if opened == 0 {
			t.Errorf("Column %d between regions was never opened:\n%s", x, g.String())
		}
	}
}

func TestConnectRegionsReportsUnreachableRegion(t *testing.T) {
	g, err := NewGrid(7, 7)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	b := newBuilder(g, DefaultOptions(), &zeroSource{})

	// Two regions with a double wall between them can never be joined.
	b.startRegion()
	b.carve(Position{1, 1})
	b.startRegion()
	b.carve(Position{5, 5})

	err = b.connectRegions()
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("connectRegions error = %v, want ErrInvariantViolation", err)
	}
}

func TestRepresentatives(t *testing.T) {
	merged := []int{0, 0, 2, 2, 4}

	got := representatives([]int{1, 3, 4}, merged)
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("representatives = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("representatives = %v, want %v", got, want)
			break
		}
	}

	if spansRegions([]int{0, 1}, merged) {
		t.Error("Regions 0 and 1 were merged and should not span")
	}
	if !spansRegions([]int{1, 2}, merged) {
		t.Error("Regions 1 and 2 are still apart")
	}
}
