package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// connector is a wall tile bordering two or more regions.
type connector struct {
	pos     Position
	regions []int // distinct, ascending
}

// findConnectors scans the interior for walls that touch at least two
// different regions, in row-major order.
func (b *builder) findConnectors() []connector {
	var connectors []connector
	for y := 1; y < b.grid.Height()-1; y++ {
		for x := 1; x < b.grid.Width()-1; x++ {
			pos := Position{x, y}
			if b.grid.Tile(pos) != TileWall {
				continue
			}

			var regions []int
			for _, dir := range Cardinals {
				region := b.regionAt(pos.Add(dir))
				if region < 0 || containsInt(regions, region) {
					continue
				}
				regions = append(regions, region)
			}
			if len(regions) < 2 {
				continue
			}

			sort.Ints(regions)
			connectors = append(connectors, connector{pos: pos, regions: regions})
		}
	}
	return connectors
}

// connectRegions opens connectors at random until every region is joined
// into one. Connectors made redundant by a merge are dropped, occasionally
// opening one anyway so the dungeon gets some loops.
func (b *builder) connectRegions() error {
	connectors := b.findConnectors()
	b.connectorCount = len(connectors)

	regionCount := b.currentRegion + 1

	// merged maps an original region to the region it has been merged into.
	merged := make([]int, regionCount)
	open := mapset.New[int]()
	for i := range merged {
		merged[i] = i
		open.Put(i)
	}

	for iterations := 0; open.Size() > 1; iterations++ {
		if len(connectors) == 0 {
			return fmt.Errorf("%w: no connectors left with %d regions unjoined",
				ErrInvariantViolation, open.Size())
		}
		if iterations > b.grid.Area() {
			return fmt.Errorf("%w: region merge did not settle after %d rounds",
				ErrInvariantViolation, iterations)
		}

		used := connectors[b.src.Intn(len(connectors))]
		b.addJunction(used.pos)

		// Pick the smallest representative as the destination and fold
		// every other one into it. Earlier merges mean any original region
		// may point at a source, so the whole table is rewritten.
		reps := representatives(used.regions, merged)
		dest := reps[0]
		sources := mapset.New[int]()
		for _, rep := range reps[1:] {
			sources.Put(rep)
			open.Remove(rep)
		}
		for i := range merged {
			if sources.Has(merged[i]) {
				merged[i] = dest
			}
		}

		remaining := connectors[:0]
		for _, c := range connectors {
			// Don't allow connectors right next to each other.
			if c.pos.Adjacent(used.pos) {
				continue
			}

			if spansRegions(c.regions, merged) {
				remaining = append(remaining, c)
				continue
			}

			// Redundant, but open it now and then for a loop.
			if b.src.Intn(b.opts.ExtraConnectorChance) < 1 {
				b.addJunction(c.pos)
			}
		}
		connectors = remaining
	}
	return nil
}

// addJunction opens a connector. A rare junction rolls for an alternate
// style; every style currently opens as plain floor.
func (b *builder) addJunction(pos Position) {
	if b.src.Intn(4) < 1 {
		b.src.Intn(3)
	}
	b.grid.Set(pos, TileFloor)
	b.junctions++
}

// representatives resolves regions through the merge table and returns the
// distinct results in ascending order.
func representatives(regions, merged []int) []int {
	reps := make([]int, 0, len(regions))
	for _, region := range regions {
		rep := merged[region]
		if !containsInt(reps, rep) {
			reps = append(reps, rep)
		}
	}
	sort.Ints(reps)
	return reps
}

// spansRegions reports whether regions still resolve to more than one
// representative.
func spansRegions(regions, merged []int) bool {
	reps := mapset.New[int]()
	for _, region := range regions {
		reps.Put(merged[region])
	}
	return reps.Size() > 1
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
