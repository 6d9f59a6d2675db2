package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonforge/internal/logger"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 79
	DefaultHeight = 23
)

// Options holds the generator tunables.
type Options struct {
	// NumRoomTries is how many room placements are attempted.
	NumRoomTries int
	// ExtraConnectorChance is the inverse chance of opening a connector
	// between regions that are already joined. Higher values give fewer loops.
	ExtraConnectorChance int
	// RoomExtraSize allows rooms to be larger.
	RoomExtraSize int
	// WindingPercent is the chance, out of 100, that a corridor keeps going
	// in the direction it was already heading.
	WindingPercent int
}

// DefaultOptions returns the standard tunables.
func DefaultOptions() Options {
	return Options{
		NumRoomTries:         50,
		ExtraConnectorChance: 40,
		RoomExtraSize:        0,
		WindingPercent:       60,
	}
}

// Validate checks that every tunable is in range.
func (o Options) Validate() error {
	switch {
	case o.NumRoomTries < 0:
		return fmt.Errorf("%w: room tries %d is negative", ErrInvalidOptions, o.NumRoomTries)
	case o.ExtraConnectorChance < 1:
		return fmt.Errorf("%w: extra connector chance %d must be at least 1", ErrInvalidOptions, o.ExtraConnectorChance)
	case o.RoomExtraSize < 0:
		return fmt.Errorf("%w: room extra size %d is negative", ErrInvalidOptions, o.RoomExtraSize)
	case o.WindingPercent < 0 || o.WindingPercent > 100:
		return fmt.Errorf("%w: winding percent %d outside [0,100]", ErrInvalidOptions, o.WindingPercent)
	}
	return nil
}

// Dungeon is a finished map.
type Dungeon struct {
	*Grid
	Rooms []Room   // Accepted rooms in placement order
	Exit  Position // The locked door
	Start Position // The player marker
	Seed  int64
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	return d.Tile(Position{x, y})
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.Tile(Position{x, y}).IsPassable()
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Generator builds dungeons from rooms and mazes. It keeps no state between
// calls, so one generator can be reused.
type Generator struct {
	opts Options

	// OnDecorateRoom is called once per accepted room, in placement order,
	// after buried walls are trimmed.
	OnDecorateRoom func(Room)
}

// NewGenerator creates a generator with the given tunables.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		opts:           opts,
		OnDecorateRoom: func(Room) {},
	}, nil
}

// Options returns the generator's tunables.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate creates a dungeon with the default tunables.
func Generate(ctx context.Context, width, height int, seed int64) (*Dungeon, error) {
	gen, err := NewGenerator(DefaultOptions())
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, width, height, seed)
}

// Generate creates a dungeon from a seed. The same size, seed and options
// always produce the same map.
func (g *Generator) Generate(ctx context.Context, width, height int, seed int64) (*Dungeon, error) {
	d, err := g.GenerateWithSource(ctx, width, height, NewSource(seed))
	if err != nil {
		return nil, err
	}
	d.Seed = seed
	return d, nil
}

// GenerateWithSource creates a dungeon drawing from src. Either a complete
// dungeon or an error is returned, never a partial map.
func (g *Generator) GenerateWithSource(ctx context.Context, width, height int, src Source) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
	)

	grid, err := NewGrid(width, height)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid dimensions")
		return nil, err
	}

	b := newBuilder(grid, g.opts, src)
	phases := []struct {
		name string
		run  func() error
	}{
		{"place_rooms", b.placeRooms},
		{"carve_mazes", b.carveMazes},
		{"connect_regions", b.connectRegions},
		{"prune_dead_ends", b.pruneDeadEnds},
		{"trim_walls", b.trimWalls},
		{"decorate_rooms", func() error { b.decorateRooms(g.OnDecorateRoom); return nil }},
		{"place_exit", b.placeExit},
		{"place_start", b.placeStart},
	}

	for _, phase := range phases {
		_, phaseSpan := tracer.Start(ctx, "dungeon."+phase.name)
		err := phase.run()
		if err != nil {
			phaseSpan.RecordError(err)
			phaseSpan.SetStatus(codes.Error, phase.name+" failed")
		}
		phaseSpan.End()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation failed")
			logger.Error("dungeon generation failed", "phase", phase.name, "error", err)
			return nil, fmt.Errorf("%s: %w", phase.name, err)
		}
		logger.Debug("dungeon phase complete", "phase", phase.name)
	}

	// Record telemetry
	span.SetAttributes(
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int("dungeon.region_count", b.currentRegion+1),
		attribute.Int("dungeon.connector_count", b.connectorCount),
		attribute.Int("dungeon.junction_count", b.junctions),
		attribute.Int("dungeon.dead_ends_filled", b.deadEndsFilled),
		attribute.Int("dungeon.walls_trimmed", b.wallsTrimmed),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Info("dungeon generated",
		"width", width,
		"height", height,
		"rooms", len(b.rooms),
		"regions", b.currentRegion+1,
		"junctions", b.junctions,
	)

	return &Dungeon{
		Grid:  b.grid,
		Rooms: b.rooms,
		Exit:  b.exit,
		Start: b.start,
	}, nil
}

// builder holds the scratch state of one generation call.
type builder struct {
	grid *Grid
	opts Options
	src  Source

	// regions maps each carved cell to the region it was carved in, -1 otherwise.
	regions       []int
	currentRegion int

	rooms       []Room
	exit, start Position

	connectorCount int
	junctions      int
	deadEndsFilled int
	wallsTrimmed   int
}

func newBuilder(grid *Grid, opts Options, src Source) *builder {
	regions := make([]int, grid.Area())
	for i := range regions {
		regions[i] = -1
	}
	return &builder{
		grid:          grid,
		opts:          opts,
		src:           src,
		regions:       regions,
		currentRegion: -1,
	}
}

// startRegion begins a new region; subsequent carves belong to it.
func (b *builder) startRegion() {
	b.currentRegion++
}

// carve opens a cell and assigns it to the current region.
func (b *builder) carve(p Position) {
	b.grid.Set(p, TileFloor)
	b.regions[b.grid.index(p)] = b.currentRegion
}

// regionAt returns the region of p, or -1 if p was never carved.
func (b *builder) regionAt(p Position) int {
	if !b.grid.InBounds(p) {
		return -1
	}
	return b.regions[b.grid.index(p)]
}

func (b *builder) decorateRooms(hook func(Room)) {
	if hook == nil {
		return
	}
	for _, room := range b.rooms {
		hook(room)
	}
}
