// Package viewer provides an interactive terminal browser for generated dungeons.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/logger"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/ui"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Viewer shows one dungeon at a time and lets the user step through seeds.
type Viewer struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *world.Generator
	width     int
	height    int
	seed      int64
	dungeon   *world.Dungeon
	genErr    error
	running   bool
}

// New creates a viewer that generates width x height dungeons starting at seed.
func New(gen *world.Generator, palette *gamedata.Palette, width, height int, seed int64) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, palette),
		generator: gen,
		width:     width,
		height:    height,
		seed:      seed,
		running:   true,
	}, nil
}

// Run executes the main loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	v.regenerate(ctx)
	for v.running {
		v.renderer.Render(v.dungeon, v.status())

		// Handle input (blocking)
		v.handleInput(ctx)
	}
	return nil
}

// regenerate builds the dungeon for the current seed.
func (v *Viewer) regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	v.dungeon, v.genErr = v.generator.Generate(ctx, v.width, v.height, v.seed)
	span.SetAttributes(attribute.Int64("dungeon.seed", v.seed))
	if v.genErr != nil {
		logger.Warning("viewer generation failed", "seed", v.seed, "error", v.genErr)
	}
}

func (v *Viewer) status() string {
	if v.genErr != nil {
		return fmt.Sprintf("seed %d: %v  [n]ext [p]rev [q]uit", v.seed, v.genErr)
	}
	return fmt.Sprintf("seed %d  %dx%d  rooms %d  [n]ext [p]rev [q]uit",
		v.seed, v.width, v.height, len(v.dungeon.Rooms))
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRight:
		v.step(ctx, 1)
	case tcell.KeyLeft:
		v.step(ctx, -1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n', 'N':
			v.step(ctx, 1)
		case 'p', 'P':
			v.step(ctx, -1)
		}
	}
}

func (v *Viewer) step(ctx context.Context, delta int64) {
	v.seed += delta
	v.regenerate(ctx)
}
