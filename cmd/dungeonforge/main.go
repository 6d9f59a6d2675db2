// Package main is the entry point for dungeonforge.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonforge/internal/config"
	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/logger"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/ui"
	"github.com/samdwyer/dungeonforge/internal/viewer"
	"github.com/samdwyer/dungeonforge/internal/world"
)

func main() {
	configPath := flag.String("config", "dungeonforge.yaml", "Path to YAML config file")
	width := flag.Int("width", 0, "Map width, odd (0 uses config)")
	height := flag.Int("height", 0, "Map height, odd (0 uses config)")
	seed := flag.Int64("seed", 0, "Random seed (0 uses config, then the clock)")
	view := flag.Bool("view", false, "Browse dungeons in an interactive terminal viewer")
	colorMode := flag.String("color", "auto", "Color output: auto, always or never")
	ascii := flag.Bool("ascii", false, "Print raw tile characters instead of palette glyphs")
	flag.Parse()

	// Load .env file for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	logConfig, err := logger.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load logging config: %v", err)
	}
	if *view {
		// Console output would draw over the viewer.
		logConfig.ConsoleEnabled = false
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(&cfg.Dungeon, *width, *height, *seed)
	if cfg.Dungeon.Seed == 0 {
		cfg.Dungeon.Seed = time.Now().UnixNano()
	}
	if err := cfg.Dungeon.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warning("telemetry setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	gen, err := world.NewGenerator(cfg.Dungeon.GeneratorOptions())
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		log.Fatalf("Failed to load tile palette: %v", err)
	}

	if *view {
		v, err := viewer.New(gen, palette, cfg.Dungeon.Width, cfg.Dungeon.Height, cfg.Dungeon.Seed)
		if err != nil {
			log.Fatalf("Failed to initialize viewer: %v", err)
		}
		if err := v.Run(ctx); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
		return
	}

	dungeon, err := gen.Generate(ctx, cfg.Dungeon.Width, cfg.Dungeon.Height, cfg.Dungeon.Seed)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if *ascii {
		fmt.Print(dungeon.String())
	} else if err := ui.WriteText(os.Stdout, dungeon.Grid, palette, useColor(*colorMode)); err != nil {
		log.Fatalf("Failed to write map: %v", err)
	}
	fmt.Fprintf(os.Stderr, "seed %d, %d rooms, exit at (%d,%d), start at (%d,%d)\n",
		cfg.Dungeon.Seed, len(dungeon.Rooms), dungeon.Exit.X, dungeon.Exit.Y, dungeon.Start.X, dungeon.Start.Y)
}

// applyFlags overrides config values with any flags that were set.
func applyFlags(d *config.DungeonConfig, width, height int, seed int64) {
	if width != 0 {
		d.Width = width
	}
	if height != 0 {
		d.Height = height
	}
	if seed != 0 {
		d.Seed = seed
	}
}

// useColor resolves the -color flag against whether stdout is a terminal.
func useColor(mode string) bool {
	switch mode {
	case "always":
		// Piped output is otherwise detected as colorless.
		color.ForceColor()
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
