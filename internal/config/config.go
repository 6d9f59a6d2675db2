// Package config loads dungeonforge settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Config holds every non-logging setting. Logging is read from the same
// file by the logger package.
type Config struct {
	Dungeon   DungeonConfig    `yaml:"dungeon"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// DungeonConfig holds map size, seed and generator tunables.
type DungeonConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	NumRoomTries         int `yaml:"num_room_tries"`
	ExtraConnectorChance int `yaml:"extra_connector_chance"`
	RoomExtraSize        int `yaml:"room_extra_size"`
	WindingPercent       int `yaml:"winding_percent"`
}

// DefaultConfig returns a Config with the standard generator settings.
func DefaultConfig() *Config {
	opts := world.DefaultOptions()
	return &Config{
		Dungeon: DungeonConfig{
			Width:                world.DefaultWidth,
			Height:               world.DefaultHeight,
			NumRoomTries:         opts.NumRoomTries,
			ExtraConnectorChance: opts.ExtraConnectorChance,
			RoomExtraSize:        opts.RoomExtraSize,
			WindingPercent:       opts.WindingPercent,
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies environment
// overrides. A missing file is not an error; defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return config, err
		}
	}

	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

// applyEnv overrides values from DUNGEON_* and OTEL_ENABLED variables.
func (c *Config) applyEnv() error {
	ints := []struct {
		name   string
		target *int
	}{
		{"DUNGEON_WIDTH", &c.Dungeon.Width},
		{"DUNGEON_HEIGHT", &c.Dungeon.Height},
	}
	for _, v := range ints {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		*v.target = n
	}

	if raw := os.Getenv("DUNGEON_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		c.Dungeon.Seed = seed
	}

	if raw := os.Getenv("OTEL_ENABLED"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			c.Telemetry.Enabled = enabled
		}
	}
	return nil
}

// GeneratorOptions returns the tunables in the form the generator takes.
func (d DungeonConfig) GeneratorOptions() world.Options {
	return world.Options{
		NumRoomTries:         d.NumRoomTries,
		ExtraConnectorChance: d.ExtraConnectorChance,
		RoomExtraSize:        d.RoomExtraSize,
		WindingPercent:       d.WindingPercent,
	}
}

// Validate checks size and tunables before any generation is attempted.
func (d DungeonConfig) Validate() error {
	if d.Width%2 == 0 || d.Height%2 == 0 || d.Width < world.MinDimension || d.Height < world.MinDimension {
		return fmt.Errorf("%w: %dx%d", world.ErrInvalidDimensions, d.Width, d.Height)
	}
	return d.GeneratorOptions().Validate()
}
