// Package config provides YAML-based configuration loading for the snake
// game: timing of the sampling window, grid limits and rule tunables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Grid   GridConfig   `yaml:"grid"`
	Rules  RulesConfig  `yaml:"rules"`
}

// TimingConfig defines the per-tick input sampling window.
type TimingConfig struct {
	TickBudget   time.Duration `yaml:"tick_budget"`
	PollInterval time.Duration `yaml:"poll_interval"`
	KeyHold      time.Duration `yaml:"key_hold"`
}

// GridConfig defines grid size limits and cell geometry.
type GridConfig struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per cell
}

// RulesConfig defines gameplay tunables.
type RulesConfig struct {
	SelfCollisionSkip int `yaml:"self_collision_skip"`
}

// Validate checks the config for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Timing.TickBudget <= 0:
		return fmt.Errorf("%w: timing.tick_budget must be positive, got %v", ErrInvalid, c.Timing.TickBudget)
	case c.Timing.PollInterval <= 0:
		return fmt.Errorf("%w: timing.poll_interval must be positive, got %v", ErrInvalid, c.Timing.PollInterval)
	case c.Timing.PollInterval > c.Timing.TickBudget:
		return fmt.Errorf("%w: timing.poll_interval %v exceeds tick_budget %v",
			ErrInvalid, c.Timing.PollInterval, c.Timing.TickBudget)
	case c.Timing.KeyHold < 0:
		return fmt.Errorf("%w: timing.key_hold must not be negative, got %v", ErrInvalid, c.Timing.KeyHold)
	case c.Grid.MinWidth < core.MinGridSize || c.Grid.MinHeight < core.MinGridSize:
		return fmt.Errorf("%w: grid minimum %dx%d is below %dx%d",
			ErrInvalid, c.Grid.MinWidth, c.Grid.MinHeight, core.MinGridSize, core.MinGridSize)
	case c.Grid.CellWidth < 1:
		return fmt.Errorf("%w: grid.cell_width must be at least 1, got %d", ErrInvalid, c.Grid.CellWidth)
	case c.Rules.SelfCollisionSkip < 0:
		return fmt.Errorf("%w: rules.self_collision_skip must not be negative, got %d",
			ErrInvalid, c.Rules.SelfCollisionSkip)
	}
	return nil
}

// Runtime builds the engine configuration for a discovered grid.
func (c SnakeConfig) Runtime(grid core.Grid, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:              grid,
		TickBudget:        c.Timing.TickBudget,
		PollInterval:      c.Timing.PollInterval,
		SelfCollisionSkip: c.Rules.SelfCollisionSkip,
		Seed:              seed,
	}
}
