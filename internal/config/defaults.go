package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: TimingConfig{
			TickBudget:   500 * time.Millisecond,
			PollInterval: 70 * time.Millisecond,
			KeyHold:      150 * time.Millisecond,
		},
		Grid: GridConfig{
			MinWidth:  10,
			MinHeight: 10,
			CellWidth: 2,
		},
		Rules: RulesConfig{
			SelfCollisionSkip: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
