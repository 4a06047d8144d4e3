package core

import "time"

// RuntimeConfig contains the tunables a play session is built from.
// Everything here can be changed without recompiling so tests can exercise
// edge cases such as a different self-collision threshold.
type RuntimeConfig struct {
	Grid              Grid          // Playable area, border included
	TickBudget        time.Duration // Wall-clock length of one sampling window
	PollInterval      time.Duration // Spacing between keyboard queries within a window
	SelfCollisionSkip int           // Most recent segments ignored by the self-collision check
	Seed              int64         // RNG seed; 0 means use current time in the platform layer
}
