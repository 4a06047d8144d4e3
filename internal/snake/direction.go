package snake

import (
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Direction is one of the four cardinal headings. There is no neutral value:
// a snake is always heading somewhere.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirRight
	DirDown
)

// Directions lists all headings in declaration order.
var Directions = []Direction{DirUp, DirLeft, DirRight, DirDown}

// RandomDirection picks one of the four headings uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirDown
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite checks if two directions are opposite.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}

// Left returns the heading after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirLeft:
		return DirDown
	case DirDown:
		return DirRight
	default:
		return DirUp
	}
}

// Right returns the heading after a clockwise quarter turn.
func (d Direction) Right() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	default:
		return DirUp
	}
}

// Step returns p moved one cell in direction d. Y grows downwards.
func (d Direction) Step(p core.Position) core.Position {
	switch d {
	case DirUp:
		return p.Add(0, -1)
	case DirDown:
		return p.Add(0, 1)
	case DirLeft:
		return p.Add(-1, 0)
	case DirRight:
		return p.Add(1, 0)
	default:
		return p
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// FromKey resolves a key to the heading it requests relative to current.
// The second result is false for keys that request no change.
func FromKey(k core.Key, current Direction) (Direction, bool) {
	switch k {
	case core.KeyTurnLeft:
		return current.Left(), true
	case core.KeyTurnRight:
		return current.Right(), true
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	default:
		return current, false
	}
}
