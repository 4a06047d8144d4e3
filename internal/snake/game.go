// Package snake implements the snake game engine: a single snake on a
// bordered grid that grows by eating food and dies on the border or itself.
// The engine is a plain owned value advanced one tick at a time; it knows
// nothing about terminals, timing or keyboards.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/core"
)

// DefaultSelfCollisionSkip is how many of the most recent segments the
// self-collision check ignores.
const DefaultSelfCollisionSkip = 4

// ErrBoardFull is reported when no interior cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Game holds the state of one play session.
type Game struct {
	grid          core.Grid
	rng           *rand.Rand
	tick          uint64
	collisionSkip int

	// Snake state
	snake     []core.Position // Oldest segment first, head last
	direction Direction
	ateLast   bool // Food eaten on the most recent tick

	// Food state
	food    core.Position
	hasFood bool

	// Game state flags
	gameOver bool
	won      bool // Board filled; no cell left for food
}

// New creates a game on cfg.Grid with a single-segment snake at the grid
// center, a uniformly random heading and food on a free interior cell.
func New(cfg core.RuntimeConfig) (*Game, error) {
	g := &Game{}
	if err := g.Reset(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if err := cfg.Grid.Validate(); err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	if cfg.SelfCollisionSkip < 0 {
		return fmt.Errorf("snake: negative self-collision skip %d", cfg.SelfCollisionSkip)
	}

	g.grid = cfg.Grid
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.collisionSkip = cfg.SelfCollisionSkip
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.ateLast = false

	g.snake = []core.Position{g.grid.Center()}
	g.direction = RandomDirection(g.rng)

	if err := g.respawnFood(); err != nil {
		return err
	}
	return nil
}

// ChangeDir replaces the current heading unless d is its exact opposite,
// in which case the request is ignored. Repeating a request is a no-op.
func (g *Game) ChangeDir(d Direction) {
	if !d.Valid() || d.IsOpposite(g.direction) {
		return
	}
	g.direction = d
}

// Steer applies a sampled key to the heading. Turn keys rotate relative to
// the current heading, arrow keys request an absolute heading and every
// other key keeps going forward. Returns true if the heading changed.
func (g *Game) Steer(k core.Key) bool {
	d, ok := FromKey(k, g.direction)
	if !ok {
		return false
	}
	before := g.direction
	g.ChangeDir(d)
	return g.direction != before
}

// NextIter advances the game by one tick. Once the game is over further
// calls do nothing.
func (g *Game) NextIter() {
	if g.gameOver || len(g.snake) == 0 {
		return
	}
	g.tick++

	newHead := g.direction.Step(g.Head())

	// Growth is decided before collisions: eating keeps the tail.
	g.ateLast = g.hasFood && newHead == g.food
	if !g.ateLast {
		copy(g.snake, g.snake[1:])
		g.snake = g.snake[:len(g.snake)-1]
	}

	if g.grid.OnBorder(newHead) || !g.grid.Contains(newHead) {
		g.gameOver = true
	}

	if g.hitsBody(newHead) {
		g.gameOver = true
	}

	// The head is appended even on a fatal move so it can still be drawn.
	g.snake = append(g.snake, newHead)

	if g.ateLast {
		if err := g.respawnFood(); errors.Is(err, ErrBoardFull) {
			g.won = true
			g.gameOver = true
		}
	}
}

// hitsBody reports whether p overlaps a segment older than the most recent
// collisionSkip ones. Short snakes are never checked.
func (g *Game) hitsBody(p core.Position) bool {
	if len(g.snake) <= g.collisionSkip {
		return false
	}
	for _, seg := range g.snake[:len(g.snake)-g.collisionSkip] {
		if seg == p {
			return true
		}
	}
	return false
}

// IsOver returns true once the game has ended.
func (g *Game) IsOver() bool {
	return g.gameOver
}

// Won returns true if the game ended because the board filled up.
func (g *Game) Won() bool {
	return g.won
}

// Grid returns the playable area.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Head returns the most recently added segment.
func (g *Game) Head() core.Position {
	return g.snake[len(g.snake)-1]
}

// Body returns a copy of the snake, oldest segment first.
func (g *Game) Body() []core.Position {
	body := make([]core.Position, len(g.snake))
	copy(body, g.snake)
	return body
}

// Length returns the number of segments.
func (g *Game) Length() int {
	return len(g.snake)
}

// Food returns the food position. The second result is false when the board
// is full and no food could be placed.
func (g *Game) Food() (core.Position, bool) {
	return g.food, g.hasFood
}

// AteLast returns true if food was eaten on the most recent tick.
func (g *Game) AteLast() bool {
	return g.ateLast
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return len(g.snake) - 1
}

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() uint64 {
	return g.tick
}
