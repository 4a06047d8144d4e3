// Package session wires the sampler, the engine and the renderer into the
// per-tick loop: sample input, steer, advance, draw.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/render"
	"github.com/vovakirdan/termsnake/internal/snake"
)

// Sampler produces one resolved key per tick.
type Sampler interface {
	Sample() core.Key
}

// Display writes one complete frame per call.
type Display interface {
	Show(frame string) error
}

// Reason says why a session ended.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonQuit             // Quit key observed
	ReasonCollision        // Snake hit the border or itself
	ReasonBoardFull        // No cell left for food
)

func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonCollision:
		return "collision"
	case ReasonBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Outcome summarises a finished session.
type Outcome struct {
	Reason Reason
	Score  int
	Length int
	Ticks  uint64
}

// GameOver reports whether the session ended in a game result rather than
// a quit.
func (o Outcome) GameOver() bool {
	return o.Reason == ReasonCollision || o.Reason == ReasonBoardFull
}

// Session owns one game and drives it tick by tick.
type Session struct {
	game     *snake.Game
	sampler  Sampler
	renderer *render.Renderer
	logger   *log.Logger
}

// New creates a session. A nil logger discards output.
func New(game *snake.Game, sampler Sampler, renderer *render.Renderer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:     game,
		sampler:  sampler,
		renderer: renderer,
		logger:   logger,
	}
}

// Game returns the session's game for read-only inspection.
func (s *Session) Game() *snake.Game {
	return s.game
}

// Sample blocks for one sampling window.
func (s *Session) Sample() core.Key {
	return s.sampler.Sample()
}

// Step applies one sampled key and advances the game one tick. It returns
// the outcome and true once the session is finished.
func (s *Session) Step(k core.Key) (Outcome, bool) {
	if k == core.KeyQuit {
		return s.finish(ReasonQuit), true
	}

	before := s.game.Direction()
	if s.game.Steer(k) {
		s.logger.Debug("turn", "key", k, "from", before, "to", s.game.Direction())
	}

	s.game.NextIter()

	if s.game.AteLast() {
		food, _ := s.game.Food()
		s.logger.Debug("food eaten", "length", s.game.Length(), "food", food)
	}

	switch {
	case s.game.Won():
		return s.finish(ReasonBoardFull), true
	case s.game.IsOver():
		return s.finish(ReasonCollision), true
	}
	return Outcome{}, false
}

func (s *Session) finish(reason Reason) Outcome {
	out := Outcome{
		Reason: reason,
		Score:  s.game.Score(),
		Length: s.game.Length(),
		Ticks:  s.game.Tick(),
	}
	s.logger.Info("game ended",
		"reason", reason,
		"score", out.Score,
		"ticks", out.Ticks,
		"head", s.game.Head(),
	)
	return out
}

// Frame renders the current state as a full terminal frame.
func (s *Session) Frame() string {
	return s.renderer.Frame(s.game)
}

// Body renders the current state without cursor control sequences.
func (s *Session) Body() string {
	return s.renderer.Body(s.game)
}

// Start logs the opening position. Run calls it; backends that drive Step
// themselves call it once before the first tick.
func (s *Session) Start() {
	grid := s.game.Grid()
	food, _ := s.game.Food()
	s.logger.Info("game started",
		"grid", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"direction", s.game.Direction(),
		"food", food,
	)
}

// Run drives the session until quit or game over, writing one frame per
// tick to d. The fatal position is drawn once more before returning.
func (s *Session) Run(d Display) (Outcome, error) {
	s.Start()

	if err := d.Show(s.Frame()); err != nil {
		return Outcome{}, fmt.Errorf("session: display: %w", err)
	}

	for {
		out, done := s.Step(s.Sample())
		if done {
			if out.GameOver() {
				if err := d.Show(s.Frame()); err != nil {
					return out, fmt.Errorf("session: display: %w", err)
				}
			}
			return out, nil
		}
		if err := d.Show(s.Frame()); err != nil {
			return out, fmt.Errorf("session: display: %w", err)
		}
	}
}
