package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

func testConfig(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:              core.Grid{Width: w, Height: h},
		SelfCollisionSkip: DefaultSelfCollisionSkip,
		Seed:              seed,
	}
}

func newTestGame(t *testing.T, w, h int, seed int64) *Game {
	t.Helper()
	g, err := New(testConfig(w, h, seed))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// place puts the snake and food at fixed positions for scenario tests.
func place(g *Game, dir Direction, food core.Position, body ...core.Position) {
	g.snake = append([]core.Position(nil), body...)
	g.direction = dir
	g.food = food
	g.hasFood = true
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 10, 10, 42)

	if g.Length() != 1 {
		t.Errorf("Initial length = %d, expected 1", g.Length())
	}
	if g.Head() != core.Pos(5, 5) {
		t.Errorf("Initial head = %v, expected (5,5)", g.Head())
	}
	if !g.Direction().Valid() {
		t.Errorf("Initial direction %v is not valid", g.Direction())
	}
	food, ok := g.Food()
	if !ok {
		t.Fatal("Initial food should be placed")
	}
	if !g.Grid().InInterior(food) || food == g.Head() {
		t.Errorf("Initial food at %v is invalid", food)
	}
	if g.IsOver() {
		t.Error("New game should not be over")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(testConfig(3, 10, 1)); !errors.Is(err, core.ErrGridTooSmall) {
		t.Errorf("New() on 3x10 grid error = %v, expected ErrGridTooSmall", err)
	}

	cfg := testConfig(10, 10, 1)
	cfg.SelfCollisionSkip = -1
	if _, err := New(cfg); err == nil {
		t.Error("New() should reject a negative self-collision skip")
	}
}

func TestMoveWithoutTurn(t *testing.T) {
	g := newTestGame(t, 10, 10, 1)
	place(g, DirRight, core.Pos(1, 1), core.Pos(5, 5))

	g.NextIter()

	if g.Head() != core.Pos(6, 5) {
		t.Errorf("Head = %v, expected (6,5)", g.Head())
	}
	if g.Length() != 1 {
		t.Errorf("Length = %d, expected 1", g.Length())
	}
	if g.IsOver() {
		t.Error("Game should not be over")
	}
	if g.AteLast() {
		t.Error("AteLast should be false")
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		head core.Position
		want core.Position
	}{
		{"right wall", DirRight, core.Pos(8, 4), core.Pos(9, 4)},
		{"left wall", DirLeft, core.Pos(1, 4), core.Pos(0, 4)},
		{"top wall", DirUp, core.Pos(4, 1), core.Pos(4, 0)},
		{"bottom wall", DirDown, core.Pos(4, 8), core.Pos(4, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 10, 10, 7)
			place(g, tc.dir, core.Pos(5, 5), tc.head)

			g.NextIter()

			if !g.IsOver() {
				t.Fatal("Expected game over after hitting the wall")
			}
			if g.Won() {
				t.Error("Wall collision should not be a win")
			}
			if g.Head() != tc.want {
				t.Errorf("Fatal head = %v, expected %v", g.Head(), tc.want)
			}
			if g.Length() != 1 {
				t.Errorf("Length = %d, expected 1", g.Length())
			}
		})
	}
}

func TestEatingGrowsAndRespawns(t *testing.T) {
	g := newTestGame(t, 10, 10, 3)
	place(g, DirRight, core.Pos(5, 5), core.Pos(3, 5), core.Pos(4, 5))

	g.NextIter()

	if g.Length() != 3 {
		t.Fatalf("Length = %d, expected 3 after eating", g.Length())
	}
	if !g.AteLast() {
		t.Error("AteLast should be true")
	}
	if g.Score() != 2 {
		t.Errorf("Score = %d, expected 2", g.Score())
	}
	food, ok := g.Food()
	if !ok {
		t.Fatal("Food should be respawned")
	}
	if g.isSnakeAt(food) {
		t.Errorf("Food respawned on snake at %v", food)
	}
	if !g.Grid().InInterior(food) {
		t.Errorf("Food respawned outside interior at %v", food)
	}
	if g.Body()[0] != core.Pos(3, 5) {
		t.Errorf("Tail should be kept when growing, got %v", g.Body()[0])
	}
}

func TestNoImmediateReversal(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			g := newTestGame(t, 10, 10, 5)
			g.direction = d

			g.ChangeDir(d.Opposite())
			if g.Direction() != d {
				t.Errorf("Reversal %v -> %v should be ignored, got %v", d, d.Opposite(), g.Direction())
			}

			g.ChangeDir(d)
			g.ChangeDir(d)
			if g.Direction() != d {
				t.Errorf("Repeated request should keep %v, got %v", d, g.Direction())
			}

			g.ChangeDir(d.Left())
			if g.Direction() != d.Left() {
				t.Errorf("Perpendicular turn should apply, got %v", g.Direction())
			}
		})
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name    string
		start   Direction
		key     core.Key
		want    Direction
		changed bool
	}{
		{"turn left from up", DirUp, core.KeyTurnLeft, DirLeft, true},
		{"turn right from up", DirUp, core.KeyTurnRight, DirRight, true},
		{"turn left from right", DirRight, core.KeyTurnLeft, DirUp, true},
		{"turn right from down", DirDown, core.KeyTurnRight, DirLeft, true},
		{"forward keeps heading", DirLeft, core.KeyForward, DirLeft, false},
		{"none keeps heading", DirLeft, core.KeyNone, DirLeft, false},
		{"arrow turn", DirRight, core.KeyUp, DirUp, true},
		{"arrow reversal ignored", DirRight, core.KeyLeft, DirRight, false},
		{"arrow same heading", DirDown, core.KeyDown, DirDown, false},
		{"quit ignored", DirDown, core.KeyQuit, DirDown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 10, 10, 9)
			g.direction = tc.start

			changed := g.Steer(tc.key)
			if changed != tc.changed {
				t.Errorf("Steer(%v) changed = %v, expected %v", tc.key, changed, tc.changed)
			}
			if g.Direction() != tc.want {
				t.Errorf("Steer(%v) direction = %v, expected %v", tc.key, g.Direction(), tc.want)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 10, 10, 11)
	// Head at (2,3) came from the right; turning up runs into (2,2).
	place(g, DirUp, core.Pos(8, 8),
		core.Pos(1, 2),
		core.Pos(2, 2),
		core.Pos(3, 2),
		core.Pos(4, 2),
		core.Pos(4, 3),
		core.Pos(3, 3),
		core.Pos(2, 3),
	)

	g.NextIter()

	if !g.IsOver() {
		t.Fatal("Expected game over on self collision")
	}
	if g.Head() != core.Pos(2, 2) {
		t.Errorf("Fatal head = %v, expected (2,2)", g.Head())
	}
}

func TestSelfCollisionIgnoresRecentSegments(t *testing.T) {
	// The head turns back onto the oldest segment left after the tail
	// moves, so only the skip keeps the game alive.
	body := []core.Position{
		core.Pos(1, 2),
		core.Pos(2, 2),
		core.Pos(3, 2),
		core.Pos(3, 3),
		core.Pos(2, 3),
	}

	tests := []struct {
		name     string
		skip     int
		wantOver bool
	}{
		{"default skip", DefaultSelfCollisionSkip, false},
		{"no skip", 0, true},
		{"skip one", 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(10, 10, 13)
			cfg.SelfCollisionSkip = tc.skip
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			place(g, DirUp, core.Pos(8, 8), body...)

			g.NextIter()

			if g.Head() != core.Pos(2, 2) {
				t.Fatalf("Head = %v, expected (2,2)", g.Head())
			}
			if g.IsOver() != tc.wantOver {
				t.Errorf("IsOver() = %v with skip %d, expected %v", g.IsOver(), tc.skip, tc.wantOver)
			}
		})
	}
}

func TestSelfCollisionSkipConfigurable(t *testing.T) {
	// A tight 2x2 turn: the head moves onto the fourth most recent segment,
	// which the default skip ignores.
	body := []core.Position{
		core.Pos(1, 1),
		core.Pos(1, 2),
		core.Pos(2, 2),
		core.Pos(3, 2),
		core.Pos(3, 3),
		core.Pos(2, 3),
	}

	tests := []struct {
		name     string
		skip     int
		wantOver bool
	}{
		{"default skip", DefaultSelfCollisionSkip, false},
		{"smaller skip", 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(10, 10, 17)
			cfg.SelfCollisionSkip = tc.skip
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			place(g, DirUp, core.Pos(8, 8), body...)

			g.NextIter()

			if g.IsOver() != tc.wantOver {
				t.Errorf("IsOver() = %v, expected %v", g.IsOver(), tc.wantOver)
			}
		})
	}
}

func TestBoardFullIsWin(t *testing.T) {
	g := newTestGame(t, 4, 4, 19)
	place(g, DirLeft, core.Pos(1, 2),
		core.Pos(1, 1),
		core.Pos(2, 1),
		core.Pos(2, 2),
	)

	g.NextIter()

	if !g.IsOver() || !g.Won() {
		t.Fatalf("Filling the board should end the game as a win (over=%v won=%v)", g.IsOver(), g.Won())
	}
	if _, ok := g.Food(); ok {
		t.Error("No food should be present on a full board")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot state = %v, expected win", g.Snapshot().State)
	}
}

func TestNextIterAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(t, 10, 10, 23)
	place(g, DirRight, core.Pos(5, 5), core.Pos(8, 4))

	g.NextIter()
	before := g.Snapshot()
	g.NextIter()
	after := g.Snapshot()

	if before != after {
		t.Errorf("NextIter after game over changed state: %+v -> %+v", before, after)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 30, 20, 12345)
	g2 := newTestGame(t, 30, 20, 12345)

	keys := []core.Key{core.KeyForward, core.KeyTurnLeft, core.KeyForward, core.KeyTurnRight}
	for i := 0; i < 200 && !g1.IsOver(); i++ {
		k := keys[i%len(keys)]
		g1.Steer(k)
		g2.Steer(k)
		g1.NextIter()
		g2.NextIter()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	keys := []core.Key{core.KeyForward, core.KeyTurnLeft, core.KeyTurnRight, core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}

	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGame(t, 8, 7, seed)
		driver := rand.New(rand.NewSource(seed * 31))

		for i := 0; i < 500 && !g.IsOver(); i++ {
			g.Steer(keys[driver.Intn(len(keys))])

			before := g.Length()
			g.NextIter()
			after := g.Length()

			if after != before && after != before+1 {
				t.Fatalf("seed %d: length went from %d to %d", seed, before, after)
			}
			if g.AteLast() != (after == before+1) {
				t.Fatalf("seed %d: AteLast=%v but length %d -> %d", seed, g.AteLast(), before, after)
			}

			if food, ok := g.Food(); ok {
				if !g.Grid().InInterior(food) {
					t.Fatalf("seed %d: food outside interior at %v", seed, food)
				}
				if g.isSnakeAt(food) {
					t.Fatalf("seed %d: food on snake at %v", seed, food)
				}
			}

			if !g.IsOver() {
				for _, seg := range g.Body() {
					if !g.Grid().InInterior(seg) {
						t.Fatalf("seed %d: segment %v outside interior while playing", seed, seg)
					}
				}
				continue
			}

			// A death away from the border must be a self collision, which
			// requires more than DefaultSelfCollisionSkip checked segments.
			if !g.Won() && g.Grid().InInterior(g.Head()) && g.Length() <= DefaultSelfCollisionSkip+1 {
				t.Fatalf("seed %d: self collision with only %d segments", seed, g.Length())
			}
		}
	}
}
