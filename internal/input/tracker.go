package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Tracker turns key press events into a "currently held" query. Terminals
// only report presses (repeated while a key is held down), so a key counts
// as held for a hold duration after its latest press.
//
// Tracker is safe for concurrent use: presses arrive from the platform's
// reader goroutine while the sampler queries from the game loop.
type Tracker struct {
	mu      sync.Mutex
	hold    time.Duration
	now     func() time.Time
	pressed map[core.Key]*press
}

type press struct {
	at   time.Time
	seen bool // Reported by HeldKeys since the latest press
}

// NewTracker creates a tracker that keeps keys held for hold after a press.
func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{
		hold:    hold,
		now:     time.Now,
		pressed: make(map[core.Key]*press),
	}
}

// Press records a key press.
func (t *Tracker) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pressed[k] = &press{at: t.now()}
}

// HeldKeys returns the keys pressed within the hold duration.
func (t *Tracker) HeldKeys() core.KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	held := core.NewKeySet()
	for k, p := range t.pressed {
		if now.Sub(p.at) > t.hold {
			delete(t.pressed, k)
			continue
		}
		p.seen = true
		held.Set(k)
	}
	return held
}

// ResetWindow forgets presses that an earlier window already reported, so a
// single tap is not acted on twice. Presses nobody has seen yet carry over.
func (t *Tracker) ResetWindow() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, p := range t.pressed {
		if p.seen {
			delete(t.pressed, k)
		}
	}
}

var _ core.KeyboardSource = (*Tracker)(nil)
var _ WindowResetter = (*Tracker)(nil)
