// Package input converts a repeatedly polled "keys currently held" query into
// one steering decision per tick.
package input

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Sleeper suspends the caller for d. time.Sleep in production, a recorder in
// tests.
type Sleeper func(d time.Duration)

// WindowResetter is implemented by keyboard sources that need to know when
// a new sampling window starts.
type WindowResetter interface {
	ResetWindow()
}

// Window accumulates the samples of one tick. The last recognised key wins,
// except quit, which sticks once seen.
type Window struct {
	candidate core.Key
	quit      bool
}

// NewWindow creates a window that resolves to KeyForward when nothing is
// observed.
func NewWindow() Window {
	return Window{candidate: core.KeyForward}
}

// Observe records one sample.
func (w *Window) Observe(held core.KeySet) {
	switch k := held.First(); k {
	case core.KeyNone:
	case core.KeyQuit:
		w.quit = true
	default:
		w.candidate = k
	}
}

// Quit reports whether quit has been seen in this window.
func (w Window) Quit() bool {
	return w.quit
}

// Result returns the key the window resolves to.
func (w Window) Result() core.Key {
	if w.quit {
		return core.KeyQuit
	}
	return w.candidate
}

// Resolve folds a sequence of samples into one key.
func Resolve(samples ...core.KeySet) core.Key {
	w := NewWindow()
	for _, s := range samples {
		w.Observe(s)
	}
	return w.Result()
}

// Sampler runs a fixed-length polling window per tick.
type Sampler struct {
	source core.KeyboardSource
	sleep  Sleeper
	polls  int
	before time.Duration // Sleep before each query
	after  time.Duration // Sleep after each query
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSleeper replaces time.Sleep.
func WithSleeper(s Sleeper) Option {
	return func(sm *Sampler) {
		sm.sleep = s
	}
}

// NewSampler creates a sampler that splits tickBudget into
// tickBudget/pollInterval sub-intervals and queries source in the middle of
// each one.
func NewSampler(source core.KeyboardSource, tickBudget, pollInterval time.Duration, opts ...Option) (*Sampler, error) {
	if source == nil {
		return nil, fmt.Errorf("input: nil keyboard source")
	}
	if pollInterval <= 0 || tickBudget <= 0 {
		return nil, fmt.Errorf("input: tick budget %v and poll interval %v must be positive", tickBudget, pollInterval)
	}
	if pollInterval > tickBudget {
		return nil, fmt.Errorf("input: poll interval %v exceeds tick budget %v", pollInterval, tickBudget)
	}

	s := &Sampler{
		source: source,
		sleep:  time.Sleep,
		polls:  int(tickBudget / pollInterval),
		before: pollInterval / 2,
	}
	s.after = pollInterval - s.before
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FromConfig creates a sampler with the tick budget and poll interval of cfg.
func FromConfig(source core.KeyboardSource, cfg core.RuntimeConfig, opts ...Option) (*Sampler, error) {
	return NewSampler(source, cfg.TickBudget, cfg.PollInterval, opts...)
}

// Polls returns the number of keyboard queries per window.
func (s *Sampler) Polls() int {
	return s.polls
}

// Window returns the wall-clock upper bound of one sampling window.
func (s *Sampler) Window() time.Duration {
	return time.Duration(s.polls) * (s.before + s.after)
}

// Sample blocks for one window and returns the resolved key: KeyQuit if quit
// was seen, else the last recognised key, else KeyForward. A quit sighting
// ends the window early.
func (s *Sampler) Sample() core.Key {
	if r, ok := s.source.(WindowResetter); ok {
		r.ResetWindow()
	}

	w := NewWindow()
	for i := 0; i < s.polls; i++ {
		s.sleep(s.before)
		w.Observe(s.source.HeldKeys())
		if w.Quit() {
			break
		}
		s.sleep(s.after)
	}
	return w.Result()
}
