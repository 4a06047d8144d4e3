package keymap

import (
	"testing"

	"github.com/vovakirdan/termsnake/internal/core"
)

func TestLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		name     string
		expected core.Key
	}{
		{"a", core.KeyTurnLeft},
		{"A", core.KeyTurnLeft},
		{"d", core.KeyTurnRight},
		{"w", core.KeyForward},
		{"up", core.KeyUp},
		{"down", core.KeyDown},
		{"left", core.KeyLeft},
		{"right", core.KeyRight},
		{"esc", core.KeyQuit},
		{"q", core.KeyQuit},
		{"ctrl+c", core.KeyQuit},
		{"x", core.KeyNone},
		{"", core.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Lookup(Name(tc.name)); got != tc.expected {
				t.Errorf("Lookup(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestHelpCoversAllBindings(t *testing.T) {
	km := Default()

	n := 0
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
			n++
		}
	}
	if n != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", n)
	}
}
