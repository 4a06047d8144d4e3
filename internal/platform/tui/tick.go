// Package tui is the Bubble Tea backend. Key messages feed a hold tracker,
// a command samples one window per tick and the model advances the
// session with the result.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/session"
)

// SampledMsg carries the key resolved for one tick.
type SampledMsg struct {
	Key core.Key
}

// sampleCmd blocks for one sampling window off the update loop.
func sampleCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		return SampledMsg{Key: s.Sample()}
	}
}
