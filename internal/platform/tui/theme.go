package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles for everything drawn around the board.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style

	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayWin   lipgloss.Style
	OverlayText  lipgloss.Style
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		OverlayWin:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
