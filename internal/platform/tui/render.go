package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/termsnake/internal/session"
)

// renderHUD draws the status line above the board.
func renderHUD(t Theme, s *session.Session) string {
	g := s.Game()
	sep := t.HUDSeparator.Render(" │ ")

	var sb strings.Builder
	sb.WriteString(t.HUDTitle.Render("SNAKE"))
	sb.WriteString(sep)
	sb.WriteString(t.HUDValue.Render(fmt.Sprintf("score %d", g.Score())))
	sb.WriteString(sep)
	sb.WriteString(t.HUDValue.Render(fmt.Sprintf("length %d", g.Length())))
	sb.WriteString(sep)
	sb.WriteString(t.HUDValue.Render(g.Direction().String()))
	return sb.String()
}

// renderOverlay draws the end-of-game banner shown below the board.
func renderOverlay(t Theme, out session.Outcome) string {
	var title string
	switch out.Reason {
	case session.ReasonBoardFull:
		title = t.OverlayWin.Render("BOARD FULL")
	default:
		title = t.OverlayTitle.Render("GAME OVER")
	}
	text := t.OverlayText.Render(fmt.Sprintf("score %d in %d ticks, press any key to exit", out.Score, out.Ticks))
	return title + "  " + text
}
