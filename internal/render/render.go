// Package render turns game state into terminal frames. It fills a tag
// buffer from the engine state and serializes it through a StyleTable, so
// different terminal backends can reuse the same drawing rules.
package render

import (
	"strings"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Control sequences emitted around every frame.
const (
	csi         = "\x1b["
	ClearScreen = csi + "2J"
	CursorHome  = csi + "1;1H"
	HideCursor  = csi + "?25l"
	ShowCursor  = csi + "?25h"
)

// View is the read-only game state the renderer needs.
type View interface {
	Grid() core.Grid
	Body() []core.Position
	Food() (core.Position, bool)
	IsOver() bool
}

// Renderer draws game state into a reusable tag buffer.
type Renderer struct {
	styles StyleTable
	screen *core.Screen
}

// New creates a renderer using the given style table.
func New(styles StyleTable) *Renderer {
	return &Renderer{
		styles: styles,
		screen: core.NewScreen(0, 0),
	}
}

// Fill draws v into the tag buffer and returns it. Later layers override
// earlier ones: empty, border, body, food, head.
func (r *Renderer) Fill(v View) *core.Screen {
	grid := v.Grid()
	r.screen.Resize(grid.Width, grid.Height)
	r.screen.Clear()
	r.screen.DrawBorder(core.TagBorder)

	body := v.Body()
	for _, seg := range body {
		r.screen.Set(seg, core.TagSnake)
	}

	if food, ok := v.Food(); ok {
		r.screen.Set(food, core.TagFood)
	}

	if len(body) > 0 {
		head := core.TagHead
		if v.IsOver() {
			head = core.TagGameOverHead
		}
		r.screen.Set(body[len(body)-1], head)
	}

	return r.screen
}

// Body returns the styled rows of v, each terminated by a newline, without
// any cursor control sequences.
func (r *Renderer) Body(v View) string {
	s := r.Fill(v)

	var sb strings.Builder
	sb.Grow(s.Height() * (s.Width()*r.styles.CellWidth() + 1))
	for y := 0; y < s.Height(); y++ {
		for _, t := range s.Row(y) {
			sb.WriteString(r.styles.Style(t))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Frame serializes v to a complete frame: clear screen, cursor home and
// hide, the styled rows, then cursor home again so the next frame starts
// from the top-left corner.
func (r *Renderer) Frame(v View) string {
	var sb strings.Builder
	sb.WriteString(ClearScreen)
	sb.WriteString(CursorHome)
	sb.WriteString(HideCursor)
	sb.WriteString(r.Body(v))
	sb.WriteString(CursorHome)
	return sb.String()
}
