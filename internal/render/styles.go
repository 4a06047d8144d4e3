package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnake/internal/core"
)

// StyleTable maps display tags to the text drawn for one cell.
type StyleTable interface {
	Style(t core.Tag) string
	// CellWidth is the number of terminal columns one cell occupies.
	CellWidth() int
}

// ANSIStyles draws every cell as a run of spaces on an SGR background color.
type ANSIStyles struct {
	cells map[core.Tag]string
	width int
}

// NewANSIStyles builds the classic table: white border and body, green head,
// red food and fatal head, black floor.
func NewANSIStyles(cellWidth int) *ANSIStyles {
	if cellWidth < 1 {
		cellWidth = 1
	}
	pad := strings.Repeat(" ", cellWidth)
	sgr := func(code string) string {
		return csi + code + "m" + pad + csi + "0m"
	}
	return &ANSIStyles{
		width: cellWidth,
		cells: map[core.Tag]string{
			core.TagBorder:       sgr("47;1"),
			core.TagSnake:        sgr("47;1"),
			core.TagHead:         sgr("42;1"),
			core.TagGameOverHead: sgr("41;1"),
			core.TagFood:         sgr("41;1"),
			core.TagEmpty:        sgr("40"),
		},
	}
}

// Style returns the escape-wrapped cell for t.
func (a *ANSIStyles) Style(t core.Tag) string {
	if s, ok := a.cells[t]; ok {
		return s
	}
	return a.cells[core.TagEmpty]
}

// CellWidth returns the column width of one cell.
func (a *ANSIStyles) CellWidth() int {
	return a.width
}

// LipglossStyles renders cells with lipgloss background styles, letting the
// renderer downgrade colors to whatever the output terminal supports.
type LipglossStyles struct {
	cells map[core.Tag]string
	width int
}

// tagColors maps tags to ANSI 256-color background codes.
var tagColors = map[core.Tag]lipgloss.Color{
	core.TagEmpty:        lipgloss.Color("0"),
	core.TagBorder:       lipgloss.Color("245"),
	core.TagSnake:        lipgloss.Color("15"),
	core.TagHead:         lipgloss.Color("10"),
	core.TagGameOverHead: lipgloss.Color("9"),
	core.TagFood:         lipgloss.Color("1"),
}

// NewLipglossStyles pre-renders one cell per tag with r.
// A nil renderer uses the lipgloss default renderer.
func NewLipglossStyles(r *lipgloss.Renderer, cellWidth int) *LipglossStyles {
	if cellWidth < 1 {
		cellWidth = 1
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	pad := strings.Repeat(" ", cellWidth)

	cells := make(map[core.Tag]string, len(tagColors))
	for tag, color := range tagColors {
		cells[tag] = r.NewStyle().Background(color).Render(pad)
	}
	return &LipglossStyles{cells: cells, width: cellWidth}
}

// Style returns the pre-rendered cell for t.
func (l *LipglossStyles) Style(t core.Tag) string {
	if s, ok := l.cells[t]; ok {
		return s
	}
	return l.cells[core.TagEmpty]
}

// CellWidth returns the column width of one cell.
func (l *LipglossStyles) CellWidth() int {
	return l.width
}
