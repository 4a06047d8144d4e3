// Package term is the raw terminal backend: it discovers the grid from the
// terminal size, reads keys from stdin in raw mode and writes frames
// straight to stdout.
package term

import (
	"errors"
	"fmt"

	xterm "golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
)

var (
	// ErrSizeUnavailable is returned when the terminal size cannot be read.
	ErrSizeUnavailable = errors.New("terminal size unavailable")
	// ErrTerminalTooSmall is returned when the terminal cannot fit the
	// minimum grid.
	ErrTerminalTooSmall = errors.New("console too small")
)

// DiscoverGrid converts a terminal size in columns and rows to a grid.
// Each cell is cellWidth columns wide and the last row is left free for
// the cursor. The terminal must be strictly larger than the minimum grid.
func DiscoverGrid(cols, rows int, cfg config.GridConfig) (core.Grid, error) {
	cellWidth := max(cfg.CellWidth, 1)
	if cols <= cfg.MinWidth*cellWidth || rows <= cfg.MinHeight {
		return core.Grid{}, fmt.Errorf("%w: %dx%d, need more than %dx%d",
			ErrTerminalTooSmall, cols, rows, cfg.MinWidth*cellWidth, cfg.MinHeight)
	}

	grid, err := core.NewGrid(cols/cellWidth, rows-1)
	if err != nil {
		return core.Grid{}, fmt.Errorf("%w: %w", ErrTerminalTooSmall, err)
	}
	return grid, nil
}

// GridFromTerminal reads the size of the terminal on fd and converts it,
// leaving reservedRows free for lines drawn around the board.
func GridFromTerminal(fd int, cfg config.GridConfig, reservedRows int) (core.Grid, error) {
	cols, rows, err := xterm.GetSize(fd)
	if err != nil {
		return core.Grid{}, fmt.Errorf("%w: %w", ErrSizeUnavailable, err)
	}
	return DiscoverGrid(cols, rows-reservedRows, cfg)
}
