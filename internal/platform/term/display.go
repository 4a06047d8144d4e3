package term

import (
	"io"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/render"
)

// Display writes frames to a terminal. Raw mode turns off output
// post-processing, so line feeds are expanded to CRLF here.
type Display struct {
	w io.Writer
}

// NewDisplay creates a display writing to w.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: w}
}

// Show writes one frame in a single write.
func (d *Display) Show(frame string) error {
	_, err := io.WriteString(d.w, strings.ReplaceAll(frame, "\n", "\r\n"))
	return err
}

// Close makes the cursor visible again.
func (d *Display) Close() error {
	_, err := io.WriteString(d.w, render.ShowCursor)
	return err
}

// Terminal holds a terminal switched into raw mode.
type Terminal struct {
	in    *os.File
	state *xterm.State
}

// MakeRaw puts in into raw mode. Call Restore before exiting.
func MakeRaw(in *os.File) (*Terminal, error) {
	state, err := xterm.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}
	return &Terminal{in: in, state: state}, nil
}

// Restore returns the terminal to its previous mode.
func (t *Terminal) Restore() error {
	return xterm.Restore(int(t.in.Fd()), t.state)
}
