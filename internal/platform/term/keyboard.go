package term

import (
	"errors"
	"io"

	"github.com/charmbracelet/x/input"
	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/termsnake/internal/core"
	snakeinput "github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/platform/keymap"
)

// Keyboard reads key events from a terminal and feeds the presses into a
// hold tracker, which serves as the game's KeyboardSource.
type Keyboard struct {
	reader  *input.Reader
	tracker *snakeinput.Tracker
	keys    keymap.KeyMap
	done    chan struct{}
}

// NewKeyboard wraps r, which should be a terminal already in raw mode.
// termType is the value of $TERM.
func NewKeyboard(r io.Reader, termType string, tracker *snakeinput.Tracker, keys keymap.KeyMap) (*Keyboard, error) {
	ir, err := input.NewReader(r, termType, 0)
	if err != nil {
		return nil, err
	}
	return &Keyboard{
		reader:  ir,
		tracker: tracker,
		keys:    keys,
		done:    make(chan struct{}),
	}, nil
}

// Start begins reading keys in the background.
func (k *Keyboard) Start() {
	go k.readLoop()
}

// Stop cancels the pending read and waits for the reader to exit.
func (k *Keyboard) Stop() {
	k.reader.Cancel()
	<-k.done
	k.reader.Close()
}

// HeldKeys implements core.KeyboardSource.
func (k *Keyboard) HeldKeys() core.KeySet {
	return k.tracker.HeldKeys()
}

// ResetWindow implements input.WindowResetter.
func (k *Keyboard) ResetWindow() {
	k.tracker.ResetWindow()
}

func (k *Keyboard) readLoop() {
	defer close(k.done)

	for {
		events, err := k.reader.ReadEvents()
		for _, ev := range events {
			if press, ok := ev.(input.KeyPressEvent); ok {
				k.tracker.Press(k.keys.Lookup(keymap.Name(KeyName(press.Key()))))
			}
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) && !errors.Is(err, io.EOF) {
				k.tracker.Press(core.KeyQuit)
			}
			return
		}
	}
}

// KeyName returns the name a key is bound by. Printable keys without ctrl
// or alt use their text, so shift+a is "A".
func KeyName(k input.Key) string {
	if k.Text != "" && !k.Mod.Contains(input.ModCtrl) && !k.Mod.Contains(input.ModAlt) {
		return k.Text
	}
	return k.String()
}

var _ core.KeyboardSource = (*Keyboard)(nil)
var _ snakeinput.WindowResetter = (*Keyboard)(nil)
