package term

import (
	"os"
)

// TTY reads decoded keystrokes from a terminal file, entering raw mode for
// the duration of each read. Scoping raw mode to the single keystroke means
// the terminal is back in cooked mode whenever the wizard prints frames,
// reads line input, or hands the terminal to an external process.
type TTY struct {
	f *os.File
}

// NewTTY returns a TTY reading from f, typically os.Stdin.
func NewTTY(f *os.File) *TTY {
	return &TTY{f: f}
}

// ReadKey blocks for one keystroke with the terminal in raw mode, restoring
// the previous mode before returning.
func (t *TTY) ReadKey() (KeyEvent, error) {
	var ev KeyEvent
	err := WithRaw(t.f, func() error {
		var err error
		ev, err = NewDecoder(t.f).ReadKey()
		return err
	})
	return ev, err
}
