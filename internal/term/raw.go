package term

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"
)

// Size returns the terminal dimensions for the given file, falling back to
// 80x24 when the size cannot be determined (e.g. output is not a tty).
func Size(f *os.File) (width, height int) {
	width, height, err := xterm.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// WithRaw places the terminal in raw mode for the duration of fn and
// guarantees the previous mode is restored on every exit path, including
// panics. The raw terminal is the one global resource the wizard owns.
func WithRaw(f *os.File, fn func() error) error {
	fd := int(f.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer xterm.Restore(fd, state) //nolint:errcheck

	return fn()
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}
