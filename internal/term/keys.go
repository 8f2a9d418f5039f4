package term

import (
	"io"
)

// Key identifies a logical key event produced by the decoder.
type Key int

const (
	// KeyChar is any printable byte not mapped to a control key.
	// The rune is carried in KeyEvent.Rune.
	KeyChar Key = iota
	// KeyUp is the cursor-up arrow (ESC [ A).
	KeyUp
	// KeyDown is the cursor-down arrow (ESC [ B).
	KeyDown
	// KeyEnter is carriage return.
	KeyEnter
	// KeyQuit is 'q'/'Q', a bare escape, or any unrecognized escape
	// sequence. Unmapped sequences degrade to quit rather than blocking.
	KeyQuit
	// KeyInterrupt is Ctrl-C.
	KeyInterrupt
)

// KeyEvent is a decoded keystroke. Rune is only meaningful for KeyChar.
type KeyEvent struct {
	Key  Key
	Rune rune
}

const (
	byteEscape    = 0x1b
	byteInterrupt = 0x03
	byteReturn    = 0x0d
)

// Decoder reads raw keystrokes from a terminal byte stream and resolves
// multi-byte escape sequences into logical key events.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading from r. The reader is expected to be
// a terminal in raw mode, but any byte stream works, which is what the tests
// rely on.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks for one keystroke and returns the decoded event.
//
// An escape byte is resolved by reading exactly two more bytes:
// "[A" is Up and "[B" is Down. Any other suffix, or an escape with no
// following bytes, resolves to KeyQuit.
func (d *Decoder) ReadKey() (KeyEvent, error) {
	var buf [1]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return KeyEvent{}, err
	}

	switch buf[0] {
	case byteEscape:
		var seq [2]byte
		n, _ := io.ReadFull(d.r, seq[:])
		if n == 2 && seq[0] == '[' {
			switch seq[1] {
			case 'A':
				return KeyEvent{Key: KeyUp}, nil
			case 'B':
				return KeyEvent{Key: KeyDown}, nil
			}
		}
		// Bare escape or an unrecognized sequence
		return KeyEvent{Key: KeyQuit}, nil
	case byteInterrupt:
		return KeyEvent{Key: KeyInterrupt}, nil
	case byteReturn:
		return KeyEvent{Key: KeyEnter}, nil
	case 'q', 'Q':
		return KeyEvent{Key: KeyQuit}, nil
	}

	return KeyEvent{Key: KeyChar, Rune: rune(buf[0])}, nil
}
