package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/obsidianos/obsidian-wizard/internal/term"
)

// scriptKeys feeds a fixed sequence of key events to the screen.
type scriptKeys struct {
	events []term.KeyEvent
	pos    int
}

func (k *scriptKeys) ReadKey() (term.KeyEvent, error) {
	if k.pos >= len(k.events) {
		return term.KeyEvent{}, io.EOF
	}
	ev := k.events[k.pos]
	k.pos++
	return ev, nil
}

func key(k term.Key) term.KeyEvent { return term.KeyEvent{Key: k} }

func testScreen(events ...term.KeyEvent) (*Screen, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := NewWithIO(DefaultPalette(), &scriptKeys{events: events}, strings.NewReader(""), out,
		func() (int, int) { return 80, 24 })
	return s, out
}

func TestChooseEnterReturnsCursorOption(t *testing.T) {
	s, _ := testScreen(key(term.KeyDown), key(term.KeyEnter))

	got, ok := s.Choose(Menu{Title: "t", Options: []string{"one", "two", "three"}})
	if !ok {
		t.Fatal("Choose() cancelled, want selection")
	}
	if got != "two" {
		t.Errorf("Choose() = %q, want %q", got, "two")
	}
}

func TestChooseWraparoundClosure(t *testing.T) {
	// N Down presses from any starting cursor must return to the start;
	// same for Up.
	options := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		nav  term.Key
	}{
		{"down n times", term.KeyDown},
		{"up n times", term.KeyUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []term.KeyEvent
			for range options {
				events = append(events, key(tt.nav))
			}
			events = append(events, key(term.KeyEnter))

			s, _ := testScreen(events...)
			got, ok := s.Choose(Menu{Title: "t", Options: options})
			if !ok {
				t.Fatal("Choose() cancelled, want selection")
			}
			if got != "a" {
				t.Errorf("after %d %s presses Choose() = %q, want %q", len(options), tt.name, got, "a")
			}
		})
	}
}

func TestChooseUpFromTopWraps(t *testing.T) {
	s, _ := testScreen(key(term.KeyUp), key(term.KeyEnter))

	got, ok := s.Choose(Menu{Title: "t", Options: []string{"first", "middle", "last"}})
	if !ok {
		t.Fatal("Choose() cancelled, want selection")
	}
	if got != "last" {
		t.Errorf("Choose() = %q, want %q", got, "last")
	}
}

func TestChooseCancellation(t *testing.T) {
	tests := []struct {
		name string
		ev   term.KeyEvent
	}{
		{"quit", key(term.KeyQuit)},
		{"interrupt", key(term.KeyInterrupt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testScreen(tt.ev)
			if _, ok := s.Choose(Menu{Title: "t", Options: []string{"only"}}); ok {
				t.Error("Choose() returned a selection, want cancellation")
			}
		})
	}
}

func TestChooseExhaustedInputCancels(t *testing.T) {
	s, _ := testScreen() // no events at all
	if _, ok := s.Choose(Menu{Title: "t", Options: []string{"only"}}); ok {
		t.Error("Choose() returned a selection on dead input, want cancellation")
	}
}

func TestChooseIgnoresPlainChars(t *testing.T) {
	s, _ := testScreen(
		term.KeyEvent{Key: term.KeyChar, Rune: 'x'},
		key(term.KeyDown),
		key(term.KeyEnter),
	)
	got, ok := s.Choose(Menu{Title: "t", Options: []string{"a", "b"}})
	if !ok || got != "b" {
		t.Errorf("Choose() = %q, %v, want %q, true", got, ok, "b")
	}
}

func TestChooseRedrawsEveryNavigation(t *testing.T) {
	s, out := testScreen(key(term.KeyDown), key(term.KeyDown), key(term.KeyEnter))
	_, _ = s.Choose(Menu{Title: "title", Options: []string{"a", "b", "c"}})

	// One clear per frame: initial draw plus one per navigation event
	if got := strings.Count(out.String(), "\x1b[2J"); got != 3 {
		t.Errorf("frame count = %d, want 3", got)
	}
}
