package ui

import (
	"github.com/obsidianos/obsidian-wizard/internal/term"
)

// Menu describes one selectable list. Immutable per invocation; the caller
// owns it. A Menu always has at least one option.
type Menu struct {
	Title    string
	Subtitle string
	Options  []string
}

// Choose runs the menu until the user commits or cancels. Returns the chosen
// option text, or ok=false on quit/interrupt. The cursor wraps at both ends
// and the whole frame is redrawn after every navigation event.
func (s *Screen) Choose(m Menu) (string, bool) {
	idx, ok := s.choose(nil, m)
	if !ok {
		return "", false
	}
	return m.Options[idx], true
}

// ChooseIndex is Choose returning the option index instead of its text.
// Flows that build options from typed values use the index so selections are
// never re-parsed from display text.
func (s *Screen) ChooseIndex(m Menu) (int, bool) {
	return s.choose(nil, m)
}

// choose is the shared cursor loop. prefix lines are rendered verbatim above
// the title (the confirmation dialog uses this for its summary panel).
func (s *Screen) choose(prefix []string, m Menu) (int, bool) {
	cursor := 0
	n := len(m.Options)

	for {
		s.Render(s.menuFrame(prefix, m, cursor))

		ev, err := s.ReadKey()
		if err != nil {
			// Input gone; treat like quit so no caller blocks forever
			return 0, false
		}

		switch ev.Key {
		case term.KeyUp:
			cursor = (cursor - 1 + n) % n
		case term.KeyDown:
			cursor = (cursor + 1) % n
		case term.KeyEnter:
			return cursor, true
		case term.KeyQuit, term.KeyInterrupt:
			return 0, false
		}
	}
}

func (s *Screen) menuFrame(prefix []string, m Menu, cursor int) []string {
	var lines []string
	if len(prefix) > 0 {
		lines = append(lines, prefix...)
		lines = append(lines, "")
	}
	lines = append(lines, s.pal.Header.Render(m.Title))
	if m.Subtitle != "" {
		lines = append(lines, s.pal.Subtitle.Render(m.Subtitle))
	}
	lines = append(lines, "", "")
	for i, opt := range m.Options {
		if i == cursor {
			lines = append(lines, s.pal.Cursor.Render("> "+opt))
		} else {
			lines = append(lines, s.pal.Option.Render("  "+opt))
		}
	}
	lines = append(lines, "")
	return lines
}
