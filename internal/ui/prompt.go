package ui

import (
	"fmt"
)

// Prompt asks for one line of free text. The current value is shown and kept
// when the user submits a blank line, so editing a field never silently
// resets it. Returns ok=false when input is exhausted.
func (s *Screen) Prompt(label, current string) (string, bool) {
	var lines []string
	lines = append(lines, s.pal.Header.Render(label))
	if current != "" {
		lines = append(lines, s.pal.Muted.Render(fmt.Sprintf("current: %s (blank keeps it)", current)))
	}
	lines = append(lines, "")
	s.Render(lines)

	fmt.Fprint(s.out, s.pal.Cursor.Render("> "))
	input, ok := s.ReadLine()
	if !ok {
		return "", false
	}
	if input == "" {
		return current, true
	}
	return input, true
}

// PromptRequired re-prompts in place until a non-blank value is entered.
// Returns ok=false when input is exhausted.
func (s *Screen) PromptRequired(label string) (string, bool) {
	for {
		value, ok := s.Prompt(label, "")
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
	}
}

// PromptSecret asks for a passphrase-style value. Unlike Prompt, a blank
// line is returned as-is; callers decide whether blank is acceptable.
func (s *Screen) PromptSecret(label string) (string, bool) {
	s.Render([]string{s.pal.Header.Render(label), ""})
	fmt.Fprint(s.out, s.pal.Cursor.Render("> "))
	return s.ReadLine()
}
