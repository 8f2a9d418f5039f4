package ui

import (
	"strings"
)

const (
	confirmYes = "Yes, Continue"
	confirmNo  = "No, Go Back"
)

// Confirm shows a two-option yes/no dialog. warn switches the header to the
// warning style and a double border around the summary. summary and details
// are optional; when present they are boxed above the options.
//
// Returns false on explicit "No" and on quit/interrupt. Cancellation is
// never treated as assent.
func (s *Screen) Confirm(message string, warn bool, summary string, details []string) bool {
	var prefix []string

	header := s.pal.Header
	if warn {
		header = s.pal.Warning
		message = "⚠  " + message
	}
	prefix = append(prefix, header.Render(message))

	if summary != "" || len(details) > 0 {
		var body []string
		if summary != "" {
			body = append(body, summary)
		}
		body = append(body, details...)
		box := s.Box(strings.Join(body, "\n"), warn)
		prefix = append(prefix, "")
		prefix = append(prefix, strings.Split(box, "\n")...)
	}

	idx, ok := s.choose(prefix, Menu{
		Title:   "Confirm",
		Options: []string{confirmYes, confirmNo},
	})
	if !ok {
		return false
	}
	return idx == 0
}
