package ui

import (
	"strings"
	"testing"

	"github.com/obsidianos/obsidian-wizard/internal/term"
)

func TestConfirmYes(t *testing.T) {
	s, _ := testScreen(key(term.KeyEnter)) // cursor starts on "Yes, Continue"
	if !s.Confirm("proceed?", false, "", nil) {
		t.Error("Confirm() = false, want true for explicit yes")
	}
}

func TestConfirmNo(t *testing.T) {
	s, _ := testScreen(key(term.KeyDown), key(term.KeyEnter))
	if s.Confirm("proceed?", false, "", nil) {
		t.Error("Confirm() = true, want false for explicit no")
	}
}

func TestConfirmCancellationIsNotAssent(t *testing.T) {
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
			if s.Confirm("proceed?", true, "summary", []string{"detail"}) {
				t.Error("Confirm() = true on cancellation, want false")
			}
		})
	}
}

func TestConfirmRendersSummaryPanel(t *testing.T) {
	s, out := testScreen(key(term.KeyEnter))
	s.Confirm("install now?", true, "Disk: /dev/sda", []string{"Image: /etc/system.sfs"})

	text := out.String()
	if !strings.Contains(text, "/dev/sda") {
		t.Error("summary line missing from frame")
	}
	if !strings.Contains(text, "/etc/system.sfs") {
		t.Error("detail line missing from frame")
	}
}
