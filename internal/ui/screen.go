package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/obsidianos/obsidian-wizard/internal/term"
)

// KeyReader produces decoded keystrokes. The production implementation is
// term.TTY; tests inject a scripted reader.
type KeyReader interface {
	ReadKey() (term.KeyEvent, error)
}

// Screen draws full frames and reads user input. All wizard components go
// through one Screen so every state change is a complete redraw.
type Screen struct {
	pal  Palette
	keys KeyReader
	in   *bufio.Reader
	out  io.Writer
	size func() (int, int)
}

// New returns a Screen wired to the process terminal.
func New(pal Palette) *Screen {
	return &Screen{
		pal:  pal,
		keys: term.NewTTY(os.Stdin),
		in:   bufio.NewReader(os.Stdin),
		out:  os.Stdout,
		size: func() (int, int) { return term.Size(os.Stdout) },
	}
}

// NewWithIO returns a Screen with injected dependencies. Used by tests.
func NewWithIO(pal Palette, keys KeyReader, in io.Reader, out io.Writer, size func() (int, int)) *Screen {
	return &Screen{
		pal:  pal,
		keys: keys,
		in:   bufio.NewReader(in),
		out:  out,
		size: size,
	}
}

// Palette returns the style palette the screen renders with.
func (s *Screen) Palette() Palette {
	return s.pal
}

// Size returns the terminal dimensions, falling back to 80x24.
func (s *Screen) Size() (int, int) {
	w, h := s.size()
	if w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

// Render clears the screen and draws a full frame, vertically centering the
// block and horizontally centering each line by its visible width. Styled
// lines are measured with lipgloss.Width, which excludes ANSI escape codes;
// measuring raw byte length here is a known way to get the layout wrong.
func (s *Screen) Render(lines []string) {
	width, height := s.Size()

	fmt.Fprint(s.out, "\x1b[2J\x1b[H")

	top := (height - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	fmt.Fprint(s.out, strings.Repeat("\n", top))

	for _, line := range lines {
		visible := lipgloss.Width(line)
		pad := (width - visible) / 2
		if pad < 0 {
			pad = 0
		}
		fmt.Fprint(s.out, strings.Repeat(" ", pad))
		fmt.Fprintln(s.out, line)
	}
}

// Clear wipes the screen without drawing a frame.
func (s *Screen) Clear() {
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

// Box wraps multi-line text in a border sized to its longest line, clipped
// to the terminal width. double selects the double-line border.
func (s *Screen) Box(text string, double bool) string {
	width, _ := s.Size()
	// Leave room for the border and padding
	maxContent := width - 6
	if maxContent < 10 {
		maxContent = 10
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > maxContent {
			lines[i] = runewidth.Truncate(line, maxContent, "…")
		}
	}
	content := strings.Join(lines, "\n")

	border := s.pal.BoxBorder
	if double {
		border = s.pal.DoubleBoxBorder
	}
	return border.Render(content)
}

// ReadKey blocks for one decoded keystroke.
func (s *Screen) ReadKey() (term.KeyEvent, error) {
	return s.keys.ReadKey()
}

// WaitKey blocks until any key is pressed, ignoring which.
func (s *Screen) WaitKey() {
	_, _ = s.keys.ReadKey()
}

// ReadLine reads one line of free text in cooked mode. Returns ok=false when
// input is exhausted.
func (s *Screen) ReadLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
