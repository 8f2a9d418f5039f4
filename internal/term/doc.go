// Package term decodes raw terminal keystrokes into logical key events and
// scopes raw-mode acquisition so the previous terminal state is always
// restored.
//
// The decoder owns the byte protocol: arrow keys arrive as three-byte escape
// sequences (ESC [ A / ESC [ B), and everything the wizard does not map
// degrades to a quit event instead of blocking. Menu-level components consume
// KeyEvent values and never see raw bytes.
package term
