// Package ui provides the full-screen terminal components of the wizard.
//
// Everything is drawn through one Screen value: each state change produces a
// complete frame (clear, vertically centered block, horizontally centered
// lines), so there is no partial-redraw bookkeeping anywhere in the wizard.
// Styling goes through an immutable Palette of lipgloss styles passed to the
// Screen; width math always uses visible width so escape codes never skew
// centering.
//
// The interactive primitives are:
//
//   - Menu / Choose: cursor-driven list selection with wraparound
//   - Confirm: two-option yes/no dialog with optional boxed summary
//   - Prompt / PromptSecret: cooked-mode free-text entry
//   - Banner: success/failure/info notices with press-any-key
//
// Menus consume decoded key events from a KeyReader; they never see raw
// bytes. Cancellation (quit or interrupt) is reported as ok=false from every
// primitive and is never conflated with an affirmative result.
package ui
