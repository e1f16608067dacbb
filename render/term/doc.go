// Package term paints display directives to a terminal as styled,
// indented lines using lipgloss. The main entry point is [NewPainter];
// [PlainStyles] disables styling for non-interactive output.
package term
