// Package viz holds the terminal drawing primitives shared by the TUI and
// the SVG exporter:
//
//   - [Canvas]: Braille sub-pixel canvas with a per-cell pen colour
//   - [Theme]: light and dark colour schemes, switched by the dark-mode toggle
//   - [Styles]: lipgloss styles derived from a theme
package viz
