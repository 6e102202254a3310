package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one theme.
type Styles struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Button   lipgloss.Style
	Tooltip  lipgloss.Style
	Status   lipgloss.Style
	KeyHint  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Background(t.Panel).
			Foreground(t.Text).
			Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(t.Text).Background(t.Panel),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Background(t.Panel),
		Value:    lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Panel),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted).Background(t.Panel),
		Button: lipgloss.NewStyle().
			Foreground(t.Panel).
			Background(t.Primary).
			Padding(0, 1),
		// tooltip: translucent black box with white text
		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// SliderBar draws a range input at fraction f of its track.
func SliderBar(f float64, width int, track, knob lipgloss.Style) string {
	if width < 1 {
		return ""
	}
	pos := int(f*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return track.Render(strings.Repeat("─", pos)) +
		knob.Render("●") +
		track.Render(strings.Repeat("─", width-1-pos))
}

// ParseHex splits "#rrggbb" into its channels; anything else is white.
func ParseHex(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
