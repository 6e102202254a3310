package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Orbit      lipgloss.Color
	Star       lipgloss.Color
}

var (
	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#1a66ff"),
		Secondary:  lipgloss.Color("#3366aa"),
		Accent:     lipgloss.Color("#cc6600"),
		Background: lipgloss.Color("#000000"),
		Panel:      lipgloss.Color("#f0f0f0"),
		Text:       lipgloss.Color("#222222"),
		Muted:      lipgloss.Color("#888888"),
		Orbit:      lipgloss.Color("#808080"),
		Star:       lipgloss.Color("#ffffff"),
	}

	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#66ccff"),
		Secondary:  lipgloss.Color("#99aacc"),
		Accent:     lipgloss.Color("#ffdb58"),
		Background: lipgloss.Color("#000000"),
		Panel:      lipgloss.Color("#1e1e1e"),
		Text:       lipgloss.Color("#e6e6e6"),
		Muted:      lipgloss.Color("#666666"),
		Orbit:      lipgloss.Color("#4a4a4a"),
		Star:       lipgloss.Color("#aaaaaa"),
	}

	Themes = []Theme{ThemeLight, ThemeDark}
)

// GetTheme returns a theme by name, falling back to light.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLight
}

// ForMode picks the theme for the dark-mode flag.
func ForMode(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
