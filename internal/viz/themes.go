package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme of the terminal view. Palette holds the
// ball colours offered by the colour key.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Palette   []string
}

// Available themes
var (
	ThemeSlate = Theme{
		Name:      "slate",
		Primary:   lipgloss.Color("#38bdf8"),
		Secondary: lipgloss.Color("#94a3b8"), // ground
		Accent:    lipgloss.Color("#f97316"),
		Text:      lipgloss.Color("#e2e8f0"),
		Muted:     lipgloss.Color("#475569"), // walls
		Palette:   []string{"#38bdf8", "#f97316", "#a3e635", "#e879f9", "#facc15", "#ef4444"},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Palette:   []string{"#00ff00", "#88ff88", "#ccffcc"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Palette:   []string{"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068"},
	}

	// Default theme
	CurrentTheme = ThemeSlate

	// All available themes
	Themes = []Theme{
		ThemeSlate,
		ThemeRetroGreen,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the name of the theme after the current one.
func NextTheme() string {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			return Themes[(i+1)%len(Themes)].Name
		}
	}
	return Themes[0].Name
}
