package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles the player draws with.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Done    lipgloss.Color
	Mark    lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#00cccc"),
		Accent:  lipgloss.Color("#ff88ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Compare: lipgloss.Color("#ffcc00"),
		Swap:    lipgloss.Color("#ff4444"),
		Done:    lipgloss.Color("#00ff88"),
		Mark:    lipgloss.Color("#00aaff"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0000"),
		Done:    lipgloss.Color("#88ff88"),
		Mark:    lipgloss.Color("#00cc00"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Compare: lipgloss.Color("#ffaa00"),
		Swap:    lipgloss.Color("#ff0000"),
		Done:    lipgloss.Color("#00ff00"),
		Mark:    lipgloss.Color("#0088ff"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{ThemeClassic, ThemeRetroGreen, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme switches to the theme after the current one.
func nextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
