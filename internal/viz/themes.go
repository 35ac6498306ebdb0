package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours used for expressions and panels.
type Theme struct {
	Name      string
	Plain     bool
	Magnitude lipgloss.Color
	Variable  lipgloss.Color
	Sign      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemePlain = Theme{Name: "plain", Plain: true}

	ThemeNeon = Theme{
		Name:      "neon",
		Magnitude: lipgloss.Color("#00ccff"),
		Variable:  lipgloss.Color("#ff00ff"),
		Sign:      lipgloss.Color("#ffcc00"),
		Muted:     lipgloss.Color("#666688"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Magnitude: lipgloss.Color("255"),
		Variable:  lipgloss.Color("250"),
		Sign:      lipgloss.Color("242"),
		Muted:     lipgloss.Color("238"),
		Error:     lipgloss.Color("255"),
	}
)

var themes = []Theme{ThemePlain, ThemeNeon, ThemeMono}

func ThemeByName(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("viz: unknown theme %q", name)
}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
