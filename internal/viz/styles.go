package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Highlight colours a canonical expression such as "-3x^2 + x - 4". The text
// itself is unchanged; only styling is added.
func Highlight(expr string, theme Theme) string {
	if theme.Plain || expr == "" {
		return expr
	}
	sign := lipgloss.NewStyle().Foreground(theme.Sign).Bold(true)
	mag := lipgloss.NewStyle().Foreground(theme.Magnitude)
	variable := lipgloss.NewStyle().Foreground(theme.Variable).Italic(true)

	var b strings.Builder
	for i, tok := range strings.Split(expr, " ") {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok == "+" || tok == "-" {
			b.WriteString(sign.Render(tok))
			continue
		}
		if strings.HasPrefix(tok, "-") {
			b.WriteString(sign.Render("-"))
			tok = tok[1:]
		}
		if j := strings.IndexByte(tok, 'x'); j >= 0 {
			if j > 0 {
				b.WriteString(mag.Render(tok[:j]))
			}
			b.WriteString(variable.Render(tok[j:]))
			continue
		}
		b.WriteString(mag.Render(tok))
	}
	return b.String()
}

// ErrorText styles a message with the theme's error colour.
func ErrorText(msg string, theme Theme) string {
	if theme.Plain {
		return msg
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(msg)
}

// MutedText styles secondary information.
func MutedText(msg string, theme Theme) string {
	if theme.Plain {
		return msg
	}
	return lipgloss.NewStyle().Foreground(theme.Muted).Render(msg)
}
