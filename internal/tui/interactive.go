package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/polyterm/internal/config"
	"github.com/san-kum/polyterm/internal/poly"
	"github.com/san-kum/polyterm/internal/viz"
)

const maxHistory = 8

type entry struct {
	input     string
	canonical string
	terms     int
	note      string
}

type model struct {
	input   textinput.Model
	poly    *poly.Polynomial
	strict  bool
	theme   viz.Theme
	history []entry
	logger  *zap.Logger
	width   int
}

// NewInteractiveApp builds the prompt model. Each submitted line replaces the
// polynomial's terms and is echoed back in canonical form.
func NewInteractiveApp(cfg *config.Config, logger *zap.Logger) (*model, error) {
	p, err := cfg.NewPolynomial()
	if err != nil {
		return nil, err
	}
	theme, err := viz.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "3 2 -1 1 4 0"
	ti.Prompt = "coef exp > "
	ti.CharLimit = 1024
	ti.Focus()

	return &model{
		input:   ti,
		poly:    p,
		strict:  cfg.Strict,
		theme:   theme,
		history: make([]entry, 0, maxHistory),
		logger:  logger,
		width:   80,
	}, nil
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submit() {
	line := m.input.Value()
	e := entry{input: line}

	if err := m.poly.ParseStrict(line); err != nil {
		var perr *poly.ParseError
		if errors.As(err, &perr) {
			e.note = fmt.Sprintf("ignored %q", perr.Remainder)
			if m.strict {
				e.note = perr.Error()
			}
		}
		m.logger.Debug("parse stopped early", zap.String("input", line), zap.Error(err))
	}
	e.terms = m.poly.Len()
	e.canonical = m.poly.Render()
	m.logger.Debug("rendered", zap.String("canonical", e.canonical), zap.Int("terms", e.terms))

	if len(m.history) == maxHistory {
		m.history = m.history[1:]
	}
	m.history = append(m.history, e)
	m.input.SetValue("")
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render("polyterm"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(viz.MutedText(e.input, m.theme))
		b.WriteString("\n  ")
		if m.strict && e.note != "" {
			b.WriteString(viz.ErrorText(e.note, m.theme))
		} else {
			b.WriteString(viz.Highlight(e.canonical, m.theme))
			b.WriteString(viz.MutedText(fmt.Sprintf("  (%d terms)", e.terms), m.theme))
			if e.note != "" {
				b.WriteString("  ")
				b.WriteString(viz.ErrorText(e.note, m.theme))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(viz.KeyHint.Render("enter render • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// RunInteractive starts the prompt on the terminal.
func RunInteractive(cfg *config.Config, logger *zap.Logger) error {
	app, err := NewInteractiveApp(cfg, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
