package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/polyterm/internal/config"
	"github.com/san-kum/polyterm/internal/logging"
)

func newTestApp(t *testing.T, strict bool) model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Theme = "plain"
	cfg.Strict = strict
	app, err := NewInteractiveApp(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewInteractiveApp failed: %v", err)
	}
	return *app
}

func submit(t *testing.T, m model, line string) model {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model)
}

func TestSubmit_RendersCanonical(t *testing.T) {
	m := submit(t, newTestApp(t, false), "3 2 -1 1 4 0")

	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	e := m.history[0]
	if e.canonical != "3x^2 - x + 4" {
		t.Errorf("canonical = %q", e.canonical)
	}
	if e.terms != 3 || e.note != "" {
		t.Errorf("unexpected entry %+v", e)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
	if !strings.Contains(m.View(), "3x^2 - x + 4") {
		t.Error("view should show the rendered polynomial")
	}
}

func TestSubmit_TrailingInputPermissive(t *testing.T) {
	m := submit(t, newTestApp(t, false), "2 3 5")
	e := m.history[0]
	if e.canonical != "2x^3" {
		t.Errorf("canonical = %q", e.canonical)
	}
	if !strings.Contains(e.note, `"5"`) {
		t.Errorf("note = %q", e.note)
	}
}

func TestSubmit_StrictShowsError(t *testing.T) {
	m := submit(t, newTestApp(t, true), "abc")
	e := m.history[0]
	if e.canonical != "0" {
		t.Errorf("canonical = %q", e.canonical)
	}
	if !strings.Contains(m.View(), "no pairs") {
		t.Errorf("strict view should show the parse error:\n%s", m.View())
	}
}

func TestHistory_Bounded(t *testing.T) {
	m := newTestApp(t, false)
	for i := 0; i < maxHistory+3; i++ {
		m = submit(t, m, "1 1")
	}
	if len(m.history) != maxHistory {
		t.Errorf("history length %d, want %d", len(m.history), maxHistory)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestApp(t, false)
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("key %v: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v: expected QuitMsg", k)
		}
	}
}

func TestNewInteractiveApp_BadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Capacity = 0
	if _, err := NewInteractiveApp(cfg, logging.NewNop()); err == nil {
		t.Error("expected error for zero capacity")
	}
}
