package tui

import (
	"strings"
	"testing"
	"time"

	"fireca/internal/app"
	"fireca/internal/sims/forestfire"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T) (Model, *forestfire.Forest) {
	t.Helper()
	cfg := forestfire.DefaultConfig()
	cfg.Width, cfg.Height = 6, 5
	f, err := forestfire.New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s, err := app.NewSession(f, 20)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return NewModel(s, cfg.Seed), f
}

func TestTickStepsUnlessPaused(t *testing.T) {
	m, f := newModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick must schedule the next tick")
	}
	if f.Tick() != 1 {
		t.Fatalf("tick = %d, expected 1", f.Tick())
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	next, _ = next.Update(TickMsg(time.Now()))
	if f.Tick() != 1 {
		t.Fatalf("paused model stepped, tick = %d", f.Tick())
	}

	next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if f.Tick() != 2 {
		t.Fatalf("single step expected, tick = %d", f.Tick())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewShowsGridAndStats(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	// 5 grid rows fold into 3 terminal rows of 6 half blocks each.
	if got := strings.Count(view, "▀"); got != 18 {
		t.Fatalf("expected 18 half blocks, got %d", got)
	}
	for _, want := range []string{"forestfire", "Tick", "Burning"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
