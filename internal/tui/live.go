package tui

import (
	"fmt"
	"strings"
	"time"

	"fireca/internal/app"
	"fireca/internal/core"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e46f28")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg fires once per logical simulation interval.
type TickMsg time.Time

// Model is a bubbletea view over a Session. Each terminal row shows two grid
// rows using the upper half block: foreground is the top pixel, background
// the bottom one.
type Model struct {
	session *app.Session
	seed    int64
	paused  bool
	styles  map[[8]byte]lipgloss.Style
}

// NewModel wraps session.
func NewModel(session *app.Session, seed int64) Model {
	return Model{session: session, seed: seed, styles: map[[8]byte]lipgloss.Style{}}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.session.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update steps on ticks and handles keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "p":
			m.paused = !m.paused
		case "n":
			m.session.Step()
		case "r":
			m.session.Reset(m.seed)
		case "s":
			m.seed = time.Now().UnixNano()
			m.session.Reset(m.seed)
		}
		return m, nil
	case TickMsg:
		if !m.paused {
			m.session.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

// View draws the grid and a status column.
func (m Model) View() string {
	grid := m.renderGrid()
	side := m.renderStats()
	help := helpStyle.Render("space pause · n step · r reset · s reseed · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, grid, statsStyle.Render(side)), help)
}

func (m Model) renderGrid() string {
	w, h := m.session.Projector().Size()
	px := m.session.Pixels()
	var b strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			var key [8]byte
			top := (y*w + x) * 4
			copy(key[:4], px[top:top+4])
			if y+1 < h {
				bottom := ((y+1)*w + x) * 4
				copy(key[4:], px[bottom:bottom+4])
			}
			b.WriteString(m.style(key).Render("▀"))
		}
		if y+2 < h {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) style(key [8]byte) lipgloss.Style {
	if s, ok := m.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hexColor(key[:4]))
	if key[7] != 0 {
		s = s.Background(hexColor(key[4:]))
	}
	m.styles[key] = s
	return s
}

func hexColor(rgba []byte) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba[0], rgba[1], rgba[2]))
}

func (m Model) renderStats() string {
	sim := m.session.Sim()
	status := "running"
	if m.paused {
		status = "paused"
	}
	rows := []string{headerStyle.Render(sim.Name()), valueStyle.Render(status), ""}
	if sp, ok := sim.(core.StatsProvider); ok {
		for _, p := range sp.Stats() {
			rows = append(rows, labelStyle.Render(p.Label)+valueStyle.Render(p.Value))
		}
	}
	return strings.Join(rows, "\n")
}

// Run starts a full-screen program over session.
func Run(session *app.Session, seed int64) error {
	_, err := tea.NewProgram(NewModel(session, seed), tea.WithAltScreen()).Run()
	return err
}
