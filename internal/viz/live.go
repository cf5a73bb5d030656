// Package viz renders a running scene in the terminal: one half-block
// panel per automaton, an activity chart, and pause/reseed/quit keys. It
// contains no simulation logic.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/imclab/casa/internal/automaton"
	"github.com/imclab/casa/internal/scene"
)

const (
	historyCapacity = 240
	panelsPerRow    = 2
)

type TickMsg time.Time

// Model drives the scene from the bubbletea event loop: one scene step
// per tick at the configured frame rate.
type Model struct {
	scn     *scene.Scene
	fps     int
	running bool
	history []float64
	err     error
}

// NewModel wraps a built scene for live viewing.
func NewModel(scn *scene.Scene, fps int) Model {
	return Model{
		scn:     scn,
		fps:     fps,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles key input and advances the scene on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.scn.Reseed(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.history = m.history[:0]
		}
	case TickMsg:
		if m.running {
			if err := m.scn.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.history = append(m.history, float64(m.scn.Changed()))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// Err reports a step failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// View renders the automaton panels, the activity chart, and key hints.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("CASA") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  step %d  changed %d  resets %d\n",
		status, m.scn.Steps(), m.scn.Changed(), m.scn.Resets()))

	panels := make([]string, 0, len(m.scn.Automatons()))
	for _, a := range m.scn.Automatons() {
		panels = append(panels, renderPanel(a))
	}
	for i := 0; i < len(panels); i += panelsPerRow {
		end := i + panelsPerRow
		if end > len(panels) {
			end = len(panels)
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels[i:end]...) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("changed cells"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("space:pause  r:reseed  q:quit"))
	return s.String()
}

func renderPanel(a *automaton.Automaton) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Policy().Name()))
	countdown := fmt.Sprintf(" %s%s", labelStyle.Render("reorg in "),
		valueStyle.Render(fmt.Sprintf("%d", a.StepsUntilReorganization())))
	if a.ChangedCells() == 0 {
		countdown += " " + calmStyle.Render("calm")
	}
	b.WriteString(countdown + "\n")
	b.WriteString(renderGrid(a))
	return panelStyle.Render(b.String())
}

// renderGrid packs two cell rows into one text row using half blocks.
func renderGrid(a *automaton.Automaton) string {
	d := a.Size()
	var b strings.Builder
	for y := 0; y < d; y += 2 {
		for x := 0; x < d; x++ {
			top := a.CellAt(x, y) == 1
			bottom := y+1 < d && a.CellAt(x, y+1) == 1
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < d {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
