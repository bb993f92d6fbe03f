package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avasko/s2orbit/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the interactive orbit view: one controller frame per tick,
// then a redraw of the braille canvas and the stats panel.
type Model struct {
	ctrl   *sim.Controller
	canvas *Canvas
	camera *Camera

	speedHistory []float64
	showHelp     bool
}

// NewModel wraps a simulation controller in the TUI.
func NewModel(ctrl *sim.Controller) Model {
	au := ctrl.Orbiter().Central().Constants().AU
	return Model{
		ctrl:         ctrl,
		canvas:       NewCanvas(width, height),
		camera:       NewCamera(width, height, au, ctrl.View()),
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.ctrl.Apply(sim.EventTogglePause)
		case "up":
			m.ctrl.Apply(sim.EventSpeedUp)
		case "down":
			m.ctrl.Apply(sim.EventSlowDown)
		case "+", "=":
			m.ctrl.Apply(sim.EventZoomIn)
		case "-", "_":
			m.ctrl.Apply(sim.EventZoomOut)
		case "h", "left":
			m.ctrl.Apply(sim.EventPanLeft)
		case "l", "right":
			m.ctrl.Apply(sim.EventPanRight)
		case "k":
			m.ctrl.Apply(sim.EventPanUp)
		case "j":
			m.ctrl.Apply(sim.EventPanDown)
		case "c":
			m.ctrl.Apply(sim.EventCenter)
		case "r":
			m.ctrl.Apply(sim.EventReset)
			m.speedHistory = m.speedHistory[:0]
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if !m.ctrl.Clock().Paused {
			m.ctrl.Frame()
			m.speedHistory = append(m.speedHistory, m.ctrl.Orbiter().Speed()/1000)
			if len(m.speedHistory) > historyCapacity {
				m.speedHistory = m.speedHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// draw renders the scene: trail, star, central black hole with its horizon
// and ergosphere rings when the zoom makes them visible.
func (m *Model) draw() {
	m.canvas.Clear()

	pts := m.ctrl.Orbiter().Trail().Points()
	for i := 1; i < len(pts); i++ {
		x0, y0 := m.camera.Project(pts[i-1].X, pts[i-1].Y)
		x1, y1 := m.camera.Project(pts[i].X, pts[i].Y)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	bx, by := m.camera.Project(0, 0)
	m.canvas.SetBlob(bx, by)
	rs := m.ctrl.Orbiter().Central().SchwarzschildRadius()
	if r := m.camera.ScaleLength(rs); r >= 2 {
		m.canvas.DrawCircle(bx, by, r)
		// ergosphere of a maximally spinning hole reaches twice the horizon
		m.canvas.DrawCircle(bx, by, 2*r)
	}

	pos := m.ctrl.Orbiter().Position()
	sx, sy := m.camera.Project(pos.X, pos.Y)
	m.canvas.SetBlob(sx, sy)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()

	theme := CurrentTheme
	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(theme.Primary)
	statsStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(theme.Muted).Padding(1, 2).Width(42)
	headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	graphStyle := lipgloss.NewStyle().Foreground(theme.Accent).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(2)

	o := m.ctrl.Orbiter()
	au := o.Central().Constants().AU

	var s strings.Builder
	s.WriteString(headerStyle.Render("S2 / SGR A*") + "\n")
	status := "RUNNING"
	if m.ctrl.Clock().Paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Speed km/s"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(FormatDuration(o.Elapsed())) + "\n")
	s.WriteString(labelStyle.Render("Time scale") + valueStyle.Render(FormatTimeScale(m.ctrl.Clock().TimeScale)) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.2f AU", o.Radius()/au)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.0f km/s", o.Speed()/1000)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.ctrl.View().Zoom)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n↑↓:Speed +-:Zoom HJKL:Pan\nC:Center T:Theme ?:Help"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  Up/Down  - Double/halve time scale  ║
║  + / -    - Zoom in/out              ║
║  H J K L  - Pan the view             ║
║  C        - Center on the black hole ║
║  R        - Reset the simulation     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
