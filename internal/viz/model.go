package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/world"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	panelWidth      = 38
	historyCapacity = 240

	// PixelScale is world pixels per braille sub-pixel.
	PixelScale = 4.0

	angleStep = 5.0
	maxAngle  = 80.0
	maxCount  = 200
)

type TickMsg time.Time

// Model hosts a sim.Loop in the terminal. Scene edits stay pending until
// enter applies them.
type Model struct {
	loop       *sim.Loop
	renderer   *CanvasRenderer
	energy     *metrics.KineticEnergy
	fps        int
	pending    world.Scene
	applied    world.Scene
	stats      world.FrameStats
	running    bool
	showHelp   bool
	colorIdx   int
	energyHist []float64
	collHist   []float64
	sized      bool
	err        error
}

// NewModel wires a canvas renderer and an energy metric into l. The scene is
// applied on the first window size message, so the ground is built for the
// real terminal.
func NewModel(l *sim.Loop, scene world.Scene, fps int) Model {
	canvas := NewCanvas(defaultCols, defaultRows)
	r := NewCanvasRenderer(canvas, PixelScale)
	sim.WithRenderer(r)(l)

	energy := metrics.NewKineticEnergy()
	l.AddMetric(energy)

	m := Model{
		loop:       l,
		renderer:   r,
		energy:     energy,
		fps:        fps,
		pending:    scene,
		running:    true,
		energyHist: make([]float64, 0, historyCapacity),
		collHist:   make([]float64, 0, historyCapacity),
	}
	m.resizeCanvas(defaultCols, defaultRows)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "enter", "r":
			m.apply()
		case "left", "h":
			m.pending.AngleDeg = clamp(m.pending.AngleDeg-angleStep, -maxAngle, maxAngle)
		case "right", "l":
			m.pending.AngleDeg = clamp(m.pending.AngleDeg+angleStep, -maxAngle, maxAngle)
		case "+", "=", "up", "k":
			if m.pending.Count < maxCount {
				m.pending.Count++
			}
		case "-", "_", "down", "j":
			if m.pending.Count > 0 {
				m.pending.Count--
			}
		case "c":
			palette := CurrentTheme.Palette
			m.colorIdx = (m.colorIdx + 1) % len(palette)
			m.pending.Color = palette[m.colorIdx]
		case "t":
			SetTheme(NextTheme())
			m.renderer.WallColor = string(CurrentTheme.Muted)
			m.renderer.GroundColor = string(CurrentTheme.Secondary)
			m.colorIdx = 0
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resizeCanvas(msg.Width-panelWidth-4, msg.Height-1)
		if !m.sized {
			m.sized = true
			m.apply()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) apply() {
	m.loop.Configure(m.pending)
	m.applied = m.pending
}

// resizeCanvas fits the canvas to cols x rows cells and resizes the world to
// match, so walls sit on the canvas edge.
func (m *Model) resizeCanvas(cols, rows int) {
	m.renderer.Canvas.Resize(cols, rows)
	w, h := m.renderer.WorldSize()
	m.err = m.loop.Resize(w, h)
}

func (m *Model) step() {
	m.stats = m.loop.Step()

	m.energyHist = appendCapped(m.energyHist, m.energy.Last())
	m.collHist = appendCapped(m.collHist, float64(m.stats.Collisions))
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.renderer.Canvas.Render())

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(CurrentTheme.Primary).Render("BALLPIT") + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	bounds := m.loop.World().Bounds()
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Frame)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Bodies)) + "\n")
	s.WriteString(labelStyle.Render("Collisions") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Collisions)) + "\n")
	s.WriteString(labelStyle.Render("Ground") + valueStyle.Render(fmt.Sprintf("%d", m.stats.GroundContacts)) + "\n")
	s.WriteString(labelStyle.Render("Viewport") + valueStyle.Render(fmt.Sprintf("%.0fx%.0f", bounds.Width, bounds.Height)) + "\n")

	if len(m.energyHist) > 1 {
		chart := asciigraph.Plot(m.energyHist, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(SparklineChart(m.collHist, panelWidth-6) + "\n\n")

	s.WriteString("SCENE\n")
	s.WriteString(m.sceneLine("Color", Swatch(m.pending.Color), m.pending.Color != m.applied.Color))
	s.WriteString(m.sceneLine("Count", fmt.Sprintf("%d", m.pending.Count), m.pending.Count != m.applied.Count))
	s.WriteString(m.sceneLine("Angle", fmt.Sprintf("%.0f°", m.pending.AngleDeg), m.pending.AngleDeg != m.applied.AngleDeg))
	if m.err != nil {
		s.WriteString(StatusPaused.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause ⏎:Start Q:Quit\n←→:Angle +-:Count C:Color\nT:Theme ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space     - Pause/Resume            ║
║  Enter/R   - Respawn with scene      ║
║  Left/H    - Ground angle -5°        ║
║  Right/L   - Ground angle +5°        ║
║  +/K       - One more ball           ║
║  -/J       - One less ball           ║
║  C         - Next ball colour        ║
║  T         - Cycle themes            ║
║  Q         - Quit                    ║
║  ?         - Toggle this help        ║
╚══════════════════════════════════════╝
` + "\n" + mainView
	}
	return mainView
}

func (m Model) sceneLine(label, value string, dirty bool) string {
	if dirty {
		return labelStyle.Render(label) + pendingStyle.Render(value+" *") + "\n"
	}
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run blocks until the user quits the terminal view.
func Run(l *sim.Loop, scene world.Scene, fps int) error {
	p := tea.NewProgram(NewModel(l, scene, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
