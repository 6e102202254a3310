package tui

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orrery/internal/anim"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viewport"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	panelWidth  = 38
	sliderWidth = 12
	traceHeight = 6
	traceLen    = 240

	rotateStep = 0.3
	zoomStep   = 0.9
	dragScale  = 0.05
)

type frameMsg time.Time

// Model is the bubbletea program state. The canvas fills the terminal left
// of a fixed-width control panel.
type Model struct {
	sim      *solar.Simulation
	scene    *scene.Scene
	camera   *scene.Camera
	orbit    *scene.OrbitControls
	panel    *controls.Panel
	driver   *anim.Driver
	view     *viewport.Manager
	renderer *Renderer

	fps      int
	width    int
	height   int
	selected int

	showTrace bool
	trace     []float64

	dragging     bool
	lastX, lastY int

	// err is the last control error, shown in the status line.
	err error
}

// New builds the scene, registry and controls for cfg.
func New(cfg *config.Config) (*Model, error) {
	bodies, err := cfg.BodyConfigs()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc, sim, err := scene.Build(bodies, cfg.SceneOptions(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	m := &Model{
		sim:    sim,
		scene:  sc,
		camera: scene.NewCamera(cfg.Camera.FOV, 1, cfg.Camera.Distance),
		fps:    cfg.FPS,
		width:  80,
		height: 24,
	}
	// tilt the view so the orbital plane reads as ellipses
	m.camera.Position.Y = cfg.Camera.Distance * 0.4
	m.orbit = scene.NewOrbitControls(m.camera, cfg.Camera.Damping)
	m.panel = controls.NewPanel(sim, sc)
	if cfg.Theme == viz.ThemeDark.Name {
		m.panel.ToggleDarkMode()
	}
	m.renderer = NewRenderer(viz.ForMode(m.panel.DarkMode))
	// roughly 2000 stars are enough at terminal resolution
	m.renderer.StarStride = max(len(sc.Stars.Points)/2000, 1)
	m.renderer.Tooltip = &m.panel.Tooltip
	m.view = viewport.New(m.camera, viewport.ContainerFunc(m.canvasSize), m.renderer)
	m.driver = anim.NewDriver(sim, sc, m.camera, anim.NewSystemClock(), m.orbit, m.renderer)
	m.view.Init()
	return m, nil
}

// canvasSize is the viewport container: the canvas area in sub-pixels.
func (m *Model) canvasSize() (int, int) {
	cols := max(m.width-panelWidth, 0)
	rows := max(m.height-1, 0)
	if m.showTrace {
		rows = max(rows-traceHeight-2, 0)
	}
	return cols * 2, rows * 4
}

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) tick() tea.Cmd {
	fps := max(m.fps, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Resize()
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case frameMsg:
		m.driver.Frame()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) selectedSlider() *controls.Slider {
	if len(m.panel.Sliders) == 0 {
		return nil
	}
	return m.panel.Sliders[m.selected]
}

func (m *Model) stepSelected(n int) {
	if s := m.selectedSlider(); s != nil {
		m.report(m.panel.StepSlider(s.ID, n))
	}
}

func (m *Model) click(id string) {
	m.report(m.panel.Click(id))
}

func (m *Model) report(err error) {
	if err != nil {
		log.Printf("tui: %v", err)
	}
	m.err = err
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.panel.Sliders)
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "tab", "down", "j":
		if n > 0 {
			m.selected = (m.selected + 1) % n
			m.trace = m.trace[:0]
		}
	case "shift+tab", "up", "k":
		if n > 0 {
			m.selected = (m.selected + n - 1) % n
			m.trace = m.trace[:0]
		}
	case "right", "l":
		m.stepSelected(1)
	case "left", "h":
		m.stepSelected(-1)
	case "L":
		m.stepSelected(10)
	case "H":
		m.stepSelected(-10)
	case " ", "p":
		m.click(controls.PauseResumeID)
	case "r":
		m.click(controls.ResetSpeedsID)
	case "d":
		m.click(controls.ToggleDarkID)
		m.renderer.Theme = viz.ForMode(m.panel.DarkMode)
	case "t":
		m.showTrace = !m.showTrace
		m.view.Resize()
	case "shift+left":
		m.orbit.Rotate(-rotateStep, 0)
	case "shift+right":
		m.orbit.Rotate(rotateStep, 0)
	case "shift+up":
		m.orbit.Rotate(0, -rotateStep)
	case "shift+down":
		m.orbit.Rotate(0, rotateStep)
	case "+", "=":
		m.orbit.Dolly(zoomStep)
	case "-", "_":
		m.orbit.Dolly(1 / zoomStep)
	}
	return nil
}

// handleMouse maps terminal cells to sub-pixel centres on the canvas.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.orbit.Dolly(zoomStep)
		return
	case msg.Button == tea.MouseButtonWheelDown:
		m.orbit.Dolly(1 / zoomStep)
		return
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.orbit.Rotate(-float64(msg.X-m.lastX)*dragScale, -float64(msg.Y-m.lastY)*dragScale)
	}
	m.lastX, m.lastY = msg.X, msg.Y

	w, h := m.view.Size()
	surface := controls.Rect{W: float64(w), H: float64(h)}
	px, py := float64(msg.X*2+1), float64(msg.Y*4+2)
	if !surface.Contains(px, py) {
		m.panel.Tooltip = controls.Tooltip{}
		return
	}
	m.panel.Hover(px, py, surface, m.camera)
}

func (m *Model) record() {
	s := m.selectedSlider()
	if s == nil {
		return
	}
	m.trace = append(m.trace, m.sim.Bodies[s.BodyIndex].OrbitPosition().X)
	if len(m.trace) > traceLen {
		m.trace = m.trace[len(m.trace)-traceLen:]
	}
}

func (m *Model) View() string {
	theme := m.renderer.Theme
	styles := viz.NewStyles(theme)

	c := m.renderer.Canvas
	left := c.Render(theme.Text)
	if m.showTrace {
		left = lipgloss.JoinVertical(lipgloss.Left, left, m.traceView(styles, c.Width))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.panelView(styles)) + "\n" + m.statusView(styles)
}

func (m *Model) panelView(st viz.Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Planet Speeds"))
	b.WriteString("\n\n")
	for i, s := range m.panel.Sliders {
		label := st.Label
		cursor := "  "
		if i == m.selected {
			label = st.Selected
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s %s %s\n",
			cursor,
			label.Render(fmt.Sprintf("%-8s", s.Label)),
			viz.SliderBar(s.Fraction(), sliderWidth, st.Muted, label),
			st.Value.Render(s.Readout))
	}
	b.WriteString("\n")
	b.WriteString(st.Button.Render(m.panel.PauseLabel) + " " +
		st.Button.Render("Reset") + " " +
		st.Button.Render(m.panel.DarkLabel))
	return st.Panel.Width(panelWidth - 2).Render(b.String())
}

func (m *Model) traceView(st viz.Styles, width int) string {
	s := m.selectedSlider()
	if s == nil || len(m.trace) < 2 {
		return st.Muted.Render("collecting trace...")
	}
	return asciigraph.Plot(m.trace,
		asciigraph.Height(traceHeight),
		asciigraph.Width(max(width-12, 10)),
		asciigraph.Caption(s.Label+" x"),
	)
}

func (m *Model) statusView(st viz.Styles) string {
	state := "running"
	if m.sim.Paused {
		state = "paused"
	}
	if m.err != nil {
		state += " (" + m.err.Error() + ")"
	}
	return st.Status.Render(state) + st.KeyHint.Render(fmt.Sprintf(
		"  t=%.0f  zoom=%.1f  tab:select ←/→:speed space:pause r:reset d:dark t:trace shift+arrows/drag:orbit +/-:zoom q:quit",
		math.Floor(m.driver.Elapsed()), m.orbit.Distance()))
}

// Run starts the TUI on the alternate screen with mouse motion reporting.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
