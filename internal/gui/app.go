package gui

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/anim"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viewport"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	rotateSpeed = 0.01
	zoomFactor  = 0.9
)

// palette is the window's colours for one theme.
type palette struct {
	Bg, Panel, Text, Muted, Accent, Button, ButtonText rl.Color
}

func hex(c lipgloss.Color) rl.Color {
	r, g, b := viz.ParseHex(string(c))
	return rl.NewColor(r, g, b, 255)
}

func paletteFor(t viz.Theme) palette {
	return palette{
		Bg:         hex(t.Background),
		Panel:      hex(t.Panel),
		Text:       hex(t.Text),
		Muted:      hex(t.Muted),
		Accent:     hex(t.Accent),
		Button:     hex(t.Primary),
		ButtonText: hex(t.Panel),
	}
}

type App struct {
	Sim    *solar.Simulation
	Scene  *scene.Scene
	Camera *scene.Camera
	Orbit  *scene.OrbitControls
	Panel  *controls.Panel
	Driver *anim.Driver
	View   *viewport.Manager

	surface  *surface
	renderer *renderer
	colors   palette

	// activeSlider is the slider being dragged, if any.
	activeSlider string
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(windowWidth, windowHeight, "orrery")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyQ)
}

// NewApp builds the scene for cfg. The window must already be open.
func NewApp(cfg *config.Config) (*App, error) {
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

	a := &App{
		Sim:     sim,
		Scene:   sc,
		Camera:  scene.NewCamera(cfg.Camera.FOV, float64(windowWidth-PanelWidth)/windowHeight, cfg.Camera.Distance),
		surface: &surface{},
	}
	a.Orbit = scene.NewOrbitControls(a.Camera, cfg.Camera.Damping)
	a.Panel = controls.NewPanel(sim, sc)
	if cfg.Theme == viz.ThemeDark.Name {
		a.Panel.ToggleDarkMode()
	}
	a.colors = paletteFor(viz.ForMode(a.Panel.DarkMode))
	a.renderer = &renderer{surface: a.surface, background: a.colors.Bg}

	a.View = viewport.New(a.Camera, viewport.ContainerFunc(func() (int, int) {
		r := viewportRect(rl.GetScreenWidth(), rl.GetScreenHeight())
		return int(r.W), int(r.H)
	}), a.surface)
	a.View.Init()

	clock := anim.ClockFunc(func() float64 { return float64(rl.GetFrameTime()) })
	a.Driver = anim.NewDriver(sim, sc, a.Camera, clock, a.Orbit, a.renderer)
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.surface.unload()

	log.Printf("orrery: %d bodies, surface %dx%d", len(app.Sim.Bodies), app.surface.w, app.surface.h)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Driver.Frame()
		a.Draw()
	}
}

// Update applies this frame's input before the registry advances.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.View.Resize()
	}

	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	widgets := layout(a.Panel, sw, sh)
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)
	view := viewportRect(sw, sh)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if w, ok := hit(widgets, mx, my); ok {
			switch w.Kind {
			case kindSlider:
				a.activeSlider = w.ID
			case kindButton:
				a.click(w.ID)
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.activeSlider = ""
	}

	switch {
	case a.activeSlider != "":
		for _, w := range widgets {
			if w.ID == a.activeSlider {
				a.slide(w.ID, trackFraction(w.Rect, mx))
			}
		}
	case view.Contains(mx, my):
		delta := rl.GetMouseDelta()
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			a.Orbit.Rotate(-float64(delta.X)*rotateSpeed, -float64(delta.Y)*rotateSpeed)
		}
		if rl.IsMouseButtonDown(rl.MouseButtonRight) && view.H > 0 {
			a.Orbit.Pan(float64(delta.X)/view.H, float64(delta.Y)/view.H)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			a.Orbit.Dolly(math.Pow(zoomFactor, float64(wheel)))
		}
	}

	if view.Contains(mx, my) {
		a.Panel.Hover(mx, my, view, a.Camera)
	} else {
		a.Panel.Tooltip = controls.Tooltip{}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.click(controls.PauseResumeID)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.click(controls.ResetSpeedsID)
	}
	if rl.IsKeyPressed(rl.KeyD) {
		a.click(controls.ToggleDarkID)
	}
}

func (a *App) slide(id string, f float64) {
	if err := a.Panel.SetSliderFraction(id, f); err != nil {
		log.Printf("slide %s: %v", id, err)
	}
}

func (a *App) click(id string) {
	if err := a.Panel.Click(id); err != nil {
		log.Printf("click %s: %v", id, err)
		return
	}
	if id == controls.ToggleDarkID {
		a.colors = paletteFor(viz.ForMode(a.Panel.DarkMode))
		a.renderer.background = a.colors.Bg
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.colors.Bg)

	if a.surface.loaded {
		// render textures are stored upside down
		src := rl.NewRectangle(0, 0, float32(a.surface.w), -float32(a.surface.h))
		rl.DrawTextureRec(a.surface.tex.Texture, src, rl.NewVector2(0, 0), rl.White)
	}

	a.drawPanel()
	a.drawTooltip()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	if a.Sim.Paused {
		status = "PAUSED"
	}
	drawText(status, 16, 16, 16, rl.RayWhite)
	drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 16, int32(rl.GetScreenHeight())-28, 14, rl.Gray)
	drawText("[DRAG] ORBIT  [RMB] PAN  [WHEEL] ZOOM  [SPACE] PAUSE  [R] RESET  [D] DARK  [Q] QUIT",
		110, int32(rl.GetScreenHeight())-28, 14, rl.Gray)
}

func (a *App) drawPanel() {
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	x := int32(max(sw-PanelWidth, 0))
	rl.DrawRectangle(x, 0, PanelWidth, int32(sh), a.colors.Panel)
	drawText("Planet Speeds", x+panelPad, panelPad, 20, a.colors.Text)

	for _, w := range layout(a.Panel, sw, sh) {
		r := rl.NewRectangle(float32(w.Rect.X), float32(w.Rect.Y), float32(w.Rect.W), float32(w.Rect.H))
		switch w.Kind {
		case kindSlider:
			s, err := a.Panel.Slider(w.ID)
			if err != nil {
				continue
			}
			drawText(s.Label, int32(w.Rect.X), int32(w.LabelY), 16, a.colors.Text)
			rl.DrawRectangleRec(r, a.colors.Muted)
			filled := r
			filled.Width = r.Width * float32(s.Fraction())
			rl.DrawRectangleRec(filled, a.colors.Accent)
			rl.DrawCircle(int32(filled.X+filled.Width), int32(r.Y+r.Height/2), 8, a.colors.Accent)
			drawText(s.Readout, int32(w.Rect.X+w.Rect.W)+12, int32(w.Rect.Y)-3, 16, a.colors.Text)
		case kindButton:
			rl.DrawRectangleRec(r, a.colors.Button)
			tw := rl.MeasureText(w.Label, 16)
			drawText(w.Label, int32(r.X)+(int32(r.Width)-tw)/2, int32(r.Y)+8, 16, a.colors.ButtonText)
		}
	}
}

func (a *App) drawTooltip() {
	tip := a.Panel.Tooltip
	if !tip.Visible {
		return
	}
	const size, pad = 14, 5
	tw := rl.MeasureText(tip.Text, size)
	rl.DrawRectangle(int32(tip.X), int32(tip.Y), tw+2*pad, size+2*pad, rl.NewColor(0, 0, 0, 180))
	drawText(tip.Text, int32(tip.X)+pad, int32(tip.Y)+pad, size, rl.White)
}

func drawText(text string, x, y, size int32, c rl.Color) {
	rl.DrawText(text, x, y, size, c)
}
