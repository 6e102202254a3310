package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/san-kum/orrery/internal/vmath"
)

func buildScene(t *testing.T, cfgs []solar.BodyConfig) *scene.Scene {
	t.Helper()
	sc, _, err := scene.Build(cfgs, scene.Options{StarCount: 50}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	sc.Stars.Points = nil
	return sc
}

func countPen(c *viz.Canvas, pen string) int {
	n := 0
	for _, row := range c.Colors {
		for _, p := range row {
			if p == pen {
				n++
			}
		}
	}
	return n
}

func TestRendererDrawsSunAtCentre(t *testing.T) {
	sc := buildScene(t, solar.DefaultBodies()[:1])
	r := NewRenderer(viz.ThemeLight)
	r.SetSize(80, 80)
	r.Render(sc, scene.NewCamera(75, 1, 30))

	if r.Canvas.Width != 40 || r.Canvas.Height != 20 {
		t.Fatalf("canvas %dx%d, want 40x20", r.Canvas.Width, r.Canvas.Height)
	}
	if !r.Canvas.IsSet(40, 40) {
		t.Error("sun centre not drawn")
	}
	if r.Canvas.Colors[10][20] != "#ffff00" {
		t.Errorf("centre cell pen = %q, want sun colour", r.Canvas.Colors[10][20])
	}
	if r.Canvas.IsSet(40, 20) {
		t.Error("sun disc larger than its projected radius")
	}
}

func TestRendererDrawsOrbitsAndRing(t *testing.T) {
	cfgs := []solar.BodyConfig{solar.DefaultBodies()[0], solar.DefaultBodies()[6]}
	sc := buildScene(t, cfgs)
	sc.Bodies[1].SetPosition(vmath.Vec3{X: 25})

	cam := scene.NewCamera(75, 2, 0)
	cam.Position = vmath.Vec3{X: 25, Y: 6, Z: 12}
	cam.Target = vmath.Vec3{X: 25}
	r := NewRenderer(viz.ThemeDark)
	r.SetSize(160, 80)
	r.Render(sc, cam)

	if countPen(r.Canvas, string(viz.ThemeDark.Orbit)) == 0 {
		t.Error("orbit guide not drawn")
	}
	if countPen(r.Canvas, scene.RingColor.Hex()) == 0 {
		t.Error("ring not drawn")
	}
	if countPen(r.Canvas, "#ffdb58") == 0 {
		t.Error("saturn not drawn")
	}
}

func TestRendererZeroSize(t *testing.T) {
	sc := buildScene(t, solar.DefaultBodies())
	r := NewRenderer(viz.ThemeLight)
	r.SetSize(0, 0)
	r.Render(sc, scene.NewCamera(75, 1, 30))
	if r.Canvas.String() != "" {
		t.Error("empty surface should render nothing")
	}
}

func TestRendererDrawsTooltipOverFrame(t *testing.T) {
	sc := buildScene(t, solar.DefaultBodies()[:1])
	r := NewRenderer(viz.ThemeLight)
	r.SetSize(80, 80)
	tip := &controls.Tooltip{}
	r.Tooltip = tip

	r.Render(sc, scene.NewCamera(75, 1, 30))
	if strings.Contains(r.Canvas.String(), "Sun") {
		t.Error("hidden tooltip was drawn")
	}

	*tip = controls.Tooltip{Visible: true, Text: "Sun", X: 10, Y: 8}
	r.Render(sc, scene.NewCamera(75, 1, 30))
	if !strings.Contains(r.Canvas.String(), " Sun ") {
		t.Errorf("tooltip missing from frame:\n%s", r.Canvas.String())
	}
	if r.Canvas.Colors[2][6] != tooltipPen {
		t.Errorf("tooltip cell pen = %q", r.Canvas.Colors[2][6])
	}
}
