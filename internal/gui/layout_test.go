package gui

import (
	"math/rand"
	"testing"

	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
)

func newPanel(t *testing.T) *controls.Panel {
	t.Helper()
	sc, sim, err := scene.Build(solar.DefaultBodies(), scene.Options{StarCount: 1}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	return controls.NewPanel(sim, sc)
}

func TestViewportRect(t *testing.T) {
	r := viewportRect(1280, 720)
	if r.W != 1280-PanelWidth || r.H != 720 || r.X != 0 {
		t.Errorf("viewport = %+v", r)
	}
	if r := viewportRect(100, 50); r.W != 0 {
		t.Errorf("narrow window should leave no viewport, got %+v", r)
	}
}

func TestLayout(t *testing.T) {
	p := newPanel(t)
	ws := layout(p, 1280, 720)
	if len(ws) != 11 {
		t.Fatalf("expected 8 sliders + 3 buttons, got %d", len(ws))
	}
	if ws[0].ID != "speed-mercury" || ws[7].ID != "speed-neptune" {
		t.Errorf("slider order: %s .. %s", ws[0].ID, ws[7].ID)
	}
	if ws[8].ID != controls.PauseResumeID || ws[9].ID != controls.ResetSpeedsID || ws[10].ID != controls.ToggleDarkID {
		t.Error("button order wrong")
	}
	for i := 1; i < len(ws); i++ {
		if ws[i].Rect.Y <= ws[i-1].Rect.Y {
			t.Errorf("widget %d not below widget %d", i, i-1)
		}
	}
	vp := viewportRect(1280, 720)
	for _, w := range ws {
		if w.Rect.X < vp.W {
			t.Errorf("%s overlaps the viewport", w.ID)
		}
	}
}

func TestHitAndTrack(t *testing.T) {
	p := newPanel(t)
	ws := layout(p, 1280, 720)
	earth := ws[2]

	w, ok := hit(ws, earth.Rect.X+earth.Rect.W/2, earth.Rect.Y+earth.Rect.H/2)
	if !ok || w.ID != "speed-earth" {
		t.Fatalf("hit = %v %v", w.ID, ok)
	}
	if _, ok := hit(ws, 10, 10); ok {
		t.Error("viewport point hit a widget")
	}

	f := trackFraction(earth.Rect, earth.Rect.X+earth.Rect.W/2)
	if err := p.SetSliderFraction(w.ID, f); err != nil {
		t.Fatal(err)
	}
	s, _ := p.Slider("speed-earth")
	if s.Readout != "0.050" {
		t.Errorf("readout = %s, want 0.050", s.Readout)
	}
	if trackFraction(earth.Rect, 0) != 0 || trackFraction(earth.Rect, 1e6) != 1 {
		t.Error("fraction not clamped")
	}
}

func TestButtonLabelsFollowPanel(t *testing.T) {
	p := newPanel(t)
	p.TogglePause()
	p.ToggleDarkMode()
	ws := layout(p, 1280, 720)
	if ws[8].Label != controls.LabelResume || ws[10].Label != controls.LabelLight {
		t.Errorf("labels = %q, %q", ws[8].Label, ws[10].Label)
	}
}
