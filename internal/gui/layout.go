package gui

import (
	"github.com/san-kum/orrery/internal/controls"
)

// Side panel geometry, in window pixels.
const (
	PanelWidth = 280

	panelPad     = 16
	titleHeight  = 40
	rowHeight    = 44
	trackHeight  = 10
	readoutWidth = 56
	buttonHeight = 32
	buttonGap    = 8
)

type widgetKind int

const (
	kindSlider widgetKind = iota
	kindButton
)

// widget is one clickable element of the side panel.
type widget struct {
	ID    string
	Kind  widgetKind
	Label string
	// Rect is the slider track or the button face.
	Rect controls.Rect
	// LabelY is where a slider's label row starts.
	LabelY float64
}

// viewportRect is the part of the window the 3D surface fills.
func viewportRect(screenW, screenH int) controls.Rect {
	w := max(screenW-PanelWidth, 0)
	return controls.Rect{W: float64(w), H: float64(max(screenH, 0))}
}

// layout positions the panel widgets for a screen size: one slider row per
// planet, then the three buttons.
func layout(p *controls.Panel, screenW, screenH int) []widget {
	x := float64(max(screenW-PanelWidth, 0)) + panelPad
	inner := float64(PanelWidth - 2*panelPad)
	y := float64(panelPad + titleHeight)

	out := make([]widget, 0, len(p.Sliders)+3)
	for _, s := range p.Sliders {
		out = append(out, widget{
			ID:     s.ID,
			Kind:   kindSlider,
			Label:  s.Label,
			LabelY: y,
			Rect:   controls.Rect{X: x, Y: y + 20, W: inner - readoutWidth, H: trackHeight},
		})
		y += rowHeight
	}

	y += buttonGap
	for _, b := range []struct{ id, label string }{
		{controls.PauseResumeID, p.PauseLabel},
		{controls.ResetSpeedsID, "Reset"},
		{controls.ToggleDarkID, p.DarkLabel},
	} {
		out = append(out, widget{
			ID:    b.id,
			Kind:  kindButton,
			Label: b.label,
			Rect:  controls.Rect{X: x, Y: y, W: inner, H: buttonHeight},
		})
		y += buttonHeight + buttonGap
	}
	return out
}

// hit returns the widget under the pointer, if any. Slider tracks accept
// clicks a few pixels above and below the bar.
func hit(widgets []widget, px, py float64) (widget, bool) {
	for _, w := range widgets {
		r := w.Rect
		if w.Kind == kindSlider {
			r.Y -= 6
			r.H += 12
		}
		if r.Contains(px, py) {
			return w, true
		}
	}
	return widget{}, false
}

// trackFraction maps a pointer x onto a slider track.
func trackFraction(r controls.Rect, px float64) float64 {
	if r.W <= 0 {
		return 0
	}
	f := (px - r.X) / r.W
	return min(max(f, 0), 1)
}
