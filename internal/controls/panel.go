// Package controls wires user input to the body registry: speed sliders,
// pause, reset, dark mode and the hover tooltip. Frontends translate their
// own widget and pointer events into Panel calls and draw Panel state.
package controls

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
)

// ErrUnknownControl indicates an element ID no control carries.
var ErrUnknownControl = errors.New("controls: unknown control")

const (
	LabelPause  = "Pause"
	LabelResume = "Resume"
	LabelDark   = "Dark Mode"
	LabelLight  = "Light Mode"

	// tooltip offset from the pointer, in surface pixels
	TooltipOffset = 10
)

// Rect is the render surface's placement in the frontend's coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Tooltip is the floating hover label.
type Tooltip struct {
	Visible bool
	Text    string
	X, Y    float64
}

type Panel struct {
	sim   *solar.Simulation
	scene *scene.Scene

	Sliders []*Slider
	byID    map[string]*Slider

	PauseLabel string
	DarkMode   bool
	DarkLabel  string
	Tooltip    Tooltip

	raycaster scene.Raycaster
	names     map[*scene.Node]string
}

// NewPanel builds one slider per planet, in registry order.
func NewPanel(sim *solar.Simulation, sc *scene.Scene) *Panel {
	p := &Panel{
		sim:        sim,
		scene:      sc,
		byID:       make(map[string]*Slider),
		PauseLabel: LabelPause,
		DarkLabel:  LabelDark,
		names:      make(map[*scene.Node]string),
	}
	if sim.Paused {
		p.PauseLabel = LabelResume
	}

	descs := Descriptors(sim)
	ordered := make([]SliderDescriptor, 0, len(descs))
	for _, d := range descs {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].BodyIndex < ordered[j].BodyIndex })
	for _, d := range ordered {
		s := newSlider(d)
		p.Sliders = append(p.Sliders, s)
		p.byID[d.ID] = s
	}

	if sc != nil {
		for _, n := range sc.HoverTargets() {
			p.names[n] = n.Name
		}
	}
	return p
}

// Slider returns the slider with the given element ID.
func (p *Panel) Slider(id string) (*Slider, error) {
	s, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return s, nil
}

// SetSlider is the slider's input event: the body's speed becomes the
// slider's constrained value and the readout follows.
func (p *Panel) SetSlider(id string, v float64) error {
	s, err := p.Slider(id)
	if err != nil {
		return err
	}
	return p.sim.SetSpeed(s.BodyIndex, s.set(v))
}

// StepSlider moves a slider by n steps.
func (p *Panel) StepSlider(id string, n int) error {
	s, err := p.Slider(id)
	if err != nil {
		return err
	}
	return p.SetSlider(id, s.Value+float64(n)*s.Step)
}

// SetSliderFraction positions a slider's thumb at f in [0, 1].
func (p *Panel) SetSliderFraction(id string, f float64) error {
	s, err := p.Slider(id)
	if err != nil {
		return err
	}
	return p.SetSlider(id, s.Min+f*(s.Max-s.Min))
}

// TogglePause flips the pause flag and relabels the button.
func (p *Panel) TogglePause() {
	if p.sim.TogglePause() {
		p.PauseLabel = LabelResume
	} else {
		p.PauseLabel = LabelPause
	}
}

// Reset restores every planet's configured speed and syncs the sliders.
func (p *Panel) Reset() {
	p.sim.ResetSpeeds()
	for _, s := range p.Sliders {
		cfg, err := p.sim.Config(s.BodyIndex)
		if err != nil {
			continue
		}
		s.sync(cfg.Speed)
	}
}

// ToggleDarkMode flips the presentation theme. It has no effect on the
// simulation.
func (p *Panel) ToggleDarkMode() {
	p.DarkMode = !p.DarkMode
	if p.DarkMode {
		p.DarkLabel = LabelLight
	} else {
		p.DarkLabel = LabelDark
	}
}

// Click dispatches a button press by element ID.
func (p *Panel) Click(id string) error {
	switch id {
	case PauseResumeID:
		p.TogglePause()
	case ResetSpeedsID:
		p.Reset()
	case ToggleDarkID:
		p.ToggleDarkMode()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return nil
}

// Hover is the pointer-move handler. (px, py) is the pointer in the same
// coordinates as surface. The nearest planet under the pointer names the
// tooltip; anything else hides it.
func (p *Panel) Hover(px, py float64, surface Rect, cam *scene.Camera) Tooltip {
	p.Tooltip = Tooltip{}
	if surface.W <= 0 || surface.H <= 0 || p.scene == nil {
		return p.Tooltip
	}

	ndc := scene.PixelToNDC(px, py, surface.X, surface.Y, surface.W, surface.H)
	p.raycaster.SetFromCamera(ndc, cam)
	hits := p.raycaster.IntersectObjects(p.scene.HoverTargets())
	if len(hits) == 0 {
		return p.Tooltip
	}

	p.Tooltip = Tooltip{
		Visible: true,
		Text:    p.names[hits[0].Object],
		X:       px + TooltipOffset,
		Y:       py + TooltipOffset,
	}
	return p.Tooltip
}
