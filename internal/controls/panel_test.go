package controls

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
)

func newPanel(t *testing.T) (*Panel, *solar.Simulation, *scene.Scene) {
	t.Helper()
	sc, sim, err := scene.Build(solar.DefaultBodies(), scene.Options{StarCount: 1}, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	return NewPanel(sim, sc), sim, sc
}

func TestDescriptorsSkipSun(t *testing.T) {
	_, sim, _ := newPanel(t)
	descs := Descriptors(sim)
	if _, ok := descs["Sun"]; ok {
		t.Error("sun should have no slider")
	}
	if len(descs) != len(sim.Bodies)-1 {
		t.Errorf("expected %d descriptors, got %d", len(sim.Bodies)-1, len(descs))
	}
	earth := descs["Earth"]
	if earth.ID != "speed-earth" || earth.Min != 0 || earth.Max != 0.1 || earth.Step != 0.001 || earth.Value != 0.01 {
		t.Errorf("earth descriptor = %+v", earth)
	}
}

func TestPanelSliderOrderAndReadout(t *testing.T) {
	p, sim, _ := newPanel(t)
	for i, s := range p.Sliders {
		if s.BodyIndex != i+1 {
			t.Errorf("slider %d bound to body %d", i, s.BodyIndex)
		}
		if s.Readout != FormatSpeed(sim.Bodies[i+1].Speed) {
			t.Errorf("%s readout = %q", s.Label, s.Readout)
		}
	}
}

func TestSetSliderChangesOnlyThatBody(t *testing.T) {
	p, sim, _ := newPanel(t)
	before := make([]float64, len(sim.Bodies))
	for i, b := range sim.Bodies {
		before[i] = b.Speed
	}

	if err := p.SetSlider("speed-mars", 0.037); err != nil {
		t.Fatal(err)
	}

	mars, _ := p.Slider("speed-mars")
	if sim.Bodies[mars.BodyIndex].Speed != 0.037 {
		t.Errorf("mars speed = %v", sim.Bodies[mars.BodyIndex].Speed)
	}
	if mars.Readout != "0.037" {
		t.Errorf("readout = %q", mars.Readout)
	}
	for i, b := range sim.Bodies {
		if i != mars.BodyIndex && b.Speed != before[i] {
			t.Errorf("%s speed changed to %v", b.Name, b.Speed)
		}
	}
}

func TestSetSliderConstrains(t *testing.T) {
	p, sim, _ := newPanel(t)
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.1},
		{-1, 0},
		{0.0234, 0.023},
		{0.0236, 0.024},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if err := p.SetSlider("speed-venus", tt.in); err != nil {
			t.Fatal(err)
		}
		got := sim.Bodies[2].Speed
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SetSlider(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStepSlider(t *testing.T) {
	p, sim, _ := newPanel(t)
	if err := p.StepSlider("speed-earth", 5); err != nil {
		t.Fatal(err)
	}
	if math.Abs(sim.Bodies[3].Speed-0.015) > 1e-12 {
		t.Errorf("speed = %v, want 0.015", sim.Bodies[3].Speed)
	}
	if err := p.SetSliderFraction("speed-earth", 1); err != nil {
		t.Fatal(err)
	}
	if sim.Bodies[3].Speed != 0.1 {
		t.Errorf("speed = %v, want 0.1", sim.Bodies[3].Speed)
	}
}

func TestUnknownControl(t *testing.T) {
	p, _, _ := newPanel(t)
	if err := p.SetSlider("speed-sun", 0.01); !errors.Is(err, ErrUnknownControl) {
		t.Errorf("err = %v, want ErrUnknownControl", err)
	}
	if err := p.Click("launch"); !errors.Is(err, ErrUnknownControl) {
		t.Errorf("err = %v, want ErrUnknownControl", err)
	}
}

func TestResetRestoresSpeedsAndSliders(t *testing.T) {
	p, sim, _ := newPanel(t)
	for _, s := range p.Sliders {
		if err := p.SetSlider(s.ID, 0.1); err != nil {
			t.Fatal(err)
		}
	}

	if err := p.Click(ResetSpeedsID); err != nil {
		t.Fatal(err)
	}

	cfgs := solar.DefaultBodies()
	for _, s := range p.Sliders {
		want := cfgs[s.BodyIndex].Speed
		if sim.Bodies[s.BodyIndex].Speed != want {
			t.Errorf("%s speed = %v, want %v", s.Label, sim.Bodies[s.BodyIndex].Speed, want)
		}
		if s.Value != want || s.Readout != FormatSpeed(want) {
			t.Errorf("%s slider = %v / %q", s.Label, s.Value, s.Readout)
		}
	}
}

func TestPauseLabel(t *testing.T) {
	p, sim, _ := newPanel(t)
	if p.PauseLabel != LabelPause {
		t.Errorf("initial label = %q", p.PauseLabel)
	}
	p.Click(PauseResumeID)
	if !sim.Paused || p.PauseLabel != LabelResume {
		t.Errorf("after pause: paused=%v label=%q", sim.Paused, p.PauseLabel)
	}
	p.Click(PauseResumeID)
	if sim.Paused || p.PauseLabel != LabelPause {
		t.Errorf("after resume: paused=%v label=%q", sim.Paused, p.PauseLabel)
	}
}

func TestDarkModeIsCosmetic(t *testing.T) {
	p, sim, _ := newPanel(t)
	speeds := make([]float64, len(sim.Bodies))
	for i, b := range sim.Bodies {
		speeds[i] = b.Speed
	}

	p.Click(ToggleDarkID)
	if !p.DarkMode || p.DarkLabel != LabelLight {
		t.Errorf("dark on: mode=%v label=%q", p.DarkMode, p.DarkLabel)
	}
	p.Click(ToggleDarkID)
	if p.DarkMode || p.DarkLabel != LabelDark {
		t.Errorf("dark off: mode=%v label=%q", p.DarkMode, p.DarkLabel)
	}
	if sim.Paused {
		t.Error("dark mode paused the simulation")
	}
	for i, b := range sim.Bodies {
		if b.Speed != speeds[i] {
			t.Errorf("dark mode changed %s speed", b.Name)
		}
	}
}

// line every planet up on the +X axis so hits are deterministic
func alignPlanets(sim *solar.Simulation, angle float64) {
	for _, b := range sim.Planets() {
		b.Angle = angle
	}
	sim.Advance(0)
}

func TestHoverNamesPlanetUnderPointer(t *testing.T) {
	p, sim, sc := newPanel(t)
	alignPlanets(sim, 0)

	cam := scene.NewCamera(75, 800.0/600.0, 30)
	surface := Rect{X: 0, Y: 0, W: 800, H: 600}

	earth := sc.Bodies[3]
	ndc, _, ok := cam.Project(earth.WorldPosition())
	if !ok {
		t.Fatal("earth should be in view")
	}
	px, py := scene.NDCToPixel(ndc, 800, 600)

	tip := p.Hover(px, py, surface, cam)
	if !tip.Visible || tip.Text != "Earth" {
		t.Fatalf("tooltip = %+v, want Earth", tip)
	}
	if tip.X != px+TooltipOffset || tip.Y != py+TooltipOffset {
		t.Errorf("tooltip at %v,%v, want pointer + offset", tip.X, tip.Y)
	}
}

func TestHoverMissHides(t *testing.T) {
	p, sim, _ := newPanel(t)
	alignPlanets(sim, 0)
	cam := scene.NewCamera(75, 1, 30)
	surface := Rect{W: 600, H: 600}

	p.Tooltip = Tooltip{Visible: true, Text: "stale"}
	tip := p.Hover(5, 5, surface, cam)
	if tip.Visible {
		t.Errorf("tooltip = %+v, want hidden", tip)
	}
}

func TestHoverIgnoresSun(t *testing.T) {
	p, sim, _ := newPanel(t)
	alignPlanets(sim, 0)
	cam := scene.NewCamera(75, 1, 30)
	surface := Rect{W: 600, H: 600}

	if tip := p.Hover(300, 300, surface, cam); tip.Visible {
		t.Errorf("sun reported as %q", tip.Text)
	}

	// the sun is not tested at all, so a planet behind it still shows
	alignPlanets(sim, 3*math.Pi/2)
	tip := p.Hover(300, 300, surface, cam)
	if !tip.Visible || tip.Text != "Mercury" {
		t.Errorf("tooltip = %+v, want nearest planet behind the sun", tip)
	}
}

func TestHoverOffsetSurface(t *testing.T) {
	p, sim, sc := newPanel(t)
	alignPlanets(sim, 0)
	cam := scene.NewCamera(75, 1, 30)
	surface := Rect{X: 200, Y: 100, W: 400, H: 400}

	ndc, _, _ := cam.Project(sc.Bodies[5].WorldPosition())
	px, py := scene.NDCToPixel(ndc, 400, 400)
	tip := p.Hover(px+200, py+100, surface, cam)
	if tip.Text != "Jupiter" {
		t.Errorf("tooltip = %+v, want Jupiter", tip)
	}
}
