package controls

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/solar"
)

// Element IDs the frontends address controls by.
const (
	PauseResumeID = "pause-resume"
	ResetSpeedsID = "reset-speeds"
	ToggleDarkID  = "toggle-dark"

	SpeedMin  = 0.0
	SpeedMax  = 0.1
	SpeedStep = 0.001
)

// SliderDescriptor is the declarative description of one speed slider.
type SliderDescriptor struct {
	ID        string
	Label     string
	BodyIndex int
	Min, Max  float64
	Step      float64
	Value     float64
}

// SliderID derives the element ID from a body name.
func SliderID(name string) string { return "speed-" + strings.ToLower(name) }

// Descriptors maps every planet name to its slider. The sun has none.
func Descriptors(sim *solar.Simulation) map[string]SliderDescriptor {
	out := make(map[string]SliderDescriptor, len(sim.Bodies))
	for i, b := range sim.Bodies {
		if i == solar.SunIndex {
			continue
		}
		out[b.Name] = SliderDescriptor{
			ID:        SliderID(b.Name),
			Label:     b.Name,
			BodyIndex: i,
			Min:       SpeedMin,
			Max:       SpeedMax,
			Step:      SpeedStep,
			Value:     b.Speed,
		}
	}
	return out
}

// Slider is a range input bound to one body.
type Slider struct {
	SliderDescriptor
	Readout string
}

func newSlider(d SliderDescriptor) *Slider {
	s := &Slider{SliderDescriptor: d}
	s.Readout = FormatSpeed(d.Value)
	return s
}

// set stores v the way a range input would: clamped to [Min, Max] and
// snapped to the nearest step.
func (s *Slider) set(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Min
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		v = snap(s.Min+math.Round((v-s.Min)/s.Step)*s.Step, s.Step)
	}
	s.Value = v
	s.Readout = FormatSpeed(v)
	return v
}

// sync shows v without the input constraints, the way assigning a slider's
// value from code behaves for in-range values.
func (s *Slider) sync(v float64) {
	s.Value = v
	s.Readout = FormatSpeed(v)
}

// Fraction is the thumb position in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// FormatSpeed renders a speed readout with three decimals.
func FormatSpeed(v float64) string { return fmt.Sprintf("%.3f", v) }

// snap trims binary noise so that 37 steps of 0.001 read back as 0.037.
func snap(v, step float64) float64 {
	if step >= 1 {
		return v
	}
	scale := math.Pow(10, math.Ceil(-math.Log10(step)))
	return math.Round(v*scale) / scale
}
