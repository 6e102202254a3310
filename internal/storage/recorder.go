package storage

import (
	"strings"

	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/vmath"
)

// Frame is one sampled registry snapshot.
type Frame struct {
	Time      float64      `json:"time"`
	Angles    []float64    `json:"angles"`
	Positions []vmath.Vec3 `json:"positions"`
}

type Recording struct {
	Bodies []string `json:"bodies"`
	Frames []Frame  `json:"frames"`
}

// Series returns the top-down track of body i.
func (r *Recording) Series(i int) (xs, zs []float64) {
	xs = make([]float64, 0, len(r.Frames))
	zs = make([]float64, 0, len(r.Frames))
	for _, f := range r.Frames {
		if i < 0 || i >= len(f.Positions) {
			continue
		}
		xs = append(xs, f.Positions[i].X)
		zs = append(zs, f.Positions[i].Z)
	}
	return xs, zs
}

// BodyIndex finds a body column by name, ignoring case, or -1.
func (r *Recording) BodyIndex(name string) int {
	for i, n := range r.Bodies {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// Recorder is an anim.Observer that samples every Every-th frame.
type Recorder struct {
	Every int

	rec   Recording
	count int
}

func NewRecorder(every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{Every: every}
}

func (r *Recorder) OnFrame(sim *solar.Simulation, elapsed float64) {
	r.count++
	if (r.count-1)%r.Every != 0 {
		return
	}
	if r.rec.Bodies == nil {
		r.rec.Bodies = make([]string, len(sim.Bodies))
		for i, b := range sim.Bodies {
			r.rec.Bodies[i] = b.Name
		}
	}
	f := Frame{
		Time:      elapsed,
		Angles:    make([]float64, len(sim.Bodies)),
		Positions: make([]vmath.Vec3, len(sim.Bodies)),
	}
	for i, b := range sim.Bodies {
		f.Angles[i] = b.Angle
		f.Positions[i] = b.OrbitPosition()
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

func (r *Recorder) Recording() *Recording { return &r.rec }
