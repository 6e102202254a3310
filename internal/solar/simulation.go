package solar

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Simulation is the body registry plus the global pause flag.
type Simulation struct {
	Bodies []*Body
	Paused bool

	// configs mirrors Bodies index for index; reset reads speeds from here.
	configs []BodyConfig
}

// NewSimulation creates one body per config, in config order, each bound to
// the mesh at the same index. Planets start at a uniformly random angle in
// [0, 2π); the sun starts and stays at angle 0.
func NewSimulation(cfgs []BodyConfig, meshes []Mesh, rng *rand.Rand) (*Simulation, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoBodies
	}
	if cfgs[SunIndex].Distance != 0 || cfgs[SunIndex].Speed != 0 {
		return nil, fmt.Errorf("%w: %s", ErrSunDistance, cfgs[SunIndex].Name)
	}
	if len(meshes) != len(cfgs) {
		return nil, fmt.Errorf("%w: %d meshes for %d bodies", ErrMeshCount, len(meshes), len(cfgs))
	}

	s := &Simulation{
		Bodies:  make([]*Body, len(cfgs)),
		configs: make([]BodyConfig, len(cfgs)),
	}
	copy(s.configs, cfgs)

	for i, cfg := range cfgs {
		b := &Body{
			Name:          cfg.Name,
			Distance:      cfg.Distance,
			Speed:         cfg.Speed,
			RotationSpeed: cfg.RotationSpeed,
			HasRing:       cfg.HasRing,
			Mesh:          meshes[i],
		}
		if i != SunIndex {
			b.Angle = rng.Float64() * 2 * math.Pi
		}
		b.place()
		s.Bodies[i] = b
	}
	return s, nil
}

// Advance moves every planet along its orbit by speed×dt and spins it by
// rotationSpeed×dt. It does nothing while paused.
func (s *Simulation) Advance(dt float64) {
	if s.Paused {
		return
	}
	for i, b := range s.Bodies {
		if i == SunIndex {
			continue
		}
		b.Angle += b.Speed * dt
		b.place()
		if b.Mesh != nil {
			b.Mesh.RotateY(b.RotationSpeed * dt)
		}
	}
}

// SetSpeed changes the orbital speed of the planet at index i.
func (s *Simulation) SetSpeed(i int, v float64) error {
	if err := s.checkPlanet(i); err != nil {
		return err
	}
	s.Bodies[i].Speed = v
	return nil
}

// Speed returns the current orbital speed of body i.
func (s *Simulation) Speed(i int) (float64, error) {
	if i < 0 || i >= len(s.Bodies) {
		return 0, fmt.Errorf("%w: %d", ErrBodyIndex, i)
	}
	return s.Bodies[i].Speed, nil
}

// ResetSpeeds restores every planet to its configured speed. The lookup is
// positional: body i takes the speed of config i.
func (s *Simulation) ResetSpeeds() {
	for i, b := range s.Bodies {
		if i == SunIndex {
			continue
		}
		b.Speed = s.configs[i].Speed
	}
}

func (s *Simulation) SetPaused(p bool) { s.Paused = p }

// TogglePause flips the pause flag and returns the new value.
func (s *Simulation) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// Config returns the startup config of body i.
func (s *Simulation) Config(i int) (BodyConfig, error) {
	if i < 0 || i >= len(s.configs) {
		return BodyConfig{}, fmt.Errorf("%w: %d", ErrBodyIndex, i)
	}
	return s.configs[i], nil
}

// Configs returns a copy of the startup body table.
func (s *Simulation) Configs() []BodyConfig {
	out := make([]BodyConfig, len(s.configs))
	copy(out, s.configs)
	return out
}

// Index finds a body by case-insensitive name.
func (s *Simulation) Index(name string) (int, error) {
	for i, b := range s.Bodies {
		if strings.EqualFold(b.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// Planets returns every body except the sun, in registry order.
func (s *Simulation) Planets() []*Body {
	if len(s.Bodies) <= 1 {
		return nil
	}
	return s.Bodies[SunIndex+1:]
}

func (s *Simulation) checkPlanet(i int) error {
	if i == SunIndex {
		return ErrSunIndex
	}
	if i < 0 || i >= len(s.Bodies) {
		return fmt.Errorf("%w: %d", ErrBodyIndex, i)
	}
	return nil
}
