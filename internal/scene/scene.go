package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/vmath"
)

const (
	DefaultStarCount      = 5000
	DefaultStarSpread     = 2000.0
	DefaultOrbitSegments  = 64
	DefaultSphereSegments = 32
	DefaultRingSegments   = 32

	// ring radii as multiples of the planet radius
	RingInnerScale = 1.5
	RingOuterScale = 2.0
)

const (
	ambientColor solar.Color = 0x404040
	sunlight     solar.Color = 0xffffff
	sunEmissive  solar.Color = 0xffff00
	RingColor    solar.Color = 0xddddbb
	OrbitColor   solar.Color = 0x555555
	starColor    solar.Color = 0xffffff
)

// Options sizes the generated geometry. Zero fields take the defaults.
type Options struct {
	StarCount      int
	StarSpread     float64
	OrbitSegments  int
	SphereSegments int
	RingSegments   int
}

func (o Options) withDefaults() Options {
	if o.StarCount <= 0 {
		o.StarCount = DefaultStarCount
	}
	if o.StarSpread <= 0 {
		o.StarSpread = DefaultStarSpread
	}
	if o.OrbitSegments <= 0 {
		o.OrbitSegments = DefaultOrbitSegments
	}
	if o.SphereSegments <= 0 {
		o.SphereSegments = DefaultSphereSegments
	}
	if o.RingSegments <= 0 {
		o.RingSegments = DefaultRingSegments
	}
	return o
}

// Scene is the shared root every constructed visual is added to, plus typed
// handles into it.
type Scene struct {
	Root []*Node

	Ambient     *Node
	Directional *Node
	Stars       *Node

	// Bodies holds one sphere per body config, in config order.
	Bodies []*Node
	// Orbits holds one guide per non-sun body, in config order.
	Orbits []*Node
}

func (s *Scene) Add(n *Node) { s.Root = append(s.Root, n) }

// Walk visits every node in the graph.
func (s *Scene) Walk(fn func(*Node)) {
	for _, n := range s.Root {
		n.Walk(fn)
	}
}

// HoverTargets returns the planet spheres; the sun is never a target.
func (s *Scene) HoverTargets() []*Node {
	if len(s.Bodies) <= 1 {
		return nil
	}
	return s.Bodies[solar.SunIndex+1:]
}

// Build constructs the static scene for cfgs and the registry bound to it.
func Build(cfgs []solar.BodyConfig, opts Options, rng *rand.Rand) (*Scene, *solar.Simulation, error) {
	opts = opts.withDefaults()
	sc := &Scene{}

	sc.Ambient = &Node{Name: "ambient", Kind: KindAmbientLight, Material: Material{Color: ambientColor}, Intensity: 1}
	sc.Add(sc.Ambient)
	sc.Directional = &Node{
		Name:      "sunlight",
		Kind:      KindDirectionalLight,
		Material:  Material{Color: sunlight},
		Intensity: 1,
		Pos:       vmath.Vec3{X: 5, Y: 3, Z: 5},
	}
	sc.Add(sc.Directional)

	sc.Stars = Starfield(opts.StarCount, opts.StarSpread, rng)
	sc.Add(sc.Stars)

	meshes := make([]solar.Mesh, 0, len(cfgs))
	for i, cfg := range cfgs {
		body := Sphere(cfg, opts.SphereSegments)
		if i == solar.SunIndex {
			body.Material.Emissive = sunEmissive
			body.Material.EmissiveIntensity = 0.5
		}
		if cfg.HasRing {
			body.Add(Ring(cfg, opts.RingSegments))
		}
		sc.Add(body)
		sc.Bodies = append(sc.Bodies, body)
		meshes = append(meshes, body)

		if i != solar.SunIndex {
			orbit := OrbitPath(cfg, opts.OrbitSegments)
			sc.Add(orbit)
			sc.Orbits = append(sc.Orbits, orbit)
		}
	}

	sim, err := solar.NewSimulation(cfgs, meshes, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("build registry: %w", err)
	}
	return sc, sim, nil
}

// Sphere is the mesh for one body.
func Sphere(cfg solar.BodyConfig, segments int) *Node {
	return &Node{
		Name:     cfg.Name,
		Kind:     KindSphere,
		Radius:   cfg.Radius,
		Segments: segments,
		Material: Material{Color: cfg.Color, Shininess: 10},
	}
}

// Ring is sized from the planet radius and turned flat into the orbital plane.
func Ring(cfg solar.BodyConfig, segments int) *Node {
	return &Node{
		Name:        cfg.Name + " ring",
		Kind:        KindRing,
		InnerRadius: cfg.Radius * RingInnerScale,
		OuterRadius: cfg.Radius * RingOuterScale,
		Segments:    segments,
		RotationX:   math.Pi / 2,
		Material:    Material{Color: RingColor, DoubleSided: true},
	}
}

// OrbitPath is a closed circle of segments+1 points at the orbital distance.
func OrbitPath(cfg solar.BodyConfig, segments int) *Node {
	pts := make([]vmath.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts = append(pts, solar.OrbitPoint(a, cfg.Distance))
	}
	return &Node{
		Name:     cfg.Name + " orbit",
		Kind:     KindLineLoop,
		Segments: segments,
		Points:   pts,
		Material: Material{Color: OrbitColor},
	}
}

// Starfield scatters count points uniformly in a cube of side spread centred
// on the origin.
func Starfield(count int, spread float64, rng *rand.Rand) *Node {
	pts := make([]vmath.Vec3, count)
	for i := range pts {
		pts[i] = vmath.Vec3{
			X: (rng.Float64() - 0.5) * spread,
			Y: (rng.Float64() - 0.5) * spread,
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return &Node{
		Name:     "stars",
		Kind:     KindPoints,
		Points:   pts,
		Material: Material{Color: starColor, PointSize: 0.1, Transparent: true},
	}
}
