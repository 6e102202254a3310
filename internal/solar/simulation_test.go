package solar_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/vmath"
)

type fakeMesh struct {
	pos      vmath.Vec3
	rotation float64
}

func (m *fakeMesh) SetPosition(p vmath.Vec3) { m.pos = p }
func (m *fakeMesh) Position() vmath.Vec3     { return m.pos }
func (m *fakeMesh) RotateY(d float64)        { m.rotation += d }

func newMeshes(n int) []solar.Mesh {
	out := make([]solar.Mesh, n)
	for i := range out {
		out[i] = &fakeMesh{}
	}
	return out
}

func newSim() *solar.Simulation {
	cfgs := solar.DefaultBodies()
	sim, err := solar.NewSimulation(cfgs, newMeshes(len(cfgs)), rand.New(rand.NewSource(7)))
	Expect(err).NotTo(HaveOccurred())
	return sim
}

var _ = Describe("Simulation", func() {
	var sim *solar.Simulation

	BeforeEach(func() {
		sim = newSim()
	})

	Describe("construction", func() {
		It("keeps config order with the sun first", func() {
			cfgs := solar.DefaultBodies()
			Expect(sim.Bodies).To(HaveLen(len(cfgs)))
			for i, b := range sim.Bodies {
				Expect(b.Name).To(Equal(cfgs[i].Name))
			}
			Expect(sim.Bodies[solar.SunIndex].Name).To(Equal("Sun"))
		})

		It("starts planets in [0, 2π) and the sun at 0", func() {
			Expect(sim.Bodies[0].Angle).To(BeZero())
			for _, b := range sim.Planets() {
				Expect(b.Angle).To(BeNumerically(">=", 0))
				Expect(b.Angle).To(BeNumerically("<", 2*math.Pi))
			}
		})

		It("places each mesh on its orbit", func() {
			for _, b := range sim.Bodies {
				Expect(b.Mesh.Position()).To(Equal(b.OrbitPosition()))
			}
			Expect(sim.Bodies[0].Mesh.Position()).To(Equal(vmath.Vec3{}))
		})

		It("rejects an empty table", func() {
			_, err := solar.NewSimulation(nil, nil, rand.New(rand.NewSource(1)))
			Expect(err).To(MatchError(solar.ErrNoBodies))
		})

		It("rejects a moving body at index 0", func() {
			cfgs := solar.DefaultBodies()[1:]
			_, err := solar.NewSimulation(cfgs, newMeshes(len(cfgs)), rand.New(rand.NewSource(1)))
			Expect(err).To(MatchError(solar.ErrSunDistance))
		})

		It("rejects a mesh count mismatch", func() {
			cfgs := solar.DefaultBodies()
			_, err := solar.NewSimulation(cfgs, newMeshes(3), rand.New(rand.NewSource(1)))
			Expect(err).To(MatchError(solar.ErrMeshCount))
		})
	})

	Describe("Advance", func() {
		It("moves Earth by speed×dt and re-positions its mesh", func() {
			i, err := sim.Index("earth")
			Expect(err).NotTo(HaveOccurred())
			earth := sim.Bodies[i]
			theta0 := earth.Angle

			sim.Advance(1.0)

			Expect(earth.Angle).To(BeNumerically("~", theta0+0.01, 1e-12))
			pos := earth.Mesh.Position()
			Expect(pos.X).To(BeNumerically("~", math.Cos(theta0+0.01)*12, 1e-9))
			Expect(pos.Y).To(BeZero())
			Expect(pos.Z).To(BeNumerically("~", math.Sin(theta0+0.01)*12, 1e-9))
		})

		It("spins each planet by rotationSpeed×dt", func() {
			sim.Advance(2.0)
			for _, b := range sim.Planets() {
				Expect(b.Mesh.(*fakeMesh).rotation).To(BeNumerically("~", b.RotationSpeed*2, 1e-12))
			}
		})

		It("never moves the sun", func() {
			sun := sim.Bodies[0]
			for _, dt := range []float64{0.016, 1, 1000} {
				sim.Advance(dt)
			}
			sim.TogglePause()
			sim.Advance(5)
			Expect(sun.Angle).To(BeZero())
			Expect(sun.Mesh.Position()).To(Equal(vmath.Vec3{}))
			Expect(sun.Mesh.(*fakeMesh).rotation).To(BeZero())
		})

		It("freezes while paused and resumes from the same angle", func() {
			sim.Advance(0.5)
			angles := make([]float64, len(sim.Bodies))
			positions := make([]vmath.Vec3, len(sim.Bodies))
			for i, b := range sim.Bodies {
				angles[i] = b.Angle
				positions[i] = b.Mesh.Position()
			}

			Expect(sim.TogglePause()).To(BeTrue())
			sim.Advance(10)
			for i, b := range sim.Bodies {
				Expect(b.Angle).To(Equal(angles[i]))
				Expect(b.Mesh.Position()).To(Equal(positions[i]))
			}

			Expect(sim.TogglePause()).To(BeFalse())
			sim.Advance(1)
			for i, b := range sim.Planets() {
				Expect(b.Angle).To(BeNumerically("~", angles[i+1]+b.Speed, 1e-12))
			}
		})

		It("honours an explicit pause flag", func() {
			sim.SetPaused(true)
			before := sim.Bodies[3].Angle
			sim.Advance(5)
			Expect(sim.Bodies[3].Angle).To(Equal(before))

			sim.SetPaused(false)
			sim.Advance(1)
			Expect(sim.Bodies[3].Angle).NotTo(Equal(before))
		})
	})

	Describe("speed control", func() {
		It("changes only the targeted body", func() {
			before := make([]float64, len(sim.Bodies))
			for i, b := range sim.Bodies {
				before[i] = b.Speed
			}
			Expect(sim.SetSpeed(4, 0.05)).To(Succeed())
			for i, b := range sim.Bodies {
				if i == 4 {
					Expect(b.Speed).To(Equal(0.05))
					continue
				}
				Expect(b.Speed).To(Equal(before[i]))
			}
		})

		It("refuses the sun and out-of-range indices", func() {
			Expect(sim.SetSpeed(0, 0.1)).To(MatchError(solar.ErrSunIndex))
			Expect(sim.SetSpeed(99, 0.1)).To(MatchError(solar.ErrBodyIndex))
			Expect(sim.SetSpeed(-1, 0.1)).To(MatchError(solar.ErrBodyIndex))
		})

		It("restores configured speeds positionally on reset", func() {
			for i := 1; i < len(sim.Bodies); i++ {
				Expect(sim.SetSpeed(i, 0.1)).To(Succeed())
			}
			sim.ResetSpeeds()
			for i, cfg := range solar.DefaultBodies() {
				Expect(sim.Bodies[i].Speed).To(Equal(cfg.Speed))
			}
		})
	})

	Describe("lookup", func() {
		It("finds bodies case-insensitively", func() {
			i, err := sim.Index("SATURN")
			Expect(err).NotTo(HaveOccurred())
			Expect(sim.Bodies[i].HasRing).To(BeTrue())
		})

		It("reports unknown names", func() {
			_, err := sim.Index("pluto")
			Expect(err).To(MatchError(solar.ErrUnknownBody))
		})
	})
})
