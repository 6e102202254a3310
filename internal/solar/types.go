package solar

import (
	"fmt"

	"github.com/san-kum/orrery/internal/vmath"
)

// SunIndex is the registry slot reserved for the sun.
const SunIndex = 0

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

// BodyConfig is the immutable description of one body.
type BodyConfig struct {
	Name          string
	Radius        float64
	Distance      float64
	Color         Color
	Speed         float64
	RotationSpeed float64
	HasRing       bool
}

// Mesh is the visual a body moves each frame.
type Mesh interface {
	SetPosition(p vmath.Vec3)
	Position() vmath.Vec3
	RotateY(delta float64)
}

// Body is the mutable orbital state of one registry entry.
type Body struct {
	Name          string
	Distance      float64
	Angle         float64
	Speed         float64
	RotationSpeed float64
	HasRing       bool
	Mesh          Mesh
}

// OrbitPosition is the point on the orbit circle for the current angle.
func (b *Body) OrbitPosition() vmath.Vec3 {
	return OrbitPoint(b.Angle, b.Distance)
}

func (b *Body) place() {
	if b.Mesh != nil {
		b.Mesh.SetPosition(b.OrbitPosition())
	}
}
