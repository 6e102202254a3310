package scene

import (
	"math"

	"github.com/san-kum/orrery/internal/vmath"
)

const (
	DefaultDamping = 0.05
	minPolar       = 1e-6
)

// OrbitControls moves a camera around its target. Input queues deltas; each
// Update applies the damping fraction of what is pending and decays the rest,
// so motion eases out over the following frames.
type OrbitControls struct {
	Camera  *Camera
	Damping float64

	MinDistance, MaxDistance float64

	theta, phi, radius float64
	dTheta, dPhi       float64
	scale              float64
	pan                vmath.Vec3
}

func NewOrbitControls(cam *Camera, damping float64) *OrbitControls {
	if damping <= 0 || damping > 1 {
		damping = DefaultDamping
	}
	o := &OrbitControls{Camera: cam, Damping: damping, MinDistance: 1, MaxDistance: 500, scale: 1}
	o.sync()
	return o
}

// sync reads the spherical offset from the camera's current placement.
func (o *OrbitControls) sync() {
	off := o.Camera.Position.Sub(o.Camera.Target)
	o.radius = off.Length()
	if o.radius == 0 {
		o.phi = math.Pi / 2
		return
	}
	o.theta = math.Atan2(off.X, off.Z)
	o.phi = math.Acos(math.Max(-1, math.Min(1, off.Y/o.radius)))
}

// Rotate queues an orbit by the given azimuth and polar angles in radians.
func (o *OrbitControls) Rotate(dTheta, dPhi float64) {
	o.dTheta += dTheta
	o.dPhi += dPhi
}

// Dolly scales the camera distance; factors below 1 move closer.
func (o *OrbitControls) Dolly(factor float64) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Pan queues a target shift in fractions of the view height.
func (o *OrbitControls) Pan(dx, dy float64) {
	_, right, up := o.Camera.basis()
	h := 2 * o.radius * o.Camera.tanHalf
	o.pan = o.pan.Add(right.Scale(-dx * h)).Add(up.Scale(dy * h))
}

// Update advances the damped motion by one frame and re-aims the camera.
func (o *OrbitControls) Update() {
	o.theta += o.dTheta * o.Damping
	o.phi += o.dPhi * o.Damping
	o.phi = math.Max(minPolar, math.Min(math.Pi-minPolar, o.phi))

	o.radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, o.radius*o.scale))
	o.scale = 1

	o.Camera.Target = o.Camera.Target.Lerp(o.Camera.Target.Add(o.pan), o.Damping)

	sinPhi := math.Sin(o.phi)
	off := vmath.Vec3{
		X: o.radius * sinPhi * math.Sin(o.theta),
		Y: o.radius * math.Cos(o.phi),
		Z: o.radius * sinPhi * math.Cos(o.theta),
	}
	o.Camera.Position = o.Camera.Target.Add(off)

	decay := 1 - o.Damping
	o.dTheta *= decay
	o.dPhi *= decay
	o.pan = o.pan.Scale(decay)
}

// Distance is the current camera-to-target distance.
func (o *OrbitControls) Distance() float64 { return o.radius }
