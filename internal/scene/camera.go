package scene

import (
	"math"

	"github.com/san-kum/orrery/internal/vmath"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position, Target, Up vmath.Vec3
	FOV                  float64 // vertical, degrees
	Aspect               float64
	Near, Far            float64

	tanHalf float64
}

// NewCamera returns a camera at (0, 0, distance) looking at the origin.
func NewCamera(fov, aspect, distance float64) *Camera {
	c := &Camera{
		Position: vmath.Vec3{Z: distance},
		Up:       vmath.Vec3{Y: 1},
		FOV:      fov,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection must be called after FOV or Aspect change.
func (c *Camera) UpdateProjection() {
	c.tanHalf = math.Tan(c.FOV * math.Pi / 360)
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera) basis() (fwd, right, up vmath.Vec3) {
	fwd = c.Target.Sub(c.Position).Normalize()
	right = fwd.Cross(c.Up).Normalize()
	if right == (vmath.Vec3{}) {
		right = vmath.Vec3{X: 1}
	}
	up = right.Cross(fwd)
	return fwd, right, up
}

// Project maps a world point to normalized device coordinates. depth is the
// distance along the view axis; ok is false outside the near/far range.
func (c *Camera) Project(p vmath.Vec3) (ndc vmath.Vec2, depth float64, ok bool) {
	fwd, right, up := c.basis()
	v := p.Sub(c.Position)
	depth = v.Dot(fwd)
	if depth < c.Near || depth > c.Far {
		return vmath.Vec2{}, depth, false
	}
	ndc.X = v.Dot(right) / (depth * c.tanHalf * c.Aspect)
	ndc.Y = v.Dot(up) / (depth * c.tanHalf)
	return ndc, depth, true
}

// ProjectedRadius is the on-screen radius, in NDC height units, of a sphere
// of the given radius at the given depth.
func (c *Camera) ProjectedRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalf)
}

// RayFromNDC casts a ray from the camera through the given NDC point.
func (c *Camera) RayFromNDC(ndc vmath.Vec2) vmath.Ray {
	fwd, right, up := c.basis()
	dir := fwd.
		Add(right.Scale(ndc.X * c.tanHalf * c.Aspect)).
		Add(up.Scale(ndc.Y * c.tanHalf))
	return vmath.Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// NDCToPixel converts NDC to pixel coordinates on a w×h surface, y down.
func NDCToPixel(ndc vmath.Vec2, w, h int) (float64, float64) {
	return (ndc.X + 1) / 2 * float64(w), (1 - ndc.Y) / 2 * float64(h)
}

// PixelToNDC is the inverse of NDCToPixel for a surface at (x, y) of size w×h.
func PixelToNDC(px, py, x, y, w, h float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (px-x)/w*2 - 1,
		Y: -((py-y)/h)*2 + 1,
	}
}
