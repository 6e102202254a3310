package solar

import (
	"math"

	"github.com/san-kum/orrery/internal/vmath"
)

// DefaultBodies returns the sun and the eight planets, sun first.
func DefaultBodies() []BodyConfig {
	return []BodyConfig{
		{Name: "Sun", Radius: 5, Distance: 0, Color: 0xffff00, Speed: 0, RotationSpeed: 0.005},
		{Name: "Mercury", Radius: 0.4, Distance: 7, Color: 0xa9a9a9, Speed: 0.04, RotationSpeed: 0.004},
		{Name: "Venus", Radius: 0.6, Distance: 9, Color: 0xffa500, Speed: 0.015, RotationSpeed: 0.002},
		{Name: "Earth", Radius: 0.6, Distance: 12, Color: 0x1a66ff, Speed: 0.01, RotationSpeed: 0.02},
		{Name: "Mars", Radius: 0.5, Distance: 15, Color: 0xff3300, Speed: 0.008, RotationSpeed: 0.018},
		{Name: "Jupiter", Radius: 1.3, Distance: 20, Color: 0xffcc99, Speed: 0.002, RotationSpeed: 0.04},
		{Name: "Saturn", Radius: 1.1, Distance: 25, Color: 0xffdb58, Speed: 0.0009, RotationSpeed: 0.038, HasRing: true},
		{Name: "Uranus", Radius: 0.9, Distance: 30, Color: 0x66ccff, Speed: 0.0004, RotationSpeed: 0.03},
		{Name: "Neptune", Radius: 0.8, Distance: 35, Color: 0x3366ff, Speed: 0.0001, RotationSpeed: 0.032},
	}
}

// OrbitPoint maps an orbital angle to the horizontal plane.
func OrbitPoint(angle, distance float64) vmath.Vec3 {
	return vmath.Vec3{X: math.Cos(angle) * distance, Y: 0, Z: math.Sin(angle) * distance}
}
