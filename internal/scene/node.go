package scene

import (
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/vmath"
)

type Kind int

const (
	KindSphere Kind = iota
	KindRing
	KindLineLoop
	KindPoints
	KindAmbientLight
	KindDirectionalLight
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindRing:
		return "ring"
	case KindLineLoop:
		return "line"
	case KindPoints:
		return "points"
	case KindAmbientLight:
		return "ambient"
	case KindDirectionalLight:
		return "directional"
	}
	return "unknown"
}

// Material describes how a node is shaded.
type Material struct {
	Color             solar.Color
	Emissive          solar.Color
	EmissiveIntensity float64
	Shininess         float64
	DoubleSided       bool
	PointSize         float64
	Transparent       bool
}

// Node is one visual in the scene graph. Geometry fields are read according
// to Kind; the rest stay zero.
type Node struct {
	Name     string
	Kind     Kind
	Material Material

	// Local transform, relative to Parent.
	Pos       vmath.Vec3
	RotationX float64
	RotationY float64

	// Sphere radius, ring inner/outer radius.
	Radius      float64
	InnerRadius float64
	OuterRadius float64
	Segments    int

	// Line and point-cloud vertices.
	Points []vmath.Vec3

	// Light intensity.
	Intensity float64

	Parent   *Node
	Children []*Node
}

// Add attaches child so it follows n.
func (n *Node) Add(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// SetPosition implements solar.Mesh.
func (n *Node) SetPosition(p vmath.Vec3) { n.Pos = p }

// Position implements solar.Mesh.
func (n *Node) Position() vmath.Vec3 { return n.Pos }

// RotateY implements solar.Mesh.
func (n *Node) RotateY(delta float64) { n.RotationY += delta }

// WorldPosition composes the parent chain. Rotations only orient a node's own
// geometry, children sit at an offset of zero in every graph this package
// builds.
func (n *Node) WorldPosition() vmath.Vec3 {
	p := n.Pos
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		p = p.Add(parent.Pos)
	}
	return p
}

// Walk visits n and every descendant depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
