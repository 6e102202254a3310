package scene

import (
	"sort"

	"github.com/san-kum/orrery/internal/vmath"
)

// Intersection is one ray hit.
type Intersection struct {
	Distance float64
	Point    vmath.Vec3
	Object   *Node
}

// Raycaster tests a pointer ray against sphere nodes.
type Raycaster struct {
	Ray vmath.Ray
}

// SetFromCamera aims the ray from the camera through an NDC point.
func (r *Raycaster) SetFromCamera(ndc vmath.Vec2, cam *Camera) {
	r.Ray = cam.RayFromNDC(ndc)
}

// IntersectObjects returns every sphere the ray hits, nearest first. Nodes of
// any other kind are ignored.
func (r *Raycaster) IntersectObjects(nodes []*Node) []Intersection {
	var hits []Intersection
	for _, n := range nodes {
		if n.Kind != KindSphere {
			continue
		}
		d, ok := r.Ray.IntersectSphere(n.WorldPosition(), n.Radius)
		if !ok {
			continue
		}
		hits = append(hits, Intersection{Distance: d, Point: r.Ray.At(d), Object: n})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
