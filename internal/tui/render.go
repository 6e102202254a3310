package tui

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/san-kum/orrery/internal/vmath"
)

const (
	// clip bounds, in NDC, past which line segments are skipped
	ndcLimit   = 1.5
	tooltipPen = "#ffffff"
)

// Renderer paints the scene onto a braille canvas. It is the TUI's render
// surface: one canvas sub-pixel per surface pixel.
type Renderer struct {
	Canvas *viz.Canvas
	Theme  viz.Theme

	// StarStride draws every n-th star.
	StarStride int

	// Tooltip, when set and visible, is drawn over the finished frame.
	Tooltip *controls.Tooltip
}

func NewRenderer(theme viz.Theme) *Renderer {
	return &Renderer{Canvas: viz.NewCanvas(0, 0), Theme: theme, StarStride: 1}
}

// SetSize implements viewport.Surface; w and h are in sub-pixels.
func (r *Renderer) SetSize(w, h int) {
	r.Canvas = viz.NewCanvas(w/2, h/4)
}

type projected struct {
	node   *scene.Node
	x, y   float64
	depth  float64
	radius float64
}

// Render implements anim.Renderer.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) {
	c := r.Canvas
	c.Clear()
	w, h := c.SubSize()
	if w == 0 || h == 0 {
		return
	}
	toPixel := func(p vmath.Vec3) (x, y, depth float64, ok bool) {
		ndc, depth, ok := cam.Project(p)
		if !ok || math.Abs(ndc.X) > ndcLimit || math.Abs(ndc.Y) > ndcLimit {
			return 0, 0, depth, false
		}
		x, y = scene.NDCToPixel(ndc, w, h)
		return x, y, depth, true
	}

	if sc.Stars != nil {
		c.SetPen(string(r.Theme.Star))
		stride := max(r.StarStride, 1)
		for i := 0; i < len(sc.Stars.Points); i += stride {
			if x, y, _, ok := toPixel(sc.Stars.Points[i]); ok {
				c.Set(int(x), int(y))
			}
		}
	}

	c.SetPen(string(r.Theme.Orbit))
	for _, o := range sc.Orbits {
		r.polyline(o.Points, toPixel)
	}

	bodies := make([]projected, 0, len(sc.Bodies))
	for _, n := range sc.Bodies {
		ndc, depth, ok := cam.Project(n.WorldPosition())
		if !ok {
			continue
		}
		x, y := scene.NDCToPixel(ndc, w, h)
		rad := cam.ProjectedRadius(n.Radius, depth) * float64(h) / 2
		bodies = append(bodies, projected{node: n, x: x, y: y, depth: depth, radius: rad})
	}
	// far to near
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].depth > bodies[j].depth })

	for _, b := range bodies {
		rings := ringsOf(b.node)
		for _, ring := range rings {
			r.ring(ring, b, toPixel, true)
		}
		c.SetPen(b.node.Material.Color.Hex())
		c.FillCircle(int(b.x), int(b.y), int(math.Round(b.radius)))
		for _, ring := range rings {
			r.ring(ring, b, toPixel, false)
		}
	}
	if tip := r.Tooltip; tip != nil && tip.Visible {
		c.SetPen(tooltipPen)
		c.Text(int(tip.X)/2, int(tip.Y)/4, " "+tip.Text+" ")
	}
}

func (r *Renderer) polyline(pts []vmath.Vec3, toPixel func(vmath.Vec3) (float64, float64, float64, bool)) {
	var px, py float64
	prev := false
	for _, p := range pts {
		x, y, _, ok := toPixel(p)
		if ok && prev {
			r.Canvas.DrawLine(int(px), int(py), int(x), int(y))
		}
		px, py, prev = x, y, ok
	}
}

// ring draws the half of the ring behind (back) or in front of the planet.
func (r *Renderer) ring(ring *scene.Node, body projected, toPixel func(vmath.Vec3) (float64, float64, float64, bool), back bool) {
	center := ring.WorldPosition()
	segs := max(ring.Segments, 8)
	r.Canvas.SetPen(ring.Material.Color.Hex())
	for _, radius := range []float64{ring.InnerRadius, ring.OuterRadius} {
		var px, py float64
		prev := false
		for i := 0; i <= segs; i++ {
			p := center.Add(solar.OrbitPoint(float64(i)/float64(segs)*2*math.Pi, radius))
			x, y, depth, ok := toPixel(p)
			ok = ok && (depth > body.depth) == back
			if ok && prev {
				r.Canvas.DrawLine(int(px), int(py), int(x), int(y))
			}
			px, py, prev = x, y, ok
		}
	}
}

func ringsOf(n *scene.Node) []*scene.Node {
	var out []*scene.Node
	for _, c := range n.Children {
		if c.Kind == scene.KindRing {
			out = append(out, c)
		}
	}
	return out
}
