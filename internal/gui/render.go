package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/vmath"
)

// ringBands is how many circles fill the ring annulus.
const ringBands = 6

// surface is the off-screen render target the 3D view is drawn into.
type surface struct {
	tex    rl.RenderTexture2D
	loaded bool
	w, h   int
}

// SetSize implements viewport.Surface.
func (s *surface) SetSize(w, h int) {
	if s.loaded && s.w == w && s.h == h {
		return
	}
	if s.loaded {
		rl.UnloadRenderTexture(s.tex)
		s.loaded = false
	}
	s.w, s.h = w, h
	if w > 0 && h > 0 {
		s.tex = rl.LoadRenderTexture(int32(w), int32(h))
		s.loaded = true
	}
}

func (s *surface) unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.tex)
		s.loaded = false
	}
}

// renderer implements anim.Renderer by drawing the scene graph into the
// surface with raylib.
type renderer struct {
	surface    *surface
	background rl.Color
}

func vec3(v vmath.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func color(c solar.Color, alpha uint8) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, alpha)
}

func rlCamera(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.Target),
		Up:         vec3(cam.Up),
		Fovy:       float32(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}

func (r *renderer) Render(sc *scene.Scene, cam *scene.Camera) {
	if !r.surface.loaded {
		return
	}
	rl.BeginTextureMode(r.surface.tex)
	rl.ClearBackground(r.background)
	rl.BeginMode3D(rlCamera(cam))

	sc.Walk(func(n *scene.Node) {
		switch n.Kind {
		case scene.KindPoints:
			c := color(n.Material.Color, 200)
			for _, p := range n.Points {
				rl.DrawPoint3D(vec3(p), c)
			}
		case scene.KindLineLoop:
			c := color(n.Material.Color, 255)
			for i := 1; i < len(n.Points); i++ {
				rl.DrawLine3D(vec3(n.Points[i-1]), vec3(n.Points[i]), c)
			}
		case scene.KindSphere:
			c := color(n.Material.Color, 255)
			if n.Material.EmissiveIntensity > 0 {
				c = rl.ColorBrightness(c, float32(n.Material.EmissiveIntensity)*0.3)
			}
			rl.DrawSphereEx(vec3(n.WorldPosition()), float32(n.Radius), int32(n.Segments/2), int32(n.Segments), c)
		case scene.KindRing:
			c := color(n.Material.Color, 200)
			center := vec3(n.WorldPosition())
			// RotationX lays the ring into the orbital plane
			axis := rl.NewVector3(1, 0, 0)
			angle := float32(n.RotationX * 180 / 3.141592653589793)
			for i := 0; i <= ringBands; i++ {
				radius := n.InnerRadius + (n.OuterRadius-n.InnerRadius)*float64(i)/ringBands
				rl.DrawCircle3D(center, float32(radius), axis, angle, c)
			}
		}
	})

	rl.EndMode3D()
	rl.EndTextureMode()
}
