// Package viewport keeps the render surface and the camera's aspect ratio in
// step with the container they are shown in.
package viewport

import "github.com/san-kum/orrery/internal/scene"

// Container reports the current client size of the area the surface fills.
type Container interface {
	ClientSize() (w, h int)
}

// Surface is the render target.
type Surface interface {
	SetSize(w, h int)
}

type Manager struct {
	Camera    *scene.Camera
	Container Container
	Surface   Surface

	width, height int
}

func New(cam *scene.Camera, c Container, s Surface) *Manager {
	return &Manager{Camera: cam, Container: c, Surface: s}
}

// Init sizes the surface and camera for the first frame.
func (m *Manager) Init() { m.Resize() }

// Resize handles one resize event synchronously.
func (m *Manager) Resize() {
	w, h := m.Container.ClientSize()
	if h > 0 {
		m.Camera.Aspect = float64(w) / float64(h)
		m.Camera.UpdateProjection()
	}
	m.Surface.SetSize(w, h)
	m.width, m.height = w, h
}

// Size is the surface size applied by the last Resize.
func (m *Manager) Size() (w, h int) { return m.width, m.height }

// ContainerFunc adapts a function to Container.
type ContainerFunc func() (int, int)

func (f ContainerFunc) ClientSize() (int, int) { return f() }
