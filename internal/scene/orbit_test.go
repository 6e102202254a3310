package scene

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/vmath"
)

func near(a, b vmath.Vec3, tol float64) bool { return a.Sub(b).Length() < tol }

func TestOrbitControlsIdle(t *testing.T) {
	cam := NewCamera(75, 1, 30)
	o := NewOrbitControls(cam, 0)
	if o.Damping != DefaultDamping {
		t.Errorf("damping = %v, want default", o.Damping)
	}
	o.Update()
	if !near(cam.Position, vmath.Vec3{Z: 30}, 1e-4) {
		t.Errorf("idle update moved the camera to %v", cam.Position)
	}
}

func TestOrbitControlsRotateEasesOut(t *testing.T) {
	cam := NewCamera(75, 1, 30)
	o := NewOrbitControls(cam, 0.05)
	o.Rotate(math.Pi/2, 0)

	o.Update()
	first := math.Atan2(cam.Position.X, cam.Position.Z)
	if math.Abs(first-0.05*math.Pi/2) > 1e-9 {
		t.Errorf("first step = %v, want damping fraction", first)
	}
	for i := 0; i < 1000; i++ {
		o.Update()
	}
	if !near(cam.Position, vmath.Vec3{X: 30}, 1e-3) {
		t.Errorf("camera settled at %v, want (30, 0, 0)", cam.Position)
	}
	if cam.Target != (vmath.Vec3{}) {
		t.Errorf("rotation moved the target: %v", cam.Target)
	}
}

func TestOrbitControlsDollyClamps(t *testing.T) {
	cam := NewCamera(75, 1, 30)
	o := NewOrbitControls(cam, 0.05)

	o.Dolly(0.5)
	o.Update()
	if math.Abs(o.Distance()-15) > 1e-9 {
		t.Errorf("distance = %v, want 15", o.Distance())
	}
	o.Dolly(1000)
	o.Update()
	if o.Distance() != o.MaxDistance {
		t.Errorf("distance = %v, want max %v", o.Distance(), o.MaxDistance)
	}
	o.Dolly(-1)
	o.Update()
	if o.Distance() != o.MaxDistance {
		t.Error("non-positive dolly factor should be ignored")
	}
}

func TestOrbitControlsPolarClamp(t *testing.T) {
	cam := NewCamera(75, 1, 30)
	o := NewOrbitControls(cam, 0.5)
	o.Rotate(0, 10)
	for i := 0; i < 100; i++ {
		o.Update()
	}
	if cam.Position.Y > -29.99 {
		t.Errorf("camera should stop just above the south pole, y = %v", cam.Position.Y)
	}
	if math.IsNaN(cam.Position.X) {
		t.Error("camera position became NaN")
	}
}

func TestOrbitControlsPan(t *testing.T) {
	cam := NewCamera(75, 1, 30)
	o := NewOrbitControls(cam, 1)
	o.Pan(0, 0.5)
	o.Update()
	if cam.Target.Y <= 0 {
		t.Errorf("pan up left target at %v", cam.Target)
	}
	if math.Abs(cam.Position.Sub(cam.Target).Length()-30) > 1e-9 {
		t.Error("pan changed the camera distance")
	}
}

func TestOrbitControlsPanEasesTowardTarget(t *testing.T) {
	full := NewCamera(75, 1, 30)
	fo := NewOrbitControls(full, 1)
	fo.Pan(0.2, 0.4)
	fo.Update()

	eased := NewCamera(75, 1, 30)
	eo := NewOrbitControls(eased, 0.5)
	eo.Pan(0.2, 0.4)
	eo.Update()

	want := full.Target.Scale(0.5)
	if eased.Target.Sub(want).Length() > 1e-9 {
		t.Errorf("first eased step = %v, want %v", eased.Target, want)
	}
	eo.Update()
	want = full.Target.Scale(0.75)
	if eased.Target.Sub(want).Length() > 1e-9 {
		t.Errorf("second eased step = %v, want %v", eased.Target, want)
	}
}
