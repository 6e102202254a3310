// Package anim drives the per-frame update: read the clock, advance the body
// registry, update camera interaction, render.
package anim

import (
	"context"
	"time"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
)

// Renderer draws the scene from the camera.
type Renderer interface {
	Render(sc *scene.Scene, cam *scene.Camera)
}

// Controls is per-frame camera interaction, such as damped orbit controls.
type Controls interface {
	Update()
}

// Observer sees the registry after each frame's update.
type Observer interface {
	OnFrame(sim *solar.Simulation, elapsed float64)
}

type Driver struct {
	sim      *solar.Simulation
	scene    *scene.Scene
	camera   *scene.Camera
	clock    Clock
	controls Controls
	renderer Renderer

	observers []Observer
	frames    int
	elapsed   float64
}

func NewDriver(sim *solar.Simulation, sc *scene.Scene, cam *scene.Camera, clock Clock, controls Controls, renderer Renderer) *Driver {
	return &Driver{
		sim:      sim,
		scene:    sc,
		camera:   cam,
		clock:    clock,
		controls: controls,
		renderer: renderer,
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Frame runs one display refresh. The clock is read every frame, paused or
// not, so no time builds up while paused.
func (d *Driver) Frame() {
	dt := d.clock.Delta()
	if !d.sim.Paused {
		d.sim.Advance(dt)
		d.elapsed += dt
	}
	if d.controls != nil {
		d.controls.Update()
	}
	if d.renderer != nil {
		d.renderer.Render(d.scene, d.camera)
	}
	d.frames++
	for _, o := range d.observers {
		o.OnFrame(d.sim, d.elapsed)
	}
}

// Run calls Frame for every tick until ctx is cancelled or ticks closes.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			d.Frame()
		}
	}
}

// Frames is the number of frames rendered so far.
func (d *Driver) Frames() int { return d.frames }

// Elapsed is the simulated time advanced so far, excluding paused frames.
func (d *Driver) Elapsed() float64 { return d.elapsed }
