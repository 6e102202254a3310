package anim

import "time"

// Clock reports the seconds elapsed since its previous Delta call.
type Clock interface {
	Delta() float64
}

// SystemClock measures wall time. The first Delta returns 0.
type SystemClock struct {
	now  func() time.Time
	last time.Time
}

func NewSystemClock() *SystemClock { return &SystemClock{now: time.Now} }

func (c *SystemClock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last).Seconds()
	c.last = t
	return d
}

// FixedClock returns the same step every frame; used for headless runs.
type FixedClock struct {
	Step float64
}

func (c FixedClock) Delta() float64 { return c.Step }

// ClockFunc adapts a frame-time source, such as the window's frame timer.
type ClockFunc func() float64

func (f ClockFunc) Delta() float64 { return f() }
