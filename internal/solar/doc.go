// Package solar holds the body registry: the ordered celestial bodies, their
// mutable orbital state and the global pause flag.
//
// The registry is plain data. It knows nothing about rendering beyond the
// [Mesh] interface its bodies move:
//
//   - [BodyConfig]: immutable per-body constants
//   - [Body]: orbital angle, speed and rotation speed of one body
//   - [Simulation]: the registry plus the per-frame [Simulation.Advance] step
//
// Index 0 is always the sun. It never moves, has no speed control and is
// never a hover target.
//
// # Example
//
//	sim, _ := solar.NewSimulation(solar.DefaultBodies(), meshes, rng)
//	sim.Advance(1.0 / 60)
//
// # Thread Safety
//
// Simulation is NOT thread-safe. Frontends drive it from their single
// event loop.
package solar
