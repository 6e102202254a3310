// Package scene is the renderer-independent scene graph: nodes, the
// perspective camera, damped orbit controls and pointer ray casting.
//
// [Build] constructs every static visual once (lights, starfield, planet
// spheres, ring, orbit guides) and hands back the body registry bound to the
// planet spheres. Frontends only read the graph; the registry moves it.
package scene
