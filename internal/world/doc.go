// Package world holds the physics core of the ball pit.
//
// A [World] owns a row of circular bodies, an optional inclined ground
// segment and the viewport bounds. Each call to [World.Frame] runs one fixed
// step in this order:
//
//   - render phase: clear, stroke the viewport rectangle and the ground
//   - physics phase: [Integrate] every body, then [ResolvePair] for every
//     unordered pair (i<j), once each
//   - draw phase: fill every body
//
// Units are pixels and frames. There is no variable timestep; the constants
// in [Params] are tuned for stepping at roughly 60 frames per second.
//
// # Thread Safety
//
// World guards its bodies, ground and bounds with a single mutex held for a
// whole frame. [World.Configure] and [World.Resize] may be called from other
// goroutines and always land between two frames.
package world
