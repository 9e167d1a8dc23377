// Package viz hosts the ball world in the terminal.
//
// The world is drawn through [CanvasRenderer] onto a braille [Canvas], where
// each cell holds 2x4 sub-pixels and one sub-pixel covers [PixelScale] world
// pixels. [Model] is the Bubble Tea program around a sim.Loop; it keeps a
// pending scene that is applied on enter, mirroring the start button of a
// settings panel.
//
// # Key Bindings
//
//	Space   - Pause/Resume
//	Enter/R - Respawn the balls with the pending scene
//	←/→     - Ground angle
//	+/-     - Ball count
//	C       - Next ball colour
//	T       - Cycle color themes
//	?       - Show help overlay
package viz
