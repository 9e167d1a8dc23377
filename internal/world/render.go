package world

import "github.com/jakecoffman/cp/v2"

// Renderer receives the draw commands of one frame. Coordinates are world
// pixels with y pointing down.
type Renderer interface {
	Clear()
	StrokeRect(x, y, w, h float64)
	StrokeLine(a, b cp.Vector)
	FillCircle(center cp.Vector, radius float64, color string)
}
