package viz

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// CanvasRenderer draws world commands onto a braille canvas. Scale is the
// number of world pixels per sub-pixel.
type CanvasRenderer struct {
	Canvas      *Canvas
	Scale       float64
	WallColor   string
	GroundColor string
}

func NewCanvasRenderer(c *Canvas, scale float64) *CanvasRenderer {
	return &CanvasRenderer{
		Canvas:      c,
		Scale:       scale,
		WallColor:   string(CurrentTheme.Muted),
		GroundColor: string(CurrentTheme.Secondary),
	}
}

// WorldSize is the viewport in world pixels that exactly covers the canvas.
func (r *CanvasRenderer) WorldSize() (float64, float64) {
	return float64(r.Canvas.SubWidth()) * r.Scale, float64(r.Canvas.SubHeight()) * r.Scale
}

func (r *CanvasRenderer) toSub(v float64) int {
	return int(math.Floor(v / r.Scale))
}

func (r *CanvasRenderer) Clear() { r.Canvas.Clear() }

// StrokeRect insets the right and bottom edges by one sub-pixel so the
// viewport border stays on the canvas.
func (r *CanvasRenderer) StrokeRect(x, y, w, h float64) {
	x0, y0 := r.toSub(x), r.toSub(y)
	x1, y1 := r.toSub(x+w)-1, r.toSub(y+h)-1
	c := r.Canvas
	c.DrawLine(x0, y0, x1, y0, r.WallColor)
	c.DrawLine(x1, y0, x1, y1, r.WallColor)
	c.DrawLine(x1, y1, x0, y1, r.WallColor)
	c.DrawLine(x0, y1, x0, y0, r.WallColor)
}

func (r *CanvasRenderer) StrokeLine(a, b cp.Vector) {
	r.Canvas.DrawLine(r.toSub(a.X), r.toSub(a.Y), r.toSub(b.X), r.toSub(b.Y), r.GroundColor)
}

func (r *CanvasRenderer) FillCircle(center cp.Vector, radius float64, color string) {
	r.Canvas.FillCircle(center.X/r.Scale, center.Y/r.Scale, radius/r.Scale, color)
}
