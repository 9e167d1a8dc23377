package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp/v2"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColWall    = rl.NewColor(60, 60, 60, 255)
	ColGround  = rl.NewColor(180, 180, 180, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColPending = rl.NewColor(255, 105, 180, 255)
	ColDefault = rl.NewColor(200, 200, 255, 255)
)

const groundThickness = 2

// Renderer draws world commands with raylib. Calls must happen between
// rl.BeginDrawing and rl.EndDrawing on the window thread.
type Renderer struct {
	colors map[string]rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{colors: make(map[string]rl.Color)}
}

func (r *Renderer) Clear() { rl.ClearBackground(ColBg) }

func (r *Renderer) StrokeRect(x, y, w, h float64) {
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), ColWall)
}

func (r *Renderer) StrokeLine(a, b cp.Vector) {
	rl.DrawLineEx(toVec2(a), toVec2(b), groundThickness, ColGround)
}

func (r *Renderer) FillCircle(center cp.Vector, radius float64, color string) {
	rl.DrawCircleV(toVec2(center), float32(radius), r.color(color))
}

// color caches parsed tokens; the same few colours repeat every frame.
func (r *Renderer) color(token string) rl.Color {
	if c, ok := r.colors[token]; ok {
		return c
	}
	c := ParseColor(token)
	r.colors[token] = c
	return c
}

func toVec2(v cp.Vector) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// ParseColor reads "#rgb" and "#rrggbb" tokens. Anything else maps to
// ColDefault.
func ParseColor(hex string) rl.Color {
	var r, g, b uint8
	switch {
	case len(hex) == 7 && hex[0] == '#':
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return rl.NewColor(r, g, b, 255)
		}
	case len(hex) == 4 && hex[0] == '#':
		n, err := fmt.Sscanf(hex, "#%1x%1x%1x", &r, &g, &b)
		if err == nil && n == 3 {
			return rl.NewColor(r*17, g*17, b*17, 255)
		}
	}
	return ColDefault
}
