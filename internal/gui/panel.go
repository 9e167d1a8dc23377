package gui

import "github.com/san-kum/ballpit/internal/world"

const (
	angleStep = 5.0
	maxAngle  = 80.0
	maxCount  = 200
)

// Palette is offered by the colour key, in order.
var Palette = []string{"#38bdf8", "#f97316", "#a3e635", "#e879f9", "#facc15", "#ef4444"}

// Panel is the settings panel: edits collect in Pending and only reach the
// world when applied.
type Panel struct {
	Pending  world.Scene
	Applied  world.Scene
	colorIdx int
}

func NewPanel(s world.Scene) *Panel {
	return &Panel{Pending: s}
}

func (p *Panel) TiltLeft() {
	p.Pending.AngleDeg = clamp(p.Pending.AngleDeg-angleStep, -maxAngle, maxAngle)
}

func (p *Panel) TiltRight() {
	p.Pending.AngleDeg = clamp(p.Pending.AngleDeg+angleStep, -maxAngle, maxAngle)
}

func (p *Panel) More() {
	if p.Pending.Count < maxCount {
		p.Pending.Count++
	}
}

func (p *Panel) Fewer() {
	if p.Pending.Count > 0 {
		p.Pending.Count--
	}
}

func (p *Panel) NextColor() {
	p.colorIdx = (p.colorIdx + 1) % len(Palette)
	p.Pending.Color = Palette[p.colorIdx]
}

// Dirty reports whether the pending scene differs from the applied one.
func (p *Panel) Dirty() bool { return p.Pending != p.Applied }

// Apply marks the pending scene as applied and returns it.
func (p *Panel) Apply() world.Scene {
	p.Applied = p.Pending
	return p.Applied
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
