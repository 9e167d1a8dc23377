package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/jakecoffman/cp/v2"
)

const (
	bgColor     = "#0a0a0a"
	wallColor   = "#475569"
	groundColor = "#94a3b8"
)

// SVGRenderer records one frame of draw commands as SVG elements. Clear
// starts a new frame; trails added with AddTrail survive it.
type SVGRenderer struct {
	width, height float64
	trails        strings.Builder
	frame         strings.Builder
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

func (r *SVGRenderer) Clear() { r.frame.Reset() }

// StrokeRect also sizes the document; the viewport rectangle is the first
// thing drawn each frame.
func (r *SVGRenderer) StrokeRect(x, y, w, h float64) {
	if x+w > r.width {
		r.width = x + w
	}
	if y+h > r.height {
		r.height = y + h
	}
	fmt.Fprintf(&r.frame, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s"/>
`, x, y, w, h, wallColor)
}

func (r *SVGRenderer) StrokeLine(a, b cp.Vector) {
	fmt.Fprintf(&r.frame, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, a.X, a.Y, b.X, b.Y, groundColor)
}

func (r *SVGRenderer) FillCircle(center cp.Vector, radius float64, color string) {
	fmt.Fprintf(&r.frame, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, center.X, center.Y, radius, html.EscapeString(color))
}

// AddTrail draws a polyline under the frame. Fewer than two points draw
// nothing.
func (r *SVGRenderer) AddTrail(points []cp.Vector, color string) {
	if len(points) < 2 {
		return
	}
	fmt.Fprintf(&r.trails, `<path fill="none" stroke="%s" stroke-opacity="0.35" stroke-width="1" d="M`, html.EscapeString(color))
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&r.trails, "%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&r.trails, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	r.trails.WriteString("\"/>\n")
}

// String returns the complete document.
func (r *SVGRenderer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, r.width, r.height, r.width, r.height, bgColor)
	sb.WriteString(r.trails.String())
	sb.WriteString(r.frame.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (r *SVGRenderer) WriteFile(path string) error {
	return os.WriteFile(path, []byte(r.String()), 0644)
}
