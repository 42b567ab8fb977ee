package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

// LinesToSVG renders a field-line set as an SVG document of the given
// pixel size. World coordinates span |r|, |z| <= extent, with the coil
// axis horizontal.
func LinesToSVG(g coil.Geometry, lines []trace.Streamline, width, height, extent float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#00ff00" stroke-width="1" fill="none">
`, width, height, width, height))

	toX := func(z float64) float64 { return (z + extent) / (2 * extent) * width }
	toY := func(r float64) float64 { return (extent - r) / (2 * extent) * height }

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		sb.WriteString(`<polyline points="`)
		for i, p := range line {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.Z), toY(p.R)))
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	// Winding cross-sections
	sb.WriteString(`<g fill="#ff8800">` + "\n")
	for _, z := range g.TurnPositions() {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, toX(z), toY(g.Radius)))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, toX(z), toY(-g.Radius)))
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}
