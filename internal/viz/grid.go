package viz

import (
	"strings"

	"github.com/san-kum/coilsim/internal/coil"
)

// shades orders characters by increasing field strength for the
// magnitude grid rendering.
var shades = []rune(" .:-=+*#%@")

// MagnitudeGrid samples |B| on a w×h grid covering |r| <= rExtent,
// |z| <= zExtent. Row 0 is the top of the view (r = +rExtent). Grids
// need at least two samples per dimension to span the extents; anything
// smaller yields nil.
func MagnitudeGrid(g coil.Geometry, w, h int, rExtent, zExtent float64) [][]float64 {
	if w < 2 || h < 2 {
		return nil
	}
	grid := make([][]float64, h)
	for row := 0; row < h; row++ {
		grid[row] = make([]float64, w)
		r := rExtent - 2*rExtent*float64(row)/float64(h-1)
		for col := 0; col < w; col++ {
			z := -zExtent + 2*zExtent*float64(col)/float64(w-1)
			grid[row][col] = g.FieldAt(r, z).Magnitude()
		}
	}
	return grid
}

// RenderGrid maps a magnitude grid to shaded characters, normalized to the
// strongest sample.
func RenderGrid(grid [][]float64) string {
	max := 0.0
	for _, row := range grid {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for _, v := range row {
			idx := 0
			if max > 0 {
				idx = int(v / max * float64(len(shades)-1))
			}
			b.WriteRune(shades[idx])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
