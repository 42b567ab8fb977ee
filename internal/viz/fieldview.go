package viz

import (
	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

// FieldView projects the (r, z) half-plane onto a braille canvas. The coil
// axis runs horizontally: z maps to x and r to y, with (0, 0) at the
// canvas center.
type FieldView struct {
	canvas  *Canvas
	rExtent float64
	zExtent float64
}

// NewFieldView creates a view of |r| <= rExtent, |z| <= zExtent on a
// w×h character canvas.
func NewFieldView(w, h int, rExtent, zExtent float64) *FieldView {
	return &FieldView{
		canvas:  NewCanvas(w, h),
		rExtent: rExtent,
		zExtent: zExtent,
	}
}

func (v *FieldView) pixel(r, z float64) (int, int) {
	px := v.canvas.Width * 2
	py := v.canvas.Height * 4
	x := int((z + v.zExtent) / (2 * v.zExtent) * float64(px-1))
	y := int((v.rExtent - r) / (2 * v.rExtent) * float64(py-1))
	return x, y
}

// DrawStreamline draws one field line as connected segments.
func (v *FieldView) DrawStreamline(line trace.Streamline) {
	if len(line) < 2 {
		return
	}
	x0, y0 := v.pixel(line[0].R, line[0].Z)
	for _, p := range line[1:] {
		x1, y1 := v.pixel(p.R, p.Z)
		v.canvas.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

// DrawCoil marks every winding's cross-section at r = ±Radius.
func (v *FieldView) DrawCoil(g coil.Geometry) {
	for _, z := range g.TurnPositions() {
		x, y := v.pixel(g.Radius, z)
		v.canvas.Set(x, y)
		x, y = v.pixel(-g.Radius, z)
		v.canvas.Set(x, y)
	}
}

// Clear wipes the canvas for the next frame.
func (v *FieldView) Clear() {
	v.canvas.Clear()
}

func (v *FieldView) String() string {
	return v.canvas.String()
}
