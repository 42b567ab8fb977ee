// Package trace integrates streamlines through a 2D axisymmetric field.
package trace

import (
	"math"

	"github.com/san-kum/coilsim/internal/coil"
)

// Point is a position in the (r, z) half-plane.
type Point struct {
	R float64
	Z float64
}

// Streamline is an ordered polyline approximating one field line. It is a
// pure value: it owns its points and keeps no reference to the geometry
// or tracer that produced it.
type Streamline []Point

// Clone returns an independent copy.
func (s Streamline) Clone() Streamline {
	c := make(Streamline, len(s))
	copy(c, s)
	return c
}

// FieldFunc evaluates the field at a point.
type FieldFunc func(r, z float64) coil.FieldVector

// Tracer integrates field lines with fixed-step forward Euler along the
// normalized field direction.
//
// The fixed step accumulates geometric error where lines curve sharply,
// near the coil's open ends. That drift is an accepted visualization
// tradeoff; do not swap in an adaptive or higher-order scheme here.
type Tracer struct {
	// StepSize is the advance per Euler step, in meters.
	StepSize float64

	// MaxSteps caps each half-trace.
	MaxSteps int

	// MinField terminates a trace when |B| drops below it.
	MinField float64

	// RMax and ZMax bound the traced region; stepping outside either
	// extent ends the half-trace.
	RMax float64
	ZMax float64
}

// Trace integrates a field line through seed. It runs one half-trace along
// the field and one against it, then joins them as reversed-backward,
// seed, forward, so the polyline passes through the seed with a fixed,
// deterministic point order.
//
// Weak field, leaving the bounds, and hitting MaxSteps all end a
// half-trace normally; the result is simply a shorter polyline.
func (t *Tracer) Trace(field FieldFunc, seed Point) Streamline {
	fwd := t.half(field, seed, t.StepSize)
	back := t.half(field, seed, -t.StepSize)

	line := make(Streamline, 0, len(back)+len(fwd)+1)
	for i := len(back) - 1; i >= 0; i-- {
		line = append(line, back[i])
	}
	line = append(line, seed)
	line = append(line, fwd...)
	return line
}

func (t *Tracer) half(field FieldFunc, seed Point, step float64) []Point {
	pts := make([]Point, 0, 64)
	r, z := seed.R, seed.Z

	for i := 0; i < t.MaxSteps; i++ {
		f := field(r, z)
		mag := f.Magnitude()
		if mag < t.MinField {
			break
		}

		r += step * f.Br / mag
		z += step * f.Bz / mag

		if math.Abs(r) > t.RMax || math.Abs(z) > t.ZMax {
			break
		}
		pts = append(pts, Point{R: r, Z: z})
	}

	return pts
}
