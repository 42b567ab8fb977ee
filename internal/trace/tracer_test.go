package trace

import (
	"math"
	"testing"

	"github.com/san-kum/coilsim/internal/coil"
)

func uniformAxial(bz float64) FieldFunc {
	return func(r, z float64) coil.FieldVector {
		return coil.FieldVector{Br: 0, Bz: bz}
	}
}

func TestTraceUniformField(t *testing.T) {
	tr := &Tracer{StepSize: 0.1, MaxSteps: 10, MinField: 1e-12, RMax: 100, ZMax: 100}

	line := tr.Trace(uniformAxial(1.0), Point{R: 0, Z: 0})

	// 10 backward points, the seed, 10 forward points.
	if len(line) != 21 {
		t.Fatalf("got %d points, want 21", len(line))
	}

	// Points must run monotonically in z so the rendered line has no
	// discontinuity: reversed-backward, seed, forward.
	for i := 1; i < len(line); i++ {
		if line[i].Z <= line[i-1].Z {
			t.Fatalf("z not monotonic at %d: %g after %g", i, line[i].Z, line[i-1].Z)
		}
	}

	if line[10] != (Point{R: 0, Z: 0}) {
		t.Errorf("seed not at the middle: %+v", line[10])
	}
	if math.Abs(line[20].Z-1.0) > 1e-12 {
		t.Errorf("forward end z = %g, want 1.0", line[20].Z)
	}
	if math.Abs(line[0].Z+1.0) > 1e-12 {
		t.Errorf("backward end z = %g, want -1.0", line[0].Z)
	}
}

func TestTraceWeakFieldStopsAtSeed(t *testing.T) {
	tr := &Tracer{StepSize: 0.1, MaxSteps: 10, MinField: 1e-12, RMax: 100, ZMax: 100}

	line := tr.Trace(uniformAxial(1e-15), Point{R: 0.5, Z: 0.5})

	if len(line) != 1 {
		t.Fatalf("got %d points, want just the seed", len(line))
	}
	if line[0] != (Point{R: 0.5, Z: 0.5}) {
		t.Errorf("got %+v, want the seed", line[0])
	}
}

func TestTraceBoundsTermination(t *testing.T) {
	tr := &Tracer{StepSize: 0.1, MaxSteps: 100, MinField: 1e-12, RMax: 100, ZMax: 0.35}

	line := tr.Trace(uniformAxial(1.0), Point{R: 0, Z: 0})

	// Each half-trace appends z = 0.1, 0.2, 0.3 and stops when the next
	// step leaves the box.
	if len(line) != 7 {
		t.Fatalf("got %d points, want 7", len(line))
	}
	for _, p := range line {
		if math.Abs(p.Z) > 0.35 {
			t.Errorf("point escaped bounds: %+v", p)
		}
	}
}

func TestTraceOnAxisStaysOnAxis(t *testing.T) {
	g := coil.Geometry{Radius: 0.02, Length: 0.2, Turns: 50, Current: 5}
	field := func(r, z float64) coil.FieldVector { return g.FieldAt(r, z) }

	tr := &Tracer{StepSize: 0.002, MaxSteps: 300, MinField: 1e-12, RMax: 0.8, ZMax: 0.8}
	line := tr.Trace(field, Point{R: 0, Z: 0})

	if len(line) < 10 {
		t.Fatalf("axis trace too short: %d points", len(line))
	}
	for i, p := range line {
		if math.Abs(p.R) > 1e-9 {
			t.Fatalf("point %d drifted off axis: r = %g", i, p.R)
		}
	}
}

func TestStreamlineClone(t *testing.T) {
	line := Streamline{{R: 1, Z: 2}, {R: 3, Z: 4}}
	c := line.Clone()

	c[0].R = 99
	if line[0].R != 1 {
		t.Error("clone aliases the original")
	}
}
