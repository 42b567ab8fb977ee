package coil

import (
	"math"
	"testing"
)

func TestTurnPositions(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want []float64
	}{
		{
			"single turn at center",
			Geometry{Radius: 0.05, Length: 0.01, Turns: 1, Current: 1},
			[]float64{0},
		},
		{
			"two turns at the ends",
			Geometry{Radius: 0.05, Length: 0.2, Turns: 2, Current: 1},
			[]float64{-0.1, 0.1},
		},
		{
			"five turns evenly spaced",
			Geometry{Radius: 0.05, Length: 0.4, Turns: 5, Current: 1},
			[]float64{-0.2, -0.1, 0, 0.1, 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.g.TurnPositions()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d positions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-15 {
					t.Errorf("position %d = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFieldAtLinearInCurrent(t *testing.T) {
	base := Geometry{Radius: 0.02, Length: 0.2, Turns: 50, Current: 1}
	scaled := base
	scaled.Current = 7.5

	b1 := base.FieldAt(0.01, 0.03)
	b2 := scaled.FieldAt(0.01, 0.03)

	if math.Abs(b2.Br-7.5*b1.Br) > 1e-12*math.Abs(b2.Br) {
		t.Errorf("Br not linear in current: %g vs %g", b2.Br, 7.5*b1.Br)
	}
	if math.Abs(b2.Bz-7.5*b1.Bz) > 1e-12*math.Abs(b2.Bz) {
		t.Errorf("Bz not linear in current: %g vs %g", b2.Bz, 7.5*b1.Bz)
	}
}

func TestFieldAtNoAllocation(t *testing.T) {
	g := Geometry{Radius: 0.02, Length: 0.2, Turns: 200, Current: 5}

	allocs := testing.AllocsPerRun(10, func() {
		g.FieldAt(0.01, 0.05)
	})
	if allocs != 0 {
		t.Errorf("FieldAt allocates %v times per call, want 0", allocs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		ok   bool
	}{
		{"valid", Geometry{Radius: 0.02, Length: 0.2, Turns: 200, Current: 5}, true},
		{"zero radius", Geometry{Radius: 0, Length: 0.2, Turns: 200, Current: 5}, false},
		{"negative length", Geometry{Radius: 0.02, Length: -1, Turns: 200, Current: 5}, false},
		{"zero turns", Geometry{Radius: 0.02, Length: 0.2, Turns: 0, Current: 5}, false},
		{"zero current is fine", Geometry{Radius: 0.02, Length: 0.2, Turns: 1, Current: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func BenchmarkFieldAt(b *testing.B) {
	g := Geometry{Radius: 0.02, Length: 0.2, Turns: 200, Current: 5}
	for i := 0; i < b.N; i++ {
		g.FieldAt(0.01, 0.05)
	}
}
