package tui

import (
	"math"
	"testing"

	"github.com/san-kum/coilsim/internal/config"
	"github.com/san-kum/coilsim/internal/trace"
)

func maxRadial(lines []trace.Streamline) float64 {
	max := 0.0
	for _, line := range lines {
		for _, p := range line {
			if r := math.Abs(p.R); r > max {
				max = r
			}
		}
	}
	return max
}

func TestRadiusEditRefreshesLines(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Turns = 10
	m := newModel(cfg)
	m.builder.MaxSteps = 200

	before := m.builder.Compute(m.geometry())
	if len(before) == 0 {
		t.Fatal("no lines for initial geometry")
	}

	// The builder's cache key omits radius, so a radius edit must not be
	// served from the old builder's cache.
	m.setValue("radius", 4*cfg.Radius)
	m.builder.MaxSteps = 200

	after := m.builder.Compute(m.geometry())
	if len(after) == 0 {
		t.Fatal("no lines after radius edit")
	}
	if &before[0][0] == &after[0][0] {
		t.Fatal("radius edit returned the cached line set for the old radius")
	}

	// Seeds scale with the radius, so the widest exterior line must reach
	// further out than anything traced for the old, smaller coil.
	if maxRadial(after) <= maxRadial(before) {
		t.Errorf("line extent did not grow with the radius: %g vs %g",
			maxRadial(after), maxRadial(before))
	}
}

func TestOtherEditsKeepBuilder(t *testing.T) {
	m := newModel(config.DefaultConfig())
	b := m.builder

	m.setValue("current", 7)
	m.setValue("turns", 40)
	m.setValue("length", 0.25)

	if m.builder != b {
		t.Error("non-radius edits should reuse the builder; its key covers them")
	}
}
