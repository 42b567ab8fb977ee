// Package fieldlines seeds and caches full field-line sets for a coil.
package fieldlines

import (
	"sync"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

// Seed radii, as fractions of the coil radius for interior lines and
// multiples of it for exterior lines. Each is seeded on both sides of the
// axis at z = 0.
var (
	interiorSeeds = []float64{0.25, 0.5, 0.75}
	exteriorSeeds = []float64{1.5, 2.0, 3.0, 4.0}
)

const (
	// DefaultMaxSteps caps each half-trace.
	DefaultMaxSteps = 4000

	// stepFraction scales the Euler step to the coil's larger dimension.
	stepFraction = 0.01

	// minField terminates traces where the field underflows, in tesla.
	minField = 1e-12

	// boundsFactor sets the traced region to ±boundsFactor×Length in
	// both r and z.
	boundsFactor = 4.0
)

// key identifies the line set a geometry produces. Radius is fixed per
// visualization instance, so it is not part of the key.
type key struct {
	current float64
	turns   int
	length  float64
}

// Builder computes field-line sets and memoizes the last one. The single
// cache slot is the only mutable state in the solver; the mutex makes it
// safe to embed in a threaded host.
type Builder struct {
	MaxSteps int

	mu    sync.Mutex
	valid bool
	key   key
	lines []trace.Streamline
}

func NewBuilder() *Builder {
	return &Builder{MaxSteps: DefaultMaxSteps}
}

// Compute returns the field-line set for g, tracing it only when g's key
// differs from the cached one. Invalid geometry yields an empty set.
func (b *Builder) Compute(g coil.Geometry) []trace.Streamline {
	return b.ComputeWith(g, func(r, z float64) coil.FieldVector {
		return g.FieldAt(r, z)
	})
}

// ComputeWith is Compute with the field evaluation routed through field,
// so callers can instrument or substitute the evaluator.
func (b *Builder) ComputeWith(g coil.Geometry, field trace.FieldFunc) []trace.Streamline {
	if g.Validate() != nil {
		return nil
	}

	k := key{current: g.Current, turns: g.Turns, length: g.Length}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.valid && b.key == k {
		return b.lines
	}

	lines := b.traceAll(g, field)
	b.key = k
	b.lines = lines
	b.valid = true
	return lines
}

func (b *Builder) traceAll(g coil.Geometry, field trace.FieldFunc) []trace.Streamline {
	extent := g.Length
	if g.Radius > extent {
		extent = g.Radius
	}

	tr := &trace.Tracer{
		StepSize: stepFraction * extent,
		MaxSteps: b.MaxSteps,
		MinField: minField,
		RMax:     boundsFactor * g.Length,
		ZMax:     boundsFactor * g.Length,
	}

	lines := make([]trace.Streamline, 0, 2*(len(interiorSeeds)+len(exteriorSeeds)))
	addSeed := func(r float64) {
		line := tr.Trace(field, trace.Point{R: r, Z: 0})
		if len(line) > 1 {
			lines = append(lines, line)
		}
	}

	for _, fr := range interiorSeeds {
		addSeed(fr * g.Radius)
		addSeed(-fr * g.Radius)
	}
	for _, mul := range exteriorSeeds {
		addSeed(mul * g.Radius)
		addSeed(-mul * g.Radius)
	}

	return lines
}
