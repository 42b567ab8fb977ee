package coil

import (
	"fmt"
	"math"
)

// Mu0 is the permeability of free space in T·m/A.
const Mu0 = 4 * math.Pi * 1e-7

// Geometry is an immutable description of a solenoid: a winding of
// Turns circular loops of Radius meters, spread over Length meters,
// carrying Current amperes. Equal geometries produce identical fields.
type Geometry struct {
	Radius  float64
	Length  float64
	Turns   int
	Current float64
}

// Validate reports the first invariant the geometry breaks, or nil.
func (g Geometry) Validate() error {
	if g.Radius <= 0 {
		return fmt.Errorf("%w, got %g", ErrRadius, g.Radius)
	}
	if g.Length <= 0 {
		return fmt.Errorf("%w, got %g", ErrLength, g.Length)
	}
	if g.Turns < 1 {
		return fmt.Errorf("%w, got %d", ErrTurns, g.Turns)
	}
	return nil
}

// TurnPositions returns the axial center of every turn. Turns span
// [-Length/2, +Length/2] inclusive; a single turn sits at z = 0.
func (g Geometry) TurnPositions() []float64 {
	zs := make([]float64, g.Turns)
	if g.Turns == 1 {
		return zs
	}
	spacing := g.Length / float64(g.Turns-1)
	for i := range zs {
		zs[i] = -g.Length/2 + float64(i)*spacing
	}
	return zs
}

// IdealBz is the interior field of the corresponding infinite solenoid,
// μ0·(N/L)·I. FieldAt(0, 0).Bz approaches this as Length/Radius grows.
func (g Geometry) IdealBz() float64 {
	if g.Length <= 0 {
		return 0
	}
	return Mu0 * float64(g.Turns) / g.Length * g.Current
}

// FieldVector is the magnetic field at a point in the coil's cylindrical
// frame. There is no azimuthal component by axisymmetry.
type FieldVector struct {
	Br float64
	Bz float64
}

// Magnitude returns |B|.
func (v FieldVector) Magnitude() float64 {
	return math.Hypot(v.Br, v.Bz)
}

// IsValid reports whether both components are finite.
func (v FieldVector) IsValid() bool {
	return !math.IsNaN(v.Br) && !math.IsInf(v.Br, 0) &&
		!math.IsNaN(v.Bz) && !math.IsInf(v.Bz, 0)
}
