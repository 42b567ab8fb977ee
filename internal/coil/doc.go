// Package coil computes the magnetostatic field of a finite solenoid.
//
// The solenoid is modeled as a stack of coaxial circular current loops
// ("turns") spaced evenly along the axis. Each loop's field follows from
// a discretized Biot-Savart line integral; the solenoid field is the
// superposition over all turns:
//
//	g := coil.Geometry{Radius: 0.02, Length: 0.2, Turns: 200, Current: 5}
//	b := g.FieldAt(0, 0) // field at the coil center
//
// By axisymmetry the field has only radial and axial components, so all
// evaluation happens in the (r, z) half-plane of the coil's cylindrical
// coordinate system.
//
// # Degenerate Input
//
// FieldAt never panics and never returns NaN or Inf: geometry that fails
// [Geometry.Validate] yields the zero [FieldVector]. Validation errors are
// for callers that want to reject bad parameters at their own boundary.
package coil
