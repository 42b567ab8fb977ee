package coil

// FieldAt returns the net field at (r, z) by superposing LoopField over
// every turn. This is the hot path: one call per background grid cell and
// per tracer step, so the turn loop carries no allocation and does not go
// through TurnPositions.
func (g Geometry) FieldAt(r, z float64) FieldVector {
	if g.Validate() != nil {
		return FieldVector{}
	}

	if g.Turns == 1 {
		return LoopField(g.Radius, g.Current, r, z)
	}

	spacing := g.Length / float64(g.Turns-1)
	var br, bz float64
	for i := 0; i < g.Turns; i++ {
		turnZ := -g.Length/2 + float64(i)*spacing
		f := LoopField(g.Radius, g.Current, r, z-turnZ)
		br += f.Br
		bz += f.Bz
	}
	return FieldVector{Br: br, Bz: bz}
}
