package coil

import "math"

// LoopSegments is the number of straight segments the Biot-Savart sum
// discretizes each loop into.
const LoopSegments = 80

// wireEps is the separation below which a segment's contribution is
// skipped: the field point is effectively on the wire and the 1/|s|³
// factor would blow up.
const wireEps = 1e-9

// segmentTable holds precomputed sin/cos at the segment midpoint angles,
// shared by every loop evaluation.
type segmentTable struct {
	sin [LoopSegments]float64
	cos [LoopSegments]float64
}

var segments = newSegmentTable()

func newSegmentTable() *segmentTable {
	t := &segmentTable{}
	dtheta := 2 * math.Pi / LoopSegments
	for k := 0; k < LoopSegments; k++ {
		theta := (float64(k) + 0.5) * dtheta
		t.sin[k] = math.Sin(theta)
		t.cos[k] = math.Cos(theta)
	}
	return t
}

// LoopField returns the field of a single circular loop of radius rad
// carrying current cur, at the point (r, z) relative to the loop center.
//
// Each segment contributes dB = (μ0·cur/4π)·(dl × s)/|s|³ where dl is the
// tangential current element at the segment midpoint and s the separation
// to the field point. With the field point placed on the x-axis of the
// loop plane, the cross product reduces to
//
//	dB_r ∝ z·cosθ        dB_z ∝ rad - r·cosθ
//
// and the y components cancel pairwise across the loop.
func LoopField(rad, cur, r, z float64) FieldVector {
	if rad <= 0 {
		return FieldVector{}
	}

	var br, bz float64
	for k := 0; k < LoopSegments; k++ {
		cosT := segments.cos[k]
		sx := r - rad*cosT
		sy := -rad * segments.sin[k]
		d2 := sx*sx + sy*sy + z*z
		d := math.Sqrt(d2)
		if d < wireEps {
			continue
		}
		inv := 1 / (d2 * d)
		br += z * cosT * inv
		bz += (rad - r*cosT) * inv
	}

	dtheta := 2 * math.Pi / LoopSegments
	scale := Mu0 * cur / (4 * math.Pi) * rad * dtheta
	return FieldVector{Br: scale * br, Bz: scale * bz}
}
