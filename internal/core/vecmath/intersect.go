package vecmath

// Intersect returns the intersection of the infinite line through v1 and v2
// with the infinite line through w1 and w2.
//
// Parallel lines have no answer; the origin is returned in that case, so
// callers must never pass parallel lines.
func Intersect(v1, v2, w1, w2 Vec2) Vec2 {
	x1, x2, x3, x4 := v1.X, v2.X, w1.X, w2.X
	y1, y2, y3, y4 := v1.Y, v2.Y, w1.Y, w2.Y

	// Two-point form: https://en.wikipedia.org/wiki/Line%E2%80%93line_intersection
	denominator := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denominator == 0 {
		return Vec2{}
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	return Vec2{
		X: (a*(x3-x4) - (x1-x2)*b) / denominator,
		Y: (a*(y3-y4) - (y1-y2)*b) / denominator,
	}
}

// RotationCenter finds the fixed point of the rotation that moves vOld to
// vNew and wOld to wNew at the same time.
//
// A point that did not move is its own center. Otherwise the center lies on
// the perpendicular bisector of both displacements. v and w must not move in
// parallel directions.
func RotationCenter(vOld, vNew, wOld, wNew Vec2) Vec2 {
	if Equals(vOld, vNew) {
		return vOld
	}
	if Equals(wOld, wNew) {
		return wOld
	}

	vMid := vOld.Add(vNew).DivScalar(2)
	wMid := wOld.Add(wNew).DivScalar(2)
	vNormal := RotateLeft(vNew.Sub(vOld))
	wNormal := RotateLeft(wNew.Sub(wOld))

	return Intersect(vMid, vMid.Add(vNormal), wMid, wMid.Add(wNormal))
}
