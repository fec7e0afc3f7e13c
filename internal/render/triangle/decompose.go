package triangle

import (
	"math"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

// RightTriangle has its right angle at C, and A, B, C wind counter-clockwise
// (Determinant(A-C, B-C) <= 0).
type RightTriangle struct {
	A, B, C vecmath.Vec2
}

// Label orders an arbitrary triangle for decomposition: c is opposite the
// longest edge and a, b, c wind counter-clockwise. When edges tie, the edge
// p2p3 wins over p3p1, which wins over p1p2.
func Label(p1, p2, p3 vecmath.Vec2) (a, b, c vecmath.Vec2) {
	d1 := vecmath.Distance(p2, p3)
	d2 := vecmath.Distance(p3, p1)
	d3 := vecmath.Distance(p1, p2)
	longest := math.Max(d1, math.Max(d2, d3))

	switch longest {
	case d1:
		c, a, b = p1, p2, p3
	case d2:
		c, a, b = p2, p3, p1
	default:
		c, a, b = p3, p1, p2
	}

	if vecmath.Determinant(a.Sub(c), b.Sub(c)) > 0 {
		a, b = b, a
	}
	return a, b, c
}

// Decompose splits triangle p1 p2 p3 into one right triangle if it already
// has a right angle, or two right triangles sharing the altitude from the
// vertex opposite the longest edge.
func Decompose(p1, p2, p3 vecmath.Vec2) []RightTriangle {
	a, b, c := Label(p1, p2, p3)

	if math.Abs(vecmath.Dot(vecmath.Normalize(a.Sub(c)), vecmath.Normalize(b.Sub(c)))) < rightAngleEpsilon {
		render.Logger().Debug("right triangle", "a", a, "b", b, "c", c)
		return []RightTriangle{{A: a, B: b, C: c}}
	}

	// Foot of the altitude from c onto ab.
	ab := b.Sub(a)
	t := vecmath.Dot(b.Sub(c), ab) / vecmath.Dot(ab, ab)
	d := a.Mul(t).Add(b.Mul(1 - t))

	render.Logger().Debug("split triangle", "a", a, "b", b, "c", c, "foot", d)
	return []RightTriangle{
		{A: c, B: a, C: d},
		{A: b, B: c, C: d},
	}
}
