package render

import (
	"math"

	"chosenoffset.com/alphatri/internal/core/vecmath"
)

// Affine is a 2x3 affine matrix in row-major order:
//
//	| A B C |
//	| D E F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Affine [6]float64

// Apply transforms p.
func (m Affine) Apply(p vecmath.Vec2) vecmath.Vec2 {
	return vecmath.Vec2{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// PreTranslate returns m composed with a translation by (dx, dy) applied
// before m.
func (m Affine) PreTranslate(dx, dy float64) Affine {
	m[2] += m[0]*dx + m[1]*dy
	m[5] += m[3]*dx + m[4]*dy
	return m
}

// TileTransform returns the matrix a canvas uses to draw a tile: a source
// region of srcW x srcH (coordinates relative to the region's top-left) is
// scaled to width x height, placed with its top-left at pos and rotated by rot
// about the point at (pivotX, pivotY) of the scaled rectangle.
func TileTransform(pos vecmath.Vec2, rot Rotator, width, height, srcW, srcH, pivotX, pivotY float64) Affine {
	sx := width / srcW
	sy := height / srcH
	cx := pivotX * width
	cy := pivotY * height
	sin, cos := math.Sincos(rot.Radians())

	// translate(pos + pivot) * rotate * translate(-pivot) * scale
	return Affine{
		cos * sx, -sin * sy, -cos*cx + sin*cy + pos.X + cx,
		sin * sx, cos * sy, -sin*cx - cos*cy + pos.Y + cy,
	}
}
