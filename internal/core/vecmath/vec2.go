// Package vecmath provides the 2D vector math used to decompose and place
// triangles. All functions are pure; NaN and Inf propagate as usual.
package vecmath

import "math"

// Vec2 represents a 2D point or direction in canvas space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// SubScalar subtracts s from both components.
func (v Vec2) SubScalar(s float64) Vec2 {
	return Vec2{X: v.X - s, Y: v.Y - s}
}

// Div divides v componentwise by o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// DivScalar divides both components by s.
func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Distance calculates the Euclidean distance between two points
func Distance(v1, v2 Vec2) float64 {
	d := v1.Sub(v2)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Dot returns the dot product of v1 and v2.
func Dot(v1, v2 Vec2) float64 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// Determinant returns the 2D cross product of v1 and v2. It is positive when
// v2 is counter-clockwise from v1.
func Determinant(v1, v2 Vec2) float64 {
	return v1.X*v2.Y - v1.Y*v2.X
}

// Equals reports exact componentwise equality. No tolerance is applied.
func Equals(v1, v2 Vec2) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

// Normalize returns v scaled to unit length. The zero vector yields NaN.
func Normalize(v Vec2) Vec2 {
	return v.DivScalar(Distance(Vec2{}, v))
}

// RotateLeft rotates v by 90 degrees counter-clockwise.
func RotateLeft(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Area returns the unsigned area of triangle abc.
func Area(a, b, c Vec2) float64 {
	return math.Abs(Determinant(b.Sub(a), c.Sub(a))) / 2
}
