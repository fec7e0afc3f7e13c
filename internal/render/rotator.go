package render

import "math"

// RadiansToRotUnits converts radians to rotator units, where a half turn is
// 32768 units.
const RadiansToRotUnits = 32768 / math.Pi

// Rotator is a rotation about the axis perpendicular to the canvas, stored in
// rotator units. Positive yaw turns +X towards +Y, which is clockwise on a
// y-down canvas.
type Rotator struct {
	Yaw float64
}

// RotatorFromRadians builds a Rotator from an angle in radians.
func RotatorFromRadians(angle float64) Rotator {
	return Rotator{Yaw: angle * RadiansToRotUnits}
}

// Radians returns the rotation angle in radians.
func (r Rotator) Radians() float64 {
	return r.Yaw / RadiansToRotUnits
}
