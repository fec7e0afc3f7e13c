package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/alphatri/internal/core/vecmath"
)

func assertVec(t *testing.T, want, got vecmath.Vec2, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-6, msgAndArgs...)
}

func TestRotatorRoundTrip(t *testing.T) {
	assert.InDelta(t, 32768, RotatorFromRadians(math.Pi).Yaw, 1e-9)
	assert.InDelta(t, 16384, RotatorFromRadians(math.Pi/2).Yaw, 1e-9)
	assert.InDelta(t, 0.75, RotatorFromRadians(0.75).Radians(), 1e-12)
	assert.Zero(t, Rotator{}.Radians())
}

func TestTileTransformUnrotated(t *testing.T) {
	m := TileTransform(vecmath.Vec2{X: 100, Y: 50}, Rotator{}, 300, 200, 30, 20, 0, 0)

	assertVec(t, vecmath.Vec2{X: 100, Y: 50}, m.Apply(vecmath.Vec2{}))
	assertVec(t, vecmath.Vec2{X: 400, Y: 250}, m.Apply(vecmath.Vec2{X: 30, Y: 20}))
	assertVec(t, vecmath.Vec2{X: 100, Y: 250}, m.Apply(vecmath.Vec2{X: 0, Y: 20}))
}

func TestTileTransformKeepsPivotFixed(t *testing.T) {
	pos := vecmath.Vec2{X: 800, Y: 200}
	rot := RotatorFromRadians(0.9)
	m := TileTransform(pos, rot, 200, 300, 254, 254, 0.25, 0.6)

	// The pivot in source space is its fraction of the source size.
	pivotSrc := vecmath.Vec2{X: 0.25 * 254, Y: 0.6 * 254}
	assertVec(t, vecmath.Vec2{X: 800 + 0.25*200, Y: 200 + 0.6*300}, m.Apply(pivotSrc))
}

func TestTileTransformQuarterTurnAboutOrigin(t *testing.T) {
	pos := vecmath.Vec2{X: 800, Y: 200}
	m := TileTransform(pos, RotatorFromRadians(math.Pi/2), 200, 300, 10, 10, 0, 0)

	// Bottom-left swings to the left of the origin, bottom-right below it.
	assertVec(t, vecmath.Vec2{X: 500, Y: 200}, m.Apply(vecmath.Vec2{X: 0, Y: 10}))
	assertVec(t, vecmath.Vec2{X: 500, Y: 400}, m.Apply(vecmath.Vec2{X: 10, Y: 10}))
	assertVec(t, pos, m.Apply(vecmath.Vec2{}))
}

func TestAffinePreTranslate(t *testing.T) {
	m := TileTransform(vecmath.Vec2{X: 3, Y: 4}, RotatorFromRadians(0.3), 20, 10, 5, 5, 0.5, 0.5)
	shifted := m.PreTranslate(-1, -1)

	p := vecmath.Vec2{X: 2.5, Y: 4}
	assertVec(t, m.Apply(p.SubScalar(1)), shifted.Apply(p))
}
