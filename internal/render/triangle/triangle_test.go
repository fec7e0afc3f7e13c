package triangle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
	"chosenoffset.com/alphatri/internal/render/rendertest"
)

const (
	canvasWidth  = 1920
	canvasHeight = 1080
	tileWidth    = 256
	tileHeight   = 256
)

func v(x, y float64) vecmath.Vec2 { return vecmath.Vec2{X: x, Y: y} }

func assertVec(t *testing.T, want, got vecmath.Vec2, tolerance float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...)
}

func newRenderer(t *testing.T) (*Renderer, *rendertest.Recorder) {
	t.Helper()
	r := New(rendertest.NewTile(tileWidth, tileHeight))
	require.True(t, r.Loaded())
	return r, rendertest.NewRecorder(canvasWidth, canvasHeight)
}

func TestNewLoadsTileOnce(t *testing.T) {
	tile := rendertest.NewTile(tileWidth, tileHeight)
	r := New(tile)
	assert.True(t, r.Loaded())
	assert.Equal(t, 1, tile.LoadCalls)

	preloaded := rendertest.NewTile(tileWidth, tileHeight)
	preloaded.Loaded = true
	New(preloaded)
	assert.Equal(t, 0, preloaded.LoadCalls)
}

func TestFallbackWhenTileFailsToLoad(t *testing.T) {
	tile := rendertest.NewBrokenTile(tileWidth, tileHeight)
	r := New(tile)
	require.False(t, r.Loaded())

	canvas := rendertest.NewRecorder(canvasWidth, canvasHeight)
	red := color.NRGBA{R: 255, A: 127}
	canvas.SetColor(red)

	triangles := [][3]vecmath.Vec2{
		{v(200, 200), v(500, 200), v(500, 400)},
		{v(700, 700), v(300, 600), v(200, 500)},
		{v(1000, 400), v(1800, 100), v(1600, 1000)},
	}
	for i, tri := range triangles {
		r.Render(canvas, tri[0], tri[1], tri[2])
		require.Len(t, canvas.Fills, i+1)
		assert.Equal(t, tri, canvas.Fills[i].Points)
		assert.Equal(t, red, canvas.Fills[i].Color)
	}
	assert.Empty(t, canvas.Tiles)
	assert.Equal(t, 1, tile.LoadCalls, "load failure is permanent")
}

func TestRenderRightAngleAtSecondPoint(t *testing.T) {
	r, canvas := newRenderer(t)

	r.Render(canvas, v(200, 200), v(500, 200), v(500, 400))

	require.Len(t, canvas.Tiles, 1, "a right triangle needs a single tile")
	call := canvas.Tiles[0]
	assertVec(t, v(300, 200), call.Size, 1e-9)
	assert.InDelta(t, 32768, call.Rotation.Yaw, 1e-6, "horizontal leg points left")
	assert.Equal(t, v(0, 0), call.Pivot)
	assert.Equal(t, v(500, 400), call.Position)
}

func TestRenderMirroredRightTriangle(t *testing.T) {
	r, canvas := newRenderer(t)

	r.Render(canvas, v(800, 200), v(500, 200), v(500, 400))

	require.Len(t, canvas.Tiles, 1)
	call := canvas.Tiles[0]
	assertVec(t, v(200, 300), call.Size, 1e-9)
	assert.InDelta(t, 16384, call.Rotation.Yaw, 1e-6, "quarter turn")
	assert.Equal(t, v(0, 0), call.Pivot, "the top-left corner is already in place")
	assert.Equal(t, v(800, 200), call.Position)
}

func TestRenderUsesTileInterior(t *testing.T) {
	r, canvas := newRenderer(t)

	r.Render(canvas, v(700, 700), v(300, 600), v(200, 500))

	require.Len(t, canvas.Tiles, 2)
	for _, call := range canvas.Tiles {
		assert.Equal(t, v(1, 1), call.SrcPos)
		assert.Equal(t, v(tileWidth-2, tileHeight-2), call.SrcSize)
	}
}

func TestRenderKeepsCanvasColor(t *testing.T) {
	r, canvas := newRenderer(t)
	cyan := color.NRGBA{G: 255, B: 255, A: 127}
	canvas.SetColor(cyan)

	r.Render(canvas, v(1000, 400), v(1800, 100), v(1600, 1000))

	require.NotEmpty(t, canvas.Tiles)
	for _, call := range canvas.Tiles {
		assert.Equal(t, cyan, call.Color)
	}
}

// Each tile's bottom-left, bottom-right and top-left corners must land on the
// right angle and the two leg ends, and the tiles must add up to the input.
func TestRenderCoversTriangle(t *testing.T) {
	triangles := [][3]vecmath.Vec2{
		{v(200, 200), v(500, 200), v(500, 400)},
		{v(800, 200), v(500, 200), v(500, 400)},
		{v(700, 700), v(300, 600), v(200, 500)},
		{v(1000, 400), v(1800, 100), v(1600, 1000)},
		{v(1500, 100), v(1600, 1000), v(1700, 100)},
		{v(100, 600), v(1900, 700), v(100, 800)},
		{v(1900, 700), v(100, 800), v(1900, 900)},
		{v(0, 200), v(1500, 800), v(100, 100)},
		{v(1550, 750), v(100, 100), v(200, 0)},
		// Touching the bottom-right corner forces the tile to be shifted back
		// inside the canvas and rotated about an interior pivot.
		{v(1910, 1070), v(1400, 1075), v(1700, 500)},
	}

	for _, tri := range triangles {
		r, canvas := newRenderer(t)
		r.Render(canvas, tri[0], tri[1], tri[2])

		parts := Decompose(tri[0], tri[1], tri[2])
		require.Len(t, canvas.Tiles, len(parts), "triangle %v", tri)

		total := 0.0
		for i, call := range canvas.Tiles {
			topLeft, bottomLeft, bottomRight := call.Corners()
			assertVec(t, parts[i].B, topLeft, 1e-3, "top-left of %v", tri)
			assertVec(t, parts[i].C, bottomLeft, 1e-3, "right angle of %v", tri)
			assertVec(t, parts[i].A, bottomRight, 1e-3, "bottom-right of %v", tri)

			// The unrotated rectangle never starts outside the canvas.
			assert.LessOrEqual(t, call.Position.X+call.Size.X, float64(canvasWidth)+1e-9)
			assert.LessOrEqual(t, call.Position.Y+call.Size.Y, float64(canvasHeight)+1e-9)

			total += vecmath.Area(topLeft, bottomLeft, bottomRight)
		}
		want := vecmath.Area(tri[0], tri[1], tri[2])
		assert.InDelta(t, want, total, want*1e-6, "area of %v", tri)
	}
}

func TestPlacementPivotRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	size := v(canvasWidth, canvasHeight)

	for i := 0; i < 200; i++ {
		p1 := v(rng.Float64()*canvasWidth, rng.Float64()*canvasHeight)
		p2 := v(rng.Float64()*canvasWidth, rng.Float64()*canvasHeight)
		p3 := v(rng.Float64()*canvasWidth, rng.Float64()*canvasHeight)
		if vecmath.Area(p1, p2, p3) < 1 {
			continue
		}
		for _, part := range Decompose(p1, p2, p3) {
			p := Placement(part.A, part.B, part.C, size)
			back := p.Position.Add(vecmath.Vec2{X: p.Pivot.X * p.Size.X, Y: p.Pivot.Y * p.Size.Y})
			assertVec(t, p.Center, back, 1e-9)
		}
	}
}

func TestPlacementAxisAligned(t *testing.T) {
	// Leg c→a points right: no rotation at all.
	p := Placement(v(400, 300), v(100, 100), v(100, 300), v(canvasWidth, canvasHeight))
	assert.Zero(t, p.Rotation.Yaw)
	assert.Equal(t, v(100, 100), p.Position)
	assert.Equal(t, v(0, 0), p.Pivot)
	assertVec(t, v(300, 200), p.Size, 1e-9)
}

func TestPlacementClampsToCanvas(t *testing.T) {
	size := v(canvasWidth, canvasHeight)
	a, b, c := v(1400, 760), v(1620, 900), v(1500, 700)
	require.Zero(t, vecmath.Dot(a.Sub(c), b.Sub(c)))
	require.Less(t, vecmath.Determinant(a.Sub(c), b.Sub(c)), 0.0)

	p := Placement(a, b, c, size)

	// Only the bottom overflows, so only Y moves.
	assert.Equal(t, b.X, p.Position.X)
	assert.InDelta(t, canvasHeight, p.Position.Y+p.Size.Y, 1e-9)
	assertVec(t, p.Center, p.Position.Add(vecmath.Vec2{X: p.Pivot.X * p.Size.X, Y: p.Pivot.Y * p.Size.Y}), 1e-9)

	m := render.TileTransform(p.Position, p.Rotation, p.Size.X, p.Size.Y, 1, 1, p.Pivot.X, p.Pivot.Y)
	assertVec(t, b, m.Apply(v(0, 0)), 1e-6)
	assertVec(t, c, m.Apply(v(0, 1)), 1e-6)
	assertVec(t, a, m.Apply(v(1, 1)), 1e-6)
}

func TestRotationAngleFollowsLegCA(t *testing.T) {
	p := Placement(v(100, 200), v(0, 100), v(0, 0), v(canvasWidth, canvasHeight))
	assert.InDelta(t, math.Atan2(200, 100), p.Rotation.Radians(), 1e-12)
}
