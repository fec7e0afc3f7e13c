// Package triangle draws alpha-blended triangles on canvases that can only
// blend rotated image tiles.
//
// Any triangle is split into at most two right triangles. Each right triangle
// is covered by one draw of a right-triangle tile: an image whose opaque half
// has its right angle in the bottom-left corner and its hypotenuse running
// from the top-left to the bottom-right corner.
package triangle

import (
	"math"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

// rightAngleEpsilon is the single-precision machine epsilon. Adjacent edges
// whose normalized dot product is below it are treated as perpendicular.
const rightAngleEpsilon = 1.1920929e-07

// tileBorder is trimmed from each side of the tile to avoid sampling
// artifacts at its edges.
const tileBorder = 1

// Renderer renders transparent triangles with a shared right-triangle tile.
type Renderer struct {
	tile   render.TileImage
	loaded bool
}

// New creates a renderer for the given tile, loading it if needed. The load
// outcome is final: if it fails, every Render falls back to an opaque fill.
func New(tile render.TileImage) *Renderer {
	r := &Renderer{tile: tile}
	if tile.IsLoadedForCanvas() {
		r.loaded = true
	} else {
		r.loaded = tile.LoadForCanvas()
	}

	if !r.loaded {
		render.Logger().Warn("triangle tile failed to load, rendering opaque triangles")
	}
	return r
}

// Loaded reports whether the tile loaded and transparent rendering is used.
func (r *Renderer) Loaded() bool {
	return r.loaded
}

// Render draws triangle p1 p2 p3 with the canvas's current color. The points
// may be in any order. Degenerate (zero-area) triangles are not supported and
// draw unspecified output.
func (r *Renderer) Render(canvas render.Canvas, p1, p2, p3 vecmath.Vec2) {
	if !r.loaded {
		canvas.FillTriangle(p1, p2, p3)
		return
	}

	for _, tri := range Decompose(p1, p2, p3) {
		r.renderRightTriangle(canvas, tri.A, tri.B, tri.C)
	}
}

// renderRightTriangle draws right triangle abc. The right angle must be at c
// and a, b, c must wind counter-clockwise. To avoid clipping at the canvas
// edge the tile is kept fully inside the canvas before rotation.
func (r *Renderer) renderRightTriangle(canvas render.Canvas, a, b, c vecmath.Vec2) {
	tileStart := vecmath.Vec2{X: tileBorder, Y: tileBorder}
	w, h := r.tile.SizeF()
	tileSize := vecmath.Vec2{X: w, Y: h}.SubScalar(2 * tileBorder)

	p := Placement(a, b, c, canvas.Size())
	canvas.SetPosition(p.Position)
	canvas.DrawRotatedTile(
		r.tile,
		p.Rotation,
		p.Size.X, p.Size.Y,
		tileStart.X, tileStart.Y,
		tileSize.X, tileSize.Y,
		p.Pivot.X, p.Pivot.Y,
	)
}

// TilePlacement describes where a tile goes so that its opaque half covers a
// right triangle. Position is the unrotated top-left of the destination
// rectangle, whose width runs along c→a and height along c→b. Pivot is the
// fractional point of that rectangle held fixed while rotating, and Center is
// the same point in canvas coordinates.
type TilePlacement struct {
	Position vecmath.Vec2
	Size     vecmath.Vec2
	Rotation render.Rotator
	Pivot    vecmath.Vec2
	Center   vecmath.Vec2
}

// Placement computes the tile placement for right triangle abc (right angle at
// c, counter-clockwise) on a canvas of the given size.
func Placement(a, b, c, canvasSize vecmath.Vec2) TilePlacement {
	size := vecmath.Vec2{X: vecmath.Distance(a, c), Y: vecmath.Distance(b, c)}
	leg := a.Sub(c)
	p := TilePlacement{
		Size:     size,
		Rotation: render.RotatorFromRadians(math.Atan2(leg.Y, leg.X)),
	}

	if a.Y == c.Y {
		// No pivot needed: the tile either stays put or turns half way about b.
		p.Position = b
		p.Center = b
		return p
	}

	// Minimize the translation to avoid artifacts and inconsistencies.
	topLeft := b
	overflow := topLeft.Add(size).Sub(canvasSize)
	if overflow.X > 0 {
		topLeft.X -= overflow.X
	}
	if overflow.Y > 0 {
		topLeft.Y -= overflow.Y
	}
	bottomRight := topLeft.Add(size)

	p.Position = topLeft
	p.Center = vecmath.RotationCenter(topLeft, b, bottomRight, a)
	p.Pivot = p.Center.Sub(topLeft).Div(size)
	return p
}
