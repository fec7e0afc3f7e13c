// Package rendertest provides canvas and tile doubles that record what the
// triangle renderer asks the host to draw.
package rendertest

import (
	"image/color"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

// TileCall is one recorded DrawRotatedTile call together with the canvas
// state it was issued under.
type TileCall struct {
	Tile     render.TileImage
	Color    color.Color
	Position vecmath.Vec2
	Rotation render.Rotator
	Size     vecmath.Vec2
	SrcPos   vecmath.Vec2
	SrcSize  vecmath.Vec2
	Pivot    vecmath.Vec2
}

// Transform returns the matrix the call would be drawn with.
func (c TileCall) Transform() render.Affine {
	return render.TileTransform(c.Position, c.Rotation, c.Size.X, c.Size.Y, c.SrcSize.X, c.SrcSize.Y, c.Pivot.X, c.Pivot.Y)
}

// Corners returns where the tile's top-left, bottom-left and bottom-right
// source corners land on the canvas. For the right-triangle tile these are
// the two leg ends and the right-angle corner.
func (c TileCall) Corners() (topLeft, bottomLeft, bottomRight vecmath.Vec2) {
	m := c.Transform()
	return m.Apply(vecmath.Vec2{}),
		m.Apply(vecmath.Vec2{Y: c.SrcSize.Y}),
		m.Apply(c.SrcSize)
}

// FillCall is one recorded FillTriangle call.
type FillCall struct {
	Color  color.Color
	Points [3]vecmath.Vec2
}

// LineCall is one recorded DrawLine call.
type LineCall struct {
	Color color.Color
	From  vecmath.Vec2
	To    vecmath.Vec2
	Width float64
}

// Recorder is a render.Canvas that records every call instead of drawing.
type Recorder struct {
	Width, Height float64

	color    color.Color
	position vecmath.Vec2

	Tiles []TileCall
	Fills []FillCall
	Lines []LineCall
	Texts []string
	// Background is the last color passed to Fill.
	Background color.Color
}

// NewRecorder creates a recorder reporting the given canvas size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, color: color.White}
}

// Reset forgets all recorded calls but keeps the canvas state.
func (r *Recorder) Reset() {
	r.Tiles = nil
	r.Fills = nil
	r.Lines = nil
	r.Texts = nil
}

func (r *Recorder) SetColor(clr color.Color) { r.color = clr }

func (r *Recorder) SetPosition(pos vecmath.Vec2) { r.position = pos }

func (r *Recorder) Size() vecmath.Vec2 { return vecmath.Vec2{X: r.Width, Y: r.Height} }

func (r *Recorder) FillTriangle(p1, p2, p3 vecmath.Vec2) {
	r.Fills = append(r.Fills, FillCall{Color: r.color, Points: [3]vecmath.Vec2{p1, p2, p3}})
}

func (r *Recorder) DrawLine(p1, p2 vecmath.Vec2, width float64) {
	r.Lines = append(r.Lines, LineCall{Color: r.color, From: p1, To: p2, Width: width})
}

func (r *Recorder) DrawRotatedTile(tile render.TileImage, rot render.Rotator, width, height, srcX, srcY, srcW, srcH, pivotX, pivotY float64) {
	r.Tiles = append(r.Tiles, TileCall{
		Tile:     tile,
		Color:    r.color,
		Position: r.position,
		Rotation: rot,
		Size:     vecmath.Vec2{X: width, Y: height},
		SrcPos:   vecmath.Vec2{X: srcX, Y: srcY},
		SrcSize:  vecmath.Vec2{X: srcW, Y: srcH},
		Pivot:    vecmath.Vec2{X: pivotX, Y: pivotY},
	})
}

func (r *Recorder) Fill(clr color.Color) { r.Background = clr }

func (r *Recorder) DrawText(text string, x, y int) { r.Texts = append(r.Texts, text) }

var _ render.Canvas = (*Recorder)(nil)
