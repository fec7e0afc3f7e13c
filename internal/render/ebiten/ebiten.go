package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage. Use it as the
	// source of DrawTriangles so edge pixels are never sampled.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements render.Canvas on top of an ebiten image.
type Canvas struct {
	img      *ebiten.Image
	color    color.Color
	position vecmath.Vec2
}

// NewCanvas wraps an ebiten image. The current color starts as opaque white.
func NewCanvas(img *ebiten.Image) *Canvas {
	return &Canvas{img: img, color: color.White}
}

// SetColor sets the color that tints subsequent draws.
func (c *Canvas) SetColor(clr color.Color) {
	c.color = clr
}

// SetPosition sets the unrotated origin of the next tile.
func (c *Canvas) SetPosition(pos vecmath.Vec2) {
	c.position = pos
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() vecmath.Vec2 {
	b := c.img.Bounds()
	return vecmath.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
}

// FillTriangle draws an opaque-geometry triangle in the current color.
func (c *Canvas) FillTriangle(p1, p2, p3 vecmath.Vec2) {
	r, g, b, a := colorScale(c.color)
	vertices := make([]ebiten.Vertex, 0, 3)
	for _, p := range []vecmath.Vec2{p1, p2, p3} {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	c.img.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawLine strokes a line of the given width in the current color.
func (c *Canvas) DrawLine(p1, p2 vecmath.Vec2, width float64) {
	vector.StrokeLine(c.img, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), float32(width), c.color, true)
}

// DrawRotatedTile draws a region of tile scaled to width x height at the
// current position, rotated about the fractional pivot.
func (c *Canvas) DrawRotatedTile(tile render.TileImage, rot render.Rotator, width, height, srcX, srcY, srcW, srcH, pivotX, pivotY float64) {
	t, ok := tile.(*Tile)
	if !ok || t.img == nil {
		render.Logger().Warn("ebiten canvas cannot draw tile", "tile", tile)
		return
	}

	src := t.img.SubImage(image.Rect(int(srcX), int(srcY), int(srcX+srcW), int(srcY+srcH))).(*ebiten.Image)
	m := render.TileTransform(c.position, rot, width, height, srcW, srcH, pivotX, pivotY)

	opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	opts.GeoM.SetElement(0, 0, m[0])
	opts.GeoM.SetElement(0, 1, m[1])
	opts.GeoM.SetElement(0, 2, m[2])
	opts.GeoM.SetElement(1, 0, m[3])
	opts.GeoM.SetElement(1, 1, m[4])
	opts.GeoM.SetElement(1, 2, m[5])
	opts.ColorScale.ScaleWithColor(c.color)
	c.img.DrawImage(src, opts)
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

// DrawText draws text using the debug font.
// Note: the debug font is always white; the current color is ignored.
func (c *Canvas) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(c.img, text, x, y)
}

// Image returns the underlying ebiten image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// colorScale converts a color to straight-alpha vertex color scales.
func colorScale(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

var _ render.Canvas = (*Canvas)(nil)
