// Package soft is a software render.Canvas drawing into an in-memory RGBA
// image. It needs no window or GPU, which makes it suitable for snapshots
// and pixel tests.
package soft

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"chosenoffset.com/alphatri/internal/core/vecmath"
	"chosenoffset.com/alphatri/internal/render"
)

// textHeight is the line height of gg's default 7x13 font.
const textHeight = 13

// Canvas implements render.Canvas on an *image.RGBA.
type Canvas struct {
	img      *image.RGBA
	dc       *gg.Context
	color    color.Color
	position vecmath.Vec2
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
	c.SetColor(color.White)
	return c
}

// SetColor sets the color that tints subsequent draws.
func (c *Canvas) SetColor(clr color.Color) {
	c.color = clr
	c.dc.SetColor(clr)
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

// FillTriangle fills the triangle in the current color.
func (c *Canvas) FillTriangle(p1, p2, p3 vecmath.Vec2) {
	c.dc.MoveTo(p1.X, p1.Y)
	c.dc.LineTo(p2.X, p2.Y)
	c.dc.LineTo(p3.X, p3.Y)
	c.dc.ClosePath()
	c.dc.Fill()
}

// DrawLine strokes a line of the given width in the current color.
func (c *Canvas) DrawLine(p1, p2 vecmath.Vec2, width float64) {
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.dc.Stroke()
}

// DrawRotatedTile resamples a tinted region of tile onto the canvas with
// bilinear filtering, composited over the existing pixels.
func (c *Canvas) DrawRotatedTile(tile render.TileImage, rot render.Rotator, width, height, srcX, srcY, srcW, srcH, pivotX, pivotY float64) {
	t, ok := tile.(*Tile)
	if !ok || t.img == nil {
		render.Logger().Warn("software canvas cannot draw tile", "tile", tile)
		return
	}

	sr := image.Rect(int(srcX), int(srcY), int(srcX+srcW), int(srcY+srcH)).Intersect(t.img.Bounds())
	src := tint(t.img, sr, c.color)

	// TileTransform works relative to the region's top-left; the resampler
	// wants absolute source coordinates.
	m := render.TileTransform(c.position, rot, width, height, srcW, srcH, pivotX, pivotY).PreTranslate(-srcX, -srcY)
	s2d := f64.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]}
	draw.BiLinear.Transform(c.img, s2d, src, sr, draw.Over, nil)
}

// Fill fills the entire canvas with the given color, replacing its pixels.
func (c *Canvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// DrawText draws text with its top-left corner at (x, y) in the current color.
func (c *Canvas) DrawText(text string, x, y int) {
	c.dc.DrawString(text, float64(x), float64(y+textHeight))
}

// Image returns the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := gg.SavePNG(path, c.img); err != nil {
		return errors.Wrapf(err, "failed to save canvas to %s", path)
	}
	return nil
}

// tint returns the sr region of src multiplied by clr.
func tint(src image.Image, sr image.Rectangle, clr color.Color) *image.RGBA {
	cr, cg, cb, ca := clr.RGBA()
	dst := image.NewRGBA(sr)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(r * cr / 0xffff >> 8),
				G: uint8(g * cg / 0xffff >> 8),
				B: uint8(b * cb / 0xffff >> 8),
				A: uint8(a * ca / 0xffff >> 8),
			})
		}
	}
	return dst
}

var _ render.Canvas = (*Canvas)(nil)
