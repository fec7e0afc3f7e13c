// Package placeholders generates the tile images the renderer needs, so the
// demo runs without any asset on disk.
package placeholders

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// TileSize is the default edge length of the generated triangle tile
const TileSize = 256

// TriangleTile creates a square tile whose lower-left half is opaque white:
// the right angle sits in the bottom-left corner and the hypotenuse runs
// from the top-left to the bottom-right corner. Everything else is
// transparent. White lets the canvas color tint it freely.
func TriangleTile(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(img)

	s := float64(size)
	dc.MoveTo(0, 0)
	dc.LineTo(0, s)
	dc.LineTo(s, s)
	dc.ClosePath()
	dc.SetColor(color.White)
	dc.Fill()

	return img
}

// SaveTriangleTile writes a generated triangle tile to a PNG file
func SaveTriangleTile(path string, size int) error {
	if size < 3 {
		return errors.Errorf("tile size must be at least 3, got %d", size)
	}
	if err := gg.SavePNG(path, TriangleTile(size)); err != nil {
		return errors.Wrapf(err, "failed to save triangle tile %s", path)
	}
	return nil
}
