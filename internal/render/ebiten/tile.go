package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"

	"chosenoffset.com/alphatri/internal/render"
)

// Tile is a render.TileImage backed by an ebiten image. File-backed tiles are
// read on the first LoadForCanvas; a failed read is not retried.
type Tile struct {
	path  string
	src   image.Image
	img   *ebiten.Image
	tried bool
	err   error
}

// NewTileFromFile returns a tile that loads the image at path on demand.
func NewTileFromFile(path string) *Tile {
	return &Tile{path: path}
}

// NewTileFromImage returns a tile for an in-memory image. It is uploaded on
// the first LoadForCanvas.
func NewTileFromImage(src image.Image) *Tile {
	return &Tile{src: src}
}

// IsLoadedForCanvas reports whether the tile is ready to draw.
func (t *Tile) IsLoadedForCanvas() bool {
	return t.img != nil
}

// LoadForCanvas loads the tile and reports success.
func (t *Tile) LoadForCanvas() bool {
	if t.img != nil {
		return true
	}
	if t.tried {
		return false
	}
	t.tried = true

	switch {
	case t.src != nil:
		t.img = ebiten.NewImageFromImage(t.src)
	case t.path != "":
		img, _, err := ebitenutil.NewImageFromFile(t.path)
		if err != nil {
			t.err = errors.Wrapf(err, "failed to load tile image %s", t.path)
			render.Logger().Warn("tile load failed", "error", t.err)
			return false
		}
		t.img = img
	default:
		t.err = errors.New("tile has neither a path nor an image")
		return false
	}
	return true
}

// SizeF returns the image size in pixels, or zero before loading.
func (t *Tile) SizeF() (float64, float64) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Err returns the load error, if any.
func (t *Tile) Err() error {
	return t.err
}

var _ render.TileImage = (*Tile)(nil)
