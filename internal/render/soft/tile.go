package soft

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"chosenoffset.com/alphatri/internal/render"
)

// Tile is a render.TileImage holding a decoded image.
type Tile struct {
	path  string
	img   image.Image
	tried bool
	err   error
}

// NewTileFromFile returns a tile that decodes the PNG at path on demand.
func NewTileFromFile(path string) *Tile {
	return &Tile{path: path}
}

// NewTileFromImage returns an already loaded tile.
func NewTileFromImage(img image.Image) *Tile {
	return &Tile{img: img}
}

func (t *Tile) IsLoadedForCanvas() bool {
	return t.img != nil
}

func (t *Tile) LoadForCanvas() bool {
	if t.img != nil {
		return true
	}
	if t.tried {
		return false
	}
	t.tried = true

	if t.path == "" {
		t.err = errors.New("tile has neither a path nor an image")
		return false
	}
	img, err := gg.LoadPNG(t.path)
	if err != nil {
		t.err = errors.Wrapf(err, "failed to load tile image %s", t.path)
		render.Logger().Warn("tile load failed", "error", t.err)
		return false
	}
	t.img = img
	return true
}

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
