package rendertest

import "chosenoffset.com/alphatri/internal/render"

// Tile is a render.TileImage with a scripted load outcome.
type Tile struct {
	Width, Height float64

	// Loaded is the initial IsLoadedForCanvas state.
	Loaded bool
	// LoadResult is what LoadForCanvas returns and becomes the loaded state.
	LoadResult bool

	LoadCalls int
}

// NewTile returns a tile that loads successfully on demand.
func NewTile(width, height float64) *Tile {
	return &Tile{Width: width, Height: height, LoadResult: true}
}

// NewBrokenTile returns a tile whose load always fails.
func NewBrokenTile(width, height float64) *Tile {
	return &Tile{Width: width, Height: height}
}

func (t *Tile) IsLoadedForCanvas() bool { return t.Loaded }

func (t *Tile) LoadForCanvas() bool {
	t.LoadCalls++
	t.Loaded = t.LoadResult
	return t.Loaded
}

func (t *Tile) SizeF() (float64, float64) { return t.Width, t.Height }

var _ render.TileImage = (*Tile)(nil)
