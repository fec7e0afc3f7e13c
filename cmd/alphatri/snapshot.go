package main

import (
	"image/color"
	"log"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"chosenoffset.com/alphatri/internal/placeholders"
	"chosenoffset.com/alphatri/internal/render/soft"
	"chosenoffset.com/alphatri/internal/render/triangle"
	"chosenoffset.com/alphatri/internal/scenes"
)

type snapshotOptions struct {
	Scene         string
	Out           string
	Width, Height int
	TilePath      string
	TileSize      int
	Opaque        bool
	Background    color.Color
}

type snapshotResult struct {
	Triangles   int
	Transparent bool
}

// snapshot renders one scene on the software canvas and saves it as PNG.
func snapshot(opts snapshotOptions) (snapshotResult, error) {
	scene, ok := scenes.Lookup(opts.Scene)
	if !ok {
		return snapshotResult{}, errors.Errorf("unknown scene %q", opts.Scene)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return snapshotResult{}, errors.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	canvas := soft.NewCanvas(opts.Width, opts.Height)
	if opts.Background != nil {
		canvas.Fill(opts.Background)
	}

	var r scenes.TriangleRenderer = scenes.Opaque{}
	transparent := false
	if !opts.Opaque {
		var tile *soft.Tile
		if opts.TilePath != "" {
			tile = soft.NewTileFromFile(opts.TilePath)
		} else {
			size := opts.TileSize
			if size < 3 {
				size = placeholders.TileSize
			}
			tile = soft.NewTileFromImage(placeholders.TriangleTile(size))
		}
		tr := triangle.New(tile)
		if !tr.Loaded() {
			log.Printf("Warning: tile unavailable (%v), drawing opaque triangles", tile.Err())
		}
		r, transparent = tr, tr.Loaded()
	}

	scene.Draw(canvas, r, scenes.DrawOptions{})
	if err := canvas.SavePNG(opts.Out); err != nil {
		return snapshotResult{}, err
	}
	return snapshotResult{Triangles: scene.TriangleCount(), Transparent: transparent}, nil
}

func preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}
