package main

import (
	"log"

	"chosenoffset.com/alphatri/internal/config"
	"chosenoffset.com/alphatri/internal/placeholders"
	ebitenrender "chosenoffset.com/alphatri/internal/render/ebiten"
	"chosenoffset.com/alphatri/internal/render/triangle"
	"chosenoffset.com/alphatri/internal/scenes"
	"chosenoffset.com/alphatri/internal/viewer"
)

func runViewer(cfg *config.Config) error {
	var tile *ebitenrender.Tile
	if cfg.Tile.Path != "" {
		tile = ebitenrender.NewTileFromFile(cfg.Tile.Path)
	} else {
		tile = ebitenrender.NewTileFromImage(placeholders.TriangleTile(cfg.Tile.Size))
	}

	var list []scenes.Scene
	for _, name := range cfg.Viewer.Scenes {
		s, _ := scenes.Lookup(name)
		list = append(list, s)
	}

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	renderer := triangle.New(tile)
	if !renderer.Loaded() {
		log.Printf("Warning: tile unavailable (%v), drawing opaque triangles", tile.Err())
	}

	v, err := viewer.New(renderer, ebitenrender.NewInputManager(), viewer.Options{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Scenes:       list,
		Background:   cfg.BackgroundColor(),
		Outline:      cfg.Viewer.Outline,
		OutlineWidth: cfg.Viewer.OutlineWidth,
	})
	if err != nil {
		return err
	}

	log.Println("Starting viewer...")
	return engine.RunGame(v)
}
