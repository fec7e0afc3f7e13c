package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"chosenoffset.com/alphatri/internal/config"
	"chosenoffset.com/alphatri/internal/placeholders"
	"chosenoffset.com/alphatri/internal/render"
	"chosenoffset.com/alphatri/internal/scenes"
)

var (
	app      = kingpin.New("alphatri", "Transparent triangles drawn with rotated right-triangle tiles.")
	cfgPath  = app.Flag("config", "Path to the TOML config.").Default("alphatri.toml").String()
	logLevel = app.Flag("log-level", "Override the configured log level.").String()

	viewCmd = app.Command("view", "Open the interactive viewer.").Default()

	snapshotCmd    = app.Command("snapshot", "Render a scene to a PNG with the software canvas.")
	snapshotScene  = snapshotCmd.Flag("scene", "Scene to render.").Default("basic").Enum(scenes.Names()...)
	snapshotOut    = snapshotCmd.Flag("out", "Output PNG.").Default("alphatri.png").String()
	snapshotWidth  = snapshotCmd.Flag("width", "Canvas width.").Default("1920").Int()
	snapshotHeight = snapshotCmd.Flag("height", "Canvas height.").Default("1080").Int()
	snapshotTile   = snapshotCmd.Flag("tile", "Tile PNG, generated when empty.").String()
	snapshotImgcat = snapshotCmd.Flag("imgcat", "Print the result to an iTerm2 terminal.").Bool()
	snapshotOpaque = snapshotCmd.Flag("opaque", "Draw opaque fills instead of tiles.").Bool()

	gentileCmd  = app.Command("gentile", "Write the right-triangle tile PNG.")
	gentileOut  = gentileCmd.Flag("out", "Output PNG.").Default("triangle.png").String()
	gentileSize = gentileCmd.Flag("size", "Edge length in pixels.").Default(fmt.Sprint(placeholders.TileSize)).Int()

	initCmd = app.Command("init-config", "Write the default config.")
	initOut = initCmd.Flag("out", "Output TOML.").Default("alphatri.toml").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == initCmd.FullCommand() {
		if err := config.Write(*initOut, config.DefaultConfig()); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Println(aurora.Green("wrote"), *initOut)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch command {
	case viewCmd.FullCommand():
		if err := runViewer(cfg); err != nil {
			log.Fatalf("Viewer failed: %v", err)
		}

	case snapshotCmd.FullCommand():
		opts := snapshotOptions{
			Scene:      *snapshotScene,
			Out:        *snapshotOut,
			Width:      *snapshotWidth,
			Height:     *snapshotHeight,
			TilePath:   *snapshotTile,
			TileSize:   cfg.Tile.Size,
			Opaque:     *snapshotOpaque,
			Background: cfg.BackgroundColor(),
		}
		if opts.TilePath == "" {
			opts.TilePath = cfg.Tile.Path
		}
		res, err := snapshot(opts)
		if err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		if !res.Transparent {
			fmt.Println(aurora.Yellow("opaque fallback used"))
		}
		fmt.Printf("%s %s: %d triangles -> %s\n", aurora.Green("rendered"), aurora.Bold(opts.Scene), res.Triangles, opts.Out)
		if *snapshotImgcat {
			preview(opts.Out)
		}

	case gentileCmd.FullCommand():
		if err := placeholders.SaveTriangleTile(*gentileOut, *gentileSize); err != nil {
			log.Fatalf("Failed to generate tile: %v", err)
		}
		fmt.Println(aurora.Green("wrote"), *gentileOut)
	}
}
