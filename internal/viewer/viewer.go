// Package viewer is the interactive demo: it cycles through the demo scenes
// and lets the user compare the tile renderer with plain opaque fills.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"

	"chosenoffset.com/alphatri/internal/render"
	"chosenoffset.com/alphatri/internal/scenes"
)

// Options configures a Viewer.
type Options struct {
	Width, Height int
	Scenes        []scenes.Scene
	Background    color.Color
	Outline       bool
	OutlineWidth  float64
}

// Viewer implements render.Game.
type Viewer struct {
	width, height int
	scenes        []scenes.Scene
	index         int
	background    color.Color
	outline       bool
	outlineWidth  float64
	opaque        bool

	renderer scenes.TriangleRenderer
	input    render.InputManager

	FrameCount int
}

// New creates a viewer that draws with r and reads keys from input.
func New(r scenes.TriangleRenderer, input render.InputManager, opts Options) (*Viewer, error) {
	if len(opts.Scenes) == 0 {
		return nil, errors.New("viewer needs at least one scene")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid viewer size %dx%d", opts.Width, opts.Height)
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	return &Viewer{
		width:        opts.Width,
		height:       opts.Height,
		scenes:       opts.Scenes,
		background:   bg,
		outline:      opts.Outline,
		outlineWidth: opts.OutlineWidth,
		renderer:     r,
		input:        input,
	}, nil
}

// Scene returns the scene currently shown.
func (v *Viewer) Scene() scenes.Scene {
	return v.scenes[v.index]
}

// Outline reports whether triangle outlines are drawn.
func (v *Viewer) Outline() bool { return v.outline }

// Opaque reports whether the opaque fill path is used instead of tiles.
func (v *Viewer) Opaque() bool { return v.opaque }

// Update handles key presses. Escape ends the loop with render.ErrQuit.
func (v *Viewer) Update() error {
	switch {
	case v.input.IsKeyJustPressed(render.KeyEscape):
		return render.ErrQuit
	case v.input.IsKeyJustPressed(render.KeySpace), v.input.IsKeyJustPressed(render.KeyRight):
		v.step(1)
	case v.input.IsKeyJustPressed(render.KeyLeft):
		v.step(-1)
	}

	if v.input.IsKeyJustPressed(render.KeyO) {
		v.outline = !v.outline
	}
	if v.input.IsKeyJustPressed(render.KeyF) {
		v.opaque = !v.opaque
		render.Logger().Debug("fill mode changed", "opaque", v.opaque)
	}
	return nil
}

func (v *Viewer) step(delta int) {
	n := len(v.scenes)
	v.index = ((v.index+delta)%n + n) % n
	render.Logger().Debug("scene changed", "scene", v.Scene().Name, "index", v.index)
}

// Draw renders the current scene and a caption.
func (v *Viewer) Draw(screen render.Canvas) {
	v.FrameCount++
	screen.Fill(v.background)

	r := v.renderer
	if v.opaque {
		r = scenes.Opaque{}
	}
	v.Scene().Draw(screen, r, scenes.DrawOptions{Outline: v.outline, OutlineWidth: v.outlineWidth})

	screen.DrawText(v.caption(), 8, 8)
}

func (v *Viewer) caption() string {
	mode := "transparent"
	if v.opaque {
		mode = "opaque"
	}
	s := v.Scene()
	return fmt.Sprintf("%s (%d/%d): %s | %s | space/arrows: scene, o: outline, f: fill mode, esc: quit",
		s.Name, v.index+1, len(v.scenes), s.Description, mode)
}

// Layout keeps the configured logical size regardless of the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
