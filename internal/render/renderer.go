package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/alphatri/internal/core/vecmath"
)

// Canvas is the drawing surface the triangle renderer talks to. It abstracts
// the underlying graphics engine so the same geometry runs against the
// interactive backend, the software backend and test recorders.
//
// A canvas carries state: the current color tints every fill, line and tile,
// and the current position is the unrotated origin of the next tile.
type Canvas interface {
	// State
	SetColor(clr color.Color)
	SetPosition(pos vecmath.Vec2)
	Size() vecmath.Vec2

	// Opaque primitives
	FillTriangle(p1, p2, p3 vecmath.Vec2)
	DrawLine(p1, p2 vecmath.Vec2, width float64)

	// DrawRotatedTile draws the (srcX, srcY, srcW, srcH) region of tile scaled
	// to width x height at the current position, rotated by rot about the
	// fractional pivot (pivotX, pivotY) of the destination rectangle.
	DrawRotatedTile(tile TileImage, rot Rotator, width, height, srcX, srcY, srcW, srcH, pivotX, pivotY float64)

	// Host helpers, not used by the triangle renderer
	Fill(clr color.Color)
	DrawText(text string, x, y int)
}

// TileImage is an image resource that can be drawn as a tile. Loading is
// explicit so callers can detect failure once and fall back.
type TileImage interface {
	IsLoadedForCanvas() bool
	LoadForCanvas() bool
	SizeF() (width, height float64)
}

// ErrQuit is returned from Game.Update to end the main loop normally.
var ErrQuit = errors.New("quit")

// Game represents the application interface that the engine will call.
type Game interface {
	// Update updates the application state. It is called every tick.
	Update() error

	// Draw draws the current frame.
	Draw(screen Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the main loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the main loop with the provided game.
	// This is a blocking call that runs until the window closes.
	RunGame(game Game) error
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer reacts to
const (
	KeySpace Key = iota
	KeyLeft
	KeyRight
	KeyO // Outline toggle
	KeyF // Opaque fallback toggle
	KeyEscape
)
