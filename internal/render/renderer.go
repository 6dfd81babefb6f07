// Package render defines the collaborator surface between the raycasting
// core and a platform backend: a per-frame drawing target, an input
// snapshot source, and an engine that owns the platform loop. Game logic
// never imports a backend directly, so backends can be swapped without
// touching the simulation.
package render

import (
	"errors"
	"image/color"

	"chosenoffset.com/corridor9/internal/core/input"
)

// Termination is returned by Game.Update to end the loop cleanly. Engines
// treat it as a normal shutdown, not an error.
var Termination = errors.New("game terminated")

// Column describes the three vertical bands of one screen column: ceiling
// above CeilingY, wall between CeilingY and FloorY, floor below FloorY.
// CeilingY may be negative (and FloorY past the bottom) for very close
// walls; frames clamp to their own bounds when drawing.
type Column struct {
	X        int
	CeilingY int
	FloorY   int
	Wall     color.RGBA
	Ceiling  color.RGBA
	Floor    color.RGBA
}

// Frame is the drawing target for one frame.
type Frame interface {
	// Size returns the frame dimensions. Width drives how many columns the
	// game casts; backends with resizable surfaces may change it between
	// frames.
	Size() (width, height int)

	// DrawColumn paints one screen column's ceiling/wall/floor bands.
	DrawColumn(col Column)

	// DrawText draws an overlay string at the given pixel position.
	// Backends without text support may drop it.
	DrawText(text string, x, y int)
}

// InputSource supplies the held-action snapshot for the current frame.
type InputSource interface {
	Poll() input.Snapshot
}

// Game is the per-frame contract an engine drives: Update advances the
// simulation, Draw paints the frame. Update returning Termination stops
// the engine without error.
type Game interface {
	Update() error
	Draw(frame Frame)
}

// Engine owns the platform window (or terminal) and the frame loop.
type Engine interface {
	SetWindowTitle(title string)

	// Run drives the game loop until the game terminates or the platform
	// closes. This is a blocking call.
	Run(game Game) error
}
