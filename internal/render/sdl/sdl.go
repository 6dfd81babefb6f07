// Package sdl implements the render collaborator interfaces on SDL2. The
// engine owns the window, the event pump, and the frame loop; columns are
// drawn as vertical lines on the hardware renderer.
package sdl

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"chosenoffset.com/corridor9/internal/core/input"
	"chosenoffset.com/corridor9/internal/render"
)

// Engine runs the game loop on an SDL window.
type Engine struct {
	width  int
	height int
	title  string
}

// NewEngine creates an engine with a fixed window size.
func NewEngine(width, height int) *Engine {
	return &Engine{width: width, height: height}
}

// SetWindowTitle sets the title used when the window is created.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// Run initializes SDL, opens the window, and drives the loop until the game
// terminates or the window closes. SDL requires its calls to stay on one OS
// thread.
func (e *Engine) Run(game render.Game) error {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(e.width), int32(e.height), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("failed to create SDL window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()
	window.SetTitle(e.title)

	f := &frame{renderer: renderer, width: e.width, height: e.height}

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.Termination) {
				return nil
			}
			return err
		}

		if err := renderer.SetDrawColor(0, 0, 0, 255); err != nil {
			return fmt.Errorf("sdl draw failed: %w", err)
		}
		if err := renderer.Clear(); err != nil {
			return fmt.Errorf("sdl clear failed: %w", err)
		}
		game.Draw(f)
		renderer.Present()
	}
}

// frame draws columns as vertical lines on the SDL renderer.
type frame struct {
	renderer *sdl.Renderer
	width    int
	height   int
}

// Size returns the window size.
func (f *frame) Size() (int, int) {
	return f.width, f.height
}

// DrawColumn paints the three bands of one column with DrawLine.
func (f *frame) DrawColumn(col render.Column) {
	ceiling := clamp(col.CeilingY, 0, f.height)
	floor := clamp(col.FloorY, 0, f.height)
	x := int32(col.X)

	if ceiling > 0 {
		f.renderer.SetDrawColor(col.Ceiling.R, col.Ceiling.G, col.Ceiling.B, 255)
		f.renderer.DrawLine(x, 0, x, int32(ceiling))
	}
	if floor > ceiling {
		f.renderer.SetDrawColor(col.Wall.R, col.Wall.G, col.Wall.B, 255)
		f.renderer.DrawLine(x, int32(ceiling), x, int32(floor))
	}
	if f.height > floor {
		f.renderer.SetDrawColor(col.Floor.R, col.Floor.G, col.Floor.B, 255)
		f.renderer.DrawLine(x, int32(floor), x, int32(f.height))
	}
}

// DrawText is a no-op: SDL2 core has no font rendering and the overlay is
// not worth a TTF dependency here.
func (f *frame) DrawText(text string, x, y int) {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InputSource snapshots the SDL keyboard state once per frame.
type InputSource struct{}

// NewInputSource creates an SDL-backed input source.
func NewInputSource() *InputSource {
	return &InputSource{}
}

// Poll returns the current held-action snapshot. The keyboard state array
// is indexed by scancode, 1 while held.
func (s *InputSource) Poll() input.Snapshot {
	keys := sdl.GetKeyboardState()
	return input.Snapshot{
		Forward:     keys[sdl.SCANCODE_W] == 1,
		Back:        keys[sdl.SCANCODE_S] == 1,
		StrafeLeft:  keys[sdl.SCANCODE_A] == 1,
		StrafeRight: keys[sdl.SCANCODE_D] == 1,
		TurnLeft:    keys[sdl.SCANCODE_LEFT] == 1,
		TurnRight:   keys[sdl.SCANCODE_RIGHT] == 1,
		Sprint:      keys[sdl.SCANCODE_LSHIFT] == 1,
		Quit:        keys[sdl.SCANCODE_ESCAPE] == 1,
	}
}
