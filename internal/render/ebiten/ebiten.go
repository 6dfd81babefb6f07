// Package ebiten implements the render collaborator interfaces on
// Ebitengine.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/corridor9/internal/core/input"
	"chosenoffset.com/corridor9/internal/render"
)

// Engine runs the game loop under ebiten's window management.
type Engine struct {
	width  int
	height int
}

// NewEngine creates an engine with a fixed logical screen size.
func NewEngine(width, height int) *Engine {
	return &Engine{width: width, height: height}
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Run drives the game loop until the game terminates or the window closes.
func (e *Engine) Run(game render.Game) error {
	ebiten.SetWindowSize(e.width, e.height)
	return ebiten.RunGame(&gameAdapter{game: game, width: e.width, height: e.height})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	width  int
	height int
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&frame{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// frame wraps the per-frame ebiten image as a render.Frame.
type frame struct {
	img *ebiten.Image
}

// Size returns the logical screen size.
func (f *frame) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// DrawColumn paints the three bands of one column as 1px filled rects.
func (f *frame) DrawColumn(col render.Column) {
	_, h := f.Size()
	ceiling := clamp(col.CeilingY, 0, h)
	floor := clamp(col.FloorY, 0, h)
	x := float32(col.X)

	if ceiling > 0 {
		vector.DrawFilledRect(f.img, x, 0, 1, float32(ceiling), col.Ceiling, false)
	}
	if floor > ceiling {
		vector.DrawFilledRect(f.img, x, float32(ceiling), 1, float32(floor-ceiling), col.Wall, false)
	}
	if h > floor {
		vector.DrawFilledRect(f.img, x, float32(floor), 1, float32(h-floor), col.Floor, false)
	}
}

// DrawText draws overlay text with the debug font.
func (f *frame) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(f.img, text, x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InputSource reads the held-key state from ebiten once per frame.
type InputSource struct{}

// NewInputSource creates an ebiten-backed input source.
func NewInputSource() *InputSource {
	return &InputSource{}
}

// Poll returns the current held-action snapshot. WASD moves and strafes,
// the arrow keys turn, shift sprints, escape quits.
func (s *InputSource) Poll() input.Snapshot {
	return input.Snapshot{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Sprint:      ebiten.IsKeyPressed(ebiten.KeyShift),
		Quit:        ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}
