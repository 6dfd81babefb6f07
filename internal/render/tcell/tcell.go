// Package tcell implements the render collaborator interfaces on a
// terminal screen. Wall intensity maps to block-element runes, and the
// engine drives its own ticker-paced loop since terminals have no vsync.
//
// Terminals report key presses rather than held state, so the input source
// latches each key event for the frame it arrives on; holding a key relies
// on the terminal's auto-repeat.
package tcell

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/corridor9/internal/core/input"
	"chosenoffset.com/corridor9/internal/render"
)

// frameTick paces the loop; terminals gain nothing from running faster.
const frameTick = 15 * time.Millisecond

// Engine runs the game loop on a tcell screen.
type Engine struct {
	title string
	input *InputSource
}

// NewEngine creates a terminal engine. The screen size is whatever the
// terminal provides; requested window dimensions do not apply.
func NewEngine() *Engine {
	return &Engine{input: &InputSource{}}
}

// SetWindowTitle sets the terminal title where supported.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// Input returns the input source fed by this engine's event stream.
func (e *Engine) Input() *InputSource {
	return e.input
}

// Run initializes the screen and drives the loop until the game terminates.
func (e *Engine) Run(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	if e.title != "" {
		screen.SetTitle(e.title)
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()

	f := &frame{screen: screen}

	for {
		e.input.beginFrame()
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					e.input.handleKey(ev)
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.Termination) {
				return nil
			}
			return err
		}

		game.Draw(f)
		screen.Show()

		<-ticker.C
	}
}

// frame draws columns as runes on the terminal screen.
type frame struct {
	screen tcell.Screen
}

// Size returns the terminal size in cells.
func (f *frame) Size() (int, int) {
	return f.screen.Size()
}

// DrawColumn paints one column: ceiling cells on a colored background, wall
// cells as shade runes by intensity, floor cells banded by depth below the
// horizon.
func (f *frame) DrawColumn(col render.Column) {
	_, h := f.screen.Size()
	ceiling := clamp(col.CeilingY, 0, h)
	floor := clamp(col.FloorY, 0, h)

	ceilingStyle := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(col.Ceiling.R), int32(col.Ceiling.G), int32(col.Ceiling.B)))
	wallStyle := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(col.Wall.R), int32(col.Wall.G), int32(col.Wall.B))).
		Background(tcell.ColorBlack)
	floorStyle := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(col.Floor.R), int32(col.Floor.G), int32(col.Floor.B))).
		Background(tcell.ColorBlack)

	wallRune := shadeRune(col.Wall.R)

	for y := 0; y < ceiling; y++ {
		f.screen.SetContent(col.X, y, ' ', nil, ceilingStyle)
	}
	for y := ceiling; y < floor; y++ {
		f.screen.SetContent(col.X, y, wallRune, nil, wallStyle)
	}
	for y := floor; y < h; y++ {
		f.screen.SetContent(col.X, y, floorRune(y, h), nil, floorStyle)
	}
}

// DrawText draws an overlay string, one cell per rune.
func (f *frame) DrawText(text string, x, y int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack)
	for i, r := range text {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

// shadeRune picks a block-element density for a wall intensity.
func shadeRune(intensity uint8) rune {
	switch {
	case intensity >= 192:
		return '█'
	case intensity >= 128:
		return '▓'
	case intensity >= 64:
		return '▒'
	case intensity > 0:
		return '░'
	default:
		return ' '
	}
}

// floorRune fades the floor with distance from the bottom of the screen
// toward the horizon.
func floorRune(y, screenHeight int) rune {
	b := 1.0 - (float64(y)-float64(screenHeight)/2.0)/(float64(screenHeight)/2.0)
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	default:
		return ' '
	}
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

// InputSource latches key events into a per-frame snapshot. It is only
// touched from the engine goroutine.
type InputSource struct {
	snap input.Snapshot
}

// beginFrame clears the latched actions. Quit stays sticky so a quit seen
// mid-frame is never lost.
func (s *InputSource) beginFrame() {
	quit := s.snap.Quit
	s.snap = input.Snapshot{Quit: quit}
}

func (s *InputSource) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.snap.Quit = true
	case tcell.KeyLeft:
		s.snap.TurnLeft = true
	case tcell.KeyRight:
		s.snap.TurnRight = true
	case tcell.KeyUp:
		s.snap.Forward = true
	case tcell.KeyDown:
		s.snap.Back = true
	case tcell.KeyRune:
		r := ev.Rune()
		// Shift+WASD arrives as an uppercase rune: same action, sprinting.
		if unicode.IsUpper(r) {
			s.snap.Sprint = true
		}
		switch unicode.ToLower(r) {
		case 'w':
			s.snap.Forward = true
		case 's':
			s.snap.Back = true
		case 'a':
			s.snap.StrafeLeft = true
		case 'd':
			s.snap.StrafeRight = true
		case 'q':
			s.snap.Quit = true
		}
	}
}

// Poll returns the actions latched since the previous frame.
func (s *InputSource) Poll() input.Snapshot {
	return s.snap
}
