package game

import (
	"errors"
	"testing"
	"time"

	"chosenoffset.com/corridor9/internal/core/input"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

// fakeInput hands the same snapshot to every poll.
type fakeInput struct {
	snap input.Snapshot
}

func (f *fakeInput) Poll() input.Snapshot { return f.snap }

// fakeFrame records everything drawn to it.
type fakeFrame struct {
	width   int
	height  int
	columns []render.Column
	texts   []string
}

func (f *fakeFrame) Size() (int, int)             { return f.width, f.height }
func (f *fakeFrame) DrawColumn(col render.Column) { f.columns = append(f.columns, col) }
func (f *fakeFrame) DrawText(text string, x, y int) {
	f.texts = append(f.texts, text)
}

func TestUpdateQuitTerminates(t *testing.T) {
	g := New(maploader.DefaultLevel(), &fakeInput{snap: input.Snapshot{Quit: true}}, false)

	err := g.Update()
	if !errors.Is(err, render.Termination) {
		t.Errorf("Expected Termination on quit, got %v", err)
	}
}

func TestUpdateAppliesMovement(t *testing.T) {
	src := &fakeInput{snap: input.Snapshot{Forward: true}}
	g := New(maploader.DefaultLevel(), src, false)
	start := g.Player()

	// The frame timer reads the real clock, so give it a measurable frame.
	time.Sleep(5 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	p := g.Player()
	if p.X <= start.X {
		t.Errorf("Expected forward movement along +x from angle 0, got X %f -> %f", start.X, p.X)
	}
	if p.Y != start.Y {
		t.Errorf("Expected no lateral movement, got Y %f -> %f", start.Y, p.Y)
	}
}

func TestDrawPaintsEveryColumn(t *testing.T) {
	g := New(maploader.DefaultLevel(), &fakeInput{}, false)
	frame := &fakeFrame{width: 64, height: 48}

	g.Draw(frame)

	if len(frame.columns) != 64 {
		t.Fatalf("Expected 64 columns, got %d", len(frame.columns))
	}
	for i, col := range frame.columns {
		if col.X != i {
			t.Errorf("Column %d drawn at X %d", i, col.X)
		}
		if col.FloorY != 48-col.CeilingY {
			t.Errorf("Column %d: floor %d is not mirrored from ceiling %d", i, col.FloorY, col.CeilingY)
		}
		if col.Wall.R != col.Wall.G || col.Wall.G != col.Wall.B {
			t.Errorf("Column %d: wall color %v is not grayscale", i, col.Wall)
		}
	}
}

func TestDrawReusesHitBufferAcrossResizes(t *testing.T) {
	g := New(maploader.DefaultLevel(), &fakeInput{}, false)

	wide := &fakeFrame{width: 80, height: 48}
	g.Draw(wide)
	narrow := &fakeFrame{width: 32, height: 48}
	g.Draw(narrow)

	if len(narrow.columns) != 32 {
		t.Errorf("Expected 32 columns after shrinking, got %d", len(narrow.columns))
	}
}

func TestDrawSkipsDegenerateFrame(t *testing.T) {
	g := New(maploader.DefaultLevel(), &fakeInput{}, true)
	frame := &fakeFrame{width: 0, height: 0}

	g.Draw(frame)

	if len(frame.columns) != 0 || len(frame.texts) != 0 {
		t.Errorf("Expected nothing drawn to a zero-size frame, got %d columns, %d texts",
			len(frame.columns), len(frame.texts))
	}
}

func TestHUDVisibility(t *testing.T) {
	hidden := &fakeFrame{width: 16, height: 16}
	New(maploader.DefaultLevel(), &fakeInput{}, false).Draw(hidden)
	if len(hidden.texts) != 0 {
		t.Errorf("Expected no overlay text with HUD hidden, got %v", hidden.texts)
	}

	shown := &fakeFrame{width: 16, height: 16}
	New(maploader.DefaultLevel(), &fakeInput{}, true).Draw(shown)
	if len(shown.texts) != 2 {
		t.Errorf("Expected FPS and pose lines with HUD shown, got %v", shown.texts)
	}
}
