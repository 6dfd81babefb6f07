// Package game wires the simulation core to the render contract: it owns the
// per-frame update (input, timing, movement) and the per-frame draw (cast,
// project, shade, paint). It knows nothing about any concrete backend.
package game

import (
	"image/color"

	"chosenoffset.com/corridor9/internal/core/player"
	"chosenoffset.com/corridor9/internal/core/raycast"
	"chosenoffset.com/corridor9/internal/core/timing"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/ui/hud"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

// Game runs one level. It implements render.Game, so any engine can drive it.
type Game struct {
	level *maploader.Level
	src   render.InputSource

	state player.State
	mover player.Controller

	caster raycast.Caster
	shade  raycast.ShadeConfig

	timer *timing.FrameTimer
	fps   *timing.FPSCounter
	hud   *hud.HUD

	// hits is reused across frames and resized to the frame width.
	hits []raycast.RayHit

	ceilingColor color.RGBA
	floorColor   color.RGBA
}

// New creates a game for a loaded level, reading input from src.
func New(level *maploader.Level, src render.InputSource, showHUD bool) *Game {
	data := level.Data
	return &Game{
		level: level,
		src:   src,
		state: player.State{
			X:     data.PlayerSpawn.X,
			Y:     data.PlayerSpawn.Y,
			Angle: data.PlayerSpawn.Angle,
		},
		mover: player.Controller{
			MoveSpeed:        data.Movement.MoveSpeed,
			TurnSpeed:        data.Movement.TurnSpeed,
			SprintMultiplier: data.Movement.SprintMultiplier,
		},
		caster: raycast.Caster{
			FOV:      data.Render.FieldOfView,
			MaxDepth: data.Render.MaxDepth,
		},
		shade: raycast.ShadeConfig{
			MaxDepth:     data.Render.MaxDepth,
			FogStart:     data.Render.FogStart,
			SideContrast: data.Render.SideContrast,
		},
		timer:        timing.NewFrameTimer(),
		fps:          timing.NewFPSCounter(),
		hud:          hud.New(showHUD),
		ceilingColor: rgba(data.Render.CeilingColor),
		floorColor:   rgba(data.Render.FloorColor),
	}
}

// Player returns the current player state.
func (g *Game) Player() player.State {
	return g.state
}

// Update advances the simulation by one frame: sample the clock, poll input,
// and move the player. Returns render.Termination when the player quits.
func (g *Game) Update() error {
	elapsed := g.timer.Delta()

	in := g.src.Poll()
	if in.Quit {
		return render.Termination
	}

	g.state = g.mover.Update(in, g.state, elapsed, g.level.Grid)
	return nil
}

// Draw casts one ray per screen column and paints the resulting bands.
func (g *Game) Draw(frame render.Frame) {
	width, height := frame.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if cap(g.hits) < width {
		g.hits = make([]raycast.RayHit, width)
	}
	hits := g.hits[:width]

	g.caster.CastColumns(g.state, g.level.Grid, hits)

	for x := 0; x < width; x++ {
		ceilingY, floorY := raycast.Project(hits[x].Distance, height)
		s := raycast.WallShade(hits[x], g.shade)
		frame.DrawColumn(render.Column{
			X:        x,
			CeilingY: ceilingY,
			FloorY:   floorY,
			Wall:     color.RGBA{R: s, G: s, B: s, A: 255},
			Ceiling:  g.ceilingColor,
			Floor:    g.floorColor,
		})
	}

	g.hud.Draw(frame, g.fps.Tick(), g.state)
}

func rgba(c maploader.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
