// Package player holds the player's state and the movement controller that
// advances it once per frame from the current input snapshot.
package player

import (
	"math"

	"chosenoffset.com/corridor9/internal/core/grid"
	"chosenoffset.com/corridor9/internal/core/input"
)

// State is the player's position in continuous map coordinates and facing
// angle in radians, where 0 points along +x. The angle is left unbounded;
// only cos/sin ever consume it.
type State struct {
	X     float64
	Y     float64
	Angle float64
}

// Cell returns the grid cell the player currently occupies.
func (s State) Cell() (x, y int) {
	return int(s.X), int(s.Y)
}

// Controller applies one frame of movement input to a player state.
// Speeds are in map cells per second, turn rate in radians per second.
type Controller struct {
	MoveSpeed        float64
	TurnSpeed        float64
	SprintMultiplier float64
}

// Update computes the next player state for the held actions over elapsed
// seconds. Translation input is accumulated as a direction vector,
// unit-normalized so diagonal movement matches single-axis speed, then
// applied in full or rejected in full: if the destination cell is a wall the
// whole displacement is dropped, which keeps the player's cell non-wall for
// any input sequence. Rotation is never blocked by collision.
func (c Controller) Update(in input.Snapshot, st State, elapsed float64, g *grid.Grid) State {
	next := st

	if in.TurnLeft {
		next.Angle -= c.TurnSpeed * elapsed
	}
	if in.TurnRight {
		next.Angle += c.TurnSpeed * elapsed
	}

	if !in.Moving() {
		return next
	}

	dirX := math.Cos(next.Angle)
	dirY := math.Sin(next.Angle)

	var moveX, moveY float64
	if in.Forward {
		moveX += dirX
		moveY += dirY
	}
	if in.Back {
		moveX -= dirX
		moveY -= dirY
	}
	// The strafe axis is the facing vector rotated a quarter turn.
	if in.StrafeLeft {
		moveX += dirY
		moveY -= dirX
	}
	if in.StrafeRight {
		moveX -= dirY
		moveY += dirX
	}

	length := math.Sqrt(moveX*moveX + moveY*moveY)
	if length == 0 {
		return next
	}

	speed := c.MoveSpeed
	if in.Sprint && c.SprintMultiplier > 0 {
		speed *= c.SprintMultiplier
	}
	scale := speed * elapsed / length

	newX := next.X + moveX*scale
	newY := next.Y + moveY*scale
	if g.IsWall(int(newX), int(newY)) {
		return next
	}

	next.X = newX
	next.Y = newY
	return next
}
