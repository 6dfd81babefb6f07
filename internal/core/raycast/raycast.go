// Package raycast implements the per-column ray casting core: grid-DDA
// traversal to the nearest wall, screen-space projection of the resulting
// distance, and distance-based shading. Cast is a pure function of its
// inputs, so a frame's columns can be computed in any order or in parallel.
package raycast

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/corridor9/internal/core/grid"
	"chosenoffset.com/corridor9/internal/core/player"
)

// Side identifies which grid axis a ray crossed when it entered the wall
// cell. It only feeds optional shading variation.
type Side int

const (
	SideX Side = iota // stepped across a vertical grid line
	SideY             // stepped across a horizontal grid line
)

// RayHit is the result of casting one ray. Distance is the perpendicular
// distance measured along the view axis, not the euclidean ray length;
// projecting the euclidean length would bow walls outward at the screen
// edges (fisheye).
type RayHit struct {
	Distance float64
	Side     Side
}

// deltaInfinite substitutes for 1/dir when a direction component is exactly
// zero, so that axis never wins the traversal race.
const deltaInfinite = 1e30

// maxSteps bounds DDA traversal. A validated grid has a closed border and
// terminates the loop long before this; the bound keeps a corrupted grid
// from hanging a frame.
const maxSteps = 4096

// Caster casts rays through a wall grid for a field of view and maximum
// render depth taken from the level settings.
type Caster struct {
	FOV      float64
	MaxDepth float64
}

// Cast traces the ray for one screen column from the player's position and
// returns the perpendicular distance to the wall it enters. Columns sweep
// the field of view left to right across the screen width.
func (c Caster) Cast(column, screenWidth int, p player.State, g *grid.Grid) RayHit {
	rayAngle := p.Angle - c.FOV/2 + (float64(column)/float64(screenWidth))*c.FOV

	dirX := math.Cos(rayAngle)
	dirY := math.Sin(rayAngle)

	mapX := int(p.X)
	mapY := int(p.Y)

	deltaX := deltaInfinite
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaY := deltaInfinite
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	// Per axis: the step direction and the distance from the ray origin to
	// the first grid line it will cross.
	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (p.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - p.X) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (p.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - p.Y) * deltaY
	}

	side := SideX
	for step := 0; ; step++ {
		if step >= maxSteps {
			return RayHit{Distance: c.MaxDepth, Side: side}
		}
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideY += deltaY
			mapY += stepY
			side = SideY
		}
		if g.IsWall(mapX, mapY) {
			break
		}
	}

	// Perpendicular distance along the axis that was stepped last. The
	// (1-step)/2 term selects the near face of the wall cell.
	var dist float64
	if side == SideX {
		dist = (float64(mapX) - p.X + (1-float64(stepX))/2) / dirX
	} else {
		dist = (float64(mapY) - p.Y + (1-float64(stepY))/2) / dirY
	}
	if dist < 0 {
		dist = 0
	}
	return RayHit{Distance: dist, Side: side}
}

// CastColumns fills hits with one cast per screen column, len(hits) being
// the screen width. The casts read only the immutable grid and this frame's
// player state, so they fan out across workers with no locking.
func (c Caster) CastColumns(p player.State, g *grid.Grid, hits []RayHit) {
	width := len(hits)
	if width == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > width {
		workers = width
	}
	chunk := (width + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < width; start += chunk {
		start := start
		end := start + chunk
		if end > width {
			end = width
		}
		eg.Go(func() error {
			for x := start; x < end; x++ {
				hits[x] = c.Cast(x, width, p, g)
			}
			return nil
		})
	}
	// Workers never fail; Wait is just the frame barrier.
	_ = eg.Wait()
}
