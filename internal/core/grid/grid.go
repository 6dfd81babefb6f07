// Package grid provides the immutable 2-D wall grid that the raycaster and
// the movement controller read each frame. Cells are parsed once at startup
// from row-major strings and never mutated afterwards.
package grid

import "fmt"

// Cell is the content of one grid square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
)

const (
	charWall  = '#'
	charEmpty = '.'
)

// Grid is a width×height field of cells indexed by (x, y) where x runs along
// a row and y selects the row. Out-of-range reads report walls, so traversal
// and collision code stays inside the map even if a caller slips past the
// border.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, y*width+x
}

// Parse builds a grid from row-major strings, one string per row, using
// '#' for walls and '.' for empty cells. All rows must have the same length.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}

	width := len(rows[0])
	height := len(rows)
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("grid too small: %dx%d (minimum 3x3 for a closed border)", width, height)
	}

	cells := make([]Cell, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case charWall:
				cells[y*width+x] = CellWall
			case charEmpty:
				cells[y*width+x] = CellEmpty
			default:
				return nil, fmt.Errorf("row %d: unknown cell %q at column %d", y, row[x], x)
			}
		}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Coordinates outside the grid read as walls.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether the cell at (x, y) is a wall. Out-of-range
// coordinates count as walls.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == CellWall
}

// Validate checks that the grid's outer border is fully walled. An open
// border would let a ray leave the map and traverse forever, so levels with
// one are rejected at load time.
func (g *Grid) Validate() error {
	for x := 0; x < g.width; x++ {
		if !g.IsWall(x, 0) {
			return fmt.Errorf("border open at top edge, column %d", x)
		}
		if !g.IsWall(x, g.height-1) {
			return fmt.Errorf("border open at bottom edge, column %d", x)
		}
	}
	for y := 0; y < g.height; y++ {
		if !g.IsWall(0, y) {
			return fmt.Errorf("border open at left edge, row %d", y)
		}
		if !g.IsWall(g.width-1, y) {
			return fmt.Errorf("border open at right edge, row %d", y)
		}
	}
	return nil
}
