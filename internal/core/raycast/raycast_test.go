package raycast

import (
	"math"
	"strings"
	"testing"

	"chosenoffset.com/corridor9/internal/core/grid"
	"chosenoffset.com/corridor9/internal/core/player"
)

const epsilon = 1e-9

// The level from the default map: 16x16, closed border, interior pillars.
var testRows = []string{
	"################",
	"#........###...#",
	"#...#....###...#",
	"#...#..........#",
	"#...#####..##..#",
	"#......#....#..#",
	"#......#....#..#",
	"#......#....#..#",
	"###....##..##..#",
	"#..............#",
	"#..............#",
	"#.......#......#",
	"#.......#......#",
	"#....######....#",
	"#.........#....#",
	"################",
}

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(testRows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func emptyRoom(t *testing.T, n int) *grid.Grid {
	t.Helper()
	rows := make([]string, n)
	for y := range rows {
		row := make([]byte, n)
		for x := range row {
			if x == 0 || x == n-1 || y == 0 || y == n-1 {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	g, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func TestCenterColumnTrace(t *testing.T) {
	// Player at (8.0, 10.5) facing +x with FOV 0.75: the center column's ray
	// angle is exactly 0, so it walks row 10 from cell 8 to the wall at
	// cell x=15 and reports the distance to its near face: 15 - 8 = 7.
	g := testGrid(t)
	c := Caster{FOV: 0.75, MaxDepth: 16}
	p := player.State{X: 8.0, Y: 10.5, Angle: 0}

	hit := c.Cast(400, 800, p, g)

	if math.Abs(hit.Distance-7.0) > epsilon {
		t.Errorf("Expected perpendicular distance 7.0, got %f", hit.Distance)
	}
	if hit.Side != SideX {
		t.Errorf("Expected an x-axis hit, got %v", hit.Side)
	}
}

func TestAxisAlignedDistances(t *testing.T) {
	g := emptyRoom(t, 8)
	c := Caster{FOV: 0.75, MaxDepth: 16}

	cases := []struct {
		name     string
		angle    float64
		distance float64
		side     Side
	}{
		{"facing +x", 0, 3.0, SideX},
		{"facing -x", math.Pi, 3.0, SideX},
		{"facing +y", math.Pi / 2, 3.0, SideY},
		{"facing -y", -math.Pi / 2, 3.0, SideY},
	}

	for _, tc := range cases {
		p := player.State{X: 4.0, Y: 4.0, Angle: tc.angle}
		hit := c.Cast(400, 800, p, g)
		if math.Abs(hit.Distance-tc.distance) > epsilon {
			t.Errorf("%s: expected distance %f, got %f", tc.name, tc.distance, hit.Distance)
		}
		if hit.Side != tc.side {
			t.Errorf("%s: expected side %v, got %v", tc.name, tc.side, hit.Side)
		}
	}
}

func TestAllColumnsFiniteAndNonNegative(t *testing.T) {
	g := testGrid(t)
	c := Caster{FOV: 0.75, MaxDepth: 16}
	const width = 800

	angles := []float64{0, 0.4, math.Pi / 2, 2.1, math.Pi, -1.3, 5.5}
	for _, angle := range angles {
		p := player.State{X: 8.0, Y: 10.5, Angle: angle}
		for x := 0; x < width; x++ {
			hit := c.Cast(x, width, p, g)
			if math.IsNaN(hit.Distance) || math.IsInf(hit.Distance, 0) {
				t.Fatalf("angle %f column %d: non-finite distance %f", angle, x, hit.Distance)
			}
			if hit.Distance < 0 {
				t.Fatalf("angle %f column %d: negative distance %f", angle, x, hit.Distance)
			}
		}
	}
}

func TestCastBoundsTraversalOnUnborderedGrid(t *testing.T) {
	// A corridor longer than the traversal bound with open ends: the ray
	// never enters a wall cell within the step limit, so the cast gives up
	// and reports the maximum depth instead of walking forever.
	n := maxSteps + 16
	rows := []string{
		strings.Repeat("#", n),
		strings.Repeat(".", n),
		strings.Repeat("#", n),
	}
	g, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	c := Caster{FOV: 0.75, MaxDepth: 16}
	p := player.State{X: 0.5, Y: 1.5, Angle: 0}

	hit := c.Cast(400, 800, p, g)

	if hit.Distance != c.MaxDepth {
		t.Errorf("Expected fallback distance %f, got %f", c.MaxDepth, hit.Distance)
	}
}

func TestCastIsIdempotent(t *testing.T) {
	g := testGrid(t)
	c := Caster{FOV: 0.75, MaxDepth: 16}
	p := player.State{X: 8.0, Y: 10.5, Angle: 1.1}

	for x := 0; x < 800; x += 97 {
		first := c.Cast(x, 800, p, g)
		second := c.Cast(x, 800, p, g)
		if first != second {
			t.Errorf("column %d: repeated cast differs: %+v vs %+v", x, first, second)
		}
	}
}

func TestCastColumnsMatchesSequentialCasts(t *testing.T) {
	g := testGrid(t)
	c := Caster{FOV: 0.75, MaxDepth: 16}
	p := player.State{X: 8.0, Y: 10.5, Angle: 0.9}
	const width = 640

	hits := make([]RayHit, width)
	c.CastColumns(p, g, hits)

	for x := 0; x < width; x++ {
		want := c.Cast(x, width, p, g)
		if hits[x] != want {
			t.Fatalf("column %d: parallel cast %+v, sequential cast %+v", x, hits[x], want)
		}
	}
}

func TestProject(t *testing.T) {
	ceiling, floor := Project(4.0, 600)
	if ceiling != 150 {
		t.Errorf("Expected ceiling 150, got %d", ceiling)
	}
	if floor != 450 {
		t.Errorf("Expected floor 450, got %d", floor)
	}
}

func TestProjectClampsDegenerateDistance(t *testing.T) {
	for _, d := range []float64{0, 1e-12, -0.5} {
		ceiling, floor := Project(d, 600)
		if floor != 600-ceiling {
			t.Errorf("distance %f: ceiling/floor not symmetric: %d, %d", d, ceiling, floor)
		}
		// The band may extend past the screen but must stay a sane integer,
		// not an overflowed division result.
		if ceiling > 300 {
			t.Errorf("distance %f: ceiling %d above mid-screen for a near wall", d, ceiling)
		}
	}
}

func TestShade(t *testing.T) {
	if s := Shade(0, 16); s != 255 {
		t.Errorf("Expected full shade at distance 0, got %d", s)
	}
	if s := Shade(16, 16); s != 0 {
		t.Errorf("Expected zero shade at max depth, got %d", s)
	}
	if s := Shade(24, 16); s != 0 {
		t.Errorf("Expected zero shade beyond max depth, got %d", s)
	}
	if s := Shade(8, 16); s != 127 {
		t.Errorf("Expected mid shade 127 at half depth, got %d", s)
	}
}

func TestFogFactor(t *testing.T) {
	if f := FogFactor(4, 8, 16); f != 0 {
		t.Errorf("Expected no fog before fog start, got %f", f)
	}
	if f := FogFactor(12, 8, 16); math.Abs(f-0.5) > epsilon {
		t.Errorf("Expected fog 0.5 midway, got %f", f)
	}
	if f := FogFactor(16, 8, 16); f != 1 {
		t.Errorf("Expected full fog at max depth, got %f", f)
	}
	if f := FogFactor(40, 8, 16); f != 1 {
		t.Errorf("Expected fog clamped to 1, got %f", f)
	}
}

func TestWallShade(t *testing.T) {
	cfg := ShadeConfig{MaxDepth: 16, FogStart: 8}

	near := WallShade(RayHit{Distance: 1}, cfg)
	far := WallShade(RayHit{Distance: 14}, cfg)
	if near <= far {
		t.Errorf("Expected near wall brighter than far wall: %d vs %d", near, far)
	}
	if s := WallShade(RayHit{Distance: 16}, cfg); s != 0 {
		t.Errorf("Expected black at max depth, got %d", s)
	}

	cfg.SideContrast = true
	xFace := WallShade(RayHit{Distance: 4, Side: SideX}, cfg)
	yFace := WallShade(RayHit{Distance: 4, Side: SideY}, cfg)
	if yFace >= xFace {
		t.Errorf("Expected y-face darker with side contrast: %d vs %d", yFace, xFace)
	}
}
