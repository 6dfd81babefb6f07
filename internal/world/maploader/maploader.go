// Package maploader loads level definitions from JSON data files. A level
// bundles the wall layout with the spawn point, the render tuning, and the
// movement tuning, so each map can carry its own feel.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/corridor9/internal/core/grid"
)

// SpawnPoint is where the player starts, in world units.
type SpawnPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// RGB is a color in a data file.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RenderSettings tunes projection and shading for a level.
type RenderSettings struct {
	FieldOfView  float64 `json:"field_of_view"` // half-angle spread in radians
	MaxDepth     float64 `json:"max_depth"`     // rays stop here; walls at this range are black
	FogStart     float64 `json:"fog_start"`     // fog begins past this distance
	SideContrast bool    `json:"side_contrast"` // darken east/west wall faces
	CeilingColor RGB     `json:"ceiling_color"`
	FloorColor   RGB     `json:"floor_color"`
}

// MovementSettings tunes the player controller for a level.
type MovementSettings struct {
	MoveSpeed        float64 `json:"move_speed"`        // cells per second
	TurnSpeed        float64 `json:"turn_speed"`        // radians per second
	SprintMultiplier float64 `json:"sprint_multiplier"` // applied to move speed while sprinting
}

// LevelData is the on-disk shape of a level file.
type LevelData struct {
	Name        string           `json:"name"`
	Rows        []string         `json:"rows"`
	PlayerSpawn SpawnPoint       `json:"player_spawn"`
	Render      RenderSettings   `json:"render"`
	Movement    MovementSettings `json:"movement"`
}

// Level is a loaded, validated level: the raw data plus the parsed grid.
type Level struct {
	Data LevelData
	Grid *grid.Grid
}

// defaultRows is the built-in 16x16 arena: a closed border with interior
// corridors and pillars.
var defaultRows = []string{
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

// DefaultData returns the built-in level definition. Loaded files overlay
// these values, so a file only has to name what it changes. Rows is a fresh
// copy each call: json.Unmarshal decodes a file's rows into the slice it
// finds, and handing out the package-level slice would let a load rewrite
// the built-in map for the rest of the process.
func DefaultData() LevelData {
	return LevelData{
		Name:        "default",
		Rows:        append([]string(nil), defaultRows...),
		PlayerSpawn: SpawnPoint{X: 8.0, Y: 10.5, Angle: 0},
		Render: RenderSettings{
			FieldOfView:  0.75,
			MaxDepth:     16.0,
			FogStart:     8.0,
			SideContrast: true,
			CeilingColor: RGB{R: 0, G: 0, B: 64},
			FloorColor:   RGB{R: 64, G: 64, B: 64},
		},
		Movement: MovementSettings{
			MoveSpeed:        1.5,
			TurnSpeed:        1.125,
			SprintMultiplier: 2.0,
		},
	}
}

// DefaultLevel returns the built-in level, ready to run.
func DefaultLevel() *Level {
	level, err := buildLevel(DefaultData())
	if err != nil {
		// The built-in data is fixed; failing to build it is a programming
		// error, not a runtime condition.
		panic(fmt.Sprintf("built-in level is invalid: %v", err))
	}
	return level
}

// LoadLevel reads a level file, overlays it on the defaults, and validates
// the result.
func LoadLevel(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	data := DefaultData() // start with defaults, file fields overlay
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	level, err := buildLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return level, nil
}

// buildLevel parses the rows into a grid and checks that the data can
// actually be played.
func buildLevel(data LevelData) (*Level, error) {
	g, err := grid.Parse(data.Rows)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	sx, sy := int(data.PlayerSpawn.X), int(data.PlayerSpawn.Y)
	if !g.InBounds(sx, sy) {
		return nil, fmt.Errorf("spawn point (%.1f, %.1f) is outside the map", data.PlayerSpawn.X, data.PlayerSpawn.Y)
	}
	if g.IsWall(sx, sy) {
		return nil, fmt.Errorf("spawn point (%.1f, %.1f) is inside a wall", data.PlayerSpawn.X, data.PlayerSpawn.Y)
	}

	if data.Render.FieldOfView <= 0 {
		return nil, fmt.Errorf("field_of_view must be positive, got %f", data.Render.FieldOfView)
	}
	if data.Render.MaxDepth <= 0 {
		return nil, fmt.Errorf("max_depth must be positive, got %f", data.Render.MaxDepth)
	}
	if data.Render.FogStart < 0 || data.Render.FogStart >= data.Render.MaxDepth {
		return nil, fmt.Errorf("fog_start must be in [0, max_depth), got %f", data.Render.FogStart)
	}
	if data.Movement.MoveSpeed <= 0 {
		return nil, fmt.Errorf("move_speed must be positive, got %f", data.Movement.MoveSpeed)
	}
	if data.Movement.TurnSpeed <= 0 {
		return nil, fmt.Errorf("turn_speed must be positive, got %f", data.Movement.TurnSpeed)
	}
	if data.Movement.SprintMultiplier < 1 {
		return nil, fmt.Errorf("sprint_multiplier must be at least 1, got %f", data.Movement.SprintMultiplier)
	}

	return &Level{Data: data, Grid: g}, nil
}

// LevelEntry is a discoverable level in the data directory.
type LevelEntry struct {
	Name string // file name without extension
	Path string // full path, loadable with LoadLevel
}

// ScanLevels lists the level files in a data directory. Files that are not
// JSON and dotfiles are skipped; the listing does not validate contents.
func ScanLevels(dataPath string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		levels = append(levels, LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dataPath, name),
		})
	}

	return levels, nil
}
