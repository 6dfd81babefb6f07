package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/render"
	ebitenrender "chosenoffset.com/corridor9/internal/render/ebiten"
	sdlrender "chosenoffset.com/corridor9/internal/render/sdl"
	tcellrender "chosenoffset.com/corridor9/internal/render/tcell"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

func main() {
	backend := flag.String("backend", "ebiten", "render backend: ebiten, sdl, or tcell")
	levelPath := flag.String("level", "", "level file to load (built-in level if empty)")
	dataPath := flag.String("data", "", "list the levels in a directory and exit")
	width := flag.Int("width", 800, "window width in pixels (ignored by tcell)")
	height := flag.Int("height", 600, "window height in pixels (ignored by tcell)")
	showHUD := flag.Bool("hud", true, "show the FPS and position overlay")
	flag.Parse()

	if *dataPath != "" {
		entries, err := maploader.ScanLevels(*dataPath)
		if err != nil {
			log.Fatalf("Failed to scan levels: %v", err)
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\n", e.Name, e.Path)
		}
		return
	}

	var level *maploader.Level
	if *levelPath == "" {
		level = maploader.DefaultLevel()
	} else {
		var err error
		level, err = maploader.LoadLevel(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}
	log.Printf("Loaded level %q (%dx%d)", level.Data.Name, level.Grid.Width(), level.Grid.Height())

	var engine render.Engine
	var src render.InputSource
	switch *backend {
	case "ebiten":
		engine = ebitenrender.NewEngine(*width, *height)
		src = ebitenrender.NewInputSource()
	case "sdl":
		engine = sdlrender.NewEngine(*width, *height)
		src = sdlrender.NewInputSource()
	case "tcell":
		e := tcellrender.NewEngine()
		engine = e
		src = e.Input()
	default:
		log.Fatalf("Unknown backend %q (want ebiten, sdl, or tcell)", *backend)
	}

	engine.SetWindowTitle("Corridor9 - " + level.Data.Name)

	g := game.New(level, src, *showHUD)

	log.Printf("Starting on %s backend...", *backend)
	if err := engine.Run(g); err != nil {
		log.Fatal(err)
	}
}
