package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/shadowgrove/internal/application/game"
	"github.com/younwookim/shadowgrove/internal/application/scene"
	"github.com/younwookim/shadowgrove/internal/application/scene/playing"
	"github.com/younwookim/shadowgrove/internal/application/scene/title"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording without a window and print the outcome")
	seedFlag := flag.Int64("seed", 0, "RNG seed for enemy behavior (0 picks one from the clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := replayFile(os.Stdout, *replayFlag, cfg, loader); err != nil {
			log.Fatal(err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", seed)

	display := cfg.Game.Display
	newPlay := func() (scene.Scene, error) {
		return playing.New(cfg, loader, seed, *recordFlag)
	}
	titleScene, err := title.New(cfg.Campaign.Title, display.ScreenWidth, display.ScreenHeight, newPlay)
	if err != nil {
		log.Fatalf("Failed to create title screen: %v", err)
	}

	g := game.New(titleScene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	windowTitle := display.Title
	if windowTitle == "" {
		windowTitle = cfg.Campaign.Title
	}
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
