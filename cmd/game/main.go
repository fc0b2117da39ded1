package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snake/configs"
	"github.com/younwookim/snake/internal/app"
	"github.com/younwookim/snake/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory with game.json (default: embedded config)")
	dbPath := flag.String("db", "", "SQLite database path (default: storage.path from config)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Verify a recorded replay headlessly and exit")
	seedFlag := flag.Int64("seed", 0, "Fixed rng seed for food placement (0 = random)")
	flag.Parse()

	if *replayFlag != "" {
		if err := runReplay(os.Stdout, *replayFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg := loadConfig(*configDir)

	path := cfg.Storage.Path
	if *dbPath != "" {
		path = *dbPath
	}
	store := app.OpenStore(path)

	a := app.New(cfg, store, app.NewAudio(cfg, store), app.Options{
		RecordPath: *recordFlag,
		Seed:       *seedFlag,
	})
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("[Storage] Failed to close: %v", err)
		}
	}()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	// Focus changes are handled by the frame driver, so keep receiving frames
	ebiten.SetRunnableOnUnfocused(true)

	// Run game
	if err := ebiten.RunGame(a.Game()); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
}

// loadConfig reads game.json from dir, or the embedded copy when dir is
// empty. An unreadable or invalid file falls back to the built-in defaults.
func loadConfig(dir string) *config.GameConfig {
	loader := config.NewFSLoader(configs.FS, ".")
	if dir != "" {
		loader = config.NewLoader(dir)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		return config.Default()
	}
	return cfg
}
