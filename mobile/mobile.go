//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.younwookim.snake -o build/snake.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Snake.xcframework ./mobile
package mobile

import (
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/younwookim/snake/configs"
	"github.com/younwookim/snake/internal/app"
	"github.com/younwookim/snake/internal/infrastructure/config"
)

// lazyGame defers building the app to the first frame. Audio and storage
// set up inside init() run before the host activity is ready.
type lazyGame struct {
	once    sync.Once
	app     *app.App
	initErr error
}

func (g *lazyGame) initialize() {
	g.once.Do(func() {
		log.Println("[Mobile] Starting lazy initialization...")

		cfg, err := config.NewFSLoader(configs.FS, ".").LoadAll()
		if err != nil {
			g.initErr = err
			log.Printf("[Mobile] Failed to load config: %v", err)
			return
		}

		store := app.OpenStore(dataPath(cfg.Storage.Path))
		g.app = app.New(cfg, store, app.NewAudio(cfg, store), app.Options{})
		log.Println("[Mobile] Initialized")
	})
}

// dataPath places the database under the per-user config directory when
// the platform has one
func dataPath(rel string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return rel
	}
	return filepath.Join(dir, "snake", filepath.Base(rel))
}

func (g *lazyGame) Update() error {
	g.initialize()
	if g.initErr != nil {
		return nil
	}
	return g.app.Game().Update()
}

func (g *lazyGame) Draw(screen *ebiten.Image) {
	g.initialize()
	if g.initErr != nil {
		screen.Fill(color.RGBA{255, 0, 0, 255})
		return
	}
	g.app.Game().Draw(screen)
}

func (g *lazyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Called before the first Update
	if g.app != nil {
		return g.app.Game().Layout(outsideWidth, outsideHeight)
	}
	d := config.Default().Display
	return d.ScreenWidth, d.ScreenHeight
}

func init() {
	mobile.SetGame(&lazyGame{})
}

// Dummy is an exported name so ebitenmobile binds the package
func Dummy() {}
