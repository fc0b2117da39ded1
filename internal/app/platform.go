package app

import (
	"log"

	"github.com/younwookim/snake/internal/infrastructure/audio"
	"github.com/younwookim/snake/internal/infrastructure/config"
	"github.com/younwookim/snake/internal/infrastructure/haptics"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// OpenStore opens the SQLite database at path, falling back to memory so
// the game still runs without persistence
func OpenStore(path string) storage.Store {
	db, err := storage.Open(path)
	if err != nil {
		log.Printf("[Storage] %v; scores will not be kept", err)
		return storage.NewMemoryStore()
	}
	log.Printf("[Storage] Opened %s", path)
	return db
}

// NewAudio builds the audio manager on the ebiten backend with vibration as
// the fallback cue. A missing backend leaves the manager silent.
func NewAudio(cfg *config.GameConfig, kv storage.KV) *audio.Manager {
	vibrator := haptics.NewEbitenVibrator(cfg.Haptics.Short(), cfg.Haptics.Long())

	var backend audio.Backend
	if b, err := audio.NewEbitenBackend(cfg.Audio.SampleRate); err != nil {
		log.Printf("[Audio] Backend unavailable: %v", err)
	} else {
		backend = b
	}
	return audio.NewManagerWithDefaults(backend, kv, vibrator, audio.Settings(cfg.Audio.Defaults))
}
