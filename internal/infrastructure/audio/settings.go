package audio

import (
	"errors"
	"log"

	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// Settings are the persisted audio preferences
type Settings struct {
	MusicEnabled bool    `json:"musicEnabled"`
	SoundEnabled bool    `json:"soundEnabled"`
	MusicVolume  float64 `json:"musicVolume"`
	SoundVolume  float64 `json:"soundVolume"`
}

// DefaultSettings returns music and sound on at 0.6 and 0.8
func DefaultSettings() Settings {
	return Settings{
		MusicEnabled: true,
		SoundEnabled: true,
		MusicVolume:  0.6,
		SoundVolume:  0.8,
	}
}

// storedSettings tells absent fields apart from zero values
type storedSettings struct {
	MusicEnabled *bool    `json:"musicEnabled"`
	SoundEnabled *bool    `json:"soundEnabled"`
	MusicVolume  *float64 `json:"musicVolume"`
	SoundVolume  *float64 `json:"soundVolume"`
}

// LoadSettings reads the audioSettings record. A missing or malformed
// record yields defaults; missing fields take their default individually.
func LoadSettings(kv storage.KV) Settings {
	return LoadSettingsWithDefaults(kv, DefaultSettings())
}

// LoadSettingsWithDefaults is LoadSettings with caller-supplied defaults
func LoadSettingsWithDefaults(kv storage.KV, defaults Settings) Settings {
	s := defaults
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)

	var stored storedSettings
	if err := storage.LoadJSON(kv, storage.KeyAudioSettings, &stored); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[Audio] Failed to load settings: %v", err)
		}
		return s
	}

	if stored.MusicEnabled != nil {
		s.MusicEnabled = *stored.MusicEnabled
	}
	if stored.SoundEnabled != nil {
		s.SoundEnabled = *stored.SoundEnabled
	}
	if stored.MusicVolume != nil {
		s.MusicVolume = clampVolume(*stored.MusicVolume)
	}
	if stored.SoundVolume != nil {
		s.SoundVolume = clampVolume(*stored.SoundVolume)
	}
	return s
}

// SaveSettings writes the audioSettings record
func SaveSettings(kv storage.KV, s Settings) error {
	return storage.SaveJSON(kv, storage.KeyAudioSettings, s)
}

func clampVolume(v float64) float64 {
	// NaN compares false both ways
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
