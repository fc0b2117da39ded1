package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snake/internal/infrastructure/storage"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   Settings
	}{
		{"malformed", `not json`, DefaultSettings()},
		{"empty object", `{}`, DefaultSettings()},
		{
			"partial",
			`{"musicEnabled": false}`,
			Settings{MusicEnabled: false, SoundEnabled: true, MusicVolume: 0.6, SoundVolume: 0.8},
		},
		{
			"full",
			`{"musicEnabled": true, "soundEnabled": false, "musicVolume": 0.2, "soundVolume": 0}`,
			Settings{MusicEnabled: true, SoundEnabled: false, MusicVolume: 0.2, SoundVolume: 0},
		},
		{
			"out of range volumes are clamped",
			`{"musicVolume": 3, "soundVolume": -1}`,
			Settings{MusicEnabled: true, SoundEnabled: true, MusicVolume: 1, SoundVolume: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryStore()
			require.NoError(t, kv.Set(storage.KeyAudioSettings, []byte(tt.stored)))

			assert.Equal(t, tt.want, LoadSettings(kv))
		})
	}
}

func TestLoadSettings_Absent(t *testing.T) {
	assert.Equal(t, DefaultSettings(), LoadSettings(storage.NewMemoryStore()))
}

func TestLoadSettingsWithDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	defaults := Settings{MusicEnabled: false, SoundEnabled: true, MusicVolume: 2, SoundVolume: 0.3}

	assert.Equal(t, Settings{MusicEnabled: false, SoundEnabled: true, MusicVolume: 1, SoundVolume: 0.3},
		LoadSettingsWithDefaults(kv, defaults))

	require.NoError(t, kv.Set(storage.KeyAudioSettings, []byte(`{"musicEnabled": true}`)))
	got := LoadSettingsWithDefaults(kv, defaults)
	assert.True(t, got.MusicEnabled)
	assert.Equal(t, 0.3, got.SoundVolume)
}

func TestSaveSettings(t *testing.T) {
	kv := storage.NewMemoryStore()
	s := Settings{MusicEnabled: false, SoundEnabled: true, MusicVolume: 0.1, SoundVolume: 0.9}

	require.NoError(t, SaveSettings(kv, s))

	raw, err := kv.Get(storage.KeyAudioSettings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"musicEnabled":false,"soundEnabled":true,"musicVolume":0.1,"soundVolume":0.9}`, string(raw))
	assert.Equal(t, s, LoadSettings(kv))
}
