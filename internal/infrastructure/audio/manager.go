// Package audio synthesizes and plays the background music and sound cues,
// and persists the player's audio settings.
//
// Every operation is best-effort: failures are logged and never reach the
// game. When no audio output can be set up the manager runs silent with
// haptic pulses standing in for the eat and game-over cues.
package audio

import (
	"errors"
	"log"

	"github.com/younwookim/snake/internal/infrastructure/haptics"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// clickLevel scales the click cue relative to the sound volume
const clickLevel = 0.5

// Manager owns the music and effect channels
type Manager struct {
	kv       storage.KV
	vibrator haptics.Vibrator
	// settings are in effect; stored are the player's choices as persisted.
	// They differ only in the flags forced off when no output exists.
	settings Settings
	stored   Settings

	music   map[Track]Channel
	effects map[Effect]Channel

	current   Channel
	requested Track
	available bool
}

// NewManager loads settings from kv and builds every channel on backend.
// A nil backend or any channel failure leaves the manager silent with music
// and sound disabled.
func NewManager(backend Backend, kv storage.KV, vibrator haptics.Vibrator) *Manager {
	return NewManagerWithDefaults(backend, kv, vibrator, DefaultSettings())
}

// NewManagerWithDefaults is NewManager with the settings used when nothing
// has been stored yet
func NewManagerWithDefaults(backend Backend, kv storage.KV, vibrator haptics.Vibrator, defaults Settings) *Manager {
	if vibrator == nil {
		vibrator = haptics.Nop{}
	}
	loaded := LoadSettingsWithDefaults(kv, defaults)
	m := &Manager{
		kv:       kv,
		vibrator: vibrator,
		settings: loaded,
		stored:   loaded,
		music:    make(map[Track]Channel),
		effects:  make(map[Effect]Channel),
	}

	if err := m.initChannels(backend); err != nil {
		log.Printf("[Audio] Failed to initialize, falling back to haptics: %v", err)
		m.closeChannels()
		m.settings.MusicEnabled = false
		m.settings.SoundEnabled = false
		return m
	}

	m.available = true
	m.applyVolumes()
	log.Printf("[Audio] Initialized (music=%t sound=%t)", m.settings.MusicEnabled, m.settings.SoundEnabled)
	return m
}

func (m *Manager) initChannels(backend Backend) error {
	if backend == nil {
		return errors.New("no audio backend")
	}
	rate := backend.SampleRate()

	for _, track := range Tracks {
		// The game-over jingle plays once
		ch, err := backend.NewChannel(MusicPCM(track, rate), track != TrackGameOver)
		if err != nil {
			return err
		}
		m.music[track] = ch
	}
	for _, effect := range Effects {
		ch, err := backend.NewChannel(EffectPCM(effect, rate), false)
		if err != nil {
			return err
		}
		m.effects[effect] = ch
	}
	return nil
}

func (m *Manager) applyVolumes() {
	for _, ch := range m.music {
		ch.SetVolume(m.settings.MusicVolume)
	}
	for effect, ch := range m.effects {
		v := m.settings.SoundVolume
		if effect == EffectClick {
			v *= clickLevel
		}
		ch.SetVolume(v)
	}
}

// PlayBackgroundMusic stops the playing track and starts track.
// The request is remembered so re-enabling music can resume it.
func (m *Manager) PlayBackgroundMusic(track Track) {
	m.requested = track
	if !m.settings.MusicEnabled || !m.available {
		return
	}

	ch, ok := m.music[track]
	if !ok {
		log.Printf("[Audio] Unknown music track: %s", track)
		return
	}

	m.stopCurrent()
	if err := ch.Play(); err != nil {
		log.Printf("[Audio] Failed to play background music %s: %v", track, err)
		return
	}
	m.current = ch
}

// StopBackgroundMusic stops the playing track, if any
func (m *Manager) StopBackgroundMusic() {
	m.stopCurrent()
}

func (m *Manager) stopCurrent() {
	if m.current == nil {
		return
	}
	if err := m.current.Stop(); err != nil {
		log.Printf("[Audio] Failed to stop background music: %v", err)
	}
	m.current = nil
}

// PlaySound plays a cue. When sound is on but playback fails, eat and
// game-over fall back to a short and a long vibration.
func (m *Manager) PlaySound(effect Effect) {
	if !m.settings.SoundEnabled {
		if !m.available {
			m.vibrateFor(effect)
		}
		return
	}

	ch, ok := m.effects[effect]
	if !ok {
		m.vibrateFor(effect)
		return
	}
	if err := ch.Play(); err != nil {
		log.Printf("[Audio] Failed to play sound %s: %v", effect, err)
		m.vibrateFor(effect)
	}
}

func (m *Manager) vibrateFor(effect Effect) {
	switch effect {
	case EffectEat:
		m.vibrator.Short()
	case EffectGameOver:
		m.vibrator.Long()
	}
}

// ToggleMusic flips music on or off and returns the new state.
// Turning music back on resumes the last requested track.
func (m *Manager) ToggleMusic() bool {
	m.settings.MusicEnabled = !m.settings.MusicEnabled
	m.stored.MusicEnabled = m.settings.MusicEnabled
	if m.settings.MusicEnabled {
		if m.requested != "" {
			m.PlayBackgroundMusic(m.requested)
		}
	} else {
		m.stopCurrent()
	}
	m.save()
	return m.settings.MusicEnabled
}

// ToggleSound flips sound cues on or off and returns the new state
func (m *Manager) ToggleSound() bool {
	m.settings.SoundEnabled = !m.settings.SoundEnabled
	m.stored.SoundEnabled = m.settings.SoundEnabled
	m.save()
	return m.settings.SoundEnabled
}

// SetMusicVolume sets the music volume, clamped to [0, 1]
func (m *Manager) SetMusicVolume(v float64) {
	m.settings.MusicVolume = clampVolume(v)
	m.stored.MusicVolume = m.settings.MusicVolume
	m.applyVolumes()
	m.save()
}

// SetSoundVolume sets the sound volume, clamped to [0, 1]
func (m *Manager) SetSoundVolume(v float64) {
	m.settings.SoundVolume = clampVolume(v)
	m.stored.SoundVolume = m.settings.SoundVolume
	m.applyVolumes()
	m.save()
}

// MusicEnabled reports whether music is on
func (m *Manager) MusicEnabled() bool {
	return m.settings.MusicEnabled
}

// SoundEnabled reports whether sound cues are on
func (m *Manager) SoundEnabled() bool {
	return m.settings.SoundEnabled
}

// Available reports whether an audio output was set up
func (m *Manager) Available() bool {
	return m.available
}

// Settings returns the settings in effect
func (m *Manager) Settings() Settings {
	return m.settings
}

func (m *Manager) save() {
	if err := SaveSettings(m.kv, m.stored); err != nil {
		log.Printf("[Audio] Failed to save settings: %v", err)
	}
}

// Close stops music and releases every channel
func (m *Manager) Close() {
	m.stopCurrent()
	m.closeChannels()
	m.available = false
}

func (m *Manager) closeChannels() {
	for track, ch := range m.music {
		if err := ch.Close(); err != nil {
			log.Printf("[Audio] Failed to close music %s: %v", track, err)
		}
		delete(m.music, track)
	}
	for effect, ch := range m.effects {
		if err := ch.Close(); err != nil {
			log.Printf("[Audio] Failed to close sound %s: %v", effect, err)
		}
		delete(m.effects, effect)
	}
}
