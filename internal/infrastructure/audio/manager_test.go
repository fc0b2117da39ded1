package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snake/internal/infrastructure/storage"
)

type fakeChannel struct {
	loop    bool
	plays   int
	stops   int
	volume  float64
	playing bool
	closed  bool
	failErr error
}

func (c *fakeChannel) Play() error {
	if c.failErr != nil {
		return c.failErr
	}
	c.plays++
	c.playing = true
	return nil
}

func (c *fakeChannel) Stop() error {
	c.stops++
	c.playing = false
	return nil
}

func (c *fakeChannel) SetVolume(v float64) { c.volume = v }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type fakeBackend struct {
	channels []*fakeChannel
	failAt   int
}

func (b *fakeBackend) SampleRate() int { return 8000 }

func (b *fakeBackend) NewChannel(pcm []byte, loop bool) (Channel, error) {
	if b.failAt > 0 && len(b.channels)+1 == b.failAt {
		return nil, errors.New("device busy")
	}
	ch := &fakeChannel{loop: loop}
	b.channels = append(b.channels, ch)
	return ch, nil
}

type fakeVibrator struct {
	short, long int
}

func (v *fakeVibrator) Short() { v.short++ }

func (v *fakeVibrator) Long() { v.long++ }

func newTestManager(t *testing.T) (*Manager, *storage.MemoryStore, *fakeVibrator) {
	t.Helper()
	kv := storage.NewMemoryStore()
	vib := &fakeVibrator{}
	m := NewManager(&fakeBackend{}, kv, vib)
	require.True(t, m.Available())
	return m, kv, vib
}

func music(m *Manager, track Track) *fakeChannel {
	return m.music[track].(*fakeChannel)
}

func effect(m *Manager, e Effect) *fakeChannel {
	return m.effects[e].(*fakeChannel)
}

func TestNewManager_Channels(t *testing.T) {
	m, _, _ := newTestManager(t)

	assert.Len(t, m.music, 3)
	assert.Len(t, m.effects, 3)
	assert.True(t, music(m, TrackMenu).loop)
	assert.True(t, music(m, TrackGame).loop)
	assert.False(t, music(m, TrackGameOver).loop)
	assert.InDelta(t, 0.6, music(m, TrackMenu).volume, 1e-9)
	assert.InDelta(t, 0.8, effect(m, EffectEat).volume, 1e-9)
	assert.InDelta(t, 0.4, effect(m, EffectClick).volume, 1e-9)
}

func TestManager_OneTrackAtATime(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.PlayBackgroundMusic(TrackMenu)
	m.PlayBackgroundMusic(TrackGame)

	assert.False(t, music(m, TrackMenu).playing)
	assert.Equal(t, 1, music(m, TrackMenu).stops)
	assert.True(t, music(m, TrackGame).playing)

	m.StopBackgroundMusic()
	assert.False(t, music(m, TrackGame).playing)
}

func TestManager_UnknownTrack(t *testing.T) {
	m, _, _ := newTestManager(t)
	m.PlayBackgroundMusic(TrackMenu)

	m.PlayBackgroundMusic("credits")

	assert.True(t, music(m, TrackMenu).playing, "current track keeps playing")
}

func TestManager_ToggleMusic(t *testing.T) {
	m, kv, _ := newTestManager(t)
	m.PlayBackgroundMusic(TrackMenu)

	assert.False(t, m.ToggleMusic())
	assert.False(t, music(m, TrackMenu).playing)
	assert.False(t, LoadSettings(kv).MusicEnabled, "persisted immediately")

	m.PlayBackgroundMusic(TrackGame)
	assert.Equal(t, 0, music(m, TrackGame).plays, "disabled music does not play")

	assert.True(t, m.ToggleMusic())
	assert.True(t, music(m, TrackGame).playing, "resumes the last requested track")
	assert.True(t, LoadSettings(kv).MusicEnabled)
}

func TestManager_ToggleSound(t *testing.T) {
	m, kv, vib := newTestManager(t)

	assert.False(t, m.ToggleSound())
	m.PlaySound(EffectEat)

	assert.Equal(t, 0, effect(m, EffectEat).plays)
	assert.Equal(t, 0, vib.short, "muted sound does not vibrate")
	assert.False(t, LoadSettings(kv).SoundEnabled)

	assert.True(t, m.ToggleSound())
	m.PlaySound(EffectEat)
	assert.Equal(t, 1, effect(m, EffectEat).plays)
}

func TestManager_PlaySoundFallback(t *testing.T) {
	m, _, vib := newTestManager(t)
	for _, e := range Effects {
		effect(m, e).failErr = errors.New("interrupted")
	}

	m.PlaySound(EffectEat)
	m.PlaySound(EffectGameOver)
	m.PlaySound(EffectClick)

	assert.Equal(t, 1, vib.short)
	assert.Equal(t, 1, vib.long)
}

func TestManager_Volumes(t *testing.T) {
	m, kv, _ := newTestManager(t)

	m.SetMusicVolume(1.7)
	m.SetSoundVolume(0.5)

	assert.Equal(t, 1.0, music(m, TrackGame).volume)
	assert.Equal(t, 0.5, effect(m, EffectGameOver).volume)
	assert.Equal(t, 0.25, effect(m, EffectClick).volume)

	s := LoadSettings(kv)
	assert.Equal(t, 1.0, s.MusicVolume)
	assert.Equal(t, 0.5, s.SoundVolume)

	m.SetMusicVolume(-3)
	assert.Equal(t, 0.0, m.Settings().MusicVolume)
}

func TestNewManager_BackendFailure(t *testing.T) {
	kv := storage.NewMemoryStore()
	vib := &fakeVibrator{}
	backend := &fakeBackend{failAt: 4}

	m := NewManager(backend, kv, vib)

	assert.False(t, m.Available())
	assert.False(t, m.MusicEnabled())
	assert.False(t, m.SoundEnabled())
	for _, ch := range backend.channels {
		assert.True(t, ch.closed, "partially built channels are released")
	}

	assert.NotPanics(t, func() {
		m.PlayBackgroundMusic(TrackMenu)
		m.StopBackgroundMusic()
	})

	m.PlaySound(EffectEat)
	m.PlaySound(EffectGameOver)
	m.PlaySound(EffectClick)
	assert.Equal(t, 1, vib.short)
	assert.Equal(t, 1, vib.long)

	_, err := kv.Get(storage.KeyAudioSettings)
	assert.ErrorIs(t, err, storage.ErrNotFound, "forced-off flags are not persisted")
}

func TestManager_ToggleWithoutOutputKeepsStoredChoices(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, SaveSettings(kv, Settings{MusicEnabled: false, SoundEnabled: true, MusicVolume: 0.3, SoundVolume: 0.9}))
	m := NewManager(nil, kv, &fakeVibrator{})
	require.False(t, m.SoundEnabled())

	assert.True(t, m.ToggleMusic())

	saved := LoadSettings(kv)
	assert.True(t, saved.MusicEnabled)
	assert.True(t, saved.SoundEnabled, "sound flag forced off at startup must not be written back")
	assert.Equal(t, 0.3, saved.MusicVolume)
	assert.Equal(t, 0.9, saved.SoundVolume)
	assert.False(t, m.SoundEnabled())
}

func TestNewManager_NilBackend(t *testing.T) {
	m := NewManager(nil, storage.NewMemoryStore(), nil)

	assert.False(t, m.Available())
	assert.NotPanics(t, func() { m.PlaySound(EffectEat) })
}

func TestManager_SaveFailureIsLogged(t *testing.T) {
	kv := storage.NewMemoryStore()
	m := NewManager(&fakeBackend{}, kv, &fakeVibrator{})
	kv.Fail = errors.New("read-only")

	assert.NotPanics(t, func() { m.ToggleMusic() })
	assert.False(t, m.MusicEnabled())
}

func TestManager_Close(t *testing.T) {
	m, _, _ := newTestManager(t)
	chans := []*fakeChannel{music(m, TrackMenu), effect(m, EffectClick)}
	m.PlayBackgroundMusic(TrackMenu)

	m.Close()

	for _, ch := range chans {
		assert.True(t, ch.closed)
	}
	assert.False(t, m.Available())
}
