package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	tn := newTone(440, 100*time.Millisecond, waveSine, rate)

	pcm := Render(tn)

	assert.Equal(t, rate.N(100*time.Millisecond)*4, len(pcm))
}

func TestTone_Waveforms(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []waveform{waveSine, waveSquare, waveTriangle} {
		tn := newTone(300, 50*time.Millisecond, w, rate)
		buf := make([][2]float64, 1000)

		n, ok := tn.Stream(buf)

		require.True(t, ok)
		require.Equal(t, rate.N(50*time.Millisecond), n)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.Equal(t, buf[i][0], buf[i][1])
		}

		n, ok = tn.Stream(buf)
		assert.Equal(t, 0, n)
		assert.False(t, ok)
	}
}

func TestDecay_FadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := withDecay(newTone(0, 200*time.Millisecond, waveSquare, rate), 0, 20*time.Millisecond, rate)
	buf := make([][2]float64, rate.N(200*time.Millisecond))

	n, _ := s.Stream(buf)

	require.Equal(t, len(buf), n)
	assert.InDelta(t, 1.0, buf[0][0], 1e-9)
	assert.Less(t, buf[n-1][0], 0.01)
}

func TestMelody_Duration(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := melody([]note{{noteA4, 1}, {0, 1}, {noteC5, 2}}, 100*time.Millisecond, waveSine, rate)

	pcm := Render(s)

	assert.InDelta(t, rate.N(400*time.Millisecond)*4, len(pcm), 16)
}

func TestRender_Clips(t *testing.T) {
	loud := gain(newTone(0, 10*time.Millisecond, waveSquare, 8000), 4)

	pcm := Render(loud)

	require.NotEmpty(t, pcm)
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:2])))
}

func TestAllCuesRender(t *testing.T) {
	for _, track := range Tracks {
		assert.NotEmpty(t, MusicPCM(track, 8000), track)
	}
	for _, e := range Effects {
		pcm := EffectPCM(e, 8000)
		assert.NotEmpty(t, pcm, e)
		assert.Zero(t, len(pcm)%4, "whole stereo frames")
	}
	assert.Empty(t, MusicPCM("credits", 8000))
}
