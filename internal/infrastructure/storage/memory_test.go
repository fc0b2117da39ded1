package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_KV(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	buf := []byte("one")
	require.NoError(t, m.Set("a", buf))
	buf[0] = 'X'

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "one", string(v), "stored values are copies")
}

func TestMemoryStore_Sessions(t *testing.T) {
	m := NewMemoryStore()
	for i := 1; i <= 4; i++ {
		require.NoError(t, m.AppendSession(SessionRecord{ID: string(rune('a' + i)), Score: i}))
	}

	recs, err := m.Sessions(2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 4, recs[0].Score)
	assert.Equal(t, 3, recs[1].Score)

	n, err := m.CountSessions()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMemoryStore_Fail(t *testing.T) {
	boom := errors.New("boom")
	m := NewMemoryStore()
	m.Fail = boom

	_, err := m.Get("a")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, m.Set("a", nil), boom)
	assert.ErrorIs(t, m.AppendSession(SessionRecord{}), boom)
	_, err = m.CountSessions()
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, m.Close())
}

func TestJSONHelpers(t *testing.T) {
	m := NewMemoryStore()

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, SaveJSON(m, "x", map[string]int{"a": 1}))
		var got map[string]int
		require.NoError(t, LoadJSON(m, "x", &got))
		assert.Equal(t, 1, got["a"])
	})

	t.Run("malformed", func(t *testing.T) {
		require.NoError(t, m.Set("bad", []byte("{not json")))
		var got map[string]int
		err := LoadJSON(m, "bad", &got)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("absent", func(t *testing.T) {
		var got int
		assert.ErrorIs(t, LoadJSON(m, "missing", &got), ErrNotFound)
	})
}

func TestNewSessionRecord(t *testing.T) {
	start := time.Unix(100, 0)
	a := NewSessionRecord(10, 1, 4, "wall", start, start.Add(3*time.Second))
	b := NewSessionRecord(10, 1, 4, "wall", start, start.Add(3*time.Second))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
	assert.Equal(t, 3*time.Second, a.Duration())
}
