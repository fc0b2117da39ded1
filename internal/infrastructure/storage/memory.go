package storage

import "slices"

// MemoryStore keeps everything in process memory. It backs tests and stands
// in when the database cannot be opened.
type MemoryStore struct {
	kv       map[string][]byte
	sessions []SessionRecord

	// Fail makes every operation return this error when set
	Fail error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (m *MemoryStore) Get(key string) ([]byte, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	v, ok := m.kv[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

// Set stores a copy of value under key
func (m *MemoryStore) Set(key string, value []byte) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.kv[key] = slices.Clone(value)
	return nil
}

// AppendSession adds rec to the history
func (m *MemoryStore) AppendSession(rec SessionRecord) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.sessions = append(m.sessions, rec)
	return nil
}

// Sessions returns up to limit records, newest first
func (m *MemoryStore) Sessions(limit int) ([]SessionRecord, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	out := slices.Clone(m.sessions)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountSessions returns the number of recorded sessions
func (m *MemoryStore) CountSessions() (int, error) {
	if m.Fail != nil {
		return 0, m.Fail
	}
	return len(m.sessions), nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
