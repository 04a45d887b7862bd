package storage

import (
	"context"
	"sync"
)

// MemoryDraftStore is a process-local DraftPersistence for tests and single-node development.
type MemoryDraftStore struct {
	mu      sync.RWMutex
	codec   Codec
	entries map[string][]byte
}

func NewMemoryDraftStore(codec Codec) *MemoryDraftStore {
	return &MemoryDraftStore{codec: codec, entries: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Load(_ context.Context, key string) (*Envelope, error) {
	s.mu.RLock()
	data, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	return s.codec.Decode(data)
}

func (s *MemoryDraftStore) Save(_ context.Context, key string, env Envelope) error {
	b, err := s.codec.Encode(env)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Put stores raw bytes under key, bypassing the codec.
func (s *MemoryDraftStore) Put(key string, data []byte) {
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
}

// Len reports how many drafts are stored.
func (s *MemoryDraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
