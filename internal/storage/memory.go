package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is the in-process backend, used by tests and by
// DATA_BACKEND=memory. Documents are kept serialized so reads decode a
// snapshot instead of sharing pointers with writers.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) error {
	s.mu.Lock()
	raw, ok := s.docs[key]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "Stored document does not decode, using default",
			"key", key, "error", err)
		return nil
	}
	return nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
