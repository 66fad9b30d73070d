package notifications

import (
	"context"
	"sync"
)

// MemoryStore is an in-process ReadStore used in tests.
type MemoryStore struct {
	mu   sync.Mutex
	read map[string]map[uint]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{read: make(map[string]map[uint]bool)}
}

func (s *MemoryStore) ReadIDs(_ context.Context, dni string) (map[uint]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(map[uint]bool, len(s.read[dni]))
	for id := range s.read[dni] {
		ids[id] = true
	}
	return ids, nil
}

func (s *MemoryStore) MarkRead(_ context.Context, dni string, ids ...uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.read[dni] == nil {
		s.read[dni] = make(map[uint]bool)
	}
	for _, id := range ids {
		s.read[dni][id] = true
	}
	return nil
}
