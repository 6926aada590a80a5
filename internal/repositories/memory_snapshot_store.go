package repositories

import (
	"encoding/json"
	"sync"
)

// MemorySnapshotStore is an in-process SnapshotStore. It backs tests and any
// deployment that doesn't want durable state.
type MemorySnapshotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		slots: make(map[string][]byte),
	}
}

// Save stores the marshaled snapshot for a slot
func (s *MemorySnapshotStore) Save(slot string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = data
	return nil
}

// Load reads the snapshot for a slot into v; false when the slot is empty
func (s *MemorySnapshotStore) Load(slot string, v interface{}) (bool, error) {
	s.mu.RLock()
	data, ok := s.slots[slot]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}

	return true, nil
}
