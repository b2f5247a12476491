package scenario

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a scenario id has no stored record.
var ErrNotFound = errors.New("scenario not found")

// Store persists scenario records keyed by their stable id.
type Store interface {
	Load(id uuid.UUID) (Record, error)
	Save(record Record) (uuid.UUID, error)
	List() ([]Record, error)
	Delete(id uuid.UUID) (bool, error)
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewMemoryStore creates an empty in-memory scenario store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]Record)}
}

// Load returns the record for id or ErrNotFound.
func (s *MemoryStore) Load(id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return record, nil
}

// Save stores the record, assigning an id and creation time on first save.
func (s *MemoryStore) Save(record Record) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
		record.CreatedAt = now
	} else if existing, ok := s.records[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	s.records[record.ID] = record
	return record.ID, nil
}

// List returns all records ordered by name.
func (s *MemoryStore) List() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Delete removes the record for id, reporting whether it existed.
func (s *MemoryStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	return true, nil
}
