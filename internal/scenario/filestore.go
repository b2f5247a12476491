package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileStore persists scenario records as a single JSON document on disk. The
// whole document is loaded at open and rewritten on every mutation; scenario
// counts are small enough that this stays trivially fast.
type FileStore struct {
	mu      sync.Mutex
	path    string
	records map[uuid.UUID]Record
}

// NewFileStore opens (or initializes) a JSON-backed store at path.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:    path,
		records: make(map[uuid.UUID]Record),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read scenario store: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse scenario store %s: %w", path, err)
	}
	for _, record := range records {
		store.records[record.ID] = record
	}

	return store, nil
}

// Load returns the record for id or ErrNotFound.
func (s *FileStore) Load(id uuid.UUID) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return record, nil
}

// Save stores the record and rewrites the backing file.
func (s *FileStore) Save(record Record) (uuid.UUID, error) {
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
	if err := s.flush(); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

// List returns all records ordered by name.
func (s *FileStore) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Delete removes the record for id and rewrites the backing file.
func (s *FileStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	if err := s.flush(); err != nil {
		return false, err
	}
	return true, nil
}

// flush writes the full record set; callers hold the mutex.
func (s *FileStore) flush() error {
	records := make([]Record, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID.String() < records[j].ID.String()
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scenario store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scenario store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario store: %w", err)
	}
	return nil
}
