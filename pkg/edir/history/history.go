package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates that no record matches the requested ID.
var ErrNotFound = errors.New("history record not found")

// Store manages run records in a directory, one JSON file per record.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a store rooted at dir. The directory itself is not
// created until the first Append.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("history directory cannot be empty")
	}
	return &Store{dir: dir}, nil
}

// Append persists a record. A missing ID or timestamp is filled in.
func (s *Store) Append(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history record: %w", err)
	}
	path := filepath.Join(s.dir, s.filename(rec))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history record: %w", err)
	}
	return nil
}

// filename builds a sortable name: timestamp prefix, then the ID.
func (s *Store) filename(rec *Record) string {
	return fmt.Sprintf("%s-%s.json", rec.Timestamp.UTC().Format("20060102T150405Z"), rec.ID)
}

// List returns up to limit records, newest first. A limit of zero or
// less returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Get returns the record whose ID matches id, accepting an unambiguous
// prefix.
func (s *Store) Get(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	var found *Record
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
		if strings.HasPrefix(records[i].ID, id) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous history ID %q", id)
			}
			found = &records[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return found, nil
}

// Prune removes records older than retention and reports how many were
// deleted.
func (s *Store) Prune(retention time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().UTC().Add(-retention)
	removed := 0
	for i := range records {
		if records[i].Timestamp.Before(cutoff) {
			path := filepath.Join(s.dir, s.filename(&records[i]))
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("removing history record: %w", err)
			}
			removed++
		}
	}
	return removed, nil
}

// readAll loads every record in the store. A missing directory is an
// empty store, not an error. Must be called with s.mu held.
func (s *Store) readAll() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading history record %s: %w", entry.Name(), err)
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// A corrupt record should not make history unreadable.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
