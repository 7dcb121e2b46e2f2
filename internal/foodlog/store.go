package foodlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"snapcal/internal/nutrition"
)

// FileName is the versioned on-disk record the store reads and writes.
// Schema changes get a new suffix; unknown fields in old records are
// tolerated and parse failure degrades to an empty log.
const FileName = "foodlog_v1.json"

// Store is the durable, newest-first sequence of confirmed log entries.
// It is the sole source of truth for what has been eaten; totals are
// always derived from the current entries, never cached.
//
// All mutations run on the UI event loop, so the store needs no
// internal locking. Every mutation rewrites the full record
// synchronously; a write failure keeps the in-memory sequence and is
// logged rather than rolled back.
type Store struct {
	path    string
	log     *zap.Logger
	entries []nutrition.LogEntry
}

// Open loads the persisted log from dir. A missing, unreadable, or
// corrupt record is a non-fatal diagnostic: the store starts empty.
func Open(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: filepath.Join(dir, FileName), log: logger}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("food log unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	var entries []nutrition.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("food log corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return
	}
	s.entries = entries
}

// NewEntry builds a LogEntry from a confirmed analysis. The ID is fresh
// for every call; imageData may be empty when no photo is available.
func NewEntry(a nutrition.Analysis, imageData string, now time.Time) nutrition.LogEntry {
	return nutrition.LogEntry{
		Analysis:  a,
		ID:        uuid.NewString(),
		Timestamp: now,
		ImageData: imageData,
	}
}

// Append prepends the entry and persists the full sequence.
func (s *Store) Append(entry nutrition.LogEntry) {
	s.entries = append([]nutrition.LogEntry{entry}, s.entries...)
	s.persist()
}

// Remove deletes the entry with the given id if present and persists.
// Removing an unknown id is a no-op.
func (s *Store) Remove(id string) {
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return
		}
	}
}

// Entries returns a copy of the current log, newest first.
func (s *Store) Entries() []nutrition.LogEntry {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]nutrition.LogEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Len reports the number of logged entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Totals recomputes the field-wise nutrient sum over all entries.
func (s *Store) Totals() nutrition.Totals {
	var totals nutrition.Totals
	for _, entry := range s.entries {
		totals = totals.Add(entry.Analysis)
	}
	return totals
}

func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Error("marshal food log", zap.Error(err))
		return
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Error("persist food log",
			zap.String("path", s.path), zap.Error(err))
	}
}

// writeFileAtomic writes via a temp file and rename so the record is
// never observed half-written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace log file: %w", err)
	}
	return nil
}
