package activity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MaxRecords caps the persisted log; appending beyond it silently drops
// the oldest entries.
const MaxRecords = 50

// FileName is the fixed name of the durable log under the config dir.
const FileName = "activity.json"

// Store persists a bounded, newest-first list of records as a single JSON
// array on disk. It is best-effort by contract: storage failures are
// logged to the diagnostic channel and swallowed, never surfaced — the
// activity trail must not block the command that produced it.
type Store struct {
	path string
	log  *zap.SugaredLogger

	mu       sync.Mutex
	nextSub  int
	onAppend map[int]func(Record)
	onClear  map[int]func()
}

// NewStore creates a store persisting to path.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	return &Store{
		path:     path,
		log:      log,
		onAppend: make(map[int]func(Record)),
		onClear:  make(map[int]func()),
	}
}

// Append constructs a record, prepends it, truncates to MaxRecords,
// persists, and notifies subscribers. Returns nil (never an error) when
// persistence fails.
func (s *Store) Append(t Type, data map[string]string, userID string) *Record {
	rec := newRecord(t, data, userID)

	s.mu.Lock()
	records := s.load()
	records = append([]Record{rec}, records...)
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	if err := s.persist(records); err != nil {
		s.mu.Unlock()
		s.log.Errorw("activity append failed", "type", t, "error", err)
		return nil
	}
	subs := s.appendSubscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(rec)
	}
	return &rec
}

// All returns the persisted records, newest-first. A missing or corrupt
// file reads as empty.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Recent returns the first limit records of All.
func (s *Store) Recent(limit int) []Record {
	records := s.All()
	if limit < len(records) {
		records = records[:limit]
	}
	return records
}

// ByType filters All by record type.
func (s *Store) ByType(t Type) []Record {
	var out []Record
	for _, rec := range s.All() {
		if rec.Type == t {
			out = append(out, rec)
		}
	}
	return out
}

// ByDate returns the records whose timestamp falls on the same calendar
// day as day, in the local timezone.
func (s *Store) ByDate(day time.Time) []Record {
	y, m, d := day.Date()
	var out []Record
	for _, rec := range s.All() {
		ry, rm, rd := rec.Timestamp.Local().Date()
		if ry == y && rm == m && rd == d {
			out = append(out, rec)
		}
	}
	return out
}

// Today returns today's records.
func (s *Store) Today() []Record {
	return s.ByDate(time.Now())
}

// Stats recomputes aggregate counts from the persisted records.
func (s *Store) Stats() Stats {
	stats := Stats{ByType: make(map[Type]int)}
	y, m, d := time.Now().Date()
	for _, rec := range s.All() {
		stats.Total++
		stats.ByType[rec.Type]++
		ry, rm, rd := rec.Timestamp.Local().Date()
		if ry == y && rm == m && rd == d {
			stats.Today++
		}
	}
	return stats
}

// Clear removes all records and notifies clear subscribers.
func (s *Store) Clear() {
	s.mu.Lock()
	if err := s.persist([]Record{}); err != nil {
		s.log.Errorw("activity clear failed", "error", err)
	}
	subs := s.clearSubscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnAppend registers fn to run synchronously after each committed append.
// The returned function unsubscribes it.
func (s *Store) OnAppend(fn func(Record)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.onAppend[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onAppend, id)
	}
}

// OnClear registers fn to run synchronously after each clear.
func (s *Store) OnClear(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.onClear[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onClear, id)
	}
}

// load reads the log file. Caller holds s.mu.
func (s *Store) load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnw("activity read failed", "path", s.path, "error", err)
		}
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt storage reads as empty, not as an error.
		s.log.Warnw("activity log corrupt, treating as empty", "path", s.path, "error", err)
		return []Record{}
	}
	return records
}

// persist writes the full record list. Caller holds s.mu.
func (s *Store) persist(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func (s *Store) appendSubscribers() []func(Record) {
	subs := make([]func(Record), 0, len(s.onAppend))
	for _, fn := range s.onAppend {
		subs = append(subs, fn)
	}
	return subs
}

func (s *Store) clearSubscribers() []func() {
	subs := make([]func(), 0, len(s.onClear))
	for _, fn := range s.onClear {
		subs = append(subs, fn)
	}
	return subs
}
