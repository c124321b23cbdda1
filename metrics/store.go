package metrics

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/gogpu/governor/internal/logx"
)

// Retention defaults.
const (
	DefaultMaxEntries = 1000
	DefaultMaxAge     = 7 * 24 * time.Hour
)

// Store is an append-only, bounded metric log. Writes are best-effort:
// a backend failure is logged and the write skipped, never propagated,
// so the render path cannot be taken down by storage problems.
//
// All writes are serialized through the store mutex, giving the shared
// backend a single-writer discipline even when multiple monitors record
// concurrently.
type Store struct {
	mu         sync.Mutex
	backend    Backend
	maxEntries int
	maxAge     time.Duration
	clk        clock.Clock
	session    string
	records    []Record
}

// StoreOption configures a Store during creation.
type StoreOption func(*Store)

// WithBackend sets the persistence backend (default: in-memory).
func WithBackend(b Backend) StoreOption {
	return func(s *Store) {
		s.backend = b
	}
}

// WithMaxEntries sets the record count bound.
func WithMaxEntries(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithMaxAge sets the record age bound.
func WithMaxAge(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.maxAge = d
		}
	}
}

// WithStoreClock sets the clock used for timestamps and age pruning.
func WithStoreClock(c clock.Clock) StoreOption {
	return func(s *Store) {
		s.clk = c
	}
}

// NewStore creates a Store with a fresh session ID and loads any
// previously persisted records from the backend (best-effort).
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		backend:    NewMemoryBackend(),
		maxEntries: DefaultMaxEntries,
		maxAge:     DefaultMaxAge,
		clk:        clock.New(),
		session:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := s.backend.Load()
	if err != nil {
		logx.Logger().Warn("metrics: load failed, starting empty", "error", err)
		records = nil
	}
	s.records = records
	return s
}

// SessionID returns the store's session identifier, stamped on every
// record written through it.
func (s *Store) SessionID() string {
	return s.session
}

// Record appends one metric entry. The store assigns the ID, session
// and timestamp, prunes expired and excess records (oldest first), and
// persists the collection. Failures are swallowed after a logged
// warning.
func (s *Store) Record(typ Type, data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	s.records = append(s.records, Record{
		ID:        uuid.NewString(),
		Timestamp: now,
		SessionID: s.session,
		Type:      typ,
		Data:      data,
	})
	s.prune(now)

	if err := s.backend.Save(s.records); err != nil {
		logx.Logger().Warn("metrics: write skipped", "type", string(typ), "error", err)
	}
}

// prune drops records older than maxAge, then the oldest records beyond
// maxEntries. Called with mu held.
func (s *Store) prune(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	kept := s.records[:0]
	for _, r := range s.records {
		if !r.Timestamp.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	s.records = kept

	if excess := len(s.records) - s.maxEntries; excess > 0 {
		s.records = append(s.records[:0], s.records[excess:]...)
	}
}

// Query returns the records matching the filter, oldest first.
func (s *Store) Query(f Filter) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Record
	for _, r := range s.records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Summarize aggregates the stored records.
func (s *Store) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Total:  len(s.records),
		ByType: make(map[Type]int),
	}
	for _, r := range s.records {
		sum.ByType[r.Type]++
		if sum.Oldest.IsZero() || r.Timestamp.Before(sum.Oldest) {
			sum.Oldest = r.Timestamp
		}
		if r.Timestamp.After(sum.Newest) {
			sum.Newest = r.Timestamp
		}
	}
	return sum
}

// Clear discards all records, in memory and in the backend.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.backend.Save(nil); err != nil {
		logx.Logger().Warn("metrics: clear not persisted", "error", err)
	}
}
