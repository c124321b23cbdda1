package metrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// SchemaVersion is the persisted envelope version.
const SchemaVersion = 1

// Backend persists the full record list. Save replaces the whole
// collection (last write wins); the Store serializes all calls, so
// implementations do not need their own write ordering.
type Backend interface {
	// Load reads the persisted records. A missing store is not an
	// error; it loads as empty.
	Load() ([]Record, error)

	// Save writes the full record list, replacing any previous state.
	Save([]Record) error
}

// MemoryBackend keeps records in process memory. It is the default
// backend and the right choice for tests.
type MemoryBackend struct {
	mu      sync.Mutex
	records []Record
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns a copy of the stored records.
func (b *MemoryBackend) Load() ([]Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out, nil
}

// Save replaces the stored records.
func (b *MemoryBackend) Save(records []Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = make([]Record, len(records))
	copy(b.records, records)
	return nil
}

// envelope is the versioned on-disk format.
type envelope struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// FileBackend persists records as a single versioned JSON document at a
// fixed path.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads and decodes the persisted document. A missing file loads as
// empty; a future schema version is an error so newer data is never
// silently clobbered by mistake.
func (b *FileBackend) Load() ([]Record, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("metrics: read %s: %w", b.path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("metrics: decode %s: %w", b.path, err)
	}
	if env.Version > SchemaVersion {
		return nil, fmt.Errorf("metrics: %s has schema version %d, max supported %d", b.path, env.Version, SchemaVersion)
	}
	return env.Records, nil
}

// Save encodes and writes the full record list.
func (b *FileBackend) Save(records []Record) error {
	env := envelope{Version: SchemaVersion, Records: records}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("metrics: encode: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("metrics: write %s: %w", b.path, err)
	}
	return nil
}
