package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"property-service/internal/model"
)

// FileStore keeps the application record as one JSON document on disk.
// It is the default backend.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted record. A missing file yields the seeded default
// state; an unparseable file yields the seeded default plus ErrCorruptState
// so the caller can report a recoverable initialization problem.
func (f *FileStore) Load() (*model.AppState, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state model.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return Seed(), ErrCorruptState
	}
	return &state, nil
}

// Save overwrites the full document. The write goes through a temp file and
// rename so a crash mid-write cannot corrupt the previous record.
func (f *FileStore) Save(state *model.AppState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
