package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// snapshotKeys must be present in every snapshot document. Notifications and
// saved_at are optional.
var snapshotKeys = []string{"subjects", "plan", "progress", "streak"}

// SnapshotFileStore reads and writes a learner snapshot as an indented JSON
// document at a fixed path.
type SnapshotFileStore struct {
	path string
}

func NewSnapshotFileStore(path string) *SnapshotFileStore {
	return &SnapshotFileStore{path: path}
}

func (s *SnapshotFileStore) Path() string {
	return s.path
}

func (s *SnapshotFileStore) Save(snap *domain.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads and validates the snapshot. A missing file is ErrNotFound.
func (s *SnapshotFileStore) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NotFoundf("snapshot file %s", s.path)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

func EncodeSnapshot(snap *domain.Snapshot) ([]byte, error) {
	out := *snap
	// Encode empty collections as [] rather than null.
	if out.Subjects == nil {
		out.Subjects = []domain.Subject{}
	}
	if out.Progress == nil {
		out.Progress = []domain.ProgressEntry{}
	}
	if out.Notifications == nil {
		out.Notifications = []string{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeSnapshot parses a snapshot document and checks its structure. Any
// violation is reported as ErrInvalidInput.
func DecodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.InvalidInputf("snapshot is not a JSON object: %v", err)
	}
	for _, key := range snapshotKeys {
		if _, ok := raw[key]; !ok {
			return nil, domain.InvalidInputf("snapshot is missing %q", key)
		}
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, domain.InvalidInputf("decoding snapshot: %v", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
