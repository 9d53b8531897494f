package statefile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the progress snapshot at one fixed path. The path
// is constructor input; nothing in this package holds package-level state.
// A store assumes exclusive ownership of its file and backup file; two
// processes sharing one path race on write.
type Store struct {
	path string
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("statefile: empty path")
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// BackupPath swaps the file extension for .bak, so progress.json sits next
// to progress.bak.
func (s *Store) BackupPath() string {
	ext := filepath.Ext(s.path)
	return strings.TrimSuffix(s.path, ext) + ".bak"
}

// Save fully rewrites the snapshot file. The write goes through a temp file
// and rename so a crash mid-write never leaves a half-written document.
func (s *Store) Save(snap Snapshot) error {
	snap.normalize()
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Exists reports whether a snapshot file is present at the store path.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
