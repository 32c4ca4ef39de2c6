package store

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the store file at path. A missing file is not an error:
// it yields an empty store with the counter at 1. An unparseable file
// is a StorageError.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	var s Store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	if s.Version == 0 {
		s.Version = 1
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	// Keep the counter ahead of every id on disk, even if the file was
	// written with a stale counter.
	for _, t := range s.Tasks {
		if t.ID >= s.NextID {
			s.NextID = t.ID + 1
		}
	}

	return &s, nil
}

// Save writes the full store state to path. The write goes through a
// temp file and rename, so a successful save never leaves a partial
// file behind.
func Save(path string, s *Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &StorageError{Op: "save", Path: path, Err: err}
	}

	return nil
}
