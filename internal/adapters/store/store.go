// Package store persists the installation list as a JSON document.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

// FormatVersion is the version written to new installation stores.
const FormatVersion = 1

type document struct {
	Version       int                   `json:"version"`
	Installations []domain.Installation `json:"installations"`
}

// Store implements ports.InstallationStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a new InstallationStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the installation list. A missing or empty file yields no installations.
func (s *Store) Load() ([]domain.Installation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	return Decode(data, s.path)
}

// Decode parses the content of an installation store.
func Decode(data []byte, path string) ([]domain.Installation, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", path)
	}
	return doc.Installations, nil
}

// Save replaces the stored list. The file is written next to its final
// location and renamed into place, so readers never see a partial document.
func (s *Store) Save(installations []domain.Installation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if installations == nil {
		installations = []domain.Installation{}
	}
	data, err := json.MarshalIndent(document{Version: FormatVersion, Installations: installations}, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}
