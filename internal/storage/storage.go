package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"grimoire/internal/model"
)

// Storage defines the interface for persisting the folder store.
// Save overwrites the whole snapshot; there are no partial updates.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

// JSONStorage implements Storage using a single JSON file, the equivalent
// of the one serialized blob the app keeps under a fixed key.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the store from the JSON file. A missing file, unparseable
// content, or an empty folder list all yield a fresh store with the single
// default folder rather than an error.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return model.NewStore(), nil
	}
	if len(store.Folders) == 0 {
		return model.NewStore(), nil
	}

	normalize(&store)
	return &store, nil
}

// Save writes the store to the JSON file, creating the directory if needed.
// Callers surface a failed save to the user; it is not retried, and the
// in-memory model stays ahead of what is on disk.
func (s *JSONStorage) Save(store *model.Store) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// normalize replaces nil slices left by partial JSON with empty ones.
func normalize(store *model.Store) {
	for i := range store.Folders {
		if store.Folders[i].Bookmarks == nil {
			store.Folders[i].Bookmarks = []model.Bookmark{}
		}
		for j := range store.Folders[i].Bookmarks {
			if store.Folders[i].Bookmarks[j].Media == nil {
				store.Folders[i].Bookmarks[j].Media = []model.MediaItem{}
			}
		}
	}
}

// DefaultJSONPath returns the default store path: ~/.config/grimoire/grimoire.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "grimoire", "grimoire.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
