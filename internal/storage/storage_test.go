package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"grimoire/internal/model"
	"grimoire/internal/storage"
)

func sampleStore(t *testing.T) *model.Store {
	t.Helper()

	store := model.NewStore()
	store, _, err := model.CreateFolder(store, "Secret", "hunter2")
	if err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	folderID := store.FolderByName("Secret").ID
	store, bookmark, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{
		URL:         "example.com",
		Description: "An example",
	})
	if err != nil {
		t.Fatalf("failed to add bookmark: %v", err)
	}

	store, err = model.AddMedia(store, folderID, bookmark.ID,
		model.NewMediaItem(model.MediaVoice, "data:audio/wav;base64,aGVsbG8="))
	if err != nil {
		t.Fatalf("failed to add media: %v", err)
	}

	return store
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "grimoire.json")

	store := sampleStore(t)

	s := storage.NewJSONStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if len(loaded.Folders) != len(store.Folders) {
		t.Fatalf("folder count mismatch: got %d, want %d", len(loaded.Folders), len(store.Folders))
	}

	folder := loaded.FolderByName("Secret")
	if folder == nil {
		t.Fatal("folder 'Secret' missing after reload")
	}
	if folder.Password != "hunter2" {
		t.Errorf("password not preserved, got %q", folder.Password)
	}
	if len(folder.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(folder.Bookmarks))
	}

	bookmark := folder.Bookmarks[0]
	if bookmark.URL != "https://example.com" {
		t.Errorf("URL not preserved, got %q", bookmark.URL)
	}
	if len(bookmark.Media) != 1 {
		t.Fatalf("expected 1 media item, got %d", len(bookmark.Media))
	}
	if bookmark.Media[0].Type != model.MediaVoice {
		t.Errorf("media type not preserved, got %q", bookmark.Media[0].Type)
	}
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent.json")

	s := storage.NewJSONStorage(path)
	store, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	// Missing data falls back to the single default folder
	if len(store.Folders) != 1 {
		t.Fatalf("expected default folder, got %d folders", len(store.Folders))
	}
	if store.Folders[0].Name != model.DefaultFolderName {
		t.Errorf("expected default folder name, got %q", store.Folders[0].Name)
	}
}

func TestJSONStorage_LoadCorrupt(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "corrupt.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	s := storage.NewJSONStorage(path)
	store, err := s.Load()
	if err != nil {
		t.Fatalf("corrupt file should not error, got: %v", err)
	}

	if len(store.Folders) != 1 || store.Folders[0].Name != model.DefaultFolderName {
		t.Error("corrupt file should fall back to the default folder")
	}
}

func TestJSONStorage_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "grimoire.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewStore()); err != nil {
		t.Fatalf("failed to save with nested dir: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("store file was not created in nested directory")
	}
}

func TestJSONStorage_SaveFailureSurfaces(t *testing.T) {
	tmpDir := t.TempDir()
	// A directory at the file path makes the write fail
	path := filepath.Join(tmpDir, "blocked")
	if err := os.MkdirAll(filepath.Join(path), 0755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewStore()); err == nil {
		t.Error("expected save to an unwritable path to return an error")
	}
}

func TestJSONStorage_PreservesOrder(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "grimoire.json")

	store := model.NewStore()
	var err error
	for _, name := range []string{"First", "Second", "Third"} {
		store, _, err = model.CreateFolder(store, name, "pw")
		if err != nil {
			t.Fatalf("failed to create folder: %v", err)
		}
	}

	s := storage.NewJSONStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	expected := []string{model.DefaultFolderName, "First", "Second", "Third"}
	for i, name := range expected {
		if loaded.Folders[i].Name != name {
			t.Errorf("order not preserved: expected %q at position %d, got %q",
				name, i, loaded.Folders[i].Name)
		}
	}
}
