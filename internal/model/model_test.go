package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"grimoire/internal/model"
)

func TestBookmark_JSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		bookmark model.Bookmark
	}{
		{
			name: "bookmark with media",
			bookmark: model.Bookmark{
				ID:          "b1",
				Title:       "TanStack Router",
				URL:         "https://tanstack.com/router",
				Description: "Type-safe routing",
				CreatedAt:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
				Media: []model.MediaItem{
					{
						ID:        "m1",
						Type:      model.MediaVideo,
						Content:   "https://www.youtube.com/embed/abc123",
						CreatedAt: time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC),
					},
				},
			},
		},
		{
			name: "bookmark without media",
			bookmark: model.Bookmark{
				ID:          "b2",
				Title:       "Hacker News",
				URL:         "https://news.ycombinator.com",
				Description: "",
				CreatedAt:   time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
				Media:       []model.MediaItem{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.bookmark)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}

			var got model.Bookmark
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}

			if got.ID != tt.bookmark.ID {
				t.Errorf("ID mismatch: got %q, want %q", got.ID, tt.bookmark.ID)
			}
			if got.URL != tt.bookmark.URL {
				t.Errorf("URL mismatch: got %q, want %q", got.URL, tt.bookmark.URL)
			}
			if len(got.Media) != len(tt.bookmark.Media) {
				t.Errorf("media count mismatch: got %d, want %d", len(got.Media), len(tt.bookmark.Media))
			}
		})
	}
}

func TestNewStore_HasDefaultFolder(t *testing.T) {
	store := model.NewStore()

	if len(store.Folders) != 1 {
		t.Fatalf("expected 1 folder, got %d", len(store.Folders))
	}
	if store.Folders[0].Name != model.DefaultFolderName {
		t.Errorf("expected default folder %q, got %q", model.DefaultFolderName, store.Folders[0].Name)
	}
	if !store.Folders[0].Open() {
		t.Error("default folder should have no password")
	}
}

func TestCreateFolder(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		password string
		wantErr  error
	}{
		{name: "valid folder", folder: "Inspiration", password: "hunter2"},
		{name: "empty name rejected", folder: "", password: "hunter2", wantErr: model.ErrEmptyName},
		{name: "empty password rejected", folder: "Secret", password: "", wantErr: model.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := model.NewStore()
			next, folder, err := model.CreateFolder(store, tt.folder, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(next.Folders) != 2 {
				t.Errorf("expected 2 folders, got %d", len(next.Folders))
			}
			if next.FolderByName(tt.folder) == nil {
				t.Errorf("folder %q not addressable by name", tt.folder)
			}
			if folder.ID == "" {
				t.Error("created folder has no ID")
			}

			// Original store is untouched
			if len(store.Folders) != 1 {
				t.Errorf("input store was mutated: %d folders", len(store.Folders))
			}
		})
	}
}

func TestCreateFolder_UniqueIDs(t *testing.T) {
	store := model.NewStore()

	var err error
	for _, name := range []string{"A", "B", "C"} {
		store, _, err = model.CreateFolder(store, name, "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	seen := make(map[string]bool)
	for _, f := range store.Folders {
		if seen[f.ID] {
			t.Errorf("duplicate folder ID %q", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestAddBookmark_NormalizesAndDefaults(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID

	next, bookmark, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{
		URL: "example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bookmark.URL != "https://example.com" {
		t.Errorf("expected normalized URL 'https://example.com', got %q", bookmark.URL)
	}
	if bookmark.Title != "example.com" {
		t.Errorf("expected default title 'example.com', got %q", bookmark.Title)
	}
	if bookmark.Description == "" {
		t.Error("expected a default description")
	}
	if len(next.Folders[0].Bookmarks) != 1 {
		t.Errorf("expected 1 bookmark, got %d", len(next.Folders[0].Bookmarks))
	}
}

func TestAddBookmark_PrependsMostRecentFirst(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID

	store, _, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "first.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store, _, err = model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "second.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookmarks := store.Folders[0].Bookmarks
	if bookmarks[0].URL != "https://second.com" {
		t.Errorf("expected newest bookmark first, got %q", bookmarks[0].URL)
	}
	if bookmarks[1].URL != "https://first.com" {
		t.Errorf("expected oldest bookmark last, got %q", bookmarks[1].URL)
	}
}

func TestAddBookmark_EmptyURLRejected(t *testing.T) {
	store := model.NewStore()

	_, _, err := model.AddBookmark(store, store.Folders[0].ID, model.NewBookmarkParams{})
	if !errors.Is(err, model.ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
}

func TestAddBookmark_UnknownFolder(t *testing.T) {
	store := model.NewStore()

	_, _, err := model.AddBookmark(store, "nope", model.NewBookmarkParams{URL: "example.com"})
	if !errors.Is(err, model.ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestDeleteBookmark(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID

	store, keep, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "keep.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keepID := keep.ID
	store, gone, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "gone.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := model.DeleteBookmark(store, folderID, gone.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookmarks := next.Folders[0].Bookmarks
	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark after delete, got %d", len(bookmarks))
	}
	if bookmarks[0].ID != keepID {
		t.Error("wrong bookmark deleted")
	}

	// Deleting again is a no-op
	again, err := model.DeleteBookmark(next, folderID, gone.ID)
	if err != nil {
		t.Fatalf("retried delete should not error: %v", err)
	}
	if len(again.Folders[0].Bookmarks) != 1 {
		t.Error("retried delete changed the store")
	}
}

func TestAddDeleteMedia_RoundTrip(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID

	store, bookmark, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bookmarkID := bookmark.ID

	item := model.NewMediaItem(model.MediaImage, "data:image/png;base64,aGk=")
	withMedia, err := model.AddMedia(store, folderID, bookmarkID, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(withMedia.FolderByID(folderID).BookmarkByID(bookmarkID).Media) != 1 {
		t.Fatal("expected 1 media item after add")
	}

	without, err := model.DeleteMedia(withMedia, folderID, bookmarkID, item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := without.FolderByID(folderID).BookmarkByID(bookmarkID).Media
	if len(got) != 0 {
		t.Errorf("expected media sequence back to empty, got %d items", len(got))
	}
}

func TestSession_Unlock(t *testing.T) {
	store := model.NewStore()
	store, folder, err := model.CreateFolder(store, "Secret", "open sesame")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session := model.NewSession()

	if session.IsUnlocked(folder) {
		t.Error("password folder should start locked")
	}

	if err := session.Unlock(folder, "wrong"); !errors.Is(err, model.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if session.IsUnlocked(folder) {
		t.Error("failed unlock should leave folder locked")
	}

	if err := session.Unlock(folder, "open sesame"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsUnlocked(folder) {
		t.Error("correct password should unlock folder")
	}

	session.Lock(folder.ID)
	if session.IsUnlocked(folder) {
		t.Error("Lock should re-lock the folder")
	}
}

func TestSession_OpenFolderAlwaysUnlocked(t *testing.T) {
	store := model.NewStore()
	session := model.NewSession()

	if !session.IsUnlocked(&store.Folders[0]) {
		t.Error("folder without password should always be unlocked")
	}
}

func TestClone_Isolation(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID
	store, b, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := store.Clone()
	clone.Folders[0].Bookmarks[0].Title = "changed"

	if store.FolderByID(folderID).BookmarkByID(b.ID).Title == "changed" {
		t.Error("mutating a clone leaked into the original store")
	}
}
