package ai_test

import (
	"strings"
	"testing"

	"grimoire/internal/ai"
	"grimoire/internal/model"
)

func TestBuildContext(t *testing.T) {
	store := model.NewStore()
	folderID := store.Folders[0].ID

	store, _, err := model.AddBookmark(store, folderID, model.NewBookmarkParams{
		Title:       "Go",
		URL:         "go.dev",
		Description: "The Go programming language",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store, _, err = model.CreateFolder(store, "Secret", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secretID := store.FolderByName("Secret").ID
	store, _, err = model.AddBookmark(store, secretID, model.NewBookmarkParams{
		Title: "Hidden",
		URL:   "hidden.example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session := model.NewSession()
	ctx := ai.BuildContext(store, session)

	if !strings.Contains(ctx, "Folder: "+model.DefaultFolderName) {
		t.Error("context missing default folder name")
	}
	if !strings.Contains(ctx, "https://go.dev") {
		t.Error("context missing unlocked bookmark URL")
	}
	if !strings.Contains(ctx, "The Go programming language") {
		t.Error("context missing bookmark description")
	}

	// Locked folder shows its name but not its contents
	if !strings.Contains(ctx, "Folder: Secret") {
		t.Error("context missing locked folder name")
	}
	if strings.Contains(ctx, "hidden.example.com") {
		t.Error("locked folder contents leaked into context")
	}

	// Unlocking exposes the contents
	if err := session.Unlock(store.FolderByName("Secret"), "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx = ai.BuildContext(store, session)
	if !strings.Contains(ctx, "hidden.example.com") {
		t.Error("unlocked folder contents missing from context")
	}
}
