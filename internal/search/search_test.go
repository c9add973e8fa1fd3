package search_test

import (
	"testing"

	"grimoire/internal/model"
	"grimoire/internal/search"
)

func buildStore(t *testing.T) *model.Store {
	t.Helper()

	store := model.NewStore()
	folderID := store.Folders[0].ID

	var err error
	for _, b := range []model.NewBookmarkParams{
		{Title: "Go standard library", URL: "pkg.go.dev/std"},
		{Title: "Rust book", URL: "doc.rust-lang.org/book"},
		{Title: "Go blog", URL: "go.dev/blog"},
	} {
		store, _, err = model.AddBookmark(store, folderID, b)
		if err != nil {
			t.Fatalf("failed to add bookmark: %v", err)
		}
	}

	store, _, err = model.CreateFolder(store, "Secret", "pw")
	if err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}
	secretID := store.FolderByName("Secret").ID
	store, _, err = model.AddBookmark(store, secretID, model.NewBookmarkParams{
		Title: "Go secret stash", URL: "example.com/secret",
	})
	if err != nil {
		t.Fatalf("failed to add bookmark: %v", err)
	}

	return store
}

func TestFuzzySearch(t *testing.T) {
	store := buildStore(t)

	results := search.FuzzySearch(store, "go")
	if len(results) != 3 {
		t.Fatalf("expected 3 matches for 'go', got %d", len(results))
	}

	for _, r := range results {
		if r.Folder == nil {
			t.Error("result missing owning folder")
		}
	}
}

func TestFuzzySearch_IncludesLockedFolders(t *testing.T) {
	store := buildStore(t)

	results := search.FuzzySearch(store, "stash")
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].Folder.Name != "Secret" {
		t.Errorf("expected match in Secret folder, got %q", results[0].Folder.Name)
	}
}

func TestFuzzySearch_EmptyQuery(t *testing.T) {
	store := buildStore(t)

	if results := search.FuzzySearch(store, ""); results != nil {
		t.Errorf("expected nil for empty query, got %d results", len(results))
	}
}

func TestFuzzySearch_NoMatch(t *testing.T) {
	store := buildStore(t)

	if results := search.FuzzySearch(store, "zzzzzz"); len(results) != 0 {
		t.Errorf("expected no matches, got %d", len(results))
	}
}
