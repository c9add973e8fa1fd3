package search

import (
	"grimoire/internal/model"

	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match with the folder that owns it.
type Result struct {
	Folder         *model.Folder
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// entry locates one bookmark inside the store.
type entry struct {
	folder   int
	bookmark int
}

// entries implements fuzzy.Source over bookmark titles.
type entries struct {
	store *model.Store
	list  []entry
}

func (e entries) String(i int) string {
	loc := e.list[i]
	return e.store.Folders[loc.folder].Bookmarks[loc.bookmark].Title
}

func (e entries) Len() int {
	return len(e.list)
}

// FuzzySearch searches bookmark titles across all folders using fuzzy
// matching. Returns results sorted by match score (best first). Matches in
// locked folders are included; callers gate opening them on an unlock.
func FuzzySearch(store *model.Store, query string) []Result {
	if query == "" {
		return nil
	}

	src := entries{store: store}
	for fi := range store.Folders {
		for bi := range store.Folders[fi].Bookmarks {
			src.list = append(src.list, entry{folder: fi, bookmark: bi})
		}
	}

	matches := fuzzy.FindFrom(query, src)

	results := make([]Result, len(matches))
	for i, m := range matches {
		loc := src.list[m.Index]
		results[i] = Result{
			Folder:         &store.Folders[loc.folder],
			Bookmark:       &store.Folders[loc.folder].Bookmarks[loc.bookmark],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
