package culler_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"grimoire/internal/culler"
	"grimoire/internal/model"
)

func storeWithURLs(t *testing.T, urls ...string) *model.Store {
	t.Helper()

	store := model.NewStore()
	folderID := store.Folders[0].ID
	var err error
	for _, u := range urls {
		store, _, err = model.AddBookmark(store, folderID, model.NewBookmarkParams{URL: u})
		if err != nil {
			t.Fatalf("failed to add bookmark: %v", err)
		}
	}
	return store
}

func resultFor(results []culler.Result, url string) *culler.Result {
	for i := range results {
		if results[i].Bookmark.URL == url {
			return &results[i]
		}
	}
	return nil
}

func TestCheckStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	store := storeWithURLs(t, server.URL+"/ok", server.URL+"/gone", server.URL+"/boom")

	results := culler.CheckStore(store, 2, 5*time.Second, nil, nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if r := resultFor(results, server.URL+"/ok"); r == nil || r.Status != culler.Healthy {
		t.Error("expected /ok to be healthy")
	}
	if r := resultFor(results, server.URL+"/gone"); r == nil || r.Status != culler.Dead {
		t.Error("expected /gone to be dead")
	}
	if r := resultFor(results, server.URL+"/boom"); r == nil || r.Status != culler.Unreachable {
		t.Error("expected /boom to be unreachable")
	}
}

func TestCheckStore_ExcludedDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store := storeWithURLs(t, server.URL+"/private")

	// httptest hosts are 127.0.0.1:port
	results := culler.CheckStore(store, 1, 5*time.Second, []string{"127.0.0.1"}, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != culler.Unreachable {
		t.Error("404 on excluded domain should not be marked dead")
	}
}

func TestCheckStore_Unreachable(t *testing.T) {
	store := storeWithURLs(t, "http://127.0.0.1:1/nothing")

	results := culler.CheckStore(store, 1, 2*time.Second, nil, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != culler.Unreachable {
		t.Errorf("expected unreachable, got status %d", results[0].Status)
	}
	if results[0].Error == "" {
		t.Error("expected a normalized error message")
	}
}

func TestCheckStore_Progress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := storeWithURLs(t, server.URL+"/a", server.URL+"/b")

	var mu sync.Mutex
	calls := 0
	culler.CheckStore(store, 2, 5*time.Second, nil, func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
	})

	if calls != 2 {
		t.Errorf("expected 2 progress callbacks, got %d", calls)
	}
}

func TestCheckStore_Empty(t *testing.T) {
	store := model.NewStore()
	if results := culler.CheckStore(store, 4, time.Second, nil, nil); results != nil {
		t.Errorf("expected nil results for empty store, got %d", len(results))
	}
}
