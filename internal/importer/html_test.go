package importer_test

import (
	"strings"
	"testing"
	"time"

	"grimoire/internal/importer"
	"grimoire/internal/model"
)

func TestParseHTML_SingleBookmark(t *testing.T) {
	doc := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	folders, err := importer.ParseHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(folders) != 1 {
		t.Fatalf("expected 1 folder for root bookmarks, got %d", len(folders))
	}
	if folders[0].Name != "" {
		t.Errorf("root folder should have empty name, got %q", folders[0].Name)
	}
	if len(folders[0].Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(folders[0].Bookmarks))
	}

	b := folders[0].Bookmarks[0]
	if b.Title != "Example Site" {
		t.Errorf("expected title 'Example Site', got %q", b.Title)
	}
	if b.URL != "https://example.com" {
		t.Errorf("expected URL 'https://example.com', got %q", b.URL)
	}
	if !b.CreatedAt.Equal(time.Unix(1234567890, 0)) {
		t.Errorf("expected ADD_DATE timestamp, got %v", b.CreatedAt)
	}
	if b.ID == "" {
		t.Error("expected non-empty ID")
	}
}

func TestParseHTML_FoldersAndNesting(t *testing.T) {
	doc := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Development</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">React</H3>
        <DL><p>
            <DT><A HREF="https://react.dev" ADD_DATE="1234567890">React Docs</A>
        </DL><p>
        <DT><A HREF="https://github.com" ADD_DATE="1234567890">GitHub</A>
    </DL><p>
    <DT><A HREF="https://google.com" ADD_DATE="1234567890">Google</A>
</DL><p>`

	folders, err := importer.ParseHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Root bookmark folder + Development + React
	if len(folders) != 3 {
		t.Fatalf("expected 3 folders, got %d", len(folders))
	}

	byName := make(map[string]model.Folder)
	for _, f := range folders {
		byName[f.Name] = f
	}

	dev, ok := byName["Development"]
	if !ok {
		t.Fatal("Development folder not found")
	}
	if len(dev.Bookmarks) != 1 || dev.Bookmarks[0].Title != "GitHub" {
		t.Error("expected GitHub directly in Development")
	}
	if !dev.Open() {
		t.Error("imported folders should have no password")
	}

	react, ok := byName["React"]
	if !ok {
		t.Fatal("React folder not found")
	}
	if len(react.Bookmarks) != 1 || react.Bookmarks[0].Title != "React Docs" {
		t.Error("expected React Docs in React")
	}

	root := byName[""]
	if len(root.Bookmarks) != 1 || root.Bookmarks[0].Title != "Google" {
		t.Error("expected Google at root level")
	}
}

func TestImportHTML_MergesIntoStore(t *testing.T) {
	doc := `<DL><p>
    <DT><A HREF="https://root.example.com">Root Link</A>
    <DT><H3>Development</H3>
    <DL><p>
        <DT><A HREF="github.com">GitHub</A>
    </DL><p>
</DL><p>`

	store := model.NewStore()
	next, imported, skipped, err := importer.ImportHTML(store, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if imported != 2 {
		t.Errorf("expected 2 imported, got %d", imported)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}

	// Root bookmark lands in the default folder
	def := next.FolderByName(model.DefaultFolderName)
	if def == nil {
		t.Fatal("default folder missing")
	}
	if len(def.Bookmarks) != 1 || def.Bookmarks[0].Title != "Root Link" {
		t.Error("expected Root Link in default folder")
	}

	dev := next.FolderByName("Development")
	if dev == nil {
		t.Fatal("Development folder not created")
	}
	if len(dev.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark in Development, got %d", len(dev.Bookmarks))
	}
	if dev.Bookmarks[0].URL != "https://github.com" {
		t.Errorf("expected normalized URL, got %q", dev.Bookmarks[0].URL)
	}

	// Original store untouched
	if store.FolderByName("Development") != nil {
		t.Error("import mutated the original store")
	}
}

func TestImportHTML_ReusesExistingFolder(t *testing.T) {
	doc := `<DL><p>
    <DT><H3>Inspiration</H3>
    <DL><p>
        <DT><A HREF="https://example.com">Example</A>
    </DL><p>
</DL><p>`

	store := model.NewStore()
	next, imported, _, err := importer.ImportHTML(store, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 {
		t.Errorf("expected 1 imported, got %d", imported)
	}

	if len(next.Folders) != 1 {
		t.Fatalf("expected import to reuse the existing folder, got %d folders", len(next.Folders))
	}
	if len(next.Folders[0].Bookmarks) != 1 {
		t.Errorf("expected 1 bookmark in reused folder, got %d", len(next.Folders[0].Bookmarks))
	}
}

func TestImportHTML_SkipsInvalidURLs(t *testing.T) {
	doc := `<DL><p>
    <DT><A HREF="ftp://files.example.com">FTP Link</A>
    <DT><A HREF="https://ok.example.com">Fine</A>
</DL><p>`

	store := model.NewStore()
	_, imported, skipped, err := importer.ImportHTML(store, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 {
		t.Errorf("expected 1 imported, got %d", imported)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", skipped)
	}
}

func TestImportHTML_TitleDefaultsToHost(t *testing.T) {
	doc := `<DL><p>
    <DT><A HREF="https://example.com/page"></A>
</DL><p>`

	store := model.NewStore()
	next, _, _, err := importer.ImportHTML(store, strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := next.FolderByName(model.DefaultFolderName)
	if len(def.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(def.Bookmarks))
	}
	if def.Bookmarks[0].Title != "example.com" {
		t.Errorf("expected host as title, got %q", def.Bookmarks[0].Title)
	}
}
