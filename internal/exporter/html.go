package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"grimoire/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bookmarks-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bookmarks-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the store to Netscape bookmark HTML format. Every
// folder becomes a heading regardless of its password; attached media has
// no representation in this format and is omitted.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for i := range store.Folders {
		writeFolder(&b, &store.Folders[i])
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeFolder writes one folder heading and its bookmarks.
func writeFolder(b *strings.Builder, folder *model.Folder) {
	prefix := strings.Repeat("    ", 1)

	fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(folder.Name))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)

	inner := strings.Repeat("    ", 2)
	for _, bookmark := range folder.Bookmarks {
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			inner,
			html.EscapeString(bookmark.URL),
			bookmark.CreatedAt.Unix(),
			html.EscapeString(bookmark.Title),
		)
	}

	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}
