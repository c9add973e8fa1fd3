package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"grimoire/internal/model"
	"grimoire/internal/urlutil"
)

// ImportHTML parses Netscape bookmark HTML and merges its contents into the
// store. Every folder heading becomes a folder without a password; bookmarks
// outside any heading land in the default folder. Folders are matched to
// existing ones by name. Returns the new store and the number of bookmarks
// imported and skipped (missing or invalid URL).
func ImportHTML(store *model.Store, r io.Reader) (*model.Store, int, int, error) {
	parsed, err := ParseHTML(r)
	if err != nil {
		return store, 0, 0, err
	}

	next := store.Clone()
	imported := 0
	skipped := 0

	for _, src := range parsed {
		name := src.Name
		if name == "" {
			name = model.DefaultFolderName
		}

		dst := next.FolderByName(name)
		if dst == nil {
			folder := model.NewFolder(model.NewFolderParams{Name: name})
			next.Folders = append(next.Folders, folder)
			dst = &next.Folders[len(next.Folders)-1]
		}

		for _, b := range src.Bookmarks {
			normalized, err := urlutil.Normalize(b.URL)
			if err != nil {
				skipped++
				continue
			}
			b.URL = normalized
			if b.Title == "" {
				b.Title = urlutil.Host(normalized)
			}
			dst.Bookmarks = append(dst.Bookmarks, b)
			imported++
		}
	}

	return next, imported, skipped, nil
}

// ParseHTML parses Netscape bookmark HTML into folders. The folder with an
// empty name holds bookmarks found outside any heading; it is only present
// when such bookmarks exist. Nested headings each become their own folder.
func ParseHTML(r io.Reader) ([]model.Folder, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var root model.Folder
	var folders []model.Folder

	// Track the enclosing folder while walking nested DLs
	var folderStack []int   // indexes into folders, empty = root
	pendingFolder := -1     // folder waiting to be pushed on next DL

	current := func() *model.Folder {
		if len(folderStack) == 0 {
			return &root
		}
		return &folders[folderStack[len(folderStack)-1]]
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get name from text content
				name := getTextContent(n)
				if name != "" {
					folders = append(folders, model.NewFolder(model.NewFolderParams{Name: name}))
					// Pushed when we see the folder's DL
					pendingFolder = len(folders) - 1
				}
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)

				// Parse ADD_DATE timestamp
				createdAt := time.Now()
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						createdAt = time.Unix(ts, 0)
					}
				}

				folder := current()
				folder.Bookmarks = append(folder.Bookmarks, model.Bookmark{
					ID:        model.GenerateUUID(),
					Title:     title,
					URL:       href,
					CreatedAt: createdAt,
					Media:     []model.MediaItem{},
				})
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushed := false
				if pendingFolder >= 0 {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = -1
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Children handled above
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	var result []model.Folder
	if len(root.Bookmarks) > 0 {
		root.ID = model.GenerateUUID()
		result = append(result, root)
	}
	result = append(result, folders...)
	return result, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
