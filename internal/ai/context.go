package ai

import (
	"fmt"
	"strings"

	"grimoire/internal/model"
)

// BuildContext serializes the bookmark collection for use as Oracle
// context: folder names with each bookmark's title, URL, and description.
// Locked folders contribute only their name, so the Oracle never quotes
// contents the user has not unlocked this session.
func BuildContext(store *model.Store, session *model.Session) string {
	var sb strings.Builder

	sb.WriteString("Bookmark collection:\n")

	for i := range store.Folders {
		folder := &store.Folders[i]
		fmt.Fprintf(&sb, "\nFolder: %s\n", folder.Name)

		if !session.IsUnlocked(folder) {
			sb.WriteString("  (locked)\n")
			continue
		}

		if len(folder.Bookmarks) == 0 {
			sb.WriteString("  (empty)\n")
			continue
		}

		for _, b := range folder.Bookmarks {
			fmt.Fprintf(&sb, "  - %s | %s", b.Title, b.URL)
			if b.Description != "" {
				fmt.Fprintf(&sb, " | %s", b.Description)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
