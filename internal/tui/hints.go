package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "Enter", "j/k")
	Desc string // Short description (e.g., "confirm", "move")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar: "j/k:move h:back l:open"
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// getContextualHints returns the bottom bar hints for the normal view.
func (a App) getContextualHints() []Hint {
	hints := []Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "h/l", Desc: "pane"},
	}

	if a.pane == PaneFolders {
		hints = append(hints,
			Hint{Key: "enter", Desc: "open"},
			Hint{Key: "A", Desc: "new folder"},
		)
	} else {
		hints = append(hints,
			Hint{Key: "enter", Desc: "detail"},
			Hint{Key: "a", Desc: "add"},
			Hint{Key: "d", Desc: "delete"},
			Hint{Key: "y", Desc: "yank"},
			Hint{Key: "o", Desc: "open"},
		)
	}

	if folder := a.currentFolder(); folder != nil && !folder.Open() && a.session.IsUnlocked(folder) {
		hints = append(hints, Hint{Key: "L", Desc: "lock"})
	}

	hints = append(hints,
		Hint{Key: "i", Desc: "oracle"},
		Hint{Key: "?", Desc: "help"},
		Hint{Key: "q", Desc: "quit"},
	)
	return hints
}
