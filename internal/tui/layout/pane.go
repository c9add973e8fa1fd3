package layout

// PaneLayout holds calculated pane dimensions for the two-pane view.
type PaneLayout struct {
	SidebarWidth  int
	BookmarkWidth int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidth splits the terminal between the folder sidebar and the
// bookmark pane.
func CalculatePaneWidth(terminalWidth int, cfg PaneConfig) PaneLayout {
	usable := terminalWidth - cfg.WidthOffset

	sidebar := usable * cfg.SidebarWidthPercent / 100
	if sidebar < cfg.MinSidebarWidth {
		sidebar = cfg.MinSidebarWidth
	}

	bookmarks := usable - sidebar
	if bookmarks < cfg.MinSidebarWidth {
		bookmarks = cfg.MinSidebarWidth
	}

	return PaneLayout{
		SidebarWidth:  sidebar,
		BookmarkWidth: bookmarks,
	}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
