package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		widthPercent  int
		want          int
	}{
		{"percentage of wide terminal", 200, 40, 80},
		{"clamped to min width", 100, 10, 50},
		{"clamped to max width", 400, 60, 90},
		{"narrow terminal caps below min", 40, 40, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateModalWidth(tt.terminalWidth, tt.widthPercent, cfg); got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d", tt.terminalWidth, tt.widthPercent, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name        string
		maxVisible  int
		selectedIdx int
		totalItems  int
		wantStart   int
		wantEnd     int
	}{
		{"all items fit", 10, 0, 5, 0, 5},
		{"selection at top", 5, 0, 20, 0, 5},
		{"selection scrolled", 5, 7, 20, 3, 8},
		{"selection at end", 5, 19, 20, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selectedIdx, tt.totalItems)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name          string
		text          string
		maxWidth      int
		want          string
		wantTruncated bool
	}{
		{"fits", "hello", 10, "hello", false},
		{"exact fit", "hello", 5, "hello", false},
		{"truncated", "hello world", 8, "hello...", true},
		{"tiny width", "hello", 2, "..", true},
		{"zero width", "hello", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.wantTruncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.wantTruncated)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mhello\x1b[0m world"
	if got := StripANSI(styled); got != "hello world" {
		t.Errorf("StripANSI = %q, want %q", got, "hello world")
	}
	if got := VisibleLength(styled); got != 11 {
		t.Errorf("VisibleLength = %d, want 11", got)
	}
}

func TestCalculatePaneHeight(t *testing.T) {
	cfg := DefaultConfig().Pane

	if got := CalculatePaneHeight(30, cfg); got != 23 {
		t.Errorf("expected 23, got %d", got)
	}
	// Small terminals floor at MinHeight
	if got := CalculatePaneHeight(8, cfg); got != cfg.MinHeight {
		t.Errorf("expected min height %d, got %d", cfg.MinHeight, got)
	}
}

func TestCalculatePaneWidth(t *testing.T) {
	cfg := DefaultConfig().Pane

	l := CalculatePaneWidth(120, cfg)
	if l.SidebarWidth < cfg.MinSidebarWidth {
		t.Errorf("sidebar below minimum: %d", l.SidebarWidth)
	}
	if l.SidebarWidth+l.BookmarkWidth > 120 {
		t.Error("panes exceed terminal width")
	}
	if l.BookmarkWidth <= l.SidebarWidth {
		t.Error("bookmark pane should be wider than the sidebar")
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name                            string
		selected, total, viewportHeight int
		want                            int
	}{
		{"everything visible", 3, 5, 10, 0},
		{"selection early", 1, 50, 10, 0},
		{"selection centered", 25, 50, 10, 20},
		{"selection at end", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
