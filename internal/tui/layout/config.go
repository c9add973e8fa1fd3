package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + title (1) + pane borders (2) + status/help bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// SidebarWidthPercent is the folder sidebar's share of terminal width.
	SidebarWidthPercent int

	// MinSidebarWidth is the minimum sidebar width.
	MinSidebarWidth int

	// WidthOffset is subtracted from terminal width before splitting.
	// Accounts for borders and spacing between the two panes.
	WidthOffset int

	// ContentPadding is subtracted from pane width for item rendering.
	// Accounts for pane border/padding on each side.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// LargeWidthPercent is used for modals needing more space (detail, chat).
	LargeWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// ChatMaxVisible: max transcript lines shown in the chat overlay.
	ChatMaxVisible int

	// MediaMaxVisible: max media rows shown in the detail view.
	MediaMaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit     int
	PasswordCharLimit int
	URLCharLimit      int
	TitleCharLimit    int
	DescCharLimit     int
	QuestionCharLimit int
	PathCharLimit     int

	// Display widths
	StandardWidth int
	WideWidth     int // Used for URL, path and question inputs
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:     7, // app padding (1) + title (1) + pane borders (2) + status/help bar (3)
			MinHeight:           5,
			SidebarWidthPercent: 28,
			MinSidebarWidth:     18,
			WidthOffset:         8,
			ContentPadding:      4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			LargeWidthPercent:   60,
			MinWidth:            50,
			MaxWidth:            90,
			ChatMaxVisible:      12,
			MediaMaxVisible:     8,
		},
		Input: InputConfig{
			NameCharLimit:     100,
			PasswordCharLimit: 100,
			URLCharLimit:      500,
			TitleCharLimit:    100,
			DescCharLimit:     300,
			QuestionCharLimit: 300,
			PathCharLimit:     500,
			StandardWidth:     40,
			WideWidth:         60,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
