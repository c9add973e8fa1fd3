package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grimoire/internal/tui/layout"
)

// renderView creates the complete view for the current mode.
func (a App) renderView() string {
	switch a.mode {
	case ModeAddFolder:
		return a.renderAddFolderModal()
	case ModeUnlock:
		return a.renderUnlockModal()
	case ModeAddBookmark, ModeEnchanting:
		return a.renderAddBookmarkModal()
	case ModeDetail, ModeAddImage, ModeAddVideo, ModeRecording:
		return a.renderDetail()
	case ModeOracle, ModeConsulting:
		return a.renderOracle()
	case ModeConfirmDelete:
		return a.renderConfirm()
	case ModeHelp:
		return a.renderHelp()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneLayout := layout.CalculatePaneWidth(a.width, a.layoutConfig.Pane)

	sidebar := a.renderFolderPane(paneLayout.SidebarWidth, paneHeight)
	bookmarks := a.renderBookmarkPane(paneLayout.BookmarkWidth, paneHeight)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, bookmarks)

	title := a.styles.Title.Render("grimoire")
	statusBar := a.renderStatusBar()

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, columns, statusBar),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderFolderPane renders the folder sidebar.
func (a App) renderFolderPane(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	if len(a.store.Folders) == 0 {
		content.WriteString(a.styles.Empty.Render("(no folders)"))
	}

	offset := layout.CalculateViewportOffset(a.folderCursor, len(a.store.Folders), height)
	end := offset + height
	if end > len(a.store.Folders) {
		end = len(a.store.Folders)
	}

	for i := offset; i < end; i++ {
		folder := &a.store.Folders[i]

		label := folder.Name
		if !a.session.IsUnlocked(folder) {
			label += " *"
		} else if !folder.Open() {
			label += " ~"
		}
		label, _ = layout.TruncateText(label, itemWidth, a.layoutConfig.Text)

		style := a.styles.Item
		if i == a.folderCursor {
			if a.pane == PaneFolders {
				style = a.styles.ItemSelected
			} else {
				style = a.styles.Title
			}
		}
		content.WriteString(style.Render(label) + "\n")
	}

	paneStyle := a.styles.Pane
	if a.pane == PaneFolders {
		paneStyle = a.styles.PaneActive
	}
	return paneStyle.Width(width).Height(height).Render(content.String())
}

// renderBookmarkPane renders the bookmark list for the current folder.
func (a App) renderBookmarkPane(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	folder := a.currentFolder()
	switch {
	case folder == nil:
		content.WriteString(a.styles.Empty.Render("(nothing here)"))

	case !a.session.IsUnlocked(folder):
		content.WriteString(a.styles.Locked.Render("This folder is locked."))
		content.WriteString("\n")
		content.WriteString(a.styles.Empty.Render("Press l or enter to unlock."))

	case len(folder.Bookmarks) == 0:
		content.WriteString(a.styles.Empty.Render("(no bookmarks yet, press a)"))

	default:
		// Each bookmark takes two lines: title and URL
		rows := height / 2
		if rows < 1 {
			rows = 1
		}
		offset := layout.CalculateViewportOffset(a.bookmarkCursor, len(folder.Bookmarks), rows)
		end := offset + rows
		if end > len(folder.Bookmarks) {
			end = len(folder.Bookmarks)
		}

		for i := offset; i < end; i++ {
			bookmark := &folder.Bookmarks[i]

			title := bookmark.Title
			if n := len(bookmark.Media); n > 0 {
				title += fmt.Sprintf(" [%d]", n)
			}
			title, _ = layout.TruncateText(title, itemWidth, a.layoutConfig.Text)

			style := a.styles.Item
			if i == a.bookmarkCursor && a.pane == PaneBookmarks {
				style = a.styles.ItemSelected
			}
			content.WriteString(style.Render(title) + "\n")

			url, _ := layout.TruncateText(bookmark.URL, itemWidth-2, a.layoutConfig.Text)
			content.WriteString("  " + a.styles.URL.Render(url) + "\n")
		}
	}

	paneStyle := a.styles.Pane
	if a.pane == PaneBookmarks {
		paneStyle = a.styles.PaneActive
	}
	return paneStyle.Width(width).Height(height).Render(content.String())
}

// renderStatusBar renders the transient status line plus key hints.
func (a App) renderStatusBar() string {
	if a.status != "" {
		if a.statusIsErr {
			return a.styles.Help.Render(a.styles.Error.Render(a.status))
		}
		return a.styles.Help.Render(a.styles.Status.Render(a.status))
	}
	return a.styles.Help.Render(a.renderHints(a.getContextualHints()))
}

// renderModalBox centers a modal over the full terminal.
func (a App) renderModalBox(title, body string, widthPercent int) string {
	width := layout.CalculateModalWidth(a.width, widthPercent, a.layoutConfig.Modal)

	box := a.styles.PaneActive.Width(width).Render(
		a.styles.ModalTitle.Render(title) + "\n" + body,
	)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderAddFolderModal renders the new folder form.
func (a App) renderAddFolderModal() string {
	var body strings.Builder
	body.WriteString("Name\n")
	body.WriteString(a.folderForm.NameInput.View() + "\n\n")
	body.WriteString("Password\n")
	body.WriteString(a.folderForm.PasswordInput.View() + "\n")

	if a.folderForm.Err != nil {
		body.WriteString("\n" + a.styles.Error.Render(a.folderForm.Err.Error()) + "\n")
	}

	body.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "Tab", Desc: "next field"},
		{Key: "Enter", Desc: "create"},
		{Key: "Esc", Desc: "cancel"},
	}))

	return a.renderModalBox("New Folder", body.String(), a.layoutConfig.Modal.DefaultWidthPercent)
}

// renderUnlockModal renders the password prompt for a locked folder.
func (a App) renderUnlockModal() string {
	folder := a.store.FolderByID(a.unlock.FolderID)
	name := ""
	if folder != nil {
		name = folder.Name
	}

	var body strings.Builder
	body.WriteString(a.unlock.Input.View() + "\n")

	if a.unlock.Err != nil {
		body.WriteString("\n" + a.styles.Error.Render(a.unlock.Err.Error()) + "\n")
	}

	body.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "unlock"},
		{Key: "Esc", Desc: "cancel"},
	}))

	return a.renderModalBox("Unlock "+name, body.String(), a.layoutConfig.Modal.DefaultWidthPercent)
}

// renderAddBookmarkModal renders the add bookmark form.
func (a App) renderAddBookmarkModal() string {
	var body strings.Builder
	body.WriteString("URL\n")
	body.WriteString(a.bookmarkForm.URLInput.View() + "\n\n")
	body.WriteString("Title\n")
	body.WriteString(a.bookmarkForm.TitleInput.View() + "\n\n")
	body.WriteString("Description\n")
	body.WriteString(a.bookmarkForm.DescInput.View() + "\n")

	if a.mode == ModeEnchanting {
		body.WriteString("\n" + a.styles.Status.Render("Consulting the oracle...") + "\n")
	}
	if a.bookmarkForm.Err != nil {
		body.WriteString("\n" + a.styles.Error.Render(a.bookmarkForm.Err.Error()) + "\n")
	}

	body.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "Tab", Desc: "next field"},
		{Key: "ctrl+e", Desc: "auto-fill"},
		{Key: "Enter", Desc: "save"},
		{Key: "Esc", Desc: "cancel"},
	}))

	return a.renderModalBox("New Bookmark", body.String(), a.layoutConfig.Modal.LargeWidthPercent)
}

// renderDetail renders the bookmark detail view with its media list.
func (a App) renderDetail() string {
	bookmark := a.detailBookmark()
	if bookmark == nil {
		return a.renderModalBox("Bookmark", a.styles.Empty.Render("(gone)"), a.layoutConfig.Modal.DefaultWidthPercent)
	}

	var body strings.Builder
	body.WriteString(a.styles.URL.Render(bookmark.URL) + "\n")
	if bookmark.Description != "" {
		body.WriteString(a.styles.Desc.Render(bookmark.Description) + "\n")
	}
	body.WriteString(a.styles.Date.Render("saved "+bookmark.CreatedAt.Format("2006-01-02")) + "\n\n")

	body.WriteString(a.styles.Title.Render("Media") + "\n")
	if len(bookmark.Media) == 0 {
		body.WriteString(a.styles.Empty.Render("(none)") + "\n")
	} else {
		start, end := layout.CalculateVisibleListItems(
			a.layoutConfig.Modal.MediaMaxVisible, a.detail.MediaCursor, len(bookmark.Media))
		for i := start; i < end; i++ {
			item := &bookmark.Media[i]
			style := a.styles.Media
			prefix := "  "
			if i == a.detail.MediaCursor {
				style = a.styles.ItemSelected
				prefix = "> "
			}
			body.WriteString(prefix + style.Render(mediaLabel(item)) + "\n")
		}
	}

	switch a.mode {
	case ModeAddImage:
		body.WriteString("\nImage path\n" + a.mediaForm.Input.View() + "\n")
		if a.mediaForm.Err != nil {
			body.WriteString(a.styles.Error.Render(a.mediaForm.Err.Error()) + "\n")
		}
	case ModeAddVideo:
		body.WriteString("\nVideo URL\n" + a.mediaForm.Input.View() + "\n")
		if a.mediaForm.Err != nil {
			body.WriteString(a.styles.Error.Render(a.mediaForm.Err.Error()) + "\n")
		}
	case ModeRecording:
		body.WriteString("\n" + a.styles.Status.Render("Recording...") + "\n")
	default:
		body.WriteString("\n" + a.renderHintsInline([]Hint{
			{Key: "p", Desc: "image"},
			{Key: "v", Desc: "video"},
			{Key: "r", Desc: "voice"},
			{Key: "d", Desc: "delete media"},
			{Key: "y", Desc: "yank"},
			{Key: "o", Desc: "open"},
			{Key: "Esc", Desc: "back"},
		}))
	}

	if a.status != "" {
		style := a.styles.Status
		if a.statusIsErr {
			style = a.styles.Error
		}
		body.WriteString("\n" + style.Render(a.status))
	}

	return a.renderModalBox(bookmark.Title, body.String(), a.layoutConfig.Modal.LargeWidthPercent)
}

// renderOracle renders the chat overlay.
func (a App) renderOracle() string {
	var body strings.Builder

	if len(a.oracleChat.Transcript) == 0 {
		body.WriteString(a.styles.Empty.Render("The oracle sees only folders you have unlocked.") + "\n\n")
	}

	for _, exchange := range a.oracleChat.Transcript {
		body.WriteString(a.styles.UserSpeech.Render("you: "+exchange.Question) + "\n")
		body.WriteString(a.styles.OracleSpeech.Render(exchange.Answer) + "\n\n")
	}

	if a.mode == ModeConsulting {
		body.WriteString(a.styles.Status.Render("Consulting the oracle...") + "\n\n")
	}
	if a.oracleChat.Err != nil {
		body.WriteString(a.styles.Error.Render(a.oracleChat.Err.Error()) + "\n\n")
	}

	body.WriteString(a.oracleChat.Input.View() + "\n")
	body.WriteString("\n" + a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "ask"},
		{Key: "Esc", Desc: "close"},
	}))

	return a.renderModalBox("Oracle", body.String(), a.layoutConfig.Modal.LargeWidthPercent)
}

// renderConfirm renders the delete confirmation prompt.
func (a App) renderConfirm() string {
	what := "bookmark"
	if a.confirm.Kind == ConfirmMedia {
		what = "media"
	}

	body := fmt.Sprintf("Delete %s %q?\n\n", what, a.confirm.Label) +
		a.renderHintsInline([]Hint{
			{Key: "y/Enter", Desc: "delete"},
			{Key: "n/Esc", Desc: "keep"},
		})

	return a.renderModalBox("Confirm", body, a.layoutConfig.Modal.DefaultWidthPercent)
}

// renderHelp renders the key binding overview.
func (a App) renderHelp() string {
	rows := []Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "h/l", Desc: "switch pane"},
		{Key: "gg/G", Desc: "top/bottom"},
		{Key: "enter", Desc: "open folder or bookmark"},
		{Key: "a", Desc: "add bookmark"},
		{Key: "A", Desc: "add folder"},
		{Key: "d", Desc: "delete"},
		{Key: "y", Desc: "yank URL"},
		{Key: "o", Desc: "open in browser"},
		{Key: "L", Desc: "relock folder"},
		{Key: "i", Desc: "ask the oracle"},
		{Key: "q", Desc: "quit"},
	}

	var body strings.Builder
	for _, h := range rows {
		body.WriteString(fmt.Sprintf("%-8s %s\n", h.Key, h.Desc))
	}
	body.WriteString("\n" + a.styles.Empty.Render("press any key to close"))

	return a.renderModalBox("Keys", body.String(), a.layoutConfig.Modal.DefaultWidthPercent)
}
