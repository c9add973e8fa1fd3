package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"grimoire/internal/media"
	"grimoire/internal/model"
)

// updateAddFolder handles keys in the new folder modal.
func (a App) updateAddFolder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		a.folderForm.Focus = (a.folderForm.Focus + 1) % 2
		if a.folderForm.Focus == 0 {
			a.folderForm.NameInput.Focus()
			a.folderForm.PasswordInput.Blur()
		} else {
			a.folderForm.NameInput.Blur()
			a.folderForm.PasswordInput.Focus()
		}
		return a, nil

	case tea.KeyEnter:
		next, folder, err := model.CreateFolder(
			a.store,
			a.folderForm.NameInput.Value(),
			a.folderForm.PasswordInput.Value(),
		)
		if err != nil {
			a.folderForm.Err = err
			return a, nil
		}
		a.applyStore(next)
		// Jump to the new folder; creating it counts as unlocking it
		for i := range a.store.Folders {
			if a.store.Folders[i].ID == folder.ID {
				a.folderCursor = i
				a.session.Unlock(&a.store.Folders[i], a.store.Folders[i].Password)
				break
			}
		}
		a.mode = ModeNormal
		return a, tea.Batch(a.persistCmd(), a.setStatus("created "+folder.Name, false))
	}

	var cmd tea.Cmd
	if a.folderForm.Focus == 0 {
		a.folderForm.NameInput, cmd = a.folderForm.NameInput.Update(msg)
	} else {
		a.folderForm.PasswordInput, cmd = a.folderForm.PasswordInput.Update(msg)
	}
	return a, cmd
}

// updateUnlock handles keys in the unlock prompt.
func (a App) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.unlock.Reset()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEnter:
		folder := a.store.FolderByID(a.unlock.FolderID)
		if err := a.session.Unlock(folder, a.unlock.Input.Value()); err != nil {
			// Wrong guesses stay in the prompt; there is no lockout
			a.unlock.Err = err
			a.unlock.Input.Reset()
			return a, nil
		}
		a.unlock.Reset()
		a.pane = PaneBookmarks
		a.bookmarkCursor = 0
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.unlock.Input, cmd = a.unlock.Input.Update(msg)
	return a, cmd
}

// updateAddBookmark handles keys in the add bookmark modal.
func (a App) updateAddBookmark(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown:
		a.setBookmarkFormFocus((a.bookmarkForm.Focus + 1) % 3)
		return a, nil

	case msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp:
		a.setBookmarkFormFocus((a.bookmarkForm.Focus + 2) % 3)
		return a, nil

	case key.Matches(msg, a.keys.Enchant):
		if a.oracle == nil {
			a.bookmarkForm.Err = errNoOracle
			return a, nil
		}
		url := a.bookmarkForm.URLInput.Value()
		if url == "" {
			return a, nil
		}
		a.bookmarkForm.Err = nil
		a.mode = ModeEnchanting
		return a, a.enchantCmd(url)

	case msg.Type == tea.KeyEnter:
		folder := a.currentFolder()
		if folder == nil {
			a.mode = ModeNormal
			return a, nil
		}
		next, bookmark, err := model.AddBookmark(a.store, folder.ID, model.NewBookmarkParams{
			URL:         a.bookmarkForm.URLInput.Value(),
			Title:       a.bookmarkForm.TitleInput.Value(),
			Description: a.bookmarkForm.DescInput.Value(),
		})
		if err != nil {
			a.bookmarkForm.Err = err
			return a, nil
		}
		a.applyStore(next)
		a.pane = PaneBookmarks
		a.bookmarkCursor = 0 // new bookmarks land at the top
		a.mode = ModeNormal
		return a, tea.Batch(a.persistCmd(), a.setStatus("added "+bookmark.Title, false))
	}

	var cmd tea.Cmd
	switch a.bookmarkForm.Focus {
	case 0:
		a.bookmarkForm.URLInput, cmd = a.bookmarkForm.URLInput.Update(msg)
	case 1:
		a.bookmarkForm.TitleInput, cmd = a.bookmarkForm.TitleInput.Update(msg)
	default:
		a.bookmarkForm.DescInput, cmd = a.bookmarkForm.DescInput.Update(msg)
	}
	return a, cmd
}

// setBookmarkFormFocus moves focus between the three form inputs.
func (a *App) setBookmarkFormFocus(focus int) {
	a.bookmarkForm.Focus = focus
	a.bookmarkForm.URLInput.Blur()
	a.bookmarkForm.TitleInput.Blur()
	a.bookmarkForm.DescInput.Blur()
	switch focus {
	case 0:
		a.bookmarkForm.URLInput.Focus()
	case 1:
		a.bookmarkForm.TitleInput.Focus()
	default:
		a.bookmarkForm.DescInput.Focus()
	}
}

// updateDetail handles keys in the bookmark detail view.
func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bookmark := a.detailBookmark()
	if bookmark == nil {
		a.detail.Reset()
		a.mode = ModeNormal
		return a, nil
	}

	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, a.keys.Left), key.Matches(msg, a.keys.Quit):
		a.detail.Reset()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.detail.MediaCursor < len(bookmark.Media)-1 {
			a.detail.MediaCursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.detail.MediaCursor > 0 {
			a.detail.MediaCursor--
		}

	case key.Matches(msg, a.keys.YankURL):
		if err := clipboardWrite(bookmark.URL); err != nil {
			return a, a.setStatus("clipboard: "+err.Error(), true)
		}
		return a, a.setStatus("copied "+bookmark.URL, false)

	case key.Matches(msg, a.keys.OpenURL):
		if err := openBrowser(bookmark.URL); err != nil {
			return a, a.setStatus("open: "+err.Error(), true)
		}

	case key.Matches(msg, a.keys.AddImage):
		a.mediaForm.Reset()
		a.mediaForm.Input.Placeholder = "/path/to/image.png"
		a.mediaForm.Input.Focus()
		a.mode = ModeAddImage

	case key.Matches(msg, a.keys.AddVideo):
		a.mediaForm.Reset()
		a.mediaForm.Input.Placeholder = "https://youtube.com/watch?v=..."
		a.mediaForm.Input.Focus()
		a.mode = ModeAddVideo

	case key.Matches(msg, a.keys.RecordVoice):
		if len(a.config.RecorderCommand) == 0 {
			return a, a.setStatus("no recorder command configured", true)
		}
		a.mode = ModeRecording
		return a, a.recordCmd()

	case key.Matches(msg, a.keys.Delete):
		if len(bookmark.Media) == 0 || a.detail.MediaCursor >= len(bookmark.Media) {
			return a, nil
		}
		item := bookmark.Media[a.detail.MediaCursor]
		a.confirm = ConfirmState{
			Kind:       ConfirmMedia,
			FolderID:   a.currentFolder().ID,
			BookmarkID: bookmark.ID,
			MediaID:    item.ID,
			Label:      mediaLabel(&item),
		}
		a.mode = ModeConfirmDelete
	}

	return a, nil
}

// updateMediaForm handles the attach image and attach video prompts.
func (a App) updateMediaForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mediaForm.Reset()
		a.mode = ModeDetail
		return a, nil

	case tea.KeyEnter:
		folder := a.currentFolder()
		bookmark := a.detailBookmark()
		if folder == nil || bookmark == nil {
			a.mode = ModeNormal
			return a, nil
		}

		var item model.MediaItem
		var err error
		if a.mode == ModeAddImage {
			item, err = media.LoadImage(a.mediaForm.Input.Value())
		} else {
			item, err = media.NewVideo(a.mediaForm.Input.Value())
		}
		if err != nil {
			a.mediaForm.Err = err
			return a, nil
		}

		next, err := model.AddMedia(a.store, folder.ID, bookmark.ID, item)
		if err != nil {
			a.mediaForm.Err = err
			return a, nil
		}
		a.applyStore(next)
		a.mediaForm.Reset()
		a.mode = ModeDetail
		return a, tea.Batch(a.persistCmd(), a.setStatus("attached "+mediaLabel(&item), false))
	}

	var cmd tea.Cmd
	a.mediaForm.Input, cmd = a.mediaForm.Input.Update(msg)
	return a, cmd
}

// updateOracle handles keys in the oracle chat overlay.
func (a App) updateOracle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEnter:
		question := a.oracleChat.Input.Value()
		if question == "" {
			return a, nil
		}
		if a.oracle == nil {
			a.oracleChat.Err = errNoOracle
			return a, nil
		}
		a.oracleChat.Err = nil
		a.oracleChat.Input.Reset()
		a.mode = ModeConsulting
		return a, a.oracleCmd(question)
	}

	var cmd tea.Cmd
	a.oracleChat.Input, cmd = a.oracleChat.Input.Update(msg)
	return a, cmd
}

// updateConfirm handles the delete confirmation prompt.
func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	returnMode := ModeNormal
	if a.confirm.Kind == ConfirmMedia {
		returnMode = ModeDetail
	}

	switch {
	case msg.Type == tea.KeyEsc, msg.String() == "n":
		a.confirm.Reset()
		a.mode = returnMode
		return a, nil

	case msg.Type == tea.KeyEnter, msg.String() == "y":
		var next *model.Store
		var err error
		if a.confirm.Kind == ConfirmBookmark {
			next, err = model.DeleteBookmark(a.store, a.confirm.FolderID, a.confirm.BookmarkID)
		} else {
			next, err = model.DeleteMedia(a.store, a.confirm.FolderID, a.confirm.BookmarkID, a.confirm.MediaID)
			if a.detail.MediaCursor > 0 {
				a.detail.MediaCursor--
			}
		}
		label := a.confirm.Label
		a.confirm.Reset()
		a.mode = returnMode
		if err != nil {
			return a, a.setStatus(err.Error(), true)
		}
		a.applyStore(next)
		return a, tea.Batch(a.persistCmd(), a.setStatus("deleted "+label, false))
	}

	return a, nil
}
