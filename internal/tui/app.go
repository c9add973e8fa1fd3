package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"grimoire/internal/ai"
	"grimoire/internal/config"
	"grimoire/internal/media"
	"grimoire/internal/model"
	"grimoire/internal/storage"
	"grimoire/internal/tui/layout"
)

// statusDuration is how long transient status messages stay visible.
const statusDuration = 3 * time.Second

// App is the main bubbletea model for the bookmark manager.
type App struct {
	store   *model.Store
	session *model.Session
	storage storage.Storage
	config  *config.Config
	oracle  *ai.Client // nil when no API key is configured

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode Mode
	pane Pane

	folderCursor   int
	bookmarkCursor int

	folderForm   FolderFormState
	unlock       UnlockState
	bookmarkForm BookmarkFormState
	detail       DetailState
	mediaForm    MediaFormState
	oracleChat   OracleState
	confirm      ConfirmState

	status      string
	statusIsErr bool

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store   *model.Store
	Session *model.Session // optional, a fresh session is used if nil
	Storage storage.Storage
	Config  *config.Config
	Oracle  *ai.Client // optional, AI features report a hint when nil
	Keys    *KeyMap    // optional, uses default if nil
	Styles  *Styles    // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	session := params.Session
	if session == nil {
		session = model.NewSession()
	}

	cfg := params.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	layoutCfg := layout.DefaultConfig()

	return App{
		store:        params.Store,
		session:      session,
		storage:      params.Storage,
		config:       cfg,
		oracle:       params.Oracle,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		folderForm:   NewFolderFormState(layoutCfg),
		unlock:       NewUnlockState(layoutCfg),
		bookmarkForm: NewBookmarkFormState(layoutCfg),
		mediaForm:    NewMediaFormState(layoutCfg),
		oracleChat:   NewOracleState(layoutCfg),
		width:        80,
		height:       24,
	}
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// ActivePane returns which list has focus.
func (a App) ActivePane() Pane {
	return a.pane
}

// FolderCursor returns the sidebar cursor position.
func (a App) FolderCursor() int {
	return a.folderCursor
}

// BookmarkCursor returns the bookmark pane cursor position.
func (a App) BookmarkCursor() int {
	return a.bookmarkCursor
}

// Store returns the current store snapshot.
func (a App) Store() *model.Store {
	return a.store
}

// Session returns the unlock session.
func (a App) Session() *model.Session {
	return a.session
}

// currentFolder returns the folder under the sidebar cursor, or nil.
func (a *App) currentFolder() *model.Folder {
	if a.folderCursor < 0 || a.folderCursor >= len(a.store.Folders) {
		return nil
	}
	return &a.store.Folders[a.folderCursor]
}

// visibleBookmarks returns the bookmarks of the current folder, or nil when
// the folder is locked.
func (a *App) visibleBookmarks() []model.Bookmark {
	folder := a.currentFolder()
	if folder == nil || !a.session.IsUnlocked(folder) {
		return nil
	}
	return folder.Bookmarks
}

// selectedBookmark returns the bookmark under the cursor, or nil.
func (a *App) selectedBookmark() *model.Bookmark {
	bookmarks := a.visibleBookmarks()
	if a.bookmarkCursor < 0 || a.bookmarkCursor >= len(bookmarks) {
		return nil
	}
	return &bookmarks[a.bookmarkCursor]
}

// detailBookmark resolves the bookmark shown in the detail view.
func (a *App) detailBookmark() *model.Bookmark {
	folder := a.currentFolder()
	if folder == nil {
		return nil
	}
	return folder.BookmarkByID(a.detail.BookmarkID)
}

// applyStore swaps in a new store snapshot and clamps both cursors.
func (a *App) applyStore(next *model.Store) {
	a.store = next
	if a.folderCursor >= len(a.store.Folders) {
		a.folderCursor = len(a.store.Folders) - 1
	}
	if a.folderCursor < 0 {
		a.folderCursor = 0
	}
	if n := len(a.visibleBookmarks()); a.bookmarkCursor >= n {
		a.bookmarkCursor = n - 1
	}
	if a.bookmarkCursor < 0 {
		a.bookmarkCursor = 0
	}
}

// Messages produced by background commands.
type (
	saveDoneMsg    struct{ err error }
	enchantMsg     struct {
		enrichment *ai.Enrichment
		err        error
	}
	oracleAnswerMsg struct {
		question string
		answer   string
		err      error
	}
	recordDoneMsg struct {
		item model.MediaItem
		err  error
	}
	clearStatusMsg struct{}
)

// persistCmd writes the current snapshot in the background.
func (a *App) persistCmd() tea.Cmd {
	store := a.store
	backend := a.storage
	return func() tea.Msg {
		if backend == nil {
			return saveDoneMsg{}
		}
		return saveDoneMsg{err: backend.Save(store)}
	}
}

// enchantCmd asks the AI for a title and description for the given URL.
func (a *App) enchantCmd(url string) tea.Cmd {
	client := a.oracle
	return func() tea.Msg {
		enrichment, err := client.Enrich(url)
		return enchantMsg{enrichment: enrichment, err: err}
	}
}

// oracleCmd sends a question about the currently visible bookmarks.
func (a *App) oracleCmd(question string) tea.Cmd {
	client := a.oracle
	context := ai.BuildContext(a.store, a.session)
	return func() tea.Msg {
		answer, err := client.Ask(context, question)
		return oracleAnswerMsg{question: question, answer: answer, err: err}
	}
}

// recordCmd runs the configured recorder command and encodes the result.
func (a *App) recordCmd() tea.Cmd {
	command := a.config.RecorderCommand
	return func() tea.Msg {
		item, err := media.RecordVoice(command)
		return recordDoneMsg{item: item, err: err}
	}
}

// setStatus shows a transient status line message.
func (a *App) setStatus(msg string, isErr bool) tea.Cmd {
	a.status = msg
	a.statusIsErr = isErr
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case saveDoneMsg:
		if msg.err != nil {
			return a, a.setStatus("save failed: "+msg.err.Error(), true)
		}
		return a, nil

	case enchantMsg:
		return a.updateEnchantResult(msg)

	case oracleAnswerMsg:
		return a.updateOracleResult(msg)

	case recordDoneMsg:
		return a.updateRecordResult(msg)

	case clearStatusMsg:
		a.status = ""
		a.statusIsErr = false
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeAddFolder:
			return a.updateAddFolder(msg)
		case ModeUnlock:
			return a.updateUnlock(msg)
		case ModeAddBookmark:
			return a.updateAddBookmark(msg)
		case ModeEnchanting, ModeConsulting, ModeRecording:
			// A background task owns the screen; only allow bailing out.
			if msg.Type == tea.KeyCtrlC {
				return a, tea.Quit
			}
			return a, nil
		case ModeDetail:
			return a.updateDetail(msg)
		case ModeAddImage, ModeAddVideo:
			return a.updateMediaForm(msg)
		case ModeOracle:
			return a.updateOracle(msg)
		case ModeConfirmDelete:
			return a.updateConfirm(msg)
		case ModeHelp:
			a.mode = ModeNormal
			return a, nil
		}
	}

	return a, nil
}

// updateNormal handles keys in the two-pane browse view.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			if a.pane == PaneFolders {
				a.folderCursor = 0
			} else {
				a.bookmarkCursor = 0
			}
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.pane == PaneFolders {
			if a.folderCursor < len(a.store.Folders)-1 {
				a.folderCursor++
				a.bookmarkCursor = 0
			}
		} else if n := len(a.visibleBookmarks()); n > 0 && a.bookmarkCursor < n-1 {
			a.bookmarkCursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.pane == PaneFolders {
			if a.folderCursor > 0 {
				a.folderCursor--
				a.bookmarkCursor = 0
			}
		} else if a.bookmarkCursor > 0 {
			a.bookmarkCursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if a.pane == PaneFolders {
			if len(a.store.Folders) > 0 {
				a.folderCursor = len(a.store.Folders) - 1
				a.bookmarkCursor = 0
			}
		} else if n := len(a.visibleBookmarks()); n > 0 {
			a.bookmarkCursor = n - 1
		}

	case key.Matches(msg, a.keys.Left):
		a.pane = PaneFolders

	case key.Matches(msg, a.keys.Right):
		return a.focusBookmarks()

	case key.Matches(msg, a.keys.Select):
		if a.pane == PaneFolders {
			return a.focusBookmarks()
		}
		if bookmark := a.selectedBookmark(); bookmark != nil {
			a.detail.BookmarkID = bookmark.ID
			a.detail.MediaCursor = 0
			a.mode = ModeDetail
		}

	case key.Matches(msg, a.keys.AddFolder):
		a.folderForm.Reset()
		a.folderForm.NameInput.Focus()
		a.mode = ModeAddFolder

	case key.Matches(msg, a.keys.AddBookmark):
		folder := a.currentFolder()
		if folder == nil {
			return a, nil
		}
		if !a.session.IsUnlocked(folder) {
			return a, a.setStatus("unlock the folder first", true)
		}
		a.bookmarkForm.Reset()
		a.bookmarkForm.URLInput.Focus()
		a.mode = ModeAddBookmark

	case key.Matches(msg, a.keys.Delete):
		if a.pane != PaneBookmarks {
			return a, nil
		}
		if bookmark := a.selectedBookmark(); bookmark != nil {
			a.confirm = ConfirmState{
				Kind:       ConfirmBookmark,
				FolderID:   a.currentFolder().ID,
				BookmarkID: bookmark.ID,
				Label:      bookmark.Title,
			}
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.YankURL):
		if bookmark := a.selectedBookmark(); bookmark != nil {
			if err := clipboardWrite(bookmark.URL); err != nil {
				return a, a.setStatus("clipboard: "+err.Error(), true)
			}
			return a, a.setStatus("copied "+bookmark.URL, false)
		}

	case key.Matches(msg, a.keys.OpenURL):
		if bookmark := a.selectedBookmark(); bookmark != nil {
			if err := openBrowser(bookmark.URL); err != nil {
				return a, a.setStatus("open: "+err.Error(), true)
			}
			return a, a.setStatus("opened "+bookmark.URL, false)
		}

	case key.Matches(msg, a.keys.Lock):
		if folder := a.currentFolder(); folder != nil && !folder.Open() {
			a.session.Lock(folder.ID)
			a.pane = PaneFolders
			a.bookmarkCursor = 0
			return a, a.setStatus("locked "+folder.Name, false)
		}

	case key.Matches(msg, a.keys.Oracle):
		a.oracleChat.Err = nil
		a.oracleChat.Input.Reset()
		a.oracleChat.Input.Focus()
		a.mode = ModeOracle

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// focusBookmarks moves focus to the bookmark pane, detouring through the
// unlock prompt for locked folders.
func (a App) focusBookmarks() (tea.Model, tea.Cmd) {
	folder := a.currentFolder()
	if folder == nil {
		return a, nil
	}
	if !a.session.IsUnlocked(folder) {
		a.unlock.Reset()
		a.unlock.FolderID = folder.ID
		a.unlock.Input.Focus()
		a.mode = ModeUnlock
		return a, nil
	}
	a.pane = PaneBookmarks
	return a, nil
}

// updateEnchantResult folds the auto-fill reply into the bookmark form.
func (a App) updateEnchantResult(msg enchantMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeEnchanting {
		return a, nil
	}
	a.mode = ModeAddBookmark
	if msg.err != nil {
		a.bookmarkForm.Err = msg.err
		return a, nil
	}
	// Keep whatever the user already typed
	if a.bookmarkForm.TitleInput.Value() == "" && msg.enrichment.Title != "" {
		a.bookmarkForm.TitleInput.SetValue(msg.enrichment.Title)
	}
	if a.bookmarkForm.DescInput.Value() == "" && msg.enrichment.Description != "" {
		a.bookmarkForm.DescInput.SetValue(msg.enrichment.Description)
	}
	return a, nil
}

// updateOracleResult appends the oracle's answer to the transcript.
func (a App) updateOracleResult(msg oracleAnswerMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeConsulting {
		return a, nil
	}
	a.mode = ModeOracle
	if msg.err != nil {
		a.oracleChat.Err = msg.err
		return a, nil
	}
	a.oracleChat.Transcript = append(a.oracleChat.Transcript, Exchange{
		Question: msg.question,
		Answer:   msg.answer,
	})
	return a, nil
}

// updateRecordResult attaches the finished voice note.
func (a App) updateRecordResult(msg recordDoneMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeRecording {
		return a, nil
	}
	a.mode = ModeDetail
	if msg.err != nil {
		return a, a.setStatus("recording failed: "+msg.err.Error(), true)
	}

	folder := a.currentFolder()
	bookmark := a.detailBookmark()
	if folder == nil || bookmark == nil {
		return a, nil
	}

	next, err := model.AddMedia(a.store, folder.ID, bookmark.ID, msg.item)
	if err != nil {
		return a, a.setStatus(err.Error(), true)
	}
	a.applyStore(next)
	return a, tea.Batch(a.persistCmd(), a.setStatus("voice note attached", false))
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
