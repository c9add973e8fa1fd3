package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"grimoire/internal/tui/layout"
)

// Mode identifies which screen or modal currently owns the keyboard.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddFolder
	ModeUnlock
	ModeAddBookmark
	ModeEnchanting // waiting for the auto-fill reply
	ModeDetail
	ModeAddImage
	ModeAddVideo
	ModeRecording
	ModeOracle
	ModeConsulting // waiting for the oracle's answer
	ModeConfirmDelete
	ModeHelp
)

// Pane identifies which list has focus in the normal view.
type Pane int

const (
	PaneFolders Pane = iota
	PaneBookmarks
)

// FolderFormState holds state for the new folder modal.
type FolderFormState struct {
	NameInput     textinput.Model
	PasswordInput textinput.Model
	Focus         int // 0 = name, 1 = password
	Err           error
}

// NewFolderFormState creates a FolderFormState with initialized inputs.
func NewFolderFormState(cfg layout.LayoutConfig) FolderFormState {
	name := textinput.New()
	name.Placeholder = "Folder name"
	name.CharLimit = cfg.Input.NameCharLimit
	name.Width = cfg.Input.StandardWidth

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = cfg.Input.PasswordCharLimit
	password.Width = cfg.Input.StandardWidth
	password.EchoMode = textinput.EchoPassword

	return FolderFormState{
		NameInput:     name,
		PasswordInput: password,
	}
}

// Reset clears the form for a new modal session.
func (f *FolderFormState) Reset() {
	f.NameInput.Reset()
	f.PasswordInput.Reset()
	f.Focus = 0
	f.Err = nil
}

// UnlockState holds state for the folder unlock prompt.
type UnlockState struct {
	Input    textinput.Model
	FolderID string
	Err      error
}

// NewUnlockState creates an UnlockState with an initialized password input.
func NewUnlockState(cfg layout.LayoutConfig) UnlockState {
	input := textinput.New()
	input.Placeholder = "Password"
	input.CharLimit = cfg.Input.PasswordCharLimit
	input.Width = cfg.Input.StandardWidth
	input.EchoMode = textinput.EchoPassword

	return UnlockState{Input: input}
}

// Reset clears the prompt for a new unlock attempt.
func (u *UnlockState) Reset() {
	u.Input.Reset()
	u.FolderID = ""
	u.Err = nil
}

// BookmarkFormState holds state for the add bookmark modal.
type BookmarkFormState struct {
	URLInput   textinput.Model
	TitleInput textinput.Model
	DescInput  textinput.Model
	Focus      int // 0 = URL, 1 = title, 2 = description
	Err        error
}

// NewBookmarkFormState creates a BookmarkFormState with initialized inputs.
func NewBookmarkFormState(cfg layout.LayoutConfig) BookmarkFormState {
	url := textinput.New()
	url.Placeholder = "https://..."
	url.CharLimit = cfg.Input.URLCharLimit
	url.Width = cfg.Input.WideWidth

	title := textinput.New()
	title.Placeholder = "Title (optional)"
	title.CharLimit = cfg.Input.TitleCharLimit
	title.Width = cfg.Input.WideWidth

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = cfg.Input.DescCharLimit
	desc.Width = cfg.Input.WideWidth

	return BookmarkFormState{
		URLInput:   url,
		TitleInput: title,
		DescInput:  desc,
	}
}

// Reset clears the form for a new modal session.
func (b *BookmarkFormState) Reset() {
	b.URLInput.Reset()
	b.TitleInput.Reset()
	b.DescInput.Reset()
	b.Focus = 0
	b.Err = nil
}

// DetailState holds state for the bookmark detail view.
type DetailState struct {
	BookmarkID  string
	MediaCursor int
}

// Reset clears the detail state.
func (d *DetailState) Reset() {
	d.BookmarkID = ""
	d.MediaCursor = 0
}

// MediaFormState holds the single input shared by the attach image and
// attach video prompts.
type MediaFormState struct {
	Input textinput.Model
	Err   error
}

// NewMediaFormState creates a MediaFormState with an initialized input.
func NewMediaFormState(cfg layout.LayoutConfig) MediaFormState {
	input := textinput.New()
	input.CharLimit = cfg.Input.PathCharLimit
	input.Width = cfg.Input.WideWidth

	return MediaFormState{Input: input}
}

// Reset clears the prompt for a new attach session.
func (m *MediaFormState) Reset() {
	m.Input.Reset()
	m.Err = nil
}

// Exchange is one question and answer pair in the oracle transcript.
type Exchange struct {
	Question string
	Answer   string
}

// OracleState holds state for the oracle chat overlay.
type OracleState struct {
	Input      textinput.Model
	Transcript []Exchange
	Err        error
}

// NewOracleState creates an OracleState with an initialized input.
func NewOracleState(cfg layout.LayoutConfig) OracleState {
	input := textinput.New()
	input.Placeholder = "Ask about your bookmarks..."
	input.CharLimit = cfg.Input.QuestionCharLimit
	input.Width = cfg.Input.WideWidth

	return OracleState{Input: input}
}

// Reset clears the transcript and input.
func (o *OracleState) Reset() {
	o.Input.Reset()
	o.Transcript = nil
	o.Err = nil
}

// ConfirmKind says what a pending delete confirmation applies to.
type ConfirmKind int

const (
	ConfirmBookmark ConfirmKind = iota
	ConfirmMedia
)

// ConfirmState holds state for the delete confirmation prompt.
type ConfirmState struct {
	Kind       ConfirmKind
	FolderID   string
	BookmarkID string
	MediaID    string
	Label      string // what the prompt names, e.g. the bookmark title
}

// Reset clears the pending confirmation.
func (c *ConfirmState) Reset() {
	*c = ConfirmState{}
}
