package model

import "errors"

// ErrWrongPassword is returned when an unlock attempt does not match.
var ErrWrongPassword = errors.New("wrong password")

// Session tracks which folders the user has unlocked in this run of the
// program. It lives for the process only and is never persisted; restarting
// locks everything again. There is no attempt counting or lockout.
type Session struct {
	unlocked map[string]bool
}

// NewSession creates a Session with nothing unlocked.
func NewSession() *Session {
	return &Session{unlocked: make(map[string]bool)}
}

// Unlock compares the supplied password against the folder's stored one.
// On match the folder ID is added to the unlocked set.
func (s *Session) Unlock(folder *Folder, password string) error {
	if folder == nil {
		return ErrFolderNotFound
	}
	if folder.Password != password {
		return ErrWrongPassword
	}
	s.unlocked[folder.ID] = true
	return nil
}

// IsUnlocked reports whether a folder's contents may be shown. Folders
// without a password are always viewable.
func (s *Session) IsUnlocked(folder *Folder) bool {
	if folder == nil {
		return false
	}
	return folder.Open() || s.unlocked[folder.ID]
}

// Lock removes a folder from the unlocked set.
func (s *Session) Lock(folderID string) {
	delete(s.unlocked, folderID)
}
