package model

import (
	"errors"

	"grimoire/internal/urlutil"
)

var (
	// ErrEmptyName is returned when a folder is created without a name.
	ErrEmptyName = errors.New("folder name is required")
	// ErrEmptyPassword is returned when a folder is created without a password.
	ErrEmptyPassword = errors.New("folder password is required")
	// ErrEmptyURL is returned when a bookmark is added without a URL.
	ErrEmptyURL = errors.New("bookmark url is required")
	// ErrFolderNotFound is returned when a folder ID does not exist.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrBookmarkNotFound is returned when a bookmark ID does not exist.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// Every mutation below takes the current store and returns a replacement.
// The input store is never modified, which keeps reads of the old model
// consistent while a save of the new one is in flight.

// CreateFolder appends a new folder. Name and password must be non-empty.
func CreateFolder(s *Store, name, password string) (*Store, *Folder, error) {
	if name == "" {
		return nil, nil, ErrEmptyName
	}
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	next := s.Clone()
	next.Folders = append(next.Folders, NewFolder(NewFolderParams{
		Name:     name,
		Password: password,
	}))
	return next, &next.Folders[len(next.Folders)-1], nil
}

// AddBookmark prepends a bookmark to the given folder, so folders list
// most-recent-first. The URL is normalized (scheme defaults to https);
// a missing title falls back to the URL host and a missing description to
// a short "Saved from <host>" note.
func AddBookmark(s *Store, folderID string, params NewBookmarkParams) (*Store, *Bookmark, error) {
	if params.URL == "" {
		return nil, nil, ErrEmptyURL
	}

	normalized, err := urlutil.Normalize(params.URL)
	if err != nil {
		return nil, nil, err
	}
	params.URL = normalized

	host := urlutil.Host(normalized)
	if params.Title == "" {
		params.Title = host
	}
	if params.Description == "" {
		params.Description = "Saved from " + host
	}

	next := s.Clone()
	folder := next.FolderByID(folderID)
	if folder == nil {
		return nil, nil, ErrFolderNotFound
	}

	bookmark := NewBookmark(params)
	folder.Bookmarks = append([]Bookmark{bookmark}, folder.Bookmarks...)
	return next, &folder.Bookmarks[0], nil
}

// DeleteBookmark removes a bookmark from its folder. Deleting an ID that is
// already gone is a no-op, so a retried delete cannot fail.
func DeleteBookmark(s *Store, folderID, bookmarkID string) (*Store, error) {
	next := s.Clone()
	folder := next.FolderByID(folderID)
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	for i := range folder.Bookmarks {
		if folder.Bookmarks[i].ID == bookmarkID {
			folder.Bookmarks = append(folder.Bookmarks[:i], folder.Bookmarks[i+1:]...)
			break
		}
	}
	return next, nil
}

// AddMedia appends a media item to a bookmark's media sequence.
func AddMedia(s *Store, folderID, bookmarkID string, item MediaItem) (*Store, error) {
	next := s.Clone()
	folder := next.FolderByID(folderID)
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	bookmark := folder.BookmarkByID(bookmarkID)
	if bookmark == nil {
		return nil, ErrBookmarkNotFound
	}

	bookmark.Media = append(bookmark.Media, item)
	return next, nil
}

// DeleteMedia removes a media item from a bookmark. Missing IDs are a no-op.
func DeleteMedia(s *Store, folderID, bookmarkID, mediaID string) (*Store, error) {
	next := s.Clone()
	folder := next.FolderByID(folderID)
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	bookmark := folder.BookmarkByID(bookmarkID)
	if bookmark == nil {
		return nil, ErrBookmarkNotFound
	}

	for i := range bookmark.Media {
		if bookmark.Media[i].ID == mediaID {
			bookmark.Media = append(bookmark.Media[:i], bookmark.Media[i+1:]...)
			break
		}
	}
	return next, nil
}
