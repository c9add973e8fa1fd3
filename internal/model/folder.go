package model

// Folder is a password-labeled group of bookmarks.
//
// The password is stored as plaintext alongside the bookmarks it gates and
// is compared verbatim on unlock. This mirrors the original data layout: it
// is a privacy curtain for the UI, not an access-control mechanism.
type Folder struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Password  string     `json:"password"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name     string
	Password string
}

// NewFolder creates a Folder with a generated UUID and no bookmarks.
func NewFolder(params NewFolderParams) Folder {
	return Folder{
		ID:        generateUUID(),
		Name:      params.Name,
		Password:  params.Password,
		Bookmarks: []Bookmark{},
	}
}

// Open reports whether the folder needs no password to view.
func (f *Folder) Open() bool {
	return f.Password == ""
}

// BookmarkByID finds a bookmark in this folder, returns nil if not found.
func (f *Folder) BookmarkByID(id string) *Bookmark {
	for i := range f.Bookmarks {
		if f.Bookmarks[i].ID == id {
			return &f.Bookmarks[i]
		}
	}
	return nil
}
