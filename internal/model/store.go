package model

// DefaultFolderName is the folder every fresh store starts with. It has no
// password, so it is always viewable.
const DefaultFolderName = "Inspiration"

// Store holds all folders and, through them, all bookmarks and media.
// It is the whole persisted state of the application.
type Store struct {
	Folders []Folder `json:"folders"`
}

// NewStore creates a Store containing the single default folder.
func NewStore() *Store {
	return &Store{
		Folders: []Folder{
			NewFolder(NewFolderParams{Name: DefaultFolderName}),
		},
	}
}

// FolderByID finds a folder by ID, returns nil if not found.
func (s *Store) FolderByID(id string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].ID == id {
			return &s.Folders[i]
		}
	}
	return nil
}

// FolderByName finds a folder by name, returns nil if not found.
func (s *Store) FolderByName(name string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].Name == name {
			return &s.Folders[i]
		}
	}
	return nil
}

// BookmarkCount returns the total number of bookmarks across all folders.
func (s *Store) BookmarkCount() int {
	n := 0
	for i := range s.Folders {
		n += len(s.Folders[i].Bookmarks)
	}
	return n
}

// Clone returns a deep copy of the store. Mutations operate on clones so
// that each handler replaces the model instead of editing it in place.
func (s *Store) Clone() *Store {
	out := &Store{Folders: make([]Folder, len(s.Folders))}
	for i, f := range s.Folders {
		nf := f
		nf.Bookmarks = make([]Bookmark, len(f.Bookmarks))
		for j, b := range f.Bookmarks {
			nb := b
			nb.Media = make([]MediaItem, len(b.Media))
			copy(nb.Media, b.Media)
			nf.Bookmarks[j] = nb
		}
		out.Folders[i] = nf
	}
	return out
}
