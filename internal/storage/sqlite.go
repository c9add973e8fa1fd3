package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"grimoire/internal/model"
)

// SQLiteStorage implements Storage using a SQLite database. Like the JSON
// backend it rewrites the full snapshot on every save; the tables exist so
// the data is inspectable, not for incremental updates.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate creates the schema when missing.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		version = 0
	}

	if version < 1 {
		return s.migrateV1()
	}
	return nil
}

// migrateV1 creates the initial schema. Position columns preserve the
// sequence order of bookmarks within a folder and media within a bookmark.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			password TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			folder_id TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_bookmarks_folder_id ON bookmarks(folder_id);

		CREATE TABLE IF NOT EXISTS media (
			id TEXT PRIMARY KEY NOT NULL,
			bookmark_id TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (bookmark_id) REFERENCES bookmarks(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_media_bookmark_id ON media(bookmark_id);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the store from the SQLite database. An empty database yields
// a fresh store with the default folder, matching the JSON backend.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := &model.Store{Folders: []model.Folder{}}

	rows, err := s.db.Query(`
		SELECT id, name, password
		FROM folders
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.Password); err != nil {
			return nil, err
		}
		f.Bookmarks = []model.Bookmark{}
		store.Folders = append(store.Folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range store.Folders {
		bookmarks, err := s.loadBookmarks(store.Folders[i].ID)
		if err != nil {
			return nil, err
		}
		store.Folders[i].Bookmarks = bookmarks
	}

	if len(store.Folders) == 0 {
		return model.NewStore(), nil
	}
	return store, nil
}

func (s *SQLiteStorage) loadBookmarks(folderID string) ([]model.Bookmark, error) {
	rows, err := s.db.Query(`
		SELECT id, title, url, description, created_at
		FROM bookmarks
		WHERE folder_id = ?
		ORDER BY position
	`, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		var b model.Bookmark
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.Description, &createdAt); err != nil {
			return nil, err
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		b.Media = []model.MediaItem{}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bookmarks {
		media, err := s.loadMedia(bookmarks[i].ID)
		if err != nil {
			return nil, err
		}
		bookmarks[i].Media = media
	}
	return bookmarks, nil
}

func (s *SQLiteStorage) loadMedia(bookmarkID string) ([]model.MediaItem, error) {
	rows, err := s.db.Query(`
		SELECT id, type, content, created_at
		FROM media
		WHERE bookmark_id = ?
		ORDER BY position
	`, bookmarkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []model.MediaItem{}
	for rows.Next() {
		var m model.MediaItem
		var kind, createdAt string
		if err := rows.Scan(&m.ID, &kind, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		m.Type = model.MediaType(kind)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		media = append(media, m)
	}
	return media, rows.Err()
}

// Save writes the store to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(store *model.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Clear existing data; media and bookmarks cascade from folders
	if _, err := tx.Exec("DELETE FROM folders"); err != nil {
		return err
	}

	folderStmt, err := tx.Prepare(`
		INSERT INTO folders (id, name, password, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer folderStmt.Close()

	bookmarkStmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, folder_id, title, url, description, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer bookmarkStmt.Close()

	mediaStmt, err := tx.Prepare(`
		INSERT INTO media (id, bookmark_id, type, content, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer mediaStmt.Close()

	for fi, f := range store.Folders {
		if _, err := folderStmt.Exec(f.ID, f.Name, f.Password, fi); err != nil {
			return err
		}
		for bi, b := range f.Bookmarks {
			createdAt := b.CreatedAt.Format(time.RFC3339)
			if _, err := bookmarkStmt.Exec(b.ID, f.ID, b.Title, b.URL, b.Description, createdAt, bi); err != nil {
				return err
			}
			for mi, m := range b.Media {
				mCreatedAt := m.CreatedAt.Format(time.RFC3339)
				if _, err := mediaStmt.Exec(m.ID, b.ID, string(m.Type), m.Content, mCreatedAt, mi); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/grimoire/grimoire.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "grimoire", "grimoire.db"), nil
}
