package model

import "time"

// Bookmark represents a saved URL with metadata and attached media.
type Bookmark struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	Media       []MediaItem `json:"media"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title       string
	URL         string
	Description string
}

// NewBookmark creates a Bookmark with generated UUID and timestamp.
// The URL is stored as given; normalization and title defaulting happen
// in AddBookmark so that every mutation path applies the same rules.
func NewBookmark(params NewBookmarkParams) Bookmark {
	return Bookmark{
		ID:          generateUUID(),
		Title:       params.Title,
		URL:         params.URL,
		Description: params.Description,
		CreatedAt:   time.Now(),
		Media:       []MediaItem{},
	}
}

// MediaByID finds a media item on this bookmark, returns nil if not found.
func (b *Bookmark) MediaByID(id string) *MediaItem {
	for i := range b.Media {
		if b.Media[i].ID == id {
			return &b.Media[i]
		}
	}
	return nil
}
