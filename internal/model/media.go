package model

import "time"

// MediaType identifies the kind of media attached to a bookmark.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaVoice MediaType = "voice"
)

// MediaItem is an image, voice recording, or video embed owned by exactly
// one bookmark. Content is either an inline data URI (images, voice) or an
// embeddable URL (video).
type MediaItem struct {
	ID        string    `json:"id"`
	Type      MediaType `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMediaItem creates a MediaItem with generated UUID and timestamp.
func NewMediaItem(kind MediaType, content string) MediaItem {
	return MediaItem{
		ID:        generateUUID(),
		Type:      kind,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
