package tui

import "grimoire/internal/model"

// mediaLabel returns a short display label for a media item.
func mediaLabel(item *model.MediaItem) string {
	switch item.Type {
	case model.MediaImage:
		return "image"
	case model.MediaVideo:
		return "video " + item.Content
	case model.MediaVoice:
		return "voice note"
	default:
		return string(item.Type)
	}
}
