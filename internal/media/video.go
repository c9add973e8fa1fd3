package media

import (
	"net/url"
	"strings"

	"grimoire/internal/model"
	"grimoire/internal/urlutil"
)

// NewVideo normalizes a video URL and returns a video MediaItem. YouTube
// watch, shorts, and youtu.be links are rewritten to their embed form so
// the stored content is always directly embeddable; other URLs are kept
// as-is after scheme normalization.
func NewVideo(raw string) (model.MediaItem, error) {
	normalized, err := urlutil.Normalize(raw)
	if err != nil {
		return model.MediaItem{}, err
	}
	return model.NewMediaItem(model.MediaVideo, EmbedURL(normalized)), nil
}

// EmbedURL rewrites known YouTube URL shapes to
// https://www.youtube.com/embed/<id>. Unknown shapes are returned unchanged.
//
// Handled:
//   - https://www.youtube.com/watch?v=VIDEO_ID
//   - https://youtube.com/shorts/VIDEO_ID
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/embed/VIDEO_ID (already embeddable)
func EmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	var id string
	switch host {
	case "youtube.com", "m.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		case strings.HasPrefix(u.Path, "/embed/"):
			return raw
		}
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	}

	if id == "" {
		return raw
	}
	// Drop trailing path segments and playlist params
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	return "https://www.youtube.com/embed/" + id
}
