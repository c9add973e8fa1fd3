// Package media builds MediaItem content: inline base64 images and voice
// notes, and normalized video embed URLs.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"grimoire/internal/model"
)

// MaxImageBytes is the upload cap for inline images. Everything is stored
// inside the single serialized snapshot, so large files are refused rather
// than silently bloating every save.
const MaxImageBytes = 500 * 1024

// ErrImageTooLarge is returned for images over MaxImageBytes.
var ErrImageTooLarge = fmt.Errorf("image exceeds %d KB", MaxImageBytes/1024)

// ErrUnknownImageType is returned for files without a recognized image extension.
var ErrUnknownImageType = errors.New("unrecognized image type")

// mimeByExt maps supported image extensions to their MIME type.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// LoadImage reads an image file and returns a MediaItem with the content
// inlined as a data URI.
func LoadImage(path string) (model.MediaItem, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := mimeByExt[ext]
	if !ok {
		return model.MediaItem{}, ErrUnknownImageType
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.MediaItem{}, err
	}
	if info.Size() > MaxImageBytes {
		return model.MediaItem{}, ErrImageTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.MediaItem{}, err
	}

	return EncodeImage(data, mime)
}

// EncodeImage wraps raw image bytes into an inline image MediaItem.
func EncodeImage(data []byte, mime string) (model.MediaItem, error) {
	if len(data) > MaxImageBytes {
		return model.MediaItem{}, ErrImageTooLarge
	}
	content := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	return model.NewMediaItem(model.MediaImage, content), nil
}
