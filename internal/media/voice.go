package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"grimoire/internal/model"
)

// ErrNoRecorder is returned when no recorder command is configured.
var ErrNoRecorder = errors.New("no recorder command configured")

// ErrEmptyRecording is returned when the recorder produced no audio.
var ErrEmptyRecording = errors.New("recording is empty")

// RecordVoice runs the configured recorder command and returns the captured
// audio as an inline voice MediaItem. The literal "{output}" in the command
// arguments is replaced with a temporary wav path the recorder must write.
// The call blocks until the recorder exits.
func RecordVoice(command []string) (model.MediaItem, error) {
	if len(command) == 0 {
		return model.MediaItem{}, ErrNoRecorder
	}

	tmpDir, err := os.MkdirTemp("", "grimoire-voice-")
	if err != nil {
		return model.MediaItem{}, err
	}
	defer os.RemoveAll(tmpDir)

	outPath := filepath.Join(tmpDir, "note.wav")
	args := make([]string, len(command))
	for i, arg := range command {
		args[i] = strings.ReplaceAll(arg, "{output}", outPath)
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		return model.MediaItem{}, fmt.Errorf("recorder failed: %w", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return model.MediaItem{}, fmt.Errorf("read recording: %w", err)
	}

	return EncodeVoice(data)
}

// EncodeVoice wraps raw audio bytes into an inline voice MediaItem.
func EncodeVoice(data []byte) (model.MediaItem, error) {
	if len(data) == 0 {
		return model.MediaItem{}, ErrEmptyRecording
	}
	content := "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(data)
	return model.NewMediaItem(model.MediaVoice, content), nil
}
