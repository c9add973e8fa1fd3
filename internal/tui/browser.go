package tui

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// errNoOracle is shown when an AI feature is used without an API key.
var errNoOracle = errors.New("set GEMINI_API_KEY to enable AI features")

// openBrowser opens a URL in the default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// clipboardWrite copies text to the system clipboard.
func clipboardWrite(text string) error {
	return clipboard.WriteAll(text)
}
