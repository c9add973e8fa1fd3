package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"grimoire/internal/ai"
	"grimoire/internal/config"
	"grimoire/internal/culler"
	"grimoire/internal/exporter"
	"grimoire/internal/importer"
	"grimoire/internal/model"
	"grimoire/internal/picker"
	"grimoire/internal/search"
	"grimoire/internal/storage"
	"grimoire/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "ask":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: grimoire ask <question>\n")
				os.Exit(1)
			}
			runAsk(strings.Join(os.Args[2:], " "))
			return
		case "find":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: grimoire find <query>\n")
				os.Exit(1)
			}
			runFind(strings.Join(os.Args[2:], " "))
			return
		case "sweep":
			runSweep()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: grimoire import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q, see 'grimoire help'\n", os.Args[1])
			os.Exit(1)
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `grimoire - a single-page bookmark keeper with locked folders

Usage:
  grimoire                Open interactive TUI
  grimoire find <query>   Fuzzy search → select → open
  grimoire ask <question> Ask the oracle about your bookmarks
  grimoire sweep          Check all bookmark URLs for dead links
  grimoire import <file>  Import bookmarks from Netscape HTML
  grimoire export [path]  Export bookmarks to Netscape HTML
  grimoire help           Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Switch between folders and bookmarks
    gg/G        Jump to top/bottom
    l/Enter     Open folder (prompts for password when locked)
    Enter       Open bookmark detail

  Editing:
    a/A         Add bookmark/folder
    d           Delete (with confirmation)
    y           Copy URL to clipboard
    o           Open in browser
    L           Relock the current folder

  Bookmark detail:
    p/v/r       Attach image / video / voice note
    d           Delete selected media

  AI:
    i           Ask the oracle (chat about unlocked bookmarks)
    ctrl+e      Auto-fill title and description in the add form

  Other:
    ?           Show help overlay
    q           Quit

AI features need GEMINI_API_KEY in the environment.

Data Storage:
  ~/.config/grimoire/grimoire.json  (or grimoire.db when present)
  ~/.config/grimoire/config.json
`
	fmt.Print(help)
}

// loadEverything opens storage and loads the store plus config.
func loadEverything() (storage.Storage, *model.Store, *config.Config) {
	backend, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store, err := backend.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	return backend, store, cfg
}

// runTUI runs the full interactive TUI.
func runTUI() {
	backend, store, cfg := loadEverything()

	// AI is optional; the TUI explains what is missing when used without a key
	oracle, err := ai.NewClient(cfg.AIModel)
	if err != nil {
		oracle = nil
	}

	app := tui.NewApp(tui.AppParams{
		Store:   store,
		Storage: backend,
		Config:  cfg,
		Oracle:  oracle,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}

	finalApp := finalModel.(tui.App)
	if err := backend.Save(finalApp.Store()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		os.Exit(1)
	}
}

// runAsk sends one question to the oracle and prints the answer.
// Locked folders contribute only their names to the context.
func runAsk(question string) {
	_, store, cfg := loadEverything()

	client, err := ai.NewClient(cfg.AIModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	answer, err := client.Ask(ai.BuildContext(store, model.NewSession()), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error asking: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(answer)
}

// runFind performs a fuzzy search and opens the selected bookmark.
func runFind(query string) {
	_, store, _ := loadEverything()

	results := search.FuzzySearch(store, query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *search.Result

	if len(results) == 1 {
		selected = &results[0]
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.Selected()
	}

	if selected == nil {
		os.Exit(0)
	}

	// Results from locked folders need the folder password before opening
	if !selected.Folder.Open() {
		if !promptUnlock(selected.Folder) {
			fmt.Println("Wrong password.")
			os.Exit(1)
		}
	}

	fmt.Printf("Opening: %s\n", selected.Bookmark.Title)
	openURL(selected.Bookmark.URL)
}

// promptUnlock reads a password without echo and checks it against the folder.
func promptUnlock(folder *model.Folder) bool {
	fmt.Printf("Folder %q is locked. Password: ", folder.Name)
	input, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return false
	}

	session := model.NewSession()
	return session.Unlock(folder, string(input)) == nil
}

// runSweep checks every bookmark URL and reports dead or unreachable ones.
func runSweep() {
	_, store, cfg := loadEverything()

	total := store.BookmarkCount()
	if total == 0 {
		fmt.Println("No bookmarks to check.")
		return
	}

	fmt.Printf("Checking %d bookmarks...\n", total)
	results := culler.CheckStore(store, 10, 10*time.Second, cfg.SweepExcludeDomains, func(completed, total int) {
		fmt.Printf("\r%d/%d", completed, total)
	})
	fmt.Println()

	healthy := 0
	for _, r := range results {
		switch r.Status {
		case culler.Healthy:
			healthy++
		case culler.Dead:
			fmt.Printf("DEAD        %s (%d) [%s]\n", r.Bookmark.URL, r.StatusCode, r.Folder.Name)
		case culler.Unreachable:
			fmt.Printf("UNREACHABLE %s (%s) [%s]\n", r.Bookmark.URL, r.Error, r.Folder.Name)
		}
	}
	fmt.Printf("%d healthy, %d with problems\n", healthy, len(results)-healthy)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	backend, store, _ := loadEverything()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	next, imported, skipped, err := importer.ImportHTML(store, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	if err := backend.Save(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d bookmarks", imported)
	if skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	_, store, _ := loadEverything()

	html := exporter.ExportHTML(store)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d bookmarks, %d folders to %s\n",
		store.BookmarkCount(), len(store.Folders), outputPath)
}
