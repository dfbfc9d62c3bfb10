package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/satchel-hb/satchel/internal/app"
	"github.com/satchel-hb/satchel/internal/cfg"
	"github.com/satchel-hb/satchel/internal/fsx"
	"github.com/satchel-hb/satchel/internal/ui"
)

//go:embed assets
var assets embed.FS

func main() {
	addBookmark := flag.Bool("add-bookmark", false, "add a bookmark interactively and exit")
	externalRomFs := flag.String("external-romfs", "", "set the external romfs path and exit")
	flag.Parse()

	logFile, err := tea.LogToFile(logPath(), "satchel")
	if err == nil {
		defer logFile.Close()
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	sd := fsx.NewSdCardExplorer(fsx.DefaultSdCardRoot())
	archive, err := fs.Sub(assets, "assets")
	if err != nil {
		log.Fatalf("resource archive: %v", err)
	}
	romfs := fsx.NewRomFsExplorer(archive)

	settings := cfg.ProcessSettings(sd, romfs)

	// The language must resolve at least once; a failing system query with
	// no configured override is fatal.
	lang, err := settings.GetLanguage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "satchel: cannot determine language: %v\n", err)
		os.Exit(1)
	}
	log.Printf("startup: language=%s sdcard=%s", lang.Code(), fsx.DefaultSdCardRoot())

	if *externalRomFs != "" {
		setExternalRomFs(settings, *externalRomFs)
		return
	}
	if *addBookmark {
		addBookmarkFlow(settings)
		return
	}

	m := app.NewModel(settings, sd, romfs)
	defer m.Close()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	result := final.(app.Model)
	if result.PowerPromptRequested() {
		runPowerDialog()
	}
}

// setExternalRomFs stores a new external romfs root and saves immediately
func setExternalRomFs(settings *cfg.Settings, path string) {
	settings.SetExternalRomFs(path)
	if err := settings.Save(); err != nil {
		ui.HandleResult(err, "saving settings")
		return
	}
	fmt.Printf("external romfs set to %s\n", *settings.ExternalRomFs)
}

// addBookmarkFlow prompts for a name and url on the modal keyboard and saves
func addBookmarkFlow(settings *cfg.Settings) {
	name, err := ui.ShowKeyboard("Bookmark name", "", 100)
	if err != nil {
		ui.HandleResult(err, "reading bookmark name")
		return
	}
	url, err := ui.ShowKeyboard("Bookmark url", "https://", ui.MaxKeyboardTextLength)
	if err != nil {
		ui.HandleResult(err, "reading bookmark url")
		return
	}
	if name == "" || url == "" {
		ui.HandleResult(errors.New("name and url must not be empty"), "adding bookmark")
		return
	}

	settings.Bookmarks = append(settings.Bookmarks, cfg.Bookmark{Name: name, URL: url})
	if err := settings.Save(); err != nil {
		ui.HandleResult(err, "saving settings")
		return
	}
	fmt.Printf("bookmark %q added\n", name)
}

func runPowerDialog() {
	action, err := ui.ShowPowerTasksDialog("Power", "Choose a power task for the console.")
	if err != nil {
		ui.HandleResult(err, "power dialog")
		return
	}
	switch action {
	case ui.PowerActionShutdown:
		log.Printf("power: shutdown requested")
		fmt.Println("shutdown requested")
	case ui.PowerActionReboot:
		log.Printf("power: reboot requested")
		fmt.Println("reboot requested")
	}
}

func logPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "satchel.log"
	}
	return dir + "/satchel.log"
}
