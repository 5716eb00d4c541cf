// Package appdirs resolves the app's local directories for notes,
// templates and logs.
package appdirs

import (
	"os"
	"path/filepath"

	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName             = "hudnotes"
	logFolderName       = "log"
	notesFolderName     = "HUD_Notes"
	templatesFolderName = "templates"
)

// AppDirs represents the app's local directories. Notes and Templates
// are the defaults offered on first run; the user can point both
// elsewhere through the settings.
type AppDirs struct {
	Data      string
	Log       string
	Notes     string
	Templates string
}

// New resolves the directories and creates the app-owned ones. The
// notes and templates defaults are resolved but not created; that
// happens once the user confirms them.
func New() (AppDirs, error) {
	ad := xappdirs.New(appName)
	home, err := os.UserHomeDir()
	if err != nil {
		return AppDirs{}, err
	}
	x := AppDirs{
		Data:      ad.UserData(),
		Log:       filepath.Join(ad.UserData(), logFolderName),
		Notes:     filepath.Join(home, "Documents", notesFolderName),
		Templates: filepath.Join(home, "Documents", notesFolderName, templatesFolderName),
	}
	if err := os.MkdirAll(x.Log, os.ModePerm); err != nil {
		return x, err
	}
	if err := os.MkdirAll(x.Data, os.ModePerm); err != nil {
		return x, err
	}
	return x, nil
}

// Folders returns all directories, for diagnostics output.
func (ad *AppDirs) Folders() []string {
	return []string{ad.Data, ad.Log, ad.Notes, ad.Templates}
}
