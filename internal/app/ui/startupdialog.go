package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stformane/hudnotes/internal/app/settings"
)

// showStartupDialog collects author name and directories on first run.
// Sensible defaults are prefilled from the resolved app directories.
func (u *BaseUI) showStartupDialog() {
	author := widget.NewEntry()
	author.SetPlaceHolder("Your name")

	notesDir := widget.NewEntry()
	notesDir.SetText(u.Settings.NotesDir())
	if notesDir.Text == "" {
		notesDir.SetText(u.Dirs.Notes)
	}
	templatesDir := widget.NewEntry()
	templatesDir.SetText(u.Settings.TemplatesDir())
	if templatesDir.Text == "" {
		templatesDir.SetText(u.Dirs.Templates)
	}

	items := []*widget.FormItem{
		{Text: "Author name", Widget: author, HintText: "Used in note templates"},
		{Text: "Notes directory", Widget: notesDir},
		{Text: "Templates directory", Widget: templatesDir},
	}
	d := dialog.NewForm("Welcome to HUD Notes", "Start", "Skip", items, func(ok bool) {
		if !ok {
			return
		}
		u.Settings.SetAuthorName(author.Text)
		u.Settings.SetNotesDir(notesDir.Text)
		u.Settings.SetTemplatesDir(templatesDir.Text)
		u.Settings.Validate()
		u.Settings.SetPath(u.NotesPath(settings.ConfigFileName))
		if err := u.Settings.Save(); err != nil {
			slog.Error("Could not save settings", "error", err)
			dialog.ShowError(err, u.Window)
			return
		}
		u.Templates.Reload()
		slog.Info("First run completed", "notes", notesDir.Text)
	}, u.Window)
	d.Resize(fyne.NewSize(420, 240))
	d.Show()
}
