package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// showSaveAsDialog saves the current document under a new name.
func (u *BaseUI) showSaveAsDialog() {
	ed := u.TabsArea.Current()
	if ed == nil {
		return
	}
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.Window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		if _, err := w.Write([]byte(ed.Tab().Content)); err != nil {
			slog.Error("Could not save note", "error", err)
			dialog.ShowError(err, u.Window)
			return
		}
		ed.Tab().MarkSaved(w.URI().Path())
		u.Settings.SetLastFile(w.URI().Path())
		u.TabsArea.refreshTitle(ed.Tab())
		slog.Info("Note saved", "path", w.URI().Path())
	}, u.Window)
	name := SuggestFileName(ed.Tab().Content)
	if name == "" {
		name = "untitled.md"
	}
	d.SetFileName(name)
	if dir := u.Settings.NotesDir(); dir != "" {
		if l, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(l)
		}
	}
	d.Show()
}
