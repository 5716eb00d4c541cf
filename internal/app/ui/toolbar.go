package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// Toolbar is the top bar of the overlay with the document and
// appearance actions.
type Toolbar struct {
	u       *BaseUI
	content fyne.CanvasObject
}

func (u *BaseUI) newToolbar() *Toolbar {
	t := &Toolbar{u: u}
	mk := func(icon fyne.Resource, tip string, fn func()) *ttwidget.Button {
		b := ttwidget.NewButtonWithIcon("", icon, fn)
		if u.Settings.ShowTooltips() {
			b.SetToolTip(tip)
		}
		return b
	}
	t.content = container.NewHBox(
		mk(theme.ContentAddIcon(), "New note (Ctrl+Alt+N)", func() { u.TabsArea.NewUntitledTab() }),
		mk(theme.FolderOpenIcon(), "Open note (Ctrl+Alt+O)", u.showOpenDialog),
		mk(theme.DocumentSaveIcon(), "Save note (Ctrl+Alt+S)", u.SaveCurrent),
		mk(theme.DocumentCreateIcon(), "New from template", u.showTemplatePicker),
		mk(theme.ComputerIcon(), "Insert code block (Ctrl+Alt+C)", u.showCodeInsertDialog),
		mk(theme.VisibilityIcon(), "Toggle markdown preview (Ctrl+Alt+P)", u.TogglePreview),
		mk(theme.ZoomOutIcon(), "Decrease font size", func() { u.AdjustFontSize(-1) }),
		mk(theme.ZoomInIcon(), "Increase font size", func() { u.AdjustFontSize(+1) }),
		mk(theme.ColorPaletteIcon(), "Cycle opacity", func() { u.AdjustTransparency(+0.05) }),
		mk(theme.SettingsIcon(), "Settings", u.showSettingsWindow),
		mk(theme.InfoIcon(), "About", u.showAboutDialog),
		mk(theme.VisibilityOffIcon(), "Hide overlay (Ctrl+Alt+H)", u.HideOverlay),
	)
	return t
}

// SaveCurrent saves the selected document and reports errors in a
// dialog.
func (u *BaseUI) SaveCurrent() {
	ed := u.TabsArea.Current()
	if ed == nil {
		return
	}
	if err := ed.Save(); err != nil {
		slog.Error("Could not save note", "error", err)
		dialog.ShowError(err, u.Window)
	}
}

// TogglePreview flips markdown preview on the selected document.
func (u *BaseUI) TogglePreview() {
	if ed := u.TabsArea.Current(); ed != nil {
		ed.TogglePreview()
	}
}

// AdjustFontSize changes the font size by delta, within the allowed
// range, and reapplies the theme.
func (u *BaseUI) AdjustFontSize(delta int) {
	minV, maxV, _ := u.Settings.FontSizePresets()
	v := u.Settings.FontSize() + delta
	if v < minV {
		v = minV
	}
	if v > maxV {
		v = maxV
	}
	u.Settings.SetFontSize(v)
	u.RefreshTheme()
	u.StatusBar.Flash("Font size %d", v)
}

// AdjustTransparency changes the window opacity by delta, within the
// allowed range, and reapplies the theme.
func (u *BaseUI) AdjustTransparency(delta float64) {
	minV, maxV, _ := u.Settings.TransparencyPresets()
	v := u.Settings.Transparency() + delta
	if v < minV {
		v = minV
	}
	if v > maxV {
		v = maxV
	}
	u.Settings.SetTransparency(v)
	u.RefreshTheme()
	u.StatusBar.Flash("Opacity %.0f%%", v*100)
}

// showOpenDialog lets the user pick a markdown file to open.
func (u *BaseUI) showOpenDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.Window)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		if err := u.TabsArea.OpenFile(r.URI().Path()); err != nil {
			slog.Error("Could not open note", "error", err)
			dialog.ShowError(err, u.Window)
		}
	}, u.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".md", ".txt"}))
	if dir := u.Settings.NotesDir(); dir != "" {
		if l, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(l)
		}
	}
	d.Show()
}
