package ui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stformane/hudnotes/internal/app"
)

// TabsArea manages the document tabs. Closing a modified tab asks the
// user to save, discard or cancel; closing the last tab respawns a
// fresh untitled one so the editor is never empty.
type TabsArea struct {
	u       *BaseUI
	tabs    *container.DocTabs
	content fyne.CanvasObject

	editors  map[*container.TabItem]*EditorArea
	untitled int
}

func (u *BaseUI) newTabsArea() *TabsArea {
	a := &TabsArea{
		u:       u,
		editors: make(map[*container.TabItem]*EditorArea),
	}
	a.tabs = container.NewDocTabs()
	a.tabs.CloseIntercept = a.closeIntercept
	a.tabs.OnClosed = func(ti *container.TabItem) {
		if ed, ok := a.editors[ti]; ok {
			ed.stopAutoSave()
			delete(a.editors, ti)
		}
		if len(a.tabs.Items) == 0 {
			a.NewUntitledTab()
		}
	}
	a.tabs.OnSelected = func(ti *container.TabItem) {
		if ed, ok := a.editors[ti]; ok {
			a.u.StatusBar.SetWordCount(WordCount(ed.tab.Content))
		}
	}
	a.content = a.tabs
	return a
}

// Len returns the number of open tabs.
func (a *TabsArea) Len() int {
	return len(a.tabs.Items)
}

// Current returns the editor of the selected tab, or nil when there is
// none.
func (a *TabsArea) Current() *EditorArea {
	ti := a.tabs.Selected()
	if ti == nil {
		return nil
	}
	return a.editors[ti]
}

// NewUntitledTab opens an empty document from the default template.
func (a *TabsArea) NewUntitledTab() *EditorArea {
	a.untitled++
	title := fmt.Sprintf("Untitled %d", a.untitled)
	content := a.u.Templates.Format("Basic", map[string]string{
		"title":  title,
		"author": a.u.Settings.AuthorName(),
		"date":   time.Now().Format("2006-01-02 15:04"),
	})
	ed := a.addTab(app.NewTab(title, "", content))
	ed.tab.Modified = false
	a.refreshTitle(ed.tab)
	return ed
}

// NewTabWithContent opens a document with fixed content, like the
// template overview.
func (a *TabsArea) NewTabWithContent(title, content string) *EditorArea {
	return a.addTab(app.NewTab(title, "", content))
}

// NewFromTemplate opens a new document from a named template.
func (a *TabsArea) NewFromTemplate(name, title string) *EditorArea {
	content := a.u.Templates.Format(name, map[string]string{
		"title":  title,
		"author": a.u.Settings.AuthorName(),
		"date":   time.Now().Format("2006-01-02 15:04"),
	})
	return a.addTab(app.NewTab(title, "", content))
}

// OpenFile loads a file from disk into a new tab. A file that is
// already open is selected instead.
func (a *TabsArea) OpenFile(path string) error {
	for ti, ed := range a.editors {
		if ed.tab.Path == path {
			a.tabs.Select(ti)
			return nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open note: %w", err)
	}
	a.addTab(app.NewTab("", path, string(data)))
	a.u.Settings.SetLastFile(path)
	slog.Info("Note opened", "path", path)
	return nil
}

func (a *TabsArea) addTab(tab *app.Tab) *EditorArea {
	ed := a.u.newEditorArea(tab)
	ti := container.NewTabItem(tab.DisplayTitle(), ed.content)
	a.editors[ti] = ed
	a.tabs.Append(ti)
	a.tabs.Select(ti)
	return ed
}

// refreshTitle syncs a tab's label with its modified marker.
func (a *TabsArea) refreshTitle(tab *app.Tab) {
	for ti, ed := range a.editors {
		if ed.tab == tab {
			if ti.Text != tab.DisplayTitle() {
				ti.Text = tab.DisplayTitle()
				a.tabs.Refresh()
			}
			return
		}
	}
}

// FocusEditor puts keyboard focus on the selected tab's entry.
func (a *TabsArea) FocusEditor() {
	if ed := a.Current(); ed != nil && !ed.previewMode {
		a.u.Window.Canvas().Focus(ed.entry)
	}
}

// SaveAllModified saves every modified document. Untitled documents
// get a file name derived from their content in the notes directory,
// so no edits are lost on quit.
func (a *TabsArea) SaveAllModified() {
	for _, ed := range a.editors {
		if ed.tab.Modified {
			if err := ed.Save(); err != nil {
				slog.Error("Could not save note", "path", ed.tab.Path, "error", err)
			}
		}
	}
}

// RefreshAll re-renders all editors, after a theme change.
func (a *TabsArea) RefreshAll() {
	for _, ed := range a.editors {
		ed.Refresh()
	}
}

// CloseCurrent closes the selected tab through the usual intercept.
func (a *TabsArea) CloseCurrent() {
	ti := a.tabs.Selected()
	if ti == nil {
		return
	}
	a.closeIntercept(ti)
}

// closeIntercept implements the save, discard or cancel flow for
// modified documents.
func (a *TabsArea) closeIntercept(ti *container.TabItem) {
	ed, ok := a.editors[ti]
	if !ok || !ed.tab.Modified {
		a.tabs.Remove(ti)
		a.tabs.OnClosed(ti)
		return
	}
	var d dialog.Dialog
	closeTab := func() {
		d.Hide()
		a.tabs.Remove(ti)
		a.tabs.OnClosed(ti)
	}
	save := widget.NewButton("Save", func() {
		if err := ed.Save(); err != nil {
			slog.Error("Could not save note", "error", err)
			dialog.ShowError(err, a.u.Window)
			return
		}
		closeTab()
	})
	save.Importance = widget.HighImportance
	discard := widget.NewButton("Discard", closeTab)
	cancel := widget.NewButton("Cancel", func() { d.Hide() })
	msg := widget.NewLabel(fmt.Sprintf("%q has unsaved changes.", ed.tab.Title))
	d = dialog.NewCustomWithoutButtons(
		"Unsaved changes",
		container.NewVBox(msg, container.NewHBox(save, discard, cancel)),
		a.u.Window,
	)
	d.Show()
}
