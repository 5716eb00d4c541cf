package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/stformane/hudnotes/internal/app"
)

// EditorArea is the editing surface of one tab: a multiline entry plus
// an optional rendered markdown preview, with debounced auto-save.
type EditorArea struct {
	u       *BaseUI
	tab     *app.Tab
	entry   *widget.Entry
	preview *widget.RichText
	content *fyne.Container

	previewMode bool
	autosave    *time.Timer
}

func (u *BaseUI) newEditorArea(tab *app.Tab) *EditorArea {
	a := &EditorArea{u: u, tab: tab}
	a.entry = widget.NewMultiLineEntry()
	a.entry.Wrapping = fyne.TextWrapWord
	a.entry.SetText(tab.Content)
	a.entry.OnChanged = a.onChanged
	a.preview = widget.NewRichTextFromMarkdown(tab.Content)
	a.preview.Wrapping = fyne.TextWrapWord
	a.preview.Hide()
	a.content = container.NewStack(a.entry, container.NewVScroll(a.preview))
	return a
}

// Tab returns the document this editor is bound to.
func (a *EditorArea) Tab() *app.Tab {
	return a.tab
}

func (a *EditorArea) onChanged(s string) {
	a.tab.SetContent(s)
	a.u.TabsArea.refreshTitle(a.tab)
	a.u.StatusBar.SetWordCount(WordCount(s))
	a.scheduleAutoSave()
}

// TogglePreview switches between the raw editor and the rendered
// markdown preview.
func (a *EditorArea) TogglePreview() {
	a.previewMode = !a.previewMode
	if a.previewMode {
		a.preview.ParseMarkdown(a.tab.Content)
		a.entry.Hide()
		a.preview.Show()
	} else {
		a.preview.Hide()
		a.entry.Show()
	}
	a.content.Refresh()
}

// InsertAtCursor inserts text at the current cursor position of the
// underlying entry.
func (a *EditorArea) InsertAtCursor(s string) {
	a.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: staticClipboard{s}})
}

// staticClipboard satisfies fyne.Clipboard for a fixed string, so text
// can be inserted through the entry's own paste handling and land at
// the cursor.
type staticClipboard struct {
	s string
}

func (c staticClipboard) Content() string     { return c.s }
func (c staticClipboard) SetContent(s string) {}

// Save writes the document to disk. Untitled documents get a file name
// derived from their first heading, inside the notes directory.
func (a *EditorArea) Save() error {
	path := a.tab.Path
	if path == "" {
		name := SuggestFileName(a.tab.Content)
		if name == "" {
			name = SuggestFileName("# " + a.tab.Title)
		}
		path = a.u.NotesPath(name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	if err := os.WriteFile(path, []byte(a.tab.Content), 0o644); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	a.tab.MarkSaved(path)
	a.u.Settings.SetLastFile(path)
	a.u.TabsArea.refreshTitle(a.tab)
	a.u.StatusBar.SetSaved(time.Now())
	slog.Info("Note saved", "path", path)
	return nil
}

// scheduleAutoSave arms the auto-save timer, replacing any pending
// one. Auto-save only touches documents that already have a path.
func (a *EditorArea) scheduleAutoSave() {
	interval := a.u.Settings.AutoSaveIntervalMs()
	if interval <= 0 {
		return
	}
	if a.autosave != nil {
		a.autosave.Stop()
	}
	a.autosave = time.AfterFunc(time.Duration(interval)*time.Millisecond, func() {
		fyne.Do(func() {
			if !a.tab.Modified || a.tab.Path == "" {
				return
			}
			if err := a.Save(); err != nil {
				slog.Error("Auto-save failed", "path", a.tab.Path, "error", err)
			}
		})
	})
}

// stopAutoSave cancels a pending auto-save, for tabs being closed.
func (a *EditorArea) stopAutoSave() {
	if a.autosave != nil {
		a.autosave.Stop()
	}
}

// Refresh re-applies content to the widgets after an external change.
func (a *EditorArea) Refresh() {
	if a.previewMode {
		a.preview.ParseMarkdown(a.tab.Content)
	}
	a.entry.Refresh()
	a.preview.Refresh()
}

// ExtractTitle returns the text of the first markdown heading, or the
// first non-empty line, or empty when the document is blank.
func ExtractTitle(md string) string {
	src := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(src))
				}
			}
			title = strings.TrimSpace(b.String())
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if title != "" {
		return title
	}
	for _, line := range strings.Split(md, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// SuggestFileName derives a safe markdown file name from a document's
// title. Returns empty when no title can be extracted.
func SuggestFileName(md string) string {
	title := ExtractTitle(md)
	if title == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return ""
	}
	return name + ".md"
}

// WordCount counts whitespace separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
