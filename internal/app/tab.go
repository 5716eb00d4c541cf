package app

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Tab represents one open document, file backed or unsaved.
type Tab struct {
	ID       uuid.UUID
	Title    string
	Path     string // empty for unsaved tabs
	Content  string
	Modified bool
}

// NewTab returns a new clean tab. When path is set the title is
// derived from the file name.
func NewTab(title, path, content string) *Tab {
	if path != "" {
		title = filepath.Base(path)
	}
	return &Tab{
		ID:      uuid.New(),
		Title:   title,
		Path:    path,
		Content: content,
	}
}

// DisplayTitle returns the title with a trailing marker when the tab
// has unsaved changes.
func (t *Tab) DisplayTitle() string {
	if t.Modified {
		return t.Title + "*"
	}
	return t.Title
}

// SetContent updates the content and marks the tab modified when the
// content actually changed.
func (t *Tab) SetContent(s string) {
	if s == t.Content {
		return
	}
	t.Content = s
	t.Modified = true
}

// MarkSaved records a successful save to path and resets the tab to clean.
func (t *Tab) MarkSaved(path string) {
	if path != "" {
		t.Path = path
		t.Title = filepath.Base(path)
	}
	t.Modified = false
}
