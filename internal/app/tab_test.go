package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stformane/hudnotes/internal/app"
)

func TestTab_DisplayTitle(t *testing.T) {
	t.Run("should return plain title for clean tab", func(t *testing.T) {
		tab := app.NewTab("Untitled 1", "", "")
		assert.Equal(t, "Untitled 1", tab.DisplayTitle())
	})
	t.Run("should append marker when modified", func(t *testing.T) {
		tab := app.NewTab("Untitled 1", "", "")
		tab.SetContent("hello")
		assert.Equal(t, "Untitled 1*", tab.DisplayTitle())
	})
	t.Run("should derive title from path", func(t *testing.T) {
		tab := app.NewTab("", "/tmp/notes/ideas.md", "")
		assert.Equal(t, "ideas.md", tab.Title)
	})
}

func TestTab_StateMachine(t *testing.T) {
	t.Run("should transition to modified on first edit", func(t *testing.T) {
		tab := app.NewTab("x", "", "")
		assert.False(t, tab.Modified)
		tab.SetContent("a")
		assert.True(t, tab.Modified)
	})
	t.Run("should stay clean when content unchanged", func(t *testing.T) {
		tab := app.NewTab("x", "", "same")
		tab.SetContent("same")
		assert.False(t, tab.Modified)
	})
	t.Run("should return to clean after save", func(t *testing.T) {
		tab := app.NewTab("x", "", "")
		tab.SetContent("a")
		tab.MarkSaved("/tmp/notes/a.md")
		assert.False(t, tab.Modified)
		assert.Equal(t, "a.md", tab.Title)
		assert.Equal(t, "/tmp/notes/a.md", tab.Path)
	})
	t.Run("should keep path when saved without one", func(t *testing.T) {
		tab := app.NewTab("x", "/tmp/notes/a.md", "")
		tab.SetContent("a")
		tab.MarkSaved("")
		assert.False(t, tab.Modified)
		assert.Equal(t, "/tmp/notes/a.md", tab.Path)
	})
}
