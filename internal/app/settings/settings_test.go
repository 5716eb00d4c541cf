package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/icrowley/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stformane/hudnotes/internal/app/settings"
)

func newStoreAt(t *testing.T) (*settings.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := settings.New()
	s.SetPath(filepath.Join(dir, settings.ConfigFileName))
	return s, dir
}

func TestStore_Defaults(t *testing.T) {
	t.Run("should start with hardcoded defaults", func(t *testing.T) {
		s := settings.New()
		assert.Equal(t, 12, s.FontSize())
		assert.InDelta(t, 0.65, s.Transparency(), 0.001)
		assert.Equal(t, 2000, s.AutoSaveIntervalMs())
		assert.Equal(t, "Matrix Green", s.ColorScheme())
		assert.True(t, s.SyntaxHighlighting())
		assert.False(t, s.MouseHoverShow())
		assert.Equal(t, "Ctrl+Alt+H", s.Hotkey(settings.ActionToggleOverlay))
	})
	t.Run("should fall back to caller default for unknown key", func(t *testing.T) {
		s := settings.New()
		assert.Equal(t, "x", s.Get("no_such_key", "x"))
	})
}

func TestStore_RoundTrip(t *testing.T) {
	t.Run("should yield same values after save and load into fresh store", func(t *testing.T) {
		author := fake.FullName()
		s, _ := newStoreAt(t)
		s.SetFontSize(14)
		s.SetTransparency(0.8)
		s.SetAuthorName(author)
		s.SetColorScheme("Cyber Blue")
		s.SetHotkey(settings.ActionToggleOverlay, "Ctrl+Alt+J")
		require.NoError(t, s.Save())

		s2 := settings.New()
		s2.SetPath(s.Path())
		s2.Load()
		assert.Equal(t, 14, s2.FontSize())
		assert.InDelta(t, 0.8, s2.Transparency(), 0.001)
		assert.Equal(t, author, s2.AuthorName())
		assert.Equal(t, "Cyber Blue", s2.ColorScheme())
		assert.Equal(t, "Ctrl+Alt+J", s2.Hotkey(settings.ActionToggleOverlay))
		assert.Equal(t, "Ctrl+Alt+Q", s2.Hotkey(settings.ActionQuit))
	})
	t.Run("should create the target directory on save", func(t *testing.T) {
		dir := t.TempDir()
		s := settings.New()
		s.SetPath(filepath.Join(dir, "sub", "dir", settings.ConfigFileName))
		require.NoError(t, s.Save())
		_, err := os.Stat(s.Path())
		assert.NoError(t, err)
	})
}

func TestStore_Bootstrap(t *testing.T) {
	t.Run("should settle on the config inside the notes directory", func(t *testing.T) {
		home := t.TempDir()
		notes := filepath.Join(t.TempDir(), "notes")
		s := settings.New()
		s.Bootstrap(home, notes, filepath.Join(notes, "templates"))
		assert.Equal(t, filepath.Join(notes, settings.ConfigFileName), s.Path())
	})
	t.Run("should persist changes made after first run across restarts", func(t *testing.T) {
		home := t.TempDir()
		notes := filepath.Join(t.TempDir(), "notes")
		s := settings.New()
		s.Bootstrap(home, notes, "")
		s.SetFontSize(20)
		s.SetAuthorName("Ada")

		s2 := settings.New()
		s2.Bootstrap(home, notes, "")
		assert.Equal(t, 20, s2.FontSize())
		assert.Equal(t, "Ada", s2.AuthorName())
		assert.Equal(t, filepath.Join(notes, settings.ConfigFileName), s2.Path())
	})
	t.Run("should follow a notes directory changed in a prior run", func(t *testing.T) {
		home := t.TempDir()
		def := filepath.Join(t.TempDir(), "default")
		custom := filepath.Join(t.TempDir(), "custom")
		s := settings.New()
		s.Bootstrap(home, def, "")
		// what the first-run dialog does when the user picks another dir
		s.SetNotesDir(custom)
		s.SetPath(filepath.Join(custom, settings.ConfigFileName))
		s.SetFontSize(18)
		require.NoError(t, s.Save())

		s2 := settings.New()
		s2.Bootstrap(home, def, "")
		assert.Equal(t, 18, s2.FontSize())
		assert.Equal(t, custom, s2.NotesDir())
		assert.Equal(t, filepath.Join(custom, settings.ConfigFileName), s2.Path())
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("should be a no-op for a missing file", func(t *testing.T) {
		s, _ := newStoreAt(t)
		s.Load()
		assert.Equal(t, 12, s.FontSize())
	})
	t.Run("should keep defaults for a malformed file", func(t *testing.T) {
		s, _ := newStoreAt(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte("{truncated"), 0o644))
		s.Load()
		assert.Equal(t, 12, s.FontSize())
		assert.Equal(t, "Matrix Green", s.ColorScheme())
	})
	t.Run("should ignore unknown keys", func(t *testing.T) {
		s, _ := newStoreAt(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(`{"bogus": 1, "font_size": 16}`), 0o644))
		s.Load()
		assert.Equal(t, 16, s.FontSize())
		assert.Equal(t, nil, s.Get("bogus", nil))
	})
}

func TestStore_Validate(t *testing.T) {
	t.Run("should clamp font size", func(t *testing.T) {
		s := settings.New()
		s.Set(settings.KeyFontSize, 99)
		s.Validate()
		assert.Equal(t, 24, s.FontSize())
		s.Set(settings.KeyFontSize, 2)
		s.Validate()
		assert.Equal(t, 8, s.FontSize())
	})
	t.Run("should clamp transparency and auto save interval", func(t *testing.T) {
		s := settings.New()
		s.Set(settings.KeyTransparency, 0.01)
		s.Set(settings.KeyAutoSaveInterval, 50)
		s.Validate()
		assert.InDelta(t, 0.3, s.Transparency(), 0.001)
		assert.Equal(t, 1000, s.AutoSaveIntervalMs())
	})
	t.Run("should create configured directories", func(t *testing.T) {
		s := settings.New()
		dir := filepath.Join(t.TempDir(), "notes")
		s.SetNotesDir(dir)
		s.Validate()
		fi, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})
	t.Run("should recover defaults from garbage values", func(t *testing.T) {
		s := settings.New()
		s.Set(settings.KeyFontSize, "huge")
		s.Validate()
		assert.Equal(t, 12, s.FontSize())
	})
}

func TestStore_ResetToDefaults(t *testing.T) {
	t.Run("should reset values but preserve paths and author", func(t *testing.T) {
		s := settings.New()
		s.SetFontSize(20)
		s.SetNotesDir("/tmp/notes")
		s.SetTemplatesDir("/tmp/templates")
		s.SetAuthorName("Ada")
		s.ResetToDefaults()
		assert.Equal(t, 12, s.FontSize())
		assert.Equal(t, "/tmp/notes", s.NotesDir())
		assert.Equal(t, "/tmp/templates", s.TemplatesDir())
		assert.Equal(t, "Ada", s.AuthorName())
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("should apply multiple values and notify per key", func(t *testing.T) {
		s := settings.New()
		var changed []string
		s.OnChanged = func(key string) { changed = append(changed, key) }
		s.Update(map[string]any{
			settings.KeyFontSize:    16,
			settings.KeyColorScheme: "Blood Red",
		})
		assert.Equal(t, 16, s.FontSize())
		assert.Equal(t, "Blood Red", s.ColorScheme())
		assert.ElementsMatch(t, []string{settings.KeyFontSize, settings.KeyColorScheme}, changed)
	})
}

func TestStore_WindowFrame(t *testing.T) {
	t.Run("should round trip the window geometry", func(t *testing.T) {
		s, _ := newStoreAt(t)
		s.SetWindowFrame(480, 900, 1440, 0)
		require.NoError(t, s.Save())
		s2 := settings.New()
		s2.SetPath(s.Path())
		s2.Load()
		w, h, x, y := s2.WindowFrame()
		assert.Equal(t, []int{480, 900, 1440, 0}, []int{w, h, x, y})
	})
}
