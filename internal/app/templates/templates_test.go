package templates_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stformane/hudnotes/internal/app/templates"
)

func TestRegistry_Builtins(t *testing.T) {
	t.Run("should seed all builtin templates", func(t *testing.T) {
		r := templates.New("")
		names := r.Names()
		assert.Len(t, names, 11)
		for _, want := range []string{
			"Basic", "Meeting", "Daily Log", "Code Review", "Ctf Writeup",
			"Class Notes", "Study Session", "Project Planning", "Bug Report",
			"Powershell Script", "Batch Script",
		} {
			assert.Contains(t, names, want)
		}
	})
	t.Run("should return sorted names", func(t *testing.T) {
		r := templates.New("")
		names := r.Names()
		for i := 1; i < len(names); i++ {
			assert.LessOrEqual(t, names[i-1], names[i])
		}
	})
	t.Run("should fall back to Basic for unknown template", func(t *testing.T) {
		r := templates.New("")
		assert.Equal(t, r.Content("Basic"), r.Content("No Such Template"))
	})
}

func TestRegistry_Format(t *testing.T) {
	t.Run("should substitute known placeholders", func(t *testing.T) {
		r := templates.New("")
		got := r.Format("Basic", map[string]string{
			"title":  "X",
			"author": "Y",
			"date":   "2024-01-01",
		})
		assert.Contains(t, got, "# X")
		assert.Contains(t, got, "**Author:** Y")
		assert.Contains(t, got, "**Date:** 2024-01-01")
	})
	t.Run("should strip unresolved placeholders instead of failing", func(t *testing.T) {
		r := templates.New("")
		got := r.Format("Basic", map[string]string{"title": "X"})
		assert.Contains(t, got, "# X")
		assert.NotContains(t, got, "{author}")
		assert.NotContains(t, got, "{date}")
	})
	t.Run("should leave templates without placeholders intact", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.md"), []byte("# Fixed\n\nbody\n"), 0o644))
		r := templates.New(dir)
		assert.Equal(t, "# Fixed\n\nbody\n", r.Format("Plain", nil))
	})
}

func TestRegistry_LoadDir(t *testing.T) {
	t.Run("should derive template names from file names", func(t *testing.T) {
		assert.Equal(t, "Daily Log", templates.NameFromFile("daily_log.md"))
		assert.Equal(t, "Sprint Retro", templates.NameFromFile("SPRINT_RETRO.md"))
		assert.Equal(t, "Ideas", templates.NameFromFile("ideas.md"))
	})
	t.Run("should overlay builtins with user templates of the same name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "basic.md"), []byte("# custom {title}\n"), 0o644))
		r := templates.New(dir)
		assert.Equal(t, "# custom {title}\n", r.Content("Basic"))
		assert.Len(t, r.Names(), 11)
	})
	t.Run("should add new user templates alongside builtins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sprint_retro.md"), []byte("# {title} retro\n"), 0o644))
		r := templates.New(dir)
		assert.Contains(t, r.Names(), "Sprint Retro")
		assert.Len(t, r.Names(), 12)
	})
	t.Run("should ignore non-markdown files and subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("nope"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0o755))
		r := templates.New(dir)
		assert.Len(t, r.Names(), 11)
	})
	t.Run("should tolerate a missing directory", func(t *testing.T) {
		r := templates.New(filepath.Join(t.TempDir(), "does-not-exist"))
		assert.Len(t, r.Names(), 11)
	})
}

func TestRegistry_Reload(t *testing.T) {
	t.Run("should pick up files added after construction", func(t *testing.T) {
		dir := t.TempDir()
		r := templates.New(dir)
		require.Len(t, r.Names(), 11)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "standup.md"), []byte("# {title}\n"), 0o644))
		r.Reload()
		assert.Contains(t, r.Names(), "Standup")
	})
}

func TestRegistry_Overview(t *testing.T) {
	t.Run("should list every template with a preview", func(t *testing.T) {
		r := templates.New("")
		now := time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC)
		got := r.Overview("Ada", now)
		assert.Contains(t, got, "**Author:** Ada")
		assert.Contains(t, got, "**Date:** 2024-01-02 15:04")
		assert.Contains(t, got, "**Templates Available:** 11")
		for _, name := range r.Names() {
			assert.Contains(t, got, name)
		}
		assert.NotContains(t, got, "{title}")
	})
	t.Run("should use a placeholder author when none is set", func(t *testing.T) {
		r := templates.New("")
		got := r.Overview("", time.Now())
		assert.Contains(t, got, "**Author:** Your Name")
	})
	t.Run("should truncate long previews", func(t *testing.T) {
		r := templates.New("")
		got := r.Overview("Ada", time.Now())
		assert.Contains(t, got, "[... rest of template ...]")
		assert.LessOrEqual(t, strings.Count(got, "```markdown"), 12)
	})
}

func TestDescription(t *testing.T) {
	t.Run("should describe builtins and default the rest", func(t *testing.T) {
		assert.Equal(t, "Simple note with title, author, and date", templates.Description("Basic"))
		assert.Equal(t, "Custom template", templates.Description("Sprint Retro"))
	})
}
