package app_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stformane/hudnotes/internal/app"
)

func TestParseHexColor(t *testing.T) {
	t.Run("should parse 6 digit colors", func(t *testing.T) {
		c, err := app.ParseHexColor("#ff6600")
		if assert.NoError(t, err) {
			assert.Equal(t, color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}, c)
		}
	})
	t.Run("should parse 3 digit colors", func(t *testing.T) {
		c, err := app.ParseHexColor("#f60")
		if assert.NoError(t, err) {
			assert.Equal(t, color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}, c)
		}
	})
	t.Run("should report malformed input", func(t *testing.T) {
		_, err := app.ParseHexColor("ff6600")
		assert.Error(t, err)
		_, err = app.ParseHexColor("#ff66")
		assert.Error(t, err)
	})
}

func TestStyleFor(t *testing.T) {
	themes := app.BuiltinThemes()
	t.Run("should resolve a role to its theme color", func(t *testing.T) {
		s := app.StyleFor(app.RoleForeground, themes["Cyber Blue"])
		assert.Equal(t, color.NRGBA{R: 0x00, G: 0xcc, B: 0xff, A: 0xff}, s.Color)
	})
	t.Run("should fall back to role default for unknown role value", func(t *testing.T) {
		broken := app.Theme{Name: "x", Colors: map[app.ColorRole]string{app.RoleForeground: "not-a-color"}}
		s := app.StyleFor(app.RoleForeground, broken)
		assert.Equal(t, color.NRGBA{R: 0x00, G: 0xff, B: 0x41, A: 0xff}, s.Color)
	})
}

func TestBuiltinThemes(t *testing.T) {
	t.Run("should define all six schemes", func(t *testing.T) {
		themes := app.BuiltinThemes()
		for _, name := range []string{
			"Matrix Green", "Cyber Blue", "Neon Purple",
			"Hacker Orange", "Terminal White", "Blood Red",
		} {
			assert.Contains(t, themes, name)
		}
	})
	t.Run("should fill every role in every scheme", func(t *testing.T) {
		for name, theme := range app.BuiltinThemes() {
			for _, r := range []app.ColorRole{
				app.RoleBackground, app.RoleForeground, app.RoleAccent,
				app.RoleSelection, app.RoleBorder, app.RoleStatusBar,
			} {
				assert.NotEmpty(t, theme.Color(r), "%s/%s", name, r)
			}
		}
	})
}

func TestLoadThemes(t *testing.T) {
	t.Run("should merge user themes over builtins", func(t *testing.T) {
		dir := t.TempDir()
		data := "name: Deep Sea\ndescription: test theme\ncolors:\n  bg_color: \"#001122\"\n  fg_color: \"#88ccff\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "deep_sea.yml"), []byte(data), 0o644))
		themes := app.LoadThemes(dir)
		require.Contains(t, themes, "Deep Sea")
		assert.Equal(t, "#001122", themes["Deep Sea"].Color(app.RoleBackground))
		// unspecified roles fall back to defaults
		assert.Equal(t, "#ff6600", themes["Deep Sea"].Color(app.RoleAccent))
		assert.Contains(t, themes, "Matrix Green")
	})
	t.Run("should skip malformed files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("{not yaml"), 0o644))
		themes := app.LoadThemes(dir)
		assert.Contains(t, themes, "Matrix Green")
	})
	t.Run("should tolerate missing directory", func(t *testing.T) {
		themes := app.LoadThemes("/does/not/exist")
		assert.Contains(t, themes, "Matrix Green")
	})
}
