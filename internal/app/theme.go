package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// ColorRole names one themable color slot. Every theme defines the
// full set; missing entries fall back to the defaults below.
type ColorRole string

const (
	RoleBackground   ColorRole = "bg_color"
	RoleForeground   ColorRole = "fg_color"
	RoleAccent       ColorRole = "accent_color"
	RoleSelection    ColorRole = "select_bg"
	RoleButton       ColorRole = "button_bg"
	RoleButtonText   ColorRole = "button_fg"
	RoleButtonActive ColorRole = "button_active"
	RoleTitleBar     ColorRole = "title_bg"
	RoleStatusBar    ColorRole = "status_bg"
	RoleBorder       ColorRole = "border_color"
	RoleWarning      ColorRole = "warning_color"
	RoleError        ColorRole = "error_color"
	RoleSuccess      ColorRole = "success_color"
)

var roleDefaults = map[ColorRole]string{
	RoleBackground:   "#0a0a0a",
	RoleForeground:   "#00ff41",
	RoleAccent:       "#ff6600",
	RoleSelection:    "#1a3d1a",
	RoleButton:       "#1a1a1a",
	RoleButtonText:   "#00ff41",
	RoleButtonActive: "#2a4a2a",
	RoleTitleBar:     "#333333",
	RoleStatusBar:    "#1a1a1a",
	RoleBorder:       "#00ff41",
	RoleWarning:      "#ffaa00",
	RoleError:        "#ff4444",
	RoleSuccess:      "#44ff44",
}

// Theme is a named, immutable set of colors for all roles.
type Theme struct {
	Name        string
	Description string
	Colors      map[ColorRole]string
}

// Color returns the hex color for a role, falling back to the role default.
func (t Theme) Color(r ColorRole) string {
	if c, ok := t.Colors[r]; ok && c != "" {
		return c
	}
	return roleDefaults[r]
}

// Style describes how a themed element is rendered.
type Style struct {
	Color color.NRGBA
}

// StyleFor resolves the style for a role under a theme. It never
// fails; unparsable colors resolve to the role default.
func StyleFor(r ColorRole, t Theme) Style {
	c, err := ParseHexColor(t.Color(r))
	if err != nil {
		c, _ = ParseHexColor(roleDefaults[r])
	}
	return Style{Color: c}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return c, fmt.Errorf("parse hex color %q: missing #", s)
	}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("parse hex color %q: bad length", s)
	}
	return c, err
}

// DefaultThemeName is the scheme used when nothing else is configured
// or the configured one does not exist.
const DefaultThemeName = "Matrix Green"

// BuiltinThemes returns the built-in color schemes keyed by name.
func BuiltinThemes() map[string]Theme {
	mk := func(name, description string, overrides map[ColorRole]string) Theme {
		colors := maps.Clone(roleDefaults)
		maps.Copy(colors, overrides)
		return Theme{Name: name, Description: description, Colors: colors}
	}
	return map[string]Theme{
		"Matrix Green": mk("Matrix Green", "Classic green on black", nil),
		"Cyber Blue": mk("Cyber Blue", "Blue with electric accents", map[ColorRole]string{
			RoleBackground: "#0a0a1a", RoleForeground: "#00ccff", RoleSelection: "#1a1a3d",
			RoleButton: "#1a1a2a", RoleButtonText: "#00ccff", RoleButtonActive: "#2a2a4a",
			RoleTitleBar: "#333344", RoleStatusBar: "#1a1a2a", RoleBorder: "#00ccff",
			RoleSuccess: "#44ffaa",
		}),
		"Neon Purple": mk("Neon Purple", "Purple with yellow accents", map[ColorRole]string{
			RoleBackground: "#1a0a1a", RoleForeground: "#cc00ff", RoleAccent: "#ffff00",
			RoleSelection: "#3d1a3d", RoleButton: "#2a1a2a", RoleButtonText: "#cc00ff",
			RoleButtonActive: "#4a2a4a", RoleTitleBar: "#443344", RoleStatusBar: "#2a1a2a",
			RoleBorder: "#cc00ff",
		}),
		"Hacker Orange": mk("Hacker Orange", "Orange and green", map[ColorRole]string{
			RoleBackground: "#1a1a0a", RoleForeground: "#ff9900", RoleAccent: "#00ff00",
			RoleSelection: "#3d3d1a", RoleButton: "#2a2a1a", RoleButtonText: "#ff9900",
			RoleButtonActive: "#4a4a2a", RoleTitleBar: "#444433", RoleStatusBar: "#2a2a1a",
			RoleBorder: "#ff9900",
		}),
		"Terminal White": mk("Terminal White", "Plain white on black", map[ColorRole]string{
			RoleBackground: "#000000", RoleForeground: "#ffffff", RoleAccent: "#ffff00",
			RoleSelection: "#333333", RoleButton: "#222222", RoleButtonText: "#ffffff",
			RoleButtonActive: "#444444", RoleTitleBar: "#333333", RoleStatusBar: "#222222",
			RoleBorder: "#ffffff",
		}),
		"Blood Red": mk("Blood Red", "Red on near-black", map[ColorRole]string{
			RoleBackground: "#1a0000", RoleForeground: "#ff3333", RoleAccent: "#ffff00",
			RoleSelection: "#3d1a1a", RoleButton: "#2a1a1a", RoleButtonText: "#ff3333",
			RoleButtonActive: "#4a2a2a", RoleTitleBar: "#443333", RoleStatusBar: "#2a1a1a",
			RoleBorder: "#ff3333",
		}),
	}
}

// ThemeNames returns builtin plus custom theme names, sorted.
func ThemeNames(themes map[string]Theme) []string {
	names := slices.Collect(maps.Keys(themes))
	slices.Sort(names)
	return names
}

type themeFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Colors      map[string]string `yaml:"colors"`
}

// LoadThemes reads user theme files (*.yml, *.yaml) from dir and
// merges them over the builtin schemes. A missing directory or a
// malformed file is logged and skipped, never an error for the caller.
func LoadThemes(dir string) map[string]Theme {
	themes := BuiltinThemes()
	if dir == "" {
		return themes
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read themes directory", "dir", dir, "error", err)
		}
		return themes
	}
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		t, err := readThemeFile(filepath.Join(dir, e.Name()))
		if err != nil {
			slog.Warn("Skipping malformed theme file", "file", e.Name(), "error", err)
			continue
		}
		themes[t.Name] = t
	}
	return themes
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

func readThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Theme{}, err
	}
	if tf.Name == "" {
		tf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	colors := maps.Clone(roleDefaults)
	for k, v := range tf.Colors {
		colors[ColorRole(k)] = v
	}
	return Theme{Name: tf.Name, Description: tf.Description, Colors: colors}, nil
}
