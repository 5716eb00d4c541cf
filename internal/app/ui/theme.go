package ui

import (
	"image/color"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/stformane/hudnotes/internal/app"
	"github.com/stformane/hudnotes/internal/app/settings"
)

// overlayTheme maps the active color scheme onto Fyne's theme
// interface. Window translucency is expressed through the alpha
// channel of the background colors, scaled by the transparency
// setting.
type overlayTheme struct {
	st *settings.Store

	mu      sync.RWMutex
	current app.Theme
	alpha   uint8
	scale   float32
}

var _ fyne.Theme = (*overlayTheme)(nil)

func newOverlayTheme(st *settings.Store) *overlayTheme {
	t := &overlayTheme{st: st}
	t.Reload()
	return t
}

// Reload re-reads scheme, transparency and font size from the settings.
func (t *overlayTheme) Reload() {
	themes := app.LoadThemes(t.st.TemplatesDir())
	name := t.st.ColorScheme()
	scheme, ok := themes[name]
	if !ok {
		slog.Warn("Unknown color scheme, using default", "scheme", name)
		scheme = themes[app.DefaultThemeName]
	}
	_, _, defSize := t.st.FontSizePresets()
	t.mu.Lock()
	t.current = scheme
	t.alpha = uint8(t.st.Transparency() * 255)
	t.scale = float32(t.st.FontSize()) / float32(defSize)
	t.mu.Unlock()
}

func (t *overlayTheme) roleColor(r app.ColorRole, alpha bool) color.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := app.StyleFor(r, t.current).Color
	if alpha {
		c.A = t.alpha
	}
	return c
}

func (t *overlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return t.roleColor(app.RoleBackground, true)
	case theme.ColorNameInputBackground:
		return t.roleColor(app.RoleStatusBar, true)
	case theme.ColorNameForeground:
		return t.roleColor(app.RoleForeground, false)
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return t.roleColor(app.RoleAccent, false)
	case theme.ColorNameSelection:
		return t.roleColor(app.RoleSelection, false)
	case theme.ColorNameButton:
		return t.roleColor(app.RoleButton, true)
	case theme.ColorNameHover:
		return t.roleColor(app.RoleButtonActive, false)
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return t.roleColor(app.RoleTitleBar, false)
	case theme.ColorNameError:
		return t.roleColor(app.RoleError, false)
	case theme.ColorNameWarning:
		return t.roleColor(app.RoleWarning, false)
	case theme.ColorNameSuccess:
		return t.roleColor(app.RoleSuccess, false)
	case theme.ColorNameScrollBar:
		return t.roleColor(app.RoleBorder, false)
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *overlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	// the overlay is a note editor, monospace reads best
	style.Monospace = true
	return theme.DefaultTheme().Font(style)
}

func (t *overlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *overlayTheme) Size(name fyne.ThemeSizeName) float32 {
	t.mu.RLock()
	scale := t.scale
	t.mu.RUnlock()
	base := theme.DefaultTheme().Size(name)
	switch name {
	case theme.SizeNameText, theme.SizeNameHeadingText, theme.SizeNameSubHeadingText:
		return base * scale
	default:
		return base
	}
}
