package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/stformane/hudnotes/internal/app/settings"
	"github.com/stformane/hudnotes/internal/display"
)

// FyneShortcut converts a binding string like "Ctrl+Alt+N" into a
// desktop shortcut for the window canvas.
func FyneShortcut(binding string) (*desktop.CustomShortcut, error) {
	var mod fyne.KeyModifier
	var key fyne.KeyName
	for _, p := range strings.Split(binding, "+") {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "":
			return nil, fmt.Errorf("shortcut %q: empty token", binding)
		case "ctrl", "control":
			mod |= fyne.KeyModifierControl
		case "alt":
			mod |= fyne.KeyModifierAlt
		case "shift":
			mod |= fyne.KeyModifierShift
		case "cmd", "win", "super", "meta":
			mod |= fyne.KeyModifierSuper
		default:
			if key != "" {
				return nil, fmt.Errorf("shortcut %q: more than one key", binding)
			}
			key = fyne.KeyName(strings.ToUpper(p))
		}
	}
	if key == "" {
		return nil, fmt.Errorf("shortcut %q: no key", binding)
	}
	if mod == 0 {
		return nil, fmt.Errorf("shortcut %q: no modifier", binding)
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}, nil
}

// registerShortcuts installs the in-window hotkeys on the canvas. The
// toggle and quit actions are global and handled by the background
// listener instead.
func (u *BaseUI) registerShortcuts() {
	actions := map[string]func(){
		settings.ActionNewNote:       func() { u.TabsArea.NewUntitledTab() },
		settings.ActionOpenNote:      u.showOpenDialog,
		settings.ActionSaveNote:      u.SaveCurrent,
		settings.ActionSaveAs:        u.showSaveAsDialog,
		settings.ActionCodeWindow:    u.showCodeInsertDialog,
		settings.ActionTogglePreview: u.TogglePreview,
		settings.ActionResetPosition: u.ResetPosition,
		settings.ActionMoveCorner1:   func() { u.MoveToCorner(display.TopLeft) },
		settings.ActionMoveCorner2:   func() { u.MoveToCorner(display.TopRight) },
		settings.ActionMoveCorner3:   func() { u.MoveToCorner(display.BottomLeft) },
		settings.ActionMoveCorner4:   func() { u.MoveToCorner(display.BottomRight) },
		settings.ActionCenterWindow:  u.CenterWindow,
	}
	canvas := u.Window.Canvas()
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			u.HideOverlay()
		}
	})
	for action, fn := range actions {
		binding := u.Settings.Hotkey(action)
		sc, err := FyneShortcut(binding)
		if err != nil {
			slog.Error("Shortcut disabled", "action", action, "error", err)
			continue
		}
		f := fn
		canvas.AddShortcut(sc, func(fyne.Shortcut) { f() })
	}
}

// CenterWindow resizes the overlay to its stored size at the screen
// center.
func (u *BaseUI) CenterWindow() {
	u.Window.CenterOnScreen()
	w, h, _, _ := u.Settings.WindowFrame()
	f := display.Center(u.screenSize(), display.Size{Width: w, Height: h})
	u.Settings.SetWindowFrame(f.Width, f.Height, f.X, f.Y)
}
