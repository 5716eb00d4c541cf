// Package ui implements the overlay window and all of its child
// widgets. The UI runs on Fyne's event loop; everything that arrives
// from background listeners goes through the command bridge.
package ui

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/stformane/hudnotes/internal/app"
	"github.com/stformane/hudnotes/internal/app/settings"
	"github.com/stformane/hudnotes/internal/app/templates"
	"github.com/stformane/hudnotes/internal/appdirs"
	"github.com/stformane/hudnotes/internal/bridge"
	"github.com/stformane/hudnotes/internal/display"
	"github.com/stformane/hudnotes/internal/mousewatch"
	"github.com/stformane/hudnotes/internal/singleinstance"
)

const (
	appTitle = "HUD Notes"

	// extra slack around the stored window frame when testing whether
	// a click landed outside
	clickOutsideMargin = 10
)

// BaseUI is the root object of the overlay. It owns the window, the
// settings store, the template registry and the command bridge, and
// wires them into the child areas.
type BaseUI struct {
	FyneApp   fyne.App
	Window    fyne.Window
	Settings  *settings.Store
	Templates *templates.Registry
	Dirs      appdirs.AppDirs
	Bridge    *bridge.Bridge

	TabsArea  *TabsArea
	Toolbar   *Toolbar
	StatusBar *StatusBar
	HotkeyBar *HotkeyBar

	// OnQuit is called when the quit command arrives, after state has
	// been saved. Set by main to stop the background listeners.
	OnQuit func()

	theme       *overlayTheme
	visible     bool
	closed      atomic.Bool
	single      *singleinstance.Group
	settingsWin fyne.Window
}

// NewBaseUI creates the overlay UI. The settings store must already be
// loaded and validated.
func NewBaseUI(fyneApp fyne.App, st *settings.Store, tr *templates.Registry, dirs appdirs.AppDirs) *BaseUI {
	u := &BaseUI{
		FyneApp:   fyneApp,
		Settings:  st,
		Templates: tr,
		Dirs:      dirs,
		single:    singleinstance.NewGroup(),
	}
	u.theme = newOverlayTheme(st)
	fyneApp.Settings().SetTheme(u.theme)
	u.Window = u.newOverlayWindow()
	u.Bridge = bridge.New(func() bool { return !u.closed.Load() })

	u.TabsArea = u.newTabsArea()
	u.Toolbar = u.newToolbar()
	u.StatusBar = u.newStatusBar()
	u.HotkeyBar = u.newHotkeyBar()

	u.Window.SetContent(container.NewBorder(
		u.Toolbar.content,
		container.NewVBox(u.StatusBar.content, u.HotkeyBar.content),
		nil,
		nil,
		u.TabsArea.content,
	))
	u.Window.SetCloseIntercept(u.HideOverlay)
	return u
}

// newOverlayWindow creates the overlay window, borderless when the
// driver supports it.
func (u *BaseUI) newOverlayWindow() fyne.Window {
	if drv, ok := u.FyneApp.Driver().(desktop.Driver); ok {
		w := drv.CreateSplashWindow()
		w.SetTitle(appTitle)
		return w
	}
	slog.Warn("Driver does not support borderless windows, falling back")
	return u.FyneApp.NewWindow(appTitle)
}

// Init restores the persisted session: window geometry, last file and
// a first tab. Must run before ShowAndRun.
func (u *BaseUI) Init() {
	u.applyWindowFrame()
	u.registerHandlers()
	u.registerShortcuts()
	if last := u.Settings.LastFile(); last != "" {
		if err := u.TabsArea.OpenFile(last); err != nil {
			slog.Warn("Could not restore last file", "path", last, "error", err)
		}
	}
	if u.TabsArea.Len() == 0 {
		if u.Settings.AuthorName() == "" {
			u.TabsArea.NewTabWithContent("Welcome", u.Templates.Overview(u.Settings.AuthorName(), time.Now()))
		} else {
			u.TabsArea.NewUntitledTab()
		}
	}
}

// ShowAndRun shows the overlay and runs the event loop (blocking).
func (u *BaseUI) ShowAndRun(ctx context.Context) {
	u.FyneApp.Lifecycle().SetOnStarted(func() {
		slog.Info("App started")
		u.visible = true
		u.Bridge.Start(ctx)
		if u.Settings.AuthorName() == "" {
			u.showStartupDialog()
		}
	})
	u.FyneApp.Lifecycle().SetOnStopped(func() {
		slog.Info("App stopped")
		u.closed.Store(true)
	})
	u.Window.ShowAndRun()
}

func (u *BaseUI) registerHandlers() {
	u.Bridge.SetHandler(app.CommandShowOverlay, func(app.Command) { u.ShowOverlay() })
	u.Bridge.SetHandler(app.CommandHideOverlay, func(app.Command) { u.HideOverlay() })
	u.Bridge.SetHandler(app.CommandToggleOverlay, func(app.Command) { u.ToggleOverlay() })
	u.Bridge.SetHandler(app.CommandCheckClickOutside, func(c app.Command) { u.checkClickOutside(c.X, c.Y) })
	u.Bridge.SetHandler(app.CommandQuit, func(app.Command) { u.Quit() })
}

// ShowOverlay makes the overlay visible and focuses the editor.
func (u *BaseUI) ShowOverlay() {
	if u.visible {
		u.Window.RequestFocus()
		return
	}
	u.visible = true
	u.Window.Show()
	u.TabsArea.FocusEditor()
	slog.Debug("Overlay shown")
}

// HideOverlay hides the overlay without losing any state.
func (u *BaseUI) HideOverlay() {
	if !u.visible {
		return
	}
	u.visible = false
	u.saveWindowFrame()
	u.Window.Hide()
	slog.Debug("Overlay hidden")
}

// ToggleOverlay flips the overlay's visibility.
func (u *BaseUI) ToggleOverlay() {
	if u.visible {
		u.HideOverlay()
	} else {
		u.ShowOverlay()
	}
}

// IsVisible reports whether the overlay is currently shown.
func (u *BaseUI) IsVisible() bool {
	return u.visible
}

// checkClickOutside hides the overlay when a global click lands
// outside the window frame plus margin. The hook reports physical
// pixels; the stored frame is logical, so the click is converted
// through the canvas scale first.
func (u *BaseUI) checkClickOutside(x, y int) {
	if !u.visible || !u.Settings.ClickOutsideHide() {
		return
	}
	w, h, fx, fy := u.Settings.WindowFrame()
	if w <= 0 || h <= 0 {
		return
	}
	lx, ly := mousewatch.ToLogical(x, y, u.Window.Canvas().Scale())
	m := float32(clickOutsideMargin)
	inside := lx >= float32(fx)-m && lx <= float32(fx+w)+m &&
		ly >= float32(fy)-m && ly <= float32(fy+h)+m
	if !inside {
		u.HideOverlay()
	}
}

// Quit saves all state and exits the app.
func (u *BaseUI) Quit() {
	slog.Info("Quitting")
	u.TabsArea.SaveAllModified()
	u.saveWindowFrame()
	if err := u.Settings.Save(); err != nil {
		slog.Error("Could not save settings on exit", "error", err)
	}
	u.closed.Store(true)
	if u.OnQuit != nil {
		u.OnQuit()
	}
	u.FyneApp.Quit()
}

// displayScale returns the DPI scale used for placement math. Auto
// scale follows the canvas, otherwise everything is treated as 96 DPI.
func (u *BaseUI) displayScale() float64 {
	if !u.Settings.AutoScale() {
		return 1
	}
	s := float64(u.Window.Canvas().Scale())
	if s <= 0 {
		return 1
	}
	return s
}

// screenSize returns the assumed screen dimensions. Fyne offers no
// portable way to query the display, so a full-HD screen is assumed
// and frames are clamped against it.
func (u *BaseUI) screenSize() display.Size {
	return display.Size{Width: 1920, Height: 1080}
}

// applyWindowFrame sizes the window from the stored frame, or from the
// quarter-screen default when nothing is stored yet.
func (u *BaseUI) applyWindowFrame() {
	w, h, _, _ := u.Settings.WindowFrame()
	if w <= 0 || h <= 0 {
		f := display.QuarterScreen(u.screenSize(), u.displayScale())
		w, h = f.Width, f.Height
	}
	u.Window.Resize(fyne.NewSize(float32(w), float32(h)))
}

// ResetPosition restores the default quarter-screen frame on the right
// edge.
func (u *BaseUI) ResetPosition() {
	f := display.QuarterScreen(u.screenSize(), u.displayScale())
	u.Settings.SetWindowFrame(f.Width, f.Height, f.X, f.Y)
	u.Window.Resize(fyne.NewSize(float32(f.Width), float32(f.Height)))
}

func (u *BaseUI) saveWindowFrame() {
	s := u.Window.Canvas().Size()
	_, _, x, y := u.Settings.WindowFrame()
	u.Settings.SetWindowFrame(int(s.Width), int(s.Height), x, y)
}

// MoveToCorner resizes the window toward a corner frame. Fyne cannot
// reposition a window, so the position part of the frame is persisted
// for the click-outside test only.
func (u *BaseUI) MoveToCorner(c display.Corner) {
	w, h, _, _ := u.Settings.WindowFrame()
	f := display.CornerFrame(c, u.screenSize(), display.Size{Width: w, Height: h}, u.displayScale())
	u.Settings.SetWindowFrame(f.Width, f.Height, f.X, f.Y)
	u.Window.Resize(fyne.NewSize(float32(f.Width), float32(f.Height)))
}

// RefreshTheme reapplies the theme after a settings change.
func (u *BaseUI) RefreshTheme() {
	u.theme.Reload()
	u.FyneApp.Settings().SetTheme(u.theme)
	u.TabsArea.RefreshAll()
}

// NotesPath returns the absolute path for a note file name inside the
// configured notes directory.
func (u *BaseUI) NotesPath(name string) string {
	return filepath.Join(u.Settings.NotesDir(), name)
}
