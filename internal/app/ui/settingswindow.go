package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"

	"github.com/stformane/hudnotes/internal/app"
	"github.com/stformane/hudnotes/internal/app/settings"
	"github.com/stformane/hudnotes/internal/hotkeys"
)

type settingsWindow struct {
	u      *BaseUI
	window fyne.Window

	content fyne.CanvasObject
}

// showSettingsWindow opens the settings window, or raises the existing
// one.
func (u *BaseUI) showSettingsWindow() {
	if u.settingsWin != nil {
		u.settingsWin.Show()
		return
	}
	w := u.FyneApp.NewWindow(appTitle + " - Settings")
	sw := u.newSettingsWindow()
	sw.window = w
	w.SetContent(fynetooltip.AddWindowToolTipLayer(sw.content, w.Canvas()))
	w.Resize(fyne.Size{Width: 560, Height: 480})
	w.SetOnClosed(func() {
		u.settingsWin = nil
		fynetooltip.DestroyWindowToolTipLayer(w.Canvas())
	})
	u.settingsWin = w
	w.Show()
}

func (u *BaseUI) newSettingsWindow() *settingsWindow {
	sw := &settingsWindow{u: u}
	tabs := container.NewAppTabs(
		container.NewTabItem("Appearance", sw.makeAppearancePage()),
		container.NewTabItem("Behavior", sw.makeBehaviorPage()),
		container.NewTabItem("Hotkeys", sw.makeHotkeysPage()),
		container.NewTabItem("Files", sw.makeFilesPage()),
	)
	tabs.SetTabLocation(container.TabLocationLeading)
	sw.content = tabs
	return sw
}

func (w *settingsWindow) makeAppearancePage() fyne.CanvasObject {
	st := w.u.Settings

	minF, maxF, _ := st.FontSizePresets()
	fontSize := kxwidget.NewSlider(float64(minF), float64(maxF))
	fontSize.SetValue(float64(st.FontSize()))
	fontSize.OnChangeEnded = func(v float64) {
		st.SetFontSize(int(v))
		w.u.RefreshTheme()
	}

	minT, maxT, _ := st.TransparencyPresets()
	transparency := kxwidget.NewSlider(minT, maxT)
	transparency.SetValue(st.Transparency())
	transparency.OnChangeEnded = func(v float64) {
		st.SetTransparency(v)
		w.u.RefreshTheme()
	}

	themes := app.LoadThemes(st.TemplatesDir())
	scheme := widget.NewSelect(app.ThemeNames(themes), func(s string) {
		st.SetColorScheme(s)
		w.u.RefreshTheme()
	})
	scheme.SetSelected(st.ColorScheme())

	highlight := kxwidget.NewSwitch(func(on bool) {
		st.SetSyntaxHighlighting(on)
		w.u.TabsArea.RefreshAll()
	})
	highlight.SetState(st.SyntaxHighlighting())

	tooltips := kxwidget.NewSwitch(st.SetShowTooltips)
	tooltips.SetState(st.ShowTooltips())

	autoScale := kxwidget.NewSwitch(st.SetAutoScale)
	autoScale.SetState(st.AutoScale())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Font size", Widget: fontSize, HintText: "Editor font size in points"},
			{Text: "Opacity", Widget: transparency, HintText: "Window opacity, lower is more see-through"},
			{Text: "Color scheme", Widget: scheme, HintText: "Overlay color scheme"},
			{Text: "Markdown rendering", Widget: highlight, HintText: "Render markdown in the preview"},
			{Text: "Tooltips", Widget: tooltips, HintText: "Show tooltips on toolbar buttons (requires restart)"},
			{Text: "DPI auto scale", Widget: autoScale, HintText: "Scale window placement with the display DPI"},
		},
	}
	reset := func() {
		st.ResetFontSize()
		st.ResetTransparency()
		st.SetColorScheme(app.DefaultThemeName)
		fontSize.SetValue(float64(st.FontSize()))
		transparency.SetValue(st.Transparency())
		scheme.SetSelected(st.ColorScheme())
		w.u.RefreshTheme()
	}
	return w.makePage("Appearance", form, reset)
}

func (w *settingsWindow) makeBehaviorPage() fyne.CanvasObject {
	st := w.u.Settings

	minA, maxA, _ := st.AutoSaveIntervalPresets()
	autosave := kxwidget.NewSlider(float64(minA), float64(maxA))
	autosave.SetValue(float64(st.AutoSaveIntervalMs()))
	autosave.OnChangeEnded = func(v float64) {
		st.SetAutoSaveIntervalMs(int(v))
	}

	hover := kxwidget.NewSwitch(st.SetMouseHoverShow)
	hover.SetState(st.MouseHoverShow())

	clickOutside := kxwidget.NewSwitch(st.SetClickOutsideHide)
	clickOutside.SetState(st.ClickOutsideHide())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Auto-save delay", Widget: autosave, HintText: "Milliseconds after the last edit"},
			{Text: "Hover to show", Widget: hover, HintText: "Show overlay when hovering the top-left corner (requires restart)"},
			{Text: "Click outside to hide", Widget: clickOutside, HintText: "Hide overlay when clicking outside it (requires restart)"},
		},
	}
	reset := func() {
		st.ResetAutoSaveIntervalMs()
		autosave.SetValue(float64(st.AutoSaveIntervalMs()))
	}
	return w.makePage("Behavior", form, reset)
}

func (w *settingsWindow) makeHotkeysPage() fyne.CanvasObject {
	st := w.u.Settings
	desc := settings.HotkeyDescriptions()
	items := make([]*widget.FormItem, 0, len(desc))
	entries := make(map[string]*widget.Entry)
	for _, action := range settings.ActionsInOrder() {
		a := action
		entry := widget.NewEntry()
		entry.SetText(st.Hotkey(a))
		entry.Validator = hotkeys.Validate
		entry.OnSubmitted = func(s string) {
			if err := hotkeys.Validate(s); err != nil {
				slog.Warn("Rejected hotkey binding", "action", a, "binding", s, "error", err)
				return
			}
			st.SetHotkey(a, s)
			w.u.HotkeyBar.Refresh()
		}
		entries[a] = entry
		items = append(items, &widget.FormItem{Text: desc[a], Widget: entry})
	}
	form := &widget.Form{Items: items}
	reset := func() {
		for action, binding := range settings.DefaultHotkeys() {
			st.SetHotkey(action, binding)
			entries[action].SetText(binding)
		}
		w.u.HotkeyBar.Refresh()
	}
	note := widget.NewLabel("Global hotkey changes take effect after a restart.")
	note.TextStyle = fyne.TextStyle{Italic: true}
	return container.NewBorder(nil, note, nil, nil, w.makePage("Hotkeys", form, reset))
}

func (w *settingsWindow) makeFilesPage() fyne.CanvasObject {
	st := w.u.Settings

	notesDir := widget.NewEntry()
	notesDir.SetText(st.NotesDir())
	notesDir.OnSubmitted = func(s string) { st.SetNotesDir(s) }

	templatesDir := widget.NewEntry()
	templatesDir.SetText(st.TemplatesDir())
	templatesDir.OnSubmitted = func(s string) {
		st.SetTemplatesDir(s)
		w.u.Templates.Reload()
	}

	author := widget.NewEntry()
	author.SetText(st.AuthorName())
	author.OnSubmitted = func(s string) { st.SetAuthorName(s) }

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Notes directory", Widget: notesDir, HintText: "Where notes are stored"},
			{Text: "Templates directory", Widget: templatesDir, HintText: "Custom templates and themes"},
			{Text: "Author name", Widget: author, HintText: "Used in new note templates"},
		},
	}
	resetAll := widget.NewButton("Reset all settings", func() {
		dialog.ShowConfirm(
			"Reset all settings",
			"Reset every setting to its default? Directories and author name are kept.",
			func(ok bool) {
				if !ok {
					return
				}
				st.ResetToDefaults()
				w.u.RefreshTheme()
				w.u.HotkeyBar.Refresh()
				slog.Info("Settings reset to defaults")
			},
			w.window,
		)
	})
	resetAll.Importance = widget.DangerImportance
	return container.NewBorder(nil, resetAll, nil, nil, w.makePage("Files", form, func() {}))
}

func (w *settingsWindow) makePage(title string, form *widget.Form, reset func()) fyne.CanvasObject {
	heading := widget.NewLabel(title)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	resetBtn := widget.NewButton("Reset", reset)
	return container.NewBorder(
		heading,
		container.NewHBox(resetBtn),
		nil,
		nil,
		container.NewVScroll(form),
	)
}
