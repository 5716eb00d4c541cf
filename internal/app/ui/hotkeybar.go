package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/stformane/hudnotes/internal/app/settings"
)

// HotkeyBar is the one-line legend of the most useful shortcuts at the
// bottom of the overlay.
type HotkeyBar struct {
	u       *BaseUI
	label   *widget.Label
	content fyne.CanvasObject
}

// legendActions are the shortcuts worth showing, in display order.
var legendActions = []string{
	settings.ActionToggleOverlay,
	settings.ActionNewNote,
	settings.ActionSaveNote,
	settings.ActionTogglePreview,
	settings.ActionQuit,
}

func (u *BaseUI) newHotkeyBar() *HotkeyBar {
	b := &HotkeyBar{u: u, label: widget.NewLabel("")}
	b.label.TextStyle = fyne.TextStyle{Monospace: true}
	b.Refresh()
	b.content = container.NewHBox(b.label)
	return b
}

// Refresh rebuilds the legend from the current bindings.
func (b *HotkeyBar) Refresh() {
	desc := settings.HotkeyDescriptions()
	parts := make([]string, 0, len(legendActions))
	for _, action := range legendActions {
		binding := b.u.Settings.Hotkey(action)
		if binding == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", binding, desc[action]))
	}
	b.label.SetText(strings.Join(parts, "  |  "))
}
