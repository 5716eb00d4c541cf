package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stformane/hudnotes/internal/app/templates"
)

// showTemplatePicker lets the user pick a template and a title for a
// new document.
func (u *BaseUI) showTemplatePicker() {
	names := u.Templates.Names()
	description := widget.NewLabel(templates.Description(names[0]))
	description.Wrapping = fyne.TextWrapWord

	list := widget.NewList(
		func() int { return len(names) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, co fyne.CanvasObject) {
			co.(*widget.Label).SetText(names[id])
		},
	)
	selected := 0
	list.OnSelected = func(id widget.ListItemID) {
		selected = id
		description.SetText(templates.Description(names[id]))
	}
	list.Select(0)

	title := widget.NewEntry()
	title.SetPlaceHolder("Note title")

	content := container.NewBorder(
		nil,
		container.NewVBox(description, widget.NewForm(widget.NewFormItem("Title", title))),
		nil,
		nil,
		list,
	)
	d := dialog.NewCustomConfirm("New note from template", "Create", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		name := names[selected]
		t := title.Text
		if t == "" {
			t = name
		}
		u.TabsArea.NewFromTemplate(name, t)
	}, u.Window)
	d.Resize(fyne.NewSize(400, 420))
	d.Show()
}
