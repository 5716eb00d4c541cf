package ui

import (
	"fmt"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/chroma/v2/lexers"
)

// codeLanguages returns the language names offered for fenced code
// blocks, with plain text first.
func codeLanguages() []string {
	names := slices.Clone(lexers.Names(false))
	slices.Sort(names)
	return append([]string{"text"}, names...)
}

// FencedCodeBlock renders code as a fenced markdown block.
func FencedCodeBlock(language, code string) string {
	if language == "" {
		language = "text"
	}
	return fmt.Sprintf("```%s\n%s\n```\n", language, strings.TrimRight(code, "\n"))
}

// showCodeInsertDialog collects a language and a snippet and inserts
// them into the current document as a fenced code block.
func (u *BaseUI) showCodeInsertDialog() {
	ed := u.TabsArea.Current()
	if ed == nil {
		return
	}
	language := widget.NewSelect(codeLanguages(), nil)
	language.SetSelected("text")
	code := widget.NewMultiLineEntry()
	code.SetPlaceHolder("Paste or type code here")
	code.SetMinRowsVisible(10)

	content := container.NewBorder(
		widget.NewForm(widget.NewFormItem("Language", language)),
		nil,
		nil,
		nil,
		code,
	)
	d := dialog.NewCustomConfirm("Insert code block", "Insert", "Cancel", content, func(ok bool) {
		if !ok || code.Text == "" {
			return
		}
		ed.InsertAtCursor(FencedCodeBlock(language.Selected, code.Text))
	}, u.Window)
	d.Resize(fyne.NewSize(480, 400))
	d.Show()
}
