package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// StatusBar shows the word count, the last save time and short-lived
// status messages.
type StatusBar struct {
	u       *BaseUI
	content fyne.CanvasObject

	message   *widget.Label
	words     *widget.Label
	saved     *widget.Label
	lastSaved time.Time
	flash     *time.Timer
}

func (u *BaseUI) newStatusBar() *StatusBar {
	b := &StatusBar{
		u:       u,
		message: widget.NewLabel("Ready"),
		words:   widget.NewLabel("0 words"),
		saved:   widget.NewLabel(""),
	}
	b.content = container.NewHBox(b.message, widget.NewSeparator(), b.words, widget.NewSeparator(), b.saved)
	return b
}

// SetWordCount updates the word counter.
func (b *StatusBar) SetWordCount(n int) {
	b.words.SetText(fmt.Sprintf("%d words", n))
}

// SetSaved records a successful save and shows how long ago it was.
func (b *StatusBar) SetSaved(t time.Time) {
	b.lastSaved = t
	b.saved.SetText("saved " + humanize.Time(t))
}

// Flash shows a formatted message and reverts to Ready after a moment.
func (b *StatusBar) Flash(format string, args ...any) {
	b.message.SetText(fmt.Sprintf(format, args...))
	if b.flash != nil {
		b.flash.Stop()
	}
	b.flash = time.AfterFunc(3*time.Second, func() {
		fyne.Do(func() {
			b.message.SetText("Ready")
		})
	})
}
