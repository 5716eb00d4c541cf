package ui

import (
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stformane/hudnotes/internal/github"
)

const (
	githubOwner = "stformane"
	githubRepo  = "hudnotes"
	websiteURL  = "https://github.com/stformane/hudnotes"
)

// showAboutDialog shows version info and checks GitHub for updates in
// the background. Concurrent checks are suppressed.
func (u *BaseUI) showAboutDialog() {
	current := u.FyneApp.Metadata().Version
	version := widget.NewLabel("Version: " + current)
	update := widget.NewLabel("Checking for updates...")
	link := widget.NewHyperlink("Website", nil)
	if x, err := url.Parse(websiteURL); err == nil {
		link.URL = x
	}
	content := container.NewVBox(
		widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("A HUD style overlay for quick markdown notes."),
		version,
		update,
		link,
	)
	d := dialog.NewCustom("About", "Close", content, u.Window)
	d.Show()

	go func() {
		v, err, aborted := u.single.Do("update-check", func() (any, error) {
			return github.AvailableUpdate(githubOwner, githubRepo, current)
		})
		if aborted {
			return
		}
		fyne.Do(func() {
			if err != nil {
				slog.Warn("Update check failed", "error", err)
				update.SetText("Update check failed")
				return
			}
			info := v.(github.VersionInfo)
			if info.IsRemoteNewer {
				update.SetText(fmt.Sprintf("Update available: %s", info.Latest))
			} else {
				update.SetText("You have the latest version")
			}
		})
	}()
}
