// HUD Notes is a HUD style overlay for taking markdown notes on top of
// other applications. It is controlled through global hotkeys and
// optional mouse gestures.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stformane/hudnotes/internal/app/settings"
	"github.com/stformane/hudnotes/internal/app/templates"
	"github.com/stformane/hudnotes/internal/app/ui"
	"github.com/stformane/hudnotes/internal/appdirs"
	"github.com/stformane/hudnotes/internal/hotkeys"
	"github.com/stformane/hudnotes/internal/mousewatch"
)

const (
	appID = "io.github.stformane.hudnotes"

	// how long to wait for the global input hook to shut down
	hookStopTimeout = 3 * time.Second
)

// defined flags
var (
	logFileFlag     = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	showDirsFlag    = flag.Bool("show-dirs", false, "Show directories where user data is stored")
	versionFlag     = flag.Bool("v", false, "Show version and exit")
	versionLongFlag = flag.Bool("version", false, "Show version and exit")
)

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)

	fyneApp := app.NewWithID(appID)
	if *versionFlag || *versionLongFlag {
		fmt.Println(fyneApp.Metadata().Version)
		return
	}
	ad, err := appdirs.New()
	if err != nil {
		log.Fatal(err)
	}
	if *showDirsFlag {
		fmt.Printf("Data: %s\n", ad.Data)
		fmt.Printf("Logs: %s\n", ad.Log)
		fmt.Printf("Notes: %s\n", ad.Notes)
		fmt.Printf("Templates: %s\n", ad.Templates)
		return
	}
	if *logFileFlag {
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(ad.Log, "hudnotes.log"),
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}

	st := settings.New()
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}
	st.Bootstrap(home, ad.Notes, ad.Templates)
	st.Validate()

	reg := templates.New(st.TemplatesDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := reg.Watch(ctx); err != nil {
		slog.Warn("Template hot-reload disabled", "error", err)
	}

	u := ui.NewBaseUI(fyneApp, st, reg, ad)
	u.Init()

	hk := hotkeys.NewListener(u.Bridge.Enqueue, st.Hotkeys())
	hk.Register()
	mw := mousewatch.NewWatcher(u.Bridge.Enqueue, st.MouseHoverShow(), st.ClickOutsideHide())
	mw.Register()
	loop := hotkeys.NewLoop()
	loop.Start()
	u.OnQuit = func() {
		cancel()
		loop.Stop(hookStopTimeout)
	}

	u.ShowAndRun(ctx)

	cancel()
	loop.Stop(hookStopTimeout)
	if err := st.Save(); err != nil {
		slog.Error("Could not save settings", "error", err)
	}
}
