// Package mousewatch turns global mouse activity into overlay
// commands: hovering the top-left hot corner shows the window, and any
// click is forwarded so the UI can hide itself on clicks outside its
// bounds.
package mousewatch

import (
	"log/slog"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/stformane/hudnotes/internal/app"
)

// CornerSize is the edge length in physical pixels of the top-left hot
// corner that triggers hover show.
const CornerSize = 50

// rearmInterval throttles hover triggers so a pointer resting in the
// corner shows the window once, not fifty times a second.
const rearmInterval = time.Second

// InCorner reports whether a physical screen coordinate lies inside
// the top-left hot corner of the given size.
func InCorner(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// ToLogical converts physical hook coordinates to Fyne's logical
// pixels for a display scale factor. A non-positive scale is treated
// as 1.
func ToLogical(x, y int, scale float32) (float32, float32) {
	if scale <= 0 {
		scale = 1
	}
	return float32(x) / scale, float32(y) / scale
}

// Debouncer rate-limits an action to once per interval. The zero value
// is not usable; construct with NewDebouncer.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time // injectable clock
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval, now: time.Now}
}

// Try reports whether the action may fire now and, when it may,
// records the firing time.
func (d *Debouncer) Try() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}

// Watcher registers the global mouse callbacks. Hover show and click
// forwarding are independently optional, mirroring their settings.
type Watcher struct {
	enqueue   func(app.Command)
	hoverShow bool
	clicks    bool
	deb       *Debouncer
}

// NewWatcher returns a watcher that enqueues commands for the bridge.
func NewWatcher(enqueue func(app.Command), hoverShow, clickForward bool) *Watcher {
	return &Watcher{
		enqueue:   enqueue,
		hoverShow: hoverShow,
		clicks:    clickForward,
		deb:       NewDebouncer(rearmInterval),
	}
}

// Register installs the hook callbacks. Callbacks must be registered
// before the hook loop starts.
func (w *Watcher) Register() {
	if w.hoverShow {
		hook.Register(hook.MouseMove, nil, func(e hook.Event) {
			if InCorner(int(e.X), int(e.Y), CornerSize) && w.deb.Try() {
				w.enqueue(app.Command{Kind: app.CommandShowOverlay})
			}
		})
		slog.Info("Mouse hover show enabled", "corner", CornerSize)
	}
	if w.clicks {
		hook.Register(hook.MouseDown, nil, func(e hook.Event) {
			w.enqueue(app.Command{
				Kind: app.CommandCheckClickOutside,
				X:    int(e.X),
				Y:    int(e.Y),
			})
		})
		slog.Info("Click outside hide enabled")
	}
}
