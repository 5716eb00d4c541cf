// Package hotkeys provides global keyboard shortcuts that work while
// the overlay window is hidden or unfocused. Bindings are configured
// as human readable strings like "Ctrl+Alt+H" and registered with the
// process-wide hook stream.
package hotkeys

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/stformane/hudnotes/internal/app"
	"github.com/stformane/hudnotes/internal/app/settings"
)

// modifier aliases accepted in binding strings, normalized to the
// names the hook library understands.
var modifiers = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"cmd":     "cmd",
	"win":     "cmd",
	"super":   "cmd",
	"meta":    "cmd",
}

// named keys allowed as the terminal token of a binding, besides
// single letters and digits.
var namedKeys = map[string]bool{
	"space": true, "enter": true, "esc": true, "escape": true,
	"tab": true, "delete": true, "backspace": true, "up": true,
	"down": true, "left": true, "right": true, "home": true,
	"end": true, "pageup": true, "pagedown": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true,
	"f6": true, "f7": true, "f8": true, "f9": true, "f10": true,
	"f11": true, "f12": true,
}

// ParseBinding converts a binding string like "Ctrl+Alt+H" into the
// key combo the hook library expects: the terminal key first, then the
// normalized modifiers. It requires at least one modifier and exactly
// one terminal key.
func ParseBinding(s string) ([]string, error) {
	parts := strings.Split(s, "+")
	var mods []string
	var key string
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("binding %q: empty token", s)
		}
		if m, ok := modifiers[p]; ok {
			mods = append(mods, m)
			continue
		}
		if key != "" {
			return nil, fmt.Errorf("binding %q: more than one key", s)
		}
		if !isKeyToken(p) {
			return nil, fmt.Errorf("binding %q: unknown key %q", s, p)
		}
		key = p
	}
	if key == "" {
		return nil, fmt.Errorf("binding %q: no key", s)
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("binding %q: at least one modifier required", s)
	}
	return append([]string{key}, mods...), nil
}

// Validate reports whether a binding string is usable. Exposed for the
// settings dialog so bad input is rejected before it is persisted.
func Validate(s string) error {
	_, err := ParseBinding(s)
	return err
}

func isKeyToken(p string) bool {
	if namedKeys[p] {
		return true
	}
	if len(p) != 1 {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// Listener registers the global hotkey bindings with the hook stream
// and translates triggers into commands for the UI bridge. Only the
// actions that must work while the window is hidden are global; all
// in-window shortcuts stay with the Fyne canvas.
type Listener struct {
	enqueue  func(app.Command)
	bindings map[string]string
}

// NewListener returns a listener for the given action to binding map.
func NewListener(enqueue func(app.Command), bindings map[string]string) *Listener {
	return &Listener{enqueue: enqueue, bindings: bindings}
}

// globalActions maps the actions that are registered globally to the
// command they enqueue.
var globalActions = map[string]app.CommandKind{
	settings.ActionToggleOverlay: app.CommandToggleOverlay,
	settings.ActionQuit:          app.CommandQuit,
}

// Register installs the hook callbacks. A binding that fails to parse
// is logged and skipped, so one bad entry never disables the rest.
// Callbacks must be registered before the hook loop starts.
func (l *Listener) Register() {
	for action, kind := range globalActions {
		binding := l.bindings[action]
		combo, err := ParseBinding(binding)
		if err != nil {
			slog.Error("Hotkey disabled", "action", action, "error", err)
			continue
		}
		k := kind
		hook.Register(hook.KeyDown, combo, func(hook.Event) {
			l.enqueue(app.Command{Kind: k})
		})
		slog.Info("Global hotkey registered", "action", action, "binding", binding)
	}
}

// Loop owns the process-wide hook event stream. There is exactly one
// per process; all global input consumers register their callbacks
// before Start and share the stream.
type Loop struct {
	started atomic.Bool
	done    chan struct{}
}

func NewLoop() *Loop {
	return &Loop{done: make(chan struct{})}
}

// Start begins delivering hook events on a background goroutine.
func (l *Loop) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(l.done)
		s := hook.Start()
		<-hook.Process(s)
		slog.Debug("Hook stream ended")
	}()
}

// Stop ends the hook stream and waits for the goroutine to exit, up to
// timeout. A timeout is tolerated: the listener thread may be blocked
// inside the OS hook, and the process is exiting anyway.
func (l *Loop) Stop(timeout time.Duration) {
	if !l.started.Load() {
		return
	}
	hook.End()
	select {
	case <-l.done:
	case <-time.After(timeout):
		slog.Warn("Hook stream did not stop in time", "timeout", timeout)
	}
}
