// Package bridge decouples background input listeners from the single
// threaded UI. Listeners enqueue commands from any goroutine; a poller
// drains the queue on the UI thread at a fixed interval.
package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/stformane/hudnotes/internal/app"
	"github.com/stformane/hudnotes/internal/syncqueue"
)

const (
	pollInterval = 50 * time.Millisecond
	maxQueued    = 256
)

// Handler processes one command on the UI thread.
type Handler func(app.Command)

// Bridge is the thread-safe command channel between background
// listeners and the UI thread.
type Bridge struct {
	q     *syncqueue.SyncQueue[app.Command]
	alive func() bool // liveness probe, checked before every tick

	// runs f on the UI thread; swapped out in tests
	do func(f func())

	mu       sync.RWMutex
	handlers map[app.CommandKind]Handler
}

// New returns a new bridge. The alive probe reports whether the owning
// window still exists; the poller self-terminates once it returns false.
func New(alive func() bool) *Bridge {
	return &Bridge{
		q:        syncqueue.New[app.Command](),
		alive:    alive,
		do:       fyne.Do,
		handlers: make(map[app.CommandKind]Handler),
	}
}

// SetHandler registers the handler for a command kind, replacing any
// previous one.
func (b *Bridge) SetHandler(kind app.CommandKind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = h
}

// Enqueue adds a command for the UI thread. It never blocks and never
// fails observably: when the queue is saturated the command is dropped,
// since these are best-effort visibility signals.
func (b *Bridge) Enqueue(c app.Command) {
	if b.q.Size() >= maxQueued {
		slog.Debug("Command queue saturated, dropping", "command", c.Kind)
		return
	}
	b.q.Put(c)
}

// Start runs the poll loop until ctx is canceled or the liveness probe
// fails. Each tick drains all currently queued commands on the UI
// thread and dispatches them in FIFO order.
func (b *Bridge) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if b.alive != nil && !b.alive() {
				slog.Debug("Bridge poller stopping: window gone")
				return
			}
			cc := b.q.DrainNoWait()
			if len(cc) == 0 {
				continue
			}
			b.do(func() {
				for _, c := range cc {
					b.dispatch(c)
				}
			})
		}
	}()
}

// dispatch runs the handler for one command, isolating failures so one
// bad message cannot lose the rest of the batch.
func (b *Bridge) dispatch(c app.Command) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command handler panicked", "command", c.Kind, "panic", r)
		}
	}()
	b.mu.RLock()
	h := b.handlers[c.Kind]
	b.mu.RUnlock()
	if h == nil {
		slog.Warn("No handler for command", "command", c.Kind)
		return
	}
	h(c)
}
