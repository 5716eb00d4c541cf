// Package singleinstance suppresses duplicate in-flight work, like a
// settings window being opened twice or overlapping update checks.
package singleinstance

import "sync"

// Group is a namespace of keyed work units. While a unit is running,
// further calls with the same key are aborted instead of queued.
type Group struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewGroup() *Group {
	return &Group{running: make(map[string]struct{})}
}

// Do runs fn unless another call with the same key is still in flight,
// in which case the duplicate is aborted. The aborted result tells the
// caller which case applied; v and err are fn's results and are only
// meaningful when aborted is false.
func (g *Group) Do(key string, fn func() (any, error)) (v any, err error, aborted bool) {
	g.mu.Lock()
	if _, found := g.running[key]; found {
		g.mu.Unlock()
		return nil, nil, true
	}
	g.running[key] = struct{}{}
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		delete(g.running, key)
		g.mu.Unlock()
	}()
	v, err = fn()
	return v, err, false
}
