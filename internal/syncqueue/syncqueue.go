// Package syncqueue provides an unbounded FIFO queue for concurrent use.
package syncqueue

import (
	"context"
	"errors"
	"sync"
)

var ErrEmpty = errors.New("empty queue")

// SyncQueue is an unlimited FIFO queue safe for concurrent producers
// and consumers.
type SyncQueue[T any] struct {
	cond *sync.Cond

	mu sync.RWMutex
	s  []T // items are appended at the end and taken from the front
}

// New returns a new [SyncQueue].
func New[T any]() *SyncQueue[T] {
	q := &SyncQueue[T]{s: make([]T, 0)}
	q.cond = sync.NewCond(&sync.Mutex{})
	return q
}

// Put adds an item to the queue.
func (q *SyncQueue[T]) Put(v T) {
	q.mu.Lock()
	q.s = append(q.s, v)
	q.mu.Unlock()
	q.cond.Signal()
}

// GetNoWait returns the item at the front of the queue or ErrEmpty.
func (q *SyncQueue[T]) GetNoWait() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var v T
	if len(q.s) == 0 {
		return v, ErrEmpty
	}
	v = q.s[0]
	q.s = q.s[1:]
	return v, nil
}

// DrainNoWait removes and returns all currently queued items in FIFO
// order. It returns nil when the queue is empty.
func (q *SyncQueue[T]) DrainNoWait() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.s) == 0 {
		return nil
	}
	out := q.s
	q.s = make([]T, 0)
	return out
}

// Get returns an item from the queue or waits until one is available.
// The wait is aborted when the provided context is canceled.
func (q *SyncQueue[T]) Get(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		q.cond.L.Lock()
		defer q.cond.L.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.cond.L.Lock()
	defer q.cond.L.Unlock()
	for {
		v, err := q.GetNoWait()
		if err == nil {
			return v, nil
		}
		q.cond.Wait()
		if ctx.Err() != nil {
			var x T
			return x, ctx.Err()
		}
	}
}

// IsEmpty reports whether the queue is empty.
func (q *SyncQueue[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Size returns the number of queued items.
func (q *SyncQueue[T]) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.s)
}
