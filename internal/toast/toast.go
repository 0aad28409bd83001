// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toast implements the transient notification queue.
//
// Toasts are non-blocking: they stack in a corner of the screen and
// self-expire, so a failed sign-in never traps the user in a modal. Each
// entry owns one expiry timer; explicit dismissal and timer expiry race to
// remove the entry and removal is idempotent, so whichever fires first wins
// and the loser is a no-op.
package toast

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Kind classifies a toast for rendering.
type Kind int

const (
	// KindInfo is an informational toast (the default).
	KindInfo Kind = iota
	// KindSuccess confirms a completed action.
	KindSuccess
	// KindError reports a failure.
	KindError
)

// DefaultDuration is how long a toast stays on screen before self-expiring.
const DefaultDuration = 3 * time.Second

// Toast is one entry in the queue. Fields are immutable once enqueued; only
// removal mutates the queue.
type Toast struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	CreatedAt   time.Time
}

// Queue is the ordered toast queue. Entries append in insertion order and
// are removed by identity, never by position. Safe for use from Bubble Tea
// commands, which run off the update goroutine.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
	ttl    time.Duration
	closed bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithTTL overrides the expiry duration. Used by tests; production code
// keeps DefaultDuration.
func WithTTL(d time.Duration) Option {
	return func(q *Queue) { q.ttl = d }
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers: make(map[string]*time.Timer),
		ttl:    DefaultDuration,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add enqueues a toast and schedules its expiry. It returns the assigned id.
func (q *Queue) Add(kind Kind, title, description string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ""
	}

	id := uuid.NewString()
	q.toasts = append(q.toasts, Toast{
		ID:          id,
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
	q.timers[id] = time.AfterFunc(q.ttl, func() { q.Remove(id) })
	return id
}

// Info enqueues an informational toast.
func (q *Queue) Info(title, description string) string {
	return q.Add(KindInfo, title, description)
}

// Success enqueues a success toast.
func (q *Queue) Success(title, description string) string {
	return q.Add(KindSuccess, title, description)
}

// Error enqueues an error toast.
func (q *Queue) Error(title, description string) string {
	return q.Add(KindError, title, description)
}

// Remove deletes the toast with the given id and cancels its pending expiry
// timer. Removing an unknown id (already expired, already dismissed, never
// existed) is a no-op.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns a snapshot of the queue in insertion order.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Len returns the number of live toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Shutdown stops every pending timer and empties the queue. The queue
// accepts no further entries afterwards.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
	q.closed = true
}

// TickMsg is sent periodically while toasts are visible so the view redraws
// as entries expire.
type TickMsg struct {
	Time time.Time
}

// TickCmd returns a command that ticks four times a second. The UI keeps it
// running only while the queue is non-empty.
func TickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
