// Package notify holds the ephemeral user-facing notification queue.
// Every pushed entry schedules its own removal after a fixed delay;
// dismissing an entry first cancels that removal.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// DefaultTTL is the auto-expiry delay of a pushed notification.
const DefaultTTL = 5 * time.Second

// Queue is an ordered collection of notifications with bounded lifetime.
// Rendered strictly in insertion order; no priority reordering.
type Queue struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	ttl      time.Duration
	entries  []domain.Notification
	timers   map[string]clockwork.Timer
	onExpire func(domain.Notification)
	closed   bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithTTL overrides the auto-expiry delay.
func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) { q.ttl = ttl }
}

// WithExpireHook registers a callback invoked when an entry expires
// naturally (not on explicit dismissal).
func WithExpireHook(fn func(domain.Notification)) Option {
	return func(q *Queue) { q.onExpire = fn }
}

// NewQueue creates an empty queue on the given clock.
func NewQueue(clk clockwork.Clock, opts ...Option) *Queue {
	q := &Queue{
		clock:  clk,
		ttl:    DefaultTTL,
		timers: make(map[string]clockwork.Timer),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and schedules its auto-expiry. The returned
// id combines the creation time with a random suffix, so ids stay unique
// even within the same millisecond.
func (q *Queue) Push(title, message, category string) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ""
	}

	id := fmt.Sprintf("notification-%d-%s", q.clock.Now().UnixMilli(), uuid.NewString())
	q.entries = append(q.entries, domain.Notification{
		ID:       id,
		Title:    title,
		Message:  message,
		Category: category,
	})
	q.timers[id] = q.clock.AfterFunc(q.ttl, func() { q.expire(id) })
	return id
}

// Dismiss removes the matching entry and cancels its scheduled expiry,
// reporting whether an entry was actually removed. Dismissing an absent id
// is a no-op, so a late auto-removal after an explicit dismissal cannot
// touch another entry.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	_, removed := q.remove(id)
	return removed
}

// Active returns the current notifications in insertion order.
func (q *Queue) Active() []domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]domain.Notification(nil), q.entries...)
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Close cancels every outstanding expiry timer and rejects further pushes.
// Safe to call once the owning view is torn down; no timer fires afterward.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.closed = true
}

func (q *Queue) expire(id string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	delete(q.timers, id)
	expired, ok := q.remove(id)
	hook := q.onExpire
	q.mu.Unlock()

	if ok && hook != nil {
		hook(expired)
	}
}

// remove deletes the entry with the given id. Idempotent: removing a
// non-existent id is a no-op. Caller holds q.mu.
func (q *Queue) remove(id string) (domain.Notification, bool) {
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return n, true
		}
	}
	return domain.Notification{}, false
}
