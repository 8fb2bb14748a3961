package tui

import (
	"sync"
	"time"

	"github.com/aretw0/flexnote/pkg/core"
)

// DefaultToastDuration is how long a notification stays visible.
const DefaultToastDuration = 3 * time.Second

type toast struct {
	core.Notification
	isError bool
	expires time.Time
}

// Toasts queues notifications for display. It implements core.Notifier so
// the session can push confirmations directly; expiry is driven by the
// model's tick.
type Toasts struct {
	mu       sync.Mutex
	items    []toast
	duration time.Duration
	now      func() time.Time
}

// NewToasts creates a queue whose entries live for d (DefaultToastDuration
// when d <= 0).
func NewToasts(d time.Duration) *Toasts {
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Toasts{duration: d, now: time.Now}
}

// Notify implements core.Notifier.
func (t *Toasts) Notify(n core.Notification) {
	t.push(toast{Notification: n})
}

// Error queues an error message.
func (t *Toasts) Error(message string) {
	t.push(toast{Notification: core.Notification{Message: message}, isError: true})
}

func (t *Toasts) push(item toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	item.expires = t.now().Add(t.duration)
	t.items = append(t.items, item)
}

// Expire drops expired entries and reports whether any were removed.
func (t *Toasts) Expire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.expires) {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(t.items)
	t.items = kept
	return removed
}

// latest returns the newest visible entry.
func (t *Toasts) latest() (toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.items) == 0 {
		return toast{}, false
	}
	return t.items[len(t.items)-1], true
}

// Len returns the number of visible entries.
func (t *Toasts) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

var _ core.Notifier = (*Toasts)(nil)
