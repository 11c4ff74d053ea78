package notify

import "sync"

// DefaultMaxVisible is the cap on concurrently visible notifications.
const DefaultMaxVisible = 2

// Limiter wraps a Notifier and bounds the number of concurrently visible
// notifications. When a new notification would exceed the cap, the oldest
// active one is force-dismissed first, strictly in insertion order.
//
// Limiter state is owned by the instance; two limiters over the same sink
// track their own windows independently.
type Limiter struct {
	sink Notifier
	max  int

	mu     sync.Mutex
	active []Handle
}

// NewLimiter creates a limiter over sink that keeps at most max
// notifications visible. A non-positive max falls back to DefaultMaxVisible.
func NewLimiter(sink Notifier, max int) *Limiter {
	if max <= 0 {
		max = DefaultMaxVisible
	}
	return &Limiter{sink: sink, max: max}
}

// Show displays a notification through the sink, evicting the oldest active
// notification first when the cap is reached.
func (l *Limiter) Show(message string, kind Kind) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.active) >= l.max {
		oldest := l.active[0]
		l.active = l.active[1:]
		l.sink.Dismiss(oldest)
	}

	handle := l.sink.Show(message, kind)
	l.active = append(l.active, handle)
	return handle
}

// Dismiss removes the notification from the active window and dismisses it
// on the sink. Unknown handles are forwarded but not tracked.
func (l *Limiter) Dismiss(handle Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, active := range l.active {
		if active == handle {
			l.active = append(l.active[:i], l.active[i+1:]...)
			break
		}
	}
	l.sink.Dismiss(handle)
}

// ActiveCount returns the number of currently tracked notifications.
func (l *Limiter) ActiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.active)
}
