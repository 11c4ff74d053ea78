package cli

import (
	"fmt"
	"io"
	"sync"

	"tasklist/internal/notify"
)

// TerminalNotifier is the notification sink for the command line: it prints
// notifications to a writer. Printed lines cannot be recalled, so Dismiss is
// a no-op; the limiter still tracks handles so its window stays bounded.
type TerminalNotifier struct {
	mu   sync.Mutex
	w    io.Writer
	next int
}

// NewTerminalNotifier creates a notifier writing to w.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

// Show prints the notification and returns a fresh handle.
func (n *TerminalNotifier) Show(message string, kind notify.Kind) notify.Handle {
	n.mu.Lock()
	defer n.mu.Unlock()

	var prefix string
	switch kind {
	case notify.KindSuccess:
		prefix = "✓"
	case notify.KindError:
		prefix = "✗"
	case notify.KindLoading:
		prefix = "…"
	default:
		prefix = "•"
	}
	fmt.Fprintf(n.w, "%s %s\n", prefix, message)

	n.next++
	return notify.Handle(fmt.Sprintf("term-%d", n.next))
}

// Dismiss is a no-op for the terminal sink.
func (n *TerminalNotifier) Dismiss(handle notify.Handle) {}
