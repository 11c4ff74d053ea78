// Package notify defines the transient-notification contract and the limiter
// that bounds how many notifications are visible at once.
package notify

// Kind classifies a notification for display purposes.
type Kind int

const (
	KindDefault Kind = iota
	KindSuccess
	KindError
	KindLoading
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindLoading:
		return "loading"
	default:
		return "default"
	}
}

// Handle identifies a displayed notification so it can be dismissed later.
type Handle string

// Notifier is an external sink that can display a transient notification and
// dismiss one by handle.
type Notifier interface {
	Show(message string, kind Kind) Handle
	Dismiss(handle Handle)
}
