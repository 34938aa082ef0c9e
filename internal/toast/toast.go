// Package toast defines the notification sink the core reports outcomes
// through. Notifications are fire-and-forget: there is no acknowledgment
// and a slow or broken sink must never block an operation.
package toast

import (
	"fmt"
	"io"
)

// Severity classifies a notification for display purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives a human-readable message for every success or failure
// outcome of a portal operation.
type Notifier interface {
	Notify(message string, severity Severity)
}

// WriterNotifier renders notifications as single prefixed lines, the CLI
// stand-in for the site's toast popups.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(message string, severity Severity) {
	prefix := "[INFO]"
	switch severity {
	case SeveritySuccess:
		prefix = "[OK]"
	case SeverityError:
		prefix = "[ERR]"
	}
	fmt.Fprintf(n.w, "%s %s\n", prefix, message)
}

// Nop discards all notifications. Useful in tests.
type Nop struct{}

func (Nop) Notify(string, Severity) {}
