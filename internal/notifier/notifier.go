package notifier

import "time"

// Notifier delivers at most one notification per evaluation cycle.
// timeout bounds the whole delivery attempt including retries.
type Notifier interface {
	Notify(title, message string, timeout time.Duration) error
}
