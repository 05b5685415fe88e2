package notifysvc

import "github.com/ramp07413/tuition-admin/core"

type multi []core.Notifier

var _ core.Notifier = (multi)(nil)

// NewMulti fans each notification out to every given notifier.
func NewMulti(notifiers ...core.Notifier) core.Notifier {
	return multi(notifiers)
}

func (m multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m multi) Failure(msg string) {
	for _, n := range m {
		n.Failure(msg)
	}
}
