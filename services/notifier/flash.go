package notifysvc

import (
	"sync"

	"github.com/ramp07413/tuition-admin/core"
)

// Flash buffers notifications in memory so the web layer can render them as
// toasts on the next page load.
type Flash struct {
	mu      sync.Mutex
	pending []core.Notification
}

var (
	_ core.Notifier           = (*Flash)(nil)
	_ core.NotificationSource = (*Flash)(nil)
)

func NewFlash() *Flash {
	return &Flash{}
}

func (f *Flash) Success(msg string) { f.push(core.NotifySuccess, msg) }
func (f *Flash) Failure(msg string) { f.push(core.NotifyFailure, msg) }

func (f *Flash) push(kind core.NotificationKind, msg string) {
	f.mu.Lock()
	f.pending = append(f.pending, core.Notification{Kind: kind, Message: msg})
	f.mu.Unlock()
}

// Drain returns and clears the buffered notifications.
func (f *Flash) Drain() []core.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	pending := f.pending
	f.pending = nil
	return pending
}
