package core

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyFailure NotificationKind = "failure"
)

// Notification is a transient user-facing message ("toast").
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier is the user-visible notification channel. Every store action
// surfaces its outcome through it; rendering is up to the implementation
// (console in dev, page flash in the web UI).
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// NotificationSource hands out notifications accumulated since the last
// call, for implementations that buffer them (e.g. page flashes).
type NotificationSource interface {
	Drain() []Notification
}
