package notifysvc

import (
	"log"

	"github.com/ramp07413/tuition-admin/core"
)

type consoleNotifier struct {
	std *log.Logger
}

var _ core.Notifier = (*consoleNotifier)(nil)

// NewConsoleNotifier writes notifications to a std logger; the dev-mode
// stand-in for the UI toast channel.
func NewConsoleNotifier(std *log.Logger) core.Notifier {
	return &consoleNotifier{std: std}
}

func (n consoleNotifier) Success(msg string) {
	n.std.Println("[" + string(core.NotifySuccess) + "] " + msg)
}

func (n consoleNotifier) Failure(msg string) {
	n.std.Println("[" + string(core.NotifyFailure) + "] " + msg)
}
