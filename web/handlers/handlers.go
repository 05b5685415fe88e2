package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/alert"
	"github.com/ramp07413/tuition-admin/core/payment"
	"github.com/ramp07413/tuition-admin/core/student"
)

type Deps struct {
	Payments      *payment.Service
	Alerts        *alert.Service
	Students      *student.Service
	Notifier      core.Notifier
	Notifications core.NotificationSource
	Logger        core.Logger
}

func (d Deps) drainToasts() []core.Notification {
	if d.Notifications == nil {
		return nil
	}
	return d.Notifications.Drain()
}

// flashError surfaces validation failures as toasts; transport failures have
// already been surfaced by the store itself.
func (d Deps) flashError(err error) {
	if msg, ok := validationMessage(err); ok && d.Notifier != nil {
		d.Notifier.Failure(msg)
	}
}

func validationMessage(err error) (string, bool) {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, vErr := range origErr {
			return vErr.Field() + ": " + vErr.Translate(core.Translator), true
		}
		return "invalid input", true
	case *core.ValidationError:
		if len(origErr.Fields) > 0 {
			fErr := origErr.Fields[0]
			return fErr.Field + ": " + fErr.Error, true
		}
		return origErr.Error(), true
	}
	return "", false
}
