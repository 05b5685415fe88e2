package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ramp07413/tuition-admin/core"
)

type errorPage struct {
	Title   string
	Toasts  []core.Notification
	Code    int
	Message string
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprintf("%v", origErr.Message)
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			parts := make([]string, 0, len(origErr))
			for _, vErr := range origErr {
				parts = append(parts, vErr.Field()+": "+vErr.Translate(core.Translator))
			}
			message = strings.Join(parts, "; ")
		case *core.ValidationError:
			code = http.StatusBadRequest
			if len(origErr.Fields) > 0 {
				parts := make([]string, 0, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					parts = append(parts, fErr.Field+": "+fErr.Error)
				}
				message = strings.Join(parts, "; ")
			} else {
				message = origErr.Error()
			}
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(code)
			logger.Error(message, errors.Wrap(err, message))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			page := errorPage{Title: "Error", Code: code, Message: message}
			if rErr := ctx.Render(code, "error", page); rErr != nil {
				ctx.Echo().Logger.Error(rErr)
			}
		}
	}
}
