// Package web serves the server-rendered admin screens. Handlers read
// exclusively from the session stores and write only through store actions.
package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/alert"
	"github.com/ramp07413/tuition-admin/core/payment"
	"github.com/ramp07413/tuition-admin/core/student"
	"github.com/ramp07413/tuition-admin/web/handlers"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		Payments       *payment.Service
		Alerts         *alert.Service
		Students       *student.Service
		Notifier       core.Notifier
		Notifications  core.NotificationSource
		DisableReqLogs bool
	}

	Server struct {
		deps       ServerDeps
		app        *echo.Echo
		errCh      chan error
		shutdownCh chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:       deps,
		app:        echo.New(),
		errCh:      make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	debug := s.deps.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in dev|test mode
	if !debug {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = debug
	s.app.HideBanner = true
	s.app.Renderer = newRenderer()

	deps := handlers.Deps{
		Payments:      s.deps.Payments,
		Alerts:        s.deps.Alerts,
		Students:      s.deps.Students,
		Notifier:      s.deps.Notifier,
		Notifications: s.deps.Notifications,
		Logger:        s.deps.Logger,
	}
	handlers.RegisterPaymentsUI(s.app, deps)
	handlers.RegisterAlertsUI(s.app, deps)
}

// signalShutdown sends SIGTERM on the shutdown channel whenever a shutdown
// error is caught, so main can stop the server gracefully.
func (s *Server) signalShutdown() {
	s.shutdownCh <- syscall.SIGTERM
}

func (s *Server) Start() {
	s.errCh <- s.app.Start(s.deps.Conf.Server.Addr)
}

func (s *Server) Errors() <-chan error {
	return s.errCh
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
