package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/alert"
	"github.com/ramp07413/tuition-admin/core/payment"
	"github.com/ramp07413/tuition-admin/core/student"
	logsvc "github.com/ramp07413/tuition-admin/services/logger"
	notifysvc "github.com/ramp07413/tuition-admin/services/notifier"
	"github.com/ramp07413/tuition-admin/upstream"
	"github.com/ramp07413/tuition-admin/web"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(std, conf)
		rollbarLogger.Enable(true)
		logger = rollbarLogger
	}

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// the flash buffer feeds page toasts; the console notifier mirrors them
	// to the log
	flash := notifysvc.NewFlash()
	notifier := notifysvc.NewMulti(flash, notifysvc.NewConsoleNotifier(std))

	client := upstream.NewClient(conf)
	alertsAPI := upstream.NewAlertsAPI(client)

	paymentSvc := payment.NewService(upstream.NewPaymentsAPI(client), alertsAPI, notifier, logger)
	alertSvc := alert.NewService(alertsAPI, notifier, logger)
	studentSvc := student.NewService(upstream.NewStudentsAPI(client))

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Admin UI Service

	server := web.NewServer(web.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		Payments:      paymentSvc,
		Alerts:        alertSvc,
		Students:      studentSvc,
		Notifier:      notifier,
		Notifications: flash,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
