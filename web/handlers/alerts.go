package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/alert"
)

type alertsUI struct {
	Deps
}

func RegisterAlertsUI(e *echo.Echo, deps Deps) {
	ui := alertsUI{deps}

	e.GET("/alerts", ui.index)
	e.POST("/alerts/read-all", ui.markAllRead)
	e.POST("/alerts/:id/read", ui.markRead)
	e.POST("/alerts/:id/delete", ui.destroy)
}

type alertsPage struct {
	Title  string
	Toasts []core.Notification
	Alerts []alert.Alert
	Unread int
}

func (ui alertsUI) index(ctx echo.Context) error {
	// fetch failures are silent; the page renders whatever is cached
	_ = ui.Alerts.Fetch(ctx.Request().Context())

	page := alertsPage{
		Title:  "Alerts",
		Toasts: ui.drainToasts(),
		Alerts: ui.Alerts.Alerts(),
		Unread: ui.Alerts.Unread(),
	}
	return ctx.Render(http.StatusOK, "alerts", page)
}

func (ui alertsUI) markRead(ctx echo.Context) error {
	if err := ui.Alerts.MarkRead(ctx.Request().Context(), ctx.Param("id")); err != nil {
		ui.Logger.Error("marking alert read: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/alerts")
}

func (ui alertsUI) markAllRead(ctx echo.Context) error {
	if err := ui.Alerts.MarkAllRead(ctx.Request().Context()); err != nil {
		ui.Logger.Error("marking all alerts read: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/alerts")
}

func (ui alertsUI) destroy(ctx echo.Context) error {
	if err := ui.Alerts.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		ui.Logger.Error("deleting alert: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/alerts")
}
