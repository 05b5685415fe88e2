package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/payment"
	"github.com/ramp07413/tuition-admin/core/student"
)

type paymentsUI struct {
	Deps
}

func RegisterPaymentsUI(e *echo.Echo, deps Deps) {
	ui := paymentsUI{deps}

	e.GET("/", ui.root)
	e.GET("/payments", ui.index)
	e.POST("/payments/add", ui.addPending)
	e.POST("/payments/deposit", ui.deposit)
	e.POST("/payments/:id/status", ui.toggleStatus)
	e.GET("/payments/:id/confirm-delete", ui.confirmDelete)
	e.POST("/payments/:id/delete", ui.destroy)
	e.GET("/payments/export.xlsx", ui.export)
}

type paymentsPage struct {
	Title           string
	Toasts          []core.Notification
	Search          string
	Status          string
	ShowAddForm     bool
	ShowDepositForm bool
	Students        []student.Student
	Months          []string
	Payments        []payment.Payment
	Summary         payment.Summary
	Year            int
	Loading         bool
}

func (ui paymentsUI) root(ctx echo.Context) error {
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

func (ui paymentsUI) index(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	search := core.CleanString(ctx.QueryParam("search"))
	status := core.CleanString(ctx.QueryParam("status"), true /* lower */)

	// the summary is filter-independent, so the full list is fetched and
	// search/status are applied in memory
	_ = ui.Payments.Fetch(rctx, payment.Query{})

	students, err := ui.Students.List(rctx)
	if err != nil {
		ui.Logger.Error("fetching students: "+err.Error(), err)
		students = nil
	}

	records := ui.Payments.Payments()
	page := paymentsPage{
		Title:           "Student Payments",
		Toasts:          ui.drainToasts(),
		Search:          search,
		Status:          status,
		ShowAddForm:     ctx.QueryParam("form") == "add",
		ShowDepositForm: ctx.QueryParam("form") == "deposit",
		Students:        students,
		Months:          payment.Months,
		Payments:        payment.Filter(records, search, status),
		Summary:         payment.Summarize(records),
		Year:            time.Now().Year(),
		Loading:         ui.Payments.Loading(),
	}
	return ctx.Render(http.StatusOK, "payments", page)
}

func (ui paymentsUI) addPending(ctx echo.Context) error {
	pp, err := parsePendingForm(ctx)
	if err == nil {
		_, err = ui.Payments.AddPending(ctx.Request().Context(), pp)
	}
	if err != nil {
		ui.flashError(err)
		ui.Logger.Error("adding pending payment: "+err.Error(), err)
	}
	// the form is reset and hidden regardless of the outcome
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

func (ui paymentsUI) deposit(ctx echo.Context) error {
	d, err := parseDepositForm(ctx)
	if err == nil {
		_, err = ui.Payments.Deposit(ctx.Request().Context(), d)
	}
	if err != nil {
		ui.flashError(err)
		ui.Logger.Error("depositing payment: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

func (ui paymentsUI) toggleStatus(ctx echo.Context) error {
	next := payment.StatusPaid
	if core.CleanString(ctx.FormValue("current"), true /* lower */) == payment.StatusPaid {
		next = payment.StatusPending
	}
	if _, err := ui.Payments.Update(ctx.Request().Context(), ctx.Param("id"), payment.UpdatePayment{Status: next}); err != nil {
		ui.flashError(err)
		ui.Logger.Error("updating payment: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

type confirmDeletePage struct {
	Title   string
	Toasts  []core.Notification
	Payment payment.Payment
}

func (ui paymentsUI) confirmDelete(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, p := range ui.Payments.Payments() {
		if p.ID == id {
			page := confirmDeletePage{
				Title:   "Delete Payment",
				Toasts:  ui.drainToasts(),
				Payment: p,
			}
			return ctx.Render(http.StatusOK, "confirm_delete", page)
		}
	}
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

func (ui paymentsUI) destroy(ctx echo.Context) error {
	id := ctx.Param("id")
	// deletion requires an explicit confirmation step
	if ctx.FormValue("confirm") != "yes" {
		return ctx.Redirect(http.StatusSeeOther, "/payments/"+id+"/confirm-delete")
	}
	if err := ui.Payments.Delete(ctx.Request().Context(), id); err != nil {
		ui.Logger.Error("deleting payment: "+err.Error(), err)
	}
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}

// Form parsing. Numeric fields are rejected with typed validation errors
// before any transport call is made.

func parsePendingForm(ctx echo.Context) (payment.PendingPayment, error) {
	var pp payment.PendingPayment
	amount, err := parseAmount(ctx.FormValue("amount"))
	if err != nil {
		return pp, err
	}
	year, err := parseYear(ctx.FormValue("year"))
	if err != nil {
		return pp, err
	}
	pp = payment.PendingPayment{
		StudentID: ctx.FormValue("studentId"),
		Amount:    amount,
		Month:     ctx.FormValue("month"),
		Year:      year,
	}
	return pp, nil
}

func parseDepositForm(ctx echo.Context) (payment.Deposit, error) {
	var d payment.Deposit
	amount, err := parseAmount(ctx.FormValue("amount"))
	if err != nil {
		return d, err
	}
	year, err := parseYear(ctx.FormValue("year"))
	if err != nil {
		return d, err
	}
	d = payment.Deposit{
		StudentID:   ctx.FormValue("studentId"),
		Amount:      amount,
		Month:       ctx.FormValue("month"),
		Year:        year,
		PaymentType: ctx.FormValue("paymentType"),
	}
	return d, nil
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(core.CleanString(s), 64)
	if err != nil {
		return 0, core.NewValidationError(errors.New("invalid amount"), core.FieldError{Field: "amount", Error: "must be a number"})
	}
	return amount, nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(core.CleanString(s))
	if err != nil {
		return 0, core.NewValidationError(errors.New("invalid year"), core.FieldError{Field: "year", Error: "must be a number"})
	}
	return year, nil
}
