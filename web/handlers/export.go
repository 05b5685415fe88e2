package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/payment"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// export downloads the current filtered view as an xlsx workbook.
func (ui paymentsUI) export(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	search := core.CleanString(ctx.QueryParam("search"))
	status := core.CleanString(ctx.QueryParam("status"), true /* lower */)

	if err := ui.Payments.Fetch(rctx, payment.Query{}); err != nil {
		return err
	}
	records := payment.Filter(ui.Payments.Payments(), search, status)

	f, err := buildPaymentsWorkbook(records)
	if err != nil {
		return err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("payments_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func buildPaymentsWorkbook(records []payment.Payment) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Payments"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Student", "Email", "Amount", "Month", "Year", "Status", "Payment Type"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, p := range records {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Student.Label())
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Student.Contact())
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Amount)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Month)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Year)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Status)
		paymentType := p.PaymentType
		if paymentType == "" {
			paymentType = "-"
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), paymentType)
	}
	return f, nil
}
