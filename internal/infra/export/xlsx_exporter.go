// Package export renders vendor reports as downloadable spreadsheets.
package export

import (
	"io"

	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	"github.com/tealeg/xlsx"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	paymentsSheet   = "Payments"
	transactionNA   = "N/A"
)

var paymentHeaders = []string{
	"Receipt", "Date", "Customer", "Phone", "Location",
	"Amount", "Method", "Transaction ID", "Billing Month",
}

type xlsxExporter struct{}

// NewXLSXExporter returns a PaymentExporter producing .xlsx workbooks.
func NewXLSXExporter() service.PaymentExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return xlsxContentType
}

func (e *xlsxExporter) FileExtension() string {
	return ".xlsx"
}

// WritePayments writes one header row followed by a row per payment.
func (e *xlsxExporter) WritePayments(w io.Writer, rows []service.PaymentExportRow) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(paymentsSheet)
	if err != nil {
		return errors.Wrap(err, "add sheet")
	}

	header := sheet.AddRow()
	for _, title := range paymentHeaders {
		header.AddCell().SetString(title)
	}

	for _, p := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ReceiptNumber)
		row.AddCell().SetString(p.PaymentDate.Format(constants.DateLayout))
		row.AddCell().SetString(p.CustomerName)
		row.AddCell().SetString(p.CustomerPhone)
		row.AddCell().SetString(p.Location)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.Method)
		row.AddCell().SetString(orNA(p.TransactionID))
		row.AddCell().SetString(p.BillingMonth)
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return transactionNA
	}

	return s
}
