package service

import (
	"io"
	"time"
)

// PaymentExportRow is one line of a payment export.
type PaymentExportRow struct {
	ReceiptNumber string
	PaymentDate   time.Time
	CustomerName  string
	CustomerPhone string
	Location      string
	Amount        float64
	Method        string
	TransactionID string
	BillingMonth  string
}

// PaymentExporter writes payment rows as a spreadsheet.
type PaymentExporter interface {
	// ContentType is the MIME type of the produced document.
	ContentType() string

	// FileExtension includes the leading dot.
	FileExtension() string

	WritePayments(w io.Writer, rows []PaymentExportRow) error
}
