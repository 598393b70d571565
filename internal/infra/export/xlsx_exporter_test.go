package export

import (
	"bytes"
	"testing"
	"time"

	"tiffin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_WritePayments(t *testing.T) {
	exporter := NewXLSXExporter()
	assert.Equal(t, ".xlsx", exporter.FileExtension())
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")

	rows := []service.PaymentExportRow{
		{
			ReceiptNumber: "TT17000000000001",
			PaymentDate:   time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
			CustomerName:  "Asha Rao",
			CustomerPhone: "9876543210",
			Location:      "A3 Hostel, Room 204",
			Amount:        3000,
			Method:        "upi",
			TransactionID: "UPI-123",
			BillingMonth:  "January 2025",
		},
		{
			ReceiptNumber: "TT17000000000002",
			PaymentDate:   time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC),
			CustomerName:  "Ravi",
			Amount:        1250.5,
			Method:        "cash",
			BillingMonth:  "January 2025",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.WritePayments(&buf, rows))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, paymentsSheet, sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Receipt", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "2025-01-03", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "3000", sheet.Rows[1].Cells[5].String())
	assert.Equal(t, "UPI-123", sheet.Rows[1].Cells[7].String())
	assert.Equal(t, "N/A", sheet.Rows[2].Cells[7].String())
}

func TestXLSXExporter_EmptyExportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().WritePayments(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets[0].Rows, 1)
	assert.Len(t, file.Sheets[0].Rows[0].Cells, len(paymentHeaders))
}
