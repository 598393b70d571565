package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentUPI          PaymentMethod = "upi"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// BillingPeriodLayout formats months as "January 2025".
const BillingPeriodLayout = "January 2006"

type BillingPeriod struct {
	Month     string    `json:"month"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// BillingPeriodFrom covers one month from start.
func BillingPeriodFrom(start time.Time, month string) BillingPeriod {
	if month == "" {
		month = start.Format(BillingPeriodLayout)
	}

	return BillingPeriod{Month: month, StartDate: start, EndDate: start.AddDate(0, 1, 0)}
}

// Payment is money a vendor received from a customer.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	VendorID      uuid.UUID     `json:"vendorId"`
	CustomerID    uuid.UUID     `json:"customerId"`
	Amount        float64       `json:"amount"`
	Method        PaymentMethod `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	PaymentDate   time.Time     `json:"paymentDate"`
	TransactionID string        `json:"transactionId,omitempty"`
	BillingPeriod BillingPeriod `json:"billingPeriod"`
	ReceiptNumber string        `json:"receiptNumber"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ReceiptNumber builds "TT<unix millis><sequence>" where sequence is the vendor's payment count plus one.
func ReceiptNumber(now time.Time, existing int64) string {
	return fmt.Sprintf("TT%d%d", now.UnixMilli(), existing+1)
}

// Receipt is the printable view of a payment.
type Receipt struct {
	ReceiptNumber    string        `json:"receiptNumber"`
	Date             time.Time     `json:"date"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	CustomerLocation string        `json:"customerLocation"`
	VendorName       string        `json:"vendorName"`
	Amount           float64       `json:"amount"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	TransactionID    string        `json:"transactionId"`
	BillingPeriod    BillingPeriod `json:"billingPeriod"`
}

// NewReceipt assembles the receipt for a payment.
func NewReceipt(p *Payment, c *Customer, v *Vendor) *Receipt {
	txID := p.TransactionID
	if txID == "" {
		txID = "N/A"
	}

	return &Receipt{
		ReceiptNumber:    p.ReceiptNumber,
		Date:             p.PaymentDate,
		CustomerName:     c.Name,
		CustomerPhone:    c.Phone,
		CustomerLocation: c.Location.String(),
		VendorName:       v.DisplayName(),
		Amount:           p.Amount,
		PaymentMethod:    p.Method,
		TransactionID:    txID,
		BillingPeriod:    p.BillingPeriod,
	}
}
