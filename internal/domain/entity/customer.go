package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerPaymentStatus is the customer's billing standing with a vendor.
type CustomerPaymentStatus string

const (
	CustomerPaid    CustomerPaymentStatus = "paid"
	CustomerPending CustomerPaymentStatus = "pending"
	CustomerOverdue CustomerPaymentStatus = "overdue"
)

type ReminderInfo struct {
	Count    int        `json:"count"`
	LastSent *time.Time `json:"lastSent,omitempty"`
}

// Customer is a vendor's record of someone they deliver to.
// StudentID is set when the customer has a student account.
type Customer struct {
	ID              uuid.UUID             `json:"id"`
	VendorID        uuid.UUID             `json:"vendorId"`
	StudentID       *uuid.UUID            `json:"studentId,omitempty"`
	Name            string                `json:"name"`
	Phone           string                `json:"phone"`
	Email           string                `json:"email,omitempty"`
	Location        DeliveryLocation      `json:"location"`
	PlanType        string                `json:"planType"`
	MonthlyAmount   float64               `json:"monthlyAmount"`
	PaymentStatus   CustomerPaymentStatus `json:"paymentStatus"`
	LastPaymentDate *time.Time            `json:"lastPaymentDate,omitempty"`
	NextPaymentDate *time.Time            `json:"nextPaymentDate,omitempty"`
	OverdueDays     int                   `json:"overdueDays"`
	Reminder        ReminderInfo          `json:"reminder"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// RecordPayment marks the customer paid for the month starting now.
func (c *Customer) RecordPayment(now time.Time) {
	next := now.AddDate(0, 1, 0)
	c.PaymentStatus = CustomerPaid
	c.LastPaymentDate = &now
	c.NextPaymentDate = &next
	c.OverdueDays = 0
}

// MarkOverdue flags the customer as overdue by at least one day.
func (c *Customer) MarkOverdue(days int) {
	c.PaymentStatus = CustomerOverdue
	c.OverdueDays = max(days, 1)
}

// RecordReminder counts a payment reminder sent at now.
func (c *Customer) RecordReminder(now time.Time) {
	c.Reminder.Count++
	c.Reminder.LastSent = &now
}

// AmountDue is what the customer owes while unpaid.
func (c *Customer) AmountDue() float64 {
	if c.PaymentStatus == CustomerPaid {
		return 0
	}

	return c.MonthlyAmount
}
