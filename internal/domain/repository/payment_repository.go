package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicateReceipt is returned when a receipt number is reused.
	ErrDuplicateReceipt = errors.New("receipt number already exists")
)

// PaymentFilter narrows a vendor's payment history.
type PaymentFilter struct {
	VendorID uuid.UUID
	Status   entity.PaymentStatus
	Method   entity.PaymentMethod
	From     time.Time
	To       time.Time
	Page     entity.PageQuery
	Unpaged  bool
}

// PaymentTotals are completed-payment figures for a period.
type PaymentTotals struct {
	PaidCustomers int64
	Revenue       float64
}

// PaymentRepository stores received payments.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// ListPayments pages matching payments by payment date, newest first.
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, int64, error)

	CountPaymentsByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// SumCompleted totals completed payments with payment date in [from, to).
	SumCompleted(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*PaymentTotals, error)

	// FindPaidCustomerIDs pages the distinct customers with completed payments.
	FindPaidCustomerIDs(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) ([]uuid.UUID, int64, error)
}
