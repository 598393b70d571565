package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Customers ---

type CustomerListQuery struct {
	Search   string
	Location string
	Status   string
	Page     entity.PageQuery
}

type CustomerList struct {
	Customers  []*entity.Customer `json:"customers"`
	Pagination entity.Pagination  `json:"pagination"`
}

type CreateCustomerInput struct {
	Name          string
	Phone         string
	Email         string
	Location      entity.DeliveryLocation
	PlanType      string
	MonthlyAmount float64
	StudentID     *uuid.UUID
}

type PaidCustomerStats struct {
	TotalPaidCustomers int64 `json:"totalPaidCustomers"`
}

type PaidCustomerList struct {
	Customers  []*entity.Customer `json:"customers"`
	Pagination entity.Pagination  `json:"pagination"`
	Stats      PaidCustomerStats  `json:"stats"`
}

type UnpaidCustomerStats struct {
	TotalUnpaid int64   `json:"totalUnpaid"`
	Overdue     int64   `json:"overdue"`
	Pending     int64   `json:"pending"`
	TotalDue    float64 `json:"totalDue"`
}

type UnpaidCustomerList struct {
	Customers  []*entity.Customer  `json:"customers"`
	Pagination entity.Pagination   `json:"pagination"`
	Stats      UnpaidCustomerStats `json:"stats"`
}

// NewUnpaidCustomerStats copies the repository aggregate into the response shape.
func NewUnpaidCustomerStats(s *repository.UnpaidSummary) UnpaidCustomerStats {
	if s == nil {
		return UnpaidCustomerStats{}
	}

	return UnpaidCustomerStats{
		TotalUnpaid: s.TotalUnpaid,
		Overdue:     s.Overdue,
		Pending:     s.Pending,
		TotalDue:    s.TotalDue,
	}
}

// CustomerUsecase manages a vendor's customer ledger.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, vendorID uuid.UUID, query CustomerListQuery) (*CustomerList, error)
	CreateCustomer(ctx context.Context, vendorID uuid.UUID, input CreateCustomerInput) (*entity.Customer, error)
	ListPaidCustomers(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) (*PaidCustomerList, error)
	ListUnpaidCustomers(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) (*UnpaidCustomerList, error)
	SendReminder(ctx context.Context, vendorID, customerID uuid.UUID) (*entity.Customer, error)
}

// --- Payments ---

// PaymentListQuery filters completed payments. Month uses the "January 2006" layout.
type PaymentListQuery struct {
	Month  string
	Method string
	Page   entity.PageQuery
}

// PaymentView is a payment joined with its customer.
type PaymentView struct {
	*entity.Payment
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerLocation string `json:"customerLocation"`
}

type PaymentList struct {
	Payments   []*PaymentView    `json:"payments"`
	Pagination entity.Pagination `json:"pagination"`
}

type PaymentStats struct {
	PaidCustomers   int64   `json:"paidCustomers"`
	PendingPayments int64   `json:"pendingPayments"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

type RecordPaymentInput struct {
	CustomerID    uuid.UUID
	Amount        float64
	Method        entity.PaymentMethod
	BillingPeriod string
	TransactionID string
}

// PaymentExport is a rendered spreadsheet ready for download.
type PaymentExport struct {
	FileName    string
	ContentType string
	Data        []byte
}

// PaymentUsecase records and reports a vendor's income.
type PaymentUsecase interface {
	GetStats(ctx context.Context, vendorID uuid.UUID) (*PaymentStats, error)
	ListPayments(ctx context.Context, vendorID uuid.UUID, query PaymentListQuery) (*PaymentList, error)
	GetReceipt(ctx context.Context, vendorID, paymentID uuid.UUID) (*entity.Receipt, error)

	// RecordPayment stores the payment and its side effects in one transaction.
	RecordPayment(ctx context.Context, vendorID uuid.UUID, input RecordPaymentInput) (*entity.Payment, error)

	// MarkOverdue flags the customer behind a payment as overdue.
	MarkOverdue(ctx context.Context, vendorID, paymentID uuid.UUID, days int) (*entity.Customer, error)

	ExportPayments(ctx context.Context, vendorID uuid.UUID, query PaymentListQuery) (*PaymentExport, error)
}
