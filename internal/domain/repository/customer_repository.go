package repository

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerFilter narrows a vendor's customer list.
type CustomerFilter struct {
	VendorID uuid.UUID
	Search   string
	Hostel   entity.Hostel
	Statuses []entity.CustomerPaymentStatus
	Page     entity.PageQuery
}

// UnpaidSummary aggregates a vendor's outstanding dues.
type UnpaidSummary struct {
	TotalUnpaid int64
	Overdue     int64
	Pending     int64
	TotalDue    float64
}

// CustomerRepository stores vendors' customer ledgers.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByStudent finds the vendor's record for a student account.
	FindCustomerByStudent(ctx context.Context, vendorID, studentID uuid.UUID) (*entity.Customer, error)

	FindCustomersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Customer, error)

	// ListCustomers pages through matching customers, newest first, and returns the unpaged total.
	ListCustomers(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int64, error)

	// FindAllCustomers returns every customer of the vendor.
	FindAllCustomers(ctx context.Context, vendorID uuid.UUID) ([]*entity.Customer, error)

	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	CountCustomers(ctx context.Context, vendorID uuid.UUID) (int64, error)

	SummarizeUnpaid(ctx context.Context, vendorID uuid.UUID) (*UnpaidSummary, error)
}
