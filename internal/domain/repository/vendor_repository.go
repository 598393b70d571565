package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when the email is already registered.
	ErrDuplicateVendor = errors.New("vendor already exists")
)

// Vendor list sort keys
const (
	VendorSortRating   = "rating"
	VendorSortPrice    = "price"
	VendorSortName     = "name"
	VendorSortNewest   = "newest"
	VendorSortDistance = "distance"
)

// VendorFilter narrows the public vendor listing.
type VendorFilter struct {
	Search    string
	Cuisine   string
	FoodTypes []entity.FoodType
	PriceMin  *float64
	PriceMax  *float64
	Location  string
	Statuses  []entity.VendorStatus
	SortBy    string
	SortDesc  bool

	// Page is ignored when Unpaged is set; the caller pages in memory.
	Page    entity.PageQuery
	Unpaged bool
}

// VendorRepository defines vendor account storage.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)

	// UpdateVendor saves profile, pricing and settings.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error

	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// ListVendors returns the matching vendors and the total count before paging.
	ListVendors(ctx context.Context, filter VendorFilter) ([]*entity.Vendor, int64, error)

	// AddRevenue atomically increases the vendor's lifetime revenue.
	AddRevenue(ctx context.Context, id uuid.UUID, amount float64) error

	// IncrementTotalOrders atomically bumps the vendor's order counter.
	IncrementTotalOrders(ctx context.Context, id uuid.UUID) error
}
