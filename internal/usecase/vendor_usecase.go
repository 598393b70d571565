package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorListQuery carries the raw vendor listing parameters.
type VendorListQuery struct {
	Search      string
	CuisineType string
	DietType    string
	PriceMin    *float64
	PriceMax    *float64
	Location    string
	Lat         *float64
	Lng         *float64
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

// VendorListItem is a listed vendor, with its distance when the caller sent coordinates.
type VendorListItem struct {
	*entity.Vendor
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

type VendorPagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalVendors int64 `json:"totalVendors"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// AppliedVendorFilters echoes the normalised filters back to the client.
type AppliedVendorFilters struct {
	Search      string            `json:"search,omitempty"`
	CuisineType string            `json:"cuisineType,omitempty"`
	FoodTypes   []entity.FoodType `json:"foodTypes,omitempty"`
	PriceMin    *float64          `json:"priceMin,omitempty"`
	PriceMax    *float64          `json:"priceMax,omitempty"`
	Location    string            `json:"location,omitempty"`
	SortBy      string            `json:"sortBy"`
	SortOrder   string            `json:"sortOrder"`
}

type VendorListResult struct {
	Vendors    []*VendorListItem    `json:"vendors"`
	Pagination VendorPagination     `json:"pagination"`
	Filters    AppliedVendorFilters `json:"filters"`
}

// UpdateVendorInput is a partial vendor profile update. Nil fields are kept.
type UpdateVendorInput struct {
	PersonalInfo         *entity.VendorPersonalInfo
	BusinessInfo         *entity.VendorBusinessInfo
	Pricing              *entity.VendorPricing
	Availability         *entity.VendorAvailability
	Location             *entity.Coordinates
	SubscriptionSettings *entity.SubscriptionSettings
}

// VendorDashboardStats are the headline numbers on the vendor dashboard.
type VendorDashboardStats struct {
	TodayOrders         int64   `json:"todayOrders"`
	ActiveSubscriptions int64   `json:"activeSubscriptions"`
	PendingRequests     int64   `json:"pendingRequests"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	TotalCustomers      int64   `json:"totalCustomers"`
	Rating              float64 `json:"rating"`
	TotalRevenue        float64 `json:"totalRevenue"`
}

// VendorUsecase serves the public vendor catalogue and the vendor's own profile.
type VendorUsecase interface {
	ListVendors(ctx context.Context, query VendorListQuery) (*VendorListResult, error)

	// GetPublicProfile hides rejected vendors.
	GetPublicProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)

	GetOwnProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)
	UpdateOwnProfile(ctx context.Context, vendorID uuid.UUID, input UpdateVendorInput) (*entity.Vendor, error)
	GetDashboardStats(ctx context.Context, vendorID uuid.UUID) (*VendorDashboardStats, error)
}
