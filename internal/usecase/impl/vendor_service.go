package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type vendorService struct {
	vendorRepo       repository.VendorRepository
	subscriptionRepo repository.SubscriptionRepository
	requestRepo      repository.SubscriptionRequestRepository
	orderRepo        repository.OrderRepository
	customerRepo     repository.CustomerRepository
	paymentRepo      repository.PaymentRepository
	distance         service.DistanceCalculator
	config           *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo       repository.VendorRepository
	SubscriptionRepo repository.SubscriptionRepository
	RequestRepo      repository.SubscriptionRequestRepository
	OrderRepo        repository.OrderRepository
	CustomerRepo     repository.CustomerRepository
	PaymentRepo      repository.PaymentRepository
	Distance         service.DistanceCalculator
	Config           *config.Config
	Logger           *slog.Logger
}

// NewVendorService creates a new vendor service instance
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:       params.VendorRepo,
		subscriptionRepo: params.SubscriptionRepo,
		requestRepo:      params.RequestRepo,
		orderRepo:        params.OrderRepo,
		customerRepo:     params.CustomerRepo,
		paymentRepo:      params.PaymentRepo,
		distance:         params.Distance,
		config:           params.Config,
		logger:           loggerOrDefault(params.Logger),
		now:              systemClock,
	}
}

func (s *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListVendors serves the public catalogue. Coordinates switch paging to memory,
// since the radius check depends on each vendor's own delivery radius.
func (s *vendorService) ListVendors(ctx context.Context, query usecase.VendorListQuery) (*usecase.VendorListResult, error) {
	page := normalizePage(entity.PageQuery{Page: query.Page, Limit: query.Limit}, s.config, constants.DefaultVendorLimit)
	filter, applied := buildVendorFilter(query)
	filter.Page = page

	nearby := query.Lat != nil && query.Lng != nil
	if filter.SortBy == repository.VendorSortDistance && !nearby {
		filter.SortBy = repository.VendorSortRating
	}

	if !nearby {
		vendors, total, err := s.vendorRepo.ListVendors(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list vendors")
		}

		items := make([]*usecase.VendorListItem, 0, len(vendors))
		for _, v := range vendors {
			items = append(items, &usecase.VendorListItem{Vendor: v})
		}

		return &usecase.VendorListResult{
			Vendors:    items,
			Pagination: vendorPagination(page, total),
			Filters:    applied,
		}, nil
	}

	filter.Unpaged = true
	vendors, _, err := s.vendorRepo.ListVendors(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	origin := entity.Coordinates{Lat: *query.Lat, Lng: *query.Lng}
	items := make([]*usecase.VendorListItem, 0, len(vendors))

	for _, v := range vendors {
		if v.Location == nil {
			continue
		}

		km := s.distance.DistanceKm(origin, *v.Location)
		if km > v.SubscriptionSettings.DeliveryRadiusKm {
			continue
		}

		rounded := math.Round(km*100) / 100
		items = append(items, &usecase.VendorListItem{Vendor: v, DistanceKm: &rounded})
	}

	sortVendorItems(items, filter.SortBy, filter.SortDesc)

	total := int64(len(items))
	start := min(page.Offset(), len(items))
	end := start + min(page.Limit, len(items)-start)

	s.log(ctx).Debug("Vendors filtered by distance",
		slog.Int("candidates", len(vendors)),
		slog.Int64("inRange", total),
	)

	return &usecase.VendorListResult{
		Vendors:    items[start:end],
		Pagination: vendorPagination(page, total),
		Filters:    applied,
	}, nil
}

// buildVendorFilter normalises the query parameters into a repository filter.
func buildVendorFilter(query usecase.VendorListQuery) (repository.VendorFilter, usecase.AppliedVendorFilters) {
	filter := repository.VendorFilter{
		Search:    strings.TrimSpace(query.Search),
		Cuisine:   cuisineTitle(query.CuisineType),
		FoodTypes: foodTypesForDiet(query.DietType),
		PriceMin:  query.PriceMin,
		PriceMax:  query.PriceMax,
		Location:  strings.TrimSpace(query.Location),
		Statuses:  []entity.VendorStatus{entity.VendorApproved, entity.VendorPending},
		SortBy:    repository.VendorSortRating,
		SortDesc:  true,
	}

	switch query.SortBy {
	case repository.VendorSortRating, repository.VendorSortPrice, repository.VendorSortName,
		repository.VendorSortNewest, repository.VendorSortDistance:
		filter.SortBy = query.SortBy
	}

	sortOrder := "desc"
	if strings.EqualFold(query.SortOrder, "asc") {
		filter.SortDesc = false
		sortOrder = "asc"
	}

	applied := usecase.AppliedVendorFilters{
		Search:      filter.Search,
		CuisineType: filter.Cuisine,
		FoodTypes:   filter.FoodTypes,
		PriceMin:    filter.PriceMin,
		PriceMax:    filter.PriceMax,
		Location:    filter.Location,
		SortBy:      filter.SortBy,
		SortOrder:   sortOrder,
	}

	return filter, applied
}

// cuisineTitle turns "south-indian" into "South Indian".
func cuisineTitle(raw string) string {
	words := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}

	return strings.Join(words, " ")
}

func foodTypesForDiet(diet string) []entity.FoodType {
	switch strings.ToLower(strings.TrimSpace(diet)) {
	case "vegetarian", "vegan", "jain":
		return []entity.FoodType{entity.FoodVeg, entity.FoodBoth}
	case "non-vegetarian", "eggitarian":
		return []entity.FoodType{entity.FoodNonVeg, entity.FoodBoth}
	default:
		return nil
	}
}

func sortVendorItems(items []*usecase.VendorListItem, sortBy string, desc bool) {
	compare := func(a, b *usecase.VendorListItem) int {
		switch sortBy {
		case repository.VendorSortPrice:
			return cmp.Compare(a.Pricing.MonthlyRate, b.Pricing.MonthlyRate)
		case repository.VendorSortName:
			return strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName()))
		case repository.VendorSortNewest:
			return a.CreatedAt.Compare(b.CreatedAt)
		case repository.VendorSortDistance:
			return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
		default:
			return cmp.Compare(a.Rating, b.Rating)
		}
	}

	slices.SortStableFunc(items, func(a, b *usecase.VendorListItem) int {
		if desc {
			return compare(b, a)
		}

		return compare(a, b)
	})
}

func vendorPagination(page entity.PageQuery, total int64) usecase.VendorPagination {
	p := entity.NewPagination(page, total)

	return usecase.VendorPagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalVendors: p.Total,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func (s *vendorService) GetPublicProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.GetOwnProfile(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if !vendor.IsListed() {
		return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
	}

	return vendor, nil
}

func (s *vendorService) GetOwnProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	return vendor, nil
}

func (s *vendorService) UpdateOwnProfile(ctx context.Context, vendorID uuid.UUID, input usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.GetOwnProfile(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if input.PersonalInfo != nil {
		vendor.PersonalInfo = *input.PersonalInfo
	}
	if input.BusinessInfo != nil {
		vendor.BusinessInfo = *input.BusinessInfo
	}
	if input.Pricing != nil {
		vendor.Pricing = *input.Pricing
	}
	if input.Availability != nil {
		vendor.Availability = *input.Availability
	}
	if input.Location != nil {
		vendor.Location = input.Location
	}
	if input.SubscriptionSettings != nil {
		vendor.SubscriptionSettings = *input.SubscriptionSettings
	}

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor")
	}

	return vendor, nil
}

// GetDashboardStats gathers the vendor's headline numbers for today and this month.
func (s *vendorService) GetDashboardStats(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorDashboardStats, error) {
	vendor, err := s.GetOwnProfile(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart, dayEnd := entity.DayRange(now)
	monthStart, monthEnd := entity.MonthRange(now)

	todayOrders, err := s.orderRepo.CountOrders(ctx, repository.OrderFilter{VendorID: vendorID, From: dayStart, To: dayEnd})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's orders")
	}

	active, err := s.subscriptionRepo.CountActiveByVendor(ctx, vendorID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active subscriptions")
	}

	pending, err := s.requestRepo.CountPendingByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending requests")
	}

	totals, err := s.paymentRepo.SumCompleted(ctx, vendorID, monthStart, monthEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum monthly revenue")
	}

	customers, err := s.customerRepo.CountCustomers(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	return &usecase.VendorDashboardStats{
		TodayOrders:         todayOrders,
		ActiveSubscriptions: active,
		PendingRequests:     pending,
		MonthlyRevenue:      totals.Revenue,
		TotalCustomers:      customers,
		Rating:              vendor.Rating,
		TotalRevenue:        vendor.TotalRevenue,
	}, nil
}
