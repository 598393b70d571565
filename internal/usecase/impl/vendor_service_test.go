package impl

import (
	"context"
	"math"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	service      *vendorService
	vendorRepo   *mockRepo.MockVendorRepository
	subRepo      *mockRepo.MockSubscriptionRepository
	requestRepo  *mockRepo.MockSubscriptionRequestRepository
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	distance     *mockSvc.MockDistanceCalculator
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	fx := vendorServiceFixtures{
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		subRepo:      mockRepo.NewMockSubscriptionRepository(t),
		requestRepo:  mockRepo.NewMockSubscriptionRequestRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		distance:     mockSvc.NewMockDistanceCalculator(t),
	}

	fx.service = NewVendorService(VendorServiceParams{
		VendorRepo:       fx.vendorRepo,
		SubscriptionRepo: fx.subRepo,
		RequestRepo:      fx.requestRepo,
		OrderRepo:        fx.orderRepo,
		CustomerRepo:     fx.customerRepo,
		PaymentRepo:      fx.paymentRepo,
		Distance:         fx.distance,
	}).(*vendorService)
	fx.service.now = fixedClock

	return fx
}

func TestVendorService_ListVendors_Filters(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	minPrice := 2000.0
	vendor := testVendor()

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.MatchedBy(func(f repository.VendorFilter) bool {
			return f.Cuisine == "South Indian" &&
				assert.ObjectsAreEqual([]entity.FoodType{entity.FoodVeg, entity.FoodBoth}, f.FoodTypes) &&
				f.SortBy == repository.VendorSortPrice &&
				!f.SortDesc &&
				!f.Unpaged &&
				f.Page == entity.PageQuery{Page: 2, Limit: 8}
		})).
		Return([]*entity.Vendor{vendor}, int64(9), nil)

	result, err := fx.service.ListVendors(ctx, usecase.VendorListQuery{
		CuisineType: "south-indian",
		DietType:    "Vegetarian",
		PriceMin:    &minPrice,
		SortBy:      "price",
		SortOrder:   "ASC",
		Page:        2,
	})
	require.NoError(t, err)
	require.Len(t, result.Vendors, 1)
	assert.Nil(t, result.Vendors[0].DistanceKm)
	assert.Equal(t, int64(9), result.Pagination.TotalVendors)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasPrev)
	assert.Equal(t, "asc", result.Filters.SortOrder)
	assert.Equal(t, &minPrice, result.Filters.PriceMin)
}

func TestVendorService_ListVendors_DistanceWithoutCoordinates(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.MatchedBy(func(f repository.VendorFilter) bool {
			return f.SortBy == repository.VendorSortRating && f.SortDesc
		})).
		Return(nil, int64(0), nil)

	result, err := fx.service.ListVendors(ctx, usecase.VendorListQuery{SortBy: "distance"})
	require.NoError(t, err)
	assert.Empty(t, result.Vendors)
}

func TestVendorService_ListVendors_Nearby(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	lat, lng := 12.97, 77.59

	near := testVendor()
	near.Location = &entity.Coordinates{Lat: 12.98, Lng: 77.59}
	nearer := testVendor()
	nearer.Location = &entity.Coordinates{Lat: 12.975, Lng: 77.59}
	far := testVendor()
	far.Location = &entity.Coordinates{Lat: 13.2, Lng: 77.59}
	unlocated := testVendor()

	distances := map[float64]float64{12.98: 1.114, 12.975: 0.556, 13.2: 25.6}

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.MatchedBy(func(f repository.VendorFilter) bool {
			return f.Unpaged && f.SortBy == repository.VendorSortDistance
		})).
		Return([]*entity.Vendor{near, nearer, far, unlocated}, int64(4), nil)
	fx.distance.EXPECT().
		DistanceKm(entity.Coordinates{Lat: lat, Lng: lng}, mock.Anything).
		RunAndReturn(func(_, to entity.Coordinates) float64 {
			return distances[to.Lat]
		}).
		Times(3)

	result, err := fx.service.ListVendors(ctx, usecase.VendorListQuery{
		Lat:       &lat,
		Lng:       &lng,
		SortBy:    "distance",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, result.Vendors, 2)
	assert.Equal(t, nearer.ID, result.Vendors[0].ID)
	assert.Equal(t, 0.56, *result.Vendors[0].DistanceKm)
	assert.Equal(t, near.ID, result.Vendors[1].ID)
	assert.Equal(t, 1.11, *result.Vendors[1].DistanceKm)
	assert.Equal(t, int64(2), result.Pagination.TotalVendors)
}

func TestVendorService_ListVendors_NearbyPageBeyondEnd(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	lat, lng := 12.97, 77.59
	vendor := testVendor()
	vendor.Location = &entity.Coordinates{Lat: 12.975, Lng: 77.59}

	fx.vendorRepo.EXPECT().
		ListVendors(ctx, mock.MatchedBy(func(f repository.VendorFilter) bool { return f.Unpaged })).
		Return([]*entity.Vendor{vendor}, int64(1), nil).
		Twice()
	fx.distance.EXPECT().DistanceKm(mock.Anything, mock.Anything).Return(0.5).Twice()

	for _, page := range []int{2, math.MaxInt64 / 4} {
		result, err := fx.service.ListVendors(ctx, usecase.VendorListQuery{Lat: &lat, Lng: &lng, Page: page})
		require.NoError(t, err)
		assert.Empty(t, result.Vendors)
		assert.Equal(t, int64(1), result.Pagination.TotalVendors)
		assert.False(t, result.Pagination.HasNext)
		assert.Positive(t, result.Pagination.CurrentPage)
	}
}

func TestVendorService_GetPublicProfile_Rejected(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendor := testVendor()
	vendor.Status = entity.VendorRejected

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.GetPublicProfile(ctx, vendor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_UpdateOwnProfile(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendor := testVendor()
	pricing := entity.VendorPricing{MonthlyRate: 3300, OneTimeRate: 130}
	location := entity.Coordinates{Lat: 12.9, Lng: 77.6}

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.vendorRepo.EXPECT().UpdateVendor(ctx, vendor).Return(nil)

	updated, err := fx.service.UpdateOwnProfile(ctx, vendor.ID, usecase.UpdateVendorInput{
		Pricing:  &pricing,
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, pricing, updated.Pricing)
	assert.Equal(t, &location, updated.Location)
	assert.Equal(t, "Annapurna Tiffins", updated.DisplayName())
}

func TestVendorService_GetDashboardStats(t *testing.T) {
	fx := createTestVendorService(t)

	ctx := context.Background()
	vendor := testVendor()
	vendor.Rating = 4.6
	vendor.TotalRevenue = 90000
	dayStart, dayEnd := entity.DayRange(testNow)
	monthStart, monthEnd := entity.MonthRange(testNow)

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.orderRepo.EXPECT().
		CountOrders(ctx, repository.OrderFilter{VendorID: vendor.ID, From: dayStart, To: dayEnd}).
		Return(int64(14), nil)
	fx.subRepo.EXPECT().CountActiveByVendor(ctx, vendor.ID, testNow).Return(int64(30), nil)
	fx.requestRepo.EXPECT().CountPendingByVendor(ctx, vendor.ID).Return(int64(2), nil)
	fx.paymentRepo.EXPECT().
		SumCompleted(ctx, vendor.ID, monthStart, monthEnd).
		Return(&repository.PaymentTotals{PaidCustomers: 20, Revenue: 60000}, nil)
	fx.customerRepo.EXPECT().CountCustomers(ctx, vendor.ID).Return(int64(34), nil)

	stats, err := fx.service.GetDashboardStats(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.VendorDashboardStats{
		TodayOrders:         14,
		ActiveSubscriptions: 30,
		PendingRequests:     2,
		MonthlyRevenue:      60000,
		TotalCustomers:      34,
		Rating:              4.6,
		TotalRevenue:        90000,
	}, stats)
}
