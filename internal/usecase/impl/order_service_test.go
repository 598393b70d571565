package impl

import (
	"context"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service           *orderService
	orderRepo         *mockRepo.MockOrderRepository
	customerRepo      *mockRepo.MockCustomerRepository
	vendorRepo        *mockRepo.MockVendorRepository
	vendorHolidayRepo *mockRepo.MockVendorHolidayRepository
	publisher         *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		orderRepo:         mockRepo.NewMockOrderRepository(t),
		customerRepo:      mockRepo.NewMockCustomerRepository(t),
		vendorRepo:        mockRepo.NewMockVendorRepository(t),
		vendorHolidayRepo: mockRepo.NewMockVendorHolidayRepository(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		OrderRepo:         fx.orderRepo,
		CustomerRepo:      fx.customerRepo,
		VendorRepo:        fx.vendorRepo,
		VendorHolidayRepo: fx.vendorHolidayRepo,
		Publisher:         fx.publisher,
	}).(*orderService)
	fx.service.now = fixedClock

	return fx
}

func testCustomer(vendorID uuid.UUID) *entity.Customer {
	studentID := uuid.New()

	return &entity.Customer{
		ID:            uuid.New(),
		VendorID:      vendorID,
		StudentID:     &studentID,
		Name:          "Asha Rao",
		Phone:         "9876543210",
		Location:      entity.DeliveryLocation{Hostel: entity.HostelA3, Room: "214"},
		PlanType:      "30 days",
		MonthlyAmount: 3000,
		PaymentStatus: entity.CustomerPending,
	}
}

func TestOrderService_CreateOrder_Defaults(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendor := testVendor()
	customer := testCustomer(vendor.ID)

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.vendorHolidayRepo.EXPECT().FindVendorHolidaysUntil(ctx, vendor.ID, day(0)).Return(nil, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.vendorRepo.EXPECT().IncrementTotalOrders(ctx, vendor.ID).Return(errors.New("deadlock"))

	order, err := fx.service.CreateOrder(ctx, vendor.ID, usecase.CreateOrderInput{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderTypeRegular, order.OrderType)
	assert.Equal(t, entity.MealLunch, order.MealSlot)
	assert.Equal(t, entity.MealVeg, order.DietType)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, customer.Location, order.Location)
	assert.Equal(t, day(0), order.DeliveryDate)
	assert.Equal(t, float64(100), order.Price)
	assert.Equal(t, customer.StudentID, order.StudentID)
}

func TestOrderService_CreateOrder_ExtraNonVegPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendor := testVendor()
	customer := testCustomer(vendor.ID)
	room := entity.DeliveryLocation{Hostel: entity.HostelA5, Room: "9"}

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.vendorHolidayRepo.EXPECT().FindVendorHolidaysUntil(ctx, vendor.ID, day(2)).Return(nil, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	fx.vendorRepo.EXPECT().IncrementTotalOrders(ctx, vendor.ID).Return(nil)

	order, err := fx.service.CreateOrder(ctx, vendor.ID, usecase.CreateOrderInput{
		CustomerID:   customer.ID,
		DeliveryDate: day(2),
		OrderType:    entity.OrderTypeExtra,
		DietType:     entity.MealNonVeg,
		MealSlot:     entity.MealDinner,
		Location:     &room,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(144), order.Price)
	assert.Equal(t, room, order.Location)
}

func TestOrderService_CreateOrder_OtherVendorsCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := testCustomer(uuid.New())

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{CustomerID: customer.ID})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestOrderService_CreateOrder_VendorOnHoliday(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendor := testVendor()
	customer := testCustomer(vendor.ID)
	holiday := &entity.VendorHoliday{ID: uuid.New(), VendorID: vendor.ID, Date: day(0), Type: entity.VendorHolidayAllDay}

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.vendorHolidayRepo.EXPECT().FindVendorHolidaysUntil(ctx, vendor.ID, day(0)).Return([]*entity.VendorHoliday{holiday}, nil)

	_, err := fx.service.CreateOrder(ctx, vendor.ID, usecase.CreateOrderInput{CustomerID: customer.ID})
	assert.ErrorIs(t, err, domainerrors.ErrVendorOnHoliday)
}

func testOrder(vendorID uuid.UUID, status entity.OrderStatus) *entity.Order {
	studentID := uuid.New()

	return &entity.Order{
		ID:           uuid.New(),
		VendorID:     vendorID,
		CustomerID:   uuid.New(),
		StudentID:    &studentID,
		CustomerName: "Asha Rao",
		DeliveryDate: day(0),
		OrderType:    entity.OrderTypeRegular,
		MealSlot:     entity.MealLunch,
		DietType:     entity.MealVeg,
		Status:       status,
	}
}

func TestOrderService_UpdateOrderStatus_RejectNotifiesStudent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	order := testOrder(vendorID, entity.OrderPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.RecipientID == order.StudentID.String() && e.Important && e.Data["status"] == "rejected"
		})).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, vendorID, order.ID, entity.OrderRejected, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, updated.Status)
	require.NotNil(t, updated.Rejection)
	assert.Equal(t, entity.DefaultRejectionReason, updated.Rejection.Reason)
	assert.Equal(t, entity.RejectedByVendor, updated.Rejection.RejectedBy)
	assert.Equal(t, testNow, updated.Rejection.RejectedAt)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	order := testOrder(vendorID, entity.OrderDelivered)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, vendorID, order.ID, entity.OrderPending, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
}

func TestOrderService_UpdateOrderStatus_OtherVendor(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(uuid.New(), entity.OrderPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), order.ID, entity.OrderConfirmed, "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), id, entity.OrderConfirmed, "")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_CancelStudentOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(uuid.New(), entity.OrderConfirmed)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order).Return(nil)

	cancelled, err := fx.service.CancelStudentOrder(ctx, *order.StudentID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestOrderService_CancelStudentOrder_AlreadyCooking(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(uuid.New(), entity.OrderPrepared)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelStudentOrder(ctx, *order.StudentID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
}

func TestOrderService_GetLocationBreakdown(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	from, to := entity.DayRange(testNow)

	fx.orderRepo.EXPECT().
		CountByLocation(ctx, repository.OrderFilter{
			VendorID:  vendorID,
			From:      from,
			To:        to,
			OrderType: entity.OrderTypeRegular,
			Statuses:  liveOrderStatuses,
		}).
		Return([]repository.LocationCount{
			{Hostel: entity.HostelA2, DietType: entity.MealVeg, Count: 4},
			{Hostel: entity.HostelA2, DietType: entity.MealNonVeg, Count: 2},
			{Hostel: "B9", DietType: entity.MealVeg, Count: 1},
		}, nil)

	breakdown, err := fx.service.GetLocationBreakdown(ctx, vendorID, usecase.LocationBreakdownQuery{})
	require.NoError(t, err)
	assert.Equal(t, usecase.BreakdownDietAll, breakdown.DietType)
	assert.Equal(t, usecase.BreakdownPeriodToday, breakdown.Period)
	require.Len(t, breakdown.Locations, len(entity.Hostels))
	assert.Equal(t, usecase.MealCounts{Veg: 4, NonVeg: 2, Total: 6}, breakdown.Locations[0].Counts)
	assert.Equal(t, "Outside Campus", breakdown.Locations[4].Label)
	assert.Equal(t, int64(1), breakdown.Locations[4].Counts.Total)
	assert.Equal(t, usecase.MealCounts{Veg: 5, NonVeg: 2, Total: 7}, breakdown.Totals)
}

func TestOrderService_GetLocationBreakdown_BadDiet(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetLocationBreakdown(context.Background(), uuid.New(), usecase.LocationBreakdownQuery{DietType: "vegan"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ListRejectedOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	withReason := testOrder(vendorID, entity.OrderRejected)
	withReason.Rejection = &entity.OrderRejection{Reason: "Out of stock", RejectedBy: entity.RejectedByVendor, RejectedAt: testNow}
	legacy := testOrder(vendorID, entity.OrderRejected)
	legacy.UpdatedAt = testNow.Add(-time.Hour)

	fx.orderRepo.EXPECT().
		FindOrders(ctx, repository.OrderFilter{VendorID: vendorID, Statuses: []entity.OrderStatus{entity.OrderRejected}}).
		Return([]*entity.Order{withReason, legacy}, nil)

	views, err := fx.service.ListRejectedOrders(ctx, vendorID, time.Time{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Out of stock", views[0].Reason)
	assert.Len(t, views[0].DisplayID, 9)
	assert.Equal(t, entity.DefaultRejectionReason, views[1].Reason)
	assert.Equal(t, legacy.UpdatedAt, views[1].RejectedAt)
}
