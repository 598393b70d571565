package impl

import (
	"context"
	"testing"

	"tiffin/config"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerServiceFixtures struct {
	service      *customerService
	customerRepo *mockRepo.MockCustomerRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestCustomerService(t *testing.T, cfg *config.Config) customerServiceFixtures {
	fx := customerServiceFixtures{
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewCustomerService(CustomerServiceParams{
		CustomerRepo: fx.customerRepo,
		PaymentRepo:  fx.paymentRepo,
		Publisher:    fx.publisher,
		Config:       cfg,
	}).(*customerService)
	fx.service.now = fixedClock

	return fx
}

func TestCustomerService_ListCustomers_Filters(t *testing.T) {
	fx := createTestCustomerService(t, &config.Config{Pagination: &config.PaginationConfig{DefaultLimit: 20, MaxLimit: 50}})

	ctx := context.Background()
	vendorID := uuid.New()
	customers := []*entity.Customer{testCustomer(vendorID)}

	fx.customerRepo.EXPECT().
		ListCustomers(ctx, repository.CustomerFilter{
			VendorID: vendorID,
			Search:   "asha",
			Hostel:   entity.HostelA3,
			Statuses: []entity.CustomerPaymentStatus{entity.CustomerOverdue},
			Page:     entity.PageQuery{Page: 1, Limit: 20},
		}).
		Return(customers, int64(41), nil)

	list, err := fx.service.ListCustomers(ctx, vendorID, usecase.CustomerListQuery{
		Search:   " asha ",
		Location: "A3",
		Status:   "Overdue",
	})
	require.NoError(t, err)
	assert.Len(t, list.Customers, 1)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.True(t, list.Pagination.HasNext)
}

func TestCustomerService_ListCustomers_AllLocationsClampLimit(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()

	fx.customerRepo.EXPECT().
		ListCustomers(ctx, repository.CustomerFilter{
			VendorID: vendorID,
			Page:     entity.PageQuery{Page: 2, Limit: constants.MaxPageLimit},
		}).
		Return([]*entity.Customer{}, int64(0), nil)

	_, err := fx.service.ListCustomers(ctx, vendorID, usecase.CustomerListQuery{
		Location: "all",
		Status:   "all",
		Page:     entity.PageQuery{Page: 2, Limit: 10_000},
	})
	require.NoError(t, err)
}

func TestCustomerService_ListCustomers_BadStatus(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	_, err := fx.service.ListCustomers(context.Background(), uuid.New(), usecase.CustomerListQuery{Status: "late"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()

	fx.customerRepo.EXPECT().CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := fx.service.CreateCustomer(ctx, vendorID, usecase.CreateCustomerInput{
		Name:          "  Ravi  ",
		Phone:         "9000000001",
		Email:         " Ravi@Example.com ",
		PlanType:      "Monthly",
		MonthlyAmount: 2800,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", customer.Name)
	assert.Equal(t, "ravi@example.com", customer.Email)
	assert.Equal(t, entity.HostelOutside, customer.Location.Hostel)
	assert.Equal(t, entity.CustomerPending, customer.PaymentStatus)
}

func TestCustomerService_CreateCustomer_NegativeAmount(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	_, err := fx.service.CreateCustomer(context.Background(), uuid.New(), usecase.CreateCustomerInput{Name: "Ravi", MonthlyAmount: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_ListPaidCustomers_KeepsPaymentOrder(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()
	first, second := testCustomer(vendorID), testCustomer(vendorID)
	page := entity.PageQuery{Page: 1, Limit: constants.DefaultPageLimit}

	fx.paymentRepo.EXPECT().
		FindPaidCustomerIDs(ctx, vendorID, page).
		Return([]uuid.UUID{second.ID, first.ID, uuid.New()}, int64(3), nil)
	fx.customerRepo.EXPECT().
		FindCustomersByIDs(ctx, mock.Anything).
		Return([]*entity.Customer{first, second}, nil)

	list, err := fx.service.ListPaidCustomers(ctx, vendorID, entity.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Customers, 2)
	assert.Equal(t, second.ID, list.Customers[0].ID)
	assert.Equal(t, first.ID, list.Customers[1].ID)
	assert.Equal(t, int64(3), list.Stats.TotalPaidCustomers)
}

func TestCustomerService_ListUnpaidCustomers(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()
	overdue := testCustomer(vendorID)
	overdue.MarkOverdue(3)

	fx.customerRepo.EXPECT().
		ListCustomers(ctx, mock.MatchedBy(func(f repository.CustomerFilter) bool {
			return len(f.Statuses) == 2 && f.VendorID == vendorID
		})).
		Return([]*entity.Customer{overdue}, int64(1), nil)
	fx.customerRepo.EXPECT().
		SummarizeUnpaid(ctx, vendorID).
		Return(&repository.UnpaidSummary{TotalUnpaid: 1, Overdue: 1, TotalDue: 3000}, nil)

	list, err := fx.service.ListUnpaidCustomers(ctx, vendorID, entity.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, usecase.UnpaidCustomerStats{TotalUnpaid: 1, Overdue: 1, TotalDue: 3000}, list.Stats)
	assert.Equal(t, 3, list.Customers[0].OverdueDays)
}

func TestCustomerService_SendReminder(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)
	customer.MarkOverdue(0)

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventPaymentReminder && e.Important && e.Message == "Your payment of ₹3000 is due"
		})).
		Return(nil)

	updated, err := fx.service.SendReminder(ctx, vendorID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Reminder.Count)
	require.NotNil(t, updated.Reminder.LastSent)
	assert.Equal(t, testNow, *updated.Reminder.LastSent)
	assert.Equal(t, 1, updated.OverdueDays)
}

func TestCustomerService_SendReminder_WalkInNoEvent(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)
	customer.StudentID = nil

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	_, err := fx.service.SendReminder(ctx, vendorID, customer.ID)
	require.NoError(t, err)
}

func TestCustomerService_SendReminder_OtherVendor(t *testing.T) {
	fx := createTestCustomerService(t, nil)

	ctx := context.Background()
	customer := testCustomer(uuid.New())

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.SendReminder(ctx, uuid.New(), customer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
