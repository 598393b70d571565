package impl

import (
	"context"
	"testing"

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

type requestServiceFixtures struct {
	service      *subscriptionRequestService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	requestRepo  *mockRepo.MockSubscriptionRequestRepository
	vendorRepo   *mockRepo.MockVendorRepository
	studentRepo  *mockRepo.MockStudentRepository
	subRepo      *mockRepo.MockSubscriptionRepository
	customerRepo *mockRepo.MockCustomerRepository
	qrcode       *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	fx := requestServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		requestRepo:  mockRepo.NewMockSubscriptionRequestRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		studentRepo:  mockRepo.NewMockStudentRepository(t),
		subRepo:      mockRepo.NewMockSubscriptionRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewSubscriptionRequestService(SubscriptionRequestServiceParams{
		TxManager:     fx.txManager,
		RequestRepo:   fx.requestRepo,
		VendorRepo:    fx.vendorRepo,
		StudentRepo:   fx.studentRepo,
		QRCodeService: fx.qrcode,
		Publisher:     fx.publisher,
	}).(*subscriptionRequestService)
	fx.service.now = fixedClock

	return fx
}

// runInTx makes the transaction manager call straight through with the mocked factory.
func (fx requestServiceFixtures) runInTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func pendingRequest(studentID, vendorID uuid.UUID) *entity.SubscriptionRequest {
	return &entity.SubscriptionRequest{
		ID:           uuid.New(),
		StudentID:    studentID,
		VendorID:     vendorID,
		DurationDays: 30,
		StartDate:    entity.DateOnly(testNow).AddDate(0, 0, 1),
		Source:       entity.RequestSourceDirect,
		Status:       entity.RequestPending,
	}
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.requestRepo.EXPECT().HasPendingRequest(ctx, studentID, vendor.ID).Return(false, nil)
	fx.requestRepo.EXPECT().
		CreateRequest(ctx, mock.MatchedBy(func(r *entity.SubscriptionRequest) bool {
			return r.Status == entity.RequestPending && r.Source == entity.RequestSourceDirect
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	request, err := fx.service.CreateRequest(ctx, studentID, usecase.CreateRequestInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
		Message:      "Hostel B, room 12",
	})
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, request.VendorID)
	assert.Equal(t, entity.DateOnly(testNow), request.StartDate)
	assert.Equal(t, "Hostel B, room 12", request.Message)
}

func TestRequestService_CreateRequest_DuplicatePending(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.requestRepo.EXPECT().HasPendingRequest(ctx, studentID, vendor.ID).Return(true, nil)

	_, err := fx.service.CreateRequest(ctx, studentID, usecase.CreateRequestInput{
		VendorID:     vendor.ID,
		DurationDays: 30,
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRequestService_CreateRequestFromQR_InvalidCode(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()

	fx.qrcode.EXPECT().ParseSubscriptionQR("not-a-code").Return(uuid.Nil, domainerrors.ErrInvalidQRCode)

	_, err := fx.service.CreateRequestFromQR(ctx, uuid.New(), usecase.QRRequestInput{
		QRData:       "not-a-code",
		DurationDays: 30,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
}

func TestRequestService_CreateRequestFromQR_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	studentID := uuid.New()
	vendor := testVendor()

	fx.qrcode.EXPECT().ParseSubscriptionQR("payload").Return(vendor.ID, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.requestRepo.EXPECT().HasPendingRequest(ctx, studentID, vendor.ID).Return(false, nil)
	fx.requestRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(nil)

	request, err := fx.service.CreateRequestFromQR(ctx, studentID, usecase.QRRequestInput{
		QRData:       "payload",
		DurationDays: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestSourceQR, request.Source)
}

func TestRequestService_ListVendorRequests_InvalidFilter(t *testing.T) {
	fx := createTestRequestService(t)

	_, err := fx.service.ListVendorRequests(context.Background(), uuid.New(), "maybe")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_ListVendorRequests_JoinsStudents(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	student := &entity.Student{ID: uuid.New(), FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "9876543210"}
	request := pendingRequest(student.ID, vendorID)
	pending := entity.RequestPending

	fx.requestRepo.EXPECT().FindRequestsByVendor(ctx, vendorID, &pending).Return([]*entity.SubscriptionRequest{request}, nil)
	fx.studentRepo.EXPECT().FindStudentsByIDs(ctx, []uuid.UUID{student.ID}).Return([]*entity.Student{student}, nil)

	views, err := fx.service.ListVendorRequests(ctx, vendorID, usecase.RequestFilterPending)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Asha Rao", views[0].StudentName)
	assert.Equal(t, "asha@example.com", views[0].StudentEmail)
}

func TestRequestService_AcceptRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendor := testVendor()
	student := &entity.Student{ID: uuid.New(), FirstName: "Asha", Phone: "9876543210"}
	request := pendingRequest(student.ID, vendor.ID)

	fx.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)

	fx.runInTx()
	fx.factory.EXPECT().NewSubscriptionRequestRepository().Return(fx.requestRepo)
	fx.factory.EXPECT().NewVendorRepository().Return(fx.vendorRepo)
	fx.factory.EXPECT().NewSubscriptionRepository().Return(fx.subRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.subRepo.EXPECT().CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)
	fx.customerRepo.EXPECT().
		FindCustomerByStudent(ctx, vendor.ID, student.ID).
		Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.PaymentStatus == entity.CustomerPending && c.Location.Hostel == entity.HostelOutside
		})).
		Return(nil)
	fx.requestRepo.EXPECT().
		SaveDecision(ctx, mock.MatchedBy(func(r *entity.SubscriptionRequest) bool {
			return r.Status == entity.RequestAccepted
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(nil)

	decision, err := fx.service.AcceptRequest(ctx, vendor.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestAccepted, decision.Request.Status)
	assert.Equal(t, request.StartDate, decision.Subscription.StartDate)
	assert.Equal(t, float64(3000), decision.Subscription.TotalAmount)
	assert.Equal(t, "30 days", decision.Customer.PlanType)
	require.NotNil(t, decision.Customer.StudentID)
	assert.Equal(t, student.ID, *decision.Customer.StudentID)
}

func TestRequestService_AcceptRequest_RaceLost(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendor := testVendor()
	student := &entity.Student{ID: uuid.New(), FirstName: "Asha"}
	request := pendingRequest(student.ID, vendor.ID)

	fx.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)

	fx.runInTx()
	fx.factory.EXPECT().NewSubscriptionRequestRepository().Return(fx.requestRepo)
	fx.factory.EXPECT().NewVendorRepository().Return(fx.vendorRepo)
	fx.factory.EXPECT().NewSubscriptionRepository().Return(fx.subRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)

	existing := &entity.Customer{ID: uuid.New(), VendorID: vendor.ID, PaymentStatus: entity.CustomerPaid}
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.subRepo.EXPECT().CreateSubscription(ctx, mock.Anything).Return(nil)
	fx.customerRepo.EXPECT().FindCustomerByStudent(ctx, vendor.ID, student.ID).Return(existing, nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, existing).Return(nil)
	fx.requestRepo.EXPECT().SaveDecision(ctx, mock.Anything).Return(errors.WithStack(repository.ErrRequestNotPending))

	_, err := fx.service.AcceptRequest(ctx, vendor.ID, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyDecided)
}

func TestRequestService_AcceptRequest_OtherVendor(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New())

	fx.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.AcceptRequest(ctx, uuid.New(), request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequestService_RejectRequest_AlreadyDecided(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	request := pendingRequest(uuid.New(), vendorID)
	request.Status = entity.RequestRejected

	fx.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.RejectRequest(ctx, vendorID, request.ID, "full")
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyDecided)
}

func TestRequestService_RejectRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	request := pendingRequest(uuid.New(), vendorID)

	fx.requestRepo.EXPECT().FindRequestByID(ctx, request.ID).Return(request, nil)
	fx.requestRepo.EXPECT().SaveDecision(ctx, request).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.RecipientID == request.StudentID.String() && e.Message == "Your subscription request was declined: full"
		})).
		Return(nil)

	rejected, err := fx.service.RejectRequest(ctx, vendorID, request.ID, "full")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, rejected.Status)
}

func TestRequestService_VendorQRCode(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	vendor := testVendor()

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.qrcode.EXPECT().GenerateSubscriptionQR(vendor.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.VendorQRCode(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
