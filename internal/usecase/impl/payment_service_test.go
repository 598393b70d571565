package impl

import (
	"context"
	"io"
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

type paymentServiceFixtures struct {
	service      *paymentService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	paymentRepo  *mockRepo.MockPaymentRepository
	customerRepo *mockRepo.MockCustomerRepository
	vendorRepo   *mockRepo.MockVendorRepository
	exporter     *mockSvc.MockPaymentExporter
	publisher    *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		paymentRepo:  mockRepo.NewMockPaymentRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		exporter:     mockSvc.NewMockPaymentExporter(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager:    fx.txManager,
		PaymentRepo:  fx.paymentRepo,
		CustomerRepo: fx.customerRepo,
		VendorRepo:   fx.vendorRepo,
		Exporter:     fx.exporter,
		Publisher:    fx.publisher,
	}).(*paymentService)
	fx.service.now = fixedClock

	return fx
}

func (fx paymentServiceFixtures) runInTx() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
}

func TestPaymentService_RecordPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)

	fx.runInTx()
	fx.factory.EXPECT().NewVendorRepository().Return(fx.vendorRepo)
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.paymentRepo.EXPECT().CountPaymentsByVendor(ctx, vendorID).Return(int64(41), nil)
	fx.paymentRepo.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	fx.customerRepo.EXPECT().
		UpdateCustomer(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.PaymentStatus == entity.CustomerPaid && c.OverdueDays == 0
		})).
		Return(nil)
	fx.vendorRepo.EXPECT().AddRevenue(ctx, vendorID, float64(3000)).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventPaymentRecorded && e.RecipientID == customer.StudentID.String()
		})).
		Return(nil)

	payment, err := fx.service.RecordPayment(ctx, vendorID, usecase.RecordPaymentInput{
		CustomerID:    customer.ID,
		Amount:        3000,
		TransactionID: " UPI-42 ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, payment.Method)
	assert.Equal(t, entity.PaymentCompleted, payment.Status)
	assert.Equal(t, "UPI-42", payment.TransactionID)
	assert.Equal(t, entity.ReceiptNumber(testNow, 41), payment.ReceiptNumber)
	assert.Equal(t, "March 2025", payment.BillingPeriod.Month)
	assert.Equal(t, testNow.AddDate(0, 1, 0), payment.BillingPeriod.EndDate)
}

func TestPaymentService_RecordPayment_InvalidAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.RecordPayment(context.Background(), uuid.New(), usecase.RecordPaymentInput{CustomerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_RecordPayment_InvalidMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.RecordPayment(context.Background(), uuid.New(), usecase.RecordPaymentInput{
		CustomerID: uuid.New(),
		Amount:     100,
		Method:     "cheque",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_RecordPayment_DuplicateReceipt(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)

	fx.runInTx()
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.paymentRepo.EXPECT().CountPaymentsByVendor(ctx, vendorID).Return(int64(0), nil)
	fx.paymentRepo.EXPECT().CreatePayment(ctx, mock.Anything).Return(errors.WithStack(repository.ErrDuplicateReceipt))

	_, err := fx.service.RecordPayment(ctx, vendorID, usecase.RecordPaymentInput{CustomerID: customer.ID, Amount: 500})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestPaymentService_RecordPayment_CustomerOfOtherVendor(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	customer := testCustomer(uuid.New())

	fx.runInTx()
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)

	_, err := fx.service.RecordPayment(ctx, uuid.New(), usecase.RecordPaymentInput{CustomerID: customer.ID, Amount: 500})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_GetStats(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendor := testVendor()
	vendor.TotalRevenue = 125000
	from, to := entity.MonthRange(testNow)

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.paymentRepo.EXPECT().SumCompleted(ctx, vendor.ID, from, to).Return(&repository.PaymentTotals{PaidCustomers: 12, Revenue: 36000}, nil)
	fx.customerRepo.EXPECT().SummarizeUnpaid(ctx, vendor.ID).Return(&repository.UnpaidSummary{TotalUnpaid: 4}, nil)

	stats, err := fx.service.GetStats(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PaymentStats{
		PaidCustomers:   12,
		PendingPayments: 4,
		MonthlyRevenue:  36000,
		TotalRevenue:    125000,
	}, stats)
}

func TestPaymentService_ListPayments_MonthAndMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)
	payment := &entity.Payment{ID: uuid.New(), VendorID: vendorID, CustomerID: customer.ID, Amount: 3000, Method: entity.PaymentUPI}

	fx.paymentRepo.EXPECT().
		ListPayments(ctx, repository.PaymentFilter{
			VendorID: vendorID,
			Status:   entity.PaymentCompleted,
			Method:   entity.PaymentUPI,
			From:     time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			To:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			Page:     entity.PageQuery{Page: 1, Limit: 10},
		}).
		Return([]*entity.Payment{payment}, int64(1), nil)
	fx.customerRepo.EXPECT().FindCustomersByIDs(ctx, []uuid.UUID{customer.ID}).Return([]*entity.Customer{customer}, nil)

	list, err := fx.service.ListPayments(ctx, vendorID, usecase.PaymentListQuery{Month: "February 2025", Method: "UPI"})
	require.NoError(t, err)
	require.Len(t, list.Payments, 1)
	assert.Equal(t, "Asha Rao", list.Payments[0].CustomerName)
	assert.Equal(t, "A3 Hostel, Room 214", list.Payments[0].CustomerLocation)
}

func TestPaymentService_ListPayments_BadMonth(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.ListPayments(context.Background(), uuid.New(), usecase.PaymentListQuery{Month: "2025-02"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_GetReceipt(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendor := testVendor()
	customer := testCustomer(vendor.ID)
	payment := &entity.Payment{
		ID:            uuid.New(),
		VendorID:      vendor.ID,
		CustomerID:    customer.ID,
		Amount:        3000,
		Method:        entity.PaymentCash,
		ReceiptNumber: "TT17000000000001",
		BillingPeriod: entity.BillingPeriodFrom(testNow, ""),
	}

	fx.paymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)

	receipt, err := fx.service.GetReceipt(ctx, vendor.ID, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/A", receipt.TransactionID)
	assert.Equal(t, "Annapurna Tiffins", receipt.VendorName)
	assert.Equal(t, "TT17000000000001", receipt.ReceiptNumber)
}

func TestPaymentService_GetReceipt_OtherVendor(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	payment := &entity.Payment{ID: uuid.New(), VendorID: uuid.New()}

	fx.paymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)

	_, err := fx.service.GetReceipt(ctx, uuid.New(), payment.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_MarkOverdue(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)
	customer.RecordPayment(testNow)
	payment := &entity.Payment{ID: uuid.New(), VendorID: vendorID, CustomerID: customer.ID}

	fx.paymentRepo.EXPECT().FindPaymentByID(ctx, payment.ID).Return(payment, nil)
	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	updated, err := fx.service.MarkOverdue(ctx, vendorID, payment.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerOverdue, updated.PaymentStatus)
	assert.Equal(t, 5, updated.OverdueDays)
}

func TestPaymentService_ExportPayments(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	customer := testCustomer(vendorID)
	payment := &entity.Payment{
		ID:            uuid.New(),
		VendorID:      vendorID,
		CustomerID:    customer.ID,
		Amount:        3000,
		Method:        entity.PaymentCard,
		ReceiptNumber: "TT1",
		BillingPeriod: entity.BillingPeriodFrom(testNow, ""),
	}

	fx.paymentRepo.EXPECT().
		ListPayments(ctx, mock.MatchedBy(func(f repository.PaymentFilter) bool {
			return f.Unpaged && f.From.Month() == time.March
		})).
		Return([]*entity.Payment{payment}, int64(1), nil)
	fx.customerRepo.EXPECT().FindCustomersByIDs(ctx, []uuid.UUID{customer.ID}).Return([]*entity.Customer{customer}, nil)
	fx.exporter.EXPECT().
		WritePayments(mock.Anything, mock.Anything).
		RunAndReturn(func(w io.Writer, rows []service.PaymentExportRow) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "March 2025", rows[0].BillingMonth)
			assert.Equal(t, "card", rows[0].Method)
			_, err := w.Write([]byte("xlsx"))

			return err
		})
	fx.exporter.EXPECT().FileExtension().Return(".xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	export, err := fx.service.ExportPayments(ctx, vendorID, usecase.PaymentListQuery{Month: "March 2025"})
	require.NoError(t, err)
	assert.Equal(t, "payments-2025-03.xlsx", export.FileName)
	assert.Equal(t, []byte("xlsx"), export.Data)
}
