package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
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

type paymentService struct {
	txManager    repository.TransactionManager
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	exporter     service.PaymentExporter
	config       *config.Config
	events       eventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PaymentRepo  repository.PaymentRepository
	CustomerRepo repository.CustomerRepository
	VendorRepo   repository.VendorRepository
	Exporter     service.PaymentExporter
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	logger := loggerOrDefault(params.Logger)

	return &paymentService{
		txManager:    params.TxManager,
		paymentRepo:  params.PaymentRepo,
		customerRepo: params.CustomerRepo,
		vendorRepo:   params.VendorRepo,
		exporter:     params.Exporter,
		config:       params.Config,
		events:       eventPublisher{publisher: params.Publisher, logger: logger},
		logger:       logger,
		now:          systemClock,
	}
}

func (s *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetStats combines this month's takings with the outstanding dues.
func (s *paymentService) GetStats(ctx context.Context, vendorID uuid.UUID) (*usecase.PaymentStats, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	from, to := entity.MonthRange(s.now())

	totals, err := s.paymentRepo.SumCompleted(ctx, vendorID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum monthly payments")
	}

	unpaid, err := s.customerRepo.SummarizeUnpaid(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize unpaid customers")
	}

	return &usecase.PaymentStats{
		PaidCustomers:   totals.PaidCustomers,
		PendingPayments: unpaid.TotalUnpaid,
		MonthlyRevenue:  totals.Revenue,
		TotalRevenue:    vendor.TotalRevenue,
	}, nil
}

// paymentFilter turns the month and method parameters into a completed-payment filter.
func paymentFilter(vendorID uuid.UUID, query usecase.PaymentListQuery) (repository.PaymentFilter, error) {
	filter := repository.PaymentFilter{VendorID: vendorID, Status: entity.PaymentCompleted}

	if month := strings.TrimSpace(query.Month); month != "" {
		t, err := time.Parse(entity.BillingPeriodLayout, month)
		if err != nil {
			return filter, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "month", Message: `must look like "January 2025"`})
		}

		filter.From, filter.To = entity.MonthRange(t)
	}

	if method := strings.TrimSpace(query.Method); method != "" && !strings.EqualFold(method, "all") {
		m := entity.PaymentMethod(strings.ToLower(method))
		if !validPaymentMethod(m) {
			return filter, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "method", Message: "must be cash, upi, card or bank_transfer"})
		}

		filter.Method = m
	}

	return filter, nil
}

func validPaymentMethod(m entity.PaymentMethod) bool {
	switch m {
	case entity.PaymentCash, entity.PaymentUPI, entity.PaymentCard, entity.PaymentBankTransfer:
		return true
	default:
		return false
	}
}

func (s *paymentService) ListPayments(ctx context.Context, vendorID uuid.UUID, query usecase.PaymentListQuery) (*usecase.PaymentList, error) {
	filter, err := paymentFilter(vendorID, query)
	if err != nil {
		return nil, err
	}

	filter.Page = normalizePage(query.Page, s.config, constants.DefaultPageLimit)

	payments, total, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	views, err := s.joinCustomers(ctx, payments)
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentList{
		Payments:   views,
		Pagination: entity.NewPagination(filter.Page, total),
	}, nil
}

func (s *paymentService) joinCustomers(ctx context.Context, payments []*entity.Payment) ([]*usecase.PaymentView, error) {
	views := make([]*usecase.PaymentView, 0, len(payments))
	if len(payments) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, 0, len(payments))
	seen := make(map[uuid.UUID]struct{}, len(payments))
	for _, p := range payments {
		if _, ok := seen[p.CustomerID]; !ok {
			seen[p.CustomerID] = struct{}{}
			ids = append(ids, p.CustomerID)
		}
	}

	customers, err := s.customerRepo.FindCustomersByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment customers")
	}

	byID := make(map[uuid.UUID]*entity.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for _, p := range payments {
		view := &usecase.PaymentView{Payment: p}
		if c, ok := byID[p.CustomerID]; ok {
			view.CustomerName = c.Name
			view.CustomerPhone = c.Phone
			view.CustomerLocation = c.Location.String()
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *paymentService) GetReceipt(ctx context.Context, vendorID, paymentID uuid.UUID) (*entity.Receipt, error) {
	payment, err := s.loadOwned(ctx, vendorID, paymentID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, payment.CustomerID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	return entity.NewReceipt(payment, customer, vendor), nil
}

// RecordPayment stores a completed payment, marks the customer paid and adds to the vendor's revenue.
func (s *paymentService) RecordPayment(ctx context.Context, vendorID uuid.UUID, input usecase.RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "amount", Message: "must be greater than 0"})
	}

	method := input.Method
	if method == "" {
		method = entity.PaymentCash
	}
	if !validPaymentMethod(method) {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "paymentMethod", Message: "must be cash, upi, card or bank_transfer"})
	}

	now := s.now()
	var (
		payment  *entity.Payment
		customer *entity.Customer
	)

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		customerRepo := repos.NewCustomerRepository()
		paymentRepo := repos.NewPaymentRepository()

		c, err := loadVendorCustomer(ctx, customerRepo, vendorID, input.CustomerID)
		if err != nil {
			return err
		}

		existing, err := paymentRepo.CountPaymentsByVendor(ctx, vendorID)
		if err != nil {
			return errors.Wrap(err, "failed to count vendor payments")
		}

		p := &entity.Payment{
			VendorID:      vendorID,
			CustomerID:    c.ID,
			Amount:        input.Amount,
			Method:        method,
			Status:        entity.PaymentCompleted,
			PaymentDate:   now,
			TransactionID: strings.TrimSpace(input.TransactionID),
			BillingPeriod: entity.BillingPeriodFrom(now, strings.TrimSpace(input.BillingPeriod)),
			ReceiptNumber: entity.ReceiptNumber(now, existing),
		}

		if err := paymentRepo.CreatePayment(ctx, p); err != nil {
			if errors.Is(err, repository.ErrDuplicateReceipt) {
				return errors.WithStack(domainerrors.ErrConflict.WithMessage("Receipt number already used, please retry"))
			}

			return errors.Wrap(err, "failed to create payment")
		}

		c.RecordPayment(now)
		if err := customerRepo.UpdateCustomer(ctx, c); err != nil {
			return errors.Wrap(err, "failed to mark customer paid")
		}

		if err := repos.NewVendorRepository().AddRevenue(ctx, vendorID, p.Amount); err != nil {
			return errors.Wrap(err, "failed to add vendor revenue")
		}

		payment, customer = p, c

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	s.log(ctx).Info("Payment recorded",
		slog.Any("paymentID", payment.ID),
		slog.String("receipt", payment.ReceiptNumber),
		slog.Float64("amount", payment.Amount),
	)

	if customer.StudentID != nil {
		event := newEvent(service.EventPaymentRecorded,
			entity.Principal{ID: *customer.StudentID, Role: entity.RoleStudent},
			entity.NotifyPayment,
			"Payment received",
			fmt.Sprintf("Payment of ₹%.0f received for %s. Receipt %s", payment.Amount, payment.BillingPeriod.Month, payment.ReceiptNumber),
		)
		event.Data["payment_id"] = payment.ID.String()
		event.Data["receipt_number"] = payment.ReceiptNumber
		s.events.publish(ctx, event)
	}

	return payment, nil
}

// MarkOverdue flags the customer who made the payment. The payment itself is unchanged.
func (s *paymentService) MarkOverdue(ctx context.Context, vendorID, paymentID uuid.UUID, days int) (*entity.Customer, error) {
	payment, err := s.loadOwned(ctx, vendorID, paymentID)
	if err != nil {
		return nil, err
	}

	customer, err := loadVendorCustomer(ctx, s.customerRepo, vendorID, payment.CustomerID)
	if err != nil {
		return nil, err
	}

	customer.MarkOverdue(days)

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to mark customer overdue")
	}

	return customer, nil
}

// ExportPayments renders every matching payment into a spreadsheet.
func (s *paymentService) ExportPayments(ctx context.Context, vendorID uuid.UUID, query usecase.PaymentListQuery) (*usecase.PaymentExport, error) {
	filter, err := paymentFilter(vendorID, query)
	if err != nil {
		return nil, err
	}

	filter.Unpaged = true

	payments, _, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments for export")
	}

	views, err := s.joinCustomers(ctx, payments)
	if err != nil {
		return nil, err
	}

	rows := make([]service.PaymentExportRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, service.PaymentExportRow{
			ReceiptNumber: v.ReceiptNumber,
			PaymentDate:   v.PaymentDate,
			CustomerName:  v.CustomerName,
			CustomerPhone: v.CustomerPhone,
			Location:      v.CustomerLocation,
			Amount:        v.Amount,
			Method:        string(v.Method),
			TransactionID: v.TransactionID,
			BillingMonth:  v.BillingPeriod.Month,
		})
	}

	var buf bytes.Buffer
	if err := s.exporter.WritePayments(&buf, rows); err != nil {
		return nil, errors.Wrap(err, "failed to write payment export")
	}

	period := "all"
	if !filter.From.IsZero() {
		period = filter.From.Format("2006-01")
	}

	return &usecase.PaymentExport{
		FileName:    "payments-" + period + s.exporter.FileExtension(),
		ContentType: s.exporter.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

func (s *paymentService) loadOwned(ctx context.Context, vendorID, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to find payment")
	}

	if payment.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return payment, nil
}
