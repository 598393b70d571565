package impl

import (
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

type customerService struct {
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	config       *config.Config
	events       eventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	PaymentRepo  repository.PaymentRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	logger := loggerOrDefault(params.Logger)

	return &customerService{
		customerRepo: params.CustomerRepo,
		paymentRepo:  params.PaymentRepo,
		config:       params.Config,
		events:       eventPublisher{publisher: params.Publisher, logger: logger},
		logger:       logger,
		now:          systemClock,
	}
}

func (s *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *customerService) ListCustomers(ctx context.Context, vendorID uuid.UUID, query usecase.CustomerListQuery) (*usecase.CustomerList, error) {
	page := normalizePage(query.Page, s.config, constants.DefaultPageLimit)

	filter := repository.CustomerFilter{
		VendorID: vendorID,
		Search:   strings.TrimSpace(query.Search),
		Page:     page,
	}

	if loc := strings.TrimSpace(query.Location); loc != "" && !strings.EqualFold(loc, "all") {
		filter.Hostel = entity.Hostel(loc)
	}

	switch status := entity.CustomerPaymentStatus(strings.ToLower(query.Status)); status {
	case "", "all":
	case entity.CustomerPaid, entity.CustomerPending, entity.CustomerOverdue:
		filter.Statuses = []entity.CustomerPaymentStatus{status}
	default:
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "status", Message: "must be paid, pending or overdue"})
	}

	customers, total, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return &usecase.CustomerList{
		Customers:  customers,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// CreateCustomer adds a walk-in customer who starts out owing the monthly amount.
func (s *customerService) CreateCustomer(ctx context.Context, vendorID uuid.UUID, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	if input.MonthlyAmount < 0 {
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "monthlyAmount", Message: "must not be negative"})
	}

	customer := &entity.Customer{
		VendorID:      vendorID,
		StudentID:     input.StudentID,
		Name:          strings.TrimSpace(input.Name),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         normalizeEmail(input.Email),
		Location:      input.Location,
		PlanType:      input.PlanType,
		MonthlyAmount: input.MonthlyAmount,
		PaymentStatus: entity.CustomerPending,
	}
	if customer.Location.Hostel == "" {
		customer.Location.Hostel = entity.HostelOutside
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	s.log(ctx).Info("Customer created", slog.Any("customerID", customer.ID), slog.Any("vendorID", vendorID))

	return customer, nil
}

// ListPaidCustomers pages the customers who have at least one completed payment.
func (s *customerService) ListPaidCustomers(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) (*usecase.PaidCustomerList, error) {
	page = normalizePage(page, s.config, constants.DefaultPageLimit)

	ids, total, err := s.paymentRepo.FindPaidCustomerIDs(ctx, vendorID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find paid customers")
	}

	customers := []*entity.Customer{}
	if len(ids) > 0 {
		found, err := s.customerRepo.FindCustomersByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load paid customers")
		}

		customers = orderCustomers(ids, found)
	}

	return &usecase.PaidCustomerList{
		Customers:  customers,
		Pagination: entity.NewPagination(page, total),
		Stats:      usecase.PaidCustomerStats{TotalPaidCustomers: total},
	}, nil
}

// orderCustomers arranges customers in the order of ids, skipping missing ones.
func orderCustomers(ids []uuid.UUID, customers []*entity.Customer) []*entity.Customer {
	byID := make(map[uuid.UUID]*entity.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	out := make([]*entity.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}

	return out
}

func (s *customerService) ListUnpaidCustomers(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) (*usecase.UnpaidCustomerList, error) {
	page = normalizePage(page, s.config, constants.DefaultPageLimit)

	customers, total, err := s.customerRepo.ListCustomers(ctx, repository.CustomerFilter{
		VendorID: vendorID,
		Statuses: []entity.CustomerPaymentStatus{entity.CustomerPending, entity.CustomerOverdue},
		Page:     page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unpaid customers")
	}

	summary, err := s.customerRepo.SummarizeUnpaid(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize unpaid customers")
	}

	return &usecase.UnpaidCustomerList{
		Customers:  customers,
		Pagination: entity.NewPagination(page, total),
		Stats:      usecase.NewUnpaidCustomerStats(summary),
	}, nil
}

// SendReminder counts a payment reminder and notifies the customer's student account.
func (s *customerService) SendReminder(ctx context.Context, vendorID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := loadVendorCustomer(ctx, s.customerRepo, vendorID, customerID)
	if err != nil {
		return nil, err
	}

	customer.RecordReminder(s.now())

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to record reminder")
	}

	s.log(ctx).Info("Payment reminder sent",
		slog.Any("customerID", customer.ID),
		slog.Int("count", customer.Reminder.Count),
	)

	if customer.StudentID != nil {
		event := newEvent(service.EventPaymentReminder,
			entity.Principal{ID: *customer.StudentID, Role: entity.RoleStudent},
			entity.NotifyPayment,
			"Payment reminder",
			fmt.Sprintf("Your payment of ₹%.0f is due", customer.AmountDue()),
		)
		event.Data["customer_id"] = customer.ID.String()
		event.Important = customer.PaymentStatus == entity.CustomerOverdue
		s.events.publish(ctx, event)
	}

	return customer, nil
}

// loadVendorCustomer finds a customer and checks it belongs to the vendor.
func loadVendorCustomer(ctx context.Context, repo repository.CustomerRepository, vendorID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	if customer.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return customer, nil
}
