package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errPendingRequestExists = domainerrors.ErrConflict.WithMessage("A pending request to this vendor already exists")

type subscriptionRequestService struct {
	txManager     repository.TransactionManager
	requestRepo   repository.SubscriptionRequestRepository
	vendorRepo    repository.VendorRepository
	studentRepo   repository.StudentRepository
	qrcodeService service.QRCodeService
	events        eventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// SubscriptionRequestServiceParams holds dependencies for SubscriptionRequestService, injected by Fx.
type SubscriptionRequestServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	RequestRepo   repository.SubscriptionRequestRepository
	VendorRepo    repository.VendorRepository
	StudentRepo   repository.StudentRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewSubscriptionRequestService creates a new subscription request service instance
func NewSubscriptionRequestService(params SubscriptionRequestServiceParams) usecase.SubscriptionRequestUsecase {
	logger := loggerOrDefault(params.Logger)

	return &subscriptionRequestService{
		txManager:     params.TxManager,
		requestRepo:   params.RequestRepo,
		vendorRepo:    params.VendorRepo,
		studentRepo:   params.StudentRepo,
		qrcodeService: params.QRCodeService,
		events:        eventPublisher{publisher: params.Publisher, logger: logger},
		logger:        logger,
		now:           systemClock,
	}
}

func (s *subscriptionRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateRequest applies to a vendor chosen from the catalogue.
func (s *subscriptionRequestService) CreateRequest(ctx context.Context, studentID uuid.UUID, input usecase.CreateRequestInput) (*entity.SubscriptionRequest, error) {
	if input.VendorID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidDuration)
	}

	return s.create(ctx, studentID, input.VendorID, input.DurationDays, input.StartDate, input.Message, entity.RequestSourceDirect)
}

// CreateRequestFromQR applies to the vendor encoded in a scanned QR code.
func (s *subscriptionRequestService) CreateRequestFromQR(ctx context.Context, studentID uuid.UUID, input usecase.QRRequestInput) (*entity.SubscriptionRequest, error) {
	vendorID, err := s.qrcodeService.ParseSubscriptionQR(input.QRData)
	if err != nil {
		s.log(ctx).Warn("Rejected QR code", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to parse QR code")
	}

	return s.create(ctx, studentID, vendorID, input.DurationDays, input.StartDate, input.Message, entity.RequestSourceQR)
}

func (s *subscriptionRequestService) create(
	ctx context.Context,
	studentID, vendorID uuid.UUID,
	durationDays int,
	startDate *time.Time,
	message string,
	source entity.RequestSource,
) (*entity.SubscriptionRequest, error) {
	vendor, err := loadSubscribableVendor(ctx, s.vendorRepo, vendorID)
	if err != nil {
		return nil, err
	}

	start, err := validateSubscriptionTerms(vendor, durationDays, startDate, s.now())
	if err != nil {
		return nil, err
	}

	pending, err := s.requestRepo.HasPendingRequest(ctx, studentID, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending requests")
	}
	if pending {
		return nil, errors.WithStack(errPendingRequestExists)
	}

	request := &entity.SubscriptionRequest{
		StudentID:    studentID,
		VendorID:     vendorID,
		DurationDays: durationDays,
		StartDate:    start,
		Message:      message,
		Source:       source,
		Status:       entity.RequestPending,
	}

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription request")
	}

	s.log(ctx).Info("Subscription request created",
		slog.Any("requestID", request.ID),
		slog.Any("vendorID", vendorID),
		slog.String("source", string(source)),
	)

	event := newEvent(service.EventRequestCreated,
		entity.Principal{ID: vendorID, Role: entity.RoleVendor},
		entity.NotifySubscription,
		"New subscription request",
		fmt.Sprintf("A student asked for a %d day subscription", durationDays),
	)
	event.ActionURL = "/subscriptions/requests"
	event.Data["request_id"] = request.ID.String()
	s.events.publish(ctx, event)

	return request, nil
}

// ListVendorRequests lists the vendor's inbox of requests with applicant details.
func (s *subscriptionRequestService) ListVendorRequests(ctx context.Context, vendorID uuid.UUID, filter string) ([]*usecase.RequestView, error) {
	var status *entity.RequestStatus

	switch filter {
	case "", usecase.RequestFilterAll:
	case usecase.RequestFilterPending, usecase.RequestFilterAccepted, usecase.RequestFilterRejected:
		st := entity.RequestStatus(filter)
		status = &st
	default:
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   "filter",
			Message: "must be one of all, pending, accepted, rejected",
		})
	}

	requests, err := s.requestRepo.FindRequestsByVendor(ctx, vendorID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requests by vendor")
	}

	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.StudentID)
	}

	students, err := s.studentRepo.FindStudentsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find students")
	}

	byID := make(map[uuid.UUID]*entity.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}

	views := make([]*usecase.RequestView, 0, len(requests))
	for _, r := range requests {
		view := &usecase.RequestView{SubscriptionRequest: r}
		if st, ok := byID[r.StudentID]; ok {
			view.StudentName = st.FullName()
			view.StudentEmail = st.Email
			view.StudentPhone = st.Phone
		}
		views = append(views, view)
	}

	return views, nil
}

// ListStudentRequests lists the student's applications with vendor names.
func (s *subscriptionRequestService) ListStudentRequests(ctx context.Context, studentID uuid.UUID) ([]*usecase.RequestView, error) {
	requests, err := s.requestRepo.FindRequestsByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requests by student")
	}

	names := make(map[uuid.UUID]string)
	views := make([]*usecase.RequestView, 0, len(requests))

	for _, r := range requests {
		name, ok := names[r.VendorID]
		if !ok {
			if vendor, err := s.vendorRepo.FindVendorByID(ctx, r.VendorID); err == nil {
				name = vendor.DisplayName()
			}
			names[r.VendorID] = name
		}

		views = append(views, &usecase.RequestView{SubscriptionRequest: r, VendorName: name})
	}

	return views, nil
}

// AcceptRequest creates the subscription, upserts the vendor's customer record
// and records the decision in one transaction.
func (s *subscriptionRequestService) AcceptRequest(ctx context.Context, vendorID, requestID uuid.UUID) (*usecase.RequestDecision, error) {
	request, err := s.loadForDecision(ctx, s.requestRepo, vendorID, requestID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindStudentByID(ctx, request.StudentID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
	}

	now := s.now()
	decision := &usecase.RequestDecision{}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		requestRepo := repos.NewSubscriptionRequestRepository()

		req, err := s.loadForDecision(ctx, requestRepo, vendorID, requestID)
		if err != nil {
			return err
		}

		vendor, err := repos.NewVendorRepository().FindVendorByID(ctx, vendorID)
		if err != nil {
			return mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
		}

		start := req.StartDate
		if start.Before(entity.DateOnly(now)) {
			start = now
		}

		sub := entity.NewSubscription(req.StudentID, vendor, req.DurationDays, start)
		if err := repos.NewSubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}

		customer, err := upsertSubscriberCustomer(ctx, repos.NewCustomerRepository(), vendor, student, sub)
		if err != nil {
			return err
		}

		if err := req.Accept(sub.ID, now); err != nil {
			return errors.WithStack(err)
		}

		if err := requestRepo.SaveDecision(ctx, req); err != nil {
			if errors.Is(err, repository.ErrRequestNotPending) {
				return errors.WithStack(domainerrors.ErrRequestAlreadyDecided)
			}

			return errors.Wrap(err, "failed to save request decision")
		}

		decision.Request = req
		decision.Subscription = sub
		decision.Customer = customer

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Failed to accept subscription request", slog.Any("requestID", requestID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to accept subscription request")
	}

	s.log(ctx).Info("Subscription request accepted",
		slog.Any("requestID", request.ID),
		slog.Any("subscriptionID", decision.Subscription.ID),
	)

	event := newEvent(service.EventSubscriptionCreated,
		entity.Principal{ID: request.StudentID, Role: entity.RoleStudent},
		entity.NotifySubscription,
		"Subscription request accepted",
		fmt.Sprintf("Your %d day subscription starts on %s", decision.Subscription.DurationDays, entity.FormatDate(decision.Subscription.StartDate)),
	)
	event.ActionURL = "/subscriptions/" + decision.Subscription.ID.String()
	event.Important = true
	event.Data["subscription_id"] = decision.Subscription.ID.String()
	event.Data["request_id"] = request.ID.String()
	s.events.publish(ctx, event)

	return decision, nil
}

// upsertSubscriberCustomer makes sure the vendor has a customer record for the
// student, with a payment due for the new subscription.
func upsertSubscriberCustomer(
	ctx context.Context,
	customers repository.CustomerRepository,
	vendor *entity.Vendor,
	student *entity.Student,
	sub *entity.Subscription,
) (*entity.Customer, error) {
	planType := fmt.Sprintf("%d days", sub.DurationDays)

	customer, err := customers.FindCustomerByStudent(ctx, vendor.ID, student.ID)
	switch {
	case err == nil:
		customer.PaymentStatus = entity.CustomerPending
		customer.PlanType = planType
		customer.MonthlyAmount = vendor.Pricing.MonthlyRate
		if err := customers.UpdateCustomer(ctx, customer); err != nil {
			return nil, errors.Wrap(err, "failed to update customer")
		}

		return customer, nil
	case errors.Is(err, repository.ErrCustomerNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find customer by student")
	}

	studentID := student.ID
	customer = &entity.Customer{
		VendorID:      vendor.ID,
		StudentID:     &studentID,
		Name:          student.FullName(),
		Phone:         student.Phone,
		Email:         student.Email,
		Location:      entity.DeliveryLocation{Hostel: entity.HostelOutside},
		PlanType:      planType,
		MonthlyAmount: vendor.Pricing.MonthlyRate,
		PaymentStatus: entity.CustomerPending,
	}

	if err := customers.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// RejectRequest records the vendor's refusal.
func (s *subscriptionRequestService) RejectRequest(ctx context.Context, vendorID, requestID uuid.UUID, reason string) (*entity.SubscriptionRequest, error) {
	request, err := s.loadForDecision(ctx, s.requestRepo, vendorID, requestID)
	if err != nil {
		return nil, err
	}

	if err := request.Reject(reason, s.now()); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := s.requestRepo.SaveDecision(ctx, request); err != nil {
		if errors.Is(err, repository.ErrRequestNotPending) {
			return nil, errors.WithStack(domainerrors.ErrRequestAlreadyDecided)
		}

		return nil, errors.Wrap(err, "failed to save request decision")
	}

	s.log(ctx).Info("Subscription request rejected", slog.Any("requestID", request.ID))

	message := "Your subscription request was declined"
	if reason != "" {
		message += ": " + reason
	}

	event := newEvent(service.EventRequestDecided,
		entity.Principal{ID: request.StudentID, Role: entity.RoleStudent},
		entity.NotifySubscription,
		"Subscription request declined",
		message,
	)
	event.Data["request_id"] = request.ID.String()
	event.Data["status"] = string(request.Status)
	s.events.publish(ctx, event)

	return request, nil
}

func (s *subscriptionRequestService) loadForDecision(
	ctx context.Context,
	repo repository.SubscriptionRequestRepository,
	vendorID, requestID uuid.UUID,
) (*entity.SubscriptionRequest, error) {
	request, err := repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrRequestNotFound, domainerrors.ErrRequestNotFound, "failed to find subscription request")
	}

	if request.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	if request.Status != entity.RequestPending {
		return nil, errors.WithStack(domainerrors.ErrRequestAlreadyDecided)
	}

	return request, nil
}

// VendorQRCode renders the vendor's subscription QR code.
func (s *subscriptionRequestService) VendorQRCode(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	png, err := s.qrcodeService.GenerateSubscriptionQR(vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscription QR")
	}

	return png, nil
}
