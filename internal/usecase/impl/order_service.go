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

// liveOrderStatuses are the statuses counted in fulfilment summaries.
var liveOrderStatuses = []entity.OrderStatus{
	entity.OrderPending,
	entity.OrderConfirmed,
	entity.OrderPrepared,
	entity.OrderOutForDelivery,
	entity.OrderDelivered,
}

type orderService struct {
	orderRepo         repository.OrderRepository
	customerRepo      repository.CustomerRepository
	vendorRepo        repository.VendorRepository
	vendorHolidayRepo repository.VendorHolidayRepository
	events            eventPublisher
	logger            *slog.Logger
	now               func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo         repository.OrderRepository
	CustomerRepo      repository.CustomerRepository
	VendorRepo        repository.VendorRepository
	VendorHolidayRepo repository.VendorHolidayRepository
	Publisher         service.EventPublisher
	Logger            *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	logger := loggerOrDefault(params.Logger)

	return &orderService{
		orderRepo:         params.OrderRepo,
		customerRepo:      params.CustomerRepo,
		vendorRepo:        params.VendorRepo,
		vendorHolidayRepo: params.VendorHolidayRepo,
		events:            eventPublisher{publisher: params.Publisher, logger: logger},
		logger:            logger,
		now:               systemClock,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder books a meal for one of the vendor's customers.
func (s *orderService) CreateOrder(ctx context.Context, vendorID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, input.CustomerID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound, "failed to find customer")
	}

	if customer.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrCustomerNotFound)
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
	}

	deliveryDate := entity.DateOnly(s.now())
	if !input.DeliveryDate.IsZero() {
		deliveryDate = entity.DateOnly(input.DeliveryDate)
	}

	holiday, err := findVendorHolidayOn(ctx, s.vendorHolidayRepo, vendorID, deliveryDate)
	if err != nil {
		return nil, err
	}
	if holiday != nil {
		return nil, errors.WithStack(domainerrors.ErrVendorOnHoliday.WithDetails(
			fmt.Sprintf("%s: %s", entity.FormatDate(deliveryDate), holiday.Type)))
	}

	order := &entity.Order{
		VendorID:            vendorID,
		CustomerID:          customer.ID,
		StudentID:           customer.StudentID,
		CustomerName:        customer.Name,
		DeliveryDate:        deliveryDate,
		OrderType:           input.OrderType,
		MealSlot:            input.MealSlot,
		DietType:            input.DietType,
		Location:            customer.Location,
		SpecialInstructions: input.SpecialInstructions,
		Status:              entity.OrderPending,
	}
	if order.OrderType == "" {
		order.OrderType = entity.OrderTypeRegular
	}
	if order.MealSlot == "" {
		order.MealSlot = entity.MealLunch
	}
	if order.DietType == "" {
		order.DietType = entity.MealVeg
	}
	if input.Location != nil {
		order.Location = *input.Location
	}
	order.Price = vendor.MealPrice(order.OrderType, order.DietType)

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := s.vendorRepo.IncrementTotalOrders(ctx, vendorID); err != nil {
		s.log(ctx).Warn("Failed to bump vendor order count", slog.Any("vendorID", vendorID), slog.Any("error", err))
	}

	s.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.String("type", string(order.OrderType)),
		slog.Float64("price", order.Price),
	)

	return order, nil
}

// UpdateOrderStatus moves a vendor's order along its lifecycle.
func (s *orderService) UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.VendorID != vendorID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return s.transition(ctx, order, status, reason, entity.RejectedByVendor)
}

// CancelStudentOrder lets a student call off an order that is not yet cooking.
func (s *orderService) CancelStudentOrder(ctx context.Context, studentID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.StudentID == nil || *order.StudentID != studentID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	if !order.CancellableByStudent() {
		return nil, errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithMessage(
			"Only pending or confirmed orders can be cancelled"))
	}

	return s.transition(ctx, order, entity.OrderCancelled, "", entity.RejectedByCustomer)
}

func (s *orderService) transition(ctx context.Context, order *entity.Order, status entity.OrderStatus, reason string, by entity.RejectedBy) (*entity.Order, error) {
	previous := order.Status

	if err := order.TransitionTo(status, reason, by, s.now()); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, order); err != nil {
		return nil, mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
	}

	s.log(ctx).Info("Order status changed",
		slog.Any("orderID", order.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(order.Status)),
	)

	if by == entity.RejectedByVendor && order.StudentID != nil {
		event := newEvent(service.EventOrderStatusChanged,
			entity.Principal{ID: *order.StudentID, Role: entity.RoleStudent},
			entity.NotifyOrder,
			"Order "+order.DisplayID()+" "+string(order.Status),
			fmt.Sprintf("Your %s order for %s is now %s", order.MealSlot, entity.FormatDate(order.DeliveryDate), order.Status),
		)
		event.Data["order_id"] = order.ID.String()
		event.Data["status"] = string(order.Status)
		event.Important = order.Status == entity.OrderRejected
		s.events.publish(ctx, event)
	}

	return order, nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	return order, nil
}

// GetLocationBreakdown counts the day's orders per delivery zone.
func (s *orderService) GetLocationBreakdown(ctx context.Context, vendorID uuid.UUID, query usecase.LocationBreakdownQuery) (*usecase.LocationBreakdown, error) {
	date := query.Date
	if date.IsZero() {
		date = s.now()
	}

	dietType := query.DietType
	if dietType == "" {
		dietType = usecase.BreakdownDietAll
	}

	period := query.Period
	if period == "" {
		period = usecase.BreakdownPeriodToday
	}

	filter := repository.OrderFilter{VendorID: vendorID, Statuses: liveOrderStatuses}
	filter.From, filter.To = entity.DayRange(date)

	switch period {
	case usecase.BreakdownPeriodToday:
		filter.OrderType = entity.OrderTypeRegular
	case usecase.BreakdownPeriodExtra:
		filter.OrderType = entity.OrderTypeExtra
	default:
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "period", Message: "must be today or extra"})
	}

	switch dietType {
	case usecase.BreakdownDietAll:
	case usecase.BreakdownDietVeg:
		filter.DietType = entity.MealVeg
	case usecase.BreakdownDietNonVeg:
		filter.DietType = entity.MealNonVeg
	default:
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "type", Message: "must be all, veg or nonveg"})
	}

	rows, err := s.orderRepo.CountByLocation(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by location")
	}

	byHostel := make(map[entity.Hostel]*usecase.MealCounts, len(entity.Hostels))
	for _, h := range entity.Hostels {
		byHostel[h] = &usecase.MealCounts{}
	}

	var totals usecase.MealCounts
	for _, row := range rows {
		counts, ok := byHostel[row.Hostel]
		if !ok {
			counts = byHostel[entity.HostelOutside]
		}

		addMealCount(counts, row.DietType, row.Count)
		addMealCount(&totals, row.DietType, row.Count)
	}

	locations := make([]usecase.LocationCounts, 0, len(entity.Hostels))
	for _, h := range entity.Hostels {
		locations = append(locations, usecase.LocationCounts{
			Location: string(h),
			Label:    h.Label(),
			Counts:   *byHostel[h],
			Hostel:   h,
		})
	}

	return &usecase.LocationBreakdown{
		Date:      entity.FormatDate(date),
		DietType:  dietType,
		Period:    period,
		Locations: locations,
		Totals:    totals,
	}, nil
}

func addMealCount(counts *usecase.MealCounts, diet entity.MealDiet, n int64) {
	if diet == entity.MealNonVeg {
		counts.NonVeg += n
	} else {
		counts.Veg += n
	}
	counts.Total += n
}

func (s *orderService) GetTodaySummary(ctx context.Context, vendorID uuid.UUID, orderType entity.OrderType) (*usecase.MealCounts, error) {
	filter := repository.OrderFilter{VendorID: vendorID, OrderType: orderType, Statuses: liveOrderStatuses}
	filter.From, filter.To = entity.DayRange(s.now())

	rows, err := s.orderRepo.CountByLocation(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise today's orders")
	}

	counts := &usecase.MealCounts{}
	for _, row := range rows {
		addMealCount(counts, row.DietType, row.Count)
	}

	return counts, nil
}

// ListRejectedOrders lists rejections, optionally restricted to one delivery date.
func (s *orderService) ListRejectedOrders(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*usecase.RejectedOrderView, error) {
	filter := repository.OrderFilter{VendorID: vendorID, Statuses: []entity.OrderStatus{entity.OrderRejected}}
	if !date.IsZero() {
		filter.From, filter.To = entity.DayRange(date)
	}

	orders, err := s.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rejected orders")
	}

	views := make([]*usecase.RejectedOrderView, 0, len(orders))
	for _, o := range orders {
		view := &usecase.RejectedOrderView{
			Order:      o,
			DisplayID:  o.DisplayID(),
			Reason:     entity.DefaultRejectionReason,
			RejectedBy: string(entity.RejectedByVendor),
			RejectedAt: o.UpdatedAt,
		}
		if o.Rejection != nil {
			view.Reason = o.Rejection.Reason
			view.RejectedBy = string(o.Rejection.RejectedBy)
			view.RejectedAt = o.Rejection.RejectedAt
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *orderService) ListStudentOrders(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrders(ctx, repository.OrderFilter{StudentID: studentID, From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student orders")
	}

	return orders, nil
}
