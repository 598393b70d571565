package handler

import (
	"net/http"
	"time"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves vendor fulfilment and student order views.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

type CreateOrderRequest struct {
	CustomerID          string                   `json:"customerId" validate:"required,uuid"`
	DeliveryDate        string                   `json:"deliveryDate"`
	MealSlot            string                   `json:"mealSlot" validate:"omitempty,oneof=lunch dinner"`
	DietType            string                   `json:"dietType" validate:"omitempty,oneof=veg nonveg"`
	Location            *entity.DeliveryLocation `json:"location"`
	OrderType           string                   `json:"orderType" validate:"omitempty,oneof=regular extra"`
	SpecialInstructions string                   `json:"specialInstructions" validate:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=pending confirmed prepared out_for_delivery delivered cancelled rejected"`
	RejectionReason string `json:"rejectionReason" validate:"max=500"`
}

type LocationBreakdownQuery struct {
	Date   string `query:"date"`
	Type   string `query:"type" validate:"omitempty,oneof=all veg nonveg"`
	Period string `query:"period" validate:"omitempty,oneof=today extra"`
}

type OrderDateQuery struct {
	Date string `query:"date"`
}

type StudentOrdersQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// CreateOrder books a meal for one of the vendor's customers.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	deliveryDate, err := optionalDate("deliveryDate", req.DeliveryDate)
	if err != nil {
		return err
	}

	input := usecase.CreateOrderInput{
		CustomerID:          uuid.MustParse(req.CustomerID),
		MealSlot:            entity.MealSlot(req.MealSlot),
		DietType:            entity.MealDiet(req.DietType),
		Location:            req.Location,
		OrderType:           entity.OrderType(req.OrderType),
		SpecialInstructions: req.SpecialInstructions,
	}
	if deliveryDate != nil {
		input.DeliveryDate = *deliveryDate
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), principal.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// UpdateOrderStatus moves an order along its fulfilment states.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), principal.ID, id, entity.OrderStatus(req.Status), req.RejectionReason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// GetLocationBreakdown counts the day's orders per delivery zone.
func (h *OrderHandler) GetLocationBreakdown(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query LocationBreakdownQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	date, err := optionalDate("date", query.Date)
	if err != nil {
		return err
	}

	input := usecase.LocationBreakdownQuery{DietType: query.Type, Period: query.Period}
	if date != nil {
		input.Date = *date
	}

	breakdown, err := h.orderUC.GetLocationBreakdown(c.Request().Context(), principal.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown)
}

// GetTodaySummary counts today's regular orders.
func (h *OrderHandler) GetTodaySummary(c echo.Context) error {
	return h.summary(c, entity.OrderTypeRegular)
}

// GetExtraSummary counts today's one-off orders.
func (h *OrderHandler) GetExtraSummary(c echo.Context) error {
	return h.summary(c, entity.OrderTypeExtra)
}

func (h *OrderHandler) summary(c echo.Context, orderType entity.OrderType) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	counts, err := h.orderUC.GetTodaySummary(c.Request().Context(), principal.ID, orderType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts)
}

func (h *OrderHandler) ListRejectedOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query OrderDateQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	date, err := optionalDate("date", query.Date)
	if err != nil {
		return err
	}

	var day time.Time
	if date != nil {
		day = *date
	}

	orders, err := h.orderUC.ListRejectedOrders(c.Request().Context(), principal.ID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListStudentOrders lists the student's orders delivered within [from, to).
func (h *OrderHandler) ListStudentOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query StudentOrdersQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	from, err := optionalDate("from", query.From)
	if err != nil {
		return err
	}

	to, err := optionalDate("to", query.To)
	if err != nil {
		return err
	}

	var fromDay, toDay time.Time
	if from != nil {
		fromDay = *from
	}
	if to != nil {
		toDay = *to
	}

	orders, err := h.orderUC.ListStudentOrders(c.Request().Context(), principal.ID, fromDay, toDay)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) CancelStudentOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelStudentOrder(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}
