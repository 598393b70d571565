package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the vendor's customer ledger.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

type ListCustomersQuery struct {
	Search   string `query:"search" validate:"max=100"`
	Location string `query:"location"`
	Status   string `query:"status" validate:"omitempty,oneof=all paid pending overdue"`
	Page     int    `query:"page" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0"`
}

type CreateCustomerRequest struct {
	Name          string                  `json:"name" validate:"required,max=100"`
	Phone         string                  `json:"phone" validate:"required"`
	Email         string                  `json:"email" validate:"omitempty,email"`
	Location      entity.DeliveryLocation `json:"location"`
	PlanType      string                  `json:"planType"`
	MonthlyAmount float64                 `json:"monthlyAmount" validate:"gte=0"`
	StudentID     string                  `json:"studentId" validate:"omitempty,uuid"`
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListCustomersQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	list, err := h.customerUC.ListCustomers(c.Request().Context(), principal.ID, usecase.CustomerListQuery{
		Search:   query.Search,
		Location: query.Location,
		Status:   query.Status,
		Page:     entity.PageQuery{Page: query.Page, Limit: query.Limit},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

// CreateCustomer adds a walk-in customer that did not come through a request.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	studentID, err := optionalID("studentId", req.StudentID)
	if err != nil {
		return err
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), principal.ID, usecase.CreateCustomerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Location:      req.Location,
		PlanType:      req.PlanType,
		MonthlyAmount: req.MonthlyAmount,
		StudentID:     studentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer added successfully")
}

func (h *CustomerHandler) ListPaidCustomers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	list, err := h.customerUC.ListPaidCustomers(c.Request().Context(), principal.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

func (h *CustomerHandler) ListUnpaidCustomers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	list, err := h.customerUC.ListUnpaidCustomers(c.Request().Context(), principal.ID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

// SendReminder nudges the customer about an outstanding payment.
func (h *CustomerHandler) SendReminder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customerUC.SendReminder(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Payment reminder sent")
}
