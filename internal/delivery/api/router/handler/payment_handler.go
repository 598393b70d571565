package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

// PaymentHandler serves the vendor's income ledger.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

// ListPaymentsQuery filters completed payments. Month uses the "January 2006" layout.
type ListPaymentsQuery struct {
	Month  string `query:"month"`
	Method string `query:"method" validate:"omitempty,oneof=cash upi card bank_transfer"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

type RecordPaymentRequest struct {
	CustomerID    string  `json:"customerId" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=cash upi card bank_transfer"`
	BillingPeriod string  `json:"billingPeriod"`
	TransactionID string  `json:"transactionId" validate:"max=100"`
}

type MarkOverdueRequest struct {
	Days int `json:"days"`
}

func (q ListPaymentsQuery) toInput() usecase.PaymentListQuery {
	return usecase.PaymentListQuery{
		Month:  q.Month,
		Method: q.Method,
		Page:   entity.PageQuery{Page: q.Page, Limit: q.Limit},
	}
}

func (h *PaymentHandler) GetStats(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	stats, err := h.paymentUC.GetStats(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListPayments returns completed payments, newest first.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListPaymentsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	list, err := h.paymentUC.ListPayments(c.Request().Context(), principal.ID, query.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

func (h *PaymentHandler) GetReceipt(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	receipt, err := h.paymentUC.GetReceipt(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt)
}

// RecordPayment stores a completed payment and marks the customer paid.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req RecordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.paymentUC.RecordPayment(c.Request().Context(), principal.ID, usecase.RecordPaymentInput{
		CustomerID:    uuid.MustParse(req.CustomerID),
		Amount:        req.Amount,
		Method:        entity.PaymentMethod(req.PaymentMethod),
		BillingPeriod: req.BillingPeriod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment recorded successfully")
}

// MarkOverdue flags the customer behind a payment as overdue.
func (h *PaymentHandler) MarkOverdue(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req MarkOverdueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.paymentUC.MarkOverdue(c.Request().Context(), principal.ID, id, req.Days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer marked as overdue")
}

// ExportPayments downloads the filtered payments as a spreadsheet.
func (h *PaymentHandler) ExportPayments(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListPaymentsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	export, err := h.paymentUC.ExportPayments(c.Request().Context(), principal.ID, query.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, export.FileName, export.ContentType, export.Data)
}
