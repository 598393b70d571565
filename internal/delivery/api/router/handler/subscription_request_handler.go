package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type SubscriptionRequestHandlerParams struct {
	fx.In

	RequestUC usecase.SubscriptionRequestUsecase
}

// SubscriptionRequestHandler serves students applying to vendors and vendors deciding.
type SubscriptionRequestHandler struct {
	requestUC usecase.SubscriptionRequestUsecase
}

func NewSubscriptionRequestHandler(params SubscriptionRequestHandlerParams) *SubscriptionRequestHandler {
	return &SubscriptionRequestHandler{requestUC: params.RequestUC}
}

type CreateRequestRequest struct {
	VendorID     string `json:"vendorId" validate:"omitempty,uuid"`
	DurationDays int    `json:"durationDays" validate:"max=365"`
	StartDate    string `json:"startDate"`
	Message      string `json:"message" validate:"max=500"`
}

type QRRequestRequest struct {
	QRData       string `json:"qrData" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"max=365"`
	StartDate    string `json:"startDate"`
	Message      string `json:"message" validate:"max=500"`
}

type ListRequestsQuery struct {
	Filter string `query:"filter" validate:"omitempty,oneof=all pending accepted rejected"`
}

type RejectRequestRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// CreateRequest applies to a vendor by id.
func (h *SubscriptionRequestHandler) CreateRequest(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := optionalDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	vendorID, _ := uuid.Parse(req.VendorID)

	request, err := h.requestUC.CreateRequest(c.Request().Context(), principal.ID, usecase.CreateRequestInput{
		VendorID:     vendorID,
		DurationDays: req.DurationDays,
		StartDate:    startDate,
		Message:      req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Subscription request sent")
}

// CreateRequestFromQR applies to the vendor encoded in a scanned QR code.
func (h *SubscriptionRequestHandler) CreateRequestFromQR(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req QRRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := optionalDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	request, err := h.requestUC.CreateRequestFromQR(c.Request().Context(), principal.ID, usecase.QRRequestInput{
		QRData:       req.QRData,
		DurationDays: req.DurationDays,
		StartDate:    startDate,
		Message:      req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Subscription request sent")
}

// ListVendorRequests lists the requests addressed to the vendor.
func (h *SubscriptionRequestHandler) ListVendorRequests(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query ListRequestsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	if query.Filter == "" {
		query.Filter = usecase.RequestFilterAll
	}

	requests, err := h.requestUC.ListVendorRequests(c.Request().Context(), principal.ID, query.Filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ListStudentRequests lists the student's own applications.
func (h *SubscriptionRequestHandler) ListStudentRequests(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListStudentRequests(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *SubscriptionRequestHandler) AcceptRequest(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	decision, err := h.requestUC.AcceptRequest(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decision, "Subscription request accepted")
}

func (h *SubscriptionRequestHandler) RejectRequest(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RejectRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	request, err := h.requestUC.RejectRequest(c.Request().Context(), principal.ID, id, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Subscription request rejected")
}

// VendorQRCode renders the PNG students scan to apply to the vendor.
func (h *SubscriptionRequestHandler) VendorQRCode(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	png, err := h.requestUC.VendorQRCode(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
