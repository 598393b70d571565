package handler

import (
	"net/http"
	"time"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HolidayHandlerParams holds dependencies for HolidayHandler, injected by Fx.
type HolidayHandlerParams struct {
	fx.In

	HolidayUC       usecase.HolidayUsecase
	VendorHolidayUC usecase.VendorHolidayUsecase
}

// HolidayHandler serves student skip days and vendor closures.
type HolidayHandler struct {
	holidayUC       usecase.HolidayUsecase
	vendorHolidayUC usecase.VendorHolidayUsecase
}

// NewHolidayHandler is the constructor for HolidayHandler.
func NewHolidayHandler(params HolidayHandlerParams) *HolidayHandler {
	return &HolidayHandler{
		holidayUC:       params.HolidayUC,
		vendorHolidayUC: params.VendorHolidayUC,
	}
}

// CreateHolidayRequest accepts a single date or a list of dates.
type CreateHolidayRequest struct {
	VendorID    string   `json:"vendorId" validate:"omitempty,uuid"`
	Date        string   `json:"date"`
	Dates       []string `json:"dates"`
	ServiceType string   `json:"serviceType" validate:"omitempty,oneof=lunch dinner both"`
	Reason      string   `json:"reason" validate:"max=200"`
}

type UpdateHolidayRequest struct {
	Date        string  `json:"date"`
	ServiceType *string `json:"serviceType" validate:"omitempty,oneof=lunch dinner both"`
	Reason      *string `json:"reason" validate:"omitempty,max=200"`
}

type MonthParams struct {
	Year  int `param:"year" validate:"min=2000,max=2100"`
	Month int `param:"month" validate:"min=1,max=12"`
}

type VendorHolidayRequest struct {
	Date        string             `json:"date"`
	Type        string             `json:"type"`
	Description *string            `json:"description" validate:"omitempty,max=500"`
	Recurring   *entity.Recurrence `json:"recurring"`
}

type CheckHolidayQuery struct {
	Date     string `query:"date" validate:"required"`
	VendorID string `query:"vendorId" validate:"omitempty,uuid"`
}

// ListHolidays returns all of the student's holidays, date ascending.
func (h *HolidayHandler) ListHolidays(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	holidays, err := h.holidayUC.ListHolidays(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, holidays)
}

// ListMonth returns the holidays within one calendar month.
func (h *HolidayHandler) ListMonth(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var params MonthParams
	if err := echo.PathParamsBinder(c).
		Int("year", &params.Year).
		Int("month", &params.Month).
		BindError(); err != nil {
		return domainerrors.NewValidationError("Invalid year or month")
	}

	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	holidays, err := h.holidayUC.ListMonth(c.Request().Context(), principal.ID, params.Year, time.Month(params.Month))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, holidays)
}

// CreateHolidays schedules one holiday per date. Some dates may fail while others succeed.
func (h *HolidayHandler) CreateHolidays(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateHolidayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	raw := req.Dates
	if len(raw) == 0 && req.Date != "" {
		raw = []string{req.Date}
	}

	dates := make([]time.Time, 0, len(raw))
	verr := domainerrors.NewValidationError("")
	for _, value := range raw {
		date, err := entity.ParseDate(value)
		if err != nil {
			verr.Add("dates", value+" is not a date in YYYY-MM-DD format")

			continue
		}
		dates = append(dates, date)
	}
	if len(verr.Fields()) > 0 {
		return verr
	}

	vendorID, err := optionalID("vendorId", req.VendorID)
	if err != nil {
		return err
	}

	serviceType := entity.ServiceType(req.ServiceType)
	if serviceType == "" {
		serviceType = entity.ServiceBoth
	}

	result, err := h.holidayUC.CreateHolidays(c.Request().Context(), principal.ID, usecase.CreateHolidayInput{
		VendorID:    vendorID,
		Dates:       dates,
		ServiceType: serviceType,
		Reason:      req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if len(result.Errors) > 0 {
		return response.Partial(c, http.StatusCreated, result, "Some holidays could not be scheduled")
	}

	return response.Success(c, http.StatusCreated, result, "Holidays scheduled successfully")
}

func (h *HolidayHandler) UpdateHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateHolidayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	input := usecase.UpdateHolidayInput{Date: date, Reason: req.Reason}
	if req.ServiceType != nil {
		serviceType := entity.ServiceType(*req.ServiceType)
		input.ServiceType = &serviceType
	}

	holiday, err := h.holidayUC.UpdateHoliday(c.Request().Context(), principal.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, holiday, "Holiday updated successfully")
}

func (h *HolidayHandler) DeleteHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.holidayUC.DeleteHoliday(c.Request().Context(), principal.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Holiday deleted successfully")
}

// ListVendorHolidays returns the vendor's closures with their calendar rendering.
func (h *HolidayHandler) ListVendorHolidays(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	calendar, err := h.vendorHolidayUC.ListVendorHolidays(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, calendar)
}

// CheckHoliday tells whether a vendor is closed on a date. Vendors check themselves, students pass vendorId.
func (h *HolidayHandler) CheckHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var query CheckHolidayQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	date, err := optionalDate("date", query.Date)
	if err != nil {
		return err
	}

	vendorID := principal.ID
	if principal.Role != entity.RoleVendor {
		id, err := optionalID("vendorId", query.VendorID)
		if err != nil {
			return err
		}
		if id == nil {
			return domainerrors.NewValidationError("").Add("vendorId", "is required")
		}
		vendorID = *id
	}

	check, err := h.vendorHolidayUC.CheckHoliday(c.Request().Context(), vendorID, *date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, check)
}

func (h *HolidayHandler) CreateVendorHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req VendorHolidayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	input := usecase.CreateVendorHolidayInput{
		Type:      entity.VendorHolidayType(req.Type),
		Recurring: req.Recurring,
	}
	if date != nil {
		input.Date = *date
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	holiday, err := h.vendorHolidayUC.CreateVendorHoliday(c.Request().Context(), principal.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, holiday, "Holiday added successfully")
}

func (h *HolidayHandler) UpdateVendorHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req VendorHolidayRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	input := usecase.UpdateVendorHolidayInput{
		Date:        date,
		Description: req.Description,
		Recurring:   req.Recurring,
	}
	if req.Type != "" {
		holidayType := entity.VendorHolidayType(req.Type)
		input.Type = &holidayType
	}

	holiday, err := h.vendorHolidayUC.UpdateVendorHoliday(c.Request().Context(), principal.ID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, holiday, "Holiday updated successfully")
}

func (h *HolidayHandler) DeleteVendorHoliday(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.vendorHolidayUC.DeleteVendorHoliday(c.Request().Context(), principal.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Holiday deleted successfully")
}
