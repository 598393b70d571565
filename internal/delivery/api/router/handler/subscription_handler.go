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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
}

// SubscriptionHandler serves the student's subscriptions.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: params.SubscriptionUC}
}

// CreateSubscriptionRequest represents the request body for starting a subscription
type CreateSubscriptionRequest struct {
	VendorID     string `json:"vendorId" validate:"omitempty,uuid"`
	DurationDays int    `json:"durationDays" validate:"max=365"`
	StartDate    string `json:"startDate"`
}

// PauseSubscriptionRequest represents the request body for pausing a subscription
type PauseSubscriptionRequest struct {
	PauseDate  string `json:"pauseDate"`
	ResumeDate string `json:"resumeDate"`
	Reason     string `json:"reason" validate:"max=200"`
	Notes      string `json:"notes" validate:"max=500"`
}

// CreateSubscription starts a subscription directly with a vendor.
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req CreateSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := optionalDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	// A missing vendor is reported together with the duration by the usecase
	vendorID, _ := uuid.Parse(req.VendorID)

	sub, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), principal.ID, usecase.CreateSubscriptionInput{
		VendorID:     vendorID,
		DurationDays: req.DurationDays,
		StartDate:    startDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sub, "Subscription created successfully")
}

// ListSubscriptions returns the student's subscriptions, newest first.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	subs, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subs)
}

func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.GetSubscription(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub)
}

// PauseSubscription suspends deliveries of an active subscription.
func (h *SubscriptionHandler) PauseSubscription(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PauseSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pauseDate, err := optionalTimestamp("pauseDate", req.PauseDate)
	if err != nil {
		return err
	}

	resumeDate, err := optionalTimestamp("resumeDate", req.ResumeDate)
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.PauseSubscription(c.Request().Context(), principal.ID, id, usecase.PauseSubscriptionInput{
		PauseDate:  pauseDate,
		ResumeDate: resumeDate,
		Reason:     req.Reason,
		Notes:      req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Subscription paused successfully")
}

func (h *SubscriptionHandler) ResumeSubscription(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.ResumeSubscription(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Subscription resumed successfully")
}

func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sub, err := h.subscriptionUC.CancelSubscription(c.Request().Context(), principal.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Subscription cancelled successfully")
}
