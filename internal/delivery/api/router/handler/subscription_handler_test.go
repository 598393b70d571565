package handler

import (
	"net/http"
	"testing"

	domainerrors "tiffin/internal/domain/errors"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	student := testStudent()
	vendorID := uuid.New()
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.POST("/subscriptions/create", h.CreateSubscription, asPrincipal(student))

	subUC.EXPECT().
		CreateSubscription(mock.Anything, student.ID, mock.MatchedBy(func(in usecase.CreateSubscriptionInput) bool {
			return in.VendorID == vendorID && in.DurationDays == 30 && in.StartDate == nil
		})).
		Return(&usecase.SubscriptionView{}, nil)

	rec := doRequest(e, http.MethodPost, "/subscriptions/create", `{"vendorId":"`+vendorID.String()+`","durationDays":30}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubscriptionHandler_CreateSubscription_MissingVendor(t *testing.T) {
	student := testStudent()
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.POST("/subscriptions/create", h.CreateSubscription, asPrincipal(student))

	subUC.EXPECT().
		CreateSubscription(mock.Anything, student.ID, usecase.CreateSubscriptionInput{DurationDays: 30}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidDuration))

	rec := doRequest(e, http.MethodPost, "/subscriptions/create", `{"durationDays":30}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DURATION", decode(t, rec).Code)
}

func TestSubscriptionHandler_CreateSubscription_BadStartDate(t *testing.T) {
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.POST("/subscriptions/create", h.CreateSubscription, asPrincipal(testStudent()))

	rec := doRequest(e, http.MethodPost, "/subscriptions/create", `{"vendorId":"`+uuid.NewString()+`","durationDays":30,"startDate":"next week"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"startDate"}, fieldNames(decode(t, rec).Errors))
}

func TestSubscriptionHandler_CreateSubscription_DurationTooLong(t *testing.T) {
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.POST("/subscriptions/create", h.CreateSubscription, asPrincipal(testStudent()))

	rec := doRequest(e, http.MethodPost, "/subscriptions/create", `{"vendorId":"`+uuid.NewString()+`","durationDays":99999999999}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"durationDays"}, fieldNames(decode(t, rec).Errors))
}

func TestSubscriptionHandler_GetSubscription_InvalidID(t *testing.T) {
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.GET("/subscriptions/:id", h.GetSubscription, asPrincipal(testStudent()))

	rec := doRequest(e, http.MethodGet, "/subscriptions/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"id"}, fieldNames(decode(t, rec).Errors))
}

func TestSubscriptionHandler_CancelSubscription_Forbidden(t *testing.T) {
	student := testStudent()
	subID := uuid.New()
	subUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subUC})

	e := newTestEcho()
	e.POST("/subscriptions/:id/cancel", h.CancelSubscription, asPrincipal(student))

	subUC.EXPECT().
		CancelSubscription(mock.Anything, student.ID, subID).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden))

	rec := doRequest(e, http.MethodPost, "/subscriptions/"+subID.String()+"/cancel", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
