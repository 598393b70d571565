package handler

import (
	"net/http"
	"testing"

	"tiffin/internal/domain/entity"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentTestServer(t *testing.T, vendor entity.Principal) (*echo.Echo, *mockUsecase.MockPaymentUsecase) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC})

	e := newTestEcho()
	g := e.Group("/payments", asPrincipal(vendor))
	g.GET("", h.ListPayments)
	g.POST("", h.RecordPayment)
	g.GET("/export", h.ExportPayments)
	g.PATCH("/:id/overdue", h.MarkOverdue)

	return e, paymentUC
}

func TestPaymentHandler_ListPayments_Query(t *testing.T) {
	vendor := testVendor()
	e, paymentUC := newPaymentTestServer(t, vendor)

	paymentUC.EXPECT().
		ListPayments(mock.Anything, vendor.ID, usecase.PaymentListQuery{
			Month:  "January 2026",
			Method: "upi",
			Page:   entity.PageQuery{Page: 2, Limit: 5},
		}).
		Return(&usecase.PaymentList{}, nil)

	rec := doRequest(e, http.MethodGet, "/payments?month=January+2026&method=upi&page=2&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_ListPayments_UnknownMethod(t *testing.T) {
	e, _ := newPaymentTestServer(t, testVendor())

	rec := doRequest(e, http.MethodGet, "/payments?method=cheque", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"method"}, fieldNames(decode(t, rec).Errors))
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	vendor := testVendor()
	customerID := uuid.New()
	e, paymentUC := newPaymentTestServer(t, vendor)

	paymentUC.EXPECT().
		RecordPayment(mock.Anything, vendor.ID, usecase.RecordPaymentInput{
			CustomerID:    customerID,
			Amount:        3000,
			Method:        entity.PaymentMethod("cash"),
			BillingPeriod: "November 2026",
		}).
		Return(&entity.Payment{ID: uuid.New()}, nil)

	rec := doRequest(e, http.MethodPost, "/payments",
		`{"customerId":"`+customerID.String()+`","amount":3000,"paymentMethod":"cash","billingPeriod":"November 2026"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPaymentHandler_RecordPayment_NonPositiveAmount(t *testing.T) {
	e, _ := newPaymentTestServer(t, testVendor())

	rec := doRequest(e, http.MethodPost, "/payments", `{"customerId":"`+uuid.NewString()+`","amount":0,"paymentMethod":"cash"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "amount", env.Errors[0].Field)
	assert.Equal(t, "must be greater than 0", env.Errors[0].Message)
}

func TestPaymentHandler_MarkOverdue(t *testing.T) {
	vendor := testVendor()
	paymentID := uuid.New()
	e, paymentUC := newPaymentTestServer(t, vendor)

	paymentUC.EXPECT().
		MarkOverdue(mock.Anything, vendor.ID, paymentID, 7).
		Return(&entity.Customer{PaymentStatus: entity.CustomerOverdue, OverdueDays: 7}, nil)

	rec := doRequest(e, http.MethodPatch, "/payments/"+paymentID.String()+"/overdue", `{"days":7}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_ExportPayments(t *testing.T) {
	vendor := testVendor()
	e, paymentUC := newPaymentTestServer(t, vendor)

	paymentUC.EXPECT().
		ExportPayments(mock.Anything, vendor.ID, usecase.PaymentListQuery{Month: "March 2026"}).
		Return(&usecase.PaymentExport{
			FileName:    "payments-march-2026.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        []byte("xlsx-bytes"),
		}, nil)

	rec := doRequest(e, http.MethodGet, "/payments/export?month=March+2026", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="payments-march-2026.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}
