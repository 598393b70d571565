package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiffin/internal/delivery/api/middleware"
	"tiffin/internal/delivery/api/router/handler"
	"tiffin/internal/delivery/api/validator"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	mockSvc "tiffin/internal/mocks/service"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo           *echo.Echo
	tokenSvc       *mockSvc.MockTokenService
	paymentUC      *mockUsecase.MockPaymentUsecase
	vendorUC       *mockUsecase.MockVendorUsecase
	requestUC      *mockUsecase.MockSubscriptionRequestUsecase
	announcementUC *mockUsecase.MockAnnouncementUsecase
}

func newRouterFixtures(t *testing.T) routerFixtures {
	logger := slog.New(slog.DiscardHandler)
	fx := routerFixtures{
		echo:           echo.New(),
		tokenSvc:       mockSvc.NewMockTokenService(t),
		paymentUC:      mockUsecase.NewMockPaymentUsecase(t),
		vendorUC:       mockUsecase.NewMockVendorUsecase(t),
		requestUC:      mockUsecase.NewMockSubscriptionRequestUsecase(t),
		announcementUC: mockUsecase.NewMockAnnouncementUsecase(t),
	}
	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		StudentHandler:      handler.NewStudentHandler(handler.StudentHandlerParams{StudentUC: mockUsecase.NewMockStudentUsecase(t)}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t)}),
		SubscriptionRequestHandler: handler.NewSubscriptionRequestHandler(handler.SubscriptionRequestHandlerParams{
			RequestUC: fx.requestUC,
		}),
		HolidayHandler: handler.NewHolidayHandler(handler.HolidayHandlerParams{
			HolidayUC:       mockUsecase.NewMockHolidayUsecase(t),
			VendorHolidayUC: mockUsecase.NewMockVendorHolidayUsecase(t),
		}),
		VendorHandler:       handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: fx.vendorUC}),
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t)}),
		MessageHandler:      handler.NewMessageHandler(handler.MessageHandlerParams{MessageUC: mockUsecase.NewMockMessageUsecase(t)}),
		PaymentHandler:      handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: fx.paymentUC}),
		CustomerHandler:     handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: mockUsecase.NewMockCustomerUsecase(t)}),
		AnnouncementHandler: handler.NewAnnouncementHandler(handler.AnnouncementHandlerParams{AnnouncementUC: fx.announcementUC}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(fx.tokenSvc),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) login(token string, role entity.Role) uuid.UUID {
	id := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: id, Role: role.String()}, nil)

	return id
}

func (fx routerFixtures) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	fx := newRouterFixtures(t)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/health", "").Code)
}

func TestRouter_MissingToken(t *testing.T) {
	fx := newRouterFixtures(t)

	rec := fx.do(http.MethodGet, "/api/payments/stats", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestRouter_InvalidToken(t *testing.T) {
	fx := newRouterFixtures(t)

	fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	rec := fx.do(http.MethodGet, "/api/payments/stats", "expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestRouter_VendorOnlyRejectsStudent(t *testing.T) {
	fx := newRouterFixtures(t)
	fx.login("student-token", entity.RoleStudent)

	rec := fx.do(http.MethodGet, "/api/payments/stats", "student-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRouter_VendorOnlyAllowsVendor(t *testing.T) {
	fx := newRouterFixtures(t)
	vendorID := fx.login("vendor-token", entity.RoleVendor)

	fx.paymentUC.EXPECT().GetStats(mock.Anything, vendorID).Return(&usecase.PaymentStats{}, nil)

	rec := fx.do(http.MethodGet, "/api/payments/stats", "vendor-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_VendorListIsPublic(t *testing.T) {
	fx := newRouterFixtures(t)

	fx.vendorUC.EXPECT().ListVendors(mock.Anything, mock.Anything).Return(&usecase.VendorListResult{}, nil)

	rec := fx.do(http.MethodGet, "/api/vendors/list", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_StaticSegmentsBeatIDs(t *testing.T) {
	fx := newRouterFixtures(t)
	vendorID := fx.login("vendor-token", entity.RoleVendor)

	fx.requestUC.EXPECT().
		ListVendorRequests(mock.Anything, vendorID, mock.Anything).
		Return(nil, nil)
	fx.announcementUC.EXPECT().
		GetStats(mock.Anything, vendorID).
		Return(&repository.AnnouncementStats{}, nil)

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/subscriptions/requests", "vendor-token").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/announcements/stats", "vendor-token").Code)
}
