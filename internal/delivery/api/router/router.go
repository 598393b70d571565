// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tiffin/internal/delivery/api/middleware"
	"tiffin/internal/delivery/api/router/handler"
	"tiffin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler                *handler.AuthHandler
	StudentHandler             *handler.StudentHandler
	SubscriptionHandler        *handler.SubscriptionHandler
	SubscriptionRequestHandler *handler.SubscriptionRequestHandler
	HolidayHandler             *handler.HolidayHandler
	VendorHandler              *handler.VendorHandler
	OrderHandler               *handler.OrderHandler
	NotificationHandler        *handler.NotificationHandler
	MessageHandler             *handler.MessageHandler
	PaymentHandler             *handler.PaymentHandler
	CustomerHandler            *handler.CustomerHandler
	AnnouncementHandler        *handler.AnnouncementHandler
	DeviceHandler              *handler.DeviceHandler
	AuthMiddleware             *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	authenticated := r.AuthMiddleware.Authenticate
	student := r.AuthMiddleware.RequireRole(entity.RoleStudent)
	vendor := r.AuthMiddleware.RequireRole(entity.RoleVendor)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register/student", r.AuthHandler.RegisterStudent)
		authGroup.POST("/register/vendor", r.AuthHandler.RegisterVendor)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.GET("/me", r.AuthHandler.Me, authenticated)
		authGroup.PUT("/profile", r.AuthHandler.UpdateProfile, authenticated, student)
		authGroup.PUT("/change-password", r.AuthHandler.ChangePassword, authenticated)
	}

	studentsGroup := api.Group("/students", authenticated, student)
	{
		studentsGroup.GET("/profile", r.StudentHandler.GetProfile)
		studentsGroup.GET("/dashboard", r.StudentHandler.GetDashboard)
		studentsGroup.PUT("/settings", r.StudentHandler.UpdateSettings)
	}

	subscriptionsGroup := api.Group("/subscriptions", authenticated)
	{
		// Requests come first so the static segments are not read as an :id.
		subscriptionsGroup.GET("/requests", r.SubscriptionRequestHandler.ListVendorRequests, vendor)
		subscriptionsGroup.POST("/requests", r.SubscriptionRequestHandler.CreateRequest, student)
		subscriptionsGroup.POST("/requests/qr", r.SubscriptionRequestHandler.CreateRequestFromQR, student)
		subscriptionsGroup.GET("/requests/my", r.SubscriptionRequestHandler.ListStudentRequests, student)
		subscriptionsGroup.POST("/requests/:id/accept", r.SubscriptionRequestHandler.AcceptRequest, vendor)
		subscriptionsGroup.POST("/requests/:id/reject", r.SubscriptionRequestHandler.RejectRequest, vendor)

		subscriptionsGroup.POST("/create", r.SubscriptionHandler.CreateSubscription, student)
		subscriptionsGroup.GET("/user", r.SubscriptionHandler.ListSubscriptions, student)
		subscriptionsGroup.GET("", r.SubscriptionHandler.ListSubscriptions, student)
		subscriptionsGroup.GET("/:id", r.SubscriptionHandler.GetSubscription, student)
		subscriptionsGroup.POST("/:id/pause", r.SubscriptionHandler.PauseSubscription, student)
		subscriptionsGroup.POST("/:id/resume", r.SubscriptionHandler.ResumeSubscription, student)
		subscriptionsGroup.POST("/:id/cancel", r.SubscriptionHandler.CancelSubscription, student)
	}

	holidaysGroup := api.Group("/holidays", authenticated)
	{
		holidaysGroup.GET("/check", r.HolidayHandler.CheckHoliday)
		holidaysGroup.GET("/vendor", r.HolidayHandler.ListVendorHolidays, vendor)
		holidaysGroup.POST("/vendor", r.HolidayHandler.CreateVendorHoliday, vendor)
		holidaysGroup.PUT("/vendor/:id", r.HolidayHandler.UpdateVendorHoliday, vendor)
		holidaysGroup.DELETE("/vendor/:id", r.HolidayHandler.DeleteVendorHoliday, vendor)

		holidaysGroup.GET("", r.HolidayHandler.ListHolidays, student)
		holidaysGroup.GET("/month/:year/:month", r.HolidayHandler.ListMonth, student)
		holidaysGroup.POST("", r.HolidayHandler.CreateHolidays, student)
		holidaysGroup.PUT("/:id", r.HolidayHandler.UpdateHoliday, student)
		holidaysGroup.DELETE("/:id", r.HolidayHandler.DeleteHoliday, student)
	}

	vendorsGroup := api.Group("/vendors")
	{
		vendorsGroup.GET("/list", r.VendorHandler.ListVendors)
		vendorsGroup.GET("/me", r.VendorHandler.GetOwnProfile, authenticated, vendor)
		vendorsGroup.PUT("/me", r.VendorHandler.UpdateOwnProfile, authenticated, vendor)
		vendorsGroup.GET("/me/qr", r.SubscriptionRequestHandler.VendorQRCode, authenticated, vendor)
		vendorsGroup.GET("/dashboard/stats", r.VendorHandler.GetDashboardStats, authenticated, vendor)
		vendorsGroup.GET("/:id", r.VendorHandler.GetPublicProfile)
	}

	ordersGroup := api.Group("/orders", authenticated)
	{
		ordersGroup.POST("", r.OrderHandler.CreateOrder, vendor)
		ordersGroup.PATCH("/:id/status", r.OrderHandler.UpdateOrderStatus, vendor)
		ordersGroup.GET("/location-breakdown", r.OrderHandler.GetLocationBreakdown, vendor)
		ordersGroup.GET("/today", r.OrderHandler.GetTodaySummary, vendor)
		ordersGroup.GET("/extra", r.OrderHandler.GetExtraSummary, vendor)
		ordersGroup.GET("/rejected", r.OrderHandler.ListRejectedOrders, vendor)

		ordersGroup.GET("/my", r.OrderHandler.ListStudentOrders, student)
		ordersGroup.POST("/:id/cancel", r.OrderHandler.CancelStudentOrder, student)
	}

	notificationsGroup := api.Group("/notifications", authenticated)
	{
		notificationsGroup.GET("", r.NotificationHandler.ListNotifications)
		notificationsGroup.GET("/categories", r.NotificationHandler.GetCategories)
		notificationsGroup.PUT("/read-all", r.NotificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", r.NotificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.NotificationHandler.DeleteNotification)
		notificationsGroup.DELETE("", r.NotificationHandler.ClearRead)
	}

	messagesGroup := api.Group("/messages", authenticated)
	{
		messagesGroup.POST("", r.MessageHandler.SendMessage)
		messagesGroup.GET("/threads", r.MessageHandler.ListThreads)
		messagesGroup.GET("/threads/:threadId", r.MessageHandler.GetThread)
		messagesGroup.PUT("/:id/read", r.MessageHandler.MarkMessageRead)
	}

	paymentsGroup := api.Group("/payments", authenticated, vendor)
	{
		paymentsGroup.GET("/stats", r.PaymentHandler.GetStats)
		paymentsGroup.GET("/export", r.PaymentHandler.ExportPayments)
		paymentsGroup.GET("", r.PaymentHandler.ListPayments)
		paymentsGroup.POST("", r.PaymentHandler.RecordPayment)
		paymentsGroup.GET("/:id/receipt", r.PaymentHandler.GetReceipt)
		paymentsGroup.PATCH("/:id/overdue", r.PaymentHandler.MarkOverdue)
	}

	customersGroup := api.Group("/customers", authenticated, vendor)
	{
		customersGroup.GET("", r.CustomerHandler.ListCustomers)
		customersGroup.POST("", r.CustomerHandler.CreateCustomer)
		customersGroup.GET("/paid", r.CustomerHandler.ListPaidCustomers)
		customersGroup.GET("/unpaid", r.CustomerHandler.ListUnpaidCustomers)
		customersGroup.POST("/:id/send-reminder", r.CustomerHandler.SendReminder)
	}

	announcementsGroup := api.Group("/announcements", authenticated, vendor)
	{
		announcementsGroup.POST("", r.AnnouncementHandler.CreateAnnouncement)
		announcementsGroup.GET("", r.AnnouncementHandler.ListAnnouncements)
		announcementsGroup.GET("/stats", r.AnnouncementHandler.GetStats)
		announcementsGroup.PUT("/:id", r.AnnouncementHandler.UpdateAnnouncement)
		announcementsGroup.DELETE("/:id", r.AnnouncementHandler.DeleteAnnouncement)
	}

	devicesGroup := api.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}
}
