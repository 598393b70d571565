package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateOrderInput struct {
	CustomerID          uuid.UUID
	DeliveryDate        time.Time
	MealSlot            entity.MealSlot
	DietType            entity.MealDiet
	Location            *entity.DeliveryLocation
	OrderType           entity.OrderType
	SpecialInstructions string
}

// Location breakdown filters
const (
	BreakdownDietAll    = "all"
	BreakdownDietVeg    = "veg"
	BreakdownDietNonVeg = "nonveg"

	BreakdownPeriodToday = "today"
	BreakdownPeriodExtra = "extra"
)

// LocationBreakdownQuery selects the orders counted per hostel.
type LocationBreakdownQuery struct {
	Date     time.Time
	DietType string
	Period   string
}

// MealCounts splits an order count by diet.
type MealCounts struct {
	Veg    int64 `json:"veg"`
	NonVeg int64 `json:"nonveg"`
	Total  int64 `json:"total"`
}

// LocationCounts is the order count of one delivery zone.
type LocationCounts struct {
	Location string        `json:"location"`
	Label    string        `json:"label"`
	Counts   MealCounts    `json:"counts"`
	Hostel   entity.Hostel `json:"-"`
}

type LocationBreakdown struct {
	Date      string           `json:"date"`
	DietType  string           `json:"dietType"`
	Period    string           `json:"period"`
	Locations []LocationCounts `json:"locations"`
	Totals    MealCounts       `json:"totals"`
}

// RejectedOrderView is a rejected order in the vendor's rejection log.
type RejectedOrderView struct {
	*entity.Order
	DisplayID  string    `json:"displayId"`
	Reason     string    `json:"reason"`
	RejectedBy string    `json:"rejectedBy"`
	RejectedAt time.Time `json:"rejectedAt"`
}

// OrderUsecase covers vendor fulfilment and student order views.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, vendorID uuid.UUID, input CreateOrderInput) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error)
	GetLocationBreakdown(ctx context.Context, vendorID uuid.UUID, query LocationBreakdownQuery) (*LocationBreakdown, error)

	// GetTodaySummary counts today's orders of one type by diet.
	GetTodaySummary(ctx context.Context, vendorID uuid.UUID, orderType entity.OrderType) (*MealCounts, error)

	ListRejectedOrders(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]*RejectedOrderView, error)

	// ListStudentOrders lists orders delivered in [from, to). Zero bounds are open.
	ListStudentOrders(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]*entity.Order, error)

	CancelStudentOrder(ctx context.Context, studentID, orderID uuid.UUID) (*entity.Order, error)
}
