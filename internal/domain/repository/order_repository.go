package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter selects orders. Zero-valued fields do not filter.
type OrderFilter struct {
	VendorID  uuid.UUID
	StudentID uuid.UUID
	From      time.Time // inclusive delivery date
	To        time.Time // exclusive delivery date
	OrderType entity.OrderType
	DietType  entity.MealDiet
	Statuses  []entity.OrderStatus
}

// LocationCount is an aggregated order count for one hostel and diet.
type LocationCount struct {
	Hostel   entity.Hostel
	DietType entity.MealDiet
	Count    int64
}

// OrderRepository defines order storage and the vendor's aggregate queries.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error

	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus saves status and rejection details.
	UpdateOrderStatus(ctx context.Context, order *entity.Order) error

	// FindOrders lists matching orders by delivery date, newest first.
	FindOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	CountOrders(ctx context.Context, filter OrderFilter) (int64, error)

	// CountByLocation groups matching orders by hostel and diet.
	CountByLocation(ctx context.Context, filter OrderFilter) ([]LocationCount, error)
}
