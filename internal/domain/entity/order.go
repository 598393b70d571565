package entity

import (
	"slices"
	"strings"
	"time"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
)

// OrderType separates plan meals from one-off extras.
type OrderType string

const (
	OrderTypeRegular OrderType = "regular"
	OrderTypeExtra   OrderType = "extra"
)

type MealSlot string

const (
	MealLunch  MealSlot = "lunch"
	MealDinner MealSlot = "dinner"
)

type MealDiet string

const (
	MealVeg    MealDiet = "veg"
	MealNonVeg MealDiet = "nonveg"
)

// Hostel is a delivery zone on or off campus.
type Hostel string

const (
	HostelA2      Hostel = "A2"
	HostelA3      Hostel = "A3"
	HostelA4      Hostel = "A4"
	HostelA5      Hostel = "A5"
	HostelOutside Hostel = "Outside"
)

// Hostels lists delivery zones in display order.
var Hostels = []Hostel{HostelA2, HostelA3, HostelA4, HostelA5, HostelOutside}

// Label is the human-readable zone name.
func (h Hostel) Label() string {
	if h == HostelOutside {
		return "Outside Campus"
	}

	return string(h) + " Hostel"
}

// DeliveryLocation is a hostel and room.
type DeliveryLocation struct {
	Hostel Hostel `json:"hostel"`
	Room   string `json:"room"`
}

// String renders the location as "A2 Hostel, Room 101".
func (l DeliveryLocation) String() string {
	if l.Room == "" {
		return l.Hostel.Label()
	}

	return l.Hostel.Label() + ", Room " + l.Room
}

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPrepared       OrderStatus = "prepared"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderRejected       OrderStatus = "rejected"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderRejected, OrderCancelled},
	OrderConfirmed:      {OrderPrepared, OrderRejected, OrderCancelled},
	OrderPrepared:       {OrderOutForDelivery, OrderDelivered},
	OrderOutForDelivery: {OrderDelivered},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// RejectedBy identifies who turned an order down.
type RejectedBy string

const (
	RejectedByVendor   RejectedBy = "vendor"
	RejectedByCustomer RejectedBy = "customer"
	RejectedBySystem   RejectedBy = "system"
)

// DefaultRejectionReason is shown when no reason was recorded.
const DefaultRejectionReason = "Not specified"

type OrderRejection struct {
	Reason     string     `json:"reason"`
	RejectedBy RejectedBy `json:"rejectedBy"`
	RejectedAt time.Time  `json:"rejectedAt"`
	Notes      string     `json:"notes,omitempty"`
}

// Order is a single meal delivery.
type Order struct {
	ID                  uuid.UUID        `json:"id"`
	VendorID            uuid.UUID        `json:"vendorId"`
	CustomerID          uuid.UUID        `json:"customerId"`
	StudentID           *uuid.UUID       `json:"studentId,omitempty"`
	SubscriptionID      *uuid.UUID       `json:"subscriptionId,omitempty"`
	CustomerName        string           `json:"customerName"`
	DeliveryDate        time.Time        `json:"deliveryDate"`
	OrderType           OrderType        `json:"orderType"`
	MealSlot            MealSlot         `json:"mealSlot"`
	DietType            MealDiet         `json:"dietType"`
	Location            DeliveryLocation `json:"location"`
	Price               float64          `json:"price"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Status              OrderStatus      `json:"status"`
	Rejection           *OrderRejection  `json:"rejection,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// DisplayID is "ORD" followed by the last six hex digits of the id.
func (o *Order) DisplayID() string {
	hex := strings.ReplaceAll(o.ID.String(), "-", "")

	return "ORD" + strings.ToUpper(hex[len(hex)-6:])
}

// TransitionTo moves the order to next. Rejections record who rejected and why.
func (o *Order) TransitionTo(next OrderStatus, reason string, by RejectedBy, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidOrderTransition.WithDetails(
			"cannot move order from " + string(o.Status) + " to " + string(next))
	}

	o.Status = next
	if next == OrderRejected {
		if reason == "" {
			reason = DefaultRejectionReason
		}

		o.Rejection = &OrderRejection{
			Reason:     reason,
			RejectedBy: by,
			RejectedAt: now,
		}
	}

	return nil
}

// CancellableByStudent reports whether the student may still cancel.
func (o *Order) CancellableByStudent() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed
}
