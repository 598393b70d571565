package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "tiffin/internal/domain/errors"
)

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Now()
	order := &Order{ID: uuid.New(), Status: OrderPending}

	require.NoError(t, order.TransitionTo(OrderConfirmed, "", RejectedByVendor, now))
	require.NoError(t, order.TransitionTo(OrderPrepared, "", RejectedByVendor, now))

	err := order.TransitionTo(OrderPending, "", RejectedByVendor, now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)

	require.NoError(t, order.TransitionTo(OrderOutForDelivery, "", RejectedByVendor, now))
	require.NoError(t, order.TransitionTo(OrderDelivered, "", RejectedByVendor, now))
	assert.ErrorIs(t, order.TransitionTo(OrderCancelled, "", RejectedByVendor, now), domainerrors.ErrInvalidOrderTransition)
}

func TestOrder_RejectRecordsReason(t *testing.T) {
	now := time.Now()
	order := &Order{ID: uuid.New(), Status: OrderPending}

	require.NoError(t, order.TransitionTo(OrderRejected, "", RejectedByVendor, now))

	require.NotNil(t, order.Rejection)
	assert.Equal(t, DefaultRejectionReason, order.Rejection.Reason)
	assert.Equal(t, RejectedByVendor, order.Rejection.RejectedBy)
	assert.Equal(t, now, order.Rejection.RejectedAt)
}

func TestOrder_DisplayID(t *testing.T) {
	order := &Order{ID: uuid.MustParse("0190a8f2-1c3e-7b5d-9e2f-0a1b2c3d4e5f")}

	assert.Equal(t, "ORD3D4E5F", order.DisplayID())
}

func TestVendor_MealPrice(t *testing.T) {
	v := &Vendor{Pricing: VendorPricing{MonthlyRate: 3000, OneTimeRate: 120}}

	assert.Equal(t, float64(100), v.MealPrice(OrderTypeRegular, MealVeg))
	assert.Equal(t, float64(120), v.MealPrice(OrderTypeRegular, MealNonVeg))
	assert.Equal(t, float64(120), v.MealPrice(OrderTypeExtra, MealVeg))
	assert.Equal(t, float64(144), v.MealPrice(OrderTypeExtra, MealNonVeg))
}

func TestDeliveryLocation_String(t *testing.T) {
	assert.Equal(t, "A3 Hostel, Room 204", DeliveryLocation{Hostel: HostelA3, Room: "204"}.String())
	assert.Equal(t, "Outside Campus", DeliveryLocation{Hostel: HostelOutside}.String())
}
