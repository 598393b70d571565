package validator

import (
	"testing"

	domainerrors "tiffin/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Hostel string `json:"hostel" validate:"required,oneof=A2 A3 A4 A5 Outside"`
}

type signup struct {
	Email    string   `json:"email" validate:"required,email"`
	Name     string   `json:"name" validate:"min=2,max=5"`
	Amount   float64  `json:"amount" validate:"gt=0"`
	Lat      string   `json:"lat" validate:"omitempty,latitude"`
	Address  address  `json:"address"`
	Internal string   `json:"-" validate:"required"`
	Page     int      `query:"page" validate:"gte=1"`
	Tags     []string `json:"tags" validate:"max=2"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	err := v.Validate(&signup{
		Email:    "nope",
		Name:     "Abhinav",
		Lat:      "123",
		Address:  address{Hostel: "B1"},
		Internal: "x",
		Tags:     []string{"a", "b", "c"},
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())

	got := map[string]string{}
	for _, fe := range verr.Fields() {
		got[fe.Field] = fe.Message
	}
	assert.Equal(t, map[string]string{
		"email":          "must be a valid email address",
		"name":           "must be at most 5 characters",
		"amount":         "must be greater than 0",
		"lat":            "must be a valid latitude",
		"address.hostel": "must be one of: A2, A3, A4, A5, Outside",
		"page":           "must be greater than or equal to 1",
		"tags":           "must be at most 2",
	}, got)
}

func TestValidator_Validate_OK(t *testing.T) {
	err := New().Validate(&signup{
		Email:    "asha@example.com",
		Name:     "Asha",
		Amount:   10,
		Address:  address{Hostel: "A3"},
		Internal: "x",
		Page:     1,
	})
	assert.NoError(t, err)
}
