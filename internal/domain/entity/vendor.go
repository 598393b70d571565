package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// FoodType is what a vendor cooks.
type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "nonveg"
	FoodBoth   FoodType = "both"
)

// VendorStatus is the vendor's approval state.
type VendorStatus string

const (
	VendorPending  VendorStatus = "pending"
	VendorApproved VendorStatus = "approved"
	VendorRejected VendorStatus = "rejected"
)

// NonVegSurcharge multiplies the base meal price for non-vegetarian meals.
const NonVegSurcharge = 1.2

// BillingDaysPerMonth converts a monthly rate into a daily one.
const BillingDaysPerMonth = 30

type VendorPersonalInfo struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	YearsExperience int    `json:"yearsExperience"`
}

type VendorBusinessInfo struct {
	ServiceName       string   `json:"serviceName"`
	Description       string   `json:"description"`
	FoodType          FoodType `json:"foodType"`
	Cuisines          []string `json:"cuisines"`
	Address           string   `json:"address"`
	Pincode           string   `json:"pincode"`
	DeliveryLocations []string `json:"deliveryLocations"`
}

type VendorPricing struct {
	MonthlyRate float64 `json:"monthlyRate"`
	OneTimeRate float64 `json:"oneTimeRate"`
}

// DailyRate is the monthly rate spread over a billing month.
func (p VendorPricing) DailyRate() float64 {
	return p.MonthlyRate / BillingDaysPerMonth
}

type VendorAvailability struct {
	WeeklyHoliday string `json:"weeklyHoliday"` // sunday..saturday or none
}

type SubscriptionSettings struct {
	MinSubscriptionDays int     `json:"minSubscriptionDays"`
	DeliveryRadiusKm    float64 `json:"deliveryRadiusKm"`
}

// DefaultSubscriptionSettings returns the settings a new vendor starts with.
func DefaultSubscriptionSettings() SubscriptionSettings {
	return SubscriptionSettings{MinSubscriptionDays: 15, DeliveryRadiusKm: 5}
}

// Vendor is a tiffin service provider.
type Vendor struct {
	ID                   uuid.UUID            `json:"id"`
	Email                string               `json:"email"`
	PasswordHash         string               `json:"-"`
	PersonalInfo         VendorPersonalInfo   `json:"personalInfo"`
	BusinessInfo         VendorBusinessInfo   `json:"businessInfo"`
	Location             *Coordinates         `json:"location,omitempty"`
	Pricing              VendorPricing        `json:"pricing"`
	Availability         VendorAvailability   `json:"availability"`
	SubscriptionSettings SubscriptionSettings `json:"subscriptionSettings"`
	Status               VendorStatus         `json:"status"`
	Rating               float64              `json:"rating"`
	TotalOrders          int                  `json:"totalOrders"`
	TotalRevenue         float64              `json:"totalRevenue"`
	IsVerified           bool                 `json:"isVerified"`
	IsActive             bool                 `json:"isActive"`
	LastLogin            *time.Time           `json:"lastLogin,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

// DisplayName prefers the business name over the owner's name.
func (v *Vendor) DisplayName() string {
	if v.BusinessInfo.ServiceName != "" {
		return v.BusinessInfo.ServiceName
	}

	return v.PersonalInfo.FullName
}

// IsListed reports whether the vendor may appear in public listings.
func (v *Vendor) IsListed() bool {
	return v.Status == VendorApproved || v.Status == VendorPending
}

// SubscriptionPrice is the rounded price of a subscription lasting days.
func (v *Vendor) SubscriptionPrice(days int) float64 {
	return math.Round(v.Pricing.DailyRate() * float64(days))
}

// MealPrice is the rounded price of a single meal.
// Regular meals come out of the monthly plan; extra meals use the one-time rate.
func (v *Vendor) MealPrice(orderType OrderType, diet MealDiet) float64 {
	base := v.Pricing.DailyRate()
	if orderType == OrderTypeExtra {
		base = v.Pricing.OneTimeRate
	}

	if diet == MealNonVeg {
		base *= NonVegSurcharge
	}

	return math.Round(base)
}

// MinDays is the shortest subscription the vendor accepts.
func (v *Vendor) MinDays() int {
	if v.SubscriptionSettings.MinSubscriptionDays <= 0 {
		return 1
	}

	return v.SubscriptionSettings.MinSubscriptionDays
}
