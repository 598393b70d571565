package entity

import (
	"time"

	"github.com/google/uuid"
)

// DietPreference is the student's dietary preference.
type DietPreference string

const (
	DietVegetarian    DietPreference = "vegetarian"
	DietVegan         DietPreference = "vegan"
	DietJain          DietPreference = "jain"
	DietEggitarian    DietPreference = "eggitarian"
	DietNonVegetarian DietPreference = "non-vegetarian"
)

// SpiceLevel is how spicy the student likes the food.
type SpiceLevel string

const (
	SpiceMild      SpiceLevel = "mild"
	SpiceMedium    SpiceLevel = "medium"
	SpiceSpicy     SpiceLevel = "spicy"
	SpiceVerySpicy SpiceLevel = "very-spicy"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StudentAddress is where a student receives deliveries.
type StudentAddress struct {
	Street      string       `json:"street"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Pincode     string       `json:"pincode"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// StudentPreferences groups food and delivery preferences.
type StudentPreferences struct {
	DietType              DietPreference `json:"dietType"`
	SpiceLevel            SpiceLevel     `json:"spiceLevel"`
	Allergies             []string       `json:"allergies"`
	DeliveryInstructions  string         `json:"deliveryInstructions"`
	PreferredDeliveryTime string         `json:"preferredDeliveryTime"`
	Language              string         `json:"language"`
}

// NotificationSettings are the channels a student accepts.
type NotificationSettings struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	SMS          bool `json:"sms"`
	OrderUpdates bool `json:"orderUpdates"`
	Promotions   bool `json:"promotions"`
}

// PrivacySettings controls profile visibility.
type PrivacySettings struct {
	ShareProfile bool `json:"shareProfile"`
	ShowActivity bool `json:"showActivity"`
}

// StudentSettings holds account-level toggles.
type StudentSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// Student is a customer account that subscribes to vendors.
type Student struct {
	ID           uuid.UUID          `json:"id"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	Phone        string             `json:"phone"`
	Address      StudentAddress     `json:"address"`
	Preferences  StudentPreferences `json:"preferences"`
	Settings     StudentSettings    `json:"settings"`
	IsActive     bool               `json:"isActive"`
	LastLogin    *time.Time         `json:"lastLogin,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// FullName joins first and last name.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}

	return s.FirstName + " " + s.LastName
}

// DefaultStudentPreferences returns the preferences a new account starts with.
func DefaultStudentPreferences() StudentPreferences {
	return StudentPreferences{
		DietType:              DietVegetarian,
		SpiceLevel:            SpiceMedium,
		Allergies:             []string{},
		PreferredDeliveryTime: "19:30-20:00",
		Language:              "en",
	}
}

// DefaultStudentSettings enables every notification channel except SMS and promotions.
func DefaultStudentSettings() StudentSettings {
	return StudentSettings{
		Notifications: NotificationSettings{
			Email:        true,
			Push:         true,
			OrderUpdates: true,
		},
		Privacy: PrivacySettings{ShareProfile: true},
	}
}
