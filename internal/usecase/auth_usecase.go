// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterStudentInput defines the data required to register a new student.
type RegisterStudentInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Phone       string
	Address     *entity.StudentAddress
	Preferences *entity.StudentPreferences
}

// RegisterVendorInput defines the data required to register a new vendor.
type RegisterVendorInput struct {
	Email                string
	Password             string
	PersonalInfo         entity.VendorPersonalInfo
	BusinessInfo         entity.VendorBusinessInfo
	Pricing              entity.VendorPricing
	Availability         *entity.VendorAvailability
	Location             *entity.Coordinates
	SubscriptionSettings *entity.SubscriptionSettings
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// UpdateProfileInput is a partial update of a student profile. Nil fields are kept.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Address     *entity.StudentAddress
	Preferences *entity.StudentPreferences
	Settings    *entity.StudentSettings
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput is returned by registration and login.
type AuthOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
	User      any       `json:"user"`
}

// AuthUsecase defines account registration, login and profile operations.
type AuthUsecase interface {
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*AuthOutput, error)
	RegisterVendor(ctx context.Context, input RegisterVendorInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Me returns the *entity.Student or *entity.Vendor behind the principal.
	Me(ctx context.Context, principal entity.Principal) (any, error)

	UpdateProfile(ctx context.Context, studentID uuid.UUID, input UpdateProfileInput) (*entity.Student, error)
	ChangePassword(ctx context.Context, principal entity.Principal, input ChangePasswordInput) error
}
