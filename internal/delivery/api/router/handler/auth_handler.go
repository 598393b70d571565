package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the caller's own account.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type RegisterStudentRequest struct {
	FirstName   string                     `json:"firstName" validate:"required,max=50"`
	LastName    string                     `json:"lastName" validate:"required,max=50"`
	Email       string                     `json:"email" validate:"required,email"`
	Password    string                     `json:"password" validate:"required"`
	Phone       string                     `json:"phone" validate:"required"`
	Address     *entity.StudentAddress     `json:"address"`
	Preferences *entity.StudentPreferences `json:"preferences"`
}

type RegisterVendorRequest struct {
	Email                string                       `json:"email" validate:"required,email"`
	Password             string                       `json:"password" validate:"required"`
	PersonalInfo         entity.VendorPersonalInfo    `json:"personalInfo"`
	BusinessInfo         entity.VendorBusinessInfo    `json:"businessInfo"`
	Pricing              entity.VendorPricing         `json:"pricing"`
	Availability         *entity.VendorAvailability   `json:"availability"`
	Location             *entity.Coordinates          `json:"location"`
	SubscriptionSettings *entity.SubscriptionSettings `json:"subscriptionSettings"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"omitempty,oneof=student vendor"`
}

type UpdateProfileRequest struct {
	FirstName   *string                    `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName    *string                    `json:"lastName" validate:"omitempty,min=1,max=50"`
	Phone       *string                    `json:"phone"`
	Address     *entity.StudentAddress     `json:"address"`
	Preferences *entity.StudentPreferences `json:"preferences"`
	Settings    *entity.StudentSettings    `json:"settings"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// RegisterStudent handles the student registration request.
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req RegisterStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterStudent(c.Request().Context(), usecase.RegisterStudentInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Student registered successfully")
}

// RegisterVendor handles the vendor registration request.
func (h *AuthHandler) RegisterVendor(c echo.Context) error {
	var req RegisterVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterVendor(c.Request().Context(), usecase.RegisterVendorInput{
		Email:                req.Email,
		Password:             req.Password,
		PersonalInfo:         req.PersonalInfo,
		BusinessInfo:         req.BusinessInfo,
		Pricing:              req.Pricing,
		Availability:         req.Availability,
		Location:             req.Location,
		SubscriptionSettings: req.SubscriptionSettings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Vendor registered successfully, pending approval")
}

// Login handles the login request of either account type.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role := entity.RoleStudent
	if req.UserType != "" {
		role = entity.Role(req.UserType)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": user,
		"role": principal.Role,
	})
}

// UpdateProfile updates the student's own profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.authUC.UpdateProfile(c.Request().Context(), principal.ID, usecase.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
		Settings:    req.Settings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "Profile updated successfully")
}

// ChangePassword replaces the caller's password after checking the current one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), principal, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
