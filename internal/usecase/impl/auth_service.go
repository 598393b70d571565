package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	studentRepo  repository.StudentRepository
	vendorRepo   repository.VendorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	minPassword  int
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	StudentRepo  repository.StudentRepository
	VendorRepo   repository.VendorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minPassword := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minPassword = params.Config.Auth.MinPasswordLength
	}

	return &authService{
		studentRepo:  params.StudentRepo,
		vendorRepo:   params.VendorRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		minPassword:  minPassword,
		logger:       loggerOrDefault(params.Logger),
		now:          systemClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) checkPasswordLength(field, password string) error {
	if len(password) < srv.minPassword {
		return domainerrors.NewValidationError("", domainerrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", srv.minPassword),
		})
	}

	return nil
}

// RegisterStudent creates a student account and signs it in.
func (srv *authService) RegisterStudent(ctx context.Context, input usecase.RegisterStudentInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", entity.RoleStudent), slog.String("email", email))

	if err := srv.checkPasswordLength("password", input.Password); err != nil {
		return nil, err
	}

	_, err := srv.studentRepo.FindStudentByEmail(ctx, email)
	if err == nil {
		return nil, errors.WithStack(domainerrors.ErrStudentAlreadyExists)
	}
	if !errors.Is(err, repository.ErrStudentNotFound) {
		return nil, errors.Wrap(err, "failed to find student by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	student := &entity.Student{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Preferences:  entity.DefaultStudentPreferences(),
		Settings:     entity.DefaultStudentSettings(),
		IsActive:     true,
	}
	if input.Address != nil {
		student.Address = *input.Address
	}
	if input.Preferences != nil {
		student.Preferences = *input.Preferences
	}

	if err := srv.studentRepo.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudent) {
			return nil, errors.WithStack(domainerrors.ErrStudentAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create student")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", entity.RoleStudent), slog.Any("userID", student.ID))

	return srv.issue(student.ID, entity.RoleStudent, student)
}

// RegisterVendor creates a vendor account awaiting approval and signs it in.
func (srv *authService) RegisterVendor(ctx context.Context, input usecase.RegisterVendorInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", entity.RoleVendor), slog.String("email", email))

	if err := srv.checkPasswordLength("password", input.Password); err != nil {
		return nil, err
	}

	_, err := srv.vendorRepo.FindVendorByEmail(ctx, email)
	if err == nil {
		return nil, errors.WithStack(domainerrors.ErrVendorAlreadyExists)
	}
	if !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, errors.Wrap(err, "failed to find vendor by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	vendor := &entity.Vendor{
		Email:                email,
		PasswordHash:         hash,
		PersonalInfo:         input.PersonalInfo,
		BusinessInfo:         input.BusinessInfo,
		Pricing:              input.Pricing,
		Location:             input.Location,
		SubscriptionSettings: entity.DefaultSubscriptionSettings(),
		Status:               entity.VendorPending,
		IsActive:             true,
	}
	if vendor.BusinessInfo.FoodType == "" {
		vendor.BusinessInfo.FoodType = entity.FoodVeg
	}
	if input.Availability != nil {
		vendor.Availability = *input.Availability
	}
	if input.SubscriptionSettings != nil {
		vendor.SubscriptionSettings = *input.SubscriptionSettings
	}

	if err := srv.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendor) {
			return nil, errors.WithStack(domainerrors.ErrVendorAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create vendor")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", entity.RoleVendor), slog.Any("userID", vendor.ID))

	return srv.issue(vendor.ID, entity.RoleVendor, vendor)
}

// Login verifies credentials for the requested account type.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	role := input.Role
	if role == "" {
		role = entity.RoleStudent
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", email), slog.Any("role", role))

	var (
		user      any
		principal = entity.Principal{Role: role}
		hash      string
		isActive  bool
	)

	switch role {
	case entity.RoleStudent:
		student, err := srv.studentRepo.FindStudentByEmail(ctx, email)
		if err != nil {
			return nil, srv.loginLookupError(ctx, email, err, repository.ErrStudentNotFound)
		}
		user, principal.ID, hash, isActive = student, student.ID, student.PasswordHash, student.IsActive
	case entity.RoleVendor:
		vendor, err := srv.vendorRepo.FindVendorByEmail(ctx, email)
		if err != nil {
			return nil, srv.loginLookupError(ctx, email, err, repository.ErrVendorNotFound)
		}
		user, principal.ID, hash, isActive = vendor, vendor.ID, vendor.PasswordHash, vendor.IsActive
	default:
		return nil, domainerrors.NewValidationError("", domainerrors.FieldError{Field: "userType", Message: "must be student or vendor"})
	}

	if !isActive {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrAccountInactive))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account inactive")
	}

	if !srv.hasher.Check(input.Password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	now := srv.now()
	var err error
	if role == entity.RoleVendor {
		err = srv.vendorRepo.UpdateLastLogin(ctx, principal.ID, now)
	} else {
		err = srv.studentRepo.UpdateLastLogin(ctx, principal.ID, now)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.Any("userID", principal.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("userID", principal.ID), slog.Any("role", role))

	return srv.issue(principal.ID, role, user)
}

func (srv *authService) loginLookupError(ctx context.Context, email string, err, notFound error) error {
	srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

	if errors.Is(err, notFound) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return errors.Wrap(err, "failed to load account")
}

func (srv *authService) issue(id uuid.UUID, role entity.Role, user any) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(id, role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      role.String(),
		User:      user,
	}, nil
}

// Me loads the account behind the principal.
func (srv *authService) Me(ctx context.Context, principal entity.Principal) (any, error) {
	switch principal.Role {
	case entity.RoleStudent:
		student, err := srv.studentRepo.FindStudentByID(ctx, principal.ID)
		if err != nil {
			return nil, mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
		}

		return student, nil
	case entity.RoleVendor:
		vendor, err := srv.vendorRepo.FindVendorByID(ctx, principal.ID)
		if err != nil {
			return nil, mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
		}

		return vendor, nil
	default:
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}
}

// UpdateProfile applies a partial update to the student's profile.
func (srv *authService) UpdateProfile(ctx context.Context, studentID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Student, error) {
	student, err := srv.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
	}

	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.Phone != nil {
		student.Phone = *input.Phone
	}
	if input.Address != nil {
		student.Address = *input.Address
	}
	if input.Preferences != nil {
		student.Preferences = *input.Preferences
	}
	if input.Settings != nil {
		student.Settings = *input.Settings
	}

	if err := srv.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, errors.Wrap(err, "failed to update student")
	}

	return student, nil
}

// ChangePassword replaces the password after verifying the current one.
func (srv *authService) ChangePassword(ctx context.Context, principal entity.Principal, input usecase.ChangePasswordInput) error {
	if err := srv.checkPasswordLength("newPassword", input.NewPassword); err != nil {
		return err
	}

	var currentHash string
	switch principal.Role {
	case entity.RoleStudent:
		student, err := srv.studentRepo.FindStudentByID(ctx, principal.ID)
		if err != nil {
			return mapNotFound(err, repository.ErrStudentNotFound, domainerrors.ErrStudentNotFound, "failed to find student")
		}
		currentHash = student.PasswordHash
	case entity.RoleVendor:
		vendor, err := srv.vendorRepo.FindVendorByID(ctx, principal.ID)
		if err != nil {
			return mapNotFound(err, repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound, "failed to find vendor")
		}
		currentHash = vendor.PasswordHash
	default:
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if !srv.hasher.Check(input.CurrentPassword, currentHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", principal.ID))

		return errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if principal.Role == entity.RoleVendor {
		err = srv.vendorRepo.UpdatePassword(ctx, principal.ID, hash)
	} else {
		err = srv.studentRepo.UpdatePassword(ctx, principal.ID, hash)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", principal.ID), slog.Any("role", principal.Role))

	return nil
}
