package impl

import (
	"context"
	"testing"

	"tiffin/config"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	mockSvc "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	studentRepo  *mockRepo.MockStudentRepository
	vendorRepo   *mockRepo.MockVendorRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	fx := authServiceFixtures{
		studentRepo:  mockRepo.NewMockStudentRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		StudentRepo:  fx.studentRepo,
		VendorRepo:   fx.vendorRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       cfg,
	}).(*authService)
	fx.service.now = fixedClock

	return fx
}

func TestAuthService_RegisterStudent_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	expiresAt := testNow.AddDate(0, 0, 1)

	fx.studentRepo.EXPECT().
		FindStudentByEmail(ctx, "asha@example.com").
		Return(nil, errors.WithStack(repository.ErrStudentNotFound))
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.studentRepo.EXPECT().
		CreateStudent(ctx, mock.MatchedBy(func(s *entity.Student) bool {
			return s.Email == "asha@example.com" &&
				s.PasswordHash == "hashed" &&
				s.Settings == entity.DefaultStudentSettings() &&
				s.IsActive
		})).
		RunAndReturn(func(_ context.Context, s *entity.Student) error {
			s.ID = uuid.New()

			return nil
		})
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), "student").
		Return("jwt-token", expiresAt, nil)

	out, err := fx.service.RegisterStudent(ctx, usecase.RegisterStudentInput{
		FirstName: "Asha",
		Email:     " Asha@Example.com ",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, "student", out.Role)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.IsType(t, &entity.Student{}, out.User)
}

func TestAuthService_RegisterStudent_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.studentRepo.EXPECT().FindStudentByEmail(ctx, "asha@example.com").Return(&entity.Student{}, nil)

	_, err := fx.service.RegisterStudent(ctx, usecase.RegisterStudentInput{Email: "asha@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrStudentAlreadyExists)
}

func TestAuthService_RegisterStudent_ShortPasswordFromConfig(t *testing.T) {
	fx := createTestAuthService(t, &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 10}})

	_, err := fx.service.RegisterStudent(context.Background(), usecase.RegisterStudentInput{Email: "a@b.c", Password: "secret123"})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 10 characters", verr.Fields()[0].Message)
}

func TestAuthService_RegisterVendor_DuplicateOnCreate(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		FindVendorByEmail(ctx, "kitchen@example.com").
		Return(nil, errors.WithStack(repository.ErrVendorNotFound))
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.vendorRepo.EXPECT().
		CreateVendor(ctx, mock.MatchedBy(func(v *entity.Vendor) bool {
			return v.Status == entity.VendorPending && v.BusinessInfo.FoodType == entity.FoodVeg
		})).
		Return(errors.WithStack(repository.ErrDuplicateVendor))

	_, err := fx.service.RegisterVendor(ctx, usecase.RegisterVendorInput{Email: "kitchen@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestAuthService_Login_Vendor(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	vendor := testVendor()
	vendor.PasswordHash = "hashed"

	fx.vendorRepo.EXPECT().FindVendorByEmail(ctx, "kitchen@example.com").Return(vendor, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.vendorRepo.EXPECT().UpdateLastLogin(ctx, vendor.ID, testNow).Return(errors.New("ignored"))
	fx.tokenService.EXPECT().GenerateToken(vendor.ID, "vendor").Return("jwt-token", testNow, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "kitchen@example.com",
		Password: "secret1",
		Role:     entity.RoleVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, vendor, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()

	fx.studentRepo.EXPECT().
		FindStudentByEmail(ctx, "nobody@example.com").
		Return(nil, errors.WithStack(repository.ErrStudentNotFound))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	student := &entity.Student{ID: uuid.New(), PasswordHash: "hashed", IsActive: true}

	fx.studentRepo.EXPECT().FindStudentByEmail(ctx, "asha@example.com").Return(student, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_Inactive(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	student := &entity.Student{ID: uuid.New(), PasswordHash: "hashed"}

	fx.studentRepo.EXPECT().FindStudentByEmail(ctx, "asha@example.com").Return(student, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "asha@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Me_Student(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	student := &entity.Student{ID: uuid.New()}

	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)

	user, err := fx.service.Me(ctx, entity.Principal{ID: student.ID, Role: entity.RoleStudent})
	require.NoError(t, err)
	assert.Same(t, student, user)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	student := &entity.Student{ID: uuid.New(), FirstName: "Asha", Phone: "1"}
	phone := "9876543210"

	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.studentRepo.EXPECT().UpdateStudent(ctx, student).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, student.ID, usecase.UpdateProfileInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.FirstName)
	assert.Equal(t, phone, updated.Phone)
}

func TestAuthService_ChangePassword(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	vendor := testVendor()
	vendor.PasswordHash = "old-hash"

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.hasher.EXPECT().Check("old-secret", "old-hash").Return(true)
	fx.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	fx.vendorRepo.EXPECT().UpdatePassword(ctx, vendor.ID, "new-hash").Return(nil)

	err := fx.service.ChangePassword(ctx, entity.Principal{ID: vendor.ID, Role: entity.RoleVendor}, usecase.ChangePasswordInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t, nil)

	ctx := context.Background()
	student := &entity.Student{ID: uuid.New(), PasswordHash: "old-hash"}

	fx.studentRepo.EXPECT().FindStudentByID(ctx, student.ID).Return(student, nil)
	fx.hasher.EXPECT().Check("bad", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, entity.Principal{ID: student.ID, Role: entity.RoleStudent}, usecase.ChangePasswordInput{
		CurrentPassword: "bad",
		NewPassword:     "new-secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}
