package handler

import (
	"net/http"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/auth/register/student", h.RegisterStudent)
	e.POST("/auth/login", h.Login)

	protected := e.Group("/auth")
	if principal != nil {
		protected.Use(asPrincipal(*principal))
	}
	protected.GET("/me", h.Me)
	protected.PUT("/change-password", h.ChangePassword)

	return e, authUC
}

func TestAuthHandler_RegisterStudent_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t, nil)

	authUC.EXPECT().
		RegisterStudent(mock.Anything, usecase.RegisterStudentInput{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Password:  "secret1",
			Phone:     "9876543210",
		}).
		Return(&usecase.AuthOutput{Token: "jwt-token", Role: "student"}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register/student",
		`{"firstName":"Asha","lastName":"Rao","email":"asha@example.com","password":"secret1","phone":"9876543210"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Student registered successfully", env.Message)
	assert.Contains(t, string(env.Data), `"token":"jwt-token"`)
}

func TestAuthHandler_RegisterStudent_ValidationFailed(t *testing.T) {
	e, _ := newAuthTestServer(t, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register/student", `{"firstName":"Asha","email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.ElementsMatch(t, []string{"lastName", "email", "password", "phone"}, fieldNames(env.Errors))
}

func TestAuthHandler_RegisterStudent_MalformedBody(t *testing.T) {
	e, _ := newAuthTestServer(t, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register/student", `{"firstName":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec).Message)
}

func TestAuthHandler_Login_DefaultsToStudent(t *testing.T) {
	e, authUC := newAuthTestServer(t, nil)

	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "asha@example.com", Password: "secret1", Role: entity.RoleStudent}).
		Return(&usecase.AuthOutput{Token: "jwt-token"}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestServer(t, nil)

	authUC.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool { return in.Role == entity.RoleVendor })).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"kitchen@example.com","password":"nope","userType":"vendor"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Code)
}

func TestAuthHandler_Me_WithoutPrincipal(t *testing.T) {
	e, _ := newAuthTestServer(t, nil)

	rec := doRequest(e, http.MethodGet, "/auth/me", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode(t, rec).Code)
}

func TestAuthHandler_Me(t *testing.T) {
	vendor := testVendor()
	e, authUC := newAuthTestServer(t, &vendor)

	authUC.EXPECT().Me(mock.Anything, vendor).Return(&entity.Vendor{ID: vendor.ID}, nil)

	rec := doRequest(e, http.MethodGet, "/auth/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"role":"vendor"`)
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	student := testStudent()
	e, authUC := newAuthTestServer(t, &student)

	authUC.EXPECT().
		ChangePassword(mock.Anything, student, usecase.ChangePasswordInput{CurrentPassword: "bad", NewPassword: "new-secret"}).
		Return(errors.WithStack(domainerrors.ErrInvalidPassword))

	rec := doRequest(e, http.MethodPut, "/auth/change-password", `{"currentPassword":"bad","newPassword":"new-secret"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PASSWORD", decode(t, rec).Code)
}

func TestAuthHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	e, authUC := newAuthTestServer(t, nil)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
