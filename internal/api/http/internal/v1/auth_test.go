package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/crewreg/backend/internal/config"
	"github.com/crewreg/backend/internal/domain"
	"github.com/crewreg/backend/internal/service"
	"github.com/crewreg/backend/pkg/auth"
	"github.com/crewreg/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountsMock struct {
	mock.Mock
}

func (m *accountsMock) Register(ctx context.Context, input service.RegisterAccountInput) error {
	args := m.Called(input)
	return args.Error(0)
}

func (m *accountsMock) Resend(ctx context.Context, accountEmail string) error {
	args := m.Called(accountEmail)
	return args.Error(0)
}

func (m *accountsMock) Verify(ctx context.Context, accountEmail string, code string) error {
	args := m.Called(accountEmail, code)
	return args.Error(0)
}

func (m *accountsMock) Login(ctx context.Context, accountEmail string, password string) (*service.Token, error) {
	args := m.Called(accountEmail, password)
	if token := args.Get(0); token != nil {
		return token.(*service.Token), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *accountsMock) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(id)
	if account := args.Get(0); account != nil {
		return account.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

var setupOnce sync.Once

func newTestRouter(t *testing.T, accounts *accountsMock) (*gin.Engine, auth.TokenManager) {
	t.Helper()

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validator.RegisterGinValidator()
	})

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SigningKey:     "test-key",
		AccessTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	h := NewHandler(&service.Services{Accounts: accounts}, tokenManager, &config.Config{})

	router := gin.New()
	h.Init(router.Group("/api"))

	return router, tokenManager
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validRegisterBody() map[string]string {
	return map[string]string{
		"college":          "St. Stephen's",
		"committee":        "UNHRC",
		"email":            "a@x.com",
		"contact":          "9876543210",
		"password":         "secret1",
		"confirm_password": "secret1",
	}
}

func TestRegisterOK(t *testing.T) {
	accounts := new(accountsMock)
	accounts.On("Register", service.RegisterAccountInput{
		Email:     "a@x.com",
		College:   "St. Stephen's",
		Committee: "UNHRC",
		Contact:   "9876543210",
		Password:  "secret1",
	}).Return(nil)

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", validRegisterBody())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp registerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp.Email)
	accounts.AssertExpectations(t)
}

func TestRegisterAlreadyRegistered(t *testing.T) {
	accounts := new(accountsMock)
	accounts.On("Register", mock.Anything).Return(service.ErrAccountAlreadyRegistered)

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", validRegisterBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorStruct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, AccountAlreadyRegisteredCode, resp.ErrorCode)
}

func TestRegisterPasswordMismatchRejectedBeforeService(t *testing.T) {
	accounts := new(accountsMock)

	body := validRegisterBody()
	body["confirm_password"] = "different"

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorStruct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6000, resp.ErrorCode)
	accounts.AssertNotCalled(t, "Register")
}

func TestRegisterShortContactRejected(t *testing.T) {
	accounts := new(accountsMock)

	body := validRegisterBody()
	body["contact"] = "12345"

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	accounts.AssertNotCalled(t, "Register")
}

func TestVerifyErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", service.ErrAccountNotFound, AccountNotFoundCode},
		{"already verified", service.ErrAccountAlreadyVerified, AccountAlreadyVerifiedCode},
		{"expired", service.ErrCodeExpired, CodeExpiredCode},
		{"invalid", service.ErrInvalidCode, InvalidCodeCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := new(accountsMock)
			accounts.On("Verify", "a@x.com", "123456").Return(tt.err)

			router, _ := newTestRouter(t, accounts)
			rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/verify", map[string]string{
				"email": "a@x.com",
				"code":  "123456",
			})

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorStruct
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.EqualValues(t, tt.wantCode, resp.ErrorCode)
		})
	}
}

func TestResendOK(t *testing.T) {
	accounts := new(accountsMock)
	accounts.On("Resend", "a@x.com").Return(nil)

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/resend-code", map[string]string{
		"email": "a@x.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	accounts.AssertExpectations(t)
}

func TestLoginOK(t *testing.T) {
	accounts := new(accountsMock)
	accounts.On("Login", "a@x.com", "secret1").Return(&service.Token{
		AccessToken: "jwt-token",
		ExpiresIn:   24 * time.Hour,
	}, nil)

	router, _ := newTestRouter(t, accounts)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.EqualValues(t, (24 * time.Hour).Seconds(), resp.ExpiresIn)
}

func TestLoginCredentialErrorsIndistinguishable(t *testing.T) {
	accounts := new(accountsMock)
	accounts.On("Login", "ghost@x.com", "secret1").Return(nil, service.ErrInvalidCredentials)
	accounts.On("Login", "a@x.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	router, _ := newTestRouter(t, accounts)

	recUnknown := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "ghost@x.com", "password": "secret1",
	})
	recWrong := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})

	assert.Equal(t, recUnknown.Code, recWrong.Code)
	assert.JSONEq(t, recUnknown.Body.String(), recWrong.Body.String())
}

func TestMeRequiresToken(t *testing.T) {
	accounts := new(accountsMock)
	router, _ := newTestRouter(t, accounts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeOK(t *testing.T) {
	accounts := new(accountsMock)
	id := uuid.New()
	accounts.On("GetProfile", id).Return(&domain.Account{
		ID:        id,
		Email:     "a@x.com",
		College:   "St. Stephen's",
		Committee: "UNHRC",
		Verified:  true,
	}, nil)

	router, tokenManager := newTestRouter(t, accounts)

	token, _, err := tokenManager.NewJWT(&id)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp.Email)
	assert.True(t, resp.Verified)
}
