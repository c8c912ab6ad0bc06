package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/briarwood-camp/camp-services/internal/appconfig"
	"github.com/briarwood-camp/camp-services/internal/authn"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(store *MockCampStore) *Service {
	return &Service{
		Config: &appconfig.Config{
			Auth: appconfig.AuthConfig{TokenTTLMinutes: 720},
		},
		DB: store,
	}
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

// TestRegisterParent tests parent self-registration
func TestRegisterParent(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)

	var noAccount *models.Account
	store.On("GetAccountByEmail", "parent@example.com").Return(noAccount, nil)

	created := &models.Account{
		ID:       uuid.New(),
		Email:    "parent@example.com",
		FullName: "Pat Example",
		Role:     models.RoleParent,
		IsActive: true,
	}
	store.On("CreateAccount", "parent@example.com", "Pat Example", mock.AnythingOfType("string"), models.RoleParent).
		Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, models.RegisterParentRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
		FullName: "Pat Example",
	}))
	rec := httptest.NewRecorder()

	svc.RegisterParentService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, "registration should answer 201")

	var got models.Account
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID, "response should carry the new account")
	assert.Equal(t, models.RoleParent, got.Role, "self-registration always yields a parent")

	store.AssertExpectations(t)
}

// TestRegisterParentValidation tests rejection of malformed registrations
func TestRegisterParentValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload models.RegisterParentRequest
	}{
		{"missing at sign", models.RegisterParentRequest{Email: "parent.example.com", Password: "hunter22", FullName: "Pat"}},
		{"short password", models.RegisterParentRequest{Email: "parent@example.com", Password: "abc", FullName: "Pat"}},
		{"missing full name", models.RegisterParentRequest{Email: "parent@example.com", Password: "hunter22"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockCampStore)
			svc := newTestService(store)

			req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, tc.payload))
			rec := httptest.NewRecorder()

			svc.RegisterParentService(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// TestRegisterParentDuplicateEmail tests the conflict answer for a taken email
func TestRegisterParentDuplicateEmail(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)

	existing := &models.Account{ID: uuid.New(), Email: "parent@example.com", Role: models.RoleParent, IsActive: true}
	store.On("GetAccountByEmail", "parent@example.com").Return(existing, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, models.RegisterParentRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
		FullName: "Pat Example",
	}))
	rec := httptest.NewRecorder()

	svc.RegisterParentService(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code, "a taken email should answer 409")
	store.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestLogin tests a successful login and the shape of the token response
func TestLogin(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)

	hash, err := authn.HashPassword("hunter22")
	require.NoError(t, err)

	account := &models.Account{
		ID:           uuid.New(),
		Email:        "parent@example.com",
		PasswordHash: hash,
		Role:         models.RoleParent,
		IsActive:     true,
	}
	store.On("GetAccountByEmail", "parent@example.com").Return(account, nil)

	store.On("CreateSessionToken", account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(&models.SessionToken{
			ID:        uuid.New(),
			Token:     "issued-token",
			AccountID: account.ID,
			ExpiresAt: time.Now().UTC().Add(12 * time.Hour),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, models.LoginRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
	}))
	rec := httptest.NewRecorder()

	svc.LoginService(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "issued-token", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)

	store.AssertExpectations(t)
}

// TestLoginRejections tests that unknown email, wrong password and an
// inactive account all answer the same 401
func TestLoginRejections(t *testing.T) {
	hash, err := authn.HashPassword("hunter22")
	require.NoError(t, err)

	var noAccount *models.Account
	inactive := &models.Account{ID: uuid.New(), Email: "parent@example.com", PasswordHash: hash, Role: models.RoleParent, IsActive: false}
	active := &models.Account{ID: uuid.New(), Email: "parent@example.com", PasswordHash: hash, Role: models.RoleParent, IsActive: true}

	cases := []struct {
		name     string
		account  *models.Account
		password string
	}{
		{"unknown email", noAccount, "hunter22"},
		{"inactive account", inactive, "hunter22"},
		{"wrong password", active, "not-the-password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockCampStore)
			svc := newTestService(store)
			store.On("GetAccountByEmail", "parent@example.com").Return(tc.account, nil)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, models.LoginRequest{
				Email:    "parent@example.com",
				Password: tc.password,
			}))
			rec := httptest.NewRecorder()

			svc.LoginService(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid credentials")
			store.AssertNotCalled(t, "CreateSessionToken", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
