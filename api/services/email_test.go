package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/briarwood-camp/camp-services/internal/appconfig"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEmailTestService(store *MockCampStore, email *MockEmailClient, enabled bool) *Service {
	return &Service{
		Config: &appconfig.Config{
			Auth: appconfig.AuthConfig{TokenTTLMinutes: 720},
			Email: appconfig.EmailConfig{
				Enabled:     enabled,
				Region:      "eu-west-2",
				FromAddress: "no-reply@example.com",
			},
		},
		DB:    store,
		Email: email,
	}
}

func expectAccountCreated(store *MockCampStore) {
	var noAccount *models.Account
	store.On("GetAccountByEmail", "parent@example.com").Return(noAccount, nil)
	store.On("CreateAccount", "parent@example.com", "Pat Example", mock.AnythingOfType("string"), models.RoleParent).
		Return(&models.Account{
			ID:       uuid.New(),
			Email:    "parent@example.com",
			FullName: "Pat Example",
			Role:     models.RoleParent,
			IsActive: true,
		}, nil)
}

// TestRegisterParentEmailFailure tests that a failed welcome email never
// fails the registration itself
func TestRegisterParentEmailFailure(t *testing.T) {
	store := new(MockCampStore)
	email := new(MockEmailClient)
	svc := newEmailTestService(store, email, true)

	expectAccountCreated(store)

	var noOutput *sesv2.SendEmailOutput
	email.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(noOutput, errors.New("ses unavailable"))

	req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, models.RegisterParentRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
		FullName: "Pat Example",
	}))
	rec := httptest.NewRecorder()

	svc.RegisterParentService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, "a send failure must not fail the registration")
	email.AssertExpectations(t)
	store.AssertExpectations(t)
}

// TestRegisterParentEmailSent tests that an enabled config sends to the new
// parent's address
func TestRegisterParentEmailSent(t *testing.T) {
	store := new(MockCampStore)
	email := new(MockEmailClient)
	svc := newEmailTestService(store, email, true)

	expectAccountCreated(store)

	email.On("SendEmail", mock.Anything, mock.MatchedBy(func(input *sesv2.SendEmailInput) bool {
		return len(input.Destination.ToAddresses) == 1 &&
			input.Destination.ToAddresses[0] == "parent@example.com" &&
			*input.FromEmailAddress == "no-reply@example.com"
	}), mock.Anything).Return(&sesv2.SendEmailOutput{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, models.RegisterParentRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
		FullName: "Pat Example",
	}))
	rec := httptest.NewRecorder()

	svc.RegisterParentService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	email.AssertExpectations(t)
}

// TestRegisterParentEmailDisabled tests that a disabled config sends
// nothing even when a client is wired
func TestRegisterParentEmailDisabled(t *testing.T) {
	store := new(MockCampStore)
	email := new(MockEmailClient)
	svc := newEmailTestService(store, email, false)

	expectAccountCreated(store)

	req := httptest.NewRequest(http.MethodPost, "/auth/register-parent", jsonBody(t, models.RegisterParentRequest{
		Email:    "parent@example.com",
		Password: "hunter22",
		FullName: "Pat Example",
	}))
	rec := httptest.NewRecorder()

	svc.RegisterParentService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	email.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}
