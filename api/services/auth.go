package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/briarwood-camp/camp-services/internal/authn"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/rs/zerolog"
)

const minPasswordLength = 6

// RegisterParentService creates a parent account from a public
// self-registration. The admin create-parent endpoint shares it.
func (svc *Service) RegisterParentService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.RegisterParentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if !validEmail(payload.Email) {
		WriteError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(payload.Password) < minPasswordLength {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
		return
	}
	if payload.FullName == "" {
		WriteError(w, http.StatusBadRequest, "full_name is required")
		return
	}

	// Pre-check so the common case answers without burning a bcrypt hash;
	// the unique index still backstops the race below.
	existing, err := svc.DB.GetAccountByEmail(payload.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Database error checking email")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		WriteError(w, http.StatusConflict, "email already registered")
		return
	}

	passwordHash, err := authn.HashPassword(payload.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	account, err := svc.DB.CreateAccount(payload.Email, payload.FullName, passwordHash, models.RoleParent)
	if err != nil {
		if isUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "email already registered")
			return
		}
		logger.Error().Err(err).Msg("Failed to create account in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("account_id", account.ID.String()).Msg("Parent account created")

	svc.sendWelcomeEmail(r.Context(), *account)

	WriteResponse(w, http.StatusCreated, *account)
}

// LoginService verifies credentials and mints a session token. Unknown
// email, inactive account, and wrong password all answer the same 401, and
// a bcrypt comparison runs on every path so timing does not reveal which
// case occurred.
func (svc *Service) LoginService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	account, err := svc.DB.GetAccountByEmail(payload.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving account")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if account == nil || !account.IsActive {
		authn.BurnPasswordCheck(payload.Password)
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !authn.VerifyPassword(payload.Password, account.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tokenValue, err := authn.NewSessionTokenValue()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to mint session token")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	expiresAt := time.Now().UTC().Add(svc.tokenTTL())
	token, err := svc.DB.CreateSessionToken(account.ID, tokenValue, expiresAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to persist session token")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("account_id", account.ID.String()).Msg("Login successful")

	WriteResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}

// MeService returns the account resolved from the bearer token.
func (svc *Service) MeService(w http.ResponseWriter, r *http.Request) {

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	WriteResponse(w, http.StatusOK, account)
}
