package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

// GetAccountByEmail retrieves an account by email, active or not. Returns
// nil and nil error if no such account exists.
func (c *CampDB) GetAccountByEmail(email string) (*models.Account, error) {
	query := `SELECT id, email, full_name, password_hash, role, is_active, created_at FROM accounts WHERE email = $1`
	row := c.DB.QueryRow(query, email)

	var ac models.Account
	if err := row.Scan(
		&ac.ID,
		&ac.Email,
		&ac.FullName,
		&ac.PasswordHash,
		&ac.Role,
		&ac.IsActive,
		&ac.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning account: %w", err)
	}
	return &ac, nil
}

// GetAccount retrieves a single account by ID.
func (c *CampDB) GetAccount(accountID uuid.UUID) (*models.Account, error) {
	query := `SELECT id, email, full_name, password_hash, role, is_active, created_at FROM accounts WHERE id = $1`
	row := c.DB.QueryRow(query, accountID)

	var ac models.Account
	if err := row.Scan(
		&ac.ID,
		&ac.Email,
		&ac.FullName,
		&ac.PasswordHash,
		&ac.Role,
		&ac.IsActive,
		&ac.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning account: %w", err)
	}
	return &ac, nil
}

// CreateAccount creates a new account in the database. A duplicate email
// surfaces as a unique violation for the caller to map to a conflict.
func (c *CampDB) CreateAccount(email, fullName, passwordHash string, role models.Role) (*models.Account, error) {
	accountID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO accounts (id, email, full_name, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)`,
		accountID, email, fullName, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		ID:           accountID,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    createdAt,
	}

	return &account, nil
}

// CreateSessionToken persists a freshly minted token value with its expiry.
func (c *CampDB) CreateSessionToken(accountID uuid.UUID, token string, expiresAt time.Time) (*models.SessionToken, error) {
	tokenID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO session_tokens (id, token, account_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`,
		tokenID, token, accountID, createdAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting session token: %w", err)
	}

	return &models.SessionToken{
		ID:        tokenID,
		Token:     token,
		AccountID: accountID,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveSessionToken maps a presented token value back to its active
// account. Returns nil and nil error when the token is absent, expired, or
// the owning account is inactive. An expired token is deleted as a side
// effect the first time it is presented; this lazy deletion is the only
// cleanup mechanism for the token table.
func (c *CampDB) ResolveSessionToken(tokenValue string) (*models.Account, error) {
	query := `SELECT id, account_id, expires_at FROM session_tokens WHERE token = $1`
	row := c.DB.QueryRow(query, tokenValue)

	var tokenID, accountID uuid.UUID
	var expiresAt time.Time
	if err := row.Scan(&tokenID, &accountID, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning session token: %w", err)
	}

	if expiresAt.Before(time.Now().UTC()) {
		if _, err := c.DB.Exec(`DELETE FROM session_tokens WHERE id = $1`, tokenID); err != nil {
			return nil, fmt.Errorf("error deleting expired session token: %w", err)
		}
		return nil, nil
	}

	account, err := c.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, nil
	}
	return account, nil
}
