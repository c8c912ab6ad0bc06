package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// CampDB wraps the shared connection pool. Each request runs its own
// statements against the pool; uniqueness is enforced by the database, not
// by application-level locking.
type CampDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewCampDB opens the database connection and verifies it with a ping.
func NewCampDB(driver, connStr string, log *zerolog.Logger) (*CampDB, error) {
	if connStr == "" {
		log.Error().Msg("database connection string is not set")
		return nil, fmt.Errorf("database connection string is not set")
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		return nil, err
	}

	return &CampDB{
		DB:  db,
		Log: log,
	}, nil
}

// WaitForReady blocks until the database answers a ping, retrying every
// two seconds up to maxWait. Used as the startup readiness probe under
// docker-compose, where the database may come up after the API.
func (c *CampDB) WaitForReady(maxWait time.Duration) error {
	deadline := time.Now().Add(maxWait)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = c.DB.Ping(); lastErr == nil {
			return nil
		}
		c.Log.Warn().Err(lastErr).Msg("database not ready, retrying")
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("database not ready after %s: %w", maxWait, lastErr)
}

// Migrate creates the schema if absent by running the embedded goose
// migrations. Safe to run on every startup.
func (c *CampDB) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err := goose.Up(c.DB, "migrations"); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	c.Log.Info().Msg("database migrations applied")
	return nil
}

func (c *CampDB) Close() error {
	if err := c.DB.Close(); err != nil {
		return err
	}
	c.Log.Info().Msg("database connection closed")
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Concurrent duplicate inserts surface through here as a
// Conflict rather than silently succeeding twice.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (c *CampDB) execQuery(tx *sql.Tx, query string, args ...interface{}) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is not established")
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// CommitTransaction commits tx, rolling back on commit failure.
func (c *CampDB) CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
