package db

import (
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

// SeedAdminAndYear idempotently creates the configured camp year (active)
// and the default admin account. Runs on every startup after migrations.
func (c *CampDB) SeedAdminAndYear(adminEmail, adminFullName, adminPasswordHash string, campYear int) error {
	cy, err := c.GetCampYearByYear(campYear)
	if err != nil {
		return err
	}
	if cy == nil {
		_, err = c.DB.Exec(`
			INSERT INTO camp_years (id, year, is_active, created_at)
			VALUES ($1, $2, TRUE, $3)`,
			uuid.New(), campYear, time.Now().UTC())
		if err != nil && !IsUniqueViolation(err) {
			return fmt.Errorf("error seeding camp year: %w", err)
		}
		c.Log.Info().Int("year", campYear).Msg("seeded camp year")
	}

	admin, err := c.GetAccountByEmail(adminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		_, err = c.CreateAccount(adminEmail, adminFullName, adminPasswordHash, models.RoleAdmin)
		if err != nil && !IsUniqueViolation(err) {
			return fmt.Errorf("error seeding admin account: %w", err)
		}
		c.Log.Info().Str("email", adminEmail).Msg("seeded admin account")
	}

	return nil
}
