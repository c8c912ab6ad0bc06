package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

// GetCampYearByYear retrieves a camp year by its year number, or nil if
// absent.
func (c *CampDB) GetCampYearByYear(year int) (*models.CampYear, error) {
	query := `SELECT id, year, is_active, created_at FROM camp_years WHERE year = $1`
	row := c.DB.QueryRow(query, year)

	var cy models.CampYear
	if err := row.Scan(&cy.ID, &cy.Year, &cy.IsActive, &cy.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning camp year: %w", err)
	}
	return &cy, nil
}

// GetOrCreateCampYear resolves a camp year by its number, creating it
// inactive on first reference. Two concurrent first references race on the
// unique year constraint; the loser re-reads the winner's row.
func (c *CampDB) GetOrCreateCampYear(year int) (*models.CampYear, error) {
	cy, err := c.GetCampYearByYear(year)
	if err != nil || cy != nil {
		return cy, err
	}

	yearID := uuid.New()
	createdAt := time.Now().UTC()

	_, err = c.DB.Exec(`
		INSERT INTO camp_years (id, year, is_active, created_at)
		VALUES ($1, $2, FALSE, $3)`,
		yearID, year, createdAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return c.GetCampYearByYear(year)
		}
		return nil, fmt.Errorf("error inserting camp year: %w", err)
	}

	return &models.CampYear{
		ID:        yearID,
		Year:      year,
		IsActive:  false,
		CreatedAt: createdAt,
	}, nil
}
