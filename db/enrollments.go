package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

const enrollmentColumns = `
	e.id, e.status, e.notes, e.created_at,
	cy.id, cy.year, cy.is_active, cy.created_at,
	cm.id, cm.first_name, cm.last_name, cm.date_of_birth, cm.emergency_info, cm.created_at`

func scanEnrollment(row interface{ Scan(...interface{}) error }) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := row.Scan(
		&e.ID,
		&e.Status,
		&e.Notes,
		&e.CreatedAt,
		&e.CampYear.ID,
		&e.CampYear.Year,
		&e.CampYear.IsActive,
		&e.CampYear.CreatedAt,
		&e.Camper.ID,
		&e.Camper.FirstName,
		&e.Camper.LastName,
		&e.Camper.DateOfBirth,
		&e.Camper.EmergencyInfo,
		&e.Camper.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEnrollment retrieves a single enrollment with its camp year and camper
// embedded, or nil if absent.
func (c *CampDB) GetEnrollment(enrollmentID uuid.UUID) (*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM enrollments e
		JOIN camp_years cy ON cy.id = e.camp_year_id
		JOIN campers cm ON cm.id = e.camper_id
		WHERE e.id = $1`
	e, err := scanEnrollment(c.DB.QueryRow(query, enrollmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return e, nil
}

// CreateEnrollment inserts a pending enrollment for the (camp year, camper)
// pair. A duplicate pair surfaces as a unique violation for the caller to
// map to a conflict.
func (c *CampDB) CreateEnrollment(campYearID, camperID uuid.UUID) (*models.Enrollment, error) {
	enrollmentID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO enrollments (id, camp_year_id, camper_id, status, notes, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)`,
		enrollmentID, campYearID, camperID, models.EnrollmentPending, createdAt)
	if err != nil {
		return nil, err
	}

	return c.GetEnrollment(enrollmentID)
}

// UpdateEnrollment replaces the enrollment's status and notes wholesale.
func (c *CampDB) UpdateEnrollment(enrollmentID uuid.UUID, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error) {
	_, err := c.DB.Exec(`UPDATE enrollments SET status = $1, notes = $2 WHERE id = $3`,
		status, notes, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}

	return c.GetEnrollment(enrollmentID)
}

// ListEnrollmentsForParent retrieves enrollments of all campers owned by the
// parent, newest first, optionally narrowed to one camp year.
func (c *CampDB) ListEnrollmentsForParent(parentAccountID uuid.UUID, campYearID *uuid.UUID) ([]models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM enrollments e
		JOIN camp_years cy ON cy.id = e.camp_year_id
		JOIN campers cm ON cm.id = e.camper_id
		JOIN parent_campers pc ON pc.camper_id = cm.id
		WHERE pc.parent_account_id = $1`
	args := []interface{}{parentAccountID}

	if campYearID != nil {
		query += ` AND e.camp_year_id = $2`
		args = append(args, *campYearID)
	}
	query += ` ORDER BY e.created_at DESC`

	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, *e)
	}
	return enrollments, rows.Err()
}
