package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

const groupColumns = `
	g.id, g.name, g.description, g.created_at,
	cy.id, cy.year, cy.is_active, cy.created_at`

func scanGroup(row interface{ Scan(...interface{}) error }) (*models.Group, error) {
	var g models.Group
	if err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.CreatedAt,
		&g.CampYear.ID,
		&g.CampYear.Year,
		&g.CampYear.IsActive,
		&g.CampYear.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGroup retrieves a single group with its camp year embedded, or nil if
// absent.
func (c *CampDB) GetGroup(groupID uuid.UUID) (*models.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups g
		JOIN camp_years cy ON cy.id = g.camp_year_id
		WHERE g.id = $1`
	g, err := scanGroup(c.DB.QueryRow(query, groupID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning group: %w", err)
	}
	return g, nil
}

// CreateGroup creates a group under the camp year. A duplicate name within
// the year surfaces as a unique violation for the caller to map to a
// conflict.
func (c *CampDB) CreateGroup(campYear models.CampYear, name string, description *string) (*models.Group, error) {
	groupID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO groups (id, camp_year_id, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		groupID, campYear.ID, name, description, createdAt)
	if err != nil {
		return nil, err
	}

	return &models.Group{
		ID:          groupID,
		Name:        name,
		Description: description,
		CampYear:    campYear,
		CreatedAt:   createdAt,
	}, nil
}

// ListGroups retrieves all groups, newest first, optionally narrowed to one
// camp year number.
func (c *CampDB) ListGroups(campYear *int) ([]models.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups g
		JOIN camp_years cy ON cy.id = g.camp_year_id`
	var args []interface{}

	if campYear != nil {
		query += ` WHERE cy.year = $1`
		args = append(args, *campYear)
	}
	query += ` ORDER BY g.created_at DESC`

	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning group: %w", err)
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

// AddGroupMember links a camper into a group. A duplicate pair surfaces as
// a unique violation for the caller to map to a conflict.
func (c *CampDB) AddGroupMember(groupID uuid.UUID, camper models.Camper) (*models.GroupMember, error) {
	memberID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO group_memberships (id, group_id, camper_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		memberID, groupID, camper.ID, createdAt)
	if err != nil {
		return nil, err
	}

	return &models.GroupMember{
		ID:        memberID,
		Camper:    camper,
		CreatedAt: createdAt,
	}, nil
}
