package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

const camperColumns = `id, first_name, last_name, date_of_birth, emergency_info, created_at`

func scanCamper(row interface{ Scan(...interface{}) error }) (*models.Camper, error) {
	var cm models.Camper
	if err := row.Scan(
		&cm.ID,
		&cm.FirstName,
		&cm.LastName,
		&cm.DateOfBirth,
		&cm.EmergencyInfo,
		&cm.CreatedAt); err != nil {
		return nil, err
	}
	return &cm, nil
}

// GetCamper retrieves a single camper, or nil if absent.
func (c *CampDB) GetCamper(camperID uuid.UUID) (*models.Camper, error) {
	row := c.DB.QueryRow(`SELECT `+camperColumns+` FROM campers WHERE id = $1`, camperID)
	cm, err := scanCamper(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning camper: %w", err)
	}
	return cm, nil
}

// CreateCamper creates a standalone camper row with no ownership link.
func (c *CampDB) CreateCamper(req models.CamperCreateRequest) (*models.Camper, error) {
	camperID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO campers (id, first_name, last_name, date_of_birth, emergency_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		camperID, req.FirstName, req.LastName, req.DateOfBirth, req.EmergencyInfo, createdAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting camper: %w", err)
	}

	return &models.Camper{
		ID:            camperID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		EmergencyInfo: req.EmergencyInfo,
		CreatedAt:     createdAt,
	}, nil
}

// ListCampers retrieves all campers, newest first.
func (c *CampDB) ListCampers() ([]models.Camper, error) {
	rows, err := c.DB.Query(`SELECT ` + camperColumns + ` FROM campers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving campers: %w", err)
	}
	defer rows.Close()

	var campers []models.Camper
	for rows.Next() {
		cm, err := scanCamper(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning camper: %w", err)
		}
		campers = append(campers, *cm)
	}
	return campers, rows.Err()
}

// CreateCamperWithOwner creates the camper row and the parent's ownership
// link in the same transaction; if either insert fails, neither is
// committed.
func (c *CampDB) CreateCamperWithOwner(parentAccountID uuid.UUID, req models.CamperCreateRequest) (*models.ParentCamperLink, error) {
	tx, err := c.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	camperID := uuid.New()
	linkID := uuid.New()
	createdAt := time.Now().UTC()

	err = c.execQuery(tx, `
		INSERT INTO campers (id, first_name, last_name, date_of_birth, emergency_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		camperID, req.FirstName, req.LastName, req.DateOfBirth, req.EmergencyInfo, createdAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting camper: %w", err)
	}

	err = c.execQuery(tx, `
		INSERT INTO parent_campers (id, parent_account_id, camper_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		linkID, parentAccountID, camperID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting ownership link: %w", err)
	}

	if err = c.CommitTransaction(tx); err != nil {
		return nil, err
	}

	return &models.ParentCamperLink{
		ID: linkID,
		Camper: models.Camper{
			ID:            camperID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			DateOfBirth:   req.DateOfBirth,
			EmergencyInfo: req.EmergencyInfo,
			CreatedAt:     createdAt,
		},
		CreatedAt: createdAt,
	}, nil
}

// ListOwnedCampers retrieves the parent's ownership links with each camper
// embedded, newest first.
func (c *CampDB) ListOwnedCampers(parentAccountID uuid.UUID) ([]models.ParentCamperLink, error) {
	query := `
		SELECT pc.id, pc.created_at, cm.id, cm.first_name, cm.last_name, cm.date_of_birth, cm.emergency_info, cm.created_at
		FROM parent_campers pc
		JOIN campers cm ON cm.id = pc.camper_id
		WHERE pc.parent_account_id = $1
		ORDER BY pc.created_at DESC`
	rows, err := c.DB.Query(query, parentAccountID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving owned campers: %w", err)
	}
	defer rows.Close()

	var links []models.ParentCamperLink
	for rows.Next() {
		var link models.ParentCamperLink
		if err := rows.Scan(
			&link.ID,
			&link.CreatedAt,
			&link.Camper.ID,
			&link.Camper.FirstName,
			&link.Camper.LastName,
			&link.Camper.DateOfBirth,
			&link.Camper.EmergencyInfo,
			&link.Camper.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning ownership link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// OwnsCamper reports whether the parent account has an ownership link to
// the camper.
func (c *CampDB) OwnsCamper(parentAccountID, camperID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM parent_campers WHERE parent_account_id = $1 AND camper_id = $2)`
	var owns bool
	if err := c.DB.QueryRow(query, parentAccountID, camperID).Scan(&owns); err != nil {
		return false, fmt.Errorf("error checking camper ownership: %w", err)
	}
	return owns, nil
}
