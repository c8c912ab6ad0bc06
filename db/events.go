package db

import (
	"fmt"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
)

const eventColumns = `ev.id, ev.group_id, ev.title, ev.description, ev.location, ev.start_time, ev.end_time, ev.created_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.GroupEvent, error) {
	var ev models.GroupEvent
	if err := row.Scan(
		&ev.ID,
		&ev.GroupID,
		&ev.Title,
		&ev.Description,
		&ev.Location,
		&ev.StartTime,
		&ev.EndTime,
		&ev.CreatedAt); err != nil {
		return nil, err
	}
	return &ev, nil
}

// CreateEvent schedules an activity for a group. Validity of the time
// window is checked by the caller before reaching storage; the table's
// check constraint backstops it.
func (c *CampDB) CreateEvent(req models.GroupEventCreateRequest) (*models.GroupEvent, error) {
	eventID := uuid.New()
	createdAt := time.Now().UTC()

	_, err := c.DB.Exec(`
		INSERT INTO group_events (id, group_id, title, description, location, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		eventID, req.GroupID, req.Title, req.Description, req.Location, req.StartTime, req.EndTime, createdAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting group event: %w", err)
	}

	return &models.GroupEvent{
		ID:          eventID,
		GroupID:     req.GroupID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedAt:   createdAt,
	}, nil
}

// ListEvents retrieves events in ascending start-time order, optionally
// narrowed by group and by the group's camp year number.
func (c *CampDB) ListEvents(groupID *uuid.UUID, campYear *int) ([]models.GroupEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM group_events ev
		JOIN groups g ON g.id = ev.group_id
		JOIN camp_years cy ON cy.id = g.camp_year_id
		WHERE 1=1`
	var args []interface{}

	if campYear != nil {
		args = append(args, *campYear)
		query += fmt.Sprintf(" AND cy.year = $%d", len(args))
	}
	if groupID != nil {
		args = append(args, *groupID)
		query += fmt.Sprintf(" AND ev.group_id = $%d", len(args))
	}
	query += ` ORDER BY ev.start_time ASC`

	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	defer rows.Close()

	var events []models.GroupEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}
