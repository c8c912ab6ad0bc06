package db

import (
	"fmt"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// OwnedCamperIDs resolves the full set of camper IDs owned by the parent
// account.
func (c *CampDB) OwnedCamperIDs(parentAccountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := c.DB.Query(`SELECT camper_id FROM parent_campers WHERE parent_account_id = $1`, parentAccountID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving owned camper ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning camper id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MembershipsForCampers retrieves all group memberships for the camper set.
func (c *CampDB) MembershipsForCampers(camperIDs []uuid.UUID) ([]models.GroupMembership, error) {
	rows, err := c.DB.Query(
		`SELECT id, group_id, camper_id FROM group_memberships WHERE camper_id = ANY($1)`,
		pq.Array(uuidStrings(camperIDs)))
	if err != nil {
		return nil, fmt.Errorf("error retrieving memberships: %w", err)
	}
	defer rows.Close()

	var memberships []models.GroupMembership
	for rows.Next() {
		var m models.GroupMembership
		if err := rows.Scan(&m.ID, &m.GroupID, &m.CamperID); err != nil {
			return nil, fmt.Errorf("error scanning membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

// EventsForGroups retrieves the events of the group set in ascending
// start-time order, optionally narrowed to one camp year number via the
// owning group.
func (c *CampDB) EventsForGroups(groupIDs []uuid.UUID, campYear *int) ([]models.GroupEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM group_events ev
		JOIN groups g ON g.id = ev.group_id
		JOIN camp_years cy ON cy.id = g.camp_year_id
		WHERE ev.group_id = ANY($1)`
	args := []interface{}{pq.Array(uuidStrings(groupIDs))}

	if campYear != nil {
		query += ` AND cy.year = $2`
		args = append(args, *campYear)
	}
	query += ` ORDER BY ev.start_time ASC`

	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group events: %w", err)
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

// CampersByIDs retrieves the named campers keyed by ID.
func (c *CampDB) CampersByIDs(camperIDs []uuid.UUID) (map[uuid.UUID]models.Camper, error) {
	rows, err := c.DB.Query(
		`SELECT `+camperColumns+` FROM campers WHERE id = ANY($1)`,
		pq.Array(uuidStrings(camperIDs)))
	if err != nil {
		return nil, fmt.Errorf("error retrieving campers: %w", err)
	}
	defer rows.Close()

	campers := make(map[uuid.UUID]models.Camper)
	for rows.Next() {
		cm, err := scanCamper(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning camper: %w", err)
		}
		campers[cm.ID] = *cm
	}
	return campers, rows.Err()
}

// GroupsByIDs retrieves the named groups keyed by ID.
func (c *CampDB) GroupsByIDs(groupIDs []uuid.UUID) (map[uuid.UUID]models.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups g
		JOIN camp_years cy ON cy.id = g.camp_year_id
		WHERE g.id = ANY($1)`
	rows, err := c.DB.Query(query, pq.Array(uuidStrings(groupIDs)))
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	defer rows.Close()

	groups := make(map[uuid.UUID]models.Group)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning group: %w", err)
		}
		groups[g.ID] = *g
	}
	return groups, rows.Err()
}
