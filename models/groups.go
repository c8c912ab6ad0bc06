package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named cohort of campers within a camp year. The (camp year,
// name) pair is unique.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CampYear    CampYear  `json:"camp_year"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMember is the response shape for adding a camper to a group.
type GroupMember struct {
	ID        uuid.UUID `json:"id"`
	Camper    Camper    `json:"camper"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMembership is the raw (group, camper) association row, used by the
// schedule aggregation.
type GroupMembership struct {
	ID       uuid.UUID `json:"id"`
	GroupID  uuid.UUID `json:"group_id"`
	CamperID uuid.UUID `json:"camper_id"`
}

type GroupCreateRequest struct {
	CampYear    int     `json:"camp_year"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type GroupMembershipCreateRequest struct {
	CamperID uuid.UUID `json:"camper_id"`
}
