package models

import (
	"time"

	"github.com/google/uuid"
)

// Camper represents a child attending the camp. Date of birth is kept as a
// free-form string.
type Camper struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   *string   `json:"date_of_birth"`
	EmergencyInfo *string   `json:"emergency_info"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParentCamperLink grants the owning parent account rights over the camper's
// enrollment and group data.
type ParentCamperLink struct {
	ID        uuid.UUID `json:"id"`
	Camper    Camper    `json:"camper"`
	CreatedAt time.Time `json:"created_at"`
}

type CamperCreateRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	DateOfBirth   *string `json:"date_of_birth"`
	EmergencyInfo *string `json:"emergency_info"`
}
