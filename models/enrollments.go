package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the closed set of enrollment states.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentAdmitted  EnrollmentStatus = "admitted"
	EnrollmentWithdrawn EnrollmentStatus = "withdrawn"
)

// Valid reports whether s is one of the known statuses.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentAdmitted, EnrollmentWithdrawn:
		return true
	}
	return false
}

// Enrollment is a camper's application for a camp year. The (camp year,
// camper) pair is unique.
type Enrollment struct {
	ID        uuid.UUID        `json:"id"`
	Status    EnrollmentStatus `json:"status"`
	Notes     *string          `json:"notes"`
	CampYear  CampYear         `json:"camp_year"`
	Camper    Camper           `json:"camper"`
	CreatedAt time.Time        `json:"created_at"`
}

type EnrollmentCreateRequest struct {
	CamperID uuid.UUID `json:"camper_id"`
	CampYear int       `json:"camp_year"`
}

type EnrollmentUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}
