package models

import (
	"time"

	"github.com/google/uuid"
)

// CampYear is a yearly season under which groups and enrollments are scoped.
// Years referenced before an admin activates them are created inactive.
type CampYear struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
