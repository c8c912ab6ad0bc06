package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupEvent is a scheduled activity for a camp group. The end time is
// always after the start time.
type GroupEvent struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type GroupEventCreateRequest struct {
	GroupID     uuid.UUID `json:"group_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// ScheduleItem is one flattened row of the parent schedule view: one camper
// attending one event through one group membership.
type ScheduleItem struct {
	CamperID   uuid.UUID `json:"camper_id"`
	CamperName string    `json:"camper_name"`
	GroupID    uuid.UUID `json:"group_id"`
	GroupName  string    `json:"group_name"`
	EventID    uuid.UUID `json:"event_id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Location   *string   `json:"location"`
}
