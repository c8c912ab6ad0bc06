package services

import (
	"encoding/json"
	"net/http"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CreateEventService schedules an activity for a group (admin). The time
// window is validated before anything is persisted.
func (svc *Service) CreateEventService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.GroupEventCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Title == "" || payload.GroupID == uuid.Nil {
		WriteError(w, http.StatusBadRequest, "group_id and title are required")
		return
	}
	if !payload.EndTime.After(payload.StartTime) {
		WriteError(w, http.StatusBadRequest, "end_time must be after start_time")
		return
	}

	group, err := svc.DB.GetGroup(payload.GroupID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving group")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if group == nil {
		WriteError(w, http.StatusNotFound, "group not found")
		return
	}

	event, err := svc.DB.CreateEvent(payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create event in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("event_id", event.ID.String()).Msg("Group event created")
	WriteResponse(w, http.StatusCreated, *event)
}

// ListEventsService retrieves events in ascending start-time order (admin),
// optionally narrowed by group and camp year.
func (svc *Service) ListEventsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	yearFilter, ok := campYearQuery(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "camp_year must be an integer")
		return
	}

	var groupFilter *uuid.UUID
	if raw := r.URL.Query().Get("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "group_id must be a UUID")
			return
		}
		groupFilter = &groupID
	}

	events, err := svc.DB.ListEvents(groupFilter, yearFilter)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve events from database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if events == nil {
		events = []models.GroupEvent{}
	}

	WriteResponse(w, http.StatusOK, events)
}
