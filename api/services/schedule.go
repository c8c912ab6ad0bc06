package services

import (
	"fmt"
	"net/http"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GetScheduleService builds the parent's flattened per-camper schedule:
// ownership links -> group memberships -> events, fanned out to one record
// per (event, attending camper). A camper in two groups with overlapping
// events yields two records; a group with two owned campers yields one
// record per camper for the same event. Records keep the ascending event
// start-time ordering of the underlying query.
func (svc *Service) GetScheduleService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	yearFilter, ok := campYearQuery(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "camp_year must be an integer")
		return
	}

	ownedIDs, err := svc.DB.OwnedCamperIDs(account.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving owned campers")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(ownedIDs) == 0 {
		WriteResponse(w, http.StatusOK, []models.ScheduleItem{})
		return
	}

	// A camper filter must name an owned camper and narrows the working
	// set to that one.
	camperIDs := ownedIDs
	if raw := r.URL.Query().Get("camper_id"); raw != "" {
		camperID, err := uuid.Parse(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "camper_id must be a UUID")
			return
		}
		owned := false
		for _, id := range ownedIDs {
			if id == camperID {
				owned = true
				break
			}
		}
		if !owned {
			WriteError(w, http.StatusForbidden, "parent does not own this camper")
			return
		}
		camperIDs = []uuid.UUID{camperID}
	}

	memberships, err := svc.DB.MembershipsForCampers(camperIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving memberships")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(memberships) == 0 {
		WriteResponse(w, http.StatusOK, []models.ScheduleItem{})
		return
	}

	// Distinct group IDs, and the camper -> groups index for the fan-out.
	camperGroups := make(map[uuid.UUID]map[uuid.UUID]bool)
	var groupIDs []uuid.UUID
	seenGroup := make(map[uuid.UUID]bool)
	for _, m := range memberships {
		if camperGroups[m.CamperID] == nil {
			camperGroups[m.CamperID] = make(map[uuid.UUID]bool)
		}
		camperGroups[m.CamperID][m.GroupID] = true
		if !seenGroup[m.GroupID] {
			seenGroup[m.GroupID] = true
			groupIDs = append(groupIDs, m.GroupID)
		}
	}

	events, err := svc.DB.EventsForGroups(groupIDs, yearFilter)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving group events")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	campers, err := svc.DB.CampersByIDs(camperIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving campers")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	groups, err := svc.DB.GroupsByIDs(groupIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving groups")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := []models.ScheduleItem{}
	for _, ev := range events {
		for _, camperID := range camperIDs {
			if !camperGroups[camperID][ev.GroupID] {
				continue
			}
			camper, ok := campers[camperID]
			if !ok {
				continue
			}
			group, ok := groups[ev.GroupID]
			if !ok {
				continue
			}
			items = append(items, models.ScheduleItem{
				CamperID:   camperID,
				CamperName: fmt.Sprintf("%s %s", camper.FirstName, camper.LastName),
				GroupID:    group.ID,
				GroupName:  group.Name,
				EventID:    ev.ID,
				Title:      ev.Title,
				StartTime:  ev.StartTime,
				EndTime:    ev.EndTime,
				Location:   ev.Location,
			})
		}
	}

	logger.Info().Int("item_count", len(items)).Msg("Schedule assembled")
	WriteResponse(w, http.StatusOK, items)
}
