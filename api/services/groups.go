package services

import (
	"encoding/json"
	"net/http"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CreateParentService creates a parent account on behalf of an admin. Same
// contract as self-registration.
func (svc *Service) CreateParentService(w http.ResponseWriter, r *http.Request) {
	svc.RegisterParentService(w, r)
}

// CreateGroupService creates a group under a camp year (admin). The year is
// created on first reference; the name must be unique within the year.
func (svc *Service) CreateGroupService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.GroupCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Name == "" || payload.CampYear == 0 {
		WriteError(w, http.StatusBadRequest, "name and camp_year are required")
		return
	}

	campYear, err := svc.DB.GetOrCreateCampYear(payload.CampYear)
	if err != nil {
		logger.Error().Err(err).Msg("Database error resolving camp year")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	group, err := svc.DB.CreateGroup(*campYear, payload.Name, payload.Description)
	if err != nil {
		if isUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "group name already exists for this camp year")
			return
		}
		logger.Error().Err(err).Msg("Failed to create group in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("group_id", group.ID.String()).Msg("Group created")
	WriteResponse(w, http.StatusCreated, *group)
}

// ListGroupsService retrieves all groups (admin), optionally narrowed to
// one camp year.
func (svc *Service) ListGroupsService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	yearFilter, ok := campYearQuery(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "camp_year must be an integer")
		return
	}

	groups, err := svc.DB.ListGroups(yearFilter)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve groups from database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if groups == nil {
		groups = []models.Group{}
	}

	WriteResponse(w, http.StatusOK, groups)
}

// AddGroupMemberService links a camper into a group (admin). Both sides
// must exist; the pair must be new.
func (svc *Service) AddGroupMemberService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	groupID, err := uuid.Parse(mux.Vars(r)["group-id"])
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var payload models.GroupMembershipCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.CamperID == uuid.Nil {
		WriteError(w, http.StatusBadRequest, "camper_id is required")
		return
	}

	group, err := svc.DB.GetGroup(groupID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving group")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if group == nil {
		WriteError(w, http.StatusNotFound, "group not found")
		return
	}

	camper, err := svc.DB.GetCamper(payload.CamperID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving camper")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if camper == nil {
		WriteError(w, http.StatusNotFound, "camper not found")
		return
	}

	member, err := svc.DB.AddGroupMember(groupID, *camper)
	if err != nil {
		if isUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "camper already in group")
			return
		}
		logger.Error().Err(err).Msg("Failed to add group member in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().
		Str("group_id", groupID.String()).
		Str("camper_id", camper.ID.String()).
		Msg("Group member added")
	WriteResponse(w, http.StatusCreated, *member)
}
