package services

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// campYearQuery parses the optional camp_year query parameter. The bool is
// false when the parameter is present but malformed.
func campYearQuery(r *http.Request) (*int, bool) {
	raw := r.URL.Query().Get("camp_year")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &year, true
}

// CreateEnrollmentService enrolls an owned camper into a camp year
// (parent). The year is created on first reference.
func (svc *Service) CreateEnrollmentService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var payload models.EnrollmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.CamperID == uuid.Nil || payload.CampYear == 0 {
		WriteError(w, http.StatusBadRequest, "camper_id and camp_year are required")
		return
	}

	owns, err := svc.DB.OwnsCamper(account.ID, payload.CamperID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error checking camper ownership")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !owns {
		WriteError(w, http.StatusForbidden, "parent does not own this camper")
		return
	}

	campYear, err := svc.DB.GetOrCreateCampYear(payload.CampYear)
	if err != nil {
		logger.Error().Err(err).Msg("Database error resolving camp year")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	enrollment, err := svc.DB.CreateEnrollment(campYear.ID, payload.CamperID)
	if err != nil {
		if isUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "already enrolled for this camp year")
			return
		}
		logger.Error().Err(err).Msg("Failed to create enrollment in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("enrollment_id", enrollment.ID.String()).Msg("Enrollment created")
	WriteResponse(w, http.StatusCreated, *enrollment)
}

// ListEnrollmentsService retrieves enrollments for the caller's campers
// (parent), optionally narrowed to one camp year. An unknown year yields an
// empty list, not an error.
func (svc *Service) ListEnrollmentsService(w http.ResponseWriter, r *http.Request) {

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

	var campYearID *uuid.UUID
	if yearFilter != nil {
		campYear, err := svc.DB.GetCampYearByYear(*yearFilter)
		if err != nil {
			logger.Error().Err(err).Msg("Database error resolving camp year")
			WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if campYear == nil {
			WriteResponse(w, http.StatusOK, []models.Enrollment{})
			return
		}
		campYearID = &campYear.ID
	}

	enrollments, err := svc.DB.ListEnrollmentsForParent(account.ID, campYearID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve enrollments from database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}

	WriteResponse(w, http.StatusOK, enrollments)
}

// UpdateEnrollmentService replaces an enrollment's status and notes
// (parent). The caller must own the camper linked to the enrollment.
func (svc *Service) UpdateEnrollmentService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	enrollmentID, err := uuid.Parse(mux.Vars(r)["enrollment-id"])
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid enrollment id")
		return
	}

	var payload models.EnrollmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	// Validate the status before it can reach storage.
	status := models.EnrollmentStatus(payload.Status)
	if !status.Valid() {
		WriteError(w, http.StatusBadRequest, "status must be one of pending, admitted, withdrawn")
		return
	}

	enrollment, err := svc.DB.GetEnrollment(enrollmentID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error retrieving enrollment")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if enrollment == nil {
		WriteError(w, http.StatusNotFound, "enrollment not found")
		return
	}

	owns, err := svc.DB.OwnsCamper(account.ID, enrollment.Camper.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Database error checking camper ownership")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !owns {
		WriteError(w, http.StatusForbidden, "parent does not own this camper")
		return
	}

	updated, err := svc.DB.UpdateEnrollment(enrollmentID, status, payload.Notes)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to update enrollment in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("enrollment_id", enrollmentID.String()).Msg("Enrollment updated")
	WriteResponse(w, http.StatusOK, *updated)
}
