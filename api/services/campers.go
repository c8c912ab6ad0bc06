package services

import (
	"encoding/json"
	"net/http"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/rs/zerolog"
)

func decodeCamperCreate(w http.ResponseWriter, r *http.Request) (*models.CamperCreateRequest, bool) {
	var payload models.CamperCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Invalid request payload")
		WriteError(w, http.StatusBadRequest, "invalid request payload")
		return nil, false
	}
	if payload.FirstName == "" || payload.LastName == "" {
		WriteError(w, http.StatusBadRequest, "first_name and last_name are required")
		return nil, false
	}
	return &payload, true
}

// CreateCamperService creates a camper with no ownership link (admin
// intake).
func (svc *Service) CreateCamperService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	payload, ok := decodeCamperCreate(w, r)
	if !ok {
		return
	}

	camper, err := svc.DB.CreateCamper(*payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create camper in database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().Str("camper_id", camper.ID.String()).Msg("Camper created")
	WriteResponse(w, http.StatusCreated, *camper)
}

// ListCampersService retrieves all campers (admin).
func (svc *Service) ListCampersService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	campers, err := svc.DB.ListCampers()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve campers from database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if campers == nil {
		campers = []models.Camper{}
	}

	WriteResponse(w, http.StatusOK, campers)
}

// AddChildService creates a camper and the caller's ownership link in one
// transaction (parent).
func (svc *Service) AddChildService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	payload, ok := decodeCamperCreate(w, r)
	if !ok {
		return
	}

	link, err := svc.DB.CreateCamperWithOwner(account.ID, *payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create camper with ownership link")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info().
		Str("camper_id", link.Camper.ID.String()).
		Str("parent_id", account.ID.String()).
		Msg("Child added")
	WriteResponse(w, http.StatusCreated, *link)
}

// ListChildrenService retrieves the caller's ownership links (parent).
func (svc *Service) ListChildrenService(w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	account, ok := accountFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	links, err := svc.DB.ListOwnedCampers(account.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve owned campers from database")
		WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if links == nil {
		links = []models.ParentCamperLink{}
	}

	WriteResponse(w, http.StatusOK, links)
}
