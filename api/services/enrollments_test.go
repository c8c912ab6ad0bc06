package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/briarwood-camp/camp-services/api/middleware"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request carrying the account the bearer-auth
// middleware would have resolved.
func authedRequest(method, target string, body io.Reader, account models.Account) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.AccountKey, account)
	return req.WithContext(ctx)
}

func parentAccount() models.Account {
	return models.Account{
		ID:       uuid.New(),
		Email:    "parent@example.com",
		FullName: "Pat Example",
		Role:     models.RoleParent,
		IsActive: true,
	}
}

// TestCreateEnrollment tests enrolling an owned camper into a camp year
func TestCreateEnrollment(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	camperID := uuid.New()

	store.On("OwnsCamper", parent.ID, camperID).Return(true, nil)

	campYear := &models.CampYear{ID: uuid.New(), Year: 2026}
	store.On("GetOrCreateCampYear", 2026).Return(campYear, nil)

	enrollment := &models.Enrollment{
		ID:       uuid.New(),
		Status:   models.EnrollmentPending,
		CampYear: *campYear,
		Camper:   models.Camper{ID: camperID, FirstName: "Ada", LastName: "Example"},
	}
	store.On("CreateEnrollment", campYear.ID, camperID).Return(enrollment, nil)

	req := authedRequest(http.MethodPost, "/parent/enrollments", jsonBody(t, models.EnrollmentCreateRequest{
		CamperID: camperID,
		CampYear: 2026,
	}), parent)
	rec := httptest.NewRecorder()

	svc.CreateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got models.Enrollment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.EnrollmentPending, got.Status, "new enrollments start pending")

	store.AssertExpectations(t)
}

// TestCreateEnrollmentNotOwned tests the ownership gate
func TestCreateEnrollmentNotOwned(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	camperID := uuid.New()

	store.On("OwnsCamper", parent.ID, camperID).Return(false, nil)

	req := authedRequest(http.MethodPost, "/parent/enrollments", jsonBody(t, models.EnrollmentCreateRequest{
		CamperID: camperID,
		CampYear: 2026,
	}), parent)
	rec := httptest.NewRecorder()

	svc.CreateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "an unowned camper should answer 403")
	store.AssertNotCalled(t, "CreateEnrollment", mock.Anything, mock.Anything)
}

// TestCreateEnrollmentDuplicate tests the conflict answer when the camper is
// already enrolled for the year
func TestCreateEnrollmentDuplicate(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	camperID := uuid.New()

	store.On("OwnsCamper", parent.ID, camperID).Return(true, nil)

	campYear := &models.CampYear{ID: uuid.New(), Year: 2026}
	store.On("GetOrCreateCampYear", 2026).Return(campYear, nil)

	var noEnrollment *models.Enrollment
	store.On("CreateEnrollment", campYear.ID, camperID).Return(noEnrollment, uniqueViolationErr())

	req := authedRequest(http.MethodPost, "/parent/enrollments", jsonBody(t, models.EnrollmentCreateRequest{
		CamperID: camperID,
		CampYear: 2026,
	}), parent)
	rec := httptest.NewRecorder()

	svc.CreateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code, "a repeat enrollment should answer 409")
	assert.Contains(t, rec.Body.String(), "already enrolled")
}

// TestUpdateEnrollmentInvalidStatus tests that an unknown status is rejected
// before any storage call
func TestUpdateEnrollmentInvalidStatus(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	enrollmentID := uuid.New()

	req := authedRequest(http.MethodPut, "/parent/enrollments/"+enrollmentID.String(),
		jsonBody(t, models.EnrollmentUpdateRequest{Status: "approved"}), parent)
	req = mux.SetURLVars(req, map[string]string{"enrollment-id": enrollmentID.String()})
	rec := httptest.NewRecorder()

	svc.UpdateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "GetEnrollment", mock.Anything)
	store.AssertNotCalled(t, "UpdateEnrollment", mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateEnrollment tests a status change on an owned enrollment
func TestUpdateEnrollment(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	enrollmentID := uuid.New()
	camperID := uuid.New()

	current := &models.Enrollment{
		ID:     enrollmentID,
		Status: models.EnrollmentPending,
		Camper: models.Camper{ID: camperID},
	}
	store.On("GetEnrollment", enrollmentID).Return(current, nil)
	store.On("OwnsCamper", parent.ID, camperID).Return(true, nil)

	updated := &models.Enrollment{
		ID:     enrollmentID,
		Status: models.EnrollmentWithdrawn,
		Camper: models.Camper{ID: camperID},
	}
	store.On("UpdateEnrollment", enrollmentID, models.EnrollmentWithdrawn, (*string)(nil)).Return(updated, nil)

	req := authedRequest(http.MethodPut, "/parent/enrollments/"+enrollmentID.String(),
		jsonBody(t, models.EnrollmentUpdateRequest{Status: "withdrawn"}), parent)
	req = mux.SetURLVars(req, map[string]string{"enrollment-id": enrollmentID.String()})
	rec := httptest.NewRecorder()

	svc.UpdateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Enrollment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.EnrollmentWithdrawn, got.Status)

	store.AssertExpectations(t)
}

// TestUpdateEnrollmentNotOwned tests that a parent cannot touch an
// enrollment whose camper belongs to somebody else
func TestUpdateEnrollmentNotOwned(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	enrollmentID := uuid.New()
	camperID := uuid.New()

	current := &models.Enrollment{
		ID:     enrollmentID,
		Status: models.EnrollmentPending,
		Camper: models.Camper{ID: camperID},
	}
	store.On("GetEnrollment", enrollmentID).Return(current, nil)
	store.On("OwnsCamper", parent.ID, camperID).Return(false, nil)

	req := authedRequest(http.MethodPut, "/parent/enrollments/"+enrollmentID.String(),
		jsonBody(t, models.EnrollmentUpdateRequest{Status: "withdrawn"}), parent)
	req = mux.SetURLVars(req, map[string]string{"enrollment-id": enrollmentID.String()})
	rec := httptest.NewRecorder()

	svc.UpdateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "an unowned camper should answer 403")
	store.AssertNotCalled(t, "UpdateEnrollment", mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateEnrollmentNotFound tests the 404 answer for an absent enrollment
func TestUpdateEnrollmentNotFound(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()
	enrollmentID := uuid.New()

	var noEnrollment *models.Enrollment
	store.On("GetEnrollment", enrollmentID).Return(noEnrollment, nil)

	req := authedRequest(http.MethodPut, "/parent/enrollments/"+enrollmentID.String(),
		jsonBody(t, models.EnrollmentUpdateRequest{Status: "admitted"}), parent)
	req = mux.SetURLVars(req, map[string]string{"enrollment-id": enrollmentID.String()})
	rec := httptest.NewRecorder()

	svc.UpdateEnrollmentService(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	store.AssertNotCalled(t, "UpdateEnrollment", mock.Anything, mock.Anything, mock.Anything)
}

// TestListEnrollmentsUnknownYear tests that filtering on a year nobody has
// touched yields an empty list rather than an error
func TestListEnrollmentsUnknownYear(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	parent := parentAccount()

	var noYear *models.CampYear
	store.On("GetCampYearByYear", 1999).Return(noYear, nil)

	req := authedRequest(http.MethodGet, "/parent/enrollments?camp_year=1999", nil, parent)
	rec := httptest.NewRecorder()

	svc.ListEnrollmentsService(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	store.AssertNotCalled(t, "ListEnrollmentsForParent", mock.Anything, mock.Anything)
}
