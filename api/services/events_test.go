package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestCreateEvent tests scheduling an activity for an existing group
func TestCreateEvent(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	groupID := uuid.New()
	start := time.Date(2026, 7, 6, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	group := &models.Group{ID: groupID, Name: "Otters"}
	store.On("GetGroup", groupID).Return(group, nil)

	payload := models.GroupEventCreateRequest{
		GroupID:   groupID,
		Title:     "Canoeing",
		StartTime: start,
		EndTime:   end,
	}
	store.On("CreateEvent", payload).Return(&models.GroupEvent{
		ID:        uuid.New(),
		GroupID:   groupID,
		Title:     "Canoeing",
		StartTime: start,
		EndTime:   end,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/events", jsonBody(t, payload))
	rec := httptest.NewRecorder()

	svc.CreateEventService(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	store.AssertExpectations(t)
}

// TestCreateEventBadWindow tests that a non-positive time window is rejected
// before anything reaches storage
func TestCreateEventBadWindow(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	start := time.Date(2026, 7, 6, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Hour)},
		{"end equals start", start},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/events", jsonBody(t, models.GroupEventCreateRequest{
				GroupID:   uuid.New(),
				Title:     "Canoeing",
				StartTime: start,
				EndTime:   tc.end,
			}))
			rec := httptest.NewRecorder()

			svc.CreateEventService(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "end_time must be after start_time")
		})
	}

	store.AssertNotCalled(t, "CreateEvent", mock.Anything)
	store.AssertNotCalled(t, "GetGroup", mock.Anything)
}

// TestCreateEventUnknownGroup tests the 404 answer for an absent group
func TestCreateEventUnknownGroup(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)
	groupID := uuid.New()
	start := time.Date(2026, 7, 6, 9, 0, 0, 0, time.UTC)

	var noGroup *models.Group
	store.On("GetGroup", groupID).Return(noGroup, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/events", jsonBody(t, models.GroupEventCreateRequest{
		GroupID:   groupID,
		Title:     "Canoeing",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}))
	rec := httptest.NewRecorder()

	svc.CreateEventService(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	store.AssertNotCalled(t, "CreateEvent", mock.Anything)
}

// TestListEventsBadFilters tests rejection of malformed query filters
func TestListEventsBadFilters(t *testing.T) {
	store := new(MockCampStore)
	svc := newTestService(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/events?camp_year=twenty", nil)
	rec := httptest.NewRecorder()
	svc.ListEventsService(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/events?group_id=not-a-uuid", nil)
	rec = httptest.NewRecorder()
	svc.ListEventsService(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	store.AssertNotCalled(t, "ListEvents", mock.Anything, mock.Anything)
}
