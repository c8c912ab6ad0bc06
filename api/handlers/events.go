package handlers

import (
	"net/http"

	services "github.com/briarwood-camp/camp-services/api/services"
)

func CreateEvent(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreateEventService(w, r)
	}
}

func ListEvents(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.ListEventsService(w, r)
	}
}
