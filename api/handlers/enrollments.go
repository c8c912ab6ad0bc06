package handlers

import (
	"net/http"

	services "github.com/briarwood-camp/camp-services/api/services"
)

func CreateEnrollment(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreateEnrollmentService(w, r)
	}
}

func ListEnrollments(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.ListEnrollmentsService(w, r)
	}
}

func UpdateEnrollment(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.UpdateEnrollmentService(w, r)
	}
}

func GetSchedule(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetScheduleService(w, r)
	}
}
