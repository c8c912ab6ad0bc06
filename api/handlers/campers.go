package handlers

import (
	"net/http"

	services "github.com/briarwood-camp/camp-services/api/services"
)

func CreateCamper(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreateCamperService(w, r)
	}
}

func ListCampers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.ListCampersService(w, r)
	}
}

func AddChild(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.AddChildService(w, r)
	}
}

func ListChildren(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.ListChildrenService(w, r)
	}
}
