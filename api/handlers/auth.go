package handlers

import (
	"net/http"

	services "github.com/briarwood-camp/camp-services/api/services"
	_ "github.com/lib/pq"
)

func RegisterParent(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.RegisterParentService(w, r)
	}
}

func Login(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.LoginService(w, r)
	}
}

func Me(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.MeService(w, r)
	}
}
