package handlers

import (
	"net/http"

	services "github.com/briarwood-camp/camp-services/api/services"
)

func CreateParent(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreateParentService(w, r)
	}
}

func CreateGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.CreateGroupService(w, r)
	}
}

func ListGroups(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.ListGroupsService(w, r)
	}
}

func AddGroupMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.AddGroupMemberService(w, r)
	}
}
