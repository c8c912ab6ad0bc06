package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/briarwood-camp/camp-services/api/middleware"
	"github.com/briarwood-camp/camp-services/models"
	"github.com/lib/pq"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// WriteError responds with a short human-readable message in the shared
// error shape.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteResponse(w, statusCode, models.Response{Success: 0, ErrorDetails: message})
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, so uniqueness races surface as a Conflict.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// accountFromContext pulls the authenticated account placed there by the
// bearer-auth middleware.
func accountFromContext(r *http.Request) (models.Account, bool) {
	account, ok := r.Context().Value(middleware.AccountKey).(models.Account)
	return account, ok
}

// validEmail is a light shape check on the address.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
