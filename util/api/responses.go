package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/seanchosc/Life-Platforms-Suite/middleware"
	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// currentUserID pulls the authenticated account id out of the request context.
func currentUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized: User ID not found in session context.", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// currentProfile resolves the authenticated account to its profile. Most
// routes operate on profiles, not accounts; a logged-in user without a
// profile gets a 404 telling them to create one.
func currentProfile(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return nil, false
	}
	profile, err := service.GetProfileByUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "No profile for this account. Create one first.", http.StatusNotFound)
		} else {
			log.Printf("Error resolving profile for user %d: %v", userID, err)
			http.Error(w, "Database error resolving profile", http.StatusInternalServerError)
		}
		return nil, false
	}
	return profile, true
}

// writeServiceError maps domain errors onto HTTP statuses. Anything not in
// the taxonomy is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSelfReference),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrTooManyMedia),
		errors.Is(err, service.ErrInvalidMedia):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrNoPendingInvite):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrDuplicateInvite),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("Unexpected service error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
