package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// CreateEventHandler creates an event owned by the caller.
// POST /events
func CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	event, err := service.CreateEvent(profile.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("Profile %d created event %d (%s)", profile.ID, event.ID, event.Title)
	writeJSON(w, http.StatusCreated, event)
}

// ListEventsHandler returns the caller's events, created and collaborating,
// in calendar order.
// GET /events
func ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	events, err := service.OrderedEvents(profile.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// GetEventHandler returns the full event page payload: the event, its
// confirmed collaborators, pending invites, posts, and what the caller may
// do on it.
// GET /events/{eventID}
func GetEventHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	event, err := service.GetEvent(eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	collaborators, err := service.ListEventCollaborators(eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	pendingInvites, err := service.ListPendingEventInvites(eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	posts, err := service.ListPosts(eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	canPost, err := service.CanPost(profile.ID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	canInvite, err := service.CanInvite(profile.ID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.EventDetails{
		Event:          *event,
		Collaborators:  collaborators,
		PendingInvites: pendingInvites,
		Posts:          posts,
		CanPost:        canPost,
		CanInvite:      canInvite,
	})
}

// UpdateEventHandler updates an event. Only the creator may update.
// PUT /events/{eventID}
func UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	event, err := service.UpdateEvent(profile.ID, eventID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}
