package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// InviteCandidatesHandler lists the caller's accepted collaborators who can
// still be invited to the event.
// GET /events/{eventID}/candidates
func InviteCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	candidates, err := service.InviteCandidates(profile.ID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

// InviteToEventHandler invites a collaborator to an event.
// POST /events/{eventID}/invite
func InviteToEventHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	var req struct {
		InviteeID int64 `json:"invitee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	invite, err := service.InviteToEvent(profile.ID, eventID, req.InviteeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if event, err := service.GetEvent(eventID); err == nil {
		notifyEventInvite(profile, req.InviteeID, eventID, event.Title)
	}
	log.Printf("Profile %d invited profile %d to event %d", profile.ID, req.InviteeID, eventID)

	writeJSON(w, http.StatusCreated, invite)
}

// AcceptEventInviteHandler accepts the caller's pending invite to an event,
// making them a collaborator.
// POST /events/{eventID}/accept-invite
func AcceptEventInviteHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	membership, err := service.AcceptEventInvite(profile.ID, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("Profile %d accepted invite to event %d", profile.ID, eventID)
	writeJSON(w, http.StatusOK, membership)
}

// RejectEventInviteHandler rejects the caller's pending invite to an event.
// POST /events/{eventID}/reject-invite
func RejectEventInviteHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	if err := service.RejectEventInvite(profile.ID, eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("Profile %d rejected invite to event %d", profile.ID, eventID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Invite rejected."})
}

// ListMyEventInvitesHandler returns the caller's pending event invites,
// received by default, sent with ?direction=sent.
// GET /event-invites
func ListMyEventInvitesHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = "received"
	}

	invites, err := service.ListPendingEventInvitesFor(profile.ID, direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invites)
}
