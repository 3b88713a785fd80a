package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// RequestCollaborationHandler sends a friend or work collaboration request
// to another profile.
// POST /profiles/{profileID}/collaborate
func RequestCollaborationHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	targetID, err := strconv.ParseInt(r.PathValue("profileID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid profile ID in URL path", http.StatusBadRequest)
		return
	}

	var req models.CollaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	collab, err := service.RequestCollaboration(profile.ID, targetID, req.CollaboratorType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	notifyCollaborationRequest(profile, targetID, collab.CollaboratorType)
	log.Printf("Profile %d requested %s collaboration with profile %d", profile.ID, collab.CollaboratorType, targetID)

	writeJSON(w, http.StatusCreated, models.CollaborationStatusResponse{
		TargetProfileID:  targetID,
		CollaboratorType: collab.CollaboratorType,
		Status:           collab.InviteStatus,
		Message:          "Collaboration request sent and pending approval.",
	})
}

// HandleCollaborationRequestHandler accepts or rejects a pending
// collaboration request from another profile.
// PATCH /collab-requests/{requesterID}
func HandleCollaborationRequestHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	requesterID, err := strconv.ParseInt(r.PathValue("requesterID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid requester ID in URL path", http.StatusBadRequest)
		return
	}

	var req models.CollaborationRequestAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Action != "accept" && req.Action != "reject" {
		http.Error(w, "Invalid action. Must be 'accept' or 'reject'.", http.StatusBadRequest)
		return
	}

	collab, err := service.RespondCollaboration(profile.ID, requesterID, req.CollaboratorType, req.Action)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	message := "Collaboration request rejected."
	if req.Action == "accept" {
		message = "Collaboration request accepted."
		notifyCollaborationAccepted(profile, requesterID)
	}
	log.Printf("Profile %d %sed %s collaboration request from profile %d", profile.ID, req.Action, req.CollaboratorType, requesterID)

	writeJSON(w, http.StatusOK, models.CollaborationStatusResponse{
		TargetProfileID:  requesterID,
		CollaboratorType: collab.CollaboratorType,
		Status:           collab.InviteStatus,
		Message:          message,
	})
}

// ListCollaboratorsHandler returns the caller's accepted collaborators.
// GET /collaborators
func ListCollaboratorsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	collaborators, err := service.ListAccepted(profile.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collaborators)
}

// ListPendingCollaborationsHandler returns pending collaboration requests
// for the caller, received by default, sent with ?direction=sent.
// GET /collab-requests
func ListPendingCollaborationsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = "received"
	}

	pending, err := service.ListPendingCollaborations(profile.ID, direction)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}
