package api

import (
	"net/http"

	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// DashboardResponse is the single payload backing the landing page.
type DashboardResponse struct {
	Profile              *models.Profile                   `json:"profile"`
	Events               []models.Event                    `json:"events"`
	Collaborators        []models.CollaboratorInfo         `json:"collaborators"`
	PendingSent          []models.PendingCollaborationInfo `json:"pending_sent"`
	PendingReceived      []models.PendingCollaborationInfo `json:"pending_received"`
	EventInvitesSent     []models.EventInviteInfo          `json:"event_invites_sent"`
	EventInvitesReceived []models.EventInviteInfo          `json:"event_invites_received"`
}

// DashboardHandler assembles everything the landing page shows in one
// request: the calendar-ordered events plus both sides of the pending
// relationship and event-invite queues.
// GET /dashboard
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	events, err := service.OrderedEvents(profile.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	collaborators, err := service.ListAccepted(profile.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	pendingSent, err := service.ListPendingCollaborations(profile.ID, "sent")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	pendingReceived, err := service.ListPendingCollaborations(profile.ID, "received")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	invitesSent, err := service.ListPendingEventInvitesFor(profile.ID, "sent")
	if err != nil {
		writeServiceError(w, err)
		return
	}
	invitesReceived, err := service.ListPendingEventInvitesFor(profile.ID, "received")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DashboardResponse{
		Profile:              profile,
		Events:               events,
		Collaborators:        collaborators,
		PendingSent:          pendingSent,
		PendingReceived:      pendingReceived,
		EventInvitesSent:     invitesSent,
		EventInvitesReceived: invitesReceived,
	})
}
