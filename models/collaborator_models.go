package models

import "time"

// Collaborator types and invite statuses shared by the relationship and
// event-collaboration tables.
const (
	CollaboratorTypeFriend = "friend"
	CollaboratorTypeWork   = "work"

	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
)

// Collaborator represents a directed relationship edge between two profiles.
type Collaborator struct {
	ID               int64     `json:"id"`
	InviterID        int64     `json:"inviter_id"`
	InviteeID        int64     `json:"invitee_id"`
	CollaboratorType string    `json:"collaborator_type"`
	InviteStatus     string    `json:"invite_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CollaborationRequest is the body for sending a collaboration request.
type CollaborationRequest struct {
	CollaboratorType string `json:"collaborator_type"` // "friend" or "work"
}

// CollaborationRequestAction is used when accepting or rejecting a
// collaboration request.
type CollaborationRequestAction struct {
	CollaboratorType string `json:"collaborator_type"`
	Action           string `json:"action"` // "accept" or "reject"
}

// CollaborationStatusResponse indicates the result of a relationship action.
type CollaborationStatusResponse struct {
	TargetProfileID  int64  `json:"target_profile_id"`
	CollaboratorType string `json:"collaborator_type"`
	Status           string `json:"status"`
	Message          string `json:"message,omitempty"`
}

// CollaboratorInfo is one entry in an accepted-collaborator listing: the
// other party of the edge, collapsed regardless of invite direction.
type CollaboratorInfo struct {
	Profile          ProfileSummary `json:"profile"`
	CollaboratorType string         `json:"collaborator_type"`
	RelType          string         `json:"rel_type"` // "inviter" or "invitee", this profile's side
}

// PendingCollaborationInfo is a pending request as seen from either side.
type PendingCollaborationInfo struct {
	CollaborationID  int64          `json:"collaboration_id"`
	Profile          ProfileSummary `json:"profile"` // the other party
	CollaboratorType string         `json:"collaborator_type"`
	CreatedAt        time.Time      `json:"created_at"`
}
