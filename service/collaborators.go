package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func validCollaboratorType(t string) bool {
	return t == models.CollaboratorTypeFriend || t == models.CollaboratorTypeWork
}

// RequestCollaboration creates a pending relationship edge from requester to
// target. A pending or accepted edge in either direction for the same type
// blocks the request; a rejected edge does not.
func RequestCollaboration(requesterID, targetID int64, collabType string) (*models.Collaborator, error) {
	if !validCollaboratorType(collabType) {
		return nil, fmt.Errorf("%w: collaborator type %q", ErrInvalidInput, collabType)
	}
	if requesterID == targetID {
		return nil, fmt.Errorf("%w: can't collaborate with yourself", ErrSelfReference)
	}
	if _, err := GetProfile(targetID); err != nil {
		return nil, err
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Check both directions. The partial unique index on the directed edge
	// backstops the same-direction race; the reverse direction is covered by
	// SQLite's single-writer transaction.
	var exists bool
	err = tx.QueryRow(`
        SELECT EXISTS(
            SELECT 1 FROM collaborators
            WHERE ((inviter_id = ? AND invitee_id = ?) OR (inviter_id = ? AND invitee_id = ?))
              AND collaborator_type = ?
              AND invite_status IN ('pending', 'accepted')
        )
    `, requesterID, targetID, targetID, requesterID, collabType).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing collaboration: %w", err)
	}
	if exists {
		return nil, ErrDuplicateRequest
	}

	now := time.Now()
	res, err := tx.Exec(`
        INSERT INTO collaborators (inviter_id, invitee_id, collaborator_type, invite_status, created_at, updated_at)
        VALUES (?, ?, ?, 'pending', ?, ?)
    `, requesterID, targetID, collabType, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create collaboration request: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit collaboration request: %w", err)
	}

	id, _ := res.LastInsertId()
	return &models.Collaborator{
		ID:               id,
		InviterID:        requesterID,
		InviteeID:        targetID,
		CollaboratorType: collabType,
		InviteStatus:     models.InviteStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// RespondCollaboration lets the invitee accept or reject the pending request
// from requester. Both outcomes are terminal: a second call finds nothing
// pending and fails.
func RespondCollaboration(responderID, requesterID int64, collabType, action string) (*models.Collaborator, error) {
	if !validCollaboratorType(collabType) {
		return nil, fmt.Errorf("%w: collaborator type %q", ErrInvalidInput, collabType)
	}
	if action != "accept" && action != "reject" {
		return nil, fmt.Errorf("%w: action %q", ErrInvalidInput, action)
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var edge models.Collaborator
	err = tx.QueryRow(`
        SELECT id, inviter_id, invitee_id, collaborator_type, invite_status, created_at, updated_at
        FROM collaborators
        WHERE inviter_id = ? AND invitee_id = ? AND collaborator_type = ? AND invite_status = 'pending'
        ORDER BY id LIMIT 1
    `, requesterID, responderID, collabType).Scan(
		&edge.ID, &edge.InviterID, &edge.InviteeID, &edge.CollaboratorType, &edge.InviteStatus, &edge.CreatedAt, &edge.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no pending collaboration request", ErrNoPendingInvite)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up collaboration request: %w", err)
	}

	newStatus := models.InviteStatusAccepted
	if action == "reject" {
		newStatus = models.InviteStatusRejected
	}
	now := time.Now()
	if _, err := tx.Exec(
		"UPDATE collaborators SET invite_status = ?, updated_at = ? WHERE id = ?",
		newStatus, now, edge.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update collaboration request: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit collaboration response: %w", err)
	}

	edge.InviteStatus = newStatus
	edge.UpdatedAt = now
	return &edge, nil
}

// ListAccepted returns the symmetric collaborator set of a profile: every
// accepted edge collapsed to the other party, whichever side sent the invite.
func ListAccepted(profileID int64) ([]models.CollaboratorInfo, error) {
	rows, err := database.DB.Query(`
        SELECT p.id, p.first_name, p.last_name, p.email_address, COALESCE(p.profile_photo, ''), c.collaborator_type, 'inviter'
        FROM collaborators c
        JOIN profiles p ON p.id = c.invitee_id
        WHERE c.inviter_id = ? AND c.invite_status = 'accepted'
        UNION ALL
        SELECT p.id, p.first_name, p.last_name, p.email_address, COALESCE(p.profile_photo, ''), c.collaborator_type, 'invitee'
        FROM collaborators c
        JOIN profiles p ON p.id = c.inviter_id
        WHERE c.invitee_id = ? AND c.invite_status = 'accepted'
    `, profileID, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query collaborators: %w", err)
	}
	defer rows.Close()

	collaborators := []models.CollaboratorInfo{}
	for rows.Next() {
		var info models.CollaboratorInfo
		if err := rows.Scan(
			&info.Profile.ID, &info.Profile.FirstName, &info.Profile.LastName,
			&info.Profile.EmailAddress, &info.Profile.ProfilePhoto,
			&info.CollaboratorType, &info.RelType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collaborators = append(collaborators, info)
	}
	return collaborators, rows.Err()
}

// AreAcceptedCollaborators reports whether an accepted edge of any type links
// the two profiles, in either direction.
func AreAcceptedCollaborators(profileA, profileB int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(`
        SELECT EXISTS(
            SELECT 1 FROM collaborators
            WHERE ((inviter_id = ? AND invitee_id = ?) OR (inviter_id = ? AND invitee_id = ?))
              AND invite_status = 'accepted'
        )
    `, profileA, profileB, profileB, profileA).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check collaboration: %w", err)
	}
	return exists, nil
}

// ListPendingCollaborations returns pending requests for a profile.
// direction is "received" (profile is the invitee) or "sent".
func ListPendingCollaborations(profileID int64, direction string) ([]models.PendingCollaborationInfo, error) {
	ownCol, otherCol := "invitee_id", "inviter_id"
	if direction == "sent" {
		ownCol, otherCol = "inviter_id", "invitee_id"
	}

	rows, err := database.DB.Query(`
        SELECT c.id, p.id, p.first_name, p.last_name, p.email_address, COALESCE(p.profile_photo, ''), c.collaborator_type, c.created_at
        FROM collaborators c
        JOIN profiles p ON p.id = c.`+otherCol+`
        WHERE c.`+ownCol+` = ? AND c.invite_status = 'pending'
        ORDER BY c.created_at ASC
    `, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending collaborations: %w", err)
	}
	defer rows.Close()

	pending := []models.PendingCollaborationInfo{}
	for rows.Next() {
		var info models.PendingCollaborationInfo
		if err := rows.Scan(
			&info.CollaborationID, &info.Profile.ID, &info.Profile.FirstName, &info.Profile.LastName,
			&info.Profile.EmailAddress, &info.Profile.ProfilePhoto, &info.CollaboratorType, &info.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending collaboration: %w", err)
		}
		pending = append(pending, info)
	}
	return pending, rows.Err()
}
