package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func isEventMember(eventID, profileID int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM event_collaborators WHERE event_id = ? AND collaborator_id = ?)",
		eventID, profileID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event membership: %w", err)
	}
	return exists, nil
}

// CanPost reports whether a profile may post updates on an event: the
// creator, or any confirmed collaborator regardless of role.
func CanPost(profileID, eventID int64) (bool, error) {
	event, err := GetEvent(eventID)
	if err != nil {
		return false, err
	}
	if event.CreatorID == profileID {
		return true, nil
	}
	return isEventMember(eventID, profileID)
}

// CanInvite reports whether a profile may invite others onto an event.
// Currently the same rule as CanPost; kept as a separate predicate so the
// two permissions can diverge without touching callers.
func CanInvite(profileID, eventID int64) (bool, error) {
	return CanPost(profileID, eventID)
}

// InviteToEvent sends an event invite. The inviter must be allowed to invite
// on the event, and the invitee must be one of the inviter's accepted
// collaborators; every invite entry point enforces the same rule.
func InviteToEvent(inviterID, eventID, inviteeID int64) (*models.EventInvite, error) {
	if inviterID == inviteeID {
		return nil, fmt.Errorf("%w: can't invite yourself to an event", ErrSelfReference)
	}
	if _, err := GetProfile(inviteeID); err != nil {
		return nil, err
	}
	allowed, err := CanInvite(inviterID, eventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: only the creator or collaborators can invite", ErrNotAuthorized)
	}
	accepted, err := AreAcceptedCollaborators(inviterID, inviteeID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, fmt.Errorf("%w: can only invite accepted collaborators", ErrNotAuthorized)
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM event_invites WHERE event_id = ? AND invitee_id = ? AND invite_status = 'pending')",
		eventID, inviteeID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invite: %w", err)
	}
	if exists {
		return nil, ErrDuplicateInvite
	}
	err = tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM event_collaborators WHERE event_id = ? AND collaborator_id = ?)",
		eventID, inviteeID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if exists {
		return nil, ErrAlreadyMember
	}

	now := time.Now()
	res, err := tx.Exec(`
        INSERT INTO event_invites (event_id, inviter_id, invitee_id, invite_status, created_at, updated_at)
        VALUES (?, ?, ?, 'pending', ?, ?)
    `, eventID, inviterID, inviteeID, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateInvite
		}
		return nil, fmt.Errorf("failed to create event invite: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event invite: %w", err)
	}

	id, _ := res.LastInsertId()
	return &models.EventInvite{
		ID:           id,
		EventID:      eventID,
		InviterID:    inviterID,
		InviteeID:    inviteeID,
		InviteStatus: models.InviteStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AcceptEventInvite accepts the first pending invite to the invitee for the
// event and creates the membership with role attendee, in one transaction.
// The UNIQUE(event_id, collaborator_id) constraint guarantees a single
// membership even when two accepts race; the loser fails cleanly.
func AcceptEventInvite(inviteeID, eventID int64) (*models.EventCollaboratorInfo, error) {
	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var inviteID int64
	err = tx.QueryRow(`
        SELECT id FROM event_invites
        WHERE event_id = ? AND invitee_id = ? AND invite_status = 'pending'
        ORDER BY id LIMIT 1
    `, eventID, inviteeID).Scan(&inviteID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no pending invite for this event", ErrNoPendingInvite)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up event invite: %w", err)
	}

	now := time.Now()
	if _, err := tx.Exec(
		"UPDATE event_invites SET invite_status = 'accepted', updated_at = ? WHERE id = ?",
		now, inviteID,
	); err != nil {
		return nil, fmt.Errorf("failed to accept event invite: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO event_collaborators (event_id, collaborator_id, role, created_at) VALUES (?, ?, 'attendee', ?)",
		eventID, inviteeID, now,
	); err != nil {
		if isUniqueViolation(err) {
			// The rollback leaves the invite pending; the membership that
			// won the race stands alone.
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to create event collaborator: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit invite acceptance: %w", err)
	}

	profile, err := GetProfile(inviteeID)
	if err != nil {
		return nil, err
	}
	return &models.EventCollaboratorInfo{
		Profile: models.ProfileSummary{
			ID:           profile.ID,
			FirstName:    profile.FirstName,
			LastName:     profile.LastName,
			EmailAddress: profile.EmailAddress,
			ProfilePhoto: profile.ProfilePhoto,
		},
		Role:     models.RoleAttendee,
		JoinedAt: now,
	}, nil
}

// RejectEventInvite marks the pending invite rejected. Rejected is terminal:
// a later accept for the same invite fails with ErrNoPendingInvite.
func RejectEventInvite(inviteeID, eventID int64) error {
	res, err := database.DB.Exec(`
        UPDATE event_invites SET invite_status = 'rejected', updated_at = ?
        WHERE event_id = ? AND invitee_id = ? AND invite_status = 'pending'
    `, time.Now(), eventID, inviteeID)
	if err != nil {
		return fmt.Errorf("failed to reject event invite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: no pending invite for this event", ErrNoPendingInvite)
	}
	return nil
}

// ListEventCollaborators returns the confirmed members of an event.
func ListEventCollaborators(eventID int64) ([]models.EventCollaboratorInfo, error) {
	rows, err := database.DB.Query(`
        SELECT p.id, p.first_name, p.last_name, p.email_address, COALESCE(p.profile_photo, ''), ec.role, ec.created_at
        FROM event_collaborators ec
        JOIN profiles p ON p.id = ec.collaborator_id
        WHERE ec.event_id = ?
        ORDER BY ec.created_at ASC
    `, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event collaborators: %w", err)
	}
	defer rows.Close()

	members := []models.EventCollaboratorInfo{}
	for rows.Next() {
		var m models.EventCollaboratorInfo
		if err := rows.Scan(
			&m.Profile.ID, &m.Profile.FirstName, &m.Profile.LastName,
			&m.Profile.EmailAddress, &m.Profile.ProfilePhoto, &m.Role, &m.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event collaborator: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListPendingEventInvites returns the pending invites on one event.
func ListPendingEventInvites(eventID int64) ([]models.EventInviteInfo, error) {
	return queryEventInvites("ei.event_id = ?", eventID)
}

// ListPendingEventInvitesFor returns pending invites across events for a
// profile. direction is "received" (profile is the invitee) or "sent".
func ListPendingEventInvitesFor(profileID int64, direction string) ([]models.EventInviteInfo, error) {
	col := "ei.invitee_id"
	if direction == "sent" {
		col = "ei.inviter_id"
	}
	return queryEventInvites(col+" = ?", profileID)
}

func queryEventInvites(where string, arg int64) ([]models.EventInviteInfo, error) {
	rows, err := database.DB.Query(`
        SELECT ei.id, ei.event_id, e.title,
               inviter.id, inviter.first_name, inviter.last_name,
               invitee.id, invitee.first_name, invitee.last_name,
               ei.created_at
        FROM event_invites ei
        JOIN events e ON e.id = ei.event_id
        JOIN profiles inviter ON inviter.id = ei.inviter_id
        JOIN profiles invitee ON invitee.id = ei.invitee_id
        WHERE `+where+` AND ei.invite_status = 'pending'
        ORDER BY ei.created_at ASC
    `, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query event invites: %w", err)
	}
	defer rows.Close()

	invites := []models.EventInviteInfo{}
	for rows.Next() {
		var inv models.EventInviteInfo
		if err := rows.Scan(
			&inv.InviteID, &inv.EventID, &inv.EventTitle,
			&inv.Inviter.ID, &inv.Inviter.FirstName, &inv.Inviter.LastName,
			&inv.Invitee.ID, &inv.Invitee.FirstName, &inv.Invitee.LastName,
			&inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event invite: %w", err)
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

// InviteCandidates returns the inviter's accepted collaborators who are not
// already members of the event and have no pending invite to it.
func InviteCandidates(inviterID, eventID int64) ([]models.ProfileSummary, error) {
	accepted, err := ListAccepted(inviterID)
	if err != nil {
		return nil, err
	}

	candidates := []models.ProfileSummary{}
	seen := map[int64]bool{} // friend and work edges can name the same profile
	for _, info := range accepted {
		if seen[info.Profile.ID] {
			continue
		}
		seen[info.Profile.ID] = true
		member, err := isEventMember(eventID, info.Profile.ID)
		if err != nil {
			return nil, err
		}
		if member {
			continue
		}
		var pending bool
		err = database.DB.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM event_invites WHERE event_id = ? AND invitee_id = ? AND invite_status = 'pending')",
			eventID, info.Profile.ID,
		).Scan(&pending)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending invite: %w", err)
		}
		if pending {
			continue
		}
		candidates = append(candidates, info.Profile)
	}
	return candidates, nil
}
