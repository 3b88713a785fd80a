package service

import (
	"errors"
	"testing"
)

func TestInviteToEventSelf(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	eventID := createTestEvent(t, alice, "solo", nil, nil)

	_, err := InviteToEvent(alice, eventID, alice)
	if !errors.Is(err, ErrSelfReference) {
		t.Fatalf("expected ErrSelfReference, got %v", err)
	}
}

func TestInviteToEventRequiresCollaboration(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	eventID := createTestEvent(t, alice, "party", nil, nil)

	// No accepted relationship between alice and bob yet.
	_, err := InviteToEvent(alice, eventID, bob)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for stranger invite, got %v", err)
	}
}

func TestInviteToEventDuplicate(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("first invite failed: %v", err)
	}
	if _, err := InviteToEvent(alice, eventID, bob); !errors.Is(err, ErrDuplicateInvite) {
		t.Fatalf("expected ErrDuplicateInvite, got %v", err)
	}
}

func TestAcceptEventInviteOnce(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	member, err := AcceptEventInvite(bob, eventID)
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if member.Role != "attendee" {
		t.Fatalf("expected attendee role, got %s", member.Role)
	}

	// A second accept must not create a second membership.
	if _, err := AcceptEventInvite(bob, eventID); !errors.Is(err, ErrNoPendingInvite) {
		t.Fatalf("expected ErrNoPendingInvite on second accept, got %v", err)
	}
	if n := countRows(t, "event_collaborators"); n != 1 {
		t.Fatalf("expected exactly one membership row, got %d", n)
	}
}

func TestInviteToEventAlreadyMember(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if _, err := AcceptEventInvite(bob, eventID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if _, err := InviteToEvent(alice, eventID, bob); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestRejectEventInviteTerminal(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := RejectEventInvite(bob, eventID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	// Rejected is terminal: the invite cannot be accepted afterwards.
	if _, err := AcceptEventInvite(bob, eventID); !errors.Is(err, ErrNoPendingInvite) {
		t.Fatalf("expected ErrNoPendingInvite after rejection, got %v", err)
	}
	if n := countRows(t, "event_collaborators"); n != 0 {
		t.Fatalf("rejection must not create a membership, found %d", n)
	}
}

func TestCanPostAndCanInvite(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	carol := createTestProfile(t, "carol")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if ok, _ := CanPost(alice, eventID); !ok {
		t.Fatal("creator must be allowed to post")
	}
	if ok, _ := CanPost(carol, eventID); ok {
		t.Fatal("outsider must not be allowed to post")
	}

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if ok, _ := CanPost(bob, eventID); ok {
		t.Fatal("a pending invitee is not yet a collaborator")
	}
	if _, err := AcceptEventInvite(bob, eventID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if ok, _ := CanPost(bob, eventID); !ok {
		t.Fatal("an accepted collaborator must be allowed to post")
	}
	if ok, _ := CanInvite(bob, eventID); !ok {
		t.Fatal("an accepted collaborator must be allowed to invite")
	}
}

func TestInviteCandidates(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	carol := createTestProfile(t, "carol")
	dave := createTestProfile(t, "dave")
	makeCollaborators(t, alice, bob)
	makeCollaborators(t, alice, carol)
	makeCollaborators(t, alice, dave)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	// bob becomes a member, carol has a pending invite, dave is untouched.
	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if _, err := AcceptEventInvite(bob, eventID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if _, err := InviteToEvent(alice, eventID, carol); err != nil {
		t.Fatalf("invite failed: %v", err)
	}

	candidates, err := InviteCandidates(alice, eventID)
	if err != nil {
		t.Fatalf("InviteCandidates failed: %v", err)
	}
	if len(candidates) != 1 || candidates[0].ID != dave {
		t.Fatalf("expected only dave as candidate, got %+v", candidates)
	}
}

func TestEventInviteListings(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)
	eventID := createTestEvent(t, alice, "party", nil, nil)

	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}

	onEvent, err := ListPendingEventInvites(eventID)
	if err != nil {
		t.Fatalf("ListPendingEventInvites failed: %v", err)
	}
	if len(onEvent) != 1 || onEvent[0].Invitee.ID != bob {
		t.Fatalf("unexpected event invite listing: %+v", onEvent)
	}

	received, err := ListPendingEventInvitesFor(bob, "received")
	if err != nil {
		t.Fatalf("ListPendingEventInvitesFor failed: %v", err)
	}
	if len(received) != 1 || received[0].EventID != eventID || received[0].EventTitle != "party" {
		t.Fatalf("unexpected received invites: %+v", received)
	}

	// Listings shrink once the invite is resolved.
	if _, err := AcceptEventInvite(bob, eventID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	received, err = ListPendingEventInvitesFor(bob, "received")
	if err != nil {
		t.Fatalf("ListPendingEventInvitesFor failed: %v", err)
	}
	if len(received) != 0 {
		t.Fatalf("expected no pending invites after accept, got %+v", received)
	}
}
