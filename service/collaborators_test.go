package service

import (
	"errors"
	"testing"

	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func TestRequestCollaborationSelf(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	_, err := RequestCollaboration(alice, alice, models.CollaboratorTypeFriend)
	if !errors.Is(err, ErrSelfReference) {
		t.Fatalf("expected ErrSelfReference, got %v", err)
	}
}

func TestRequestCollaborationDuplicateBothDirections(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeFriend); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeFriend); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest for repeat request, got %v", err)
	}
	if _, err := RequestCollaboration(bob, alice, models.CollaboratorTypeFriend); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest for reverse request, got %v", err)
	}

	// A different type is a separate relationship.
	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeWork); err != nil {
		t.Fatalf("work-type request should succeed: %v", err)
	}
}

func TestAcceptCollaborationSymmetry(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	makeCollaborators(t, alice, bob)

	aliceSet, err := ListAccepted(alice)
	if err != nil {
		t.Fatalf("ListAccepted(alice) failed: %v", err)
	}
	bobSet, err := ListAccepted(bob)
	if err != nil {
		t.Fatalf("ListAccepted(bob) failed: %v", err)
	}

	if len(aliceSet) != 1 || aliceSet[0].Profile.ID != bob {
		t.Fatalf("expected alice's set to contain bob, got %+v", aliceSet)
	}
	if len(bobSet) != 1 || bobSet[0].Profile.ID != alice {
		t.Fatalf("expected bob's set to contain alice, got %+v", bobSet)
	}
	if aliceSet[0].RelType != "inviter" || bobSet[0].RelType != "invitee" {
		t.Fatalf("unexpected rel types: %s / %s", aliceSet[0].RelType, bobSet[0].RelType)
	}
}

func TestAcceptCollaborationNotIdempotent(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	makeCollaborators(t, alice, bob)

	// Once accepted, the edge is no longer pending: a second accept must
	// report nothing to act on.
	_, err := RespondCollaboration(bob, alice, models.CollaboratorTypeFriend, "accept")
	if !errors.Is(err, ErrNoPendingInvite) {
		t.Fatalf("expected ErrNoPendingInvite for second accept, got %v", err)
	}
}

func TestRejectCollaborationTerminal(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeFriend); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	edge, err := RespondCollaboration(bob, alice, models.CollaboratorTypeFriend, "reject")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if edge.InviteStatus != models.InviteStatusRejected {
		t.Fatalf("expected rejected status, got %s", edge.InviteStatus)
	}

	if _, err := RespondCollaboration(bob, alice, models.CollaboratorTypeFriend, "accept"); !errors.Is(err, ErrNoPendingInvite) {
		t.Fatalf("expected ErrNoPendingInvite after rejection, got %v", err)
	}

	// Rejection is history, not a block: a fresh request may be sent.
	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeFriend); err != nil {
		t.Fatalf("re-request after rejection should succeed: %v", err)
	}
}

func TestRespondCollaborationNoRequest(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	_, err := RespondCollaboration(bob, alice, models.CollaboratorTypeFriend, "accept")
	if !errors.Is(err, ErrNoPendingInvite) {
		t.Fatalf("expected ErrNoPendingInvite, got %v", err)
	}
}

func TestRequestCollaborationUnknownTarget(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	_, err := RequestCollaboration(alice, alice+1000, models.CollaboratorTypeFriend)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPendingCollaborations(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	if _, err := RequestCollaboration(alice, bob, models.CollaboratorTypeWork); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	received, err := ListPendingCollaborations(bob, "received")
	if err != nil {
		t.Fatalf("ListPendingCollaborations(received) failed: %v", err)
	}
	if len(received) != 1 || received[0].Profile.ID != alice || received[0].CollaboratorType != models.CollaboratorTypeWork {
		t.Fatalf("unexpected received set: %+v", received)
	}

	sent, err := ListPendingCollaborations(alice, "sent")
	if err != nil {
		t.Fatalf("ListPendingCollaborations(sent) failed: %v", err)
	}
	if len(sent) != 1 || sent[0].Profile.ID != bob {
		t.Fatalf("unexpected sent set: %+v", sent)
	}
}
