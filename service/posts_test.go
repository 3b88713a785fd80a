package service

import (
	"errors"
	"testing"
)

func TestAddPostTooManyMedia(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	eventID := createTestEvent(t, alice, "party", nil, nil)

	media := []string{
		"/uploads/posts/a.jpg", "/uploads/posts/b.jpg", "/uploads/posts/c.jpg",
		"/uploads/posts/d.jpg", "/uploads/posts/e.jpg", "/uploads/posts/f.jpg",
	}
	_, err := AddPost(alice, eventID, "hello", media)
	if !errors.Is(err, ErrTooManyMedia) {
		t.Fatalf("expected ErrTooManyMedia, got %v", err)
	}
	if n := countRows(t, "event_posts"); n != 0 {
		t.Fatalf("expected zero posts persisted, got %d", n)
	}
	if n := countRows(t, "event_post_media"); n != 0 {
		t.Fatalf("expected zero media rows persisted, got %d", n)
	}
}

func TestAddPostMediaRollback(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	eventID := createTestEvent(t, alice, "party", nil, nil)

	// The third item fails validation; the post and the two already-staged
	// attachments must all roll back.
	media := []string{"/uploads/posts/a.jpg", "/uploads/posts/b.png", "../../etc/passwd"}
	_, err := AddPost(alice, eventID, "hello", media)
	if !errors.Is(err, ErrInvalidMedia) {
		t.Fatalf("expected ErrInvalidMedia, got %v", err)
	}
	if n := countRows(t, "event_posts"); n != 0 {
		t.Fatalf("expected zero posts after rollback, got %d", n)
	}
	if n := countRows(t, "event_post_media"); n != 0 {
		t.Fatalf("expected zero media rows after rollback, got %d", n)
	}
}

func TestAddPostNotAuthorized(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	mallory := createTestProfile(t, "mallory")
	eventID := createTestEvent(t, alice, "party", nil, nil)

	_, err := AddPost(mallory, eventID, "crashing the party", nil)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAddPostAndListOrdering(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	eventID := createTestEvent(t, alice, "party", nil, nil)

	first, err := AddPost(alice, eventID, "first", []string{"/uploads/posts/a.jpg", "/uploads/posts/b.jpg"})
	if err != nil {
		t.Fatalf("first post failed: %v", err)
	}
	second, err := AddPost(alice, eventID, "second", nil)
	if err != nil {
		t.Fatalf("second post failed: %v", err)
	}

	posts, err := ListPosts(eventID)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != first.ID || posts[1].ID != second.ID {
		t.Fatalf("posts must be ordered oldest first")
	}
	if len(posts[0].Media) != 2 || posts[0].Media[0].Position != 0 || posts[0].Media[1].Position != 1 {
		t.Fatalf("unexpected media ordering: %+v", posts[0].Media)
	}
	if len(posts[1].Media) != 0 {
		t.Fatalf("expected no media on second post, got %+v", posts[1].Media)
	}
	if posts[0].AuthorFirstName != "alice" {
		t.Fatalf("expected author details on post, got %+v", posts[0])
	}
}

func TestAddPostByEventCollaborator(t *testing.T) {
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

	post, err := AddPost(bob, eventID, "glad to be here", nil)
	if err != nil {
		t.Fatalf("collaborator post failed: %v", err)
	}
	if post.AuthorID != bob {
		t.Fatalf("expected bob as author, got %d", post.AuthorID)
	}
}
