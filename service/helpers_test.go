package service

import (
	"path/filepath"
	"testing"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// setupTestDB points the global connection at a fresh database file for the
// duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { database.DB.Close() })
}

// createTestProfile registers a user and creates their profile, returning
// the profile id.
func createTestProfile(t *testing.T, name string) int64 {
	t.Helper()
	res, err := database.DB.Exec(
		"INSERT INTO users (username, password_hash, email) VALUES (?, ?, ?)",
		name, "not-a-real-hash", name+"@example.com",
	)
	if err != nil {
		t.Fatalf("failed to insert user %s: %v", name, err)
	}
	userID, _ := res.LastInsertId()

	profile, err := CreateProfile(userID, models.CreateProfileRequest{
		FirstName:    name,
		LastName:     "Tester",
		EmailAddress: name + "@example.com",
		Timezone:     "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create profile for %s: %v", name, err)
	}
	return profile.ID
}

// createTestEvent creates a bare event on a fixed date.
func createTestEvent(t *testing.T, creatorID int64, title string, start, end *string) int64 {
	t.Helper()
	event, err := CreateEvent(creatorID, models.CreateEventRequest{
		Title:     title,
		EventDate: "2025-05-01",
		StartTime: start,
		EndTime:   end,
		EventType: models.EventTypeFriends,
	})
	if err != nil {
		t.Fatalf("failed to create event %s: %v", title, err)
	}
	return event.ID
}

// makeCollaborators establishes an accepted friend edge from a to b.
func makeCollaborators(t *testing.T, a, b int64) {
	t.Helper()
	if _, err := RequestCollaboration(a, b, models.CollaboratorTypeFriend); err != nil {
		t.Fatalf("failed to request collaboration: %v", err)
	}
	if _, err := RespondCollaboration(b, a, models.CollaboratorTypeFriend, "accept"); err != nil {
		t.Fatalf("failed to accept collaboration: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := database.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}
