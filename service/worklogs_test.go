package service

import (
	"errors"
	"testing"

	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func TestCreateWorkLogDerivesDuration(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	wl, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		LogDate:     "2025-05-01",
		StartTime:   strPtr("09:00"),
		EndTime:     strPtr("17:30"),
		Category:    models.WorkLogCategoryDev,
		Description: "feature work",
	})
	if err != nil {
		t.Fatalf("CreateWorkLog failed: %v", err)
	}
	if wl.Duration == nil || *wl.Duration != 8.5 {
		t.Fatalf("expected duration 8.5, got %v", wl.Duration)
	}
}

func TestCreateWorkLogMidnightRollover(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	// An end before the start means the session crossed midnight.
	wl, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		LogDate:     "2025-05-01",
		StartTime:   strPtr("22:00"),
		EndTime:     strPtr("02:00"),
		Category:    models.WorkLogCategoryLearning,
		Description: "late reading",
	})
	if err != nil {
		t.Fatalf("CreateWorkLog failed: %v", err)
	}
	if wl.Duration == nil || *wl.Duration != 4.0 {
		t.Fatalf("expected duration 4.0 across midnight, got %v", wl.Duration)
	}
}

func TestCreateWorkLogValidation(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	if _, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		Category: "NAP", Description: "zzz",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad category, got %v", err)
	}
	if _, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		Category: models.WorkLogCategoryDev,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty description, got %v", err)
	}
}

func TestListWorkLogsNewestFirst(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	older, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		Category: models.WorkLogCategoryBusiness, Description: "invoices",
	})
	if err != nil {
		t.Fatalf("CreateWorkLog failed: %v", err)
	}
	newer, err := CreateWorkLog(alice, models.CreateWorkLogRequest{
		Category: models.WorkLogCategoryDesign, Description: "mockups",
	})
	if err != nil {
		t.Fatalf("CreateWorkLog failed: %v", err)
	}

	logs, err := ListWorkLogs(alice)
	if err != nil {
		t.Fatalf("ListWorkLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].ID != newer.ID || logs[1].ID != older.ID {
		t.Fatalf("logs must be newest first")
	}
}

func TestCreateProfileOnePerUser(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	profile, err := GetProfile(alice)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	_, err = CreateProfile(profile.UserID, models.CreateProfileRequest{
		FirstName: "alice", LastName: "again", EmailAddress: "alice2@example.com",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
