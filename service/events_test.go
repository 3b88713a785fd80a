package service

import (
	"errors"
	"testing"

	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func TestOrderedEventsEffectiveTime(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	// E has a start time of 09:00; F has no start but ends at 08:00. F's
	// effective time (its end time) sorts before E's start.
	e := createTestEvent(t, alice, "E", strPtr("09:00"), nil)
	f := createTestEvent(t, alice, "F", nil, strPtr("08:00"))
	// G has neither time and must sort last within the date.
	g := createTestEvent(t, alice, "G", nil, nil)

	events, err := OrderedEvents(alice)
	if err != nil {
		t.Fatalf("OrderedEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].ID != f || events[1].ID != e || events[2].ID != g {
		t.Fatalf("expected order F, E, G; got %s, %s, %s", events[0].Title, events[1].Title, events[2].Title)
	}
}

func TestOrderedEventsByDateFirst(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	later, err := CreateEvent(alice, models.CreateEventRequest{
		Title: "later day", EventDate: "2025-05-02", StartTime: strPtr("06:00"), EventType: models.EventTypeSelf,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	earlier, err := CreateEvent(alice, models.CreateEventRequest{
		Title: "earlier day", EventDate: "2025-05-01", EventType: models.EventTypeSelf,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	events, err := OrderedEvents(alice)
	if err != nil {
		t.Fatalf("OrderedEvents failed: %v", err)
	}
	if events[0].ID != earlier.ID || events[1].ID != later.ID {
		t.Fatalf("date must dominate the time: got %s first", events[0].Title)
	}
}

func TestOrderedEventsIncludesCollaborations(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")
	makeCollaborators(t, alice, bob)

	eventID := createTestEvent(t, alice, "party", strPtr("18:00"), nil)
	if _, err := InviteToEvent(alice, eventID, bob); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if _, err := AcceptEventInvite(bob, eventID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	events, err := OrderedEvents(bob)
	if err != nil {
		t.Fatalf("OrderedEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != eventID {
		t.Fatalf("expected bob's feed to contain the event, got %+v", events)
	}
}

func TestCalendarFeedDefaults(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	startOnly := createTestEvent(t, alice, "start only", strPtr("09:30"), nil)
	bare := createTestEvent(t, alice, "bare", nil, nil)
	full := createTestEvent(t, alice, "full", strPtr("10:00"), strPtr("11:15"))

	entries, err := CalendarFeed(alice, "", "")
	if err != nil {
		t.Fatalf("CalendarFeed failed: %v", err)
	}
	byID := map[int64]models.FeedEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}

	if e := byID[startOnly]; e.Start != "2025-05-01T09:30:00" || e.End != "2025-05-01T23:59:59" {
		t.Fatalf("start-only entry has wrong span: %s .. %s", e.Start, e.End)
	}
	if e := byID[bare]; e.Start != "2025-05-01T00:00:00" || e.End != "2025-05-01T23:59:59" {
		t.Fatalf("bare entry has wrong span: %s .. %s", e.Start, e.End)
	}
	if e := byID[full]; e.Start != "2025-05-01T10:00:00" || e.End != "2025-05-01T11:15:00" {
		t.Fatalf("full entry has wrong span: %s .. %s", e.Start, e.End)
	}
	if e := byID[bare]; e.URL == "" {
		t.Fatalf("feed entry is missing its event link")
	}
}

func TestCalendarFeedWindow(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	if _, err := CreateEvent(alice, models.CreateEventRequest{
		Title: "inside", EventDate: "2025-05-10", EventType: models.EventTypeSelf,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := CreateEvent(alice, models.CreateEventRequest{
		Title: "outside", EventDate: "2025-06-10", EventType: models.EventTypeSelf,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	entries, err := CalendarFeed(alice, "2025-05-01", "2025-05-31")
	if err != nil {
		t.Fatalf("CalendarFeed failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "inside" {
		t.Fatalf("expected only the May event, got %+v", entries)
	}
}

func TestUpdateEventCreatorOnly(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")
	bob := createTestProfile(t, "bob")

	eventID := createTestEvent(t, alice, "meeting", nil, nil)

	_, err := UpdateEvent(bob, eventID, models.UpdateEventRequest{Title: "hijacked", EventDate: "2025-05-01"})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	updated, err := UpdateEvent(alice, eventID, models.UpdateEventRequest{Title: "renamed", EventDate: "2025-05-02"})
	if err != nil {
		t.Fatalf("creator update failed: %v", err)
	}
	if updated.Title != "renamed" || updated.EventDate != "2025-05-02" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestCreateEventValidation(t *testing.T) {
	setupTestDB(t)
	alice := createTestProfile(t, "alice")

	cases := []models.CreateEventRequest{
		{Title: "", EventDate: "2025-05-01", EventType: models.EventTypeSelf},
		{Title: "x", EventDate: "not-a-date", EventType: models.EventTypeSelf},
		{Title: "x", EventDate: "2025-05-01", EventType: "party"},
		{Title: "x", EventDate: "2025-05-01", StartTime: strPtr("25:00"), EventType: models.EventTypeSelf},
	}
	for i, req := range cases {
		if _, err := CreateEvent(alice, req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
