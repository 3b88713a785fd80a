package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// timeSentinel sorts after every real HH:MM value, so events with neither
// start nor end time land last within their date.
const timeSentinel = "24:00"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func validEventType(t string) bool {
	return t == models.EventTypeSelf || t == models.EventTypeFriends || t == models.EventTypeWork
}

func validateEventTimes(date string, start, end *string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: event date %q", ErrInvalidInput, date)
	}
	if start != nil {
		if _, err := time.Parse(timeLayout, *start); err != nil {
			return fmt.Errorf("%w: start time %q", ErrInvalidInput, *start)
		}
	}
	if end != nil {
		if _, err := time.Parse(timeLayout, *end); err != nil {
			return fmt.Errorf("%w: end time %q", ErrInvalidInput, *end)
		}
	}
	return nil
}

// CreateEvent creates an event owned by the creator profile. Only the date is
// mandatory; start and end times may each be present or absent.
func CreateEvent(creatorID int64, req models.CreateEventRequest) (*models.Event, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !validEventType(req.EventType) {
		return nil, fmt.Errorf("%w: event type %q", ErrInvalidInput, req.EventType)
	}
	if err := validateEventTimes(req.EventDate, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if _, err := GetProfile(creatorID); err != nil {
		return nil, err
	}

	now := time.Now()
	res, err := database.DB.Exec(`
        INSERT INTO events (creator_id, title, description, event_date, start_time, end_time, event_type, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, creatorID, req.Title, req.Description, req.EventDate, req.StartTime, req.EndTime, req.EventType, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	eventID, _ := res.LastInsertId()
	return GetEvent(eventID)
}

// GetEvent fetches an event by id.
func GetEvent(eventID int64) (*models.Event, error) {
	var e models.Event
	var desc sql.NullString
	err := database.DB.QueryRow(`
        SELECT id, creator_id, title, COALESCE(description, ''), event_date, start_time, end_time, event_type, created_at, updated_at
        FROM events WHERE id = ?
    `, eventID).Scan(&e.ID, &e.CreatorID, &e.Title, &desc, &e.EventDate, &e.StartTime, &e.EndTime, &e.EventType, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	e.Description = desc.String
	return &e, nil
}

// UpdateEvent updates an event. Only the creator may edit.
func UpdateEvent(profileID, eventID int64, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != profileID {
		return nil, fmt.Errorf("%w: only the creator can edit an event", ErrNotAuthorized)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := validateEventTimes(req.EventDate, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	_, err = database.DB.Exec(`
        UPDATE events SET title = ?, description = ?, event_date = ?, start_time = ?, end_time = ?, updated_at = ?
        WHERE id = ?
    `, req.Title, req.Description, req.EventDate, req.StartTime, req.EndTime, time.Now(), eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return GetEvent(eventID)
}

// OrderedEvents returns the events a profile created or collaborates on,
// ordered by date, then by effective time: the start time when present, the
// end time otherwise, and last within the date when the event has neither.
// The id tiebreak makes the order total.
func OrderedEvents(profileID int64) ([]models.Event, error) {
	rows, err := database.DB.Query(`
        SELECT DISTINCT e.id, e.creator_id, e.title, COALESCE(e.description, ''), e.event_date, e.start_time, e.end_time, e.event_type, e.created_at, e.updated_at
        FROM events e
        LEFT JOIN event_collaborators ec ON ec.event_id = e.id AND ec.collaborator_id = ?
        WHERE e.creator_id = ? OR ec.id IS NOT NULL
        ORDER BY e.event_date ASC, COALESCE(e.start_time, e.end_time, ?) ASC, e.id ASC
    `, profileID, profileID, timeSentinel)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		var desc sql.NullString
		if err := rows.Scan(&e.ID, &e.CreatorID, &e.Title, &desc, &e.EventDate, &e.StartTime, &e.EndTime, &e.EventType, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Description = desc.String
		events = append(events, e)
	}
	return events, rows.Err()
}

// CalendarFeed returns the calendar entries for a profile's events. Missing
// start times default to the start of the day and missing end times to the
// end of the day. This defaulting is intentionally different from the
// dashboard ordering rule above; the calendar wants every event to span a
// renderable interval. from and to, when non-empty, bound the event date.
func CalendarFeed(profileID int64, from, to string) ([]models.FeedEntry, error) {
	rows, err := database.DB.Query(`
        SELECT DISTINCT e.id, e.title, e.event_date, e.start_time, e.end_time
        FROM events e
        LEFT JOIN event_collaborators ec ON ec.event_id = e.id AND ec.collaborator_id = ?
        WHERE (e.creator_id = ? OR ec.id IS NOT NULL)
          AND (? = '' OR e.event_date >= ?)
          AND (? = '' OR e.event_date <= ?)
        ORDER BY e.event_date ASC, e.id ASC
    `, profileID, profileID, from, from, to, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar feed: %w", err)
	}
	defer rows.Close()

	entries := []models.FeedEntry{}
	for rows.Next() {
		var id int64
		var title, date string
		var start, end *string
		if err := rows.Scan(&id, &title, &date, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan feed entry: %w", err)
		}

		startStamp := date + "T00:00:00"
		if start != nil {
			startStamp = date + "T" + *start + ":00"
		}
		endStamp := date + "T23:59:59"
		if end != nil {
			endStamp = date + "T" + *end + ":00"
		}

		entries = append(entries, models.FeedEntry{
			ID:    id,
			Title: title,
			Start: startStamp,
			End:   endStamp,
			URL:   fmt.Sprintf("/events/%d", id),
		})
	}
	return entries, rows.Err()
}
