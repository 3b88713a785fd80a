package models

import "time"

// Event types and collaborator roles.
const (
	EventTypeSelf    = "self"
	EventTypeFriends = "friends"
	EventTypeWork    = "work"

	RoleAttendee = "attendee"
	RoleEditor   = "editor"
)

// Event is a dated, optionally timed activity owned by a creator profile.
// Times are stored as "HH:MM" strings; nil means not set.
type Event struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   string    `json:"event_date"` // YYYY-MM-DD, required
	StartTime   *string   `json:"start_time"` // HH:MM, optional
	EndTime     *string   `json:"end_time"`   // HH:MM, optional
	EventType   string    `json:"event_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateEventRequest defines the structure for creating an event.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	EventType   string  `json:"event_type"`
}

// UpdateEventRequest defines the fields the creator may change. The event
// type is fixed at creation, matching the create/update form split.
type UpdateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

// EventInvite represents a row in the event_invites table.
type EventInvite struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	InviterID    int64     `json:"inviter_id"`
	InviteeID    int64     `json:"invitee_id"`
	InviteStatus string    `json:"invite_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EventCollaboratorInfo is one confirmed member of an event.
type EventCollaboratorInfo struct {
	Profile  ProfileSummary `json:"profile"`
	Role     string         `json:"role"`
	JoinedAt time.Time      `json:"joined_at"`
}

// EventInviteInfo is a pending invite on an event, as shown on the event
// detail page and the invitee's dashboard.
type EventInviteInfo struct {
	InviteID   int64          `json:"invite_id"`
	EventID    int64          `json:"event_id"`
	EventTitle string         `json:"event_title,omitempty"`
	Inviter    ProfileSummary `json:"inviter"`
	Invitee    ProfileSummary `json:"invitee"`
	CreatedAt  time.Time      `json:"created_at"`
}

// EventDetails is the full event page payload.
type EventDetails struct {
	Event          Event                   `json:"event"`
	Collaborators  []EventCollaboratorInfo `json:"collaborators"`
	PendingInvites []EventInviteInfo       `json:"pending_invites"`
	Posts          []EventPostResponse     `json:"posts"`
	CanPost        bool                    `json:"can_post"`
	CanInvite      bool                    `json:"can_invite"`
}

// FeedEntry is one calendar feed item. The field set is fixed: fullcalendar
// consumes it as-is.
type FeedEntry struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	URL   string `json:"url"`
}
