package models

import "time"

// CreateEventPostRequest defines the structure for posting an update on an
// event. Media entries are paths previously returned by the upload endpoint.
type CreateEventPostRequest struct {
	TextContent string   `json:"text_content"`
	Media       []string `json:"media,omitempty"`
}

// EventPostMediaItem is one attachment of an event post, in display order.
type EventPostMediaItem struct {
	ID        int64  `json:"id"`
	MediaPath string `json:"media_path"`
	Position  int    `json:"position"`
}

// EventPostResponse defines the structure for a post returned by the API.
// Posts are immutable once created.
type EventPostResponse struct {
	ID              int64                `json:"id"`
	EventID         int64                `json:"event_id"`
	AuthorID        int64                `json:"author_id"`
	AuthorFirstName string               `json:"author_first_name"`
	AuthorLastName  string               `json:"author_last_name"`
	AuthorPhoto     string               `json:"author_photo,omitempty"`
	TextContent     string               `json:"text_content"`
	Media           []EventPostMediaItem `json:"media"`
	CreatedAt       time.Time            `json:"created_at"`
}
