package models

import "time"

// Profile is a user's domain identity record, one-to-one with a users row.
type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	EmailAddress string    `json:"email_address"`
	Timezone     string    `json:"timezone"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProfileRequest defines the structure for creating a profile.
type CreateProfileRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
	Timezone     string `json:"timezone"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

// UpdateProfileRequest defines the fields a profile owner may change.
// Name fields are fixed after creation, matching the create/update form split.
type UpdateProfileRequest struct {
	EmailAddress string `json:"email_address"`
	Timezone     string `json:"timezone"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}

// ProfileSummary provides basic profile details for collaborator and
// candidate listings.
type ProfileSummary struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
}
