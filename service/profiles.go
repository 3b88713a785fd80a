package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// CreateProfile creates the profile for a user account. Each account owns at
// most one profile.
func CreateProfile(userID int64, req models.CreateProfileRequest) (*models.Profile, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if req.EmailAddress == "" {
		return nil, fmt.Errorf("%w: email address is required", ErrInvalidInput)
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	now := time.Now()
	res, err := database.DB.Exec(`
        INSERT INTO profiles (user_id, first_name, last_name, email_address, timezone, profile_photo, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, userID, req.FirstName, req.LastName, req.EmailAddress, tz, req.ProfilePhoto, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: profile for this user", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	profileID, _ := res.LastInsertId()
	return GetProfile(profileID)
}

// GetProfile fetches a profile by its id.
func GetProfile(profileID int64) (*models.Profile, error) {
	var p models.Profile
	var photo sql.NullString
	err := database.DB.QueryRow(`
        SELECT id, user_id, first_name, last_name, email_address, timezone, profile_photo, created_at, updated_at
        FROM profiles WHERE id = ?
    `, profileID).Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.EmailAddress, &p.Timezone, &photo, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: profile %d", ErrNotFound, profileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	p.ProfilePhoto = photo.String
	return &p, nil
}

// GetProfileByUser resolves the account identity to its profile.
func GetProfileByUser(userID int64) (*models.Profile, error) {
	var profileID int64
	err := database.DB.QueryRow("SELECT id FROM profiles WHERE user_id = ?", userID).Scan(&profileID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no profile for user %d", ErrNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}
	return GetProfile(profileID)
}

// UpdateProfile updates the mutable fields of the caller's own profile.
func UpdateProfile(userID int64, req models.UpdateProfileRequest) (*models.Profile, error) {
	if req.EmailAddress == "" {
		return nil, fmt.Errorf("%w: email address is required", ErrInvalidInput)
	}
	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	res, err := database.DB.Exec(`
        UPDATE profiles SET email_address = ?, timezone = ?, profile_photo = ?, updated_at = ?
        WHERE user_id = ?
    `, req.EmailAddress, tz, req.ProfilePhoto, time.Now(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: no profile for user %d", ErrNotFound, userID)
	}
	return GetProfileByUser(userID)
}
