package models

import "time"

// Work log categories.
const (
	WorkLogCategoryDev      = "DEV"
	WorkLogCategoryBusiness = "BIZ"
	WorkLogCategoryLearning = "LRN"
	WorkLogCategoryDesign   = "DES"
)

// WorkLog is one logged block of work on the personal work-log calendar.
type WorkLog struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	LogDate     string    `json:"log_date"`   // YYYY-MM-DD
	StartTime   *string   `json:"start_time"` // HH:MM, optional
	EndTime     *string   `json:"end_time"`   // HH:MM, optional
	Duration    *float64  `json:"duration"`   // hours, derived when both times present
	Category    string    `json:"category"`
	Description string    `json:"description"`
	LoggedAt    time.Time `json:"logged_at"`
}

// CreateWorkLogRequest defines the structure for logging work. Duration may
// be supplied directly or derived from the start and end times.
type CreateWorkLogRequest struct {
	LogDate     string   `json:"log_date,omitempty"` // defaults to today
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Duration    *float64 `json:"duration"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}
