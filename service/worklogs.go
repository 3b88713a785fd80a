package service

import (
	"fmt"
	"math"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

func validWorkLogCategory(c string) bool {
	switch c {
	case models.WorkLogCategoryDev, models.WorkLogCategoryBusiness,
		models.WorkLogCategoryLearning, models.WorkLogCategoryDesign:
		return true
	}
	return false
}

// workLogDuration derives the duration in hours from a start and end time on
// the same log date. An end before the start rolls over midnight.
func workLogDuration(start, end string) (float64, error) {
	s, err := time.Parse(timeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: start time %q", ErrInvalidInput, start)
	}
	e, err := time.Parse(timeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: end time %q", ErrInvalidInput, end)
	}
	if e.Before(s) {
		e = e.Add(24 * time.Hour)
	}
	hours := e.Sub(s).Hours()
	return math.Round(hours*10) / 10, nil
}

// CreateWorkLog records a block of work. The date defaults to today; when
// both times are present the duration is computed from them, overriding any
// supplied value.
func CreateWorkLog(profileID int64, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	if !validWorkLogCategory(req.Category) {
		return nil, fmt.Errorf("%w: category %q", ErrInvalidInput, req.Category)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if _, err := GetProfile(profileID); err != nil {
		return nil, err
	}

	logDate := req.LogDate
	if logDate == "" {
		logDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, logDate); err != nil {
		return nil, fmt.Errorf("%w: log date %q", ErrInvalidInput, logDate)
	}

	duration := req.Duration
	if req.StartTime != nil && req.EndTime != nil {
		d, err := workLogDuration(*req.StartTime, *req.EndTime)
		if err != nil {
			return nil, err
		}
		duration = &d
	}

	now := time.Now()
	res, err := database.DB.Exec(`
        INSERT INTO work_logs (profile_id, log_date, start_time, end_time, duration, category, description, logged_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, profileID, logDate, req.StartTime, req.EndTime, duration, req.Category, req.Description, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create work log: %w", err)
	}
	id, _ := res.LastInsertId()

	return &models.WorkLog{
		ID:          id,
		ProfileID:   profileID,
		LogDate:     logDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Category:    req.Category,
		Description: req.Description,
		LoggedAt:    now,
	}, nil
}

// ListWorkLogs returns a profile's work logs, most recently logged first.
func ListWorkLogs(profileID int64) ([]models.WorkLog, error) {
	rows, err := database.DB.Query(`
        SELECT id, profile_id, log_date, start_time, end_time, duration, category, description, logged_at
        FROM work_logs
        WHERE profile_id = ?
        ORDER BY logged_at DESC, id DESC
    `, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs: %w", err)
	}
	defer rows.Close()

	logs := []models.WorkLog{}
	for rows.Next() {
		var wl models.WorkLog
		if err := rows.Scan(&wl.ID, &wl.ProfileID, &wl.LogDate, &wl.StartTime, &wl.EndTime, &wl.Duration, &wl.Category, &wl.Description, &wl.LoggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		logs = append(logs, wl)
	}
	return logs, rows.Err()
}
