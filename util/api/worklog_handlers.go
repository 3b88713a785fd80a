package api

import (
	"encoding/json"
	"net/http"

	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// CreateWorkLogHandler records a block of work on the caller's work-log
// calendar.
// POST /worklogs
func CreateWorkLogHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	var req models.CreateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	wl, err := service.CreateWorkLog(profile.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wl)
}

// ListWorkLogsHandler returns the caller's work logs, newest first.
// GET /worklogs
func ListWorkLogsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	logs, err := service.ListWorkLogs(profile.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
