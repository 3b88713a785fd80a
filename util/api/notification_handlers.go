package api

import (
	"net/http"
	"strconv"

	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// GetNotificationsHandler retrieves notifications for the authenticated user.
// GET /notifications
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	notifications, err := Notifications.GetNotifications(userID, limit)
	if err != nil {
		http.Error(w, "Failed to fetch notifications", http.StatusInternalServerError)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	writeJSON(w, http.StatusOK, notifications)
}

// GetUnreadCountHandler returns the count of unread notifications.
// GET /notifications/unread-count
func GetUnreadCountHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	count, err := Notifications.GetUnreadCount(userID)
	if err != nil {
		http.Error(w, "Failed to fetch unread count", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.NotificationCount{UnreadCount: count})
}

// MarkNotificationAsReadHandler marks one notification as read.
// PATCH /notifications/{notificationID}/read
func MarkNotificationAsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	notificationID, err := strconv.ParseInt(r.PathValue("notificationID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}

	if err := Notifications.MarkAsRead(notificationID, userID); err != nil {
		http.Error(w, "Failed to mark notification as read", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAllNotificationsAsReadHandler marks every unread notification as read.
// PATCH /notifications/read-all
func MarkAllNotificationsAsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := Notifications.MarkAllAsRead(userID); err != nil {
		http.Error(w, "Failed to mark notifications as read", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}
