package api

import (
	"log"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// Notifications is the shared notification service, set in main before the
// server starts.
var Notifications *models.NotificationService

// userIDForProfile resolves a profile id to its owning account id, which is
// what the notification rows and websocket registry are keyed by.
func userIDForProfile(profileID int64) (int64, error) {
	var userID int64
	err := database.DB.QueryRow("SELECT user_id FROM profiles WHERE id = ?", profileID).Scan(&userID)
	return userID, err
}

// notifyProfile stores a notification for the profile's owner and pushes it
// over their websocket if one is open. Failures are logged, never surfaced;
// notification delivery must not fail the triggering request.
func notifyProfile(targetProfileID int64, req models.CreateNotificationRequest) {
	userID, err := userIDForProfile(targetProfileID)
	if err != nil {
		log.Printf("Error resolving profile %d for notification: %v", targetProfileID, err)
		return
	}
	req.UserID = userID

	if Notifications != nil {
		if err := Notifications.CreateNotification(req); err != nil {
			log.Printf("Error creating notification for user %d: %v", userID, err)
		}
	}

	BroadcastToUser(userID, "notification", req)
}

func notifyCollaborationRequest(requester *models.Profile, targetProfileID int64, collabType string) {
	go notifyProfile(targetProfileID, models.CreateNotificationRequest{
		Type:        "collaboration_request",
		Title:       "New collaboration request",
		Message:     requester.FirstName + " " + requester.LastName + " wants to add you as a " + collabType + " collaborator",
		RelatedID:   &requester.ID,
		RelatedType: strPtr("profile"),
		ActorID:     &requester.ID,
	})
}

func notifyCollaborationAccepted(responder *models.Profile, requesterProfileID int64) {
	go notifyProfile(requesterProfileID, models.CreateNotificationRequest{
		Type:        "collaboration_accepted",
		Title:       "Collaboration request accepted",
		Message:     responder.FirstName + " " + responder.LastName + " accepted your collaboration request",
		RelatedID:   &responder.ID,
		RelatedType: strPtr("profile"),
		ActorID:     &responder.ID,
	})
}

func notifyEventInvite(inviter *models.Profile, inviteeProfileID, eventID int64, eventTitle string) {
	go notifyProfile(inviteeProfileID, models.CreateNotificationRequest{
		Type:        "event_invite",
		Title:       "Event invitation",
		Message:     inviter.FirstName + " " + inviter.LastName + " invited you to " + eventTitle,
		RelatedID:   &eventID,
		RelatedType: strPtr("event"),
		ActorID:     &inviter.ID,
	})
}

func notifyEventPost(author *models.Profile, memberProfileID, eventID int64, eventTitle string) {
	go notifyProfile(memberProfileID, models.CreateNotificationRequest{
		Type:        "event_post",
		Title:       "New event post",
		Message:     author.FirstName + " " + author.LastName + " posted in " + eventTitle,
		RelatedID:   &eventID,
		RelatedType: strPtr("event"),
		ActorID:     &author.ID,
	})
}

func strPtr(s string) *string { return &s }
