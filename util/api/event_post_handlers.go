package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/service"
)

// CreateEventPostHandler posts an update on an event's feed.
// POST /events/{eventID}/posts
func CreateEventPostHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := currentProfile(w, r)
	if !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	var req models.CreateEventPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.TextContent == "" && len(req.Media) == 0 {
		http.Error(w, "Post must have text or media", http.StatusBadRequest)
		return
	}

	post, err := service.AddPost(profile.ID, eventID, req.TextContent, req.Media)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Tell the other event members about the post.
	if event, err := service.GetEvent(eventID); err == nil {
		if members, err := service.ListEventCollaborators(eventID); err == nil {
			for _, m := range members {
				if m.Profile.ID != profile.ID {
					notifyEventPost(profile, m.Profile.ID, eventID, event.Title)
				}
			}
		}
		if event.CreatorID != profile.ID {
			notifyEventPost(profile, event.CreatorID, eventID, event.Title)
		}
	}

	log.Printf("Profile %d posted on event %d (post %d, %d media)", profile.ID, eventID, post.ID, len(post.Media))
	writeJSON(w, http.StatusCreated, post)
}

// ListEventPostsHandler returns an event's posts oldest first.
// GET /events/{eventID}/posts
func ListEventPostsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentProfile(w, r); !ok {
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid event ID in URL path", http.StatusBadRequest)
		return
	}

	if _, err := service.GetEvent(eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	posts, err := service.ListPosts(eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
