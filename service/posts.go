package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
)

// MaxMediaPerPost bounds the attachments on a single event post.
const MaxMediaPerPost = 5

var allowedMediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// validateMediaPath checks one media reference: it must be a path issued by
// the upload endpoint with an allowed image extension.
func validateMediaPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty media path", ErrInvalidMedia)
	}
	if !strings.HasPrefix(path, "/uploads/") {
		return fmt.Errorf("%w: %q is not an uploaded file", ErrInvalidMedia, path)
	}
	if !allowedMediaExts[strings.ToLower(filepath.Ext(path))] {
		return fmt.Errorf("%w: %q has an unsupported extension", ErrInvalidMedia, path)
	}
	return nil
}

// AddPost appends a post to an event's feed with up to MaxMediaPerPost
// attachments. The post and its media are written in one transaction: if any
// media item fails validation or insertion, nothing persists.
func AddPost(authorID, eventID int64, text string, media []string) (*models.EventPostResponse, error) {
	allowed, err := CanPost(authorID, eventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: only the creator or collaborators can post", ErrNotAuthorized)
	}
	if len(media) > MaxMediaPerPost {
		return nil, fmt.Errorf("%w: %d items, maximum is %d", ErrTooManyMedia, len(media), MaxMediaPerPost)
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.Exec(
		"INSERT INTO event_posts (event_id, author_id, text_content, created_at) VALUES (?, ?, ?, ?)",
		eventID, authorID, text, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	postID, _ := res.LastInsertId()

	items := []models.EventPostMediaItem{}
	for i, path := range media {
		if err := validateMediaPath(path); err != nil {
			// The deferred rollback drops the post row as well.
			return nil, err
		}
		mediaRes, err := tx.Exec(
			"INSERT INTO event_post_media (post_id, media_path, position) VALUES (?, ?, ?)",
			postID, path, i,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to attach media: %w", err)
		}
		mediaID, _ := mediaRes.LastInsertId()
		items = append(items, models.EventPostMediaItem{ID: mediaID, MediaPath: path, Position: i})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}

	author, err := GetProfile(authorID)
	if err != nil {
		return nil, err
	}
	return &models.EventPostResponse{
		ID:              postID,
		EventID:         eventID,
		AuthorID:        authorID,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
		AuthorPhoto:     author.ProfilePhoto,
		TextContent:     text,
		Media:           items,
		CreatedAt:       now,
	}, nil
}

// ListPosts returns an event's posts oldest first, each with its media in
// attachment order. Posts are immutable, so this is the full history.
func ListPosts(eventID int64) ([]models.EventPostResponse, error) {
	rows, err := database.DB.Query(`
        SELECT ep.id, ep.event_id, ep.author_id, p.first_name, p.last_name, COALESCE(p.profile_photo, ''), ep.text_content, ep.created_at
        FROM event_posts ep
        JOIN profiles p ON p.id = ep.author_id
        WHERE ep.event_id = ?
        ORDER BY ep.created_at ASC, ep.id ASC
    `, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.EventPostResponse{}
	for rows.Next() {
		var p models.EventPostResponse
		if err := rows.Scan(&p.ID, &p.EventID, &p.AuthorID, &p.AuthorFirstName, &p.AuthorLastName, &p.AuthorPhoto, &p.TextContent, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		mediaRows, err := database.DB.Query(
			"SELECT id, media_path, position FROM event_post_media WHERE post_id = ? ORDER BY position ASC",
			posts[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query post media: %w", err)
		}
		items := []models.EventPostMediaItem{}
		for mediaRows.Next() {
			var m models.EventPostMediaItem
			if err := mediaRows.Scan(&m.ID, &m.MediaPath, &m.Position); err != nil {
				mediaRows.Close()
				return nil, fmt.Errorf("failed to scan post media: %w", err)
			}
			items = append(items, m)
		}
		mediaRows.Close()
		if err := mediaRows.Err(); err != nil {
			return nil, err
		}
		posts[i].Media = items
	}
	return posts, nil
}
