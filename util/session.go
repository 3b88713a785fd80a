package util

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/seanchosc/Life-Platforms-Suite/database"
)

const SessionCookieName = "session_token"

// In-memory session store mapping tokens to user ids.
var (
	sessions = make(map[string]int64)
	mu       sync.RWMutex
)

// GenerateSessionToken creates a cryptographically secure random session token.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// CreateSession creates a new session for the user and returns the session token.
func CreateSession(userID int64) (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}

	mu.Lock()
	sessions[token] = userID
	mu.Unlock()
	return token, nil
}

// GetUserIDFromSession retrieves the UserID associated with a session token.
// Returns 0 if the session is not valid.
func GetUserIDFromSession(token string) int64 {
	mu.RLock()
	userID, ok := sessions[token]
	mu.RUnlock()
	if !ok {
		return 0
	}
	return userID
}

// DeleteSession removes a session from the store.
func DeleteSession(token string) {
	mu.Lock()
	delete(sessions, token)
	mu.Unlock()
}

// GetUserIDFromRequest extracts the UserID from the session cookie in an HTTP
// request. Returns 0 without error when there is no valid session, so the
// middleware can decide how to respond.
func GetUserIDFromRequest(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		if err == http.ErrNoCookie {
			return 0, nil
		}
		return 0, err
	}

	userID := GetUserIDFromSession(cookie.Value)
	if userID == 0 {
		return 0, nil
	}

	// Drop sessions whose account no longer exists.
	var exists bool
	err = database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", userID).Scan(&exists)
	if err != nil || !exists {
		DeleteSession(cookie.Value)
		return 0, nil
	}

	return userID, nil
}
