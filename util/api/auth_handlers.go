package api

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/util"

	"golang.org/x/crypto/bcrypt"
)

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     util.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	})
}

// RegisterHandler handles user registration.
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		http.Error(w, "Email, password, and username are required", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error processing password", http.StatusInternalServerError)
		log.Printf("Error hashing password: %v", err)
		return
	}

	result, err := database.DB.Exec(`
		INSERT INTO users (username, password_hash, email, created_at)
		VALUES (?, ?, ?, ?)
	`, req.Username, string(hashedPassword), req.Email, time.Now())
	if err != nil {
		http.Error(w, "Failed to register user: username or email already taken", http.StatusConflict)
		log.Printf("Error inserting user: %v", err)
		return
	}

	userID, err := result.LastInsertId()
	if err != nil {
		http.Error(w, "Failed to retrieve user ID: "+err.Error(), http.StatusInternalServerError)
		log.Printf("Error getting last insert ID: %v", err)
		return
	}

	sessionToken, err := util.CreateSession(userID)
	if err != nil {
		log.Printf("Failed to create session for new user %d after registration: %v", userID, err)
	} else {
		setSessionCookie(w, sessionToken)
		log.Printf("User %s (ID: %d) registered and session created.", req.Username, userID)
	}

	writeJSON(w, http.StatusCreated, models.UserResponse{
		ID:       userID,
		Username: req.Username,
		Email:    req.Email,
	})
}

// LoginHandler handles user login by username or email.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Login failed - invalid JSON: %v", err)
		http.Error(w, "Error reading request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	if identifier == "" || req.Password == "" {
		log.Printf("Login failed - missing username/email or password")
		http.Error(w, "Username/email and password are required", http.StatusBadRequest)
		return
	}

	var userID int64
	var storedPasswordHash string
	var username string
	var email string

	err := database.DB.QueryRow(
		"SELECT id, password_hash, username, email FROM users WHERE username = ? OR email = ?",
		identifier, identifier,
	).Scan(&userID, &storedPasswordHash, &username, &email)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("Login failed - user not found: %s", identifier)
			http.Error(w, "Invalid username/email or password", http.StatusUnauthorized)
		} else {
			log.Printf("Login failed - database error: %v", err)
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedPasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login failed - invalid password for: %s", identifier)
		http.Error(w, "Invalid username/email or password", http.StatusUnauthorized)
		return
	}

	sessionToken, err := util.CreateSession(userID)
	if err != nil {
		log.Printf("Login failed - session creation error: %v", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, sessionToken)
	log.Printf("Login successful for user: %s (ID: %d)", username, userID)

	writeJSON(w, http.StatusOK, models.UserResponse{
		ID:       userID,
		Username: username,
		Email:    email,
	})
}

// LogoutHandler handles user logout.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(util.SessionCookieName)
	if err != nil {
		if err == http.ErrNoCookie {
			http.Error(w, "No active session", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Server error reading cookie", http.StatusInternalServerError)
		log.Printf("Error reading session cookie on logout: %v", err)
		return
	}

	util.DeleteSession(cookie.Value)

	http.SetCookie(w, &http.Cookie{
		Name:     util.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CheckAuthHandler reports whether the request carries a valid session, and
// whether the account has created its profile yet.
func CheckAuthHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := util.GetUserIDFromRequest(r)
	if err != nil {
		http.Error(w, "Server error processing authentication", http.StatusInternalServerError)
		return
	}
	if userID == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}

	var hasProfile bool
	if err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = ?)", userID).Scan(&hasProfile); err != nil {
		log.Printf("Error checking profile for user %d: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user_id":       userID,
		"has_profile":   hasProfile,
	})
}
