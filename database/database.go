package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *sql.DB

// InitDB initializes the database connection and creates tables if they don't exist.
func InitDB(dataSourceName string) error {
	var err error
	// Open the SQLite database file. _foreign_keys enables cascade deletes
	// (event -> posts/invites/memberships, post -> media).
	DB, err = sql.Open("sqlite3", dataSourceName+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Check if the connection is successful
	err = DB.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database!")

	// SQL statements to create tables (SQLite compatible)
	createTablesSQL := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        email TEXT UNIQUE NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS profiles (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id INTEGER NOT NULL UNIQUE,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        email_address TEXT NOT NULL,
        timezone TEXT NOT NULL DEFAULT 'UTC',
        profile_photo TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS collaborators (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inviter_id INTEGER NOT NULL,
        invitee_id INTEGER NOT NULL,
        collaborator_type TEXT NOT NULL CHECK(collaborator_type IN ('friend', 'work')),
        invite_status TEXT NOT NULL CHECK(invite_status IN ('pending', 'accepted', 'rejected')) DEFAULT 'pending',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (inviter_id) REFERENCES profiles(id),
        FOREIGN KEY (invitee_id) REFERENCES profiles(id)
    );

    -- One live edge per directed (pair, type). Rejected edges stay as history
    -- and do not block a new request. The reverse direction is checked inside
    -- the request transaction.
    CREATE UNIQUE INDEX IF NOT EXISTS idx_collaborators_live
        ON collaborators(inviter_id, invitee_id, collaborator_type)
        WHERE invite_status IN ('pending', 'accepted');

    CREATE TABLE IF NOT EXISTS events (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        creator_id INTEGER NOT NULL REFERENCES profiles(id),
        title TEXT NOT NULL,
        description TEXT,
        event_date TEXT NOT NULL,            -- YYYY-MM-DD
        start_time TEXT,                     -- HH:MM, optional
        end_time TEXT,                       -- HH:MM, optional
        event_type TEXT NOT NULL CHECK(event_type IN ('self', 'friends', 'work')),
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS event_invites (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        event_id INTEGER NOT NULL,
        inviter_id INTEGER NOT NULL REFERENCES profiles(id),
        invitee_id INTEGER NOT NULL REFERENCES profiles(id),
        invite_status TEXT NOT NULL CHECK(invite_status IN ('pending', 'accepted', 'rejected')) DEFAULT 'pending',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
    );

    -- At most one outstanding invite per (event, invitee).
    CREATE UNIQUE INDEX IF NOT EXISTS idx_event_invites_pending
        ON event_invites(event_id, invitee_id)
        WHERE invite_status = 'pending';

    CREATE TABLE IF NOT EXISTS event_collaborators (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        event_id INTEGER NOT NULL,
        collaborator_id INTEGER NOT NULL REFERENCES profiles(id),
        role TEXT NOT NULL CHECK(role IN ('attendee', 'editor')) DEFAULT 'attendee',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
        UNIQUE(event_id, collaborator_id)
    );

    CREATE TABLE IF NOT EXISTS event_posts (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        event_id INTEGER NOT NULL,
        author_id INTEGER NOT NULL REFERENCES profiles(id),
        text_content TEXT NOT NULL DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS event_post_media (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        post_id INTEGER NOT NULL,
        media_path TEXT NOT NULL,
        position INTEGER NOT NULL DEFAULT 0,
        FOREIGN KEY (post_id) REFERENCES event_posts(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS work_logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        profile_id INTEGER NOT NULL REFERENCES profiles(id),
        log_date TEXT NOT NULL,              -- YYYY-MM-DD
        start_time TEXT,                     -- HH:MM, optional
        end_time TEXT,                       -- HH:MM, optional
        duration REAL,                       -- hours
        category TEXT NOT NULL CHECK(category IN ('DEV', 'BIZ', 'LRN', 'DES')),
        description TEXT NOT NULL,
        logged_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS notifications (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id INTEGER NOT NULL REFERENCES users(id),
        type TEXT NOT NULL,
        title TEXT NOT NULL,
        message TEXT NOT NULL,
        related_id INTEGER,
        related_type TEXT,
        actor_id INTEGER,                    -- acting profile id
        is_read BOOLEAN DEFAULT FALSE,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `

	_, err = DB.Exec(createTablesSQL)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("Database tables checked/created successfully.")
	return nil
}
