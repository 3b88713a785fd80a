package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/seanchosc/Life-Platforms-Suite/database"
	"github.com/seanchosc/Life-Platforms-Suite/middleware"
	"github.com/seanchosc/Life-Platforms-Suite/models"
	"github.com/seanchosc/Life-Platforms-Suite/pkg/db/sqlite"
	"github.com/seanchosc/Life-Platforms-Suite/util/api"
)

func main() {
	log.Println("Initializing application...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./life_platforms.db"
	}
	log.Printf("Using database at: %s", dbPath)

	flag.Parse()

	// Apply migrations before initializing the database
	migrationsPath := "pkg/db/migrations/sqlite"
	if _, err := sqlite.ConnectAndMigrate(dbPath, migrationsPath); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	if err := database.InitDB(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	api.Notifications = models.NewNotificationService(database.DB)

	mux := http.NewServeMux()
	mux.Handle("/ws", http.HandlerFunc(api.WebSocketHandler))

	// Auth handlers
	mux.HandleFunc("POST /register", api.RegisterHandler)
	mux.HandleFunc("POST /login", api.LoginHandler)
	mux.HandleFunc("POST /logout", api.LogoutHandler)
	mux.HandleFunc("GET /checkAuth", api.CheckAuthHandler)

	// Profile handlers
	mux.Handle("POST /profiles", middleware.AuthMiddleware(http.HandlerFunc(api.CreateProfileHandler)))
	mux.Handle("GET /profiles/me", middleware.AuthMiddleware(http.HandlerFunc(api.GetMyProfileHandler)))
	mux.Handle("PUT /profiles/me", middleware.AuthMiddleware(http.HandlerFunc(api.UpdateMyProfileHandler)))
	mux.Handle("GET /profiles/{profileID}", middleware.AuthMiddleware(http.HandlerFunc(api.GetProfileHandler)))

	// Collaboration handlers
	mux.Handle("POST /profiles/{profileID}/collaborate", middleware.AuthMiddleware(http.HandlerFunc(api.RequestCollaborationHandler)))
	mux.Handle("GET /collab-requests", middleware.AuthMiddleware(http.HandlerFunc(api.ListPendingCollaborationsHandler)))
	mux.Handle("PATCH /collab-requests/{requesterID}", middleware.AuthMiddleware(http.HandlerFunc(api.HandleCollaborationRequestHandler)))
	mux.Handle("GET /collaborators", middleware.AuthMiddleware(http.HandlerFunc(api.ListCollaboratorsHandler)))

	// Event handlers
	mux.Handle("POST /events", middleware.AuthMiddleware(http.HandlerFunc(api.CreateEventHandler)))
	mux.Handle("GET /events", middleware.AuthMiddleware(http.HandlerFunc(api.ListEventsHandler)))
	mux.Handle("GET /events/{eventID}", middleware.AuthMiddleware(http.HandlerFunc(api.GetEventHandler)))
	mux.Handle("PUT /events/{eventID}", middleware.AuthMiddleware(http.HandlerFunc(api.UpdateEventHandler)))

	// Event invite handlers
	mux.Handle("GET /events/{eventID}/candidates", middleware.AuthMiddleware(http.HandlerFunc(api.InviteCandidatesHandler)))
	mux.Handle("POST /events/{eventID}/invite", middleware.AuthMiddleware(http.HandlerFunc(api.InviteToEventHandler)))
	mux.Handle("POST /events/{eventID}/accept-invite", middleware.AuthMiddleware(http.HandlerFunc(api.AcceptEventInviteHandler)))
	mux.Handle("POST /events/{eventID}/reject-invite", middleware.AuthMiddleware(http.HandlerFunc(api.RejectEventInviteHandler)))
	mux.Handle("GET /event-invites", middleware.AuthMiddleware(http.HandlerFunc(api.ListMyEventInvitesHandler)))

	// Event post handlers
	mux.Handle("POST /events/{eventID}/posts", middleware.AuthMiddleware(http.HandlerFunc(api.CreateEventPostHandler)))
	mux.Handle("GET /events/{eventID}/posts", middleware.AuthMiddleware(http.HandlerFunc(api.ListEventPostsHandler)))

	// Media upload handler
	mux.Handle("POST /upload-media", middleware.AuthMiddleware(http.HandlerFunc(api.MediaUploadHandler)))

	// Calendar feed
	mux.Handle("GET /api/events/feed", middleware.AuthMiddleware(http.HandlerFunc(api.CalendarFeedHandler)))
	mux.Handle("GET /api/events/feed.ics", middleware.AuthMiddleware(http.HandlerFunc(api.CalendarICSHandler)))

	// Work log handlers
	mux.Handle("POST /worklogs", middleware.AuthMiddleware(http.HandlerFunc(api.CreateWorkLogHandler)))
	mux.Handle("GET /worklogs", middleware.AuthMiddleware(http.HandlerFunc(api.ListWorkLogsHandler)))

	// Notification routes
	mux.Handle("GET /notifications", middleware.AuthMiddleware(http.HandlerFunc(api.GetNotificationsHandler)))
	mux.Handle("GET /notifications/unread-count", middleware.AuthMiddleware(http.HandlerFunc(api.GetUnreadCountHandler)))
	mux.Handle("PATCH /notifications/{notificationID}/read", middleware.AuthMiddleware(http.HandlerFunc(api.MarkNotificationAsReadHandler)))
	mux.Handle("PATCH /notifications/read-all", middleware.AuthMiddleware(http.HandlerFunc(api.MarkAllNotificationsAsReadHandler)))

	// Dashboard
	mux.Handle("GET /dashboard", middleware.AuthMiddleware(http.HandlerFunc(api.DashboardHandler)))

	// Static file server for uploaded media
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads/"))))

	// --- CORS Middleware ---
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true, // Required for cookies!
	})

	handler := c.Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	fmt.Printf("Server running on localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
