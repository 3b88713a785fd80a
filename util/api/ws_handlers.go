package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/seanchosc/Life-Platforms-Suite/util"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev (restrict in production)
	},
}

// Active WebSocket connections per user.
var (
	activeConnections = make(map[int64]*websocket.Conn)
	connectionsMutex  sync.RWMutex
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// WebSocketHandler upgrades the connection and keeps it open so the server
// can push notifications: collaboration requests, event invites, and event
// posts. The client side is push-only; inbound frames are just keepalives.
// GET /ws
func WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	// Try the session token from the query string first, for clients that
	// cannot send cookies on the upgrade request.
	userID := int64(0)
	if token := r.URL.Query().Get("token"); token != "" {
		userID = util.GetUserIDFromSession(token)
	}
	if userID == 0 {
		if cookieUserID, err := util.GetUserIDFromRequest(r); err == nil {
			userID = cookieUserID
		}
	}
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	connectionsMutex.Lock()
	activeConnections[userID] = conn
	connectionsMutex.Unlock()

	log.Printf("User %d connected via WebSocket", userID)

	defer func() {
		connectionsMutex.Lock()
		delete(activeConnections, userID)
		connectionsMutex.Unlock()
		log.Printf("User %d disconnected from WebSocket", userID)
	}()

	conn.WriteJSON(WSMessage{
		Type: "connected",
		Data: map[string]string{"status": "connected"},
	})

	sendUnreadCount(userID, conn)

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("WebSocket read error for user %d: %v", userID, err)
			break
		}

		switch msg.Type {
		case "heartbeat":
			conn.WriteJSON(WSMessage{Type: "heartbeat_ack", Data: "ok"})
		case "ping":
			conn.WriteJSON(WSMessage{Type: "pong", Data: "pong"})
		default:
			log.Printf("Unknown message type from user %d: %s", userID, msg.Type)
		}
	}
}

// BroadcastToUser sends a message to a specific user if they have an open
// socket. No-op otherwise.
func BroadcastToUser(receiverID int64, msgType string, data interface{}) {
	connectionsMutex.RLock()
	conn, exists := activeConnections[receiverID]
	connectionsMutex.RUnlock()

	if exists {
		msg := WSMessage{
			Type: msgType,
			Data: data,
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("Error broadcasting to user %d: %v", receiverID, err)
			// Remove dead connection
			connectionsMutex.Lock()
			delete(activeConnections, receiverID)
			connectionsMutex.Unlock()
		}
	}
}

// IsUserOnline reports whether the user has an open socket.
func IsUserOnline(userID int64) bool {
	connectionsMutex.RLock()
	defer connectionsMutex.RUnlock()
	_, exists := activeConnections[userID]
	return exists
}

// sendUnreadCount pushes the unread notification count on connect, so the
// client can badge without a separate request.
func sendUnreadCount(userID int64, conn *websocket.Conn) {
	if Notifications == nil {
		return
	}
	count, err := Notifications.GetUnreadCount(userID)
	if err != nil {
		log.Printf("Error fetching unread count for user %d: %v", userID, err)
		return
	}
	if count > 0 {
		if err := conn.WriteJSON(WSMessage{
			Type: "unread_notifications",
			Data: map[string]int{"count": count},
		}); err != nil {
			log.Printf("Error sending unread count to user %d: %v", userID, err)
		}
	}
}
