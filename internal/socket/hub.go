package socket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// client is one connected dashboard. The same login may have several open
// (an office screen and a phone), so clients are keyed by connection ID, not
// by user.
type client struct {
	email string
	conn  *websocket.Conn
}

// Hub tracks every connected dashboard client.
type Hub struct {
	clients map[string]client
	mu      sync.RWMutex
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]client),
	}
}

// Register adds a connection under its connection ID.
func (h *Hub) Register(connID, email string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[connID] = client{email: email, conn: conn}
	logrus.WithFields(logrus.Fields{"conn": connID, "user": email}).Info("websocket client registered")
}

// Unregister removes a connection.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[connID]; ok {
		delete(h.clients, connID)
		logrus.WithField("conn", connID).Info("websocket client unregistered")
	}
}

// ClientCount reports how many dashboards are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every connected dashboard. A failed write is
// logged and skipped; the read loop of the dead connection cleans it up.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, cl := range h.clients {
		if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logrus.WithError(err).WithField("conn", id).Warn("websocket broadcast failed")
		}
	}
}
